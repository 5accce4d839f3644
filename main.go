package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/commands"
	"github.com/colonyops/taskdash/internal/core/config"
	"github.com/colonyops/taskdash/internal/core/logging"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/data/stores"
	"github.com/colonyops/taskdash/internal/printer"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &taskdash.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "taskdash",
		Usage:     "Log units of work and chart where the time went",
		UsageText: "taskdash [global options] command [command options]",
		Description: `taskdash records tasks with a priority, a time span and free-form notes,
then lists them by day and charts them by priority and date.

Run 'taskdash' with no arguments to open the interactive dashboard.
Run 'taskdash new' to record a task from the command line.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Always log to a file; use explicit path or default to <datadir>/taskdash.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logging.Install(logger)
			logCloser = closer

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			var (
				taskStore   = stores.NewTaskStore()
				notifyStore = stores.NewNotifyStore(stores.DefaultNotifyLimit)
				builder     = task.NewBuilder(cfg.Tasks.MissingTime)
			)

			tasks := taskdash.NewTaskService(taskStore, builder, cfg.Export.Filename, logging.Component("taskdash"))

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = *taskdash.NewApp(tasks, notifyStore, cfg)

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("theme", cfg.TUI.Theme).
				Str("missing_time", string(cfg.Tasks.MissingTime)).
				Msg("taskdash started")

			return printer.NewContext(ctx, printer.New(os.Stderr)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, app, version)

	root = commands.RegisterAll(root, flags, app)

	// Register TUI flags on root command
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskdash --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
