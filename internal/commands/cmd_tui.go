package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/internal/tui"
	"github.com/colonyops/taskdash/pkg/iojson"
	"github.com/colonyops/taskdash/pkg/utils"
)

type TuiCmd struct {
	flags   *Flags
	app     *taskdash.App
	version string

	file string
	emit bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *taskdash.App, version string) *TuiCmd {
	return &TuiCmd{
		flags:   flags,
		app:     app,
		version: version,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "preload tasks from a JSON lines file or glob",
			Sources:     cli.EnvVars("TASKDASH_FILE"),
			Destination: &cmd.file,
		},
		&cli.BoolFlag{
			Name:        "emit",
			Usage:       "print tasks recorded during the session to stdout as JSON lines on exit",
			Destination: &cmd.emit,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) preload(ctx context.Context) (int, error) {
	if cmd.file == "" {
		return 0, nil
	}

	records, err := iojson.ReadGlob[task.Record](cmd.file)
	if err != nil {
		return 0, fmt.Errorf("read tasks file: %w", err)
	}

	if err := cmd.app.Tasks.Import(ctx, records); err != nil {
		return 0, fmt.Errorf("import tasks file: %w", err)
	}
	return len(records), nil
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	loaded, err := cmd.preload(ctx)
	if err != nil {
		return err
	}

	// stdout belongs to the renderer until the program exits
	var emitted utils.DeferredWriter
	if cmd.emit {
		cmd.app.Tasks.SetSink(&emitted)
		defer cmd.app.Tasks.SetSink(nil)
	}

	deps := tui.Deps{
		Config:        cmd.app.Config,
		Tasks:         cmd.app.Tasks,
		Notifications: cmd.app.Notifications,
		Version:       cmd.version,
	}
	opts := tui.Opts{
		Loaded: loaded,
	}

	m := tui.New(ctx, deps, opts)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if cmd.emit {
		log.Debug().Int("tasks", emitted.Lines()).Int("bytes", emitted.Len()).Msg("flushing recorded tasks")
		if err := emitted.Flush(c.Root().Writer); err != nil {
			return fmt.Errorf("write recorded tasks: %w", err)
		}
	}

	return nil
}
