package commands

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/printer"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

type ExportCmd struct {
	flags  *Flags
	app    *taskdash.App
	reader iojson.LinesReader[task.Record]

	out string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags, app *taskdash.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export recorded tasks as CSV",
		UsageText: "taskdash export [--out path|-] [-f file]",
		Description: `Reads task records as JSON lines and writes them as CSV with the columns
Date, Task, Priority, Duration (Hours), Start Time and End Time.

Without --out the file is written to the configured export directory using
the configured file name. Use --out - to write to stdout.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path, or - for stdout",
				Destination: &cmd.out,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	if err := loadRecords(ctx, cmd.app, &cmd.reader); err != nil {
		return err
	}

	if cmd.out == "-" {
		return cmd.app.Tasks.Export(ctx, c.Root().Writer)
	}

	var (
		path string
		err  error
	)
	if cmd.out != "" {
		path = filepath.Clean(cmd.out)
		err = cmd.app.Tasks.ExportTo(ctx, path)
	} else {
		path, err = cmd.app.Tasks.ExportFile(ctx, cmd.app.Config.ExportDir())
	}
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Success("Tasks exported", path)
	return nil
}
