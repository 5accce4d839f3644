package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/core/validate"
	"github.com/colonyops/taskdash/internal/printer"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

type NewCmd struct {
	flags *Flags
	app   *taskdash.App

	in       task.Input
	expenses []string

	// runForm fills in when --name is absent; replaced in tests.
	runForm func(*NewCmd) error
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags, app *taskdash.App) *NewCmd {
	return &NewCmd{flags: flags, app: app, runForm: runNewForm}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	text := func(name, usage string, dst *string) cli.Flag {
		return &cli.StringFlag{Name: name, Usage: usage, Destination: dst}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Record a new task",
		UsageText: "taskdash new [options]",
		Description: `Builds one task record dated today and prints it to stdout as a JSON line.

The duration is computed from --start and --end (HH:MM). When --name is
omitted, an interactive form prompts for the task details.

Records can be piped into the other commands:
  taskdash new --name "Design review" --start 10:00 --end 11:15 >> tasks.jsonl
  taskdash list -f tasks.jsonl`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "task name",
				Destination: &cmd.in.Name,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority (" + strings.Join(task.PriorityNames(), ", ") + ")",
				Destination: &cmd.in.Priority,
			},
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "start time (HH:MM)",
				Destination: &cmd.in.StartTime,
			},
			&cli.StringFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "end time (HH:MM)",
				Destination: &cmd.in.EndTime,
			},
			&cli.StringSliceFlag{
				Name:        "expense",
				Usage:       "expense item (repeatable)",
				Destination: &cmd.expenses,
			},
			text("research-time", "time spent on research", &cmd.in.ResearchTime),
			text("roadblock-time", "time lost to roadblocks", &cmd.in.RoadblockTime),
			text("people", "people involved", &cmd.in.People),
			text("tools", "tools used", &cmd.in.Tools),
			text("resources", "resources used", &cmd.in.Resources),
			text("research-sources", "research sources", &cmd.in.ResearchSources),
			text("roadblocks", "roadblocks hit", &cmd.in.Roadblocks),
			text("research-completed", "research completed", &cmd.in.ResearchCompleted),
			text("research-needed", "research still needed", &cmd.in.ResearchNeeded),
			text("accomplishments", "accomplishments", &cmd.in.Accomplishments),
			text("error-recognition", "errors recognized", &cmd.in.ErrorRecognition),
			text("additional-tasks", "follow-up tasks", &cmd.in.AdditionalTasks),
		},
		ShellComplete: PriorityCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.in.Priority == "" {
		cmd.in.Priority = string(cmd.app.Config.DefaultPriority())
	}
	if len(cmd.expenses) > 0 {
		cmd.in.Expenses = strings.Join(cmd.expenses, "\n")
	}

	if cmd.in.Name == "" {
		if err := cmd.runForm(cmd); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	rec, err := cmd.app.Tasks.Submit(ctx, cmd.in)
	if err != nil {
		return err
	}

	if err := iojson.WriteLine(c.Root().Writer, rec); err != nil {
		return err
	}

	printer.Ctx(ctx).Success("Task recorded", fmt.Sprintf("%s (%s h)", rec.ID, export.FormatHours(rec.DurationHours)))
	return nil
}

func runNewForm(cmd *NewCmd) error {
	options := make([]huh.Option[string], 0, len(task.Priorities()))
	for _, p := range task.Priorities() {
		options = append(options, huh.NewOption(p.String(), p.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Validate(validate.TaskName).
				Value(&cmd.in.Name),
			huh.NewSelect[string]().
				Title("Priority").
				Options(options...).
				Value(&cmd.in.Priority),
			huh.NewInput().
				Title("Start time").
				Placeholder("HH:MM").
				Validate(validate.TimeOfDay).
				Value(&cmd.in.StartTime),
			huh.NewInput().
				Title("End time").
				Placeholder("HH:MM").
				Validate(validate.TimeOfDay).
				Value(&cmd.in.EndTime),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Accomplishments").
				Value(&cmd.in.Accomplishments),
			huh.NewText().
				Title("Roadblocks").
				Value(&cmd.in.Roadblocks),
			huh.NewText().
				Title("Expenses").
				Description("One item per line").
				Value(&cmd.in.Expenses),
		),
	).WithTheme(styles.FormTheme()).Run()
}
