package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/core/validate"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

// EmptyFilterMessage is shown when a filter matches no records.
const EmptyFilterMessage = "No tasks found for the selected criteria."

type ListCmd struct {
	flags  *Flags
	app    *taskdash.App
	reader iojson.LinesReader[task.Record]
	now    func() time.Time

	// flags
	date       string
	priorities []string
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags, app *taskdash.App) *ListCmd {
	return &ListCmd{flags: flags, app: app, now: time.Now}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List recorded tasks for a date",
		UsageText: "taskdash list [--date YYYY-MM-DD] [--priority P]... [--json] [-f file]",
		Description: `Reads task records as JSON lines (from --file or stdin) and prints the
ones recorded on --date whose priority is one of --priority.

--date defaults to today. --priority may be repeated and defaults to every
priority. Use --json to print matching records as JSON lines.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "date to show (YYYY-MM-DD, defaults to today)",
				Destination: &cmd.date,
			},
			&cli.StringSliceFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority to include (repeatable, defaults to all)",
				Destination: &cmd.priorities,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		ShellComplete: PriorityCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ListCmd) criteria() (task.Criteria, error) {
	c := task.Criteria{Date: cmd.date}
	if c.Date == "" {
		c.Date = cmd.now().Format(task.DateLayout)
	} else if err := validate.Date(c.Date); err != nil {
		return task.Criteria{}, fmt.Errorf("--date: %w", err)
	}

	if len(cmd.priorities) == 0 {
		c.Priorities = task.Priorities()
		return c, nil
	}

	for _, raw := range cmd.priorities {
		p, err := task.ParsePriority(raw)
		if err != nil {
			return task.Criteria{}, err
		}
		c.Priorities = append(c.Priorities, p)
	}
	return c, nil
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	criteria, err := cmd.criteria()
	if err != nil {
		return err
	}

	if err := loadRecords(ctx, cmd.app, &cmd.reader); err != nil {
		return err
	}

	records, err := cmd.app.Tasks.Filter(ctx, criteria)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if len(records) == 0 {
		if !cmd.jsonOutput {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, EmptyFilterMessage)
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, r := range records {
			if err := iojson.WriteLine(out, r); err != nil {
				return err
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTASK\tPRIORITY\tSTART\tEND\tHOURS\tEXPENSES")
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date,
			oneLine(r.Name),
			r.Priority,
			r.StartTime,
			r.EndTime,
			export.FormatHours(r.DurationHours),
			strings.Join(r.Expenses, "; "),
		)
	}
	return w.Flush()
}

// oneLine collapses embedded newlines so table rows stay aligned.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
