package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/analytics"
	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

type StatsCmd struct {
	flags  *Flags
	app    *taskdash.App
	reader iojson.LinesReader[task.Record]

	jsonOutput bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags, app *taskdash.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Summarize recorded tasks",
		UsageText: "taskdash stats [--json] [-f file]",
		Description: `Reads task records as JSON lines and prints the priority distribution,
hours per day and tasks per day across every record.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the summary as a JSON object",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	if err := loadRecords(ctx, cmd.app, &cmd.reader); err != nil {
		return err
	}

	summary, err := cmd.app.Tasks.Summary(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteLine(out, summary)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "TASKS\t%d\n", summary.Total)
	_, _ = fmt.Fprintf(w, "HOURS\t%s\n", export.FormatHours(summary.TotalHours))

	_, _ = fmt.Fprintln(w, "\nPRIORITY\tTASKS")
	for _, pt := range analytics.PrioritySeries(summary.ByPriority) {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", pt.Label, int(pt.Value))
	}

	_, _ = fmt.Fprintln(w, "\nDATE\tTASKS\tHOURS")
	for _, pt := range analytics.DateSeries(summary.TasksByDate) {
		hours := summary.HoursByDate[pt.Label]
		note := ""
		if n := summary.NegativeByDate[pt.Label]; n > 0 {
			note = fmt.Sprintf("\t(%d negative)", n)
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s%s\n", pt.Label, int(pt.Value), export.FormatHours(hours), note)
	}

	return w.Flush()
}
