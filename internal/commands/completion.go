package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/task"
)

// PriorityCompleter suggests priority labels after a --priority flag.
// Anything else falls back to the default flag completion.
func PriorityCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		args := cmd.Args()
		if !args.Present() {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}

		last := args.Slice()[args.Len()-1]
		if last != "--priority" && last != "-p" {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}

		for _, name := range task.PriorityNames() {
			// labels with spaces must be quoted by the shell
			if strings.Contains(name, " ") {
				name = fmt.Sprintf("%q", name)
			}
			_, _ = fmt.Fprintln(cmd.Root().Writer, name)
		}
	}
}
