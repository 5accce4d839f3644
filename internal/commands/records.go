package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/printer"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

// loadRecords reads JSON-line records from the reader's source and imports
// them into the app's task store. Validation failures are printed per field
// and reported as exit code 1.
func loadRecords(ctx context.Context, app *taskdash.App, reader *iojson.LinesReader[task.Record]) error {
	records, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}

	if err := app.Tasks.Import(ctx, records); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("import tasks: %w", err)
		}

		p := printer.Ctx(ctx)
		for _, fe := range fieldErrs {
			p.Errorf("%s: %v", fe.Field, fe.Err)
		}
		p.Errorf("%d invalid record field(s)", len(fieldErrs))
		return cli.Exit("", 1)
	}

	return nil
}
