// Package export writes recorded tasks as a CSV table.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/natefinch/atomic"

	"github.com/colonyops/taskdash/internal/core/task"
)

// DefaultFilename is the name offered for the downloaded export.
const DefaultFilename = "task_data.csv"

// Header is the fixed first row of every export.
var Header = []string{"Date", "Task", "Priority", "Duration (Hours)", "Start Time", "End Time"}

// Row returns the CSV fields for one record.
func Row(r task.Record) []string {
	return []string{
		r.Date,
		r.Name,
		string(r.Priority),
		FormatHours(r.DurationHours),
		r.StartTime,
		r.EndTime,
	}
}

// FormatHours renders a duration with the fewest digits that round-trip,
// e.g. 8.5 or 1.25.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// WriteCSV writes the header and one row per record. Fields containing the
// separator, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, records []task.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile atomically replaces path with the CSV export, creating the
// parent directory when needed.
func WriteFile(path string, records []task.Record) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
