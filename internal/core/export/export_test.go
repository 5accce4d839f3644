package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskdash/internal/core/task"
)

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Task,Priority,Duration (Hours),Start Time,End Time\n", buf.String())
}

func TestWriteCSV_Rows(t *testing.T) {
	records := []task.Record{
		{Date: "2024-01-05", Name: "Design review", Priority: task.PriorityCritical, DurationHours: 1.25, StartTime: "10:00", EndTime: "11:15"},
		{Date: "2024-01-05", Name: "Plan", Priority: task.PriorityNoPriority, DurationHours: 8.5, StartTime: "09:00", EndTime: "17:30"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2024-01-05,Design review,Critical,1.25,10:00,11:15", lines[1])
	assert.Equal(t, "2024-01-05,Plan,No Priority,8.5,09:00,17:30", lines[2])
}

func TestWriteCSV_QuotesFreeText(t *testing.T) {
	records := []task.Record{
		{Date: "2024-01-05", Name: "Review, then \"ship\"\nfollow-up", Priority: task.PriorityModerate, DurationHours: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "embedded delimiters must not create extra rows")
	assert.Len(t, rows[1], len(Header))
	assert.Equal(t, "Review, then \"ship\"\nfollow-up", rows[1][1])
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8.5", FormatHours(8.5))
	assert.Equal(t, "0", FormatHours(0))
	assert.Equal(t, "-0.5", FormatHours(-0.5))
	assert.Equal(t, "1.25", FormatHours(1.25))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultFilename)

	records := []task.Record{{Date: "2024-01-05", Name: "x", Priority: task.PriorityModerate, DurationHours: 2}}
	require.NoError(t, WriteFile(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Task,Priority"))
	assert.Contains(t, string(data), "2024-01-05,x,Moderate,2,,")

	// Overwrite replaces the previous export.
	require.NoError(t, WriteFile(path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Header, ",")+"\n", string(data))
}
