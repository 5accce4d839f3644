package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/config"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/data/stores"
	"github.com/colonyops/taskdash/internal/printer"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/pkg/iojson"
)

var fixedNow = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

type harness struct {
	flags  *Flags
	app    *taskdash.App
	stdout bytes.Buffer
	stderr bytes.Buffer
	status bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Export.Dir = t.TempDir()

	n := 0
	builder := &task.Builder{
		Now:         func() time.Time { return fixedNow },
		NewID:       func() string { n++; return fmt.Sprintf("id-%d", n) },
		MissingTime: task.MissingTimeReject,
	}
	svc := taskdash.NewTaskService(stores.NewTaskStore(), builder, cfg.Export.Filename, zerolog.Nop())

	return &harness{
		flags: &Flags{Config: &cfg},
		app:   taskdash.NewApp(svc, stores.NewNotifyStore(0), &cfg),
	}
}

// run executes args against a root command carrying the registered
// subcommands. Exit codes are returned as errors instead of exiting.
func (h *harness) run(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) error {
	t.Helper()

	root := &cli.Command{
		Name:           "taskdash",
		Writer:         &h.stdout,
		ErrWriter:      &h.stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	register(root)

	ctx := printer.NewContext(context.Background(), printer.New(&h.status))
	return root.Run(ctx, append([]string{"taskdash"}, args...))
}

func writeRecords(t *testing.T, records ...task.Record) string {
	t.Helper()

	var buf bytes.Buffer
	for _, r := range records {
		require.NoError(t, iojson.WriteLine(&buf, r))
	}

	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func sampleRecords() []task.Record {
	return []task.Record{
		{ID: "a", Date: "2024-01-05", Name: "Design review", Priority: task.PriorityCritical, StartTime: "10:00", EndTime: "11:15", DurationHours: 1.25, Expenses: []string{}},
		{ID: "b", Date: "2024-01-05", Name: "Plan sprint", Priority: task.PriorityModerate, StartTime: "09:00", EndTime: "17:30", DurationHours: 8.5, Expenses: []string{"Lunch: $10"}},
		{ID: "c", Date: "2024-01-06", Name: "Fix bug", Priority: task.PriorityModerate, StartTime: "12:00", EndTime: "11:00", DurationHours: -1, Expenses: []string{}},
	}
}

func TestNewCmd_FromFlags(t *testing.T) {
	h := newHarness(t)
	cmd := NewNewCmd(h.flags, h.app)

	err := h.run(t, cmd.Register, "new",
		"--name", "Design review",
		"--priority", "critical",
		"--start", "10:00",
		"--end", "11:15",
		"--expense", "Lunch: $10",
		"--expense", "Taxi: $5",
		"--people", "Ana",
	)
	require.NoError(t, err)

	records, err := iojson.ReadLines[task.Record](&h.stdout)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, "2024-01-05", rec.Date)
	assert.Equal(t, task.PriorityCritical, rec.Priority)
	assert.InDelta(t, 1.25, rec.DurationHours, 1e-9)
	assert.Equal(t, []string{"Lunch: $10", "Taxi: $5"}, rec.Expenses)
	assert.Equal(t, "Ana", rec.People)
	assert.Contains(t, h.status.String(), "Task recorded")
}

func TestNewCmd_DefaultPriorityFromConfig(t *testing.T) {
	h := newHarness(t)
	h.app.Config.Tasks.DefaultPriority = "Emerging"
	cmd := NewNewCmd(h.flags, h.app)

	require.NoError(t, h.run(t, cmd.Register, "new", "--name", "x", "--start", "09:00", "--end", "10:00"))

	records, err := iojson.ReadLines[task.Record](&h.stdout)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, task.PriorityEmerging, records[0].Priority)
}

func TestNewCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "invalid priority",
			args: []string{"--name", "x", "--priority", "Urgent", "--start", "09:00", "--end", "10:00"},
			want: task.ErrInvalidPriority,
		},
		{
			name: "missing end time",
			args: []string{"--name", "x", "--start", "09:00"},
			want: task.ErrIncompleteTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			cmd := NewNewCmd(h.flags, h.app)

			err := h.run(t, cmd.Register, append([]string{"new"}, tt.args...)...)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestNewCmd_FormWhenNameMissing(t *testing.T) {
	h := newHarness(t)
	cmd := NewNewCmd(h.flags, h.app)

	called := false
	cmd.runForm = func(c *NewCmd) error {
		called = true
		c.in.Name = "From form"
		c.in.StartTime = "08:00"
		c.in.EndTime = "08:30"
		return nil
	}

	require.NoError(t, h.run(t, cmd.Register, "new"))
	assert.True(t, called)

	records, err := iojson.ReadLines[task.Record](&h.stdout)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "From form", records[0].Name)
	assert.InDelta(t, 0.5, records[0].DurationHours, 1e-9)
}

func TestListCmd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIDs   []string
		wantEmpty bool
	}{
		{name: "defaults to today", args: nil, wantIDs: []string{"a", "b"}},
		{name: "explicit date", args: []string{"--date", "2024-01-06"}, wantIDs: []string{"c"}},
		{name: "priority filter", args: []string{"--priority", "Critical"}, wantIDs: []string{"a"}},
		{name: "multiple priorities", args: []string{"-p", "critical", "-p", "moderate"}, wantIDs: []string{"a", "b"}},
		{name: "no match", args: []string{"--date", "2030-01-01"}, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			cmd := NewListCmd(h.flags, h.app)
			cmd.now = func() time.Time { return fixedNow }

			path := writeRecords(t, sampleRecords()...)
			args := append([]string{"list", "--json", "-f", path}, tt.args...)
			require.NoError(t, h.run(t, cmd.Register, args...))

			records, err := iojson.ReadLines[task.Record](&h.stdout)
			require.NoError(t, err)

			if tt.wantEmpty {
				assert.Empty(t, records)
				return
			}

			ids := make([]string, len(records))
			for i, r := range records {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListCmd_Table(t *testing.T) {
	h := newHarness(t)
	cmd := NewListCmd(h.flags, h.app)
	cmd.now = func() time.Time { return fixedNow }

	path := writeRecords(t, sampleRecords()...)
	require.NoError(t, h.run(t, cmd.Register, "list", "-f", path))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "DATE"))
	assert.Contains(t, lines[1], "Design review")
	assert.Contains(t, lines[1], "1.25")
	assert.Contains(t, lines[2], "8.5")
	assert.Contains(t, lines[2], "Lunch: $10")
}

func TestListCmd_EmptyMessage(t *testing.T) {
	h := newHarness(t)
	cmd := NewListCmd(h.flags, h.app)
	cmd.now = func() time.Time { return fixedNow }

	path := writeRecords(t, sampleRecords()...)
	require.NoError(t, h.run(t, cmd.Register, "list", "-f", path, "--date", "2030-01-01"))

	assert.Empty(t, h.stdout.String())
	assert.Equal(t, EmptyFilterMessage+"\n", h.stderr.String())
}

func TestListCmd_InvalidInput(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewListCmd(h.flags, h.app)

		err := h.run(t, cmd.Register, "list", "-f", writeRecords(t), "--date", "05/01/2024")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("bad priority", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewListCmd(h.flags, h.app)

		err := h.run(t, cmd.Register, "list", "-f", writeRecords(t), "--priority", "Urgent")
		require.ErrorIs(t, err, task.ErrInvalidPriority)
	})

	t.Run("invalid record", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewListCmd(h.flags, h.app)

		bad := sampleRecords()[1]
		bad.Name = "  "
		path := writeRecords(t, sampleRecords()[0], bad)

		err := h.run(t, cmd.Register, "list", "-f", path)
		require.Error(t, err)
		assert.Contains(t, h.status.String(), "records[1].task")
		assert.Empty(t, h.stdout.String())
	})
}

func TestStatsCmd_JSON(t *testing.T) {
	h := newHarness(t)
	cmd := NewStatsCmd(h.flags, h.app)

	path := writeRecords(t, sampleRecords()...)
	require.NoError(t, h.run(t, cmd.Register, "stats", "--json", "-f", path))

	var got struct {
		Total       int                `json:"total"`
		TotalHours  float64            `json:"total_hours"`
		ByPriority  map[string]int     `json:"by_priority"`
		HoursByDate map[string]float64 `json:"hours_by_date"`
		TasksByDate map[string]int     `json:"tasks_by_date"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))

	assert.Equal(t, 3, got.Total)
	assert.InDelta(t, 8.75, got.TotalHours, 1e-9)
	assert.Equal(t, map[string]int{"Critical": 1, "Moderate": 2}, got.ByPriority)
	assert.InDelta(t, 9.75, got.HoursByDate["2024-01-05"], 1e-9)
	assert.InDelta(t, -1, got.HoursByDate["2024-01-06"], 1e-9)
	assert.Equal(t, map[string]int{"2024-01-05": 2, "2024-01-06": 1}, got.TasksByDate)
}

func TestStatsCmd_Table(t *testing.T) {
	h := newHarness(t)
	cmd := NewStatsCmd(h.flags, h.app)

	path := writeRecords(t, sampleRecords()...)
	require.NoError(t, h.run(t, cmd.Register, "stats", "-f", path))

	out := h.stdout.String()
	assert.Contains(t, out, "TASKS  3")
	assert.Contains(t, out, "Critical  1")
	assert.Contains(t, out, "(1 negative)")
	// priorities are listed most urgent first
	assert.Less(t, strings.Index(out, "Critical"), strings.Index(out, "Moderate"))
}

func TestExportCmd(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewExportCmd(h.flags, h.app)

		path := writeRecords(t, sampleRecords()...)
		require.NoError(t, h.run(t, cmd.Register, "export", "-f", path, "--out", "-"))

		lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Date,Task,Priority,Duration (Hours),Start Time,End Time", lines[0])
		assert.Equal(t, "2024-01-05,Design review,Critical,1.25,10:00,11:15", lines[1])
	})

	t.Run("configured dir", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewExportCmd(h.flags, h.app)

		path := writeRecords(t, sampleRecords()...)
		require.NoError(t, h.run(t, cmd.Register, "export", "-f", path))

		data, err := os.ReadFile(h.app.Config.ExportPath())
		require.NoError(t, err)
		assert.Contains(t, string(data), "2024-01-06,Fix bug,Moderate,-1,12:00,11:00")
		assert.Contains(t, h.status.String(), h.app.Config.ExportPath())
	})

	t.Run("explicit path", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewExportCmd(h.flags, h.app)

		out := filepath.Join(t.TempDir(), "nested", "out.csv")
		require.NoError(t, h.run(t, cmd.Register, "export", "-f", writeRecords(t), "--out", out))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "Date,Task,Priority,Duration (Hours),Start Time,End Time\n", string(data))
	})
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		h := newHarness(t)
		cmd := NewConfigValidateCmd(h.flags)

		require.NoError(t, h.run(t, cmd.Register, "config", "validate"))
		assert.Contains(t, h.status.String(), "Configuration is valid")
	})

	t.Run("invalid json", func(t *testing.T) {
		h := newHarness(t)
		h.flags.Config.TUI.Theme = "neon"
		h.flags.Config.Export.Filename = "out.txt"
		cmd := NewConfigValidateCmd(h.flags)

		err := h.run(t, cmd.Register, "config", "validate", "--format", "json")
		require.Error(t, err)

		var got struct {
			Valid  bool `json:"valid"`
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
		assert.False(t, got.Valid)

		fields := make([]string, len(got.Errors))
		for i, e := range got.Errors {
			fields[i] = e.Field
		}
		assert.ElementsMatch(t, []string{"tui.theme", "export.filename"}, fields)
	})

	t.Run("export dir is a file", func(t *testing.T) {
		h := newHarness(t)
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		h.flags.Config.Export.Dir = file
		cmd := NewConfigValidateCmd(h.flags)

		err := h.run(t, cmd.Register, "config", "validate")
		require.Error(t, err)
		assert.Contains(t, h.status.String(), "export.dir")
	})
}
