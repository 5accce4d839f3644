package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskdash/internal/core/analytics"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/pkg/tuitest"
)

type fakeSummarizer struct {
	records []task.Record
	err     error
}

func (f fakeSummarizer) Summary(context.Context) (analytics.Summary, error) {
	if f.err != nil {
		return analytics.Summary{}, f.err
	}
	return analytics.Compute(f.records), nil
}

func TestView_Empty(t *testing.T) {
	v := New(fakeSummarizer{})
	require.NoError(t, v.Refresh(context.Background()))

	assert.Contains(t, tuitest.StripANSI(v.View()), emptyMessage)
}

func TestView_Error(t *testing.T) {
	v := New(fakeSummarizer{err: errors.New("boom")})
	require.Error(t, v.Refresh(context.Background()))

	assert.Contains(t, tuitest.StripANSI(v.View()), "failed to compute analytics: boom")
}

func TestView_Charts(t *testing.T) {
	v := New(fakeSummarizer{records: []task.Record{
		{ID: "a", Date: "2024-01-05", Name: "a", Priority: task.PriorityCritical, DurationHours: 1.25},
		{ID: "b", Date: "2024-01-05", Name: "b", Priority: task.PriorityModerate, DurationHours: 8.5},
		{ID: "c", Date: "2024-01-06", Name: "c", Priority: task.PriorityModerate, DurationHours: -1},
	}})
	v.SetSize(100, 30)
	require.NoError(t, v.Refresh(context.Background()))

	out := tuitest.StripANSI(v.View())

	assert.Contains(t, out, "3 tasks  8.75 hours")
	assert.Contains(t, out, "Task Distribution by Priority")
	assert.Contains(t, out, "Daily Time Spent (Hours)")
	assert.Contains(t, out, "Tasks Completed Over Time")
	assert.Contains(t, out, "(1 negative)")
	assert.NotContains(t, out, "Important", "absent priorities are not charted")

	lines := strings.Split(out, "\n")
	critical := lineWith(lines, "Critical")
	moderate := lineWith(lines, "Moderate")
	require.NotEmpty(t, critical)
	require.NotEmpty(t, moderate)
	assert.Less(t, strings.Count(critical, barChar), strings.Count(moderate, barChar))
	assert.Less(t, strings.Index(out, "Critical"), strings.Index(out, "Moderate"), "priority display order")

	assert.Equal(t, 3, v.Summary().Total)
}

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		peak  float64
		want  int
	}{
		{"zero value", 0, 10, 0},
		{"zero peak", 5, 0, 0},
		{"full", 10, 10, 20},
		{"half", 5, 10, 10},
		{"tiny still visible", 0.01, 10, 1},
		{"negative uses magnitude", -5, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tuitest.StripANSI(bar(tt.value, tt.peak, 20, styles.ColorPrimary))
			assert.Equal(t, tt.want, strings.Count(got, barChar))
		})
	}
}

func TestGradient(t *testing.T) {
	assert.NotNil(t, gradient(5, 10))
	assert.Equal(t, styles.ColorPrimary, gradient(5, 0))
}

func lineWith(lines []string, s string) string {
	for _, l := range lines {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}
