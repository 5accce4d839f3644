package analytics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskdash/internal/core/task"
)

func records() []task.Record {
	return []task.Record{
		{ID: "1", Date: "2024-01-05", Priority: task.PriorityCritical, DurationHours: 1.25},
		{ID: "2", Date: "2024-01-05", Priority: task.PriorityModerate, DurationHours: 2},
		{ID: "3", Date: "2024-01-03", Priority: task.PriorityCritical, DurationHours: 8.5},
		{ID: "4", Date: "2024-01-06", Priority: task.PriorityNoPriority, DurationHours: -0.5},
		{ID: "5", Date: "2024-01-06", Priority: task.PriorityModerate, DurationHours: 1},
	}
}

func TestPriorityDistribution(t *testing.T) {
	got := PriorityDistribution(records())
	want := map[task.Priority]int{
		task.PriorityCritical:   2,
		task.PriorityModerate:   2,
		task.PriorityNoPriority: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PriorityDistribution() mismatch (-want +got):\n%s", diff)
	}

	_, ok := got[task.PriorityImportant]
	assert.False(t, ok, "zero counts must be absent, not zero-filled")
}

func TestDailyHours(t *testing.T) {
	got := DailyHours(records())
	want := map[string]float64{
		"2024-01-03": 8.5,
		"2024-01-05": 3.25,
		"2024-01-06": 0.5,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("DailyHours() mismatch (-want +got):\n%s", diff)
	}
}

func TestDailyTaskCount(t *testing.T) {
	got := DailyTaskCount(records())
	want := map[string]int{"2024-01-03": 1, "2024-01-05": 2, "2024-01-06": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DailyTaskCount() mismatch (-want +got):\n%s", diff)
	}
}

func TestTotalsConsistent(t *testing.T) {
	cases := map[string][]task.Record{
		"empty":  nil,
		"single": records()[:1],
		"mixed":  records(),
	}

	for name, recs := range cases {
		t.Run(name, func(t *testing.T) {
			byPriority := 0
			for _, n := range PriorityDistribution(recs) {
				byPriority += n
			}
			byDate := 0
			for _, n := range DailyTaskCount(recs) {
				byDate += n
			}
			assert.Equal(t, len(recs), byPriority)
			assert.Equal(t, len(recs), byDate)
		})
	}
}

func TestCompute(t *testing.T) {
	s := Compute(records())

	assert.Equal(t, 5, s.Total)
	assert.InDelta(t, 12.25, s.TotalHours, 1e-9)
	assert.Equal(t, map[string]int{"2024-01-06": 1}, s.NegativeByDate)

	empty := Compute(nil)
	assert.Zero(t, empty.Total)
	assert.Empty(t, empty.ByPriority)
	assert.Nil(t, empty.NegativeByDate)
}

func TestPrioritySeries(t *testing.T) {
	got := PrioritySeries(PriorityDistribution(records()))
	want := []Point{
		{Label: "Critical", Value: 2},
		{Label: "Moderate", Value: 2},
		{Label: "No Priority", Value: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrioritySeries() mismatch (-want +got):\n%s", diff)
	}
}

func TestDateSeries(t *testing.T) {
	got := DateSeries(DailyTaskCount(records()))
	want := []Point{
		{Label: "2024-01-03", Value: 1},
		{Label: "2024-01-05", Value: 2},
		{Label: "2024-01-06", Value: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DateSeries() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, DateSeries(map[string]float64{}))
}
