// Package analytics derives the chart data shown on the analytics view from
// the full set of recorded tasks. Every function is a pure reduction and is
// recomputed on each call.
package analytics

import (
	"slices"
	"strings"

	"github.com/colonyops/taskdash/internal/core/task"
)

// PriorityDistribution counts records per priority. Priorities with no
// records are absent from the result.
func PriorityDistribution(records []task.Record) map[task.Priority]int {
	out := make(map[task.Priority]int)
	for _, r := range records {
		out[r.Priority]++
	}
	return out
}

// DailyHours sums DurationHours per date. Negative durations are summed
// as recorded.
func DailyHours(records []task.Record) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range records {
		out[r.Date] += r.DurationHours
	}
	return out
}

// DailyTaskCount counts records per date.
func DailyTaskCount(records []task.Record) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		out[r.Date]++
	}
	return out
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary bundles the three aggregations with their totals.
type Summary struct {
	Total          int                   `json:"total"`
	TotalHours     float64               `json:"total_hours"`
	ByPriority     map[task.Priority]int `json:"by_priority"`
	HoursByDate    map[string]float64    `json:"hours_by_date"`
	TasksByDate    map[string]int        `json:"tasks_by_date"`
	NegativeByDate map[string]int        `json:"negative_by_date,omitempty"`
}

// Compute builds a Summary over records.
func Compute(records []task.Record) Summary {
	s := Summary{
		Total:       len(records),
		ByPriority:  PriorityDistribution(records),
		HoursByDate: DailyHours(records),
		TasksByDate: DailyTaskCount(records),
	}
	for _, r := range records {
		s.TotalHours += r.DurationHours
		if r.DurationHours < 0 {
			if s.NegativeByDate == nil {
				s.NegativeByDate = make(map[string]int)
			}
			s.NegativeByDate[r.Date]++
		}
	}
	return s
}

// PrioritySeries orders a priority distribution by display order.
func PrioritySeries(dist map[task.Priority]int) []Point {
	points := make([]Point, 0, len(dist))
	for _, p := range task.Priorities() {
		if n, ok := dist[p]; ok {
			points = append(points, Point{Label: string(p), Value: float64(n)})
		}
	}
	return points
}

// DateSeries orders a per-date mapping by ascending date.
func DateSeries[V int | float64](byDate map[string]V) []Point {
	points := make([]Point, 0, len(byDate))
	for date, v := range byDate {
		points = append(points, Point{Label: date, Value: float64(v)})
	}
	slices.SortFunc(points, func(a, b Point) int {
		return strings.Compare(a.Label, b.Label)
	})
	return points
}
