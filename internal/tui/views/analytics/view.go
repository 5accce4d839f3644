// Package analytics renders the whole-store charts tab.
package analytics

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/taskdash/internal/core/analytics"
	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
)

const (
	barChar      = "█"
	minBarWidth  = 10
	maxBarWidth  = 60
	emptyMessage = "No tasks recorded yet."
)

// Summarizer is the part of the task service the view reads from.
type Summarizer interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

// View is the Bubble Tea sub-model for the analytics tab. It holds the last
// computed summary; Refresh recomputes it from the store.
type View struct {
	tasks   Summarizer
	summary analytics.Summary
	err     error
	width   int
	height  int
}

func New(tasks Summarizer) *View {
	return &View{tasks: tasks}
}

func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *View) Summary() analytics.Summary { return v.summary }

// Refresh recomputes the aggregations over every stored record.
func (v *View) Refresh(ctx context.Context) error {
	s, err := v.tasks.Summary(ctx)
	v.err = err
	if err != nil {
		return err
	}
	v.summary = s
	return nil
}

// View renders the three charts stacked vertically.
func (v *View) View() string {
	if v.err != nil {
		return styles.TextErrorStyle.Render(fmt.Sprintf("failed to compute analytics: %v", v.err))
	}
	if v.summary.Total == 0 {
		return styles.EmptyStateStyle.Render(emptyMessage)
	}

	s := v.summary
	totals := styles.TextMutedStyle.Render(fmt.Sprintf(" %d tasks  %s hours", s.Total, export.FormatHours(s.TotalHours)))

	return lipgloss.JoinVertical(lipgloss.Left,
		totals,
		"",
		v.priorityChart(),
		"",
		v.hoursChart(),
		"",
		v.countChart(),
	)
}

func (v *View) barWidth(labelWidth int) int {
	width := v.width
	if width <= 0 {
		width = 80
	}
	return min(max(width-labelWidth-14, minBarWidth), maxBarWidth)
}

func (v *View) priorityChart() string {
	points := analytics.PrioritySeries(v.summary.ByPriority)
	labelWidth := labelsWidth(points)
	width := v.barWidth(labelWidth)
	peak := peakValue(points)

	rows := make([]string, 0, len(points))
	for _, p := range points {
		c := styles.PriorityColor(task.Priority(p.Label))
		rows = append(rows, row(p.Label, labelWidth, bar(p.Value, peak, width, c), fmt.Sprintf("%d", int(p.Value))))
	}
	return chart(styles.IconChart+" Task Distribution by Priority", rows)
}

func (v *View) hoursChart() string {
	points := analytics.DateSeries(v.summary.HoursByDate)
	labelWidth := labelsWidth(points)
	width := v.barWidth(labelWidth)
	peak := peakValue(points)

	rows := make([]string, 0, len(points))
	for _, p := range points {
		c := gradient(p.Value, peak)
		if p.Value < 0 {
			c = styles.ColorError
		}
		value := export.FormatHours(p.Value)
		if n := v.summary.NegativeByDate[p.Label]; n > 0 {
			value += styles.ChartNoteStyle.Render(fmt.Sprintf(" (%d negative)", n))
		}
		rows = append(rows, row(p.Label, labelWidth, bar(p.Value, peak, width, c), value))
	}
	return chart(styles.IconClock+" Daily Time Spent (Hours)", rows)
}

func (v *View) countChart() string {
	points := analytics.DateSeries(v.summary.TasksByDate)
	labelWidth := labelsWidth(points)
	width := v.barWidth(labelWidth)
	peak := peakValue(points)

	rows := make([]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, row(p.Label, labelWidth, bar(p.Value, peak, width, styles.ColorForString(p.Label)), fmt.Sprintf("%d", int(p.Value))))
	}
	return chart(styles.IconCalendar+" Tasks Completed Over Time", rows)
}

func chart(title string, rows []string) string {
	return styles.ChartTitleStyle.Render(title) + "\n" + strings.Join(rows, "\n")
}

func row(label string, labelWidth int, bar, value string) string {
	l := styles.ChartLabelStyle.Render(label + strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0)))
	return " " + l + "  " + bar + " " + styles.ChartValueStyle.Render(value)
}

// bar scales |value| against peak. Non-zero values always get at least
// one cell.
func bar(value, peak float64, width int, c color.Color) string {
	if peak <= 0 || value == 0 {
		return ""
	}
	n := int(math.Round(math.Abs(value) / peak * float64(width)))
	n = min(max(n, 1), width)
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat(barChar, n))
}

// gradient blends from the secondary to the primary theme color as value
// approaches peak.
func gradient(value, peak float64) color.Color {
	from, ok1 := colorful.MakeColor(styles.ColorSecondary)
	to, ok2 := colorful.MakeColor(styles.ColorPrimary)
	if !ok1 || !ok2 || peak <= 0 {
		return styles.ColorPrimary
	}
	t := math.Min(math.Abs(value)/peak, 1)
	return from.BlendLab(to, t).Clamped()
}

func peakValue(points []analytics.Point) float64 {
	var peak float64
	for _, p := range points {
		peak = math.Max(peak, math.Abs(p.Value))
	}
	return peak
}

func labelsWidth(points []analytics.Point) int {
	w := 0
	for _, p := range points {
		w = max(w, lipgloss.Width(p.Label))
	}
	return w
}
