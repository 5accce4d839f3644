// Package tasks implements the filtered task list tab: a date and priority
// filter bar over the records of one day, with a detail modal per task.
package tasks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
)

// EmptyMessage is shown when the filter matches nothing.
const EmptyMessage = "No tasks found for the selected criteria."

// Lister is the part of the task service the view reads from.
type Lister interface {
	Filter(ctx context.Context, c task.Criteria) ([]task.Record, error)
}

// OpenDetailMsg asks the parent model to show the detail modal.
type OpenDetailMsg struct {
	Record task.Record
}

// OpenFilterMsg asks the parent model to open the filter dialog.
type OpenFilterMsg struct {
	Criteria task.Criteria
}

// View is the Bubble Tea sub-model for the tasks tab.
type View struct {
	tasks    Lister
	now      func() time.Time
	criteria task.Criteria
	records  []task.Record
	selected int
	offset   int
	err      error
	width    int
	height   int
}

// New creates a tasks view filtered to today with every priority selected.
func New(tasks Lister, now func() time.Time) *View {
	if now == nil {
		now = time.Now
	}
	return &View{
		tasks: tasks,
		now:   now,
		criteria: task.Criteria{
			Date:       now().Format(task.DateLayout),
			Priorities: task.Priorities(),
		},
	}
}

// SetSize sets the available content area.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clamp()
}

func (v *View) Criteria() task.Criteria { return v.criteria }
func (v *View) Records() []task.Record  { return v.records }
func (v *View) Err() error              { return v.err }

// SetCriteria replaces the filter and reloads.
func (v *View) SetCriteria(ctx context.Context, c task.Criteria) error {
	v.criteria = task.Criteria{
		Date:       c.Date,
		Priorities: canonical(c.Priorities),
	}
	v.selected = 0
	v.offset = 0
	return v.Refresh(ctx)
}

// Refresh reloads the records matching the current filter.
func (v *View) Refresh(ctx context.Context) error {
	records, err := v.tasks.Filter(ctx, v.criteria)
	v.err = err
	if err != nil {
		v.records = nil
		return err
	}
	v.records = records
	v.clamp()
	return nil
}

// Selected returns the highlighted record.
func (v *View) Selected() (task.Record, bool) {
	if v.selected < 0 || v.selected >= len(v.records) {
		return task.Record{}, false
	}
	return v.records[v.selected], true
}

// Update handles a key press. The returned error comes from reloading
// after a filter change.
func (v *View) Update(ctx context.Context, msg tea.KeyPressMsg) (tea.Cmd, error) {
	switch keyStr := msg.String(); keyStr {
	case "h", "left":
		return nil, v.shiftDate(ctx, -1)
	case "l", "right":
		return nil, v.shiftDate(ctx, 1)
	case "t":
		return nil, v.setDate(ctx, v.now().Format(task.DateLayout))
	case "j", "down":
		v.move(1)
	case "k", "up":
		v.move(-1)
	case "g", "home":
		v.selected = 0
		v.clamp()
	case "G", "end":
		v.selected = len(v.records) - 1
		v.clamp()
	case "0":
		return nil, v.toggleAll(ctx)
	case "1", "2", "3", "4", "5", "6":
		idx := int(keyStr[0] - '1')
		return nil, v.togglePriority(ctx, task.Priorities()[idx])
	case "f":
		c := v.criteria
		return func() tea.Msg { return OpenFilterMsg{Criteria: c} }, nil
	case "enter":
		if rec, ok := v.Selected(); ok {
			return func() tea.Msg { return OpenDetailMsg{Record: rec} }, nil
		}
	}
	return nil, nil
}

func (v *View) shiftDate(ctx context.Context, days int) error {
	d, err := time.Parse(task.DateLayout, v.criteria.Date)
	if err != nil {
		d = v.now()
	}
	return v.setDate(ctx, d.AddDate(0, 0, days).Format(task.DateLayout))
}

func (v *View) setDate(ctx context.Context, date string) error {
	c := v.criteria
	c.Date = date
	return v.SetCriteria(ctx, c)
}

func (v *View) togglePriority(ctx context.Context, p task.Priority) error {
	c := v.criteria
	if slices.Contains(c.Priorities, p) {
		c.Priorities = slices.DeleteFunc(slices.Clone(c.Priorities), func(q task.Priority) bool { return q == p })
	} else {
		c.Priorities = append(slices.Clone(c.Priorities), p)
	}
	return v.SetCriteria(ctx, c)
}

// toggleAll selects every priority, or clears the set when all are
// already selected.
func (v *View) toggleAll(ctx context.Context) error {
	c := v.criteria
	if len(c.Priorities) == len(task.Priorities()) {
		c.Priorities = []task.Priority{}
	} else {
		c.Priorities = task.Priorities()
	}
	return v.SetCriteria(ctx, c)
}

// canonical orders priorities by display order and drops duplicates.
func canonical(ps []task.Priority) []task.Priority {
	out := make([]task.Priority, 0, len(ps))
	for _, p := range task.Priorities() {
		if slices.Contains(ps, p) {
			out = append(out, p)
		}
	}
	return out
}

func (v *View) move(delta int) {
	v.selected += delta
	v.clamp()
}

// clamp keeps the selection in range and scrolls it into view.
func (v *View) clamp() {
	v.selected = min(max(v.selected, 0), max(len(v.records)-1, 0))

	visible := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+visible {
		v.offset = v.selected - visible + 1
	}
	v.offset = max(v.offset, 0)
}

// visibleRows is the number of task rows that fit under the filter bar
// and the column header.
func (v *View) visibleRows() int {
	if v.height <= 0 {
		return max(len(v.records), 1)
	}
	return max(v.height-4, 1)
}

// View renders the filter bar and the task table.
func (v *View) View() string {
	parts := []string{v.renderFilterBar(), ""}

	switch {
	case v.err != nil:
		parts = append(parts, styles.TextErrorStyle.Render(fmt.Sprintf("failed to load tasks: %v", v.err)))
	case len(v.records) == 0:
		parts = append(parts, styles.EmptyStateStyle.Render(EmptyMessage))
	default:
		parts = append(parts, v.renderTable())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *View) renderFilterBar() string {
	date := styles.TextPrimaryBoldStyle.Render(styles.IconCalendar + " " + v.criteria.Date)
	if v.criteria.Date == v.now().Format(task.DateLayout) {
		date += styles.TextMutedStyle.Render(" (today)")
	}

	boxes := make([]string, 0, len(task.Priorities()))
	for i, p := range task.Priorities() {
		mark := "[ ]"
		label := styles.TextMutedStyle.Render(p.String())
		if slices.Contains(v.criteria.Priorities, p) {
			mark = "[x]"
			label = styles.PriorityStyle(p).Render(p.String())
		}
		boxes = append(boxes, fmt.Sprintf("%s %d %s", mark, i+1, label))
	}

	return " " + date + "   " + strings.Join(boxes, "  ")
}

const (
	colPriority = 12
	colTime     = 13
	colHours    = 7
)

func (v *View) renderTable() string {
	width := v.width
	if width <= 0 {
		width = 80
	}
	nameWidth := max(width-colPriority-colTime-colHours-6, 10)

	header := styles.HeaderStyle.Render(
		"  " + pad("TASK", nameWidth) + " " + pad("PRIORITY", colPriority) + " " + pad("TIME", colTime) + " " + "HOURS",
	)

	end := min(v.offset+v.visibleRows(), len(v.records))
	lines := []string{header}
	for i := v.offset; i < end; i++ {
		lines = append(lines, v.renderRow(v.records[i], nameWidth, i == v.selected))
	}

	if hidden := len(v.records) - end; hidden > 0 {
		lines = append(lines, styles.TextMutedStyle.Render(fmt.Sprintf("  ↓ %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderRow(r task.Record, nameWidth int, selected bool) string {
	name := pad(ansi.Truncate(oneLine(r.Name), nameWidth, "…"), nameWidth)
	priority := styles.PriorityStyle(r.Priority).Render(pad(r.Priority.String(), colPriority))
	span := pad(timeSpan(r), colTime)
	hours := export.FormatHours(r.DurationHours)

	if r.DurationHours < 0 {
		hours = styles.TextWarningStyle.Render(hours)
	}

	row := name + " " + priority + " " + span + " " + hours
	if selected {
		return styles.ListSelectedStyle.Render(row)
	}
	return styles.ListItemStyle.Render(row)
}

func timeSpan(r task.Record) string {
	if r.StartTime == "" && r.EndTime == "" {
		return "-"
	}
	return r.StartTime + "–" + r.EndTime
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
