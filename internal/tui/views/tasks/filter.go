package tasks

import (
	"fmt"
	"strings"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/core/validate"
	"github.com/colonyops/taskdash/internal/tui/components/form"
)

// Filter dialog field keys.
const (
	FieldDate       = "date"
	FieldPriorities = "priorities"
)

// NewFilterDialog builds the filter form prefilled with c.
func NewFilterDialog(c task.Criteria) *form.Dialog {
	selected := make([]string, 0, len(c.Priorities))
	for _, p := range c.Priorities {
		selected = append(selected, p.String())
	}

	date := form.NewTextField(FieldDate, "Date", "YYYY-MM-DD", c.Date).
		WithValidation(form.FieldValidation{
			Required: true,
			Check:    validate.Date,
		})
	priorities := form.NewMultiSelectFormField(FieldPriorities, "Priorities", task.PriorityNames(), selected)

	return form.NewDialog("Filter Tasks", []form.Field{date, priorities})
}

// CriteriaFromDialog reads a submitted filter dialog. An empty priority
// selection is valid and matches nothing.
func CriteriaFromDialog(d *form.Dialog) (task.Criteria, error) {
	date := strings.TrimSpace(d.String(FieldDate))
	if err := validate.Date(date); err != nil {
		return task.Criteria{}, fmt.Errorf("date: %w", err)
	}

	names := d.Strings(FieldPriorities)
	priorities := make([]task.Priority, 0, len(names))
	for _, name := range names {
		p, err := task.ParsePriority(name)
		if err != nil {
			return task.Criteria{}, fmt.Errorf("priorities: %w", err)
		}
		priorities = append(priorities, p)
	}

	return task.Criteria{Date: date, Priorities: canonical(priorities)}, nil
}
