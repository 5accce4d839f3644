// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/taskdash/internal/core/task"
)

// TaskName validates a task name is non-empty after trimming whitespace.
func TaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return task.ErrNameRequired
	}
	return nil
}

// TimeOfDay accepts an empty value or a valid HH:MM clock time.
func TimeOfDay(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := task.ParseTimeOfDay(s); err != nil {
		return fmt.Errorf("%q is not a time in HH:MM format", s)
	}
	return nil
}

// Date validates a YYYY-MM-DD calendar date.
func Date(s string) error {
	if _, err := time.Parse(task.DateLayout, s); err != nil {
		return fmt.Errorf("%q is not a date in YYYY-MM-DD format", s)
	}
	return nil
}

// Priority validates a priority name, ignoring case.
func Priority(s string) error {
	_, err := task.ParsePriority(s)
	return err
}

const durationTolerance = 1e-6

// Record validates an already-built record field by field, collecting every
// problem rather than stopping at the first. When both times parse, the
// stored duration must match them.
func Record(r task.Record) error {
	var errs criterio.FieldErrorsBuilder

	if r.ID == "" {
		errs = errs.Append("id", fmt.Errorf("id is required"))
	}
	if err := Date(r.Date); err != nil {
		errs = errs.Append("date", err)
	}
	if err := TaskName(r.Name); err != nil {
		errs = errs.Append("task", err)
	}
	if !r.Priority.IsValid() {
		errs = errs.Append("priority", fmt.Errorf("%w: %q", task.ErrInvalidPriority, r.Priority))
	}
	if err := TimeOfDay(r.StartTime); err != nil {
		errs = errs.Append(task.FieldStartTime, err)
	}
	if err := TimeOfDay(r.EndTime); err != nil {
		errs = errs.Append(task.FieldEndTime, err)
	}
	if hours, err := task.Duration(r.StartTime, r.EndTime); err == nil && math.Abs(hours-r.DurationHours) > durationTolerance {
		errs = errs.Append("duration_hours",
			fmt.Errorf("%v does not match %s-%s (%v hours)", r.DurationHours, r.StartTime, r.EndTime, hours))
	}
	for i, e := range r.Expenses {
		if strings.TrimSpace(e) == "" {
			errs = errs.Append(fmt.Sprintf("expenses[%d]", i), fmt.Errorf("expense entry is empty"))
		}
	}

	return errs.ToError()
}
