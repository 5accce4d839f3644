package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned when a task is submitted without a name.
	ErrNameRequired = errors.New("task name is required")
	// ErrInvalidPriority is returned for a priority outside the known set.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrIncompleteTimeRange is returned when a start or end time is missing
	// or cannot be parsed as HH:MM.
	ErrIncompleteTimeRange = errors.New("incomplete time range")
	// ErrDuplicateID is returned when a store already holds a record with
	// the same ID.
	ErrDuplicateID = errors.New("duplicate task id")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("task not found")
)

// Time field names reported by TimeError.
const (
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

// TimeError reports which time field made a range incomplete.
// It unwraps to ErrIncompleteTimeRange.
type TimeError struct {
	Field string
	Value string
}

func (e *TimeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s is missing", ErrIncompleteTimeRange, e.Field)
	}
	return fmt.Sprintf("%s: %s %q is not HH:MM", ErrIncompleteTimeRange, e.Field, e.Value)
}

func (e *TimeError) Unwrap() error { return ErrIncompleteTimeRange }
