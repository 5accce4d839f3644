// Package task defines the task record domain model, its construction from
// form input, and the date/priority filter over recorded tasks.
package task

import (
	"fmt"
	"strings"
)

// Priority is the closed set of labels attached to a task.
type Priority string

const (
	PriorityCritical   Priority = "Critical"
	PriorityImportant  Priority = "Important"
	PriorityEmerging   Priority = "Emerging"
	PriorityModerate   Priority = "Moderate"
	PriorityUndefined  Priority = "Undefined"
	PriorityNoPriority Priority = "No Priority"
)

// DefaultPriority is preselected in the task form.
const DefaultPriority = PriorityModerate

var priorities = []Priority{
	PriorityCritical,
	PriorityImportant,
	PriorityEmerging,
	PriorityModerate,
	PriorityUndefined,
	PriorityNoPriority,
}

// Priorities returns all priorities in display order, most urgent first.
func Priorities() []Priority {
	out := make([]Priority, len(priorities))
	copy(out, priorities)
	return out
}

// PriorityNames returns the priority labels in display order.
func PriorityNames() []string {
	names := make([]string, len(priorities))
	for i, p := range priorities {
		names[i] = string(p)
	}
	return names
}

// IsValid reports whether p is one of the six known priorities.
func (p Priority) IsValid() bool {
	return p.Order() >= 0
}

// Order returns the display position of p, or -1 for an unknown priority.
func (p Priority) Order() int {
	for i, known := range priorities {
		if p == known {
			return i
		}
	}
	return -1
}

func (p Priority) String() string { return string(p) }

// ParsePriority resolves s to a known priority. Matching ignores case and
// surrounding whitespace; anything else returns ErrInvalidPriority.
func ParsePriority(s string) (Priority, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range priorities {
		if strings.EqualFold(trimmed, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, string(p))
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Record is one logged unit of work. Records are created once by a Builder
// and never modified afterwards.
type Record struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"` // YYYY-MM-DD
	Name              string   `json:"task"`
	Priority          Priority `json:"priority"`
	StartTime         string   `json:"start_time"` // HH:MM
	EndTime           string   `json:"end_time"`   // HH:MM
	DurationHours     float64  `json:"duration_hours"`
	ResearchTime      string   `json:"research_time,omitempty"`
	RoadblockTime     string   `json:"roadblock_time,omitempty"`
	People            string   `json:"people,omitempty"`
	Tools             string   `json:"tools,omitempty"`
	Resources         string   `json:"resources,omitempty"`
	ResearchSources   string   `json:"research_sources,omitempty"`
	Roadblocks        string   `json:"roadblocks,omitempty"`
	ResearchCompleted string   `json:"research_completed,omitempty"`
	ResearchNeeded    string   `json:"research_needed,omitempty"`
	Accomplishments   string   `json:"accomplishments,omitempty"`
	ErrorRecognition  string   `json:"error_recognition,omitempty"`
	AdditionalTasks   string   `json:"additional_tasks,omitempty"`
	Expenses          []string `json:"expenses"`
}

// Validate checks the invariants a stored record must hold.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is empty")
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, string(r.Priority))
	}
	for i, e := range r.Expenses {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("expenses[%d] is empty", i)
		}
	}
	return nil
}
