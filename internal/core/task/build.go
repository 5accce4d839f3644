package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for Record.Date.
const DateLayout = "2006-01-02"

// timeLayouts are accepted for start and end times, short form first.
var timeLayouts = []string{"15:04", "15:04:05"}

// MissingTimePolicy decides what Build does with an empty or unparsable
// start/end time.
type MissingTimePolicy string

const (
	// MissingTimeReject fails construction with ErrIncompleteTimeRange.
	MissingTimeReject MissingTimePolicy = "reject"
	// MissingTimeZero records a zero duration, keeping the times that parse
	// and clearing the rest.
	MissingTimeZero MissingTimePolicy = "zero"
)

// IsValid reports whether p is a known policy.
func (p MissingTimePolicy) IsValid() bool {
	switch p {
	case MissingTimeReject, MissingTimeZero:
		return true
	default:
		return false
	}
}

// Input holds the values of one form submission. It is built fresh for every
// submission and never mutated by the builder.
type Input struct {
	Name              string
	Priority          string
	StartTime         string
	EndTime           string
	ResearchTime      string
	RoadblockTime     string
	People            string
	Tools             string
	Resources         string
	ResearchSources   string
	Roadblocks        string
	ResearchCompleted string
	ResearchNeeded    string
	Accomplishments   string
	ErrorRecognition  string
	AdditionalTasks   string
	Expenses          string // one item per line
}

// Builder turns form input into records.
type Builder struct {
	Now         func() time.Time
	NewID       func() string
	MissingTime MissingTimePolicy
}

// NewBuilder returns a Builder using the wall clock and random UUIDs.
func NewBuilder(policy MissingTimePolicy) *Builder {
	return &Builder{
		Now:         time.Now,
		NewID:       uuid.NewString,
		MissingTime: policy,
	}
}

// Build validates in and produces a new record dated today.
func (b *Builder) Build(in Input) (Record, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Record{}, ErrNameRequired
	}

	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return Record{}, err
	}

	start := strings.TrimSpace(in.StartTime)
	end := strings.TrimSpace(in.EndTime)

	hours, err := Duration(start, end)
	if err != nil {
		if b.MissingTime != MissingTimeZero || !errors.Is(err, ErrIncompleteTimeRange) {
			return Record{}, err
		}
		hours = 0
		start, end = clearUnparsable(start), clearUnparsable(end)
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	newID := uuid.NewString
	if b.NewID != nil {
		newID = b.NewID
	}

	return Record{
		ID:                newID(),
		Date:              now().Format(DateLayout),
		Name:              in.Name,
		Priority:          priority,
		StartTime:         start,
		EndTime:           end,
		DurationHours:     hours,
		ResearchTime:      in.ResearchTime,
		RoadblockTime:     in.RoadblockTime,
		People:            in.People,
		Tools:             in.Tools,
		Resources:         in.Resources,
		ResearchSources:   in.ResearchSources,
		Roadblocks:        in.Roadblocks,
		ResearchCompleted: in.ResearchCompleted,
		ResearchNeeded:    in.ResearchNeeded,
		Accomplishments:   in.Accomplishments,
		ErrorRecognition:  in.ErrorRecognition,
		AdditionalTasks:   in.AdditionalTasks,
		Expenses:          ParseExpenses(in.Expenses),
	}, nil
}

// clearUnparsable drops a time that cannot be read back as HH:MM, so
// records built under the zero policy still decode and validate.
func clearUnparsable(s string) string {
	if _, err := ParseTimeOfDay(s); err != nil {
		return ""
	}
	return s
}

// Duration returns end minus start in fractional hours. Both values are
// times of day on the same date; an end before the start yields a negative
// duration.
func Duration(start, end string) (float64, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, &TimeError{Field: FieldStartTime, Value: start}
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, &TimeError{Field: FieldEndTime, Value: end}
	}
	return e.Sub(s).Hours(), nil
}

// ParseTimeOfDay parses "HH:MM" (or "HH:MM:SS") on a fixed reference date.
func ParseTimeOfDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseExpenses splits a multi-line string into expense items, dropping
// blank lines and keeping order.
func ParseExpenses(raw string) []string {
	items := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
