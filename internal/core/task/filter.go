package task

import "slices"

// Criteria selects records for the task list.
type Criteria struct {
	Date       string // exact YYYY-MM-DD match
	Priorities []Priority
}

// Match reports whether r is on the criteria date and has an accepted
// priority. An empty priority set matches nothing.
func (c Criteria) Match(r Record) bool {
	return r.Date == c.Date && slices.Contains(c.Priorities, r.Priority)
}

// Filter returns the records matching c in their original order. The result
// is never nil.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0)
	if len(c.Priorities) == 0 {
		return out
	}
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
