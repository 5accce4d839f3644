package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: "1", Date: "2024-01-05", Name: "Design review", Priority: PriorityCritical},
		{ID: "2", Date: "2024-01-05", Name: "Email triage", Priority: PriorityModerate},
		{ID: "3", Date: "2024-01-06", Name: "Planning", Priority: PriorityCritical},
		{ID: "4", Date: "2024-01-05", Name: "Docs", Priority: PriorityCritical},
	}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "date and single priority",
			criteria: Criteria{Date: "2024-01-05", Priorities: []Priority{PriorityCritical}},
			want:     []string{"1", "4"},
		},
		{
			name:     "all priorities keeps insertion order",
			criteria: Criteria{Date: "2024-01-05", Priorities: Priorities()},
			want:     []string{"1", "2", "4"},
		},
		{
			name:     "no date match",
			criteria: Criteria{Date: "2023-12-31", Priorities: Priorities()},
			want:     []string{},
		},
		{
			name:     "empty priority set matches nothing",
			criteria: Criteria{Date: "2024-01-05"},
			want:     []string{},
		},
		{
			name:     "date is exact not prefix",
			criteria: Criteria{Date: "2024-01", Priorities: Priorities()},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.criteria)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyPrioritiesAnyDate(t *testing.T) {
	records := sampleRecords()
	for _, date := range []string{"2024-01-05", "2024-01-06", "", "nonsense"} {
		assert.Empty(t, Filter(records, Criteria{Date: date, Priorities: []Priority{}}), "date %q", date)
	}
}

func TestFilter_NilStore(t *testing.T) {
	got := Filter(nil, Criteria{Date: "2024-01-05", Priorities: Priorities()})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
