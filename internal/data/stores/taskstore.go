package stores

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/colonyops/taskdash/internal/core/task"
)

// TaskStore implements task.Store in memory. Records live for the lifetime
// of the process and are kept in insertion order.
type TaskStore struct {
	mu      sync.RWMutex
	records []task.Record
	byID    map[string]int
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{byID: make(map[string]int)}
}

// Append adds a record at the end of the store.
// Returns task.ErrDuplicateID if the ID is already present.
func (s *TaskStore) Append(_ context.Context, r task.Record) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("append task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[r.ID]; ok {
		return fmt.Errorf("append task %s: %w", r.ID, task.ErrDuplicateID)
	}

	r.Expenses = slices.Clone(r.Expenses)
	s.byID[r.ID] = len(s.records)
	s.records = append(s.records, r)
	return nil
}

// List returns a copy of all records in insertion order.
func (s *TaskStore) List(_ context.Context) ([]task.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Record, len(s.records))
	for i, r := range s.records {
		r.Expenses = slices.Clone(r.Expenses)
		out[i] = r
	}
	return out, nil
}

// Get returns the record with the given ID.
func (s *TaskStore) Get(_ context.Context, id string) (task.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return task.Record{}, task.ErrNotFound
	}
	r := s.records[idx]
	r.Expenses = slices.Clone(r.Expenses)
	return r, nil
}

// Len returns the number of stored records.
func (s *TaskStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
