package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/colonyops/taskdash/internal/core/notify"
)

// DefaultNotifyLimit caps how many notifications the history keeps.
const DefaultNotifyLimit = 200

// NotifyStore implements notify.Store in memory. Once the limit is reached
// the oldest notifications are dropped.
type NotifyStore struct {
	mu     sync.Mutex
	items  []notify.Notification
	nextID int64
	limit  int
}

var _ notify.Store = (*NotifyStore)(nil)

// NewNotifyStore creates an in-memory notification store keeping at most
// limit entries. A limit <= 0 uses DefaultNotifyLimit.
func NewNotifyStore(limit int) *NotifyStore {
	if limit <= 0 {
		limit = DefaultNotifyLimit
	}
	return &NotifyStore{limit: limit}
}

// Save records a notification and returns its assigned ID.
func (s *NotifyStore) Save(_ context.Context, n notify.Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	if len(s.items) > s.limit {
		s.items = slices.Delete(s.items, 0, len(s.items)-s.limit)
	}
	return n.ID, nil
}

// List returns all notifications ordered by newest first.
func (s *NotifyStore) List(_ context.Context) ([]notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out, nil
}

// Clear deletes all notifications.
func (s *NotifyStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

// Count returns the number of stored notifications.
func (s *NotifyStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}
