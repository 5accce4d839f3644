package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_GetOrSet(t *testing.T) {
	s := New[string, string]()

	calls := 0
	render := func() string {
		calls++
		return "rendered"
	}

	assert.Equal(t, "rendered", s.GetOrSet("task-1", render))
	assert.Equal(t, "rendered", s.GetOrSet("task-1", render))
	assert.Equal(t, 1, calls, "second lookup should hit the cache")
}

func TestStore_DeleteClear(t *testing.T) {
	s := New[string, string]()
	s.Set("a", "1")
	s.Set("b", "2")

	s.Delete("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int]()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
			s.Get(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, s.Len())
}
