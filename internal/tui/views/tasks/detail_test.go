package tasks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/pkg/tuitest"
)

func TestMarkdown(t *testing.T) {
	base := task.Record{
		ID:            "a",
		Date:          "2024-01-05",
		Name:          "Design review",
		Priority:      task.PriorityCritical,
		StartTime:     "10:00",
		EndTime:       "11:15",
		DurationHours: 1.25,
	}

	t.Run("minimal record", func(t *testing.T) {
		md := Markdown(base)

		assert.Contains(t, md, "# Design review")
		assert.Contains(t, md, "**Priority:** Critical")
		assert.Contains(t, md, "**Duration:** 1.25 hours")
		assert.Contains(t, md, "**Time:** 10:00 - 11:15")
		assert.Contains(t, md, "## People Involved\n\nNone specified")
		assert.Contains(t, md, "## Tools & Resources\n\nNone specified")
		assert.NotContains(t, md, "Roadblocks")
		assert.NotContains(t, md, "Accomplishments")
		assert.NotContains(t, md, "Expenses")
	})

	t.Run("optional sections when present", func(t *testing.T) {
		r := base
		r.People = "Alice, Bob"
		r.Roadblocks = "Waiting on API keys"
		r.Accomplishments = "Shipped v1"
		r.Expenses = []string{"Lunch: $10", "Taxi: $5"}

		md := Markdown(r)

		assert.Contains(t, md, "## People Involved\n\nAlice, Bob")
		assert.Contains(t, md, "## Roadblocks\n\nWaiting on API keys")
		assert.Contains(t, md, "## Accomplishments\n\nShipped v1")
		assert.Contains(t, md, "## Expenses\n\n- Lunch: $10\n- Taxi: $5\n")
	})

	t.Run("whitespace-only sections are omitted", func(t *testing.T) {
		r := base
		r.Roadblocks = "  \n "
		assert.NotContains(t, Markdown(r), "Roadblocks")
	})

	t.Run("no times", func(t *testing.T) {
		r := base
		r.StartTime, r.EndTime, r.DurationHours = "", "", 0
		md := Markdown(r)
		assert.NotContains(t, md, "**Time:**")
		assert.Contains(t, md, "**Duration:** 0.00 hours")
	})
}

func TestDetailModal(t *testing.T) {
	r := task.Record{
		ID:            "a",
		Date:          "2024-01-05",
		Name:          "Design review",
		Priority:      task.PriorityCritical,
		DurationHours: 1.25,
		Tools:         "Figma",
	}

	cache := NewRenderCache()
	m := NewDetailModal(r, cache, 100, 40)

	content := tuitest.StripANSI(m.Content())
	assert.Contains(t, content, "Design review")
	assert.Contains(t, content, "Figma")
	assert.Contains(t, content, "None specified")
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, "a", m.Record().ID)

	t.Run("cache hit reuses rendering", func(t *testing.T) {
		again := NewDetailModal(r, cache, 100, 40)
		assert.Equal(t, m.Content(), again.Content())
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("width is part of the cache key", func(t *testing.T) {
		NewDetailModal(r, cache, 140, 40)
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("nil cache", func(t *testing.T) {
		m := NewDetailModal(r, nil, 100, 40)
		assert.Contains(t, tuitest.StripANSI(m.Content()), "Design review")
	})

	t.Run("overlay", func(t *testing.T) {
		out := tuitest.StripANSI(m.Overlay(strings.Repeat(strings.Repeat(" ", 100)+"\n", 39)+strings.Repeat(" ", 100), 100, 40))
		require.NotEmpty(t, out)
		assert.Contains(t, out, "Task Details")
		assert.Contains(t, out, "[esc] close")
	})
}

func TestDetailModalWidth(t *testing.T) {
	assert.Equal(t, detailMinWidth, detailModalWidth(60))
	assert.Equal(t, 70, detailModalWidth(100))
	assert.Equal(t, 36, detailModalWidth(40))
}
