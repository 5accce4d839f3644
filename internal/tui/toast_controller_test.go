package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskdash/internal/core/notify"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController(0)

	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "Task saved"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "Task saved", c.Toasts()[0].notification.Message)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_error_lasts_longer(t *testing.T) {
	c := NewToastController(time.Second)

	c.Push(notify.Notification{Level: notify.LevelError, Message: "export failed"})

	assert.Equal(t, 2*time.Second, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController(0)

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{
			Level:   notify.LevelInfo,
			Message: fmt.Sprintf("toast %d", i),
		})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "toast 2", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick(t *testing.T) {
	tests := []struct {
		name      string
		ticks     []time.Duration
		wantAlive []string
	}{
		{
			name:      "decrements without expiring",
			ticks:     []time.Duration{time.Second},
			wantAlive: []string{"info", "error"},
		},
		{
			name:      "info expires before error",
			ticks:     []time.Duration{3 * time.Second, 3 * time.Second},
			wantAlive: []string{"error"},
		},
		{
			name:      "everything expires",
			ticks:     []time.Duration{11 * time.Second},
			wantAlive: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewToastController(5 * time.Second)
			c.Push(notify.Notification{Level: notify.LevelInfo, Message: "info"})
			c.Push(notify.Notification{Level: notify.LevelError, Message: "error"})

			for _, d := range tt.ticks {
				c.Tick(d)
			}

			got := []string{}
			for _, ts := range c.Toasts() {
				got = append(got, ts.notification.Message)
			}
			assert.Equal(t, tt.wantAlive, got)
		})
	}
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController(0)
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})

	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
}

func TestToastController_Dismiss_empty(t *testing.T) {
	c := NewToastController(0)
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController(0)
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "a"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "b"})

	c.DismissAll()

	assert.False(t, c.HasToasts())
	assert.Empty(t, c.Toasts())
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController(0)
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())

	c.SetTicking(false)
	assert.False(t, c.Ticking())
}
