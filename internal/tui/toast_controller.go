package tui

import (
	"time"

	"github.com/colonyops/taskdash/internal/core/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 5
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of active toasts: push, eviction,
// TTL countdown and dismissal.
type ToastController struct {
	toasts  []toast
	ttl     time.Duration
	ticking bool
}

// NewToastController creates a controller whose toasts live for ttl.
// A ttl <= 0 uses defaultToastTTL.
func NewToastController(ttl time.Duration) *ToastController {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return &ToastController{ttl: ttl}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted. Errors stay up twice as
// long as other levels.
func (c *ToastController) Push(n notify.Notification) {
	ttl := c.ttl
	if n.Level == notify.LevelError {
		ttl *= 2
	}

	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    ttl,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }
func (c *ToastController) Toasts() []toast { return c.toasts }
func (c *ToastController) Ticking() bool   { return c.ticking }
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
