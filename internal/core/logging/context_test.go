package logging

import (
	"context"
	"testing"
)

func TestWithTaskID(t *testing.T) {
	ctx := WithTaskID(context.Background(), "task-123")

	if got := GetTaskID(ctx); got != "task-123" {
		t.Errorf("GetTaskID() = %q, want %q", got, "task-123")
	}
}

func TestWithView(t *testing.T) {
	ctx := WithView(context.Background(), "analytics")

	if got := GetView(ctx); got != "analytics" {
		t.Errorf("GetView() = %q, want %q", got, "analytics")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetTaskID(ctx); got != "" {
		t.Errorf("GetTaskID() = %q, want empty string", got)
	}
	if got := GetView(ctx); got != "" {
		t.Errorf("GetView() = %q, want empty string", got)
	}
}
