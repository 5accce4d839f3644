package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType(t *testing.T) {
	tests := []struct {
		view  ViewType
		name  string
		title string
		next  ViewType
		prev  ViewType
	}{
		{ViewAdd, "add", "Add Task", ViewTasks, ViewAnalytics},
		{ViewTasks, "tasks", "Tasks", ViewAnalytics, ViewAdd},
		{ViewAnalytics, "analytics", "Analytics", ViewAdd, ViewTasks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.view.String())
			assert.Equal(t, tt.title, tt.view.Title())
			assert.Equal(t, tt.next, tt.view.Next())
			assert.Equal(t, tt.prev, tt.view.Prev())
		})
	}

	assert.Equal(t, unknownViewType, ViewType(42).String())
}
