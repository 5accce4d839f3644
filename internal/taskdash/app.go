// Package taskdash wires the task store, builder and exporters into the
// services consumed by the CLI commands and the TUI.
package taskdash

import (
	"github.com/colonyops/taskdash/internal/core/config"
	"github.com/colonyops/taskdash/internal/core/notify"
)

// App is the central entry point for all taskdash operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks         *TaskService
	Notifications notify.Store
	Config        *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *TaskService, notifications notify.Store, cfg *config.Config) *App {
	return &App{
		Tasks:         tasks,
		Notifications: notifications,
		Config:        cfg,
	}
}
