// Package config handles configuration loading and validation for taskdash.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/taskdash/internal/core/export"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	TUI     TUIConfig    `yaml:"tui"`
	Tasks   TasksConfig  `yaml:"tasks"`
	Export  ExportConfig `yaml:"export"`
	DataDir string       `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds dashboard display settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	Clock *bool  `yaml:"clock"` // nil = enabled
}

// ClockEnabled reports whether the footer clock is shown.
func (t TUIConfig) ClockEnabled() bool {
	return t.Clock == nil || *t.Clock
}

// TasksConfig controls how submitted tasks are built.
type TasksConfig struct {
	DefaultPriority string                 `yaml:"default_priority"`
	MissingTime     task.MissingTimePolicy `yaml:"missing_time"`
}

// ExportConfig controls where CSV exports are written.
type ExportConfig struct {
	Dir      string `yaml:"dir"` // empty = current working directory
	Filename string `yaml:"filename"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Tasks: TasksConfig{
			DefaultPriority: string(task.DefaultPriority),
			MissingTime:     task.MissingTimeReject,
		},
		Export: ExportConfig{
			Filename: export.DefaultFilename,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Tasks.DefaultPriority == "" {
		c.Tasks.DefaultPriority = defaults.Tasks.DefaultPriority
	}
	if c.Tasks.MissingTime == "" {
		c.Tasks.MissingTime = defaults.Tasks.MissingTime
	}
	if c.Export.Filename == "" {
		c.Export.Filename = defaults.Export.Filename
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q (available: %v)", c.TUI.Theme, styles.ThemeNames()))
	}

	if _, err := task.ParsePriority(c.Tasks.DefaultPriority); err != nil {
		errs = errs.Append("tasks.default_priority", err)
	}

	if !c.Tasks.MissingTime.IsValid() {
		errs = errs.Append("tasks.missing_time", fmt.Errorf("must be %q or %q, got %q",
			task.MissingTimeReject, task.MissingTimeZero, c.Tasks.MissingTime))
	}

	if err := validateFilename(c.Export.Filename); err != nil {
		errs = errs.Append("export.filename", err)
	}

	return errs.ToError()
}

func validateFilename(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("filename cannot be empty")
	case filepath.Base(name) != name:
		return fmt.Errorf("filename %q must not contain a path", name)
	case filepath.Ext(name) != ".csv":
		return fmt.Errorf("filename %q must end in .csv", name)
	}
	return nil
}

// DefaultPriority returns the priority preselected in the task form.
func (c *Config) DefaultPriority() task.Priority {
	p, err := task.ParsePriority(c.Tasks.DefaultPriority)
	if err != nil {
		return task.DefaultPriority
	}
	return p
}

// ExportDir returns the directory exports are written to.
func (c *Config) ExportDir() string {
	if c.Export.Dir == "" {
		return "."
	}
	return c.Export.Dir
}

// ExportPath returns the full path of the CSV export file.
func (c *Config) ExportPath() string {
	return filepath.Join(c.ExportDir(), c.Export.Filename)
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "taskdash.log")
}
