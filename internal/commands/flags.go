package commands

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/core/config"
	"github.com/colonyops/taskdash/internal/taskdash"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdash", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskdash")
}

// GlobalFlags returns the root command flags bound to f.
func GlobalFlags(f *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TASKDASH_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/taskdash.log)",
			Sources:     cli.EnvVars("TASKDASH_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("TASKDASH_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("TASKDASH_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &f.DataDir,
		},
	}
}

// RegisterAll adds every subcommand to root.
func RegisterAll(root *cli.Command, f *Flags, app *taskdash.App) *cli.Command {
	root = NewNewCmd(f, app).Register(root)
	root = NewListCmd(f, app).Register(root)
	root = NewStatsCmd(f, app).Register(root)
	root = NewExportCmd(f, app).Register(root)
	root = NewConfigValidateCmd(f).Register(root)
	return root
}
