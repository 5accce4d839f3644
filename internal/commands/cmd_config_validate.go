package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "taskdash config validate [options]",
				Description: "Validates the configuration file, checking theme, priority and export settings and that the export directory is usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	issues, err := collectIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		return cmd.outputJSON(c, issues)
	}

	return cmd.outputText(printer.Ctx(ctx), issues)
}

// collectIssues flattens field errors. Any other error is returned as is.
func collectIssues(err error) ([]validationIssue, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues, nil
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, issues []validationIssue) error {
	out := struct {
		Valid  bool              `json:"valid"`
		Path   string            `json:"path"`
		Errors []validationIssue `json:"errors,omitempty"`
	}{
		Valid:  len(issues) == 0,
		Path:   cmd.flags.ConfigPath,
		Errors: issues,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if !out.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, issues []validationIssue) error {
	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	if len(issues) == 0 {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(issues))
	return cli.Exit("", 1)
}
