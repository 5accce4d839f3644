// Command docgen generates CLI reference documentation from the taskdash
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskdash/internal/commands"
	"github.com/colonyops/taskdash/internal/taskdash"
)

func main() {
	flags := &commands.Flags{}
	app := &taskdash.App{}

	root := &cli.Command{
		Name:      "taskdash",
		Usage:     "Log units of work and chart where the time went",
		UsageText: "taskdash [global options] command [command options]",
		Flags:     commands.GlobalFlags(flags),
	}

	tuiCmd := commands.NewTuiCmd(flags, app, "")
	root.Flags = append(root.Flags, tuiCmd.Flags()...)
	root = commands.RegisterAll(root, flags, app)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join("docs", "cli-reference.md")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filepath.Dir(outPath), err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
