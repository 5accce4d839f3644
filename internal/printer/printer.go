// Package printer writes human-oriented status lines for CLI commands.
// Machine-readable output goes through pkg/iojson instead.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colonyops/taskdash/internal/core/styles"
)

type ctxKey struct{}

// Printer renders styled status messages to a writer.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{out: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Success prints a success line with an optional detail value.
func (p *Printer) Success(msg, detail string) {
	s := styles.TextSuccessStyle.Render(styles.IconNotifySuccess + " " + msg)
	if detail != "" {
		s += " " + styles.TextMutedStyle.Render(detail)
	}
	p.line(s)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render(styles.IconNotifySuccess + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle.Render(styles.IconNotifyInfo + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render(styles.IconNotifyWarning + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render(styles.IconNotifyError + " " + fmt.Sprintf(format, args...)))
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Section prints a bold header followed by a divider the width of the title.
func (p *Printer) Section(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
	p.line(styles.DividerStyle.Render(strings.Repeat("─", max(len(title), 3))))
}
