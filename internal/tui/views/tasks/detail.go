package tasks

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/tui/components"
	"github.com/colonyops/taskdash/pkg/kv"
)

const (
	detailWidthPct  = 70
	detailMinWidth  = 50
	detailMaxHeight = 40
	detailMargin    = 4
	detailChrome    = 6 // title + divider + help + padding
	noneSpecified   = "None specified"
)

// RenderCache memoizes rendered markdown by record ID and wrap width.
// Records never change after creation, so entries never go stale.
type RenderCache = kv.Store[string, string]

// NewRenderCache creates an empty render cache.
func NewRenderCache() *RenderCache {
	return kv.New[string, string]()
}

// DetailModal shows one record rendered as markdown in a scrollable viewport.
type DetailModal struct {
	record   task.Record
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModal renders r for a terminal of the given size. cache may be nil.
func NewDetailModal(r task.Record, cache *RenderCache, width, height int) *DetailModal {
	modalWidth := detailModalWidth(width)
	modalHeight := min(height-detailMargin, detailMaxHeight)
	contentWidth := max(modalWidth-4, 10)

	vp := viewport.New(
		viewport.WithWidth(contentWidth),
		viewport.WithHeight(max(modalHeight-detailChrome, 1)),
	)

	render := func() string { return renderMarkdown(Markdown(r), contentWidth) }
	var content string
	if cache != nil {
		content = cache.GetOrSet(fmt.Sprintf("%s@%d", r.ID, contentWidth), render)
	} else {
		content = render()
	}
	vp.SetContent(content)

	return &DetailModal{
		record:   r,
		viewport: vp,
		width:    modalWidth,
		height:   modalHeight,
	}
}

func (m *DetailModal) Record() task.Record { return m.record }
func (m *DetailModal) ScrollUp()           { m.viewport.ScrollUp(1) }
func (m *DetailModal) ScrollDown()         { m.viewport.ScrollDown(1) }

// Content returns the rendered body.
func (m *DetailModal) Content() string {
	return m.viewport.GetContent()
}

// Overlay renders the modal centered over background.
func (m *DetailModal) Overlay(background string, width, height int) string {
	title := styles.ModalTitleStyle.Render(styles.IconCheckList + " Task Details")
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(m.width-6, 1))),
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [esc] close"),
	)

	modal := styles.ModalStyle.Width(m.width).Render(content)
	return components.Overlay(background, modal, width, height)
}

// Markdown formats a record for the detail modal. People and tools always
// appear; the other free-text sections only when filled in.
func Markdown(r task.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeHeading(r.Name))
	fmt.Fprintf(&b, "**Priority:** %s  \n", r.Priority)
	fmt.Fprintf(&b, "**Date:** %s  \n", r.Date)
	fmt.Fprintf(&b, "**Duration:** %.2f hours  \n", r.DurationHours)
	if r.StartTime != "" || r.EndTime != "" {
		fmt.Fprintf(&b, "**Time:** %s - %s\n", r.StartTime, r.EndTime)
	}
	b.WriteString("\n")

	section(&b, "People Involved", orNone(r.People))
	section(&b, "Tools & Resources", orNone(r.Tools))

	optional := []struct{ title, body string }{
		{"Resources", r.Resources},
		{"Research Time", r.ResearchTime},
		{"Research Sources", r.ResearchSources},
		{"Research Completed", r.ResearchCompleted},
		{"Research Needed", r.ResearchNeeded},
		{"Roadblock Time", r.RoadblockTime},
		{"Roadblocks", r.Roadblocks},
		{"Accomplishments", r.Accomplishments},
		{"Error Recognition", r.ErrorRecognition},
		{"Additional Tasks", r.AdditionalTasks},
	}
	for _, s := range optional {
		if strings.TrimSpace(s.body) != "" {
			section(&b, s.title, s.body)
		}
	}

	if len(r.Expenses) > 0 {
		b.WriteString("## Expenses\n\n")
		for _, e := range r.Expenses {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, strings.TrimSpace(body))
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return noneSpecified
	}
	return s
}

func escapeHeading(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// renderMarkdown renders md with the themed glamour style, falling back to
// the raw markdown when rendering fails.
func renderMarkdown(md string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer")
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render task markdown")
		return md
	}
	return strings.TrimSpace(out)
}

func detailModalWidth(termWidth int) int {
	available := max(termWidth-detailMargin, 1)
	target := termWidth * detailWidthPct / 100
	return min(max(target, detailMinWidth), available)
}
