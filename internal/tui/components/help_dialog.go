// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
)

const helpKeyWidth = 12

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// SectionFromBindings builds a help section from key bindings. Disabled
// bindings and bindings without help text are skipped.
func SectionFromBindings(title string, bindings ...key.Binding) HelpDialogSection {
	section := HelpDialogSection{Title: title}
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || h.Key == "" {
			continue
		}
		section.Entries = append(section.Entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return section
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	title := styles.TextForegroundBoldStyle.Render(h.title)
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", 25))

	var lines []string
	for i, section := range h.sections {
		if len(section.Entries) == 0 {
			continue
		}
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), separator)
		}

		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Overlay(background, h.View(), width, height)
}

// Overlay centers modal over background.
func Overlay(background, modal string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// formatKeyDesc pads key to a fixed display width so descriptions line up.
func formatKeyDesc(key, desc string) string {
	paddedKey := key + Pad(helpKeyWidth-lipgloss.Width(key))
	return styles.TextPrimaryBoldStyle.Render(paddedKey) + styles.TextForegroundStyle.Render(desc)
}
