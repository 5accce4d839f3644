// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/task"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// priorityColors are fixed across themes so charts read the same everywhere.
var priorityColors = map[task.Priority]color.Color{
	task.PriorityCritical:   lipgloss.Color("#EF4444"),
	task.PriorityImportant:  lipgloss.Color("#F97316"),
	task.PriorityEmerging:   lipgloss.Color("#EAB308"),
	task.PriorityModerate:   lipgloss.Color("#3B82F6"),
	task.PriorityUndefined:  lipgloss.Color("#9CA3AF"),
	task.PriorityNoPriority: lipgloss.Color("#E5E7EB"),
}

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// TUI shared styles.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	ViewSelectedStyle lipgloss.Style
	ViewNormalStyle   lipgloss.Style

	FormModalStyle   lipgloss.Style
	TabBrandingStyle lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	ClockStyle      lipgloss.Style
	EmptyStateStyle lipgloss.Style

	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	SelectFieldItemSelectedStyle lipgloss.Style

	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style

	ChartTitleStyle lipgloss.Style
	ChartLabelStyle lipgloss.Style
	ChartValueStyle lipgloss.Style
	ChartNoteStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
)

// ColorPool is used for deterministic color hashing of dates.
var ColorPool []color.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	ViewSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ViewNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FormModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(64)
	TabBrandingStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ClockStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)

	SelectFieldItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ListItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(2)
	ListSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		Foreground(ColorPrimary).
		PaddingLeft(1)

	ChartTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	ChartLabelStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ChartValueStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ChartNoteStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ColorPool = []color.Color{
		ColorPrimary,
		ColorSecondary,
		ColorSuccess,
		ColorWarning,
		ColorError,
	}
}

// PriorityColor returns the chart color for p. Unknown priorities render
// in the muted theme color.
func PriorityColor(p task.Priority) color.Color {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return ColorMuted
}

// PriorityStyle returns a foreground style in the priority's color.
func PriorityStyle(p task.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PriorityColor(p))
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) color.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
