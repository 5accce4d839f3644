package styles

import (
	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme built from the active palette. huh still
// renders with lipgloss v1, so colors are passed through as hex strings.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipglossv1.Color(Hex(ColorPrimary))
	secondary := lipglossv1.Color(Hex(ColorSecondary))
	fg := lipglossv1.Color(Hex(ColorForeground))
	muted := lipglossv1.Color(Hex(ColorMuted))
	errColor := lipglossv1.Color(Hex(ColorError))

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(secondary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}
