package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	base
	input      textinput.Model
	defaultVal string
}

// NewTextField creates a new single-line text input field.
func NewTextField(key, label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(fieldWidth)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		base:       base{key: key, label: label},
		input:      ti,
		defaultVal: defaultVal,
	}
}

// WithValidation sets the rules checked by Validate.
func (f *TextField) WithValidation(v FieldValidation) *TextField {
	f.validation = v
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return f.frame(f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() any { return f.input.Value() }

// SetValue replaces the current text.
func (f *TextField) SetValue(s string) {
	f.input.SetValue(s)
}

func (f *TextField) Validate() string {
	return f.validation.ValidateText(f.input.Value())
}

func (f *TextField) Reset() {
	f.input.SetValue(f.defaultVal)
	f.err = ""
}
