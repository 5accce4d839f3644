package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	base
	input      textarea.Model
	defaultVal string
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(key, label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(fieldWidth)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		base:       base{key: key, label: label},
		input:      ta,
		defaultVal: defaultVal,
	}
}

// WithValidation sets the rules checked by Validate.
func (f *TextAreaField) WithValidation(v FieldValidation) *TextAreaField {
	f.validation = v
	return f
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	return f.frame(f.input.View())
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Value() any { return f.input.Value() }

func (f *TextAreaField) Validate() string {
	return f.validation.ValidateText(f.input.Value())
}

func (f *TextAreaField) Reset() {
	f.input.SetValue(f.defaultVal)
	f.err = ""
}
