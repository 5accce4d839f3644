package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
)

// fieldWidth is the inner width of every field.
const fieldWidth = 56

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, []string for multi-select
	Label() string // Display label for the field
	Key() string   // Name the value is reported under

	// Validate checks the current value and returns a message, or "" when valid.
	Validate() string
	SetError(msg string)
	Error() string
	// Reset restores the value the field was created with.
	Reset()
}

// base holds the state shared by every field type.
type base struct {
	key        string
	label      string
	focused    bool
	err        string
	validation FieldValidation
}

func (b *base) Focused() bool       { return b.focused }
func (b *base) Label() string       { return b.label }
func (b *base) Key() string         { return b.key }
func (b *base) Error() string       { return b.err }
func (b *base) SetError(msg string) { b.err = msg }

// frame renders the label, body and any inline error inside the field border.
func (b *base) frame(body string) string {
	titleStyle := styles.TextMutedStyle
	if b.focused {
		titleStyle = styles.FormTitleStyle
	}

	label := b.label
	if b.validation.Required {
		label += " *"
	}

	parts := []string{titleStyle.Render(label), body}
	if b.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(b.err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if b.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}
