package form

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	focusedField int
	submitted    bool
	cancelled    bool
	height       int // 0 renders every field
	Title        string
}

// NewDialog creates a form dialog with the given fields.
// The first field is focused automatically.
func NewDialog(title string, fields []Field) *Dialog {
	d := &Dialog{
		fields: fields,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "ctrl+s":
		return d.submit()
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "enter":
		if d.isTextAreaFocused() {
			// Let textarea handle enter for newline insertion
			return d.updateFocusedField(msg)
		}
		if d.isFocusedFieldFiltering() {
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// SetHeight limits the rendered height. Fields outside the window around
// the focused field are hidden.
func (d *Dialog) SetHeight(h int) { d.height = h }

// View renders the visible fields vertically with spacing and help text.
func (d *Dialog) View() string {
	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  ctrl+s: submit  esc: cancel")

	views := make([]string, len(d.fields))
	for i, field := range d.fields {
		views[i] = field.View()
	}

	lo, hi := d.window(views)

	var parts []string
	if lo > 0 {
		parts = append(parts, styles.TextMutedStyle.Render(fmt.Sprintf("  ↑ %d more", lo)))
	}
	for i := lo; i <= hi && i < len(views); i++ {
		if i > lo {
			parts = append(parts, "")
		}
		parts = append(parts, views[i])
	}
	if rest := len(views) - 1 - hi; rest > 0 {
		parts = append(parts, styles.TextMutedStyle.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// window returns the inclusive range of fields that fit in the height
// budget, growing outward from the focused field and preferring the fields
// after it.
func (d *Dialog) window(views []string) (int, int) {
	if len(views) == 0 {
		return 0, -1
	}
	if d.height <= 0 {
		return 0, len(views) - 1
	}

	// help line, its spacer and the two scroll indicators
	budget := d.height - 4

	lo, hi := d.focusedField, d.focusedField
	used := lipgloss.Height(views[d.focusedField])
	for {
		grew := false
		if hi+1 < len(views) {
			if h := lipgloss.Height(views[hi+1]) + 1; used+h <= budget {
				hi++
				used += h
				grew = true
			}
		}
		if lo > 0 {
			if h := lipgloss.Height(views[lo-1]) + 1; used+h <= budget {
				lo--
				used += h
				grew = true
			}
		}
		if !grew {
			return lo, hi
		}
	}
}

// Values returns a map of field keys to field values.
func (d *Dialog) Values() map[string]any {
	result := make(map[string]any, len(d.fields))
	for _, field := range d.fields {
		result[field.Key()] = field.Value()
	}
	return result
}

// String returns the value of the named text or select field, or "".
func (d *Dialog) String(key string) string {
	if f := d.Field(key); f != nil {
		s, _ := f.Value().(string)
		return s
	}
	return ""
}

// Strings returns the value of the named multi-select field, or nil.
func (d *Dialog) Strings(key string) []string {
	if f := d.Field(key); f != nil {
		s, _ := f.Value().([]string)
		return s
	}
	return nil
}

// Field returns the field with the given key, or nil.
func (d *Dialog) Field(key string) Field {
	for _, f := range d.fields {
		if f.Key() == key {
			return f
		}
	}
	return nil
}

// FocusedKey returns the key of the focused field.
func (d *Dialog) FocusedKey() string {
	if len(d.fields) == 0 {
		return ""
	}
	return d.fields[d.focusedField].Key()
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Resume clears the submitted and cancelled flags so editing can continue,
// typically after the submission was rejected.
func (d *Dialog) Resume() {
	d.submitted = false
	d.cancelled = false
}

// Validate runs every field's rules and shows the failures inline. Focus
// moves to the first invalid field.
func (d *Dialog) Validate() bool {
	first := -1
	for i, f := range d.fields {
		msg := f.Validate()
		f.SetError(msg)
		if msg != "" && first < 0 {
			first = i
		}
	}
	if first >= 0 {
		d.focus(first)
		return false
	}
	return true
}

// SetFieldError shows msg under the named field and focuses it. Reports
// whether the field exists.
func (d *Dialog) SetFieldError(key, msg string) bool {
	for i, f := range d.fields {
		if f.Key() == key {
			f.SetError(msg)
			d.focus(i)
			return true
		}
	}
	return false
}

// ClearErrors removes every inline error.
func (d *Dialog) ClearErrors() {
	for _, f := range d.fields {
		f.SetError("")
	}
}

// Reset restores every field to its initial value and focuses the first.
func (d *Dialog) Reset() tea.Cmd {
	for _, f := range d.fields {
		f.Reset()
	}
	d.Resume()
	if len(d.fields) == 0 {
		return nil
	}
	return d.focus(0)
}

func (d *Dialog) submit() (*Dialog, tea.Cmd) {
	if !d.Validate() {
		return d, nil
	}
	d.submitted = true
	return d, nil
}

func (d *Dialog) focus(i int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[i].Focus()
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// past the last field
		return d.submit()
	}

	return d, d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	return d, d.focus(d.focusedField - 1)
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
