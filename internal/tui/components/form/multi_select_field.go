package form

import (
	"io"
	"slices"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
)

// MultiSelectField is a multi-select form field with checkbox toggles.
type MultiSelectField struct {
	base
	list     list.Model
	options  []string
	checked  map[int]bool
	defaults []string
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked *map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	isHighlighted := index == m.Index()

	check := "[ ] "
	if (*d.checked)[index] {
		check = "[x] "
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if isHighlighted {
		style = styles.SelectFieldItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor+style.Render(check+item.label))
}

// NewMultiSelectFormField creates a multi-select field from static options.
// Options listed in defaults start checked.
func NewMultiSelectFormField(key, label string, options, defaults []string) *MultiSelectField {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	const maxVisible = 8
	height := max(min(len(options), maxVisible), 1)

	checked := make(map[int]bool)
	delegate := multiSelectDelegate{checked: &checked}

	l := list.New(items, delegate, fieldWidth, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	f := &MultiSelectField{
		base:     base{key: key, label: label},
		list:     l,
		options:  options,
		checked:  checked,
		defaults: defaults,
	}
	f.SetChecked(defaults)
	return f
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == "space" {
			idx := f.list.Index()
			f.checked[idx] = !f.checked[idx]
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) View() string {
	if f.list.SettingFilter() {
		return f.frame(lipgloss.JoinVertical(lipgloss.Left, f.list.FilterInput.View(), f.list.View()))
	}
	return f.frame(f.list.View())
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}


// Value returns the selected options as []string.
func (f *MultiSelectField) Value() any {
	var selected []string
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// SelectedIndices returns the indices of checked items.
func (f *MultiSelectField) SelectedIndices() []int {
	var indices []int
	for i := range f.options {
		if f.checked[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// SetChecked checks exactly the options listed in values.
func (f *MultiSelectField) SetChecked(values []string) {
	clear(f.checked)
	for i, opt := range f.options {
		if slices.Contains(values, opt) {
			f.checked[i] = true
		}
	}
}

func (f *MultiSelectField) Validate() string {
	return f.validation.ValidateSelection(len(f.SelectedIndices()))
}

func (f *MultiSelectField) Reset() {
	f.list.ResetFilter()
	f.list.Select(0)
	f.SetChecked(f.defaults)
	f.err = ""
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
