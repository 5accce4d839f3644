package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/taskdash/internal/tui/components"
)

const keyCtrlC = "ctrl+c"

// keyMap holds the dashboard's key bindings. Bindings handled inside a sub
// view are listed here for the help dialog and footer.
type keyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	NextView      key.Binding
	PrevView      key.Binding
	Help          key.Binding
	Notifications key.Binding

	SubmitTask key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	CancelTask key.Binding

	PrevDay    key.Binding
	NextDay    key.Binding
	Today      key.Binding
	Filter     key.Binding
	Priorities key.Binding
	AllToggle  key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding

	Export  key.Binding
	Refresh key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys(keyCtrlC), key.WithHelp("ctrl+c", "quit from anywhere")),
		NextView:      key.NewBinding(key.WithKeys("ctrl+t", "tab"), key.WithHelp("ctrl+t/tab", "next view")),
		PrevView:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),

		SubmitTask: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save task")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		CancelTask: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard and show tasks")),

		PrevDay:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous day")),
		NextDay:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter by date/priority")),
		Priorities: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "toggle priority")),
		AllToggle:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all/no priorities")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "task details")),

		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export CSV")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// helpSections groups the bindings for the help dialog.
func (k keyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		components.SectionFromBindings("Global", k.NextView, k.PrevView, k.Help, k.Notifications, k.Quit, k.ForceQuit),
		components.SectionFromBindings("Add Task", k.NextField, k.PrevField, k.SubmitTask, k.CancelTask),
		components.SectionFromBindings("Tasks", k.PrevDay, k.NextDay, k.Today, k.Filter, k.Priorities, k.AllToggle, k.Up, k.Down, k.Open),
		components.SectionFromBindings("Analytics", k.Export, k.Refresh),
	}
}

// shortHelp returns the footer bindings for view.
func (k keyMap) shortHelp(view ViewType) []key.Binding {
	switch view {
	case ViewAdd:
		return []key.Binding{k.SubmitTask, k.NextField, k.CancelTask, k.ForceQuit}
	case ViewTasks:
		return []key.Binding{k.PrevDay, k.NextDay, k.Filter, k.Priorities, k.Open, k.Help, k.Quit}
	case ViewAnalytics:
		return []key.Binding{k.Export, k.Refresh, k.NextView, k.Help, k.Quit}
	default:
		return []key.Binding{k.Help, k.Quit}
	}
}
