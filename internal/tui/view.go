package tui

const unknownViewType = "unknown"

// ViewType represents which tab is active.
type ViewType int

const (
	ViewAdd ViewType = iota
	ViewTasks
	ViewAnalytics

	viewCount = iota
)

// String returns the lowercase name of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAdd:
		return "add"
	case ViewTasks:
		return "tasks"
	case ViewAnalytics:
		return "analytics"
	default:
		return unknownViewType
	}
}

// Title returns the tab label.
func (v ViewType) Title() string {
	switch v {
	case ViewAdd:
		return "Add Task"
	case ViewTasks:
		return "Tasks"
	case ViewAnalytics:
		return "Analytics"
	default:
		return unknownViewType
	}
}

// Next returns the tab after v, wrapping around.
func (v ViewType) Next() ViewType {
	return (v + 1) % viewCount
}

// Prev returns the tab before v, wrapping around.
func (v ViewType) Prev() ViewType {
	return (v + viewCount - 1) % viewCount
}
