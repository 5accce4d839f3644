package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCheckList = "" // nf-fa-tasks
	IconCalendar  = "" // nf-fa-calendar
	IconChart     = "" // nf-fa-bar_chart
	IconClock     = "" // nf-fa-clock_o
)

// Notification icons
var (
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconNotifySuccess = "" // nf-fa-check
	IconNotifyWarning = "" // nf-fa-warning
	IconNotifyError   = "" // nf-fa-times_circle
)
