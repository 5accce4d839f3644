package tui

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskdash/internal/core/config"
	"github.com/colonyops/taskdash/internal/core/logging"
	"github.com/colonyops/taskdash/internal/core/notify"
	"github.com/colonyops/taskdash/internal/core/task"
	"github.com/colonyops/taskdash/internal/taskdash"
	"github.com/colonyops/taskdash/internal/tui/components"
	"github.com/colonyops/taskdash/internal/tui/components/form"
	tuinotify "github.com/colonyops/taskdash/internal/tui/notify"
	analyticsview "github.com/colonyops/taskdash/internal/tui/views/analytics"
	tasksview "github.com/colonyops/taskdash/internal/tui/views/tasks"
)

// UIState represents the current UI state.
type UIState int

const (
	stateNormal UIState = iota
	stateFiltering
	stateViewingTask
	stateShowingHelp
	stateShowingNotifications
	stateConfirmingQuit
)

const clockTickInterval = time.Second

type clockTickMsg time.Time

// exportCompleteMsg is sent when a CSV export finishes. exported is the
// unexported count when the export was dispatched.
type exportCompleteMsg struct {
	path     string
	exported int
	err      error
}

// Deps holds the services the dashboard runs against.
type Deps struct {
	Config        *config.Config
	Tasks         *taskdash.TaskService
	Notifications notify.Store
	Version       string
}

// Opts configures optional dashboard behavior.
type Opts struct {
	// Loaded is the number of records preloaded before start, announced in
	// a toast. Zero announces nothing.
	Loaded int
	// Now overrides the clock used for "today" and the footer. Defaults to
	// time.Now.
	Now func() time.Time
}

// Model is the main Bubble Tea model for the dashboard.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	tasks   *taskdash.TaskService
	version string
	now     func() time.Time
	keys    keyMap

	state      UIState
	activeView ViewType
	width      int
	height     int
	clock      time.Time
	quitting   bool

	// pending counts tasks saved since the last export.
	pending int

	// Tabs
	addForm       *form.Dialog
	tasksView     *tasksview.View
	analyticsView *analyticsview.View

	// Modals
	filterDialog      *form.Dialog
	detailModal       *tasksview.DetailModal
	renderCache       *tasksview.RenderCache
	helpDialog        *components.HelpDialog
	notificationModal *NotificationModal
	confirmQuit       components.ConfirmModal

	// Notifications
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView
}

// New creates a new dashboard model. The tasks and analytics tabs are
// loaded before returning; failures surface as error toasts.
func New(ctx context.Context, deps Deps, opts Opts) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg := deps.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	notifyBus := tuinotify.NewBus(deps.Notifications)
	toastCtrl := NewToastController(defaultToastTTL)
	toastView := NewToastView(toastCtrl)

	// Wire bus -> toast controller
	notifyBus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	m := Model{
		ctx:             ctx,
		cfg:             cfg,
		tasks:           deps.Tasks,
		version:         deps.Version,
		now:             now,
		keys:            defaultKeyMap(),
		activeView:      ViewAdd,
		clock:           now(),
		addForm:         newAddTaskDialog(cfg.DefaultPriority()),
		tasksView:       tasksview.New(deps.Tasks, now),
		analyticsView:   analyticsview.New(deps.Tasks),
		renderCache:     tasksview.NewRenderCache(),
		notifyBus:       notifyBus,
		toastController: toastCtrl,
		toastView:       toastView,
	}

	if err := m.tasksView.Refresh(ctx); err != nil {
		notifyBus.Errorf("failed to load tasks: %v", err)
	}
	if err := m.analyticsView.Refresh(ctx); err != nil {
		notifyBus.Errorf("failed to compute analytics: %v", err)
	}
	if opts.Loaded > 0 {
		notifyBus.Infof("Loaded %d tasks", opts.Loaded)
	}

	return m
}

// quit sets the quitting flag and exits the program.
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	log.Debug().Int("unexported", m.pending).Msg("dashboard closing")
	return m, tea.Quit
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.ensureToastTick()}
	if m.cfg.TUI.ClockEnabled() {
		cmds = append(cmds, scheduleClockTick())
	}
	return tea.Batch(cmds...)
}

func scheduleClockTick() tea.Cmd {
	return tea.Tick(clockTickInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Ticks
	case toastTickMsg:
		return m.handleToastTick(msg)
	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, scheduleClockTick()

	// Action results
	case exportCompleteMsg:
		return m.handleExportComplete(msg)

	// Outbound messages from the tasks view
	case tasksview.OpenFilterMsg:
		return m.openFilterDialog(msg.Criteria)
	case tasksview.OpenDetailMsg:
		return m.openDetail(msg)

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.handleFallthrough(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := m.contentHeight()
	m.addForm.SetHeight(contentHeight)
	m.tasksView.SetSize(msg.Width, contentHeight)
	m.analyticsView.SetSize(msg.Width, contentHeight)

	if m.filterDialog != nil {
		m.filterDialog.SetHeight(max(msg.Height-6, 1))
	}
	if m.detailModal != nil {
		m.detailModal = tasksview.NewDetailModal(m.detailModal.Record(), m.renderCache, msg.Width, msg.Height)
	}
	return m, nil
}

// handleToastTick advances toast lifetimes and keeps ticking while any
// toast is visible.
func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// handleFallthrough forwards non-key messages, such as cursor blinks, to
// the focused form.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.state == stateFiltering && m.filterDialog != nil:
		m.filterDialog, cmd = m.filterDialog.Update(msg)
	case m.state == stateNormal && m.activeView == ViewAdd:
		m.addForm, cmd = m.addForm.Update(msg)
	}
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Handle modal states first
	switch m.state {
	case stateFiltering:
		return m.handleFilterDialogKey(msg, keyStr)
	case stateViewingTask:
		return m.handleDetailKey(keyStr)
	case stateShowingHelp:
		return m.handleHelpDialogKey(keyStr)
	case stateShowingNotifications:
		return m.handleNotificationModalKey(keyStr)
	case stateConfirmingQuit:
		return m.handleConfirmQuitKey(msg, keyStr)
	}

	if keyStr == keyCtrlC {
		return m.quit()
	}

	// The add form owns every other key, including tab
	if m.activeView == ViewAdd {
		return m.handleAddFormKey(msg, keyStr)
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.NextView):
		return m.switchView(m.activeView.Next())
	case key.Matches(msg, m.keys.PrevView):
		return m.switchView(m.activeView.Prev())
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.helpSections())
		m.state = stateShowingHelp
		return m, nil
	case key.Matches(msg, m.keys.Notifications):
		m.notificationModal = NewNotificationModal(m.notifyBus, m.width, m.height)
		m.state = stateShowingNotifications
		return m, nil
	}

	switch m.activeView {
	case ViewTasks:
		cmd, err := m.tasksView.Update(m.ctx, msg)
		if err != nil {
			return m, m.notifyError("failed to load tasks: %v", err)
		}
		return m, cmd
	case ViewAnalytics:
		return m.handleAnalyticsKey(msg)
	}
	return m, nil
}

// handleAddFormKey routes keys to the task form and acts on submit/cancel.
func (m Model) handleAddFormKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == "ctrl+t" {
		return m.switchView(m.activeView.Next())
	}

	var cmd tea.Cmd
	m.addForm, cmd = m.addForm.Update(msg)

	if m.addForm.Submitted() {
		return m.submitTask()
	}

	if m.addForm.Cancelled() {
		m.addForm.ClearErrors()
		reset := m.addForm.Reset()
		next, cmd := m.switchView(ViewTasks)
		return next, tea.Batch(reset, cmd)
	}

	return m, cmd
}

// submitTask records the form's task. Rejected input is reported under the
// offending field and the form stays populated.
func (m Model) submitTask() (tea.Model, tea.Cmd) {
	rec, err := m.tasks.Submit(m.ctx, inputFromDialog(m.addForm))
	if err != nil {
		m.addForm.Resume()
		if showSubmitError(m.addForm, err) {
			return m, nil
		}
		return m, m.notifyError("failed to save task: %v", err)
	}

	m.pending++
	cmds := []tea.Cmd{m.addForm.Reset()}

	if err := m.tasksView.Refresh(m.ctx); err != nil {
		cmds = append(cmds, m.notifyError("failed to load tasks: %v", err))
	}
	if err := m.analyticsView.Refresh(m.ctx); err != nil {
		cmds = append(cmds, m.notifyError("failed to compute analytics: %v", err))
	}

	m.notifyBus.Successf("Saved %q (%s)", rec.Name, rec.Priority)
	cmds = append(cmds, m.ensureToastTick())
	return m, tea.Batch(cmds...)
}

func (m Model) handleAnalyticsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Export):
		return m, m.exportTasks()
	case key.Matches(msg, m.keys.Refresh):
		if err := m.analyticsView.Refresh(m.ctx); err != nil {
			return m, m.notifyError("failed to compute analytics: %v", err)
		}
	}
	return m, nil
}

// exportTasks writes the CSV export off the update loop.
func (m Model) exportTasks() tea.Cmd {
	ctx, tasks, dir, pending := m.ctx, m.tasks, m.cfg.ExportDir(), m.pending
	return func() tea.Msg {
		path, err := tasks.ExportFile(ctx, dir)
		return exportCompleteMsg{path: path, exported: pending, err: err}
	}
}

func (m Model) handleExportComplete(msg exportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.notifyError("export failed: %v", msg.err)
	}
	// tasks saved while the export ran are not in the file
	m.pending = max(m.pending-msg.exported, 0)
	m.notifyBus.Successf("Exported tasks to %s", msg.path)
	return m, m.ensureToastTick()
}

// switchView activates v and reloads its data.
func (m Model) switchView(v ViewType) (tea.Model, tea.Cmd) {
	m.activeView = v
	log.Debug().Ctx(logging.WithView(m.ctx, v.String())).Msg("view switched")

	switch v {
	case ViewTasks:
		if err := m.tasksView.Refresh(m.ctx); err != nil {
			return m, m.notifyError("failed to load tasks: %v", err)
		}
	case ViewAnalytics:
		if err := m.analyticsView.Refresh(m.ctx); err != nil {
			return m, m.notifyError("failed to compute analytics: %v", err)
		}
	}
	return m, nil
}

// requestQuit quits, asking first when saved tasks have not been exported.
func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.pending == 0 {
		return m.quit()
	}
	m.confirmQuit = components.NewConfirmModal(
		"Unexported Tasks",
		fmt.Sprintf("%d task(s) saved since the last export will be lost.", m.pending),
	)
	m.state = stateConfirmingQuit
	return m, nil
}

func (m Model) handleConfirmQuitKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyCtrlC {
		return m.quit()
	}

	var cmd tea.Cmd
	m.confirmQuit, cmd = m.confirmQuit.Update(msg)

	switch {
	case m.confirmQuit.Confirmed():
		return m.quit()
	case m.confirmQuit.Cancelled():
		m.state = stateNormal
	}
	return m, cmd
}

func (m Model) openFilterDialog(c task.Criteria) (tea.Model, tea.Cmd) {
	m.filterDialog = tasksview.NewFilterDialog(c)
	if m.height > 0 {
		m.filterDialog.SetHeight(max(m.height-6, 1))
	}
	m.state = stateFiltering
	return m, nil
}

// handleFilterDialogKey handles keys when the filter dialog is shown.
func (m Model) handleFilterDialogKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyCtrlC {
		return m.quit()
	}

	var cmd tea.Cmd
	m.filterDialog, cmd = m.filterDialog.Update(msg)

	if m.filterDialog.Submitted() {
		c, err := tasksview.CriteriaFromDialog(m.filterDialog)
		m.clearFilterState()
		if err != nil {
			return m, m.notifyError("invalid filter: %v", err)
		}
		if err := m.tasksView.SetCriteria(m.ctx, c); err != nil {
			return m, m.notifyError("failed to load tasks: %v", err)
		}
		return m, nil
	}

	if m.filterDialog.Cancelled() {
		m.clearFilterState()
		return m, nil
	}

	return m, cmd
}

func (m *Model) clearFilterState() {
	m.filterDialog = nil
	m.state = stateNormal
}

func (m Model) openDetail(msg tasksview.OpenDetailMsg) (tea.Model, tea.Cmd) {
	m.detailModal = tasksview.NewDetailModal(msg.Record, m.renderCache, m.width, m.height)
	m.state = stateViewingTask
	return m, nil
}

func (m Model) handleDetailKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		return m.quit()
	case "esc", "q", "enter":
		m.state = stateNormal
		m.detailModal = nil
	case "j", "down":
		m.detailModal.ScrollDown()
	case "k", "up":
		m.detailModal.ScrollUp()
	}
	return m, nil
}

// handleHelpDialogKey handles keys when help dialog is shown.
func (m Model) handleHelpDialogKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		return m.quit()
	case "esc", "?", "q":
		m.state = stateNormal
		m.helpDialog = nil
	}
	return m, nil
}

func (m Model) handleNotificationModalKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		return m.quit()
	case "esc", "q":
		m.state = stateNormal
		m.notificationModal = nil
	case "j", "down":
		m.notificationModal.ScrollDown()
	case "k", "up":
		m.notificationModal.ScrollUp()
	case "D":
		if err := m.notificationModal.Clear(); err != nil {
			return m, m.notifyError("failed to clear notifications: %v", err)
		}
		m.toastController.DismissAll()
	}
	return m, nil
}

func (m Model) contentHeight() int {
	// top divider, header, header divider and footer
	return max(m.height-4, 1)
}

// ensureToastTick starts the toast tick loop if toasts are visible and no
// loop is running.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(format, args...)
	return m.ensureToastTick()
}
