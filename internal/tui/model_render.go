package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/tui/components"
)

const clockLayout = "Mon Jan 2 15:04:05"

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the tab view with any open modal and the toast stack.
func (m Model) render() string {
	// Build main view (header + content + footer)
	mainView := m.renderTabView()

	// Ensure we have dimensions for modals
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	// Determine overlay content based on state
	var content string
	switch {
	case m.state == stateFiltering && m.filterDialog != nil:
		formContent := lipgloss.JoinVertical(
			lipgloss.Left,
			styles.ModalTitleStyle.Render(m.filterDialog.Title),
			"",
			m.filterDialog.View(),
		)
		content = components.Overlay(mainView, styles.FormModalStyle.Render(formContent), w, h)
	case m.state == stateViewingTask && m.detailModal != nil:
		content = m.detailModal.Overlay(mainView, w, h)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateShowingNotifications && m.notificationModal != nil:
		content = m.notificationModal.Overlay(mainView, w, h)
	case m.state == stateConfirmingQuit:
		content = m.confirmQuit.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	return content
}

// renderTabView renders the tab bar, the active tab and the footer.
func (m Model) renderTabView() string {
	renderTab := func(view ViewType) string {
		if m.activeView == view {
			return styles.ViewSelectedStyle.Render(view.Title())
		}
		return styles.ViewNormalStyle.Render(view.Title())
	}

	tabs := make([]string, 0, viewCount)
	for v := range ViewType(viewCount) {
		tabs = append(tabs, renderTab(v))
	}
	tabsLeft := strings.Join(tabs, " | ")

	if m.pending > 0 {
		tabsLeft = lipgloss.JoinHorizontal(lipgloss.Left, tabsLeft, "  ",
			styles.TextWarningStyle.Render(fmt.Sprintf("[%d unexported]", m.pending)))
	}

	// Branding on right with background
	brand := styles.IconCheckList + " taskdash"
	if m.version != "" {
		brand += " " + m.version
	}
	branding := styles.TabBrandingStyle.Render(brand)

	// Layout: [margin] tabs [spacer] branding [margin]
	margin := 1
	tabsWidth := lipgloss.Width(tabsLeft)
	brandingWidth := lipgloss.Width(branding)
	spacerWidth := max(m.width-tabsWidth-brandingWidth-(margin*2), 1)

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		components.Pad(margin), tabsLeft, components.Pad(spacerWidth), branding, components.Pad(margin))

	dividerWidth := m.width
	if dividerWidth < 1 {
		dividerWidth = 80 // default width before WindowSizeMsg
	}
	divider := styles.TextMutedStyle.Render(strings.Repeat("─", dividerWidth))

	contentHeight := m.contentHeight()

	var content string
	switch m.activeView {
	case ViewAdd:
		content = m.addForm.View()
	case ViewTasks:
		content = m.tasksView.View()
	case ViewAnalytics:
		content = m.analyticsView.View()
	}
	// Fixed height prevents layout shift between tabs
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, divider, header, divider, content, m.renderFooter())
}

// renderFooter renders the active tab's key hints with the clock on the
// right.
func (m Model) renderFooter() string {
	hints := make([]string, 0, 8)
	for _, b := range m.keys.shortHelp(m.activeView) {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, styles.TextPrimaryStyle.Render(h.Key)+" "+styles.FooterStyle.Render(h.Desc))
	}
	left := " " + strings.Join(hints, styles.FooterStyle.Render(" • "))

	if !m.cfg.TUI.ClockEnabled() {
		return left
	}

	clock := styles.ClockStyle.Render(styles.IconClock + " " + m.clock.Format(clockLayout))
	spacer := max(m.width-lipgloss.Width(left)-lipgloss.Width(clock)-1, 1)
	return left + components.Pad(spacer) + clock
}
