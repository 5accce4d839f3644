package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskdash/internal/core/notify"
	"github.com/colonyops/taskdash/internal/core/styles"
	"github.com/colonyops/taskdash/internal/tui/components"
)

const (
	notifyModalWidthPct  = 65
	notifyModalMinWidth  = 60
	notifyModalMaxHeight = 30
	notifyModalMargin    = 4
	notifyModalChrome    = 6 // title + divider + help + spacing
)

// notificationHistory is the part of the notification bus the modal reads.
type notificationHistory interface {
	History() ([]notify.Notification, error)
	Clear() error
}

// NotificationModal displays a scrollable history of notifications.
type NotificationModal struct {
	history  notificationHistory
	viewport viewport.Model
	count    int
}

// NewNotificationModal creates a modal showing notification history.
func NewNotificationModal(history notificationHistory, width, height int) *NotificationModal {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := min(height-notifyModalMargin, notifyModalMaxHeight)
	contentHeight := max(modalHeight-notifyModalChrome, 1)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-4), // account for modal padding
		viewport.WithHeight(contentHeight),
	)

	m := &NotificationModal{
		history:  history,
		viewport: vp,
	}

	m.refreshContent()
	return m
}

func (m *NotificationModal) refreshContent() {
	m.count = 0
	if m.history == nil {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	items, err := m.history.History()
	if err != nil {
		log.Error().Err(err).Msg("failed to load notification history")
		m.viewport.SetContent(styles.TextErrorStyle.Render(fmt.Sprintf("failed to load notifications: %v", err)))
		return
	}

	if len(items) == 0 {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	m.count = len(items)
	lines := make([]string, 0, len(items))
	for _, n := range items {
		lines = append(lines, formatNotification(n))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func formatNotification(n notify.Notification) string {
	ts := styles.TextMutedStyle.Render(n.CreatedAt.Format("15:04:05"))

	var icon string
	var msgStyle lipgloss.Style
	switch n.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		msgStyle = styles.TextErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		msgStyle = styles.TextWarningStyle
	case notify.LevelSuccess:
		icon = styles.IconNotifySuccess
		msgStyle = styles.TextSuccessStyle
	default:
		icon = styles.IconNotifyInfo
		msgStyle = styles.TextPrimaryStyle
	}

	return fmt.Sprintf("%s %s %s", ts, icon, msgStyle.Render(n.Message))
}

// Count returns how many notifications are shown.
func (m *NotificationModal) Count() int { return m.count }

func (m *NotificationModal) ScrollUp()   { m.viewport.ScrollUp(1) }
func (m *NotificationModal) ScrollDown() { m.viewport.ScrollDown(1) }

// Clear deletes all notifications and refreshes the view.
func (m *NotificationModal) Clear() error {
	if m.history == nil {
		return nil
	}
	if err := m.history.Clear(); err != nil {
		return err
	}
	m.refreshContent()
	return nil
}

// Overlay renders the notification modal centered over the background.
func (m *NotificationModal) Overlay(background string, width, height int) string {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := min(height-notifyModalMargin, notifyModalMaxHeight)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Notifications"+scrollInfo),
		divider,
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [D] clear all  [esc] close"),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(modalContent)

	return components.Overlay(background, modal, width, height)
}

func calcNotificationModalWidth(termWidth int) int {
	available := max(termWidth-notifyModalMargin, 1)
	target := termWidth * notifyModalWidthPct / 100
	return min(max(target, notifyModalMinWidth), available)
}
