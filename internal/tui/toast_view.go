package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskdash/internal/core/notify"
	"github.com/colonyops/taskdash/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack with the oldest toast at the top.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	icon, style := toastLevelStyle(t.notification.Level)
	return style.Width(toastWidth).Render(icon + " " + t.notification.Message)
}

func toastLevelStyle(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

// Overlay composites the toast stack over background in the lower-right
// corner, above the footer line.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH-1, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
