package components

import (
	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/tui/state"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// RenderNotification renders a compact inline notification for the header
// line. Errors are the transient, retryable kind: a failed move or settings
// save that the user may simply try again.
func RenderNotification(n state.Notification) string {
	fg, bg, icon := theme.InfoFg, theme.InfoBg, "●"
	if n.Level == state.LevelError {
		fg, bg, icon = theme.ErrorFg, theme.ErrorBg, "✗"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(icon + " " + n.Message)
}
