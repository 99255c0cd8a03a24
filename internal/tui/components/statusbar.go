package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// StatusBarProps configures the footer status bar.
type StatusBarProps struct {
	Width    int
	Dragging bool
	CardName string // name on the grabbed card, when dragging
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side shows the app name, or the drag-in-progress hint while a card
// is grabbed.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Funnel - Hiring Pipeline"
	if props.Dragging {
		leftText = "Moving " + props.CardName + " - h/l target, enter drop, esc cancel"
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
