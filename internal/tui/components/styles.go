// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init() to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// ColumnWidth is the fixed inner width of a pipeline column.
const ColumnWidth = 26

// CardHeight is the fixed height of a candidate card.
const CardHeight = 5

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of pipeline board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual candidate cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of column headers
	TitleStyle lipgloss.Style

	// FormBoxStyle defines the base style for modal forms
	FormBoxStyle lipgloss.Style

	// ConfirmBoxStyle defines the style for delete confirmations
	ConfirmBoxStyle lipgloss.Style
)

// InitStyles initializes the cached styles from the current theme.
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)
}
