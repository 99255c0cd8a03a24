package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// ColumnProps carries everything needed to render one stage column.
type ColumnProps struct {
	Stage        models.Stage
	Cards        []string // pre-rendered cards, top to bottom
	Count        int
	Selected     bool
	DropTarget   bool // stage is highlighted as the hover target of a drag
	Height       int
	Transparency int // 0..100; at or past the midpoint the column bg is dropped
	BoardBg      string
}

// RenderColumn renders a complete column with its header and cards
//
//	{● Stage Name} ({count})
//	{Card 1}
//	{Card 2}
//	...
func RenderColumn(props ColumnProps) string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StageColor(props.Stage.Color))).
		Render("●")
	header := fmt.Sprintf("%s %s (%d)", dot, TitleStyle.Render(props.Stage.Name), props.Count)

	var body string
	if len(props.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		body = emptyStyle.Render("No candidates")
	} else {
		body = strings.Join(props.Cards, "\n")
	}

	content := header + "\n" + body

	border := theme.ColumnBorder
	if props.DropTarget {
		border = theme.HoverBorder
	} else if props.Selected {
		border = theme.SelectedBorder
	}

	style := ColumnStyle.
		BorderForeground(lipgloss.Color(border)).
		Height(props.Height)

	// Column transparency: below the midpoint the column keeps its own
	// background, above it the board background shows through.
	if props.Transparency < 50 {
		style = style.Background(lipgloss.Color(theme.ColumnBg))
	} else if props.BoardBg != "" {
		style = style.Background(lipgloss.Color(props.BoardBg))
	}

	return style.Render(content)
}
