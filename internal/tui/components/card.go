package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// CardProps carries everything needed to render one candidate card.
type CardProps struct {
	Record      *models.ApplicationRecord
	DisplayName string
	Selected    bool
	Grabbed     bool // card is the payload of the drag gesture in progress
}

const cardNameMaxLength = 18

// RenderCard renders a single application as a card
//
//	╭────────────────────╮
//	│ {Candidate Name}   │
//	│ ★★★☆☆ │ 82%        │
//	│ {Posting}          │
//	╰────────────────────╯
func RenderCard(props CardProps) string {
	bg := theme.CardBg
	border := theme.CardBorder
	switch {
	case props.Grabbed:
		border = theme.HoverBorder
		bg = theme.SelectedBg
	case props.Selected:
		border = theme.SelectedBorder
		bg = theme.SelectedBg
	}

	name := props.DisplayName
	if len(name) > cardNameMaxLength {
		name = name[:cardNameMaxLength] + "…"
	}
	nameLine := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + name)

	metaLine := renderCardMetadata(props.Record, bg)

	posting := props.Record.PostingID
	if posting == "" {
		posting = "unassigned"
	}
	postingLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" " + posting)

	content := strings.Join([]string{nameLine, metaLine, postingLine}, "\n")

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(content)
}

// renderCardMetadata renders rating stars and match score on one line,
// separated by │
func renderCardMetadata(rec *models.ApplicationRecord, bg string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg))
	subtle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))

	var rating string
	if rec.Rating > 0 {
		rating = strings.Repeat("★", rec.Rating) + strings.Repeat("☆", 5-rec.Rating)
	} else {
		rating = subtle.Render("unrated")
	}

	var score string
	if rec.MatchScore >= 0 {
		score = fmt.Sprintf("%d%%", rec.MatchScore)
	} else {
		score = subtle.Render("--")
	}

	separator := subtle.Render(" │ ")
	return " " + style.Render(rating) + separator + style.Render(score)
}
