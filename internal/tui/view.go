package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/hireloop/funnel/internal/drag"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/tui/components"
	"github.com/hireloop/funnel/internal/tui/layers"
	"github.com/hireloop/funnel/internal/tui/state"
	"github.com/hireloop/funnel/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.BoardBackground(m.AppState.Settings().BackgroundTheme))

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.ResumeViewMode:
		view.Content = m.renderResumeView()
		return view
	case state.DetailViewMode:
		view.Content = m.renderDetailView()
		return view
	}

	// Layer-based rendering: the board stays visible under every modal
	baseLayers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.SettingsFormMode:
		modalLayer = m.renderFormLayer("Board Settings", m.settingsForm)
	case state.StageFormMode:
		modalLayer = m.renderFormLayer("New Stage", m.stageForm)
	case state.RecordFormMode:
		modalLayer = m.renderFormLayer("New Candidate", m.recordForm)
	case state.RemoveStageConfirmMode:
		modalLayer = m.renderRemoveStageConfirmLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		baseLayers = append(baseLayers, modalLayer)
	}

	canvas := lipgloss.NewCanvas(baseLayers...)
	view.Content = canvas.Render()
	return view
}

// renderBoard renders the pipeline columns with header and status bar.
func (m Model) renderBoard() string {
	stages := m.boardStages()
	settings := m.AppState.Settings()
	boardBg := ""
	if settings.BackgroundTheme != models.ThemeNone {
		boardBg = theme.BoardBackground(settings.BackgroundTheme)
	}

	// Column height: terminal minus header (1), blank (1), status bar (1),
	// and column border margins (2)
	columnHeight := m.UiState.Height() - 5
	if columnHeight < 10 {
		columnHeight = 10
	}

	dragging := m.Controller != nil && m.Controller.Phase() != drag.PhaseIdle
	grabbedID := ""
	hoverStage := ""
	if dragging {
		grabbedID = m.Controller.Payload().RecordID
		hoverStage = m.Controller.HoverStage()
	}

	var columns []string
	for i, stage := range stages {
		bucket := m.AppState.Bucket(stage.ID)

		var cards []string
		for j, rec := range bucket {
			cards = append(cards, components.RenderCard(components.CardProps{
				Record:      rec,
				DisplayName: m.AppState.DisplayName(rec.ApplicantID),
				Selected:    !dragging && i == m.UiState.SelectedStage() && j == m.UiState.SelectedCard(),
				Grabbed:     rec.ID == grabbedID,
			}))
		}

		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Stage:        stage,
			Cards:        cards,
			Count:        len(bucket),
			Selected:     !dragging && i == m.UiState.SelectedStage(),
			DropTarget:   dragging && stage.ID == hoverStage,
			Height:       columnHeight,
			Transparency: settings.ColumnTransparency,
			BoardBg:      boardBg,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	header := components.TitleStyle.Render("Pipeline Board")
	headerLine := header
	if m.NotificationState.HasAny() {
		headerLine = lipgloss.JoinHorizontal(lipgloss.Top,
			header, "  ", components.RenderNotification(m.NotificationState.Latest()))
	}

	grabbedName := ""
	if dragging {
		if rec := m.AppState.FindRecord(grabbedID); rec != nil {
			grabbedName = m.AppState.DisplayName(rec.ApplicantID)
		}
	}
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:    m.UiState.Width(),
		Dragging: dragging,
		CardName: grabbedName,
	})

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, "", board, statusBar)
}

// renderFormLayer wraps a huh form in the modal box, centered on screen.
func (m Model) renderFormLayer(title string, form *huh.Form) *lipgloss.Layer {
	if form == nil {
		return nil
	}

	formBox := components.FormBoxStyle.
		Width(m.UiState.Width() / 2).
		Render(components.TitleStyle.Render(title) + "\n\n" + form.View())

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// renderRemoveStageConfirmLayer renders the y/n confirmation for removing a
// custom stage.
func (m Model) renderRemoveStageConfirmLayer() *lipgloss.Layer {
	stageName := m.removeStageTarget
	if stage, err := m.Registry.Stage(m.removeStageTarget); err == nil {
		stageName = stage.Name
	}
	count := 0
	if g := m.AppState.Grouping(); g != nil {
		count = g.Count(m.removeStageTarget)
	}

	var content string
	if count > 0 {
		content = fmt.Sprintf(
			"Remove stage '%s'?\n%d candidate(s) will move to '%s'.\n\n[y]es  [n]o",
			stageName, count, m.Registry.Fallback().Name,
		)
	} else {
		content = fmt.Sprintf("Remove stage '%s'?\n\n[y]es  [n]o", stageName)
	}

	confirmBox := components.ConfirmBoxStyle.Width(50).Render(content)
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen.
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.FormBoxStyle.
		Width(50).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings.
func (m Model) generateHelpText() string {
	km := m.Deps.Config.KeyMappings
	grab := km.Grab
	if grab == " " {
		grab = "space"
	}
	return fmt.Sprintf(`FUNNEL - Keyboard Shortcuts

CANDIDATES
  %s  Pick up / drop card
  %s      Advance to next stage
  %s      Reject candidate
  %s      View resume
  %s  View details and history
  %s      Add new candidate

STAGES
  %s      Add custom stage
  %s      Remove custom stage

NAVIGATION
  %s      Previous stage
  %s      Next stage
  %s      Previous card
  %s      Next card

OTHER
  %s      Board settings
  %s      Show this help
  %s      Quit

While moving: %s/%s pick target, enter drops, %s cancels.

Press any key to close`,
		grab,
		km.Advance,
		km.Reject,
		km.ViewResume,
		km.ViewDetails,
		km.NewRecord,
		km.AddStage,
		km.RemoveStage,
		km.PrevStage,
		km.NextStage,
		km.PrevCard,
		km.NextCard,
		km.OpenSettings,
		km.ShowHelp,
		km.Quit,
		km.PrevStage, km.NextStage, km.CancelDrag,
	)
}

// renderResumeView renders the full-screen resume preview.
func (m Model) renderResumeView() string {
	if !m.resumeReady {
		return "Loading resume..."
	}

	title := components.TitleStyle.Render("Resume Preview")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("j/k scroll, esc back")

	return lipgloss.JoinVertical(lipgloss.Left, title, m.resumeViewport.View(), footer)
}

// renderDetailView renders the full application detail with its status
// history, most recent entry first.
func (m Model) renderDetailView() string {
	if m.detail == nil {
		return "Loading details..."
	}

	d := m.detail
	title := components.TitleStyle.Render(d.DisplayName)

	stageName := m.Registry.Resolve(d.Status)
	if stage, err := m.Registry.Stage(stageName); err == nil {
		stageName = stage.Name
	}

	meta := []string{
		fmt.Sprintf("Stage:    %s", stageName),
		fmt.Sprintf("Posting:  %s", orDash(d.PostingID)),
		fmt.Sprintf("Applied:  %s", d.AppliedAt.Format("2006-01-02 15:04")),
	}
	if d.Rating > 0 {
		meta = append(meta, fmt.Sprintf("Rating:   %s", strings.Repeat("★", d.Rating)))
	}
	if d.MatchScore >= 0 {
		meta = append(meta, fmt.Sprintf("Match:    %d%%", d.MatchScore))
	}

	var history []string
	history = append(history, components.TitleStyle.Render("History"))
	for i := len(d.History) - 1; i >= 0; i-- {
		entry := d.History[i]
		line := fmt.Sprintf("  %s  %s", entry.Timestamp.Format("2006-01-02 15:04"), entry.Status)
		if entry.Note != "" {
			line += "  (" + entry.Note + ")"
		}
		history = append(history, line)
	}
	if len(d.History) == 0 {
		history = append(history, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).Render("  no transitions recorded"))
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("esc back")

	sections := []string{title, ""}
	sections = append(sections, meta...)
	sections = append(sections, "")
	sections = append(sections, history...)
	sections = append(sections, "", footer)

	box := components.FormBoxStyle.
		Width(m.UiState.Width() * 3 / 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
