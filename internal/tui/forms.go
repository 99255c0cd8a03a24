package tui

import (
	"errors"
	"log/slog"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
	"github.com/hireloop/funnel/internal/tui/state"
)

// ============================================================================
// FORM HANDLERS
// ============================================================================

// updateSettingsForm forwards messages to the settings form and saves a
// partial patch on completion. Only fields the user actually set are
// included in the patch, so untouched values keep their stored state.
func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.settingsForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.settingsForm = nil
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	form, cmd := m.settingsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settingsForm = f
	}

	if m.settingsForm.State != huh.StateCompleted {
		return m, cmd
	}

	theme := models.BackgroundTheme(m.formTheme)
	patch := models.SettingsPatch{
		BackgroundTheme:     &theme,
		CustomBackgroundURL: &m.formCustomURL,
	}
	if m.formTransparency != "" {
		// Validated by the form field already
		if n, err := strconv.Atoi(m.formTransparency); err == nil {
			patch.ColumnTransparency = &n
		}
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	saved, err := m.Deps.Settings.Save(ctx, patch)
	m.settingsForm = nil
	m.UiState.SetMode(state.NormalMode)
	if err != nil {
		slog.Error("failed to save settings", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not save settings")
		return m, tea.ClearScreen
	}

	m.AppState.SetSettings(saved)
	return m, tea.ClearScreen
}

// updateStageForm forwards messages to the add-stage form and creates the
// custom stage on completion.
func (m Model) updateStageForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stageForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.stageForm = nil
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	form, cmd := m.stageForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.stageForm = f
	}

	if m.stageForm.State != huh.StateCompleted {
		return m, cmd
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	_, err := m.Registry.AddCustomStage(ctx, m.formStageName, models.StageColor(m.formStageColor))
	m.stageForm = nil
	m.UiState.SetMode(state.NormalMode)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrEmptyName):
			m.NotificationState.Add(state.LevelError, "Stage name cannot be empty")
		case errors.Is(err, registry.ErrNameTooLong):
			m.NotificationState.Add(state.LevelError, "Stage name is too long")
		default:
			slog.Error("failed to add stage", "error", err)
			m.NotificationState.Add(state.LevelError, "Could not add stage")
		}
		return m, tea.ClearScreen
	}

	m.AppState.Regroup(m.Registry)
	m.clampSelection()
	return m, tea.ClearScreen
}

// updateRecordForm forwards messages to the new-application form and
// creates the record on completion. New records always enter the first
// stage of the funnel.
func (m Model) updateRecordForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.recordForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.recordForm = nil
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	form, cmd := m.recordForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.recordForm = f
	}

	if m.recordForm.State != huh.StateCompleted {
		return m, cmd
	}

	req := database.CreateApplicationRequest{
		CandidateName: m.formCandidateName,
		PostingID:     m.formPosting,
		ResumeRef:     m.formResume,
		Status:        m.Registry.Fallback().ID,
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	_, err := m.Deps.Apps.Create(ctx, req)
	m.recordForm = nil
	m.UiState.SetMode(state.NormalMode)
	if err != nil {
		slog.Error("failed to create application", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not add candidate")
		return m, tea.ClearScreen
	}

	// The records_changed event reloads the snapshot
	return m, tea.ClearScreen
}
