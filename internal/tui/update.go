package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	// Start listening for record stream events on first update
	var startCmd tea.Cmd
	if m.eventCh != nil && !m.subscriptionStarted {
		m.subscriptionStarted = true
		startCmd = m.waitForEventCmd()
	}

	// Form modes need ALL messages, not just key presses
	switch m.UiState.Mode() {
	case state.SettingsFormMode:
		model, cmd := m.updateSettingsForm(msg)
		return model, tea.Batch(startCmd, cmd)
	case state.StageFormMode:
		model, cmd := m.updateStageForm(msg)
		return model, tea.Batch(startCmd, cmd)
	case state.RecordFormMode:
		model, cmd := m.updateRecordForm(msg)
		return model, tea.Batch(startCmd, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return m, startCmd

	case streamEventMsg:
		return m.handleStreamEvent(msg, startCmd)

	case snapshotMsg:
		m.AppState.SetSnapshot(msg.records, msg.names)
		m.AppState.Regroup(m.Registry)
		m.clampSelection()
		return m, startCmd

	case snapshotErrMsg:
		m.NotificationState.Add(state.LevelError, "Failed to reload board")
		return m, startCmd

	case transitionResultMsg:
		if msg.err != nil {
			// Revert the optimistic change and surface a retryable error;
			// the record stays in its last successfully persisted stage.
			if rec := m.AppState.FindRecord(msg.transition.RecordID); rec != nil {
				msg.transition.RevertFrom(rec)
				m.AppState.Regroup(m.Registry)
				m.clampSelection()
			}
			m.NotificationState.Add(state.LevelError, "Move failed, try again")
		}
		return m, startCmd

	case resumeLoadedMsg:
		model, cmd := m.handleResumeLoaded(msg)
		return model, tea.Batch(startCmd, cmd)

	case detailLoadedMsg:
		model, cmd := m.handleDetailLoaded(msg)
		return model, tea.Batch(startCmd, cmd)

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		return model, tea.Batch(startCmd, cmd)
	}

	return m, startCmd
}

// handleStreamEvent reacts to one record stream event and re-arms the
// subscription.
func (m Model) handleStreamEvent(msg streamEventMsg, startCmd tea.Cmd) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// Hub closed; stop listening
		m.eventCh = nil
		return m, startCmd
	}

	switch msg.event.Type {
	case events.EventSettingsChanged:
		ctx, cancel := m.DbContext()
		m.AppState.SetSettings(m.Deps.Settings.Load(ctx))
		cancel()
		m.rebuildRegistry()
		m.AppState.Regroup(m.Registry)
		m.clampSelection()
		return m, tea.Batch(startCmd, m.waitForEventCmd())

	case events.EventRecordsChanged:
		return m, tea.Batch(startCmd, m.loadSnapshotCmd(), m.waitForEventCmd())
	}

	return m, tea.Batch(startCmd, m.waitForEventCmd())
}

// handleKey dispatches key events by interaction mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.ResumeViewMode:
		return m.handleResumeMode(msg)
	case state.DetailViewMode:
		return m.handleDetailMode(msg)
	case state.RemoveStageConfirmMode:
		return m.handleRemoveStageConfirm(msg)
	default:
		return m.handleNormalMode(msg)
	}
}
