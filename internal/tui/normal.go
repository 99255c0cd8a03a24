package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/hireloop/funnel/internal/drag"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
	"github.com/hireloop/funnel/internal/tui/huhforms"
	"github.com/hireloop/funnel/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode. While a drag
// gesture is in progress a reduced key set applies: target navigation,
// drop, and cancel.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	if key == "space" {
		key = " "
	}
	km := m.Deps.Config.KeyMappings

	if m.Controller.Phase() != drag.PhaseIdle {
		return m.handleDragKeys(key, km.Grab, km.CancelDrag)
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevStage, "left":
		return m.navigateStage(-1)
	case km.NextStage, "right":
		return m.navigateStage(+1)
	case km.PrevCard, "up":
		return m.navigateCard(-1)
	case km.NextCard, "down":
		return m.navigateCard(+1)
	case km.Grab:
		return m.beginDrag()
	case km.Advance:
		return m.quickAdvance()
	case km.Reject:
		return m.quickReject()
	case km.ViewResume:
		return m.openResumeView()
	case km.ViewDetails:
		return m.openDetailView()
	case km.NewRecord:
		return m.openRecordForm()
	case km.AddStage:
		return m.openStageForm()
	case km.RemoveStage:
		return m.confirmRemoveStage()
	case km.OpenSettings:
		return m.openSettingsForm()
	}

	return m, nil
}

// handleDragKeys handles the reduced key set active during a drag gesture.
func (m Model) handleDragKeys(key, grabKey, cancelKey string) (tea.Model, tea.Cmd) {
	km := m.Deps.Config.KeyMappings
	stages := m.Registry.Stages()

	switch key {
	case cancelKey:
		// Pointer released outside any drop target: no side effects, no
		// persistence call was ever issued.
		m.Controller.Cancel()
		m.clampSelection()
		return m, nil

	case km.PrevStage, "left":
		if m.dragHoverIdx > 0 {
			m.dragHoverIdx--
		}
		m.hoverCurrent(stages)
		return m, nil

	case km.NextStage, "right":
		if m.dragHoverIdx < len(stages)-1 {
			m.dragHoverIdx++
		}
		m.hoverCurrent(stages)
		return m, nil

	case grabKey, "enter":
		return m.dropOnHover()
	}

	return m, nil
}

// hoverCurrent moves the drop-target highlight to the stage at
// dragHoverIdx.
func (m *Model) hoverCurrent(stages []models.Stage) {
	if m.dragHoverIdx < 0 || m.dragHoverIdx >= len(stages) {
		return
	}
	if err := m.Controller.Hover(stages[m.dragHoverIdx].ID); err != nil {
		slog.Warn("could not hover stage", "stage", stages[m.dragHoverIdx].ID, "error", err)
	}
}

// navigateStage moves the column selection left or right.
func (m Model) navigateStage(delta int) (tea.Model, tea.Cmd) {
	stages := m.boardStages()
	next := m.UiState.SelectedStage() + delta
	if next < 0 || next >= len(stages) {
		return m, nil
	}
	m.UiState.SetSelectedStage(next)
	m.UiState.SetSelectedCard(0)
	return m, nil
}

// navigateCard moves the card selection up or down within the column.
func (m Model) navigateCard(delta int) (tea.Model, tea.Cmd) {
	stage, ok := m.currentStage()
	if !ok {
		return m, nil
	}
	bucket := m.AppState.Bucket(stage.ID)
	next := m.UiState.SelectedCard() + delta
	if next < 0 || next >= len(bucket) {
		return m, nil
	}
	m.UiState.SetSelectedCard(next)
	return m, nil
}

// beginDrag picks up the selected card, encoding the drag payload the same
// way a pointer gesture would carry it.
func (m Model) beginDrag() (tea.Model, tea.Cmd) {
	rec := m.currentRecord()
	stage, ok := m.currentStage()
	if rec == nil || !ok {
		return m, nil
	}

	payload := drag.Payload{RecordID: rec.ID, SourceStage: stage.ID}
	encoded, err := payload.Encode()
	if err != nil {
		// UI-internal inconsistency: abort silently, log only
		slog.Warn("could not encode drag payload", "error", err)
		return m, nil
	}
	if err := m.Controller.Begin(encoded); err != nil {
		return m, nil
	}

	// Start hovering over the source stage
	stages := m.Registry.Stages()
	m.dragHoverIdx = 0
	for i, s := range stages {
		if s.ID == stage.ID {
			m.dragHoverIdx = i
			break
		}
	}
	if err := m.Controller.Hover(stages[m.dragHoverIdx].ID); err != nil {
		slog.Warn("could not hover source stage", "error", err)
	}
	return m, nil
}

// dropOnHover completes the gesture on the highlighted target.
func (m Model) dropOnHover() (tea.Model, tea.Cmd) {
	target := m.Controller.HoverStage()
	transition, err := m.Controller.Drop(target)
	if err != nil {
		// Malformed or stale gesture state: abort silently, log only
		slog.Warn("drop aborted", "target", target, "error", err)
		m.clampSelection()
		return m, nil
	}
	if transition == nil {
		// Dropped onto the source stage: no-op, no history entry, no
		// persistence call
		m.clampSelection()
		return m, nil
	}
	return m.applyTransition(*transition, "")
}

// quickAdvance moves the selected record one stage forward.
func (m Model) quickAdvance() (tea.Model, tea.Cmd) {
	rec := m.currentRecord()
	if rec == nil {
		return m, nil
	}
	transition, ok := m.Controller.Advance(rec)
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "Already at the final stage")
		return m, nil
	}
	return m.applyTransition(*transition, "")
}

// quickReject moves the selected record to the rejected terminal stage.
func (m Model) quickReject() (tea.Model, tea.Cmd) {
	rec := m.currentRecord()
	if rec == nil {
		return m, nil
	}
	transition, ok := m.Controller.Reject(rec)
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "Candidate is already rejected")
		return m, nil
	}
	return m.applyTransition(*transition, "rejected by recruiter")
}

// applyTransition performs the optimistic half of the two-phase commit and
// schedules the persistence call. transitionResultMsg completes or reverts
// it.
func (m Model) applyTransition(t drag.Transition, note string) (tea.Model, tea.Cmd) {
	if rec := m.AppState.FindRecord(t.RecordID); rec != nil {
		t.ApplyTo(rec)
		m.AppState.Regroup(m.Registry)
		m.clampSelection()
	}
	return m, m.persistTransitionCmd(t, note)
}

// confirmRemoveStage asks before removing the selected custom stage.
// Built-in stages are rejected immediately with no state change.
func (m Model) confirmRemoveStage() (tea.Model, tea.Cmd) {
	stage, ok := m.currentStage()
	if !ok {
		return m, nil
	}
	if !stage.IsCustom {
		m.NotificationState.Add(state.LevelError, "Built-in stages cannot be removed")
		return m, nil
	}
	m.removeStageTarget = stage.ID
	m.UiState.SetMode(state.RemoveStageConfirmMode)
	return m, nil
}

// handleRemoveStageConfirm handles the y/n confirmation for stage removal.
func (m Model) handleRemoveStageConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ctx, cancel := m.DbContext()
		defer cancel()
		err := m.Registry.RemoveStage(ctx, m.removeStageTarget)
		m.removeStageTarget = ""
		m.UiState.SetMode(state.NormalMode)
		if err != nil {
			if errors.Is(err, registry.ErrBuiltinStage) {
				m.NotificationState.Add(state.LevelError, "Built-in stages cannot be removed")
			} else {
				slog.Error("failed to remove stage", "error", err)
				m.NotificationState.Add(state.LevelError, "Could not remove stage")
			}
			return m, nil
		}
		// Registry changed shape; settings event will reload, but regroup
		// now so the vacated records appear in the fallback column at once
		m.AppState.Regroup(m.Registry)
		m.clampSelection()
		return m, nil

	case "n", "N", "esc", "q":
		m.removeStageTarget = ""
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// handleHelpMode handles input on the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Deps.Config.KeyMappings
	switch msg.String() {
	case km.ShowHelp, km.Quit, "esc", "enter", " ":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// openSettingsForm opens the board settings modal pre-filled with current
// values.
func (m Model) openSettingsForm() (tea.Model, tea.Cmd) {
	current := m.AppState.Settings()
	m.formTheme = string(current.BackgroundTheme)
	m.formCustomURL = current.CustomBackgroundURL
	m.formTransparency = ""
	m.settingsForm = huhforms.SettingsForm(&m.formTheme, &m.formCustomURL, &m.formTransparency)
	m.UiState.SetMode(state.SettingsFormMode)
	return m, m.settingsForm.Init()
}

// openStageForm opens the custom stage creation modal.
func (m Model) openStageForm() (tea.Model, tea.Cmd) {
	m.formStageName = ""
	m.formStageColor = "slate"
	m.stageForm = huhforms.StageForm(&m.formStageName, &m.formStageColor)
	m.UiState.SetMode(state.StageFormMode)
	return m, m.stageForm.Init()
}

// openRecordForm opens the new application modal.
func (m Model) openRecordForm() (tea.Model, tea.Cmd) {
	m.formCandidateName = ""
	m.formPosting = ""
	m.formResume = ""
	m.recordForm = huhforms.RecordForm(&m.formCandidateName, &m.formPosting, &m.formResume)
	m.UiState.SetMode(state.RecordFormMode)
	return m, m.recordForm.Init()
}
