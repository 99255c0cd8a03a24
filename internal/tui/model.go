package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/hireloop/funnel/internal/config"
	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/drag"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
	"github.com/hireloop/funnel/internal/settings"
	"github.com/hireloop/funnel/internal/tui/state"
)

// Timeout for database operations issued from the UI
const timeoutDB = 30 * time.Second

// Deps bundles everything the board needs from the outside world.
type Deps struct {
	Config     *config.Config
	Apps       database.ApplicationRepository
	Candidates database.CandidateRepository
	Settings   *settings.Store
	Hub        *events.Hub
}

// Model represents the application state for the TUI
type Model struct {
	Ctx  context.Context
	Deps Deps

	Registry   *registry.Registry
	Controller *drag.Controller

	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *state.NotificationState

	// Record stream subscription
	eventCh             <-chan events.Event
	subscriptionStarted bool

	// Drag gesture presentation: index of the hover target in the full
	// stage list while a gesture is in progress
	dragHoverIdx int

	// Settings form
	settingsForm     *huh.Form
	formTheme        string
	formCustomURL    string
	formTransparency string

	// Stage form
	stageForm      *huh.Form
	formStageName  string
	formStageColor string

	// Record form
	recordForm        *huh.Form
	formCandidateName string
	formPosting       string
	formResume        string

	// Modals
	resumeViewport    viewport.Model
	resumeReady       bool
	detail            *models.ApplicationDetail
	removeStageTarget string
}

// InitialModel creates and initializes the TUI model with data from the
// store.
func InitialModel(ctx context.Context, deps Deps) Model {
	m := Model{
		Ctx:               ctx,
		Deps:              deps,
		AppState:          state.NewAppState(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
	}

	loadCtx, cancel := context.WithTimeout(ctx, timeoutDB)
	defer cancel()

	m.AppState.SetSettings(deps.Settings.Load(loadCtx))
	m.rebuildRegistry()

	records, err := deps.Apps.List(loadCtx)
	if err != nil {
		slog.Error("Error loading applications", "error", err)
		records = []*models.ApplicationRecord{}
	}
	names, err := deps.Candidates.DisplayNames(loadCtx)
	if err != nil {
		slog.Error("Error loading candidate names", "error", err)
		names = map[string]string{}
	}
	m.AppState.SetSnapshot(records, names)
	m.AppState.Regroup(m.Registry)

	if deps.Hub != nil {
		m.eventCh = deps.Hub.Subscribe()
	}

	return m
}

// Init initializes the Bubble Tea application.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// DbContext creates a child context with timeout for database operations
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}

// rebuildRegistry reconstructs the stage registry and drag controller from
// the current settings. Called at startup and whenever the custom stage set
// changes.
func (m *Model) rebuildRegistry() {
	m.Registry = registry.New(m.AppState.Settings().CustomStages, m.Deps.Settings, m.Deps.Apps)
	m.Controller = drag.NewController(m.Registry, m.Deps.Apps)
}

// boardStages returns the columns to render. While a drag gesture is in
// progress every stage is shown, so hidden empty terminal stages become
// visible drop targets; otherwise empty terminal stages stay hidden.
func (m *Model) boardStages() []models.Stage {
	if m.Controller != nil && m.Controller.Phase() != drag.PhaseIdle {
		return m.Registry.Stages()
	}
	return m.AppState.VisibleStages()
}

// currentStage returns the currently selected column, or false when the
// board is empty.
func (m *Model) currentStage() (models.Stage, bool) {
	stages := m.boardStages()
	if len(stages) == 0 {
		return models.Stage{}, false
	}
	idx := m.UiState.SelectedStage()
	if idx >= len(stages) {
		idx = len(stages) - 1
	}
	return stages[idx], true
}

// currentRecord returns the currently selected card's record, or nil.
func (m *Model) currentRecord() *models.ApplicationRecord {
	stage, ok := m.currentStage()
	if !ok {
		return nil
	}
	bucket := m.AppState.Bucket(stage.ID)
	if len(bucket) == 0 || m.UiState.SelectedCard() >= len(bucket) {
		return nil
	}
	return bucket[m.UiState.SelectedCard()]
}

// clampSelection keeps the selection valid after the board shape changed.
func (m *Model) clampSelection() {
	stages := m.boardStages()
	cardCount := 0
	if stage, ok := m.currentStage(); ok {
		cardCount = len(m.AppState.Bucket(stage.ID))
	}
	m.UiState.ClampSelection(len(stages), cardCount)
}
