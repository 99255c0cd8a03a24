package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is
// displayed.
type Mode int

const (
	NormalMode             Mode = iota // Default navigation mode
	HelpMode                           // Displaying help screen
	SettingsFormMode                   // Board settings form (theme, transparency)
	StageFormMode                      // Creating a custom stage
	RecordFormMode                     // Creating an application record
	RemoveStageConfirmMode             // Confirming custom stage removal
	ResumeViewMode                     // Rendered resume preview
	DetailViewMode                     // Full application detail with history
)

// UIState manages the user interface state: navigation (stage/card
// selection), terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedStage is the index of the currently selected visible column
	selectedStage int

	// selectedCard is the index of the selected card within that column
	selectedCard int

	// width and height are the current terminal dimensions in characters
	width  int
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{}
}

// SelectedStage returns the index of the currently selected column.
func (s *UIState) SelectedStage() int {
	return s.selectedStage
}

// SetSelectedStage updates the selected column index.
func (s *UIState) SetSelectedStage(index int) {
	s.selectedStage = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ClampSelection keeps the selection within the given column and card
// counts after a snapshot reload changed the board shape.
func (s *UIState) ClampSelection(stageCount, cardCount int) {
	if s.selectedStage >= stageCount {
		s.selectedStage = max(stageCount-1, 0)
	}
	if s.selectedCard >= cardCount {
		s.selectedCard = max(cardCount-1, 0)
	}
}
