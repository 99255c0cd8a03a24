package models

// StageColor is the color tag shown on a stage's column header.
type StageColor string

const (
	ColorSlate  StageColor = "slate"
	ColorBlue   StageColor = "blue"
	ColorCyan   StageColor = "cyan"
	ColorPurple StageColor = "purple"
	ColorYellow StageColor = "yellow"
	ColorOrange StageColor = "orange"
	ColorGreen  StageColor = "green"
	ColorRed    StageColor = "red"
)

// Stage represents one column of the pipeline board and one state in the
// candidate-progression state machine.
//
// Stage IDs are stable once created: renaming a stage changes Name only,
// so application records keep pointing at the same stage.
type Stage struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Order      int        `json:"order"` // dense, defines left-to-right column position
	Color      StageColor `json:"color"`
	IsTerminal bool       `json:"is_terminal"`
	IsCustom   bool       `json:"is_custom"`
}

// Built-in stage IDs. These are seeded on first use and can never be removed.
const (
	StageNew         = "new"
	StageScreening   = "screening"
	StagePhoneScreen = "phone_screen"
	StageInterview   = "interview"
	StageFinalRound  = "final_round"
	StageOffer       = "offer"
	StageHired       = "hired"
	StageRejected    = "rejected"
)

// BuiltinStages returns the default hiring funnel in display order.
// The lowest-order stage ("new") doubles as the fallback stage for records
// whose status cannot be resolved to any known stage.
func BuiltinStages() []Stage {
	return []Stage{
		{ID: StageNew, Name: "New", Order: 0, Color: ColorSlate},
		{ID: StageScreening, Name: "Screening", Order: 1, Color: ColorBlue},
		{ID: StagePhoneScreen, Name: "Phone Screen", Order: 2, Color: ColorCyan},
		{ID: StageInterview, Name: "Interview", Order: 3, Color: ColorPurple},
		{ID: StageFinalRound, Name: "Final Round", Order: 4, Color: ColorYellow},
		{ID: StageOffer, Name: "Offer", Order: 5, Color: ColorOrange},
		{ID: StageHired, Name: "Hired", Order: 6, Color: ColorGreen, IsTerminal: true},
		{ID: StageRejected, Name: "Rejected", Order: 7, Color: ColorRed, IsTerminal: true},
	}
}
