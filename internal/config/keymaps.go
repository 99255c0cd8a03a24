package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	Grab        string `yaml:"grab"` // pick up / drop the selected card
	CancelDrag  string `yaml:"cancel_drag"`
	Advance     string `yaml:"advance"`
	Reject      string `yaml:"reject"`
	ViewResume  string `yaml:"view_resume"`
	ViewDetails string `yaml:"view_details"`
	NewRecord   string `yaml:"new_record"`

	// Stages
	AddStage    string `yaml:"add_stage"`
	RemoveStage string `yaml:"remove_stage"`

	// Settings
	OpenSettings string `yaml:"open_settings"`

	// Navigation
	PrevStage string `yaml:"prev_stage"`
	NextStage string `yaml:"next_stage"`
	PrevCard  string `yaml:"prev_card"`
	NextCard  string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		Grab:        " ",
		CancelDrag:  "esc",
		Advance:     "a",
		Reject:      "x",
		ViewResume:  "v",
		ViewDetails: "enter",
		NewRecord:   "n",

		// Stages
		AddStage:    "S",
		RemoveStage: "X",

		// Settings
		OpenSettings: "s",

		// Navigation
		PrevStage: "h",
		NextStage: "l",
		PrevCard:  "k",
		NextCard:  "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Grab == "" {
		k.Grab = defaults.Grab
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.Advance == "" {
		k.Advance = defaults.Advance
	}
	if k.Reject == "" {
		k.Reject = defaults.Reject
	}
	if k.ViewResume == "" {
		k.ViewResume = defaults.ViewResume
	}
	if k.ViewDetails == "" {
		k.ViewDetails = defaults.ViewDetails
	}
	if k.NewRecord == "" {
		k.NewRecord = defaults.NewRecord
	}
	if k.AddStage == "" {
		k.AddStage = defaults.AddStage
	}
	if k.RemoveStage == "" {
		k.RemoveStage = defaults.RemoveStage
	}
	if k.OpenSettings == "" {
		k.OpenSettings = defaults.OpenSettings
	}
	if k.PrevStage == "" {
		k.PrevStage = defaults.PrevStage
	}
	if k.NextStage == "" {
		k.NextStage = defaults.NextStage
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
