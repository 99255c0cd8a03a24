package huhforms

import (
	"charm.land/huh/v2"
)

// StageForm creates a huh form for adding a custom stage.
// The new stage is appended at the end of the board.
func StageForm(name, color *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("New Stage Name").
			Placeholder("Enter stage name...").
			Value(name),
		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(
				huh.NewOption("Slate", "slate"),
				huh.NewOption("Blue", "blue"),
				huh.NewOption("Cyan", "cyan"),
				huh.NewOption("Purple", "purple"),
				huh.NewOption("Yellow", "yellow"),
				huh.NewOption("Orange", "orange"),
				huh.NewOption("Green", "green"),
				huh.NewOption("Red", "red"),
			).
			Value(color),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
