package huhforms

import (
	"fmt"
	"strconv"

	"charm.land/huh/v2"
)

// SettingsForm creates a huh form for the board settings modal.
// All values are bound as strings; the caller parses and validates the
// transparency on completion.
func SettingsForm(theme, customURL, transparency *string) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("theme").
			Title("Background Theme").
			Options(
				huh.NewOption("None", "none"),
				huh.NewOption("Gradient", "gradient"),
				huh.NewOption("Dots", "dots"),
				huh.NewOption("Custom", "custom"),
			).
			Value(theme),
		huh.NewInput().
			Key("custom_url").
			Title("Custom Background").
			Placeholder("asset reference (custom theme only)").
			Value(customURL),
		huh.NewInput().
			Key("transparency").
			Title("Column Transparency (0-100)").
			Validate(validateTransparency).
			Value(transparency),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateTransparency(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("must be a number between 0 and 100")
	}
	return nil
}
