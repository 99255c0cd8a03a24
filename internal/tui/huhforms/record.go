package huhforms

import (
	"charm.land/huh/v2"
)

// RecordForm creates a huh form for registering a new application record.
func RecordForm(name, posting, resumeRef *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Candidate Name").
			Placeholder("Enter candidate name...").
			Value(name),
		huh.NewInput().
			Key("posting").
			Title("Posting").
			Placeholder("e.g. backend-eng-2026").
			Value(posting),
		huh.NewInput().
			Key("resume").
			Title("Resume Path").
			Placeholder("path to markdown resume (optional)").
			Value(resumeRef),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
