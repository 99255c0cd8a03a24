package models

import "time"

// StatusEntry is a single entry in an application's status history.
// The history is append-only; entries are never rewritten.
type StatusEntry struct {
	Status    string
	Note      string
	Timestamp time.Time
}

// ApplicationRecord represents one candidate's application to one posting.
//
// The record is exclusively owned by the recruiting side: the applicant never
// mutates it directly. Status is a free-form string on the wire and must be
// run through the migration resolver before grouping, so records written
// under older status models remain groupable.
type ApplicationRecord struct {
	ID          string
	ApplicantID string
	PostingID   string
	ResumeRef   string // path to the stored markdown resume
	Status      string
	Rating      int // 1..5, 0 when unrated
	MatchScore  int // 0..100, -1 when unscored
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationDetail is the full view of an application, including its
// status history. Used by the card detail view and the CLI show command.
type ApplicationDetail struct {
	ApplicationRecord
	DisplayName string
	History     []StatusEntry
}
