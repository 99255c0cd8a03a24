package state

import (
	"github.com/hireloop/funnel/internal/board"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

// AppState holds the loaded data: the full application snapshot, the
// candidate display-name cache, the user's board settings, and the derived
// grouping. The snapshot is always replaced whole - the record stream has no
// partial-diff contract.
type AppState struct {
	records  []*models.ApplicationRecord
	names    map[string]string
	settings *models.PipelineSettings

	grouping *board.Grouping
	visible  []models.Stage
}

// NewAppState creates an empty AppState.
func NewAppState() *AppState {
	return &AppState{
		names:    map[string]string{},
		settings: models.DefaultSettings(),
	}
}

// SetSnapshot replaces the record snapshot and display-name cache.
// Call Regroup afterwards to recompute the buckets.
func (s *AppState) SetSnapshot(records []*models.ApplicationRecord, names map[string]string) {
	s.records = records
	if names != nil {
		s.names = names
	}
}

// Records returns the current full snapshot.
func (s *AppState) Records() []*models.ApplicationRecord {
	return s.records
}

// FindRecord returns the record with the given ID from the current
// snapshot, or nil.
func (s *AppState) FindRecord(id string) *models.ApplicationRecord {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// DisplayName resolves an applicant ID to a display name, falling back to
// the raw ID when the cache has no entry.
func (s *AppState) DisplayName(applicantID string) string {
	if name, ok := s.names[applicantID]; ok {
		return name
	}
	return applicantID
}

// Settings returns the current board settings.
func (s *AppState) Settings() *models.PipelineSettings {
	return s.settings
}

// SetSettings replaces the board settings.
func (s *AppState) SetSettings(settings *models.PipelineSettings) {
	s.settings = settings
}

// Regroup recomputes the per-stage buckets and the visible column list from
// the current snapshot.
func (s *AppState) Regroup(reg *registry.Registry) {
	s.grouping = board.Group(s.records, reg)
	s.visible = s.grouping.VisibleStages(reg.Stages())
}

// Grouping returns the current grouping. Nil before the first Regroup.
func (s *AppState) Grouping() *board.Grouping {
	return s.grouping
}

// VisibleStages returns the columns to render, in display order.
func (s *AppState) VisibleStages() []models.Stage {
	return s.visible
}

// Bucket returns the records grouped into the given stage.
func (s *AppState) Bucket(stageID string) []*models.ApplicationRecord {
	if s.grouping == nil {
		return []*models.ApplicationRecord{}
	}
	return s.grouping.Bucket(stageID)
}
