// Package settings is the store adapter for per-user pipeline
// configuration: custom stages, background theme, and column transparency.
// Load never fails the caller; Save merges a partial patch over the stored
// row rather than overwriting it.
package settings

import (
	"context"
	"log/slog"

	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/models"
)

// Store adapts the settings repository to the board's load/save contract.
type Store struct {
	repo   database.SettingsRepository
	hub    events.Publisher
	userID string
}

// NewStore creates a settings store for one user. The hub may be nil.
func NewStore(repo database.SettingsRepository, hub events.Publisher, userID string) *Store {
	return &Store{repo: repo, hub: hub, userID: userID}
}

// Load returns the user's settings, or defaults when nothing is stored yet
// or the stored row cannot be read. It never fails the caller: a board must
// always be renderable, so storage trouble degrades to defaults and a log
// line.
func (s *Store) Load(ctx context.Context) *models.PipelineSettings {
	stored, err := s.repo.Get(ctx, s.userID)
	if err == models.ErrSettingsNotFound {
		return models.DefaultSettings()
	}
	if err != nil {
		slog.Error("failed to load pipeline settings, using defaults",
			"user", s.userID, "error", err)
		return models.DefaultSettings()
	}
	return normalize(stored)
}

// Save applies a partial update: nil patch fields keep their stored values.
//
// Activating a background theme while none was previously active auto-raises
// the transparency to models.DefaultColumnTransparency in the same save, so
// the new background is actually visible behind the columns. The gate is
// "no background was previously active", so a user who later deliberately
// sets transparency back to 0 with a background on keeps that choice.
func (s *Store) Save(ctx context.Context, patch models.SettingsPatch) (*models.PipelineSettings, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	current := s.Load(ctx)
	merged := *current
	merged.CustomStages = append([]models.Stage(nil), current.CustomStages...)

	if patch.CustomStages != nil {
		merged.CustomStages = append([]models.Stage(nil), (*patch.CustomStages)...)
	}
	if patch.BackgroundTheme != nil {
		merged.BackgroundTheme = *patch.BackgroundTheme

		backgroundActivated := current.BackgroundTheme == models.ThemeNone &&
			merged.BackgroundTheme != models.ThemeNone
		if backgroundActivated && patch.ColumnTransparency == nil {
			merged.ColumnTransparency = models.DefaultColumnTransparency
		}
	}
	if patch.CustomBackgroundURL != nil {
		merged.CustomBackgroundURL = *patch.CustomBackgroundURL
	}
	if patch.ColumnTransparency != nil {
		merged.ColumnTransparency = *patch.ColumnTransparency
	}

	normalized := normalize(&merged)
	if err := s.repo.Upsert(ctx, s.userID, normalized); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(events.Event{Type: events.EventSettingsChanged})
	}
	return normalized, nil
}

// SaveCustomStages persists a registry mutation. Implements
// registry.StagePersister.
func (s *Store) SaveCustomStages(ctx context.Context, stages []models.Stage) error {
	_, err := s.Save(ctx, models.SettingsPatch{CustomStages: &stages})
	return err
}

// normalize enforces settings invariants on load and save: a custom theme
// without a background URL falls back to none.
func normalize(settings *models.PipelineSettings) *models.PipelineSettings {
	if !settings.BackgroundTheme.Valid() {
		settings.BackgroundTheme = models.ThemeNone
	}
	if settings.BackgroundTheme == models.ThemeCustom && settings.CustomBackgroundURL == "" {
		settings.BackgroundTheme = models.ThemeNone
	}
	return settings
}

func validatePatch(patch models.SettingsPatch) error {
	if patch.ColumnTransparency != nil {
		if *patch.ColumnTransparency < 0 || *patch.ColumnTransparency > 100 {
			return ErrBadTransparency
		}
	}
	if patch.BackgroundTheme != nil && !patch.BackgroundTheme.Valid() {
		return ErrBadTheme
	}
	return nil
}
