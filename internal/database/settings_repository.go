package database

import (
	"context"
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hireloop/funnel/internal/models"
)

// SettingsRepository persists the per-user pipeline settings row.
// Custom stages are stored as a JSON document inside the row, so adding
// fields to the stage model never needs a schema migration.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*models.PipelineSettings, error)
	Upsert(ctx context.Context, userID string, settings *models.PipelineSettings) error
}

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a settings repository.
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the stored settings for a user, or models.ErrSettingsNotFound
// when no row exists yet.
func (r *settingsRepository) Get(ctx context.Context, userID string) (*models.PipelineSettings, error) {
	var (
		customStages sql.NullString
		theme        string
		customURL    sql.NullString
		transparency int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT custom_stages, background_theme, custom_background_url, column_transparency
		FROM pipeline_settings
		WHERE user_id = ?
	`, userID).Scan(&customStages, &theme, &customURL, &transparency)
	if err == sql.ErrNoRows {
		return nil, models.ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := &models.PipelineSettings{
		BackgroundTheme:     models.BackgroundTheme(theme),
		CustomBackgroundURL: customURL.String,
		ColumnTransparency:  transparency,
	}
	if customStages.Valid && customStages.String != "" {
		if err := json.Unmarshal([]byte(customStages.String), &settings.CustomStages); err != nil {
			return nil, fmt.Errorf("failed to decode custom stages: %w", err)
		}
	}
	return settings, nil
}

// Upsert writes the full settings row for a user.
func (r *settingsRepository) Upsert(ctx context.Context, userID string, settings *models.PipelineSettings) error {
	var customStages any
	if len(settings.CustomStages) > 0 {
		data, err := json.Marshal(settings.CustomStages)
		if err != nil {
			return fmt.Errorf("failed to encode custom stages: %w", err)
		}
		customStages = string(data)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pipeline_settings (user_id, custom_stages, background_theme, custom_background_url, column_transparency, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			custom_stages = excluded.custom_stages,
			background_theme = excluded.background_theme,
			custom_background_url = excluded.custom_background_url,
			column_transparency = excluded.column_transparency,
			updated_at = CURRENT_TIMESTAMP
	`, userID, customStages, string(settings.BackgroundTheme),
		nullable(settings.CustomBackgroundURL), settings.ColumnTransparency)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
