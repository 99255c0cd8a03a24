package database

import (
	"context"
	"database/sql"
	"fmt"
)

// CandidateRepository supplies the candidate display-name cache.
// The board treats the mapping as read-only: it is loaded fully populated
// alongside each record snapshot.
type CandidateRepository interface {
	DisplayNames(ctx context.Context) (map[string]string, error)
}

type candidateRepository struct {
	db *sql.DB
}

// NewCandidateRepository creates a candidate repository.
func NewCandidateRepository(db *sql.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// DisplayNames returns the applicant-id to display-name mapping for all
// known candidates.
func (r *candidateRepository) DisplayNames(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, display_name FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	defer closeRows(rows)

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
