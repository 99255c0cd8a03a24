package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/models"
)

// ApplicationRepository defines all application-record operations.
type ApplicationRepository interface {
	// Read operations
	List(ctx context.Context) ([]*models.ApplicationRecord, error)
	Get(ctx context.Context, id string) (*models.ApplicationDetail, error)

	// Write operations
	Create(ctx context.Context, req CreateApplicationRequest) (*models.ApplicationRecord, error)
	UpdateStatus(ctx context.Context, id, newStatus, note string) error
	ReassignStage(ctx context.Context, fromStageID, toStageID string) error
}

// CreateApplicationRequest encapsulates data for creating an application.
type CreateApplicationRequest struct {
	CandidateName string
	PostingID     string
	ResumeRef     string
	Status        string // optional, defaults to the "new" stage
	MatchScore    int    // -1 when unscored
}

// applicationRepository implements ApplicationRepository over SQLite.
type applicationRepository struct {
	db  *sql.DB
	hub events.Publisher
}

// NewApplicationRepository creates an application repository. The hub may be
// nil (CLI one-shot commands, tests); record-change events are then skipped.
func NewApplicationRepository(db *sql.DB, hub events.Publisher) ApplicationRepository {
	return &applicationRepository{db: db, hub: hub}
}

// List returns the full application snapshot, oldest first.
func (r *applicationRepository) List(ctx context.Context) ([]*models.ApplicationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, applicant_id, posting_id, COALESCE(resume_ref, ''),
		       status, rating, match_score, applied_at, updated_at
		FROM applications
		ORDER BY applied_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer closeRows(rows)

	var records []*models.ApplicationRecord
	for rows.Next() {
		rec := &models.ApplicationRecord{}
		if err := rows.Scan(&rec.ID, &rec.ApplicantID, &rec.PostingID, &rec.ResumeRef,
			&rec.Status, &rec.Rating, &rec.MatchScore, &rec.AppliedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns one application with its display name and full status history.
func (r *applicationRepository) Get(ctx context.Context, id string) (*models.ApplicationDetail, error) {
	detail := &models.ApplicationDetail{}
	err := r.db.QueryRowContext(ctx, `
		SELECT a.id, a.applicant_id, a.posting_id, COALESCE(a.resume_ref, ''),
		       a.status, a.rating, a.match_score, a.applied_at, a.updated_at,
		       c.display_name
		FROM applications a
		JOIN candidates c ON c.id = a.applicant_id
		WHERE a.id = ?
	`, id).Scan(&detail.ID, &detail.ApplicantID, &detail.PostingID, &detail.ResumeRef,
		&detail.Status, &detail.Rating, &detail.MatchScore, &detail.AppliedAt,
		&detail.UpdatedAt, &detail.DisplayName)
	if err == sql.ErrNoRows {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COALESCE(note, ''), created_at
		FROM status_history
		WHERE application_id = ?
		ORDER BY created_at, id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	defer closeRows(rows)

	for rows.Next() {
		var entry models.StatusEntry
		if err := rows.Scan(&entry.Status, &entry.Note, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan status entry: %w", err)
		}
		detail.History = append(detail.History, entry)
	}
	return detail, rows.Err()
}

// Create inserts a new application, upserting the candidate row by display
// name, and seeds the status history with the initial status.
func (r *applicationRepository) Create(ctx context.Context, req CreateApplicationRequest) (*models.ApplicationRecord, error) {
	if req.CandidateName == "" {
		return nil, fmt.Errorf("candidate name cannot be empty")
	}
	status := req.Status
	if status == "" {
		status = models.StageNew
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	candidateID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO candidates (id, display_name) VALUES (?, ?)`,
		candidateID, req.CandidateName); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	now := time.Now().UTC()
	rec := &models.ApplicationRecord{
		ID:          uuid.NewString(),
		ApplicantID: candidateID,
		PostingID:   req.PostingID,
		ResumeRef:   req.ResumeRef,
		Status:      status,
		MatchScore:  req.MatchScore,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO applications (id, applicant_id, posting_id, resume_ref, status, match_score, applied_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ApplicantID, rec.PostingID, rec.ResumeRef, rec.Status,
		rec.MatchScore, rec.AppliedAt, rec.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO status_history (application_id, status, created_at) VALUES (?, ?, ?)`,
		rec.ID, rec.Status, now); err != nil {
		return nil, fmt.Errorf("failed to seed status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.publish(rec.ID)
	return rec, nil
}

// UpdateStatus sets a record's status and appends the matching entry to its
// status history in the same transaction, keeping the invariant that the
// last history entry agrees with the current status field.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id, newStatus, note string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ?`,
		newStatus, now, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.ErrRecordNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO status_history (application_id, status, note, created_at) VALUES (?, ?, ?, ?)`,
		id, newStatus, note, now); err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.publish(id)
	return nil
}

// ReassignStage moves every record whose status equals fromStageID to
// toStageID, appending a history entry per record. Called when a custom
// stage is removed so no record is silently dropped.
func (r *applicationRepository) ReassignStage(ctx context.Context, fromStageID, toStageID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM applications WHERE status = ?`, fromStageID)
	if err != nil {
		return fmt.Errorf("failed to find records in stage: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			closeRows(rows)
			return fmt.Errorf("failed to scan record id: %w", err)
		}
		ids = append(ids, id)
	}
	closeRows(rows)
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate records: %w", err)
	}

	now := time.Now().UTC()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE applications SET status = ?, updated_at = ? WHERE id = ?`,
			toStageID, now, id); err != nil {
			return fmt.Errorf("failed to reassign record %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO status_history (application_id, status, note, created_at) VALUES (?, ?, ?, ?)`,
			id, toStageID, "stage removed", now); err != nil {
			return fmt.Errorf("failed to append history for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if len(ids) > 0 {
		r.publish("")
	}
	return nil
}

func (r *applicationRepository) publish(recordID string) {
	if r.hub == nil {
		return
	}
	r.hub.Publish(events.Event{Type: events.EventRecordsChanged, RecordID: recordID})
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		slog.Error("failed to rollback transaction", "error", err)
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "error", err)
	}
}
