package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hireloop/funnel/internal/database"
	"github.com/hireloop/funnel/internal/events"
	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/testutil"
)

func setupRepo(t *testing.T) database.ApplicationRepository {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return database.NewApplicationRepository(db, nil)
}

func create(t *testing.T, repo database.ApplicationRepository, name, status string) *models.ApplicationRecord {
	t.Helper()
	rec, err := repo.Create(context.Background(), database.CreateApplicationRequest{
		CandidateName: name,
		PostingID:     "backend-eng-2026",
		Status:        status,
		MatchScore:    -1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return rec
}

func TestCreate_DefaultsToNewStage(t *testing.T) {
	repo := setupRepo(t)

	rec := create(t, repo, "Ada Lovelace", "")
	if rec.Status != models.StageNew {
		t.Errorf("status = %q, want %q", rec.Status, models.StageNew)
	}

	detail, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.DisplayName != "Ada Lovelace" {
		t.Errorf("display name = %q", detail.DisplayName)
	}
	if len(detail.History) != 1 || detail.History[0].Status != models.StageNew {
		t.Errorf("history = %+v, want one seeded entry", detail.History)
	}
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Create(context.Background(), database.CreateApplicationRequest{})
	if err == nil {
		t.Fatal("expected error for empty candidate name")
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Get(context.Background(), "no-such-id")
	if !errors.Is(err, models.ErrRecordNotFound) {
		t.Errorf("got %v, want ErrRecordNotFound", err)
	}
}

func TestList_ReturnsAllRecords(t *testing.T) {
	repo := setupRepo(t)
	create(t, repo, "Ada Lovelace", models.StageNew)
	create(t, repo, "Grace Hopper", models.StageInterview)

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("listed %d records, want 2", len(records))
	}
}

func TestUpdateStatus_AppendsHistory(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	rec := create(t, repo, "Ada Lovelace", models.StageNew)

	if err := repo.UpdateStatus(ctx, rec.ID, models.StageInterview, "moved on board"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	detail, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.Status != models.StageInterview {
		t.Errorf("status = %q", detail.Status)
	}
	if len(detail.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(detail.History))
	}
	last := detail.History[len(detail.History)-1]
	if last.Status != detail.Status {
		t.Errorf("last history entry %q disagrees with status %q", last.Status, detail.Status)
	}
	if last.Note != "moved on board" {
		t.Errorf("note = %q", last.Note)
	}
}

func TestUpdateStatus_UnknownRecord(t *testing.T) {
	repo := setupRepo(t)

	err := repo.UpdateStatus(context.Background(), "no-such-id", models.StageInterview, "")
	if !errors.Is(err, models.ErrRecordNotFound) {
		t.Errorf("got %v, want ErrRecordNotFound", err)
	}
}

func TestReassignStage_MovesAllRecords(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	a := create(t, repo, "Ada Lovelace", "take-home")
	b := create(t, repo, "Grace Hopper", "take-home")
	c := create(t, repo, "Katherine Johnson", models.StageOffer)

	if err := repo.ReassignStage(ctx, "take-home", models.StageNew); err != nil {
		t.Fatalf("ReassignStage failed: %v", err)
	}

	for _, id := range []string{a.ID, b.ID} {
		detail, err := repo.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if detail.Status != models.StageNew {
			t.Errorf("record %s status = %q, want reassigned to new", id, detail.Status)
		}
		last := detail.History[len(detail.History)-1]
		if last.Note != "stage removed" {
			t.Errorf("record %s last note = %q", id, last.Note)
		}
	}

	// untouched record keeps its stage
	detail, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.Status != models.StageOffer {
		t.Errorf("unrelated record status = %q", detail.Status)
	}
}

func TestRepository_PublishesRecordEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	hub := events.NewHub()
	defer hub.Close()
	repo := database.NewApplicationRepository(db, hub)

	ch := hub.Subscribe()
	rec := create(t, repo, "Ada Lovelace", models.StageNew)

	select {
	case event := <-ch:
		if event.Type != events.EventRecordsChanged {
			t.Errorf("event type = %q", event.Type)
		}
		if event.RecordID != rec.ID {
			t.Errorf("event record = %q, want %q", event.RecordID, rec.ID)
		}
	default:
		t.Fatal("expected a records_changed event after create")
	}
}
