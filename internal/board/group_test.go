package board

import (
	"testing"
	"time"

	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

func rec(id, status string, applied time.Time) *models.ApplicationRecord {
	return &models.ApplicationRecord{ID: id, ApplicantID: "cand-" + id, Status: status, AppliedAt: applied}
}

func TestGroup_BucketsByResolvedStatus(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	records := []*models.ApplicationRecord{
		rec("a", models.StageInterview, base),
		rec("b", "shortlisted", base.Add(time.Hour)), // legacy status
		rec("c", "no-such-status", base),             // falls back
	}

	g := Group(records, reg)

	if got := g.Count(models.StageInterview); got != 1 {
		t.Errorf("interview bucket = %d, want 1", got)
	}
	if got := g.Count(models.StagePhoneScreen); got != 1 {
		t.Errorf("phone_screen bucket = %d (legacy shortlisted), want 1", got)
	}
	if got := g.Count(models.StageNew); got != 1 {
		t.Errorf("fallback bucket = %d, want 1", got)
	}
	if g.Total() != 3 {
		t.Errorf("total = %d, want 3", g.Total())
	}
}

func TestGroup_EveryStageHasABucket(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	g := Group(nil, reg)

	for _, s := range reg.Stages() {
		if g.Bucket(s.ID) == nil {
			t.Errorf("stage %q has no bucket", s.ID)
		}
	}
}

func TestGroup_DeterministicOrder(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Same AppliedAt: ties break by record ID, so input order is irrelevant.
	records := []*models.ApplicationRecord{
		rec("z", models.StageNew, base),
		rec("a", models.StageNew, base),
		rec("m", models.StageNew, base.Add(-time.Hour)),
	}

	g1 := Group(records, reg)
	g2 := Group([]*models.ApplicationRecord{records[1], records[2], records[0]}, reg)

	want := []string{"m", "a", "z"}
	for _, g := range []*Grouping{g1, g2} {
		bucket := g.Bucket(models.StageNew)
		if len(bucket) != 3 {
			t.Fatalf("bucket size = %d, want 3", len(bucket))
		}
		for i, w := range want {
			if bucket[i].ID != w {
				t.Errorf("bucket[%d] = %q, want %q", i, bucket[i].ID, w)
			}
		}
	}
}

func TestVisibleStages_HidesEmptyTerminal(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	g := Group([]*models.ApplicationRecord{rec("a", models.StageHired, base)}, reg)
	visible := g.VisibleStages(reg.Stages())

	// hired has a record and stays; rejected is empty and hidden
	ids := make(map[string]bool)
	for _, s := range visible {
		ids[s.ID] = true
	}
	if !ids[models.StageHired] {
		t.Error("hired has records and must stay visible")
	}
	if ids[models.StageRejected] {
		t.Error("empty rejected stage must be hidden")
	}
	// non-terminal stages always render, records or not
	if !ids[models.StageOffer] {
		t.Error("empty non-terminal stages must stay visible")
	}
}

func TestVisibleStages_HiddenStageKeepsBucket(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	g := Group(nil, reg)

	g.VisibleStages(reg.Stages())
	if g.Bucket(models.StageRejected) == nil {
		t.Error("hidden terminal stage must keep its bucket for drops")
	}
}
