package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hireloop/funnel/internal/models"
)

// fakePersister records the last saved custom stage list.
type fakePersister struct {
	saved  []models.Stage
	calls  int
	failOn error
}

func (f *fakePersister) SaveCustomStages(_ context.Context, stages []models.Stage) error {
	f.calls++
	if f.failOn != nil {
		return f.failOn
	}
	f.saved = append([]models.Stage(nil), stages...)
	return nil
}

// fakeReassigner records reassignment calls.
type fakeReassigner struct {
	from, to string
	calls    int
}

func (f *fakeReassigner) ReassignStage(_ context.Context, fromStageID, toStageID string) error {
	f.calls++
	f.from = fromStageID
	f.to = toStageID
	return nil
}

func TestNew_BuiltinOrdering(t *testing.T) {
	reg := New(nil, nil, nil)

	stages := reg.Stages()
	if len(stages) != 8 {
		t.Fatalf("expected 8 built-in stages, got %d", len(stages))
	}
	for i, s := range stages {
		if s.Order != i {
			t.Errorf("stage %q has order %d at position %d", s.ID, s.Order, i)
		}
	}
	if stages[0].ID != models.StageNew {
		t.Errorf("first stage = %q, want %q", stages[0].ID, models.StageNew)
	}
	if !stages[6].IsTerminal || !stages[7].IsTerminal {
		t.Error("hired and rejected must be terminal")
	}
}

func TestNew_CustomStagesInterleaveByOrder(t *testing.T) {
	custom := []models.Stage{
		{ID: "take-home", Name: "Take Home", Order: 8, Color: models.ColorCyan, IsCustom: true},
	}
	reg := New(custom, nil, nil)

	stages := reg.Stages()
	if len(stages) != 9 {
		t.Fatalf("expected 9 stages, got %d", len(stages))
	}
	if stages[8].ID != "take-home" {
		t.Errorf("custom stage at position 8 = %q", stages[8].ID)
	}
}

func TestNextStage_WalksTheFunnel(t *testing.T) {
	reg := New(nil, nil, nil)

	next, ok := reg.NextStage(models.StageFinalRound)
	if !ok {
		t.Fatal("final_round should have a next stage")
	}
	if next.ID != models.StageOffer {
		t.Errorf("next of final_round = %q, want %q", next.ID, models.StageOffer)
	}
}

func TestNextStage_TerminalStops(t *testing.T) {
	reg := New(nil, nil, nil)

	if _, ok := reg.NextStage(models.StageHired); ok {
		t.Error("hired is terminal, NextStage must return false")
	}
	if _, ok := reg.NextStage(models.StageRejected); ok {
		t.Error("rejected is terminal, NextStage must return false")
	}
}

func TestNextStage_UnknownStage(t *testing.T) {
	reg := New(nil, nil, nil)

	if _, ok := reg.NextStage("nope"); ok {
		t.Error("unknown stage must have no next stage")
	}
}

func TestFallback_IsLowestOrderStage(t *testing.T) {
	reg := New(nil, nil, nil)

	if got := reg.Fallback().ID; got != models.StageNew {
		t.Errorf("fallback = %q, want %q", got, models.StageNew)
	}
}

func TestAddCustomStage_AppendsAndPersists(t *testing.T) {
	persister := &fakePersister{}
	reg := New(nil, persister, nil)

	stage, err := reg.AddCustomStage(context.Background(), "Take Home", models.ColorCyan)
	if err != nil {
		t.Fatalf("AddCustomStage failed: %v", err)
	}

	if stage.Order != 8 {
		t.Errorf("new stage order = %d, want 8", stage.Order)
	}
	if !stage.IsCustom {
		t.Error("new stage must be custom")
	}
	if stage.ID == "" {
		t.Error("new stage must get an ID")
	}
	if persister.calls != 1 {
		t.Errorf("persister called %d times, want 1", persister.calls)
	}
	if len(persister.saved) != 1 || persister.saved[0].Name != "Take Home" {
		t.Errorf("persisted custom stages = %+v", persister.saved)
	}
}

func TestAddCustomStage_Validation(t *testing.T) {
	reg := New(nil, &fakePersister{}, nil)
	ctx := context.Background()

	if _, err := reg.AddCustomStage(ctx, "", models.ColorBlue); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: got %v, want ErrEmptyName", err)
	}
	if _, err := reg.AddCustomStage(ctx, strings.Repeat("x", 51), models.ColorBlue); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("long name: got %v, want ErrNameTooLong", err)
	}
	if _, err := reg.AddCustomStage(ctx, "ok", "magenta"); !errors.Is(err, ErrBadColor) {
		t.Errorf("bad color: got %v, want ErrBadColor", err)
	}
}

func TestAddCustomStage_RollsBackOnPersistFailure(t *testing.T) {
	persister := &fakePersister{failOn: errors.New("disk full")}
	reg := New(nil, persister, nil)

	if _, err := reg.AddCustomStage(context.Background(), "Take Home", models.ColorCyan); err == nil {
		t.Fatal("expected persist error")
	}
	if len(reg.Stages()) != 8 {
		t.Errorf("stage list must roll back to 8 stages, got %d", len(reg.Stages()))
	}
}

func TestRemoveStage_BuiltinProtected(t *testing.T) {
	reassigner := &fakeReassigner{}
	reg := New(nil, &fakePersister{}, reassigner)

	err := reg.RemoveStage(context.Background(), models.StageInterview)
	if !errors.Is(err, ErrBuiltinStage) {
		t.Fatalf("got %v, want ErrBuiltinStage", err)
	}
	if reassigner.calls != 0 {
		t.Error("no records may be reassigned when removal is refused")
	}
	if len(reg.Stages()) != 8 {
		t.Error("stage list must be unchanged")
	}
}

func TestRemoveStage_ReassignsAndRenumbers(t *testing.T) {
	persister := &fakePersister{}
	reassigner := &fakeReassigner{}
	custom := []models.Stage{
		{ID: "take-home", Name: "Take Home", Order: 8, Color: models.ColorCyan, IsCustom: true},
		{ID: "team-fit", Name: "Team Fit", Order: 9, Color: models.ColorGreen, IsCustom: true},
	}
	reg := New(custom, persister, reassigner)

	if err := reg.RemoveStage(context.Background(), "take-home"); err != nil {
		t.Fatalf("RemoveStage failed: %v", err)
	}

	if reassigner.calls != 1 || reassigner.from != "take-home" || reassigner.to != models.StageNew {
		t.Errorf("reassigner called with from=%q to=%q", reassigner.from, reassigner.to)
	}

	stages := reg.Stages()
	if len(stages) != 9 {
		t.Fatalf("expected 9 stages after removal, got %d", len(stages))
	}
	for i, s := range stages {
		if s.Order != i {
			t.Errorf("stage %q has order %d at position %d after renumber", s.ID, s.Order, i)
		}
	}
	if len(persister.saved) != 1 || persister.saved[0].ID != "team-fit" {
		t.Errorf("persisted custom stages = %+v", persister.saved)
	}
}

func TestRemoveStage_Unknown(t *testing.T) {
	reg := New(nil, &fakePersister{}, &fakeReassigner{})

	if err := reg.RemoveStage(context.Background(), "nope"); !errors.Is(err, ErrStageNotFound) {
		t.Errorf("got %v, want ErrStageNotFound", err)
	}
}

func TestRenameStage_KeepsID(t *testing.T) {
	persister := &fakePersister{}
	custom := []models.Stage{
		{ID: "take-home", Name: "Take Home", Order: 8, Color: models.ColorCyan, IsCustom: true},
	}
	reg := New(custom, persister, nil)

	if err := reg.RenameStage(context.Background(), "take-home", "Homework"); err != nil {
		t.Fatalf("RenameStage failed: %v", err)
	}

	stage, err := reg.Stage("take-home")
	if err != nil {
		t.Fatal("stage ID must survive a rename")
	}
	if stage.Name != "Homework" {
		t.Errorf("renamed stage name = %q", stage.Name)
	}
}

func TestRenameStage_BuiltinProtected(t *testing.T) {
	reg := New(nil, &fakePersister{}, nil)

	if err := reg.RenameStage(context.Background(), models.StageNew, "Inbox"); !errors.Is(err, ErrBuiltinStage) {
		t.Errorf("got %v, want ErrBuiltinStage", err)
	}
}

func TestResolve_CustomStageIdentity(t *testing.T) {
	custom := []models.Stage{
		{ID: "take-home", Name: "Take Home", Order: 8, Color: models.ColorCyan, IsCustom: true},
	}
	reg := New(custom, nil, nil)

	if got := reg.Resolve("take-home"); got != "take-home" {
		t.Errorf("Resolve(take-home) = %q", got)
	}
	if got := reg.Resolve("status-of-deleted-stage"); got != models.StageNew {
		t.Errorf("Resolve(unknown) = %q, want fallback", got)
	}
}
