package drag

import (
	"context"
	"errors"
	"testing"

	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

// fakePersister records status updates and can be told to fail.
type fakePersister struct {
	updates []string
	failOn  error
}

func (f *fakePersister) UpdateStatus(_ context.Context, recordID, newStatus, note string) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.updates = append(f.updates, recordID+"->"+newStatus)
	return nil
}

func newTestController() (*Controller, *fakePersister) {
	persister := &fakePersister{}
	reg := registry.New(nil, nil, nil)
	return NewController(reg, persister), persister
}

func mustEncode(t *testing.T, p Payload) []byte {
	t.Helper()
	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}

func TestController_FullGesture(t *testing.T) {
	c, _ := newTestController()

	if err := c.Begin(mustEncode(t, Payload{RecordID: "rec-1", SourceStage: models.StageNew})); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if c.Phase() != PhaseDragging {
		t.Errorf("phase after Begin = %v, want dragging", c.Phase())
	}

	if err := c.Hover(models.StageInterview); err != nil {
		t.Fatalf("Hover failed: %v", err)
	}
	if c.Phase() != PhaseHovering || c.HoverStage() != models.StageInterview {
		t.Errorf("hover state = %v/%q", c.Phase(), c.HoverStage())
	}

	transition, err := c.Drop(models.StageInterview)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if transition == nil {
		t.Fatal("Drop returned no transition")
	}
	if transition.From != models.StageNew || transition.To != models.StageInterview {
		t.Errorf("transition = %+v", transition)
	}
	if c.Phase() != PhaseIdle {
		t.Error("gesture must return to idle after drop")
	}
}

func TestController_BeginMalformedAborts(t *testing.T) {
	c, _ := newTestController()

	if err := c.Begin([]byte("junk")); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("got %v, want ErrMalformedPayload", err)
	}
	if c.Phase() != PhaseIdle {
		t.Error("malformed payload must leave the controller idle")
	}
}

func TestController_HoverUnknownStageClearsHighlight(t *testing.T) {
	c, _ := newTestController()
	_ = c.Begin(mustEncode(t, Payload{RecordID: "rec-1", SourceStage: models.StageNew}))
	_ = c.Hover(models.StageInterview)

	if err := c.Hover("no-such-stage"); !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("got %v, want ErrUnknownStage", err)
	}
	if c.HoverStage() != "" {
		t.Error("highlight must clear on unknown hover target")
	}
	if c.Phase() != PhaseDragging {
		t.Error("gesture must stay alive after unknown hover")
	}
}

func TestController_PointerLeaveKeepsGesture(t *testing.T) {
	c, _ := newTestController()
	_ = c.Begin(mustEncode(t, Payload{RecordID: "rec-1", SourceStage: models.StageNew}))
	_ = c.Hover(models.StageInterview)

	c.PointerLeave()
	if c.Phase() != PhaseDragging {
		t.Errorf("phase after PointerLeave = %v, want dragging", c.Phase())
	}
	if c.HoverStage() != "" {
		t.Error("highlight must clear when the pointer leaves the board")
	}
}

func TestController_DropOnSourceIsNoOp(t *testing.T) {
	c, _ := newTestController()
	_ = c.Begin(mustEncode(t, Payload{RecordID: "rec-1", SourceStage: models.StageNew}))

	transition, err := c.Drop(models.StageNew)
	if err != nil {
		t.Fatalf("same-stage drop errored: %v", err)
	}
	if transition != nil {
		t.Errorf("same-stage drop must produce no transition, got %+v", transition)
	}
	if c.Phase() != PhaseIdle {
		t.Error("gesture must reset to idle")
	}
}

func TestController_DropWithoutGesture(t *testing.T) {
	c, _ := newTestController()

	if _, err := c.Drop(models.StageInterview); !errors.Is(err, ErrNoGesture) {
		t.Errorf("got %v, want ErrNoGesture", err)
	}
}

func TestController_CancelResets(t *testing.T) {
	c, _ := newTestController()
	_ = c.Begin(mustEncode(t, Payload{RecordID: "rec-1", SourceStage: models.StageNew}))

	c.Cancel()
	if c.Phase() != PhaseIdle {
		t.Error("Cancel must reset to idle")
	}
}

func TestController_Advance(t *testing.T) {
	c, _ := newTestController()

	rec := &models.ApplicationRecord{ID: "rec-1", Status: models.StageFinalRound}
	transition, ok := c.Advance(rec)
	if !ok {
		t.Fatal("final_round must advance")
	}
	if transition.To != models.StageOffer {
		t.Errorf("advance target = %q, want offer", transition.To)
	}
}

func TestController_AdvanceLegacyStatus(t *testing.T) {
	c, _ := newTestController()

	// legacy status resolves before stepping
	rec := &models.ApplicationRecord{ID: "rec-1", Status: "shortlisted"}
	transition, ok := c.Advance(rec)
	if !ok {
		t.Fatal("shortlisted resolves to phone_screen and must advance")
	}
	if transition.From != models.StagePhoneScreen || transition.To != models.StageInterview {
		t.Errorf("transition = %+v", transition)
	}
}

func TestController_AdvanceAtTerminalIsNoOp(t *testing.T) {
	c, _ := newTestController()

	for _, status := range []string{models.StageHired, models.StageRejected} {
		rec := &models.ApplicationRecord{ID: "rec-1", Status: status}
		if _, ok := c.Advance(rec); ok {
			t.Errorf("advance from terminal %q must be refused", status)
		}
	}
}

func TestController_Reject(t *testing.T) {
	c, _ := newTestController()

	rec := &models.ApplicationRecord{ID: "rec-1", Status: models.StageOffer}
	transition, ok := c.Reject(rec)
	if !ok {
		t.Fatal("reject from offer must work")
	}
	if transition.To != models.StageRejected {
		t.Errorf("reject target = %q", transition.To)
	}

	rec.Status = models.StageRejected
	if _, ok := c.Reject(rec); ok {
		t.Error("rejecting an already rejected record must be a no-op")
	}
}

func TestTransition_ApplyAndRevert(t *testing.T) {
	rec := &models.ApplicationRecord{ID: "rec-1", Status: models.StageNew}
	transition := Transition{RecordID: "rec-1", From: models.StageNew, To: models.StageInterview}

	transition.ApplyTo(rec)
	if rec.Status != models.StageInterview {
		t.Errorf("status after apply = %q", rec.Status)
	}

	transition.RevertFrom(rec)
	if rec.Status != models.StageNew {
		t.Errorf("status after revert = %q", rec.Status)
	}
}

func TestController_PersistFailureSurfacesError(t *testing.T) {
	c, persister := newTestController()
	persister.failOn = errors.New("connection lost")

	transition := Transition{RecordID: "rec-1", From: models.StageNew, To: models.StageInterview}
	if err := c.Persist(context.Background(), transition, ""); err == nil {
		t.Fatal("expected persist error")
	}

	// the caller reverts; the record must land back in its source stage
	rec := &models.ApplicationRecord{ID: "rec-1", Status: models.StageInterview}
	transition.RevertFrom(rec)
	if rec.Status != models.StageNew {
		t.Errorf("reverted status = %q, want source stage", rec.Status)
	}
}

func TestController_PersistWritesStore(t *testing.T) {
	c, persister := newTestController()

	transition := Transition{RecordID: "rec-1", From: models.StageNew, To: models.StageInterview}
	if err := c.Persist(context.Background(), transition, "moved"); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	if len(persister.updates) != 1 || persister.updates[0] != "rec-1->interview" {
		t.Errorf("persisted updates = %v", persister.updates)
	}
}
