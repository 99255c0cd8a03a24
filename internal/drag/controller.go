// Package drag models the card-move gesture as an explicit state machine:
//
//	Idle -> Dragging(payload) -> Hovering(target) -> Dropped | Cancelled
//
// Keeping gesture state in one inspectable struct (instead of ambient
// mutable variables) means the whole flow is testable without a pointer
// device, and the optimistic update / revert protocol is a first-class path
// rather than an afterthought.
package drag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

// Phase is the current state of the drag gesture state machine.
type Phase int

const (
	// PhaseIdle means no gesture is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means a card has been picked up but is not over a target.
	PhaseDragging
	// PhaseHovering means the card is over a candidate drop target.
	PhaseHovering
)

// StatusPersister writes a status transition to the external store.
// The call is asynchronous from the UI's point of view; confirmations may
// arrive out of order relative to other transitions issued close together.
type StatusPersister interface {
	UpdateStatus(ctx context.Context, recordID, newStatus, note string) error
}

// Transition is one validated stage change for one record.
// Apply and Revert implement the two-phase commit against local state:
// apply optimistically, persist, revert if persistence fails.
type Transition struct {
	RecordID string
	From     string
	To       string
}

// ApplyTo optimistically marks the record with the target stage.
func (t Transition) ApplyTo(rec *models.ApplicationRecord) {
	rec.Status = t.To
}

// RevertFrom undoes the optimistic change after a persistence failure.
func (t Transition) RevertFrom(rec *models.ApplicationRecord) {
	rec.Status = t.From
}

// Controller tracks one drag gesture at a time and validates transitions
// against the stage registry. Further gestures may begin while a previous
// transition's persistence call is still in flight; the controller holds no
// state for in-flight persists.
type Controller struct {
	reg       *registry.Registry
	persister StatusPersister

	phase      Phase
	payload    Payload
	hoverStage string
}

// NewController creates a drag controller bound to a registry and persister.
func NewController(reg *registry.Registry, persister StatusPersister) *Controller {
	return &Controller{reg: reg, persister: persister}
}

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Payload returns the payload of the gesture in progress.
// Only meaningful while Phase is not PhaseIdle.
func (c *Controller) Payload() Payload {
	return c.payload
}

// HoverStage returns the stage currently highlighted as a drop target, or
// an empty string when not hovering. This is purely presentational state.
func (c *Controller) HoverStage() string {
	if c.phase != PhaseHovering {
		return ""
	}
	return c.hoverStage
}

// Begin starts a gesture from an encoded drag payload. A malformed payload
// aborts silently: the error is logged and returned for the caller to drop,
// never surfaced to the end user.
func (c *Controller) Begin(encoded []byte) error {
	payload, err := DecodePayload(encoded)
	if err != nil {
		slog.Warn("aborting drag gesture", "error", err)
		c.reset()
		return err
	}
	c.phase = PhaseDragging
	c.payload = payload
	c.hoverStage = ""
	return nil
}

// Hover marks a stage as the candidate drop target, driving the drop-target
// highlight. Hovering an unknown stage keeps the gesture alive but clears
// the highlight.
func (c *Controller) Hover(stageID string) error {
	if c.phase == PhaseIdle {
		return ErrNoGesture
	}
	if _, err := c.reg.Stage(stageID); err != nil {
		c.phase = PhaseDragging
		c.hoverStage = ""
		return ErrUnknownStage
	}
	c.phase = PhaseHovering
	c.hoverStage = stageID
	return nil
}

// PointerLeave clears the drop-target highlight when the pointer leaves the
// board container. The gesture itself stays alive.
func (c *Controller) PointerLeave() {
	if c.phase == PhaseHovering {
		c.phase = PhaseDragging
		c.hoverStage = ""
	}
}

// Cancel abandons the gesture with no side effects. No persistence call has
// been issued at this point, so there is nothing to undo.
func (c *Controller) Cancel() {
	c.reset()
}

// Drop completes the gesture onto the given target stage and returns the
// validated transition. Dropping onto the source stage is a no-op and
// returns nil with no error: the record's history must not gain an entry and
// no persistence call may be issued. The gesture always returns to Idle.
func (c *Controller) Drop(targetStageID string) (*Transition, error) {
	if c.phase == PhaseIdle {
		return nil, ErrNoGesture
	}
	payload := c.payload
	c.reset()

	if _, err := c.reg.Stage(targetStageID); err != nil {
		return nil, ErrUnknownStage
	}
	if targetStageID == payload.SourceStage {
		return nil, nil
	}

	return &Transition{
		RecordID: payload.RecordID,
		From:     payload.SourceStage,
		To:       targetStageID,
	}, nil
}

// Advance computes the quick-action transition to the next stage in the
// funnel. Returns false when the record is already at the last or a terminal
// stage; the action is then a no-op with no state change.
func (c *Controller) Advance(rec *models.ApplicationRecord) (*Transition, bool) {
	current := c.reg.Resolve(rec.Status)
	next, ok := c.reg.NextStage(current)
	if !ok {
		return nil, false
	}
	return &Transition{RecordID: rec.ID, From: current, To: next.ID}, true
}

// Reject computes the quick-action transition to the rejected terminal
// stage, regardless of the record's current stage. Returns false only when
// the record is already rejected.
func (c *Controller) Reject(rec *models.ApplicationRecord) (*Transition, bool) {
	current := c.reg.Resolve(rec.Status)
	if current == models.StageRejected {
		return nil, false
	}
	return &Transition{RecordID: rec.ID, From: current, To: models.StageRejected}, true
}

// Persist writes the transition to the external store. On failure the caller
// must revert the optimistic change and surface the error as transient and
// retryable.
func (c *Controller) Persist(ctx context.Context, t Transition, note string) error {
	if err := c.persister.UpdateStatus(ctx, t.RecordID, t.To, note); err != nil {
		return fmt.Errorf("failed to persist transition to %q: %w", t.To, err)
	}
	return nil
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.payload = Payload{}
	c.hoverStage = ""
}
