// Package registry owns the ordered set of pipeline stages: the built-in
// hiring funnel plus any user-created custom stages. The registry is the
// single source of truth for stage ordering, terminal flags, and the
// fallback stage used when a record's status cannot be resolved.
package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hireloop/funnel/internal/migrate"
	"github.com/hireloop/funnel/internal/models"
)

// StagePersister saves the custom stage list when the registry is mutated.
// Implemented by the settings store adapter.
type StagePersister interface {
	SaveCustomStages(ctx context.Context, stages []models.Stage) error
}

// RecordReassigner moves all records in one stage to another. Used when a
// custom stage is removed so that no record is silently dropped.
type RecordReassigner interface {
	ReassignStage(ctx context.Context, fromStageID, toStageID string) error
}

// Registry holds the current stage set in display order.
type Registry struct {
	stages     []models.Stage
	persister  StagePersister
	reassigner RecordReassigner
}

// New builds a registry from the built-in stages plus the user's custom
// stages. The persister and reassigner may be nil for read-only use (pure
// grouping, tests); mutating operations then skip the corresponding side
// effect.
func New(custom []models.Stage, persister StagePersister, reassigner RecordReassigner) *Registry {
	stages := models.BuiltinStages()
	stages = append(stages, custom...)
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Order < stages[j].Order
	})

	return &Registry{
		stages:     stages,
		persister:  persister,
		reassigner: reassigner,
	}
}

// Stages returns the stage set in ascending display order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Stages() []models.Stage {
	out := make([]models.Stage, len(r.stages))
	copy(out, r.stages)
	return out
}

// Stage returns the stage with the given ID, or ErrStageNotFound.
func (r *Registry) Stage(id string) (models.Stage, error) {
	for _, s := range r.stages {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Stage{}, ErrStageNotFound
}

// NextStage returns the stage one position to the right of the given stage,
// or false when the stage is terminal or already at the highest order.
// This is a pure function of the current stage list.
func (r *Registry) NextStage(id string) (models.Stage, bool) {
	current, err := r.Stage(id)
	if err != nil || current.IsTerminal {
		return models.Stage{}, false
	}
	for _, s := range r.stages {
		if s.Order == current.Order+1 {
			return s, true
		}
	}
	return models.Stage{}, false
}

// Fallback returns the designated default stage: the lowest-order stage.
// Records with an unresolvable status group here.
func (r *Registry) Fallback() models.Stage {
	return r.stages[0]
}

// Known returns the set of stage IDs currently in the registry.
func (r *Registry) Known() map[string]bool {
	known := make(map[string]bool, len(r.stages))
	for _, s := range r.stages {
		known[s.ID] = true
	}
	return known
}

// Resolve maps a raw status string to a stage ID guaranteed to be in the
// registry, applying the legacy status migration table.
func (r *Registry) Resolve(rawStatus string) string {
	return migrate.Resolve(rawStatus, r.Known(), r.Fallback().ID)
}

// CustomStages returns only the user-created stages, in display order.
func (r *Registry) CustomStages() []models.Stage {
	var custom []models.Stage
	for _, s := range r.stages {
		if s.IsCustom {
			custom = append(custom, s)
		}
	}
	return custom
}

// AddCustomStage appends a new custom stage at the end of the board and
// persists the updated custom stage list.
func (r *Registry) AddCustomStage(ctx context.Context, name string, color models.StageColor) (models.Stage, error) {
	if err := validateStageName(name); err != nil {
		return models.Stage{}, err
	}
	if !validColor(color) {
		return models.Stage{}, ErrBadColor
	}

	stage := models.Stage{
		ID:       uuid.NewString(),
		Name:     name,
		Order:    len(r.stages),
		Color:    color,
		IsCustom: true,
	}
	r.stages = append(r.stages, stage)

	if err := r.persistCustomStages(ctx); err != nil {
		// Roll back the in-memory append so the registry matches storage
		r.stages = r.stages[:len(r.stages)-1]
		return models.Stage{}, fmt.Errorf("failed to persist custom stage: %w", err)
	}

	return stage, nil
}

// RemoveStage removes a custom stage. Built-in stages are protected and
// return ErrBuiltinStage. Records currently in the removed stage are
// reassigned to the fallback stage before the stage list is persisted, so no
// record is ever left pointing at a missing bucket.
func (r *Registry) RemoveStage(ctx context.Context, id string) error {
	idx := -1
	for i, s := range r.stages {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrStageNotFound
	}
	if !r.stages[idx].IsCustom {
		return ErrBuiltinStage
	}

	if r.reassigner != nil {
		if err := r.reassigner.ReassignStage(ctx, id, r.Fallback().ID); err != nil {
			return fmt.Errorf("failed to reassign records from stage %q: %w", id, err)
		}
	}

	r.stages = append(r.stages[:idx], r.stages[idx+1:]...)
	r.renumber()

	if err := r.persistCustomStages(ctx); err != nil {
		return fmt.Errorf("failed to persist stage removal: %w", err)
	}

	return nil
}

// RenameStage changes a stage's display name. The stage ID never changes, so
// records keep resolving to the same stage.
func (r *Registry) RenameStage(ctx context.Context, id, name string) error {
	if err := validateStageName(name); err != nil {
		return err
	}
	for i, s := range r.stages {
		if s.ID == id {
			if !s.IsCustom {
				return ErrBuiltinStage
			}
			r.stages[i].Name = name
			if err := r.persistCustomStages(ctx); err != nil {
				return fmt.Errorf("failed to persist stage rename: %w", err)
			}
			return nil
		}
	}
	return ErrStageNotFound
}

// renumber restores dense ordering after a removal.
func (r *Registry) renumber() {
	for i := range r.stages {
		r.stages[i].Order = i
	}
}

func (r *Registry) persistCustomStages(ctx context.Context) error {
	if r.persister == nil {
		return nil
	}
	return r.persister.SaveCustomStages(ctx, r.CustomStages())
}

func validateStageName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}
	return nil
}

func validColor(c models.StageColor) bool {
	switch c {
	case models.ColorSlate, models.ColorBlue, models.ColorCyan, models.ColorPurple,
		models.ColorYellow, models.ColorOrange, models.ColorGreen, models.ColorRed:
		return true
	}
	return false
}
