// Package board partitions the live application snapshot into per-stage
// buckets for rendering. Grouping is deterministic so a recompute from a
// fresh snapshot never visually reorders cards mid-gesture.
package board

import (
	"sort"

	"github.com/hireloop/funnel/internal/models"
	"github.com/hireloop/funnel/internal/registry"
)

// Grouping is the result of one grouping pass: a bucket per stage ID.
// Every stage in the registry has a bucket, including empty terminal stages,
// so a drop onto a hidden terminal column is still a valid transition.
type Grouping struct {
	buckets map[string][]*models.ApplicationRecord
}

// Group partitions records into per-stage buckets using the registry's
// status resolution. Records whose resolved stage no longer has a bucket
// (stage deleted after the record was last written) fall back to the
// registry's default stage.
//
// Bucket order is by AppliedAt ascending, ties broken by record ID, which is
// stable across recomputes.
func Group(records []*models.ApplicationRecord, reg *registry.Registry) *Grouping {
	buckets := make(map[string][]*models.ApplicationRecord)
	for _, s := range reg.Stages() {
		buckets[s.ID] = []*models.ApplicationRecord{}
	}

	fallback := reg.Fallback().ID
	for _, rec := range records {
		stageID := reg.Resolve(rec.Status)
		if _, ok := buckets[stageID]; !ok {
			stageID = fallback
		}
		buckets[stageID] = append(buckets[stageID], rec)
	}

	for id := range buckets {
		bucket := buckets[id]
		sort.SliceStable(bucket, func(i, j int) bool {
			if !bucket[i].AppliedAt.Equal(bucket[j].AppliedAt) {
				return bucket[i].AppliedAt.Before(bucket[j].AppliedAt)
			}
			return bucket[i].ID < bucket[j].ID
		})
	}

	return &Grouping{buckets: buckets}
}

// Bucket returns the records grouped into the given stage.
// Returns an empty slice for stages with no records.
func (g *Grouping) Bucket(stageID string) []*models.ApplicationRecord {
	bucket, ok := g.buckets[stageID]
	if !ok {
		return []*models.ApplicationRecord{}
	}
	return bucket
}

// Count returns the number of records in the given stage.
func (g *Grouping) Count(stageID string) int {
	return len(g.buckets[stageID])
}

// Total returns the number of records across all buckets.
func (g *Grouping) Total() int {
	total := 0
	for _, bucket := range g.buckets {
		total += len(bucket)
	}
	return total
}

// VisibleStages filters the stage list down to the columns that should be
// rendered: a terminal stage with zero records is hidden to reduce clutter.
// The hidden stage keeps its bucket in the grouping, so quick actions and
// drops targeting it remain valid.
func (g *Grouping) VisibleStages(stages []models.Stage) []models.Stage {
	visible := make([]models.Stage, 0, len(stages))
	for _, s := range stages {
		if s.IsTerminal && g.Count(s.ID) == 0 {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}
