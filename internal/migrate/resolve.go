// Package migrate maps legacy free-form status strings to canonical stage
// IDs. Records created before the current stage model existed carry statuses
// like "shortlisted" or "reviewing"; Resolve folds them into the stage set so
// every record stays groupable without a data backfill.
package migrate

import (
	"strings"

	"github.com/hireloop/funnel/internal/models"
)

// legacyStatuses is the fixed legacy-to-canonical lookup table.
// Entries are only ever added, never changed: a status string that once
// resolved to a stage must keep resolving to the same stage.
var legacyStatuses = map[string]string{
	"submitted":    models.StageNew,
	"applied":      models.StageNew,
	"reviewing":    models.StageScreening,
	"under_review": models.StageScreening,
	"shortlisted":  models.StagePhoneScreen,
	"interviewing": models.StageInterview,
	"offered":      models.StageOffer,
	"accepted":     models.StageHired,
	"declined":     models.StageRejected,
	"withdrawn":    models.StageRejected,
}

// Resolve maps a raw status string to a stage ID present in known.
//
// Resolution order: identity (raw already is a known stage ID), then the
// legacy table, then fallback. The function is pure and total - it never
// fails, which is what guarantees every record can be grouped.
func Resolve(raw string, known map[string]bool, fallback string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))

	if known[raw] {
		return raw
	}
	if canonical, ok := legacyStatuses[raw]; ok && known[canonical] {
		return canonical
	}
	return fallback
}

// LegacyStatuses returns a copy of the legacy lookup table, for display in
// help screens and for tests.
func LegacyStatuses() map[string]string {
	out := make(map[string]string, len(legacyStatuses))
	for k, v := range legacyStatuses {
		out[k] = v
	}
	return out
}
