package migrate

import (
	"testing"

	"github.com/hireloop/funnel/internal/models"
	"pgregory.net/rapid"
)

func builtinKnown() map[string]bool {
	known := make(map[string]bool)
	for _, s := range models.BuiltinStages() {
		known[s.ID] = true
	}
	return known
}

func TestResolve_KnownStagePassesThrough(t *testing.T) {
	known := builtinKnown()
	for id := range known {
		if got := Resolve(id, known, models.StageNew); got != id {
			t.Errorf("Resolve(%q) = %q, want identity", id, got)
		}
	}
}

func TestResolve_LegacyStatuses(t *testing.T) {
	known := builtinKnown()

	tests := []struct {
		raw  string
		want string
	}{
		{"submitted", models.StageNew},
		{"applied", models.StageNew},
		{"reviewing", models.StageScreening},
		{"under_review", models.StageScreening},
		{"shortlisted", models.StagePhoneScreen},
		{"interviewing", models.StageInterview},
		{"offered", models.StageOffer},
		{"accepted", models.StageHired},
		{"declined", models.StageRejected},
		{"withdrawn", models.StageRejected},
	}
	for _, tt := range tests {
		if got := Resolve(tt.raw, known, models.StageNew); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolve_NormalizesCaseAndWhitespace(t *testing.T) {
	known := builtinKnown()

	tests := []struct {
		raw  string
		want string
	}{
		{"  Shortlisted  ", models.StagePhoneScreen},
		{"INTERVIEW", models.StageInterview},
		{"Offered", models.StageOffer},
	}
	for _, tt := range tests {
		if got := Resolve(tt.raw, known, models.StageNew); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	known := builtinKnown()

	for _, raw := range []string{"", "garbage", "deleted-stage-uuid", "  "} {
		if got := Resolve(raw, known, models.StageNew); got != models.StageNew {
			t.Errorf("Resolve(%q) = %q, want fallback %q", raw, got, models.StageNew)
		}
	}
}

// A legacy status whose canonical stage is somehow absent from the registry
// must still resolve to the fallback, never to a dangling ID.
func TestResolve_LegacyTargetMissingFallsBack(t *testing.T) {
	known := map[string]bool{models.StageNew: true}

	if got := Resolve("shortlisted", known, models.StageNew); got != models.StageNew {
		t.Errorf("Resolve(shortlisted) = %q, want fallback when phone_screen unknown", got)
	}
}

// Resolve is total: for any input string the result is a known stage ID or
// the fallback. This is the property that guarantees every record groups.
func TestResolve_AlwaysReturnsGroupableStage(t *testing.T) {
	known := builtinKnown()

	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		got := Resolve(raw, known, models.StageNew)
		if !known[got] {
			t.Fatalf("Resolve(%q) = %q, not in the known stage set", raw, got)
		}
	})
}
