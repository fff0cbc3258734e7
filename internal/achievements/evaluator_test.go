package achievements

import (
	"testing"
	"time"

	"github.com/obinna/studymate/internal/store"
)

func TestCatalogSize(t *testing.T) {
	if got := len(Catalog()); got != 7 {
		t.Errorf("catalog size = %d, want 7", got)
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(IDPerfectScore)
	if !ok {
		t.Fatal("perfect-score not found in catalog")
	}
	if def.Title != "Perfect Score" {
		t.Errorf("title = %q, want %q", def.Title, "Perfect Score")
	}

	if _, ok := Lookup("time-traveler"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestEvaluateUnlocks(t *testing.T) {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	rec, ok := Evaluate(nil, IDStudyStreak7, now)
	if !ok {
		t.Fatal("expected unlock for fresh id")
	}
	if rec.ID != IDStudyStreak7 || !rec.UnlockedAt.Equal(now) {
		t.Errorf("record = %+v", rec)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	now := time.Now()
	unlocked := []store.Achievement{{ID: IDPerfectScore, UnlockedAt: now}}

	if rec, ok := Evaluate(unlocked, IDPerfectScore, now); ok || rec != nil {
		t.Errorf("already-unlocked id should be a no-op, got %+v", rec)
	}
}

func TestEvaluateUnknownID(t *testing.T) {
	if rec, ok := Evaluate(nil, "night-owl", time.Now()); ok || rec != nil {
		t.Errorf("unknown id should be a no-op, got %+v", rec)
	}
}
