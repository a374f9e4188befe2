package history

import (
	"strings"
	"testing"

	"github.com/fitscope/fitscope/internal/analysis"
)

func testResult(score int) *analysis.Result {
	return &analysis.Result{
		SkillsAnalysis: analysis.SkillsAnalysis{
			Matches: []analysis.SkillMatch{
				{Skill: "Go", Match: analysis.TierExact, Confidence: 1.0},
			},
			OverallScore: score,
			Summary:      "Matches 1 required skills exactly, has similar experience in 0 skills, and lacks 0 required skills.",
		},
		ExperienceAnalysis: analysis.ExperienceAnalysis{
			RequiredYears: 3,
			CurrentYears:  5,
			IsMatch:       true,
			Analysis:      "Meets the required 3 years with 5 years of experience",
		},
		OverallFit: analysis.OverallFit{
			Score:        score,
			Summary:      "Strong technical fit for this position.",
			KeyStrengths: []string{"Strong match in 1 key required skills"},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndListRecent(t *testing.T) {
	store := openTestStore(t)

	first, err := store.Save("Looking for a Go engineer.", testResult(85))
	if err != nil {
		t.Fatalf("saving first entry: %v", err)
	}
	second, err := store.Save("Senior backend role, Go and SQL.", testResult(62))
	if err != nil {
		t.Fatalf("saving second entry: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct entry ids")
	}

	entries, err := store.ListRecent(10)
	if err != nil {
		t.Fatalf("listing entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	for _, e := range entries {
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Fatalf("entry not fully populated: %+v", e)
		}
		if e.Result == nil || e.Result.OverallFit.Score != e.Score {
			t.Fatalf("stored result out of sync with score column: %+v", e)
		}
	}
}

func TestListRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.Save("jd", testResult(50)); err != nil {
			t.Fatalf("saving entry %d: %v", i, err)
		}
	}

	entries, err := store.ListRecent(3)
	if err != nil {
		t.Fatalf("listing entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	entries, err = store.ListRecent(0)
	if err != nil {
		t.Fatalf("listing with default limit: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected default limit to return all 5 entries, got %d", len(entries))
	}
}

func TestListRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.ListRecent(10)
	if err != nil {
		t.Fatalf("listing empty store: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestSaveNilResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Save("jd", nil); err == nil {
		t.Fatal("expected an error for nil result")
	}
}

func TestPreviewTruncation(t *testing.T) {
	store := openTestStore(t)

	long := strings.Repeat("job description text ", 40)
	if _, err := store.Save(long, testResult(70)); err != nil {
		t.Fatalf("saving entry: %v", err)
	}

	entries, err := store.ListRecent(1)
	if err != nil {
		t.Fatalf("listing entries: %v", err)
	}
	got := entries[0].JDPreview
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated preview, got %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Fatalf("expected single-line preview, got %q", got)
	}
}
