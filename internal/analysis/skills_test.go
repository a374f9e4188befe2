package analysis

import (
	"strings"
	"testing"
)

func TestSkillMatcherExactName(t *testing.T) {
	t.Parallel()

	matcher := NewSkillMatcher(testStore(t))

	match := matcher.Match("go")
	if match.Match != TierExact {
		t.Fatalf("expected exact match, got %s", match.Match)
	}
	if match.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", match.Confidence)
	}
	if match.RelevantExperience != "4 years with Gateway, Pipeline" {
		t.Fatalf("unexpected relevant experience: %q", match.RelevantExperience)
	}
	if match.AlternativeSkills != nil {
		t.Fatalf("exact matches must not carry alternatives, got %v", match.AlternativeSkills)
	}
}

func TestSkillMatcherSubstring(t *testing.T) {
	t.Parallel()

	matcher := NewSkillMatcher(testStore(t))

	tests := []struct {
		name     string
		required string
	}{
		{name: "required contained in skill", required: "Postgres"},
		{name: "skill contained in required", required: "TypeScript 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match := matcher.Match(tt.required)
			if match.Match != TierExact {
				t.Fatalf("expected exact match, got %s", match.Match)
			}
			if match.Confidence != 0.9 {
				t.Fatalf("expected confidence 0.9, got %v", match.Confidence)
			}
			if match.Skill != tt.required {
				t.Fatalf("expected input skill echoed, got %q", match.Skill)
			}
		})
	}
}

func TestSkillMatcherRelated(t *testing.T) {
	t.Parallel()

	matcher := NewSkillMatcher(testStore(t))

	match := matcher.Match("gRPC")
	if match.Match != TierSimilar {
		t.Fatalf("expected similar match, got %s", match.Match)
	}
	if match.Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %v", match.Confidence)
	}

	want := []string{"Go", "gRPC", "Concurrency"}
	if len(match.AlternativeSkills) != len(want) {
		t.Fatalf("expected alternatives %v, got %v", want, match.AlternativeSkills)
	}
	for i, alt := range want {
		if match.AlternativeSkills[i] != alt {
			t.Fatalf("alternative %d: expected %q, got %q", i, alt, match.AlternativeSkills[i])
		}
	}

	if !strings.Contains(match.RelevantExperience, "Go") {
		t.Fatalf("expected experience note naming the owning skill, got %q", match.RelevantExperience)
	}
}

func TestSkillMatcherMissing(t *testing.T) {
	t.Parallel()

	matcher := NewSkillMatcher(testStore(t))

	for _, required := range []string{"COBOL", "", "   "} {
		match := matcher.Match(required)
		if match.Match != TierMissing {
			t.Fatalf("Match(%q): expected missing, got %s", required, match.Match)
		}
		if match.Confidence != 0 {
			t.Fatalf("Match(%q): expected confidence 0, got %v", required, match.Confidence)
		}
		if match.AlternativeSkills != nil || match.RelevantExperience != "" {
			t.Fatalf("Match(%q): missing matches must not carry auxiliary fields", required)
		}
	}
}

func TestSkillMatcherFirstDeclaredWins(t *testing.T) {
	t.Parallel()

	matcher := NewSkillMatcher(testStore(t))

	// Both PostgreSQL and MySQL contain "sql"; PostgreSQL is declared first.
	match := matcher.Match("SQL")
	if match.Match != TierExact {
		t.Fatalf("expected exact match, got %s", match.Match)
	}
	if !strings.Contains(match.RelevantExperience, "Audit Store") {
		t.Fatalf("expected the first declared skill to win, got %q", match.RelevantExperience)
	}
}
