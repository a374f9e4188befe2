package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func testScorer(t *testing.T) *FitScorer {
	t.Helper()
	return NewFitScorer(testStore(t), 0, 0)
}

func TestSkillScore(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	tests := []struct {
		name    string
		matches []SkillMatch
		expect  int
	}{
		{
			name: "two of three covered rounds to 67",
			matches: []SkillMatch{
				{Match: TierExact},
				{Match: TierSimilar},
				{Match: TierMissing},
			},
			expect: 67,
		},
		{
			name:    "all covered",
			matches: []SkillMatch{{Match: TierExact}, {Match: TierExact}},
			expect:  100,
		},
		{
			name:    "empty extraction scores zero",
			matches: nil,
			expect:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scorer.SkillScore(tt.matches); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestOverallScore(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	tests := []struct {
		name        string
		matches     []SkillMatch
		experience  ExperienceAnalysis
		preferences []WorkPreferenceMatch
		expect      int
	}{
		{
			name:        "half skills, experience met, preferences met",
			matches:     []SkillMatch{{Match: TierExact}, {Match: TierMissing}},
			experience:  ExperienceAnalysis{IsMatch: true},
			preferences: []WorkPreferenceMatch{{Matches: true}},
			expect:      75, // 25 + 30 + 20
		},
		{
			name:        "empty preference list is vacuously matching",
			matches:     []SkillMatch{{Match: TierExact}},
			experience:  ExperienceAnalysis{IsMatch: true},
			preferences: nil,
			expect:      100, // 50 + 30 + 20
		},
		{
			name:        "empty skill list contributes nothing",
			matches:     nil,
			experience:  ExperienceAnalysis{IsMatch: false},
			preferences: nil,
			expect:      35, // 0 + 15 + 20
		},
		{
			name:        "everything misses except half the preferences",
			matches:     []SkillMatch{{Match: TierMissing}},
			experience:  ExperienceAnalysis{IsMatch: false},
			preferences: []WorkPreferenceMatch{{Matches: true}, {Matches: false}},
			expect:      25, // 0 + 15 + 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scorer.OverallScore(tt.matches, tt.experience, tt.preferences)
			if got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
			if got < 0 || got > 100 {
				t.Fatalf("score %d outside [0,100]", got)
			}
		})
	}
}

func TestSummaryTiers(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	tests := []struct {
		score    int
		contains string
	}{
		{score: 92, contains: "Strong match"},
		{score: 80, contains: "Strong match"},
		{score: 79, contains: "Good potential"},
		{score: 60, contains: "Good potential"},
		{score: 59, contains: "May need additional"},
	}

	for _, tt := range tests {
		if got := scorer.Summary(tt.score); !strings.Contains(got, tt.contains) {
			t.Fatalf("Summary(%d): expected %q in %q", tt.score, tt.contains, got)
		}
	}
}

func TestSummaryCustomThresholds(t *testing.T) {
	t.Parallel()

	scorer := NewFitScorer(testStore(t), 90, 70)

	if got := scorer.Summary(85); !strings.Contains(got, "Good potential") {
		t.Fatalf("expected 85 below a 90 threshold to be a potential match, got %q", got)
	}
}

func TestSkillsSummary(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	matches := []SkillMatch{
		{Match: TierExact},
		{Match: TierExact},
		{Match: TierSimilar},
		{Match: TierMissing},
	}

	want := "Matches 2 required skills exactly, has similar experience in 1 skills, and lacks 1 required skills."
	if got := scorer.SkillsSummary(matches); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestKeyStrengths(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	matches := []SkillMatch{{Match: TierExact}, {Match: TierExact}, {Match: TierMissing}}
	strengths := scorer.KeyStrengths(matches, ExperienceAnalysis{IsMatch: true})

	want := []string{
		"Meets or exceeds required years of experience",
		"Strong match in 2 key required skills",
		"Healthcare interoperability domain expertise covering FHIR, HL7",
	}
	if !reflect.DeepEqual(strengths, want) {
		t.Fatalf("expected %v, got %v", want, strengths)
	}
}

func TestKeyStrengthsWithoutExactMatches(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	strengths := scorer.KeyStrengths([]SkillMatch{{Match: TierMissing}}, ExperienceAnalysis{IsMatch: false})
	for _, strength := range strengths {
		if strings.Contains(strength, "key required skills") {
			t.Fatalf("unexpected skill strength without exact matches: %v", strengths)
		}
		if strings.Contains(strength, "years of experience") {
			t.Fatalf("unexpected experience strength when unmet: %v", strengths)
		}
	}
}

func TestConcerns(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	experience := ExperienceAnalysis{IsMatch: false, Analysis: "Experience gap of 3.0 years from the requirement."}
	matches := []SkillMatch{
		{Skill: "Rust", Match: TierMissing},
		{Skill: "Kafka", Match: TierMissing},
		{Skill: "Go", Match: TierExact},
	}
	preferences := []WorkPreferenceMatch{
		{Matches: true, Comment: "Open to Remote work arrangement"},
		{Matches: false, Comment: "Current preferences don't align with Onsite requirement"},
		{Matches: false, Comment: "Current preferences don't align with 6 days requirement"},
	}

	concerns := scorer.Concerns(matches, experience, preferences)

	want := []string{
		"Experience gap of 3.0 years from the requirement.",
		"Missing experience in: Rust, Kafka",
		"Current preferences don't align with Onsite requirement",
	}
	if !reflect.DeepEqual(concerns, want) {
		t.Fatalf("expected %v, got %v", want, concerns)
	}
}

func TestConcernsEmptyWhenEverythingMatches(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	concerns := scorer.Concerns(
		[]SkillMatch{{Match: TierExact}},
		ExperienceAnalysis{IsMatch: true},
		[]WorkPreferenceMatch{{Matches: true}},
	)
	if len(concerns) != 0 {
		t.Fatalf("expected no concerns, got %v", concerns)
	}
}

func TestScoringIdempotence(t *testing.T) {
	t.Parallel()

	scorer := testScorer(t)

	matches := []SkillMatch{{Skill: "Go", Match: TierExact}, {Skill: "Rust", Match: TierMissing}}
	experience := ExperienceAnalysis{RequiredYears: 5, CurrentYears: 4, Analysis: "gap"}
	preferences := []WorkPreferenceMatch{{Matches: false, Comment: "no"}}

	first := scorer.OverallScore(matches, experience, preferences)
	second := scorer.OverallScore(matches, experience, preferences)
	if first != second {
		t.Fatalf("overall score not idempotent: %d vs %d", first, second)
	}

	if !reflect.DeepEqual(
		scorer.Concerns(matches, experience, preferences),
		scorer.Concerns(matches, experience, preferences),
	) {
		t.Fatal("concerns not idempotent")
	}

	if !reflect.DeepEqual(
		scorer.KeyStrengths(matches, experience),
		scorer.KeyStrengths(matches, experience),
	) {
		t.Fatal("key strengths not idempotent")
	}
}
