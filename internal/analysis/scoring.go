package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitscope/fitscope/internal/profile"
)

// Component weights of the overall fit score.
const (
	weightSkills      = 0.5
	weightExperience  = 0.3
	weightPreferences = 0.2
)

// Default narrative tier thresholds. These are policy constants, not
// structural: callers may override them through the constructor.
const (
	defaultStrongFitScore   = 80.0
	defaultPossibleFitScore = 60.0
)

// FitScorer combines skill, experience, and preference evaluations into a
// single 0-100 fit score plus narrative summary, strengths, and concerns.
// All methods are pure functions of their inputs and the loaded profile.
type FitScorer struct {
	domains       []profile.DomainExpertise
	strongScore   float64
	possibleScore float64
}

// NewFitScorer builds a scorer over the given profile. Non-positive
// thresholds fall back to the defaults (80 strong, 60 possible).
func NewFitScorer(store *profile.Store, strongScore, possibleScore float64) *FitScorer {
	if strongScore <= 0 {
		strongScore = defaultStrongFitScore
	}
	if possibleScore <= 0 {
		possibleScore = defaultPossibleFitScore
	}
	return &FitScorer{
		domains:       store.DomainExpertise(),
		strongScore:   strongScore,
		possibleScore: possibleScore,
	}
}

// SkillScore returns the percentage of required skills that are not missing,
// rounded to the nearest integer. An empty match list scores 0: an extraction
// without skills signals a degenerate job description, not a perfect match.
func (s *FitScorer) SkillScore(matches []SkillMatch) int {
	return int(math.Round(skillRate(matches) * 100))
}

func skillRate(matches []SkillMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	covered := 0
	for _, match := range matches {
		if match.Match != TierMissing {
			covered++
		}
	}
	return float64(covered) / float64(len(matches))
}

// An empty preference list is vacuously matching: nothing was asked, so
// nothing conflicts.
func preferenceRate(preferences []WorkPreferenceMatch) float64 {
	if len(preferences) == 0 {
		return 1
	}
	matching := 0
	for _, pref := range preferences {
		if pref.Matches {
			matching++
		}
	}
	return float64(matching) / float64(len(preferences))
}

// OverallScore computes the weighted fit score in [0,100]:
// 50% skill coverage, 30% experience (100 if met, 50 otherwise),
// 20% preference match rate.
func (s *FitScorer) OverallScore(matches []SkillMatch, experience ExperienceAnalysis, preferences []WorkPreferenceMatch) int {
	experienceScore := 50.0
	if experience.IsMatch {
		experienceScore = 100.0
	}

	weighted := skillRate(matches)*100*weightSkills +
		experienceScore*weightExperience +
		preferenceRate(preferences)*100*weightPreferences

	return int(math.Round(weighted))
}

// Summary maps an overall score onto one of three narrative tiers.
func (s *FitScorer) Summary(score int) string {
	switch {
	case float64(score) >= s.strongScore:
		return "Strong match for the position with relevant skills and experience."
	case float64(score) >= s.possibleScore:
		return "Good potential match with some areas for growth."
	default:
		return "May need additional experience or skills for this role."
	}
}

// SkillsSummary describes the match distribution in one sentence.
func (s *FitScorer) SkillsSummary(matches []SkillMatch) string {
	exact, similar, missing := 0, 0, 0
	for _, match := range matches {
		switch match.Match {
		case TierExact:
			exact++
		case TierSimilar:
			similar++
		case TierMissing:
			missing++
		}
	}

	return fmt.Sprintf(
		"Matches %d required skills exactly, has similar experience in %d skills, and lacks %d required skills.",
		exact, similar, missing,
	)
}

// KeyStrengths lists the deterministic strengths: met experience, the number
// of exact skill matches, and one entry per declared domain expertise.
func (s *FitScorer) KeyStrengths(matches []SkillMatch, experience ExperienceAnalysis) []string {
	strengths := make([]string, 0, 2+len(s.domains))

	if experience.IsMatch {
		strengths = append(strengths, "Meets or exceeds required years of experience")
	}

	exact := 0
	for _, match := range matches {
		if match.Match == TierExact {
			exact++
		}
	}
	if exact > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong match in %d key required skills", exact))
	}

	for _, domain := range s.domains {
		strength := fmt.Sprintf("%s domain expertise", capitalize(domain.Name))
		if len(domain.Areas) > 0 {
			strength = fmt.Sprintf("%s covering %s", strength, strings.Join(domain.Areas, ", "))
		}
		strengths = append(strengths, strength)
	}

	return strengths
}

// Concerns lists the deterministic concerns: the experience narrative when
// unmet, missing skills, and the first unmatched preference's comment only.
func (s *FitScorer) Concerns(matches []SkillMatch, experience ExperienceAnalysis, preferences []WorkPreferenceMatch) []string {
	concerns := make([]string, 0, 3)

	if !experience.IsMatch {
		concerns = append(concerns, experience.Analysis)
	}

	missing := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Match == TierMissing {
			missing = append(missing, match.Skill)
		}
	}
	if len(missing) > 0 {
		concerns = append(concerns, fmt.Sprintf("Missing experience in: %s", strings.Join(missing, ", ")))
	}

	for _, pref := range preferences {
		if !pref.Matches {
			concerns = append(concerns, pref.Comment)
			break
		}
	}

	return concerns
}
