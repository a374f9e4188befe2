package analysis

import (
	"fmt"
	"strings"

	"github.com/fitscope/fitscope/internal/profile"
)

const (
	confidenceExactName = 1.0
	confidenceSubstring = 0.9
	confidenceRelated   = 0.7
)

// SkillMatcher maps free-text required skills to confidence-scored matches
// against the profile. Matching is case-insensitive and deterministic: the
// first profile skill satisfying a pass wins, in declaration order.
type SkillMatcher struct {
	store *profile.Store
}

func NewSkillMatcher(store *profile.Store) *SkillMatcher {
	return &SkillMatcher{store: store}
}

// Match classifies a required skill as exact, similar, or missing.
func (m *SkillMatcher) Match(requiredSkill string) SkillMatch {
	required := strings.ToLower(strings.TrimSpace(requiredSkill))
	if required == "" {
		return SkillMatch{Skill: requiredSkill, Match: TierMissing, Confidence: 0}
	}

	// Pass 1: exact or substring match on skill names.
	for _, skill := range m.store.AllSkills() {
		name := strings.ToLower(skill.Name)
		if name != required && !strings.Contains(name, required) && !strings.Contains(required, name) {
			continue
		}

		confidence := confidenceSubstring
		if name == required {
			confidence = confidenceExactName
		}

		return SkillMatch{
			Skill:              requiredSkill,
			Match:              TierExact,
			Confidence:         confidence,
			RelevantExperience: fmt.Sprintf("%v years with %s", skill.Years, strings.Join(skill.Projects, ", ")),
		}
	}

	// Pass 2: search related-skill lists.
	for _, skill := range m.store.AllSkills() {
		for _, related := range skill.Related {
			rel := strings.ToLower(related)
			if rel != required && !strings.Contains(rel, required) && !strings.Contains(required, rel) {
				continue
			}

			alternatives := make([]string, 0, len(skill.Related)+1)
			alternatives = append(alternatives, skill.Name)
			alternatives = append(alternatives, skill.Related...)

			return SkillMatch{
				Skill:              requiredSkill,
				Match:              TierSimilar,
				Confidence:         confidenceRelated,
				AlternativeSkills:  alternatives,
				RelevantExperience: fmt.Sprintf("Experience with similar technologies: %s", skill.Name),
			}
		}
	}

	return SkillMatch{Skill: requiredSkill, Match: TierMissing, Confidence: 0}
}
