package analysis

import "fmt"

const defaultSmallGapYears = 2.0

// ExperienceEvaluator compares required against actual years of experience
// and produces a qualitative gap narrative in three tiers: met, small gap,
// large gap.
type ExperienceEvaluator struct {
	smallGapYears float64
}

// NewExperienceEvaluator builds an evaluator. A non-positive smallGapYears
// falls back to the default 2-year threshold.
func NewExperienceEvaluator(smallGapYears float64) *ExperienceEvaluator {
	if smallGapYears <= 0 {
		smallGapYears = defaultSmallGapYears
	}
	return &ExperienceEvaluator{smallGapYears: smallGapYears}
}

// Evaluate builds the experience analysis for the given requirement.
func (e *ExperienceEvaluator) Evaluate(requiredYears, currentYears float64) ExperienceAnalysis {
	result := ExperienceAnalysis{
		RequiredYears: requiredYears,
		CurrentYears:  currentYears,
		IsMatch:       currentYears >= requiredYears,
	}

	gap := requiredYears - currentYears
	switch {
	case result.IsMatch:
		result.Analysis = "Meets the required experience criteria."
	case gap <= e.smallGapYears:
		result.Analysis = fmt.Sprintf(
			"Slightly under the required experience by %.1f years, but demonstrates rapid skill acquisition and diverse project experience that could compensate for the gap.",
			gap,
		)
	default:
		result.Analysis = fmt.Sprintf("Experience gap of %.1f years from the requirement.", gap)
	}

	return result
}
