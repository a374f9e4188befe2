package analysis

// MatchTier describes how closely a required skill aligns with the profile.
type MatchTier string

const (
	TierExact   MatchTier = "exact"
	TierSimilar MatchTier = "similar"
	TierMissing MatchTier = "missing"
)

// Preference types produced by the extraction step.
type PreferenceType string

const (
	PreferenceWorkMode PreferenceType = "workMode"
	PreferenceWorkDays PreferenceType = "workDays"
	PreferenceOther    PreferenceType = "other"
)

// ExtractedPreference is a single raw preference statement from the
// extraction, tagged with a coarse type.
type ExtractedPreference struct {
	Type        PreferenceType `json:"type"`
	Requirement string         `json:"requirement"`
	Details     string         `json:"details,omitempty"`
}

// Extraction is the structured requirement set the generation service pulls
// out of a job description. It is untrusted until validated.
type Extraction struct {
	Skills          []string              `json:"skills"`
	RequiredYears   float64               `json:"requiredYears"`
	WorkPreferences []ExtractedPreference `json:"workPreferences"`
}

// SkillMatch is the result of matching one required skill against the profile.
type SkillMatch struct {
	Skill              string    `json:"skill"`
	Match              MatchTier `json:"match"`
	Confidence         float64   `json:"confidence"`
	AlternativeSkills  []string  `json:"alternativeSkills,omitempty"`
	RelevantExperience string    `json:"relevantExperience,omitempty"`
}

// ExperienceAnalysis compares required against actual years of experience.
type ExperienceAnalysis struct {
	RequiredYears float64 `json:"requiredYears"`
	CurrentYears  float64 `json:"currentYears"`
	IsMatch       bool    `json:"isMatch"`
	Analysis      string  `json:"analysis"`
}

// WorkPreferenceMatch is the evaluation of one extracted preference.
type WorkPreferenceMatch struct {
	Preference  PreferenceType `json:"preference"`
	Requirement string         `json:"requirement"`
	Matches     bool           `json:"matches"`
	Comment     string         `json:"comment"`
}

// SkillsAnalysis aggregates all skill matches.
type SkillsAnalysis struct {
	Matches      []SkillMatch `json:"matches"`
	OverallScore int          `json:"overallScore"`
	Summary      string       `json:"summary"`
}

// OverallFit is the final weighted verdict.
type OverallFit struct {
	Score             int      `json:"score"`
	Summary           string   `json:"summary"`
	KeyStrengths      []string `json:"keyStrengths"`
	PotentialConcerns []string `json:"potentialConcerns,omitempty"`
}

// Result is the complete analysis payload returned to the caller.
type Result struct {
	SkillsAnalysis     SkillsAnalysis        `json:"skillsAnalysis"`
	ExperienceAnalysis ExperienceAnalysis    `json:"experienceAnalysis"`
	WorkPreferences    []WorkPreferenceMatch `json:"workPreferences"`
	OverallFit         OverallFit            `json:"overallFit"`
}
