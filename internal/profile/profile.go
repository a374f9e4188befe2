package profile

// Level is a coarse proficiency grade for a skill.
type Level string

const (
	LevelExpert       Level = "Expert"
	LevelAdvanced     Level = "Advanced"
	LevelIntermediate Level = "Intermediate"
	LevelBasic        Level = "Basic"
)

func (l Level) Valid() bool {
	switch l {
	case LevelExpert, LevelAdvanced, LevelIntermediate, LevelBasic:
		return true
	}
	return false
}

// Skill is a single technology or competency the candidate holds.
type Skill struct {
	Name     string   `mapstructure:"name" json:"name"`
	Level    Level    `mapstructure:"level" json:"level"`
	Years    float64  `mapstructure:"years" json:"years"`
	Related  []string `mapstructure:"related" json:"related,omitempty"`
	Projects []string `mapstructure:"projects" json:"projects,omitempty"`
}

// SkillCategory groups skills under a named category. Declaration order is
// significant: skill matching resolves ties by the first declared skill.
type SkillCategory struct {
	Name   string  `mapstructure:"category" json:"category"`
	Skills []Skill `mapstructure:"skills" json:"skills"`
}

// Relocation holds relocation willingness sub-flags.
type Relocation struct {
	Domestic      bool `mapstructure:"domestic" json:"domestic"`
	International bool `mapstructure:"international" json:"international"`
	VisaRequired  bool `mapstructure:"visa-required" json:"visaRequired"`
}

// Location holds work-mode flags.
type Location struct {
	Remote     bool       `mapstructure:"remote" json:"remote"`
	Hybrid     bool       `mapstructure:"hybrid" json:"hybrid"`
	Onsite     bool       `mapstructure:"onsite" json:"onsite"`
	Relocation Relocation `mapstructure:"relocation" json:"relocation"`
}

// Allows reports whether the given normalized work-mode token is acceptable.
func (l Location) Allows(mode string) bool {
	switch mode {
	case "remote":
		return l.Remote
	case "hybrid":
		return l.Hybrid
	case "onsite":
		return l.Onsite
	}
	return false
}

// Schedule holds the work-schedule preferences.
type Schedule struct {
	DaysPerWeek   int  `mapstructure:"days-per-week" json:"daysPerWeek"`
	FlexibleHours bool `mapstructure:"flexible-hours" json:"flexibleHours"`
}

// WorkPreferences aggregates location and schedule preferences.
type WorkPreferences struct {
	Location Location `mapstructure:"location" json:"location"`
	Schedule Schedule `mapstructure:"schedule" json:"schedule"`
}

// DomainExpertise records deep experience in a business domain.
type DomainExpertise struct {
	Name       string   `mapstructure:"name" json:"name"`
	Areas      []string `mapstructure:"areas" json:"areas"`
	Experience string   `mapstructure:"experience" json:"experience"`
	Projects   []string `mapstructure:"projects" json:"projects,omitempty"`
}

// Profile is the root aggregate of the candidate's professional data.
// It is loaded once at startup and never mutated afterwards.
type Profile struct {
	CurrentRole     string            `mapstructure:"current-role" json:"currentRole"`
	TotalExperience float64           `mapstructure:"total-experience" json:"totalExperience"`
	WorkPreferences WorkPreferences   `mapstructure:"work-preferences" json:"workPreferences"`
	Skillsets       []SkillCategory   `mapstructure:"skillsets" json:"skillsets"`
	DomainExpertise []DomainExpertise `mapstructure:"domain-expertise" json:"domainExpertise,omitempty"`
}
