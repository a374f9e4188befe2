package profile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

//go:embed profile.yaml
var defaultProfileYAML []byte

// Store exposes a read-only snapshot of the professional profile. The
// flattened skill list preserves declaration order: categories in file order,
// skills in in-category order.
type Store struct {
	profile Profile
	flat    []Skill
}

// LoadDefault builds a store from the profile embedded in the binary.
func LoadDefault() (*Store, error) {
	return loadBytes(defaultProfileYAML)
}

// LoadFile builds a store from a profile YAML document on disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file %q: %w", path, err)
	}
	return loadBytes(data)
}

func loadBytes(data []byte) (*Store, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing profile yaml: %w", err)
	}

	var p Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, fmt.Errorf("building profile decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	return New(p)
}

// New validates the profile and returns an immutable store. A validation
// failure here is a configuration error and fatal to startup.
func New(p Profile) (*Store, error) {
	if err := validate(p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	flat := make([]Skill, 0)
	for _, category := range p.Skillsets {
		flat = append(flat, category.Skills...)
	}

	return &Store{profile: p, flat: flat}, nil
}

func validate(p Profile) error {
	if p.TotalExperience < 0 {
		return fmt.Errorf("total-experience must be non-negative, got %v", p.TotalExperience)
	}

	days := p.WorkPreferences.Schedule.DaysPerWeek
	if days < 1 || days > 7 {
		return fmt.Errorf("schedule days-per-week must be within 1..7, got %d", days)
	}

	if len(p.Skillsets) == 0 {
		return fmt.Errorf("at least one skill category is required")
	}

	for _, category := range p.Skillsets {
		if strings.TrimSpace(category.Name) == "" {
			return fmt.Errorf("skill category with empty name")
		}
		if len(category.Skills) == 0 {
			return fmt.Errorf("skill category %q has no skills", category.Name)
		}
		for _, skill := range category.Skills {
			if strings.TrimSpace(skill.Name) == "" {
				return fmt.Errorf("category %q contains a skill with empty name", category.Name)
			}
			if !skill.Level.Valid() {
				return fmt.Errorf("skill %q has unknown level %q", skill.Name, skill.Level)
			}
			if skill.Years < 0 {
				return fmt.Errorf("skill %q has negative years of experience", skill.Name)
			}
		}
	}

	for _, domain := range p.DomainExpertise {
		if strings.TrimSpace(domain.Name) == "" {
			return fmt.Errorf("domain expertise entry with empty name")
		}
	}

	return nil
}

// Profile returns the underlying aggregate.
func (s *Store) Profile() Profile { return s.profile }

// TotalExperience returns the candidate's total years of experience.
func (s *Store) TotalExperience() float64 { return s.profile.TotalExperience }

// Preferences returns the candidate's work preferences.
func (s *Store) Preferences() WorkPreferences { return s.profile.WorkPreferences }

// DomainExpertise returns the declared domain-expertise entries.
func (s *Store) DomainExpertise() []DomainExpertise { return s.profile.DomainExpertise }

// AllSkills returns every skill in stable declaration order.
func (s *Store) AllSkills() []Skill { return s.flat }

// SkillsByCategory returns the skills declared under the named category.
func (s *Store) SkillsByCategory(name string) []Skill {
	for _, category := range s.profile.Skillsets {
		if strings.EqualFold(category.Name, name) {
			return category.Skills
		}
	}
	return nil
}
