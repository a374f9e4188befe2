package analysis

import (
	"context"
	"testing"

	"github.com/fitscope/fitscope/internal/profile"
)

// testStore builds a small fixed profile used across the package tests:
// 5 years of total experience, remote-only, 5-day weeks.
func testStore(t *testing.T) *profile.Store {
	t.Helper()

	store, err := profile.New(profile.Profile{
		TotalExperience: 5,
		WorkPreferences: profile.WorkPreferences{
			Location: profile.Location{Remote: true},
			Schedule: profile.Schedule{DaysPerWeek: 5, FlexibleHours: true},
		},
		Skillsets: []profile.SkillCategory{
			{
				Name: "backend",
				Skills: []profile.Skill{
					{
						Name:     "Go",
						Level:    profile.LevelExpert,
						Years:    4,
						Related:  []string{"gRPC", "Concurrency"},
						Projects: []string{"Gateway", "Pipeline"},
					},
					{
						Name:     "TypeScript",
						Level:    profile.LevelIntermediate,
						Years:    2,
						Related:  []string{"JavaScript", "Node.js"},
						Projects: []string{"Portal"},
					},
				},
			},
			{
				Name: "database",
				Skills: []profile.Skill{
					{
						Name:     "PostgreSQL",
						Level:    profile.LevelAdvanced,
						Years:    3,
						Related:  []string{"Query Optimization"},
						Projects: []string{"Audit Store"},
					},
					{
						Name:     "MySQL",
						Level:    profile.LevelBasic,
						Years:    1,
						Related:  []string{"Schema Design"},
						Projects: []string{"Sandbox"},
					},
				},
			},
		},
		DomainExpertise: []profile.DomainExpertise{
			{Name: "healthcare interoperability", Areas: []string{"FHIR", "HL7"}},
		},
	})
	if err != nil {
		t.Fatalf("building test profile: %v", err)
	}

	return store
}

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}
