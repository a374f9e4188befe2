package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/fitscope/fitscope/internal/ai"
)

// parseExtraction strips markdown fencing from the raw generation response,
// parses it as JSON, and validates the required fields. Malformed responses
// fail fast; nothing is guessed from partial data.
func parseExtraction(raw string) (*Extraction, error) {
	cleaned := ai.ExtractJSON(raw)

	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ai.ErrMalformedResponse)
	}

	var payload struct {
		Skills          *[]string              `json:"skills"`
		RequiredYears   *float64               `json:"requiredYears"`
		WorkPreferences *[]ExtractedPreference `json:"workPreferences"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrInvalidExtraction, err)
	}

	switch {
	case payload.Skills == nil:
		return nil, fmt.Errorf("%w: missing skills list", ai.ErrInvalidExtraction)
	case payload.RequiredYears == nil:
		return nil, fmt.Errorf("%w: missing requiredYears", ai.ErrInvalidExtraction)
	case *payload.RequiredYears < 0:
		return nil, fmt.Errorf("%w: requiredYears must be non-negative", ai.ErrInvalidExtraction)
	case payload.WorkPreferences == nil:
		return nil, fmt.Errorf("%w: missing workPreferences list", ai.ErrInvalidExtraction)
	}

	return &Extraction{
		Skills:          *payload.Skills,
		RequiredYears:   *payload.RequiredYears,
		WorkPreferences: *payload.WorkPreferences,
	}, nil
}
