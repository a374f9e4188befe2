package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fitscope/fitscope/internal/profile"
)

var (
	workModeSeparators = regexp.MustCompile(`[/,\s]+`)
	firstInteger       = regexp.MustCompile(`\d+`)
)

const defaultRequiredDays = 5

// PreferenceEvaluator normalizes free-text work-mode and schedule requirements
// and checks them against the profile's preferences.
type PreferenceEvaluator struct {
	prefs profile.WorkPreferences
}

func NewPreferenceEvaluator(store *profile.Store) *PreferenceEvaluator {
	return &PreferenceEvaluator{prefs: store.Preferences()}
}

// Evaluate checks a single extracted preference. Preferences of unknown type
// are treated as informational and always match. An empty or unparseable
// work-mode requirement yields no tokens and therefore no match.
func (e *PreferenceEvaluator) Evaluate(pref ExtractedPreference) WorkPreferenceMatch {
	requirement := strings.TrimSpace(pref.Requirement)
	matches := false

	switch pref.Type {
	case PreferenceWorkMode:
		modes := parseWorkModes(requirement)
		for _, mode := range modes {
			if e.prefs.Location.Allows(mode) {
				matches = true
				break
			}
		}
		if len(modes) > 0 {
			requirement = displayWorkModes(modes)
		}
	case PreferenceWorkDays:
		days := defaultRequiredDays
		if digits := firstInteger.FindString(requirement); digits != "" {
			if parsed, err := strconv.Atoi(digits); err == nil {
				days = parsed
			}
		}
		matches = days <= e.prefs.Schedule.DaysPerWeek
	default:
		matches = true
	}

	comment := fmt.Sprintf("Open to %s work arrangement", requirement)
	if !matches {
		comment = fmt.Sprintf("Current preferences don't align with %s requirement", requirement)
	}

	return WorkPreferenceMatch{
		Preference:  pref.Type,
		Requirement: requirement,
		Matches:     matches,
		Comment:     comment,
	}
}

// parseWorkModes lowercases the requirement, splits it on slashes, commas and
// whitespace, and maps colloquial tokens to the standard work-mode terms.
func parseWorkModes(requirement string) []string {
	tokens := workModeSeparators.Split(strings.ToLower(requirement), -1)
	modes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		switch {
		case token == "wfh" || strings.Contains(token, "home"):
			token = "remote"
		case token == "onsite" || strings.Contains(token, "office"):
			token = "onsite"
		}
		modes = append(modes, token)
	}
	return modes
}

func displayWorkModes(modes []string) string {
	display := make([]string, 0, len(modes))
	for _, mode := range modes {
		display = append(display, capitalize(mode))
	}
	return strings.Join(display, "/")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
