package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/fitscope/fitscope/internal/ai"
	"github.com/fitscope/fitscope/internal/profile"
	"github.com/fitscope/fitscope/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const (
	defaultTimeout      = 60 * time.Second
	defaultMaxLogLength = 200
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Options tunes the analyzer's policy knobs. Zero values select defaults.
type Options struct {
	// SmallGapYears is the experience shortfall still framed as compensable.
	SmallGapYears float64
	// StrongFitScore and PossibleFitScore are the narrative tier thresholds.
	StrongFitScore   float64
	PossibleFitScore float64
	// Timeout bounds a single analysis including the outbound generation call.
	Timeout time.Duration
	// MaxLogLength limits prompt/response previews in debug logs.
	MaxLogLength int
}

// Analyzer orchestrates a full job-description analysis: extraction through
// the generation service, then deterministic matching and scoring against the
// profile. It holds no mutable state; concurrent Analyze calls are safe.
type Analyzer struct {
	generator   contentGenerator
	store       *profile.Store
	skills      *SkillMatcher
	experience  *ExperienceEvaluator
	preferences *PreferenceEvaluator
	scorer      *FitScorer
	logger      *zap.Logger
	timeout     time.Duration
	maxLogLen   int
}

func New(generator contentGenerator, store *profile.Store, logger *zap.Logger, opts Options) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxLogLength <= 0 {
		opts.MaxLogLength = defaultMaxLogLength
	}

	return &Analyzer{
		generator:   generator,
		store:       store,
		skills:      NewSkillMatcher(store),
		experience:  NewExperienceEvaluator(opts.SmallGapYears),
		preferences: NewPreferenceEvaluator(store),
		scorer:      NewFitScorer(store, opts.StrongFitScore, opts.PossibleFitScore),
		logger:      logger,
		timeout:     opts.Timeout,
		maxLogLen:   opts.MaxLogLength,
	}
}

// Analyze extracts structured requirements from the job description via the
// generation service and evaluates them against the profile. Failures are
// discriminable with errors.Is against ai.ErrUnavailable,
// ai.ErrMalformedResponse, and ai.ErrInvalidExtraction.
func (a *Analyzer) Analyze(ctx context.Context, jdText, customFocus string) (*Result, error) {
	jdText = strings.TrimSpace(jdText)
	if jdText == "" {
		return nil, errors.New("job description text is required")
	}

	prompt := buildPrompt(jdText, customFocus)

	a.logger.Debug("extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrUnavailable, err)
	}

	a.logger.Debug("extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	extraction, err := parseExtraction(raw)
	if err != nil {
		return nil, err
	}

	return a.evaluate(extraction), nil
}

// evaluate is the deterministic half of the analysis: a pure function of the
// profile and the extraction.
func (a *Analyzer) evaluate(extraction *Extraction) *Result {
	experience := a.experience.Evaluate(extraction.RequiredYears, a.store.TotalExperience())

	preferences := make([]WorkPreferenceMatch, 0, len(extraction.WorkPreferences))
	for _, pref := range extraction.WorkPreferences {
		preferences = append(preferences, a.preferences.Evaluate(pref))
	}

	matches := make([]SkillMatch, 0, len(extraction.Skills))
	for _, skill := range extraction.Skills {
		matches = append(matches, a.skills.Match(skill))
	}

	score := a.scorer.OverallScore(matches, experience, preferences)

	fit := OverallFit{
		Score:        score,
		Summary:      a.scorer.Summary(score),
		KeyStrengths: a.scorer.KeyStrengths(matches, experience),
	}
	if concerns := a.scorer.Concerns(matches, experience, preferences); len(concerns) > 0 {
		fit.PotentialConcerns = concerns
	}

	return &Result{
		SkillsAnalysis: SkillsAnalysis{
			Matches:      matches,
			OverallScore: a.scorer.SkillScore(matches),
			Summary:      a.scorer.SkillsSummary(matches),
		},
		ExperienceAnalysis: experience,
		WorkPreferences:    preferences,
		OverallFit:         fit,
	}
}

func buildPrompt(jdText, customFocus string) string {
	if customFocus = strings.TrimSpace(customFocus); customFocus == "" {
		customFocus = "none"
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CUSTOM_FOCUS}}", customFocus)
	return strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", jdText)
}
