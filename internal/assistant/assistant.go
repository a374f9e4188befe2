// Package assistant answers visitor questions about the candidate's
// professional background, grounded in the loaded profile.
package assistant

import (
	"context"
	"encoding/json"
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
	defaultTimeout      = 30 * time.Second
	defaultMaxLogLength = 200
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Reply is the assistant's structured answer.
type Reply struct {
	Answer            string   `json:"answer"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

// Assistant is a thin question-answering client over the generation service.
type Assistant struct {
	generator   contentGenerator
	profileJSON string
	logger      *zap.Logger
	timeout     time.Duration
	maxLogLen   int
}

func New(generator contentGenerator, store *profile.Store, logger *zap.Logger) (*Assistant, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	profileJSON, err := json.MarshalIndent(store.Profile(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile context: %w", err)
	}

	return &Assistant{
		generator:   generator,
		profileJSON: string(profileJSON),
		logger:      logger,
		timeout:     defaultTimeout,
		maxLogLen:   defaultMaxLogLength,
	}, nil
}

// Ask answers a single question about the profile. The section hint tells the
// model which part of the portfolio the visitor is looking at.
func (a *Assistant) Ask(ctx context.Context, question, section string) (*Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("question is required")
	}

	prompt := a.buildPrompt(question, section)

	a.logger.Debug("assistant request",
		zap.String("section", section),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrUnavailable, err)
	}

	a.logger.Debug("assistant response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseReply(raw)
}

func (a *Assistant) buildPrompt(question, section string) string {
	if section = strings.TrimSpace(section); section == "" {
		section = "general"
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{PROFILE_JSON}}", a.profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{SECTION}}", section)
	return strings.ReplaceAll(prompt, "{{QUESTION}}", question)
}

func parseReply(raw string) (*Reply, error) {
	cleaned := ai.ExtractJSON(raw)

	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ai.ErrMalformedResponse)
	}

	var payload struct {
		Answer            *string   `json:"answer"`
		FollowUpQuestions *[]string `json:"followUpQuestions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrInvalidExtraction, err)
	}

	switch {
	case payload.Answer == nil || strings.TrimSpace(*payload.Answer) == "":
		return nil, fmt.Errorf("%w: missing answer", ai.ErrInvalidExtraction)
	case payload.FollowUpQuestions == nil:
		return nil, fmt.Errorf("%w: missing followUpQuestions list", ai.ErrInvalidExtraction)
	}

	return &Reply{
		Answer:            strings.TrimSpace(*payload.Answer),
		FollowUpQuestions: *payload.FollowUpQuestions,
	}, nil
}
