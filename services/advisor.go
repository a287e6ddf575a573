package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpupo63/ideaboard-backend/config"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/metrics"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

const (
	suggestionsMaxTokens = 500
	summaryMaxTokens     = 500
	categorizeMaxTokens  = 200
)

const emptyBoardSummary = "This board has no ideas yet."

// Advisor produces brainstorming help from a text-generation model. An Advisor
// built without a model reports every operation as unavailable.
type Advisor struct {
	llm     llms.Model
	timeout time.Duration
	logger  zerolog.Logger
}

// NewAdvisor builds an Advisor backed by Anthropic when a credential is configured
func NewAdvisor(settings config.Settings) (*Advisor, error) {
	if !settings.AIEnabled() {
		log.Warn().Msg("ANTHROPIC_API_KEY not configured, AI features disabled")
		return NewAdvisorWithModel(nil, settings.AITimeout), nil
	}

	llm, err := anthropic.New(
		anthropic.WithToken(settings.AnthropicAPIKey),
		anthropic.WithModel(settings.AIModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create anthropic client: %w", err)
	}
	return NewAdvisorWithModel(llm, settings.AITimeout), nil
}

// NewAdvisorWithModel builds an Advisor around any llms.Model. A nil model disables it.
func NewAdvisorWithModel(llm llms.Model, timeout time.Duration) *Advisor {
	return &Advisor{
		llm:     llm,
		timeout: timeout,
		logger:  log.With().Str("service", "advisor").Logger(),
	}
}

// Available reports whether a model is configured
func (a *Advisor) Available() bool {
	return a != nil && a.llm != nil
}

// Suggest proposes up to three new idea titles for a board
func (a *Advisor) Suggest(ctx context.Context, boardName string, ideas []models.Idea) ([]string, error) {
	if !a.Available() {
		return nil, errs.NewAIUnavailableError()
	}

	prompt, err := suggestionsPrompt.Format(map[string]any{
		"board_name": boardName,
		"ideas":      ideaLines(ideas, false),
	})
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to build suggestions prompt", err)
	}

	reply, err := a.generate(ctx, "suggestions", prompt, suggestionsMaxTokens)
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(reply), nil
}

// Summarize describes a board's focus, themes and top priority. A board without
// ideas gets a fixed answer and the model is not called.
func (a *Advisor) Summarize(ctx context.Context, boardName string, ideas []models.Idea) (Summary, error) {
	if !a.Available() {
		return Summary{}, errs.NewAIUnavailableError()
	}
	if len(ideas) == 0 {
		return Summary{Summary: emptyBoardSummary, Themes: []string{}}, nil
	}

	prompt, err := summaryPrompt.Format(map[string]any{
		"board_name": boardName,
		"ideas":      ideaLines(ideas, true),
	})
	if err != nil {
		return Summary{}, errs.NewInternalErrorWithCause("failed to build summary prompt", err)
	}

	reply, err := a.generate(ctx, "summarize", prompt, summaryMaxTokens)
	if err != nil {
		return Summary{}, err
	}
	return ParseSummary(reply), nil
}

// Categorize suggests up to three lower-case tag names for an idea, preferring existingTags
func (a *Advisor) Categorize(ctx context.Context, title string, description *string, existingTags []string) ([]string, error) {
	if !a.Available() {
		return nil, errs.NewAIUnavailableError()
	}

	tags := "None yet"
	if len(existingTags) > 0 {
		tags = strings.Join(existingTags, ", ")
	}

	prompt, err := categorizePrompt.Format(map[string]any{
		"title":         title,
		"description":   describe(description),
		"existing_tags": tags,
	})
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to build categorize prompt", err)
	}

	reply, err := a.generate(ctx, "categorize", prompt, categorizeMaxTokens)
	if err != nil {
		return nil, err
	}
	return ParseCategories(reply), nil
}

func (a *Advisor) generate(ctx context.Context, operation, prompt string, maxTokens int) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt, llms.WithMaxTokens(maxTokens))
	metrics.AICallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AICallsTotal.WithLabelValues(operation, "error").Inc()
		a.logger.Error().Err(err).Str("operation", operation).Msg("Text generation failed")
		return "", errs.NewAIUpstreamError(err)
	}

	metrics.AICallsTotal.WithLabelValues(operation, "success").Inc()
	a.logger.Debug().Str("operation", operation).Dur("took", time.Since(start)).Msg("Text generation completed")
	return reply, nil
}
