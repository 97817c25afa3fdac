// Package summarize implements newsbytes.Summarizer on top of an
// external text-generation capability, with a deterministic local
// fallback so summarization never fails outward.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FenadoAI/newsbytes"
)

// promptBodyLimit bounds how much article body goes into the prompt,
// keeping prompt size flat regardless of article length.
const promptBodyLimit = 2000

// Response field markers the generator is instructed to emit.
const (
	summaryMarker  = "SUMMARY:"
	categoryMarker = "CATEGORY:"
)

// Ensure Summarizer implements newsbytes.Summarizer at compile time.
var _ newsbytes.Summarizer = (*Summarizer)(nil)

// Summarizer produces summaries and category labels for articles.
// With AI enabled it prompts the injected Generator and parses the
// marker-formatted response; any failure there, and the disabled mode,
// use the fallback path computed locally from the article text.
type Summarizer struct {
	generator newsbytes.Generator
	config    newsbytes.SummarizerConfig
	logger    *slog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithConfig sets the summarizer configuration.
func WithConfig(config newsbytes.SummarizerConfig) Option {
	return func(s *Summarizer) {
		s.config = config
	}
}

// WithLogger sets the logger for fallback diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

// NewSummarizer creates a Summarizer around the given generator.
// A nil generator is allowed when AI is disabled.
func NewSummarizer(generator newsbytes.Generator, opts ...Option) *Summarizer {
	s := &Summarizer{
		generator: generator,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.config = s.config.WithDefaults()
	return s
}

// SummarizeAndCategorize summarizes the article and picks a category
// from the closed set. It returns an error only for an invalid article;
// generation failures, malformed responses, and timeouts all degrade to
// the fallback result.
func (s *Summarizer) SummarizeAndCategorize(ctx context.Context, article *newsbytes.Article) (*newsbytes.SummaryResult, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if !s.config.AIEnabled || s.generator == nil {
		return s.fallback(article), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.AITimeout)
	defer cancel()

	response, err := s.generator.Generate(ctx, BuildPrompt(article))
	if err != nil {
		s.logger.Warn("AI summarization failed, using fallback",
			"url", article.SourceURL, "err", err)
		return s.fallback(article), nil
	}

	summary := extractField(response, summaryMarker)
	category := extractField(response, categoryMarker)

	if summary == "" {
		s.logger.Warn("AI response missing summary marker, using fallback summary",
			"url", article.SourceURL)
		summary = newsbytes.FallbackSummary(article.Body)
	}

	return &newsbytes.SummaryResult{
		Summary:  summary,
		Category: newsbytes.NormalizeCategory(category),
	}, nil
}

// fallback computes both fields locally, with no network access.
func (s *Summarizer) fallback(article *newsbytes.Article) *newsbytes.SummaryResult {
	return &newsbytes.SummaryResult{
		Summary:  newsbytes.FallbackSummary(article.Body),
		Category: newsbytes.GuessCategory(article.Title, article.Body),
	}
}

// BuildPrompt builds the summarization prompt for an article. The body
// is truncated to its first promptBodyLimit runes. The exact-word-count
// instruction is advisory: the response is accepted as returned once
// non-empty.
func BuildPrompt(article *newsbytes.Article) string {
	body := article.Body
	if runes := []rune(body); len(runes) > promptBodyLimit {
		body = string(runes[:promptBodyLimit])
	}

	var sb strings.Builder
	sb.WriteString("You are a news summarizer. Read the following news article and:\n")
	fmt.Fprintf(&sb, "1. Summarize it in EXACTLY %d words (no more, no less)\n", newsbytes.SummaryWordLimit)
	fmt.Fprintf(&sb, "2. Categorize it as one of: %s\n\n", strings.Join(newsbytes.Categories, ", "))
	fmt.Fprintf(&sb, "Article Title: %s\n", article.Title)
	fmt.Fprintf(&sb, "Article Content: %s\n\n", body)
	sb.WriteString("Respond in this exact format:\n")
	fmt.Fprintf(&sb, "%s [your %d-word summary here]\n", summaryMarker, newsbytes.SummaryWordLimit)
	fmt.Fprintf(&sb, "%s [%s]", categoryMarker, strings.Join(newsbytes.Categories, "/"))
	return sb.String()
}

// extractField scans the response for the first line containing the
// marker and returns the line with the marker removed, trimmed.
// Returns empty when no line carries the marker.
func extractField(response, marker string) string {
	for _, line := range strings.Split(response, "\n") {
		if strings.Contains(line, marker) {
			return strings.TrimSpace(strings.Replace(line, marker, "", 1))
		}
	}
	return ""
}
