package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/FenadoAI/newsbytes"
)

// Ensure LoggingGenerator implements newsbytes.Generator.
var _ newsbytes.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with per-call logging.
type LoggingGenerator struct {
	next   newsbytes.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next newsbytes.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (content string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_len", len(prompt),
			"content_len", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
