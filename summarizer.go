package newsbytes

import (
	"context"
	"time"
)

// Summarizer produces a bounded summary and a category label for an
// article. Implementations never fail outward for summarization causes:
// a failed or malformed AI response degrades to the deterministic local
// fallback, so a usable SummaryResult always comes back for a valid
// article.
type Summarizer interface {
	// SummarizeAndCategorize summarizes the article and picks a
	// category from the closed set. The only error returned is
	// EINVALID for an article that fails Validate; AI failures are
	// absorbed by the fallback path.
	SummarizeAndCategorize(ctx context.Context, article *Article) (*SummaryResult, error)
}

// DefaultAITimeout bounds a single AI summarization call before the
// summarizer abandons it in favor of the fallback path.
const DefaultAITimeout = 15 * time.Second

// SummarizerConfig holds the immutable knobs for a Summarizer.
type SummarizerConfig struct {
	// AIEnabled gates the external generation call. When false the
	// summarizer computes both fields locally and never touches the
	// network.
	AIEnabled bool

	// AITimeout bounds the generation call. Zero means
	// DefaultAITimeout.
	AITimeout time.Duration
}

// WithDefaults returns the config with zero fields filled in.
func (c SummarizerConfig) WithDefaults() SummarizerConfig {
	if c.AITimeout <= 0 {
		c.AITimeout = DefaultAITimeout
	}
	return c
}
