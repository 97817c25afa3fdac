package mock

import (
	"context"

	"github.com/FenadoAI/newsbytes"
)

var _ newsbytes.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsbytes.Summarizer.
type Summarizer struct {
	SummarizeAndCategorizeFn func(ctx context.Context, article *newsbytes.Article) (*newsbytes.SummaryResult, error)
}

func (s *Summarizer) SummarizeAndCategorize(ctx context.Context, article *newsbytes.Article) (*newsbytes.SummaryResult, error) {
	return s.SummarizeAndCategorizeFn(ctx, article)
}
