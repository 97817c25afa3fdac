// Package scrape provides the article scraping pipeline: it coordinates
// fetching, extraction, summarization, and storage of news articles,
// one URL at a time or under a bounded worker pool.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/FenadoAI/newsbytes"
	"github.com/FenadoAI/newsbytes/bloom"
	"golang.org/x/sync/errgroup"
)

// Dedup filter sizing for a pipeline that reuses one filter across runs.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// Pipeline orchestrates scraping for batches of URLs. Units of work are
// independent: one URL's failure, including a panic while processing it,
// is recorded against that URL and never aborts the rest of the batch.
type Pipeline struct {
	Assembler  *Assembler
	Summarizer newsbytes.Summarizer

	// Articles, when set, persists every scraped article; a storage
	// failure counts as that URL's failure.
	Articles newsbytes.ArticleService

	// RateLimiter, when set, spaces out fetches per target host.
	RateLimiter newsbytes.DomainLimiter

	// Seen skips URLs already dispatched, across runs when the caller
	// shares one filter. A fresh filter is created per run when nil.
	Seen *bloom.Filter

	// Concurrency bounds the worker pool. Values below 1 mean
	// sequential processing.
	Concurrency int

	Logger *slog.Logger
}

// Result holds the aggregated outcome of one pipeline run. Aggregation
// is keyed by URL and ordered by input position regardless of
// completion order.
type Result struct {
	Articles     []*newsbytes.Article `json:"articles"`
	FailedURLs   []string             `json:"failedUrls"`
	ErrorDetails map[string]string    `json:"errorDetails"`
	ScrapedCount int                  `json:"scrapedCount"`
	FailedCount  int                  `json:"failedCount"`
	Message      string               `json:"message"`
}

// urlOutcome is the per-URL result collected from workers.
type urlOutcome struct {
	position int
	url      string
	article  *newsbytes.Article
	err      error
}

// Run processes each URL independently and aggregates successes and
// per-URL failure reasons. It returns an error only for pipeline-level
// problems (a canceled context); an empty URL list is a no-op success.
func (p *Pipeline) Run(ctx context.Context, urls []string) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seen := p.Seen
	if seen == nil {
		seen = bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	}

	concurrency := p.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Dedupe up front so workers only ever see distinct URLs.
	type job struct {
		position int
		url      string
	}
	var jobs []job
	for i, u := range urls {
		if seen.SeenBefore(u) {
			logger.Info("skipping already-dispatched URL", "url", u)
			continue
		}
		jobs = append(jobs, job{position: i, url: u})
	}

	outcomeCh := make(chan urlOutcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				outcomeCh <- p.processURL(gctx, j.position, j.url)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	outcomes := make(map[int]urlOutcome, len(jobs))
	for outcome := range outcomeCh {
		outcomes[outcome.position] = outcome
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{ErrorDetails: make(map[string]string)}
	for _, j := range jobs {
		outcome := outcomes[j.position]
		if outcome.err != nil {
			result.FailedURLs = append(result.FailedURLs, outcome.url)
			result.ErrorDetails[outcome.url] = failureReason(outcome.err)
			continue
		}
		result.Articles = append(result.Articles, outcome.article)
	}

	result.ScrapedCount = len(result.Articles)
	result.FailedCount = len(result.FailedURLs)
	result.Message = fmt.Sprintf("Successfully scraped %d article(s).", result.ScrapedCount)
	if result.FailedCount > 0 {
		result.Message += fmt.Sprintf(" %d URL(s) failed.", result.FailedCount)
	}

	logger.Info("pipeline run finished",
		"scraped", result.ScrapedCount, "failed", result.FailedCount)

	return result, nil
}

// processURL runs the full per-URL pipeline: rate limit, assemble,
// summarize, store. A panic anywhere in it becomes that URL's failure.
func (p *Pipeline) processURL(ctx context.Context, position int, rawURL string) (outcome urlOutcome) {
	outcome = urlOutcome{position: position, url: rawURL}

	defer func() {
		if r := recover(); r != nil {
			outcome.article = nil
			outcome.err = newsbytes.Errorf(newsbytes.EINTERNAL, "unexpected failure processing %s: %v", rawURL, r)
		}
	}()

	if p.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			outcome.err = newsbytes.Errorf(newsbytes.EINVALID, "invalid URL %q: %v", rawURL, err)
			return outcome
		}
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			outcome.err = err
			return outcome
		}
	}

	article, err := p.Assembler.Assemble(ctx, rawURL)
	if err != nil {
		outcome.err = err
		return outcome
	}

	summary, err := p.Summarizer.SummarizeAndCategorize(ctx, article)
	if err != nil {
		outcome.err = err
		return outcome
	}
	article.Summary = summary.Summary
	article.Category = summary.Category

	if p.Articles != nil {
		if err := p.Articles.CreateArticle(ctx, article); err != nil {
			outcome.err = err
			return outcome
		}
	}

	outcome.article = article
	return outcome
}

// failureReason renders a per-URL error as a human-readable reason,
// preferring the application error message over the raw error chain.
func failureReason(err error) string {
	if newsbytes.ErrorCode(err) == newsbytes.EBLOCKED {
		return "Could not fetch article. Website may be blocking automated access: " + newsbytes.ErrorMessage(err)
	}
	if msg := newsbytes.ErrorMessage(err); msg != "Internal error" {
		return msg
	}
	return err.Error()
}
