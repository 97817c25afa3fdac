// Package bloom provides URL deduplication for scrape batches using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs the pipeline has already dispatched so duplicate
// inputs are processed once. False positives are possible at the
// configured rate; a false positive only means a URL is skipped, never
// processed twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// SeenBefore records the URL and reports whether it was already present.
// Not safe for concurrent use; the pipeline calls it from the dispatch
// loop only.
func (f *Filter) SeenBefore(url string) bool {
	return f.f.TestAndAddString(url)
}

// Test reports whether the URL might already be recorded.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
