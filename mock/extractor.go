package mock

import "github.com/FenadoAI/newsbytes"

var _ newsbytes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsbytes.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*newsbytes.ExtractResult, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*newsbytes.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}
