package newsbytes

// ExtractResult holds the article content extracted from an HTML page.
type ExtractResult struct {
	// Title is the article headline, from metadata or heading markup.
	Title string

	// Body is the article text: paragraph contents joined with single
	// spaces. Always longer than the extractor's minimum-length
	// threshold when extraction succeeds.
	Body string

	// ImageURL is a representative image as an absolute URL.
	// Empty when the page exposes no usable image.
	ImageURL string
}

// Extractor derives structured article data from raw HTML using ordered
// heuristic rules.
type Extractor interface {
	// Extract processes raw HTML and returns title, body, and image.
	// baseURL (the page's own URL) is used to resolve relative image
	// paths to absolute form.
	//
	// Returns ENOTFOUND when no heuristic yields a title, or when no
	// container yields body text above the minimum-length threshold.
	// Extraction failure is terminal for a page: the same HTML will
	// fail again, so callers must not retry.
	Extract(html string, baseURL string) (*ExtractResult, error)
}
