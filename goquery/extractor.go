// Package goquery provides a heuristic implementation of
// newsbytes.Extractor built on CSS selectors. News sites vary widely in
// markup, so extraction tries increasingly generic candidates in order
// and accepts the first good-enough match rather than scoring content
// density.
package goquery

import (
	"net/url"
	"strings"

	"github.com/FenadoAI/newsbytes"
	"github.com/PuerkitoBio/goquery"
)

// MinBodyLength is the minimum character count for extracted body text.
// Containers that matched structurally but hold only a caption or teaser
// fall below it and are rejected.
const MinBodyLength = 100

// TitleCandidate locates a title element. When Attr is set the value is
// read from that attribute instead of the element's text.
type TitleCandidate struct {
	Selector string
	Attr     string
}

// DefaultTitleCandidates returns the ordered title heuristics:
// Open Graph metadata first, then common article heading markup, then
// the document title as a last resort.
func DefaultTitleCandidates() []TitleCandidate {
	return []TitleCandidate{
		{Selector: "meta[property='og:title']", Attr: "content"},
		{Selector: "h1"},
		{Selector: "h1.article-title"},
		{Selector: "h1.entry-title"},
		{Selector: "title"},
	}
}

// DefaultBodyCandidates returns the ordered body container selectors,
// from semantic article markup down to a generic main-content landmark.
func DefaultBodyCandidates() []string {
	return []string{
		"article",
		".article-content",
		".post-content",
		".entry-content",
		"main",
	}
}

// Ensure Extractor implements newsbytes.Extractor at compile time.
var _ newsbytes.Extractor = (*Extractor)(nil)

// Extractor extracts article data from HTML using ordered heuristics.
// Candidate lists are data, not control flow: new site patterns slot in
// through options without touching the extraction logic.
type Extractor struct {
	titleCandidates []TitleCandidate
	bodyCandidates  []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitleCandidates replaces the ordered title heuristics.
func WithTitleCandidates(candidates []TitleCandidate) Option {
	return func(e *Extractor) {
		e.titleCandidates = candidates
	}
}

// WithBodyCandidates replaces the ordered body container selectors.
func WithBodyCandidates(selectors []string) Option {
	return func(e *Extractor) {
		e.bodyCandidates = selectors
	}
}

// NewExtractor creates an Extractor with the default candidate lists.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		titleCandidates: DefaultTitleCandidates(),
		bodyCandidates:  DefaultBodyCandidates(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract derives title, body, and image from raw HTML. The first
// non-empty title candidate and the first body container above
// MinBodyLength win; there is no merging or scoring across candidates.
func (e *Extractor) Extract(html string, baseURL string) (*newsbytes.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsbytes.Errorf(newsbytes.EINVALID, "failed to parse HTML: %v", err)
	}

	title := e.extractTitle(doc)
	if title == "" {
		return nil, newsbytes.Errorf(newsbytes.ENOTFOUND, "no title found")
	}

	body := e.extractBody(doc)
	if body == "" {
		return nil, newsbytes.Errorf(newsbytes.ENOTFOUND, "no article body found")
	}

	return &newsbytes.ExtractResult{
		Title:    title,
		Body:     body,
		ImageURL: e.extractImage(doc, baseURL),
	}, nil
}

// extractTitle returns the first candidate yielding non-empty text.
func (e *Extractor) extractTitle(doc *goquery.Document) string {
	for _, candidate := range e.titleCandidates {
		sel := doc.Find(candidate.Selector).First()
		if sel.Length() == 0 {
			continue
		}

		var text string
		if candidate.Attr != "" {
			text, _ = sel.Attr(candidate.Attr)
		} else {
			text = sel.Text()
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// extractBody joins paragraph texts from the first container exceeding
// MinBodyLength, falling back to every paragraph in the document.
func (e *Extractor) extractBody(doc *goquery.Document) string {
	for _, selector := range e.bodyCandidates {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		if body := joinParagraphs(container.Find("p")); len(body) > MinBodyLength {
			return body
		}
	}

	// Fallback: all paragraphs in the document.
	if body := joinParagraphs(doc.Find("p")); len(body) > MinBodyLength {
		return body
	}

	return ""
}

// joinParagraphs joins trimmed paragraph texts with single spaces,
// skipping empty paragraphs.
func joinParagraphs(paragraphs *goquery.Selection) string {
	var parts []string
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// extractImage returns the first matching image URL: Open Graph, then
// Twitter card, then the first image inside an article element resolved
// against the page URL. Empty when nothing matches.
func (e *Extractor) extractImage(doc *goquery.Document, baseURL string) string {
	if content, ok := doc.Find("meta[property='og:image']").First().Attr("content"); ok && content != "" {
		return content
	}

	if content, ok := doc.Find("meta[name='twitter:image']").First().Attr("content"); ok && content != "" {
		return content
	}

	if src, ok := doc.Find("article img").First().Attr("src"); ok && src != "" {
		return absoluteURL(src, baseURL)
	}

	return ""
}

// absoluteURL combines the base URL's scheme and host with a relative
// path. URLs already starting with "http" pass through unchanged, and
// no normalization of ".." segments or query strings is attempted.
func absoluteURL(raw string, baseURL string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return raw
	}
	return base.Scheme + "://" + base.Host + raw
}
