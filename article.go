package newsbytes

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// Categories is the closed set of labels a summarized article may carry.
var Categories = []string{CategoryTechnology, CategoryBusiness, CategorySports}

// Category labels. CategoryBusiness doubles as the default: any value
// outside the closed set is coerced to it.
const (
	CategoryTechnology = "Technology"
	CategoryBusiness   = "Business"
	CategorySports     = "Sports"

	DefaultCategory = CategoryBusiness
)

// Article represents a scraped news article. Title and Body are required;
// an Article missing either must never reach summarization.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	SourceURL   string    `json:"sourceUrl"`
	SourceName  string    `json:"sourceName"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`

	// Summary fields, populated once the article has passed through
	// summarization. Empty on a freshly assembled article.
	Summary  string `json:"summary,omitempty"`
	Category string `json:"category,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Body == "" {
		return Errorf(EINVALID, "article body required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	return nil
}

// SummaryResult holds the outcome of summarizing an article: a summary
// targeting a fixed word count and a category from the closed set.
type SummaryResult struct {
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// NormalizeCategory coerces a category value into the closed set.
// Values outside the set (including empty) become DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	for _, c := range Categories {
		if category == c {
			return c
		}
	}
	return DefaultCategory
}

// SourceName derives a display name from an article URL: strip a leading
// "www." label, take the first remaining domain label, and capitalize it.
// Returns empty string for unparsable URLs or URLs without a host.
func SourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")
	return capitalize(label)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ArticleService represents a service for persisting and querying
// scraped articles. Implementations own the stored-record shape (IDs,
// created timestamps); the pipeline only hands over assembled articles.
type ArticleService interface {
	// CreateArticle persists a new article and assigns its ID.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, most
	// recently published first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Category  *string `json:"category"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
