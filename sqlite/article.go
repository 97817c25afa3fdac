package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/FenadoAI/newsbytes"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsbytes.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsbytes.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashBody computes xxHash of the body and returns a hex string. Stored
// so consumers can cheaply detect re-scrapes of unchanged pages.
func hashBody(body string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(body))
	return hex.EncodeToString(b)
}

// CreateArticle persists a new article, assigning its ID.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsbytes.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, body, body_hash, summary, category, source_url, source_name, image_url, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Body, hashBody(article.Body), article.Summary,
		article.Category, article.SourceURL, article.SourceName, article.ImageURL,
		article.PublishedAt.Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsbytes.Article, error) {
	var article newsbytes.Article
	var publishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, summary, category, source_url, source_name, image_url, published_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.Title, &article.Body, &article.Summary, &article.Category,
		&article.SourceURL, &article.SourceName, &article.ImageURL, &publishedAt)

	if err == sql.ErrNoRows {
		return nil, newsbytes.Errorf(newsbytes.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.PublishedAt, err = time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse published_at: %w", err)
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, most recently
// published first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsbytes.ArticleFilter) ([]*newsbytes.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, body, summary, category, source_url, source_name, image_url, published_at FROM articles WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY published_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsbytes.Article
	for rows.Next() {
		var article newsbytes.Article
		var publishedAt string

		if err := rows.Scan(&article.ID, &article.Title, &article.Body, &article.Summary,
			&article.Category, &article.SourceURL, &article.SourceName, &article.ImageURL,
			&publishedAt); err != nil {
			return nil, err
		}

		article.PublishedAt, err = time.Parse(time.RFC3339, publishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse published_at: %w", err)
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return newsbytes.Errorf(newsbytes.ENOTFOUND, "article not found")
	}

	return nil
}
