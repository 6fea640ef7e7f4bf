package repository

import (
	"context"

	"luatvn-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewsRepository handles database operations for crawled news
// articles.
type NewsRepository struct {
	db *pgxpool.Pool
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

// Upsert inserts a news article or refreshes it when the URL was
// already crawled.
func (r *NewsRepository) Upsert(ctx context.Context, article *models.NewsArticle) error {
	query := `
		INSERT INTO news_articles (title, url, summary, source, published_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			published_at = EXCLUDED.published_at
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		article.Title,
		article.URL,
		article.Summary,
		article.Source,
		article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt)
}

// List retrieves news articles, newest first.
func (r *NewsRepository) List(ctx context.Context, limit, offset int) ([]*models.NewsArticle, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, title, url, summary, source, published_at, created_at
		FROM news_articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.NewsArticle
	for rows.Next() {
		article := &models.NewsArticle{}
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.URL,
			&article.Summary,
			&article.Source,
			&article.PublishedAt,
			&article.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
