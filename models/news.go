package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsArticle is a crawled legal-news item. URL is unique; re-crawls
// upsert on it.
type NewsArticle struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Summary     string     `json:"summary"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
