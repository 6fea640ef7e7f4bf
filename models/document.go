package models

import (
	"time"

	"github.com/google/uuid"

	"luatvn-backend/parser"
)

// LegalDocument represents a persisted legal document. CanonicalID and
// Slug are public, citable identifiers; the database enforces their
// cross-document uniqueness.
type LegalDocument struct {
	ID             uuid.UUID             `json:"id"`
	CanonicalID    string                `json:"canonical_id"`
	Title          string                `json:"title"`
	DocumentNumber string                `json:"document_number"`
	DocumentType   parser.DocumentType   `json:"document_type"`
	IssuingBody    string                `json:"issuing_body"`
	IssuedDate     time.Time             `json:"issued_date"`
	EffectiveDate  time.Time             `json:"effective_date"`
	Slug           string                `json:"slug"`
	Year           int                   `json:"year"`
	Status         parser.DocumentStatus `json:"status"`
	Articles       []*Article            `json:"articles,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Article represents one Điều of a document.
type Article struct {
	ID            uuid.UUID `json:"id"`
	DocumentID    uuid.UUID `json:"document_id"`
	CanonicalID   string    `json:"canonical_id"`
	ArticleNumber int       `json:"article_number"`
	Title         *string   `json:"title"`
	Content       string    `json:"content"`
	Chapter       *string   `json:"chapter,omitempty"`
	Section       *string   `json:"section,omitempty"`
	Clauses       []*Clause `json:"clauses,omitempty"`
}

// Clause represents one Khoản of an article.
type Clause struct {
	ID           uuid.UUID `json:"id"`
	ArticleID    uuid.UUID `json:"article_id"`
	CanonicalID  string    `json:"canonical_id"`
	ClauseNumber int       `json:"clause_number"`
	Content      string    `json:"content"`
	Points       []*Point  `json:"points,omitempty"`
}

// Point represents one Điểm of a clause.
type Point struct {
	ID          uuid.UUID `json:"id"`
	ClauseID    uuid.UUID `json:"clause_id"`
	CanonicalID string    `json:"canonical_id"`
	PointLetter string    `json:"point_letter"`
	Content     string    `json:"content"`
}
