package service

import (
	"context"
	"errors"

	"luatvn-backend/canonical"
	"luatvn-backend/models"
	"luatvn-backend/repository"
	"luatvn-backend/slug"

	"github.com/google/uuid"
)

// DocumentService handles lookup and citation resolution for legal
// documents.
type DocumentService struct {
	documentRepo *repository.DocumentRepository
	relationRepo *repository.RelationRepository
}

// DocumentServiceOption is a functional option for DocumentService.
type DocumentServiceOption func(*DocumentService)

// WithDocumentRepository sets the document repository.
func WithDocumentRepository(repo *repository.DocumentRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.documentRepo = repo
	}
}

// WithRelationRepository sets the relation repository.
func WithRelationRepository(repo *repository.RelationRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.relationRepo = repo
	}
}

// NewDocumentService creates a new document service.
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Citation is a resolved citation URL: the document it addresses plus,
// when the URL goes deeper than the document, the article subtree.
type Citation struct {
	Entity   canonical.EntityType  `json:"entity"`
	Label    string                `json:"label"`
	Document *models.LegalDocument `json:"document"`
	Article  *models.Article       `json:"article,omitempty"`
}

// Resolve looks up the target of a parsed citation URL. The clause and
// point coordinates select within the returned article; the article
// payload always carries its full subtree so the frontend can
// highlight the cited range.
func (s *DocumentService) Resolve(ctx context.Context, parsed *slug.Parsed) (*Citation, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	doc, err := s.documentRepo.GetBySlugAndYear(ctx, parsed.DocSlug, parsed.Year)
	if err != nil {
		return nil, err
	}

	citation := &Citation{
		Entity:   parsed.Entity,
		Label:    canonical.EntityLabel(parsed.Entity),
		Document: doc,
	}

	if parsed.ArticleNumber > 0 {
		article, err := s.documentRepo.GetArticle(ctx, doc.ID, parsed.ArticleNumber)
		if err != nil {
			return nil, err
		}
		citation.Article = article
	}

	return citation, nil
}

// GetDocument retrieves a document with its full tree.
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*models.LegalDocument, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	return s.documentRepo.GetTree(ctx, id)
}

// ListDocuments retrieves documents with optional type/status filters.
func (s *DocumentService) ListDocuments(ctx context.Context, docType, status *string, limit, offset int) ([]*models.LegalDocument, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	return s.documentRepo.List(ctx, docType, status, limit, offset)
}

// SearchDocuments finds documents by title/number substring.
func (s *DocumentService) SearchDocuments(ctx context.Context, q string, limit int) ([]*models.LegalDocument, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}
	return s.documentRepo.Search(ctx, q, limit)
}

// ListRelations retrieves a document's relations with their Vietnamese
// display labels filled in.
func (s *DocumentService) ListRelations(ctx context.Context, documentID uuid.UUID) ([]*models.DocumentRelation, error) {
	if s.relationRepo == nil {
		return nil, errors.New("relation repository not set")
	}
	relations, err := s.relationRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	for _, relation := range relations {
		relation.Label = canonical.RelationLabel(relation.RelationType)
	}
	return relations, nil
}
