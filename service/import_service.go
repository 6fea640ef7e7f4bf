package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"luatvn-backend/canonical"
	"luatvn-backend/models"
	"luatvn-backend/parser"
	"luatvn-backend/repository"
)

// ImportService orchestrates the import pipeline: run a parser over
// the upload, assign canonical IDs to every node of the tree, and
// persist the result in one transaction.
type ImportService struct {
	documentRepo *repository.DocumentRepository
	textParser   *parser.TextParser
	jsonParser   *parser.JSONParser
}

// ImportServiceOption is a functional option for ImportService.
type ImportServiceOption func(*ImportService)

// ImportWithDocumentRepository sets the document repository.
func ImportWithDocumentRepository(repo *repository.DocumentRepository) ImportServiceOption {
	return func(s *ImportService) {
		s.documentRepo = repo
	}
}

// NewImportService creates a new import service.
func NewImportService(opts ...ImportServiceOption) *ImportService {
	s := &ImportService{
		textParser: parser.NewTextParser(),
		jsonParser: parser.NewJSONParser(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImportResult carries the parse outcome and, on success, the
// persisted document.
type ImportResult struct {
	Parse    parser.ParseResult
	Document *models.LegalDocument
}

// ImportText parses raw legal text with its metadata record and
// persists the resulting tree. A failed parse is returned without
// touching storage; it is not an error at this level.
func (s *ImportService) ImportText(ctx context.Context, text string, meta parser.Metadata) (*ImportResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	result := s.textParser.Parse(text, meta)
	if !result.Success {
		return &ImportResult{Parse: result}, nil
	}
	return s.persist(ctx, result)
}

// ImportJSON validates a pre-structured JSON document and persists the
// resulting tree.
func (s *ImportService) ImportJSON(ctx context.Context, jsonText string) (*ImportResult, error) {
	if s.documentRepo == nil {
		return nil, errors.New("document repository not set")
	}

	result := s.jsonParser.Parse(jsonText)
	if !result.Success {
		return &ImportResult{Parse: result}, nil
	}
	return s.persist(ctx, result)
}

func (s *ImportService) persist(ctx context.Context, result parser.ParseResult) (*ImportResult, error) {
	doc, err := BuildDocumentTree(result.Document)
	if err != nil {
		return nil, err
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return &ImportResult{Parse: result, Document: doc}, nil
}

// BuildDocumentTree converts a parsed document into the persisted
// model, assigning each node its canonical ID. The document's own
// canonical ID comes from the parse metadata; node IDs are derived
// from its decoded prefix and year, so "VN_LLD_2019" yields
// "VN_LLD_2019_D35", "VN_LLD_2019_D35_K1", "VN_LLD_2019_D35_K1_A".
func BuildDocumentTree(parsed *parser.ParsedDocument) (*models.LegalDocument, error) {
	id, err := canonical.ParseID(parsed.CanonicalID)
	if err != nil {
		return nil, fmt.Errorf("document canonical id: %w", err)
	}

	issuedDate, err := parseDate(parsed.IssuedDate)
	if err != nil {
		return nil, fmt.Errorf("issued date: %w", err)
	}
	effectiveDate, err := parseDate(parsed.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("effective date: %w", err)
	}

	doc := &models.LegalDocument{
		CanonicalID:    parsed.CanonicalID,
		Title:          parsed.Title,
		DocumentNumber: parsed.DocumentNumber,
		DocumentType:   parsed.DocumentType,
		IssuingBody:    parsed.IssuingBody,
		IssuedDate:     issuedDate,
		EffectiveDate:  effectiveDate,
		Slug:           parsed.Slug,
		Year:           parsed.Year,
		Status:         parsed.Status,
	}

	for _, pa := range parsed.Articles {
		article := &models.Article{
			CanonicalID: canonical.BuildID(canonical.IDParts{
				DocPrefix:     id.DocPrefix,
				Year:          id.Year,
				ArticleNumber: pa.ArticleNumber,
			}),
			ArticleNumber: pa.ArticleNumber,
			Title:         pa.Title,
			Content:       pa.Content,
			Chapter:       pa.Chapter,
			Section:       pa.Section,
		}

		for _, pc := range pa.Clauses {
			clause := &models.Clause{
				CanonicalID: canonical.BuildID(canonical.IDParts{
					DocPrefix:     id.DocPrefix,
					Year:          id.Year,
					ArticleNumber: pa.ArticleNumber,
					ClauseNumber:  pc.ClauseNumber,
				}),
				ClauseNumber: pc.ClauseNumber,
				Content:      pc.Content,
			}

			for _, pp := range pc.Points {
				clause.Points = append(clause.Points, &models.Point{
					CanonicalID: canonical.BuildID(canonical.IDParts{
						DocPrefix:     id.DocPrefix,
						Year:          id.Year,
						ArticleNumber: pa.ArticleNumber,
						ClauseNumber:  pc.ClauseNumber,
						PointLetter:   pp.PointLetter,
					}),
					PointLetter: pp.PointLetter,
					Content:     pp.Content,
				})
			}

			article.Clauses = append(article.Clauses, clause)
		}

		doc.Articles = append(doc.Articles, article)
	}

	return doc, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
