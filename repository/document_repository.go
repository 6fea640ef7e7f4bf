package repository

import (
	"context"
	"fmt"

	"luatvn-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for legal documents
// and their article/clause/point tree.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document and its whole tree in one transaction.
// Running the insert transactionally also serializes canonical-ID
// assignment per document: a duplicate canonical_id or slug fails the
// unique constraint and rolls the whole tree back.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.LegalDocument) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO legal_documents (
			canonical_id, title, document_number, document_type,
			issuing_body, issued_date, effective_date, slug, year, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(
		ctx, query,
		doc.CanonicalID,
		doc.Title,
		doc.DocumentNumber,
		doc.DocumentType,
		doc.IssuingBody,
		doc.IssuedDate,
		doc.EffectiveDate,
		doc.Slug,
		doc.Year,
		doc.Status,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	for _, article := range doc.Articles {
		article.DocumentID = doc.ID
		err = tx.QueryRow(
			ctx, `
			INSERT INTO articles (document_id, canonical_id, article_number, title, content, chapter, section)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			article.DocumentID,
			article.CanonicalID,
			article.ArticleNumber,
			article.Title,
			article.Content,
			article.Chapter,
			article.Section,
		).Scan(&article.ID)
		if err != nil {
			return fmt.Errorf("insert article %d: %w", article.ArticleNumber, err)
		}

		for _, clause := range article.Clauses {
			clause.ArticleID = article.ID
			err = tx.QueryRow(
				ctx, `
				INSERT INTO clauses (article_id, canonical_id, clause_number, content)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				clause.ArticleID,
				clause.CanonicalID,
				clause.ClauseNumber,
				clause.Content,
			).Scan(&clause.ID)
			if err != nil {
				return fmt.Errorf("insert clause %d of article %d: %w", clause.ClauseNumber, article.ArticleNumber, err)
			}

			for _, point := range clause.Points {
				point.ClauseID = clause.ID
				err = tx.QueryRow(
					ctx, `
					INSERT INTO points (clause_id, canonical_id, point_letter, content)
					VALUES ($1, $2, $3, $4)
					RETURNING id`,
					point.ClauseID,
					point.CanonicalID,
					point.PointLetter,
					point.Content,
				).Scan(&point.ID)
				if err != nil {
					return fmt.Errorf("insert point %s: %w", point.PointLetter, err)
				}
			}
		}
	}

	return tx.Commit(ctx)
}

const documentColumns = `
	id, canonical_id, title, document_number, document_type,
	issuing_body, issued_date, effective_date, slug, year, status,
	created_at, updated_at`

func scanDocument(row interface{ Scan(dest ...any) error }) (*models.LegalDocument, error) {
	doc := &models.LegalDocument{}
	err := row.Scan(
		&doc.ID,
		&doc.CanonicalID,
		&doc.Title,
		&doc.DocumentNumber,
		&doc.DocumentType,
		&doc.IssuingBody,
		&doc.IssuedDate,
		&doc.EffectiveDate,
		&doc.Slug,
		&doc.Year,
		&doc.Status,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetByID retrieves a document row without its tree.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LegalDocument, error) {
	query := `SELECT` + documentColumns + ` FROM legal_documents WHERE id = $1`
	return scanDocument(r.db.QueryRow(ctx, query, id))
}

// GetBySlugAndYear retrieves a document by its URL coordinates.
func (r *DocumentRepository) GetBySlugAndYear(ctx context.Context, slug string, year int) (*models.LegalDocument, error) {
	query := `SELECT` + documentColumns + ` FROM legal_documents WHERE slug = $1 AND year = $2`
	return scanDocument(r.db.QueryRow(ctx, query, slug, year))
}

// GetTree retrieves a document with its full article/clause/point tree.
func (r *DocumentRepository) GetTree(ctx context.Context, id uuid.UUID) (*models.LegalDocument, error) {
	doc, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, document_id, canonical_id, article_number, title, content, chapter, section
		FROM articles WHERE document_id = $1 ORDER BY article_number`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articleByID := make(map[uuid.UUID]*models.Article)
	for rows.Next() {
		a := &models.Article{}
		if err := rows.Scan(&a.ID, &a.DocumentID, &a.CanonicalID, &a.ArticleNumber, &a.Title, &a.Content, &a.Chapter, &a.Section); err != nil {
			return nil, err
		}
		doc.Articles = append(doc.Articles, a)
		articleByID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clauseRows, err := r.db.Query(ctx, `
		SELECT c.id, c.article_id, c.canonical_id, c.clause_number, c.content
		FROM clauses c
		JOIN articles a ON a.id = c.article_id
		WHERE a.document_id = $1
		ORDER BY a.article_number, c.clause_number`, id)
	if err != nil {
		return nil, err
	}
	defer clauseRows.Close()

	clauseByID := make(map[uuid.UUID]*models.Clause)
	for clauseRows.Next() {
		c := &models.Clause{}
		if err := clauseRows.Scan(&c.ID, &c.ArticleID, &c.CanonicalID, &c.ClauseNumber, &c.Content); err != nil {
			return nil, err
		}
		if a, ok := articleByID[c.ArticleID]; ok {
			a.Clauses = append(a.Clauses, c)
		}
		clauseByID[c.ID] = c
	}
	if err := clauseRows.Err(); err != nil {
		return nil, err
	}

	pointRows, err := r.db.Query(ctx, `
		SELECT p.id, p.clause_id, p.canonical_id, p.point_letter, p.content
		FROM points p
		JOIN clauses c ON c.id = p.clause_id
		JOIN articles a ON a.id = c.article_id
		WHERE a.document_id = $1
		ORDER BY a.article_number, c.clause_number, p.point_letter`, id)
	if err != nil {
		return nil, err
	}
	defer pointRows.Close()

	for pointRows.Next() {
		p := &models.Point{}
		if err := pointRows.Scan(&p.ID, &p.ClauseID, &p.CanonicalID, &p.PointLetter, &p.Content); err != nil {
			return nil, err
		}
		if c, ok := clauseByID[p.ClauseID]; ok {
			c.Points = append(c.Points, p)
		}
	}
	return doc, pointRows.Err()
}

// GetArticle retrieves one article of a document with its clauses and
// points.
func (r *DocumentRepository) GetArticle(ctx context.Context, documentID uuid.UUID, articleNumber int) (*models.Article, error) {
	a := &models.Article{}
	err := r.db.QueryRow(ctx, `
		SELECT id, document_id, canonical_id, article_number, title, content, chapter, section
		FROM articles WHERE document_id = $1 AND article_number = $2`,
		documentID, articleNumber,
	).Scan(&a.ID, &a.DocumentID, &a.CanonicalID, &a.ArticleNumber, &a.Title, &a.Content, &a.Chapter, &a.Section)
	if err != nil {
		return nil, err
	}

	clauseRows, err := r.db.Query(ctx, `
		SELECT id, article_id, canonical_id, clause_number, content
		FROM clauses WHERE article_id = $1 ORDER BY clause_number`, a.ID)
	if err != nil {
		return nil, err
	}
	defer clauseRows.Close()

	clauseByID := make(map[uuid.UUID]*models.Clause)
	for clauseRows.Next() {
		c := &models.Clause{}
		if err := clauseRows.Scan(&c.ID, &c.ArticleID, &c.CanonicalID, &c.ClauseNumber, &c.Content); err != nil {
			return nil, err
		}
		a.Clauses = append(a.Clauses, c)
		clauseByID[c.ID] = c
	}
	if err := clauseRows.Err(); err != nil {
		return nil, err
	}

	pointRows, err := r.db.Query(ctx, `
		SELECT p.id, p.clause_id, p.canonical_id, p.point_letter, p.content
		FROM points p
		JOIN clauses c ON c.id = p.clause_id
		WHERE c.article_id = $1
		ORDER BY c.clause_number, p.point_letter`, a.ID)
	if err != nil {
		return nil, err
	}
	defer pointRows.Close()

	for pointRows.Next() {
		p := &models.Point{}
		if err := pointRows.Scan(&p.ID, &p.ClauseID, &p.CanonicalID, &p.PointLetter, &p.Content); err != nil {
			return nil, err
		}
		if c, ok := clauseByID[p.ClauseID]; ok {
			c.Points = append(c.Points, p)
		}
	}
	return a, pointRows.Err()
}

// List retrieves documents, newest first, optionally filtered by type
// and status.
func (r *DocumentRepository) List(ctx context.Context, docType, status *string, limit, offset int) ([]*models.LegalDocument, error) {
	query := `SELECT` + documentColumns + ` FROM legal_documents WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if docType != nil {
		query += fmt.Sprintf(" AND document_type = $%d", argIndex)
		args = append(args, *docType)
		argIndex++
	}
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}

	query += " ORDER BY issued_date DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.LegalDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Search finds documents whose title or number contains the query
// string. Plain substring matching; ranking is out of scope.
func (r *DocumentRepository) Search(ctx context.Context, q string, limit int) ([]*models.LegalDocument, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT` + documentColumns + `
		FROM legal_documents
		WHERE title ILIKE '%' || $1 || '%' OR document_number ILIKE '%' || $1 || '%'
		ORDER BY issued_date DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.LegalDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete removes a document; the tree goes with it via ON DELETE
// CASCADE.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM legal_documents WHERE id = $1`, id)
	return err
}
