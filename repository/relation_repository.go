package repository

import (
	"context"

	"luatvn-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RelationRepository handles database operations for document
// relations.
type RelationRepository struct {
	db *pgxpool.Pool
}

// NewRelationRepository creates a new relation repository.
func NewRelationRepository(db *pgxpool.Pool) *RelationRepository {
	return &RelationRepository{db: db}
}

// Create stores a relation exactly as given.
func (r *RelationRepository) Create(ctx context.Context, relation *models.DocumentRelation) error {
	query := `
		INSERT INTO document_relations (source_document_id, target_document_id, relation_type, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		relation.SourceDocumentID,
		relation.TargetDocumentID,
		relation.RelationType,
		relation.Metadata,
	).Scan(&relation.ID, &relation.CreatedAt)
}

// ListByDocument retrieves all relations where the document is the
// source.
func (r *RelationRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*models.DocumentRelation, error) {
	query := `
		SELECT id, source_document_id, target_document_id, relation_type, metadata, created_at
		FROM document_relations
		WHERE source_document_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []*models.DocumentRelation
	for rows.Next() {
		relation := &models.DocumentRelation{}
		err := rows.Scan(
			&relation.ID,
			&relation.SourceDocumentID,
			&relation.TargetDocumentID,
			&relation.RelationType,
			&relation.Metadata,
			&relation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		relations = append(relations, relation)
	}
	return relations, rows.Err()
}

// Delete removes a relation.
func (r *RelationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM document_relations WHERE id = $1`, id)
	return err
}
