package repository

import (
	"context"

	"luatvn-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for uploaded source
// files.
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository.
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts a source file record.
func (r *FileRepository) Create(ctx context.Context, file *models.SourceFile) error {
	query := `
		INSERT INTO source_files (id, document_id, filename, mime_type, size, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		file.ID,
		file.DocumentID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
	).Scan(&file.CreatedAt)
}

// GetByID retrieves a source file record.
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SourceFile, error) {
	file := &models.SourceFile{}
	query := `
		SELECT id, document_id, filename, mime_type, size, storage_path, created_at
		FROM source_files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.DocumentID,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.StoragePath,
		&file.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes a source file record.
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM source_files WHERE id = $1`, id)
	return err
}
