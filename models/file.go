package models

import (
	"time"

	"github.com/google/uuid"
)

// SourceFile represents an uploaded original document file (PDF/DOCX).
// Text extraction happens upstream; the backend only stores the bytes
// and the link to the imported document.
type SourceFile struct {
	ID          uuid.UUID  `json:"id"`
	DocumentID  *uuid.UUID `json:"document_id,omitempty"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Size        int64      `json:"size"`
	StoragePath string     `json:"storage_path"`
	CreatedAt   time.Time  `json:"created_at"`
}
