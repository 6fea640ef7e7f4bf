package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"luatvn-backend/canonical"
)

// RelationMetadata holds free-form editorial notes attached to a
// relation, stored as JSONB.
type RelationMetadata map[string]interface{}

// Value implements driver.Valuer for JSONB
func (m RelationMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *RelationMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(RelationMetadata)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*m = make(RelationMetadata)
		return nil
	}

	if len(bytes) == 0 {
		*m = make(RelationMetadata)
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// DocumentRelation links two documents (amended_by, replaces, ...).
// Relations are stored exactly as entered; no inference happens here.
type DocumentRelation struct {
	ID               uuid.UUID              `json:"id"`
	SourceDocumentID uuid.UUID              `json:"source_document_id"`
	TargetDocumentID uuid.UUID              `json:"target_document_id"`
	RelationType     canonical.RelationType `json:"relation_type"`
	Label            string                 `json:"label"` // Vietnamese display label, derived
	Metadata         RelationMetadata       `json:"metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}
