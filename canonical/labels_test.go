package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationLabel(t *testing.T) {
	assert.Equal(t, "Thay thế", RelationLabel(RelationReplaces))
	assert.Equal(t, "Hướng dẫn thi hành", RelationLabel(RelationImplements))

	// Unknown keys fall back to the key itself.
	assert.Equal(t, "supersedes", RelationLabel(RelationType("supersedes")))
}

func TestEntityLabel(t *testing.T) {
	assert.Equal(t, "Văn bản", EntityLabel(EntityDocument))
	assert.Equal(t, "Điều", EntityLabel(EntityArticle))
	assert.Equal(t, "Khoản", EntityLabel(EntityClause))
	assert.Equal(t, "Điểm", EntityLabel(EntityPoint))

	// EntityType is a closed enum; anything else is a bug upstream.
	assert.Empty(t, EntityLabel(EntityType("paragraph")))
}
