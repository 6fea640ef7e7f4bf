package canonical

// RelationType classifies a stored relationship between two documents.
// Relationships are recorded as given by editors or upstream sources,
// never inferred.
type RelationType string

const (
	RelationAmendedBy  RelationType = "amended_by"
	RelationReplaces   RelationType = "replaces"
	RelationRelatedTo  RelationType = "related_to"
	RelationReferences RelationType = "references"
	RelationImplements RelationType = "implements"
)

var relationLabels = map[RelationType]string{
	RelationAmendedBy:  "Được sửa đổi, bổ sung bởi",
	RelationReplaces:   "Thay thế",
	RelationRelatedTo:  "Liên quan đến",
	RelationReferences: "Tham chiếu",
	RelationImplements: "Hướng dẫn thi hành",
}

var entityLabels = map[EntityType]string{
	EntityDocument: "Văn bản",
	EntityArticle:  "Điều",
	EntityClause:   "Khoản",
	EntityPoint:    "Điểm",
}

// RelationLabel returns the Vietnamese display label for a relation
// type. Unknown keys come back unchanged so upstream data with new
// relation kinds still renders something readable.
func RelationLabel(t RelationType) string {
	if label, ok := relationLabels[t]; ok {
		return label
	}
	return string(t)
}

// EntityLabel returns the Vietnamese display label for an entity type.
// EntityType is a closed enum; passing anything outside it is a
// programming error and returns "".
func EntityLabel(t EntityType) string {
	return entityLabels[t]
}
