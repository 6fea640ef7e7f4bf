package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luatvn-backend/canonical"
	"luatvn-backend/parser"
)

func sampleParsedDocument() *parser.ParsedDocument {
	title := "Quyền đơn phương chấm dứt hợp đồng"
	return &parser.ParsedDocument{
		CanonicalID:    "VN_LLD_2019",
		Title:          "Bộ luật Lao động",
		DocumentNumber: "45/2019/QH14",
		DocumentType:   parser.TypeLuat,
		IssuingBody:    "Quốc hội",
		IssuedDate:     "2019-11-20",
		EffectiveDate:  "2021-01-01",
		Slug:           "bo-luat-lao-dong",
		Year:           2019,
		Status:         parser.StatusActive,
		Articles: []*parser.ParsedArticle{
			{
				ArticleNumber: 35,
				Title:         &title,
				Content:       "Nội dung điều",
				Clauses: []*parser.ParsedClause{
					{
						ClauseNumber: 1,
						Content:      "Nội dung khoản",
						Points: []*parser.ParsedPoint{
							{PointLetter: "a", Content: "Điểm a"},
							{PointLetter: "đ", Content: "Điểm đ"},
						},
					},
				},
			},
		},
	}
}

func TestBuildDocumentTreeAssignsCanonicalIDs(t *testing.T) {
	doc, err := BuildDocumentTree(sampleParsedDocument())
	require.NoError(t, err)

	assert.Equal(t, "VN_LLD_2019", doc.CanonicalID)
	assert.Equal(t, time.Date(2019, 11, 20, 0, 0, 0, 0, time.UTC), doc.IssuedDate)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), doc.EffectiveDate)

	require.Len(t, doc.Articles, 1)
	article := doc.Articles[0]
	assert.Equal(t, "VN_LLD_2019_D35", article.CanonicalID)

	require.Len(t, article.Clauses, 1)
	clause := article.Clauses[0]
	assert.Equal(t, "VN_LLD_2019_D35_K1", clause.CanonicalID)

	require.Len(t, clause.Points, 2)
	assert.Equal(t, "VN_LLD_2019_D35_K1_A", clause.Points[0].CanonicalID)
	assert.Equal(t, "VN_LLD_2019_D35_K1_Đ", clause.Points[1].CanonicalID)
}

// Node IDs derive from the decoded document ID, so a multi-token
// prefix must survive the round trip.
func TestBuildDocumentTreeMultiWordPrefix(t *testing.T) {
	parsed := sampleParsedDocument()
	parsed.CanonicalID = "VN_ND_15_CP_2020"
	parsed.Year = 2020

	doc, err := BuildDocumentTree(parsed)
	require.NoError(t, err)
	assert.Equal(t, "VN_ND_15_CP_2020_D35", doc.Articles[0].CanonicalID)
}

func TestBuildDocumentTreeInvalidCanonicalID(t *testing.T) {
	parsed := sampleParsedDocument()
	parsed.CanonicalID = "VN_LLD"

	_, err := BuildDocumentTree(parsed)
	require.Error(t, err)
	assert.ErrorIs(t, err, canonical.ErrInvalidCanonicalID)
}

func TestBuildDocumentTreeInvalidDate(t *testing.T) {
	parsed := sampleParsedDocument()
	parsed.IssuedDate = "20/11/2019"

	_, err := BuildDocumentTree(parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issued date")
}

func TestImportTextWithoutRepository(t *testing.T) {
	svc := NewImportService()
	_, err := svc.ImportText(context.Background(), "Điều 1. Một\nNội dung", parser.Metadata{})
	assert.Error(t, err)
}
