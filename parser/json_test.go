package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocumentJSON(t *testing.T, mutate func(doc map[string]interface{})) string {
	t.Helper()
	doc := map[string]interface{}{
		"canonicalId":    "VN_LLD_2019",
		"title":          "Bộ luật Lao động",
		"documentNumber": "45/2019/QH14",
		"documentType":   "luat",
		"issuingBody":    "Quốc hội",
		"issuedDate":     "2019-11-20",
		"effectiveDate":  "2021-01-01",
		"slug":           "bo-luat-lao-dong",
		"year":           2019,
		"articles": []interface{}{
			map[string]interface{}{
				"articleNumber": 35,
				"title":         "Quyền đơn phương chấm dứt hợp đồng",
				"content":       "Nội dung điều",
				"clauses": []interface{}{
					map[string]interface{}{
						"clauseNumber": 1,
						"content":      "Nội dung khoản",
						"points": []interface{}{
							map[string]interface{}{"pointLetter": "a", "content": "Điểm a"},
							map[string]interface{}{"pointLetter": "b", "content": "Điểm b"},
						},
					},
				},
			},
		},
	}
	if mutate != nil {
		mutate(doc)
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(raw)
}

func TestJSONParserHappyPath(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, nil))
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.NotNil(t, result.Document)

	doc := result.Document
	assert.Equal(t, "VN_LLD_2019", doc.CanonicalID)
	assert.Equal(t, TypeLuat, doc.DocumentType)
	assert.Equal(t, StatusActive, doc.Status) // defaulted
	assert.Equal(t, 2019, doc.Year)

	require.Len(t, doc.Articles, 1)
	article := doc.Articles[0]
	assert.Equal(t, 35, article.ArticleNumber)
	require.NotNil(t, article.Title)
	assert.Nil(t, article.Chapter)
	require.Len(t, article.Clauses, 1)
	require.Len(t, article.Clauses[0].Points, 2)
	assert.Equal(t, "a", article.Clauses[0].Points[0].PointLetter)
}

func TestJSONParserSyntaxError(t *testing.T) {
	result := NewJSONParser().Parse("{not json")
	assert.False(t, result.Success)
	assert.Nil(t, result.Document)
	assert.Equal(t, []string{"invalid JSON document"}, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestJSONParserNonObject(t *testing.T) {
	result := NewJSONParser().Parse(`[{"canonicalId":"VN_LLD_2019"}]`)
	assert.False(t, result.Success)
	assert.Len(t, result.Errors, 1)
}

func TestJSONParserAccumulatesMissingFields(t *testing.T) {
	result := NewJSONParser().Parse(`{}`)
	assert.False(t, result.Success)
	assert.Nil(t, result.Document)
	// One error per missing required field, plus year and both dates.
	assert.GreaterOrEqual(t, len(result.Errors), 9)
	assert.Contains(t, result.Errors, "missing required field: canonicalId")
	assert.Contains(t, result.Errors, "missing required field: slug")
}

func TestJSONParserYearRange(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["year"] = 1800
	}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "year must be a number between 1945 and 2100")

	result = NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["year"] = 2030
	}))
	assert.NotContains(t, result.Errors, "year must be a number between 1945 and 2100")
}

func TestJSONParserInvalidEnums(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["documentType"] = "phap_lenh"
		doc["status"] = "draft"
	}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, `invalid documentType: "phap_lenh"`)
	assert.Contains(t, result.Errors, `invalid status: "draft"`)
}

func TestJSONParserExplicitStatusKept(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["status"] = "repealed"
	}))
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, StatusRepealed, result.Document.Status)
}

func TestJSONParserDuplicateArticles(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["articles"] = []interface{}{
			map[string]interface{}{"articleNumber": 5, "content": "Một"},
			map[string]interface{}{"articleNumber": 5, "content": "Hai"},
		}
	}))
	assert.False(t, result.Success)
	assert.Nil(t, result.Document)
	assert.Contains(t, result.Errors, "duplicate article number: 5")
}

func TestJSONParserDuplicateClausesAndPoints(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["articles"] = []interface{}{
			map[string]interface{}{
				"articleNumber": 1,
				"content":       "Điều",
				"clauses": []interface{}{
					map[string]interface{}{"clauseNumber": 1, "content": "x"},
					map[string]interface{}{"clauseNumber": 1, "content": "y"},
					map[string]interface{}{
						"clauseNumber": 2,
						"content":      "z",
						"points": []interface{}{
							map[string]interface{}{"pointLetter": "a", "content": "p"},
							map[string]interface{}{"pointLetter": "a", "content": "q"},
						},
					},
				},
			},
		}
	}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "article 1: duplicate clause number: 1")
	assert.Contains(t, result.Errors, "article 1: clause 2: duplicate point letter: a")
}

func TestJSONParserSkipsArticleWithoutNumber(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["articles"] = []interface{}{
			map[string]interface{}{"content": "không có số"},
			map[string]interface{}{"articleNumber": "hai", "content": "số sai kiểu"},
			map[string]interface{}{"articleNumber": 3, "content": "hợp lệ"},
		}
	}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "article at index 0: missing or non-numeric articleNumber")
	assert.Contains(t, result.Errors, "article at index 1: missing or non-numeric articleNumber")
	// Article 3's interior was still validated despite earlier failures.
	assert.Len(t, result.Errors, 2)
}

func TestJSONParserNoArticlesWarns(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		delete(doc, "articles")
	}))
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "no articles")
	assert.Empty(t, result.Document.Articles)
}

func TestJSONParserInvalidPointLetter(t *testing.T) {
	result := NewJSONParser().Parse(validDocumentJSON(t, func(doc map[string]interface{}) {
		doc["articles"] = []interface{}{
			map[string]interface{}{
				"articleNumber": 1,
				"content":       "Điều",
				"clauses": []interface{}{
					map[string]interface{}{
						"clauseNumber": 1,
						"content":      "x",
						"points": []interface{}{
							map[string]interface{}{"pointLetter": "ab", "content": "p"},
						},
					},
				},
			},
		}
	}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "article 1: clause 1: point at index 0: pointLetter must be a single character")
}

// Both parsers feed the same import pipeline, so equivalent inputs
// must produce structurally identical trees.
func TestParsersProduceIdenticalShape(t *testing.T) {
	text := "Điều 35. Quyền đơn phương chấm dứt hợp đồng\n" +
		"1. Nội dung khoản\n" +
		"a) Điểm a\n" +
		"b) Điểm b"
	meta := validMetadata()

	fromText := NewTextParser().Parse(text, meta)
	require.True(t, fromText.Success, "errors: %v", fromText.Errors)

	fromJSON := NewJSONParser().Parse(validDocumentJSON(t, nil))
	require.True(t, fromJSON.Success, "errors: %v", fromJSON.Errors)

	// Strip the fields the text fixture cannot carry (article content
	// lives in clause lines there), then compare the skeleton.
	textArticle := fromText.Document.Articles[0]
	jsonArticle := fromJSON.Document.Articles[0]
	assert.Equal(t, jsonArticle.ArticleNumber, textArticle.ArticleNumber)
	require.Len(t, textArticle.Clauses, len(jsonArticle.Clauses))
	assert.Equal(t, jsonArticle.Clauses[0].ClauseNumber, textArticle.Clauses[0].ClauseNumber)
	require.Len(t, textArticle.Clauses[0].Points, len(jsonArticle.Clauses[0].Points))
	assert.Equal(t, jsonArticle.Clauses[0].Points[0].PointLetter, textArticle.Clauses[0].Points[0].PointLetter)
	assert.Equal(t, fromJSON.Document.CanonicalID, fromText.Document.CanonicalID)
	assert.Equal(t, fromJSON.Document.Status, fromText.Document.Status)
}
