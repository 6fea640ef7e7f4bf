package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luatvn-backend/canonical"
)

func TestSourceURL(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  string
	}{
		{
			name:  "document",
			parts: Parts{DocSlug: "bo-luat-lao-dong", Year: 2019},
			want:  "/luat/bo-luat-lao-dong/2019",
		},
		{
			name:  "article",
			parts: Parts{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35},
			want:  "/luat/bo-luat-lao-dong/2019/dieu-35",
		},
		{
			name:  "full depth",
			parts: Parts{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35, ClauseNumber: 1, PointLetter: "a"},
			want:  "/luat/bo-luat-lao-dong/2019/dieu-35/khoan-1/diem-a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceURL(tt.parts))
		})
	}
}

func TestReadingURL(t *testing.T) {
	assert.Equal(t, "/doc/bo-luat-lao-dong/2019", ReadingURL(Parts{DocSlug: "bo-luat-lao-dong", Year: 2019}))
	assert.Equal(t, "/doc/bo-luat-lao-dong/2019/dieu-35", ReadingURL(Parts{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35}))

	// Reading URLs never go deeper than the article.
	deep := Parts{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35, ClauseNumber: 1, PointLetter: "a"}
	assert.Equal(t, "/doc/bo-luat-lao-dong/2019/dieu-35", ReadingURL(deep))
}

func TestParseSource(t *testing.T) {
	parsed := ParseSource([]string{"bo-luat-lao-dong", "2019", "dieu-35", "khoan-1", "diem-a"})
	require.NotNil(t, parsed)
	assert.Equal(t, "bo-luat-lao-dong", parsed.DocSlug)
	assert.Equal(t, 2019, parsed.Year)
	assert.Equal(t, 35, parsed.ArticleNumber)
	assert.Equal(t, 1, parsed.ClauseNumber)
	assert.Equal(t, "a", parsed.PointLetter)
	assert.Equal(t, canonical.EntityPoint, parsed.Entity)
}

func TestParseSourceRejects(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
	}{
		{"too few segments", []string{"bo-luat-lao-dong"}},
		{"non-integer year", []string{"bo-luat-lao-dong", "hai-nghin"}},
		{"uppercase point letter", []string{"bo-luat-lao-dong", "2019", "dieu-35", "khoan-1", "diem-A"}},
		{"unknown segment", []string{"bo-luat-lao-dong", "2019", "dieu-35", "trang-2"}},
		{"bare marker", []string{"bo-luat-lao-dong", "2019", "dieu-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseSource(tt.segments))
		})
	}
}

// Segment order does not matter to the grammar; the deepest component
// determines the entity, same as the canonical ID decoder.
func TestParseSourceDeepestComponentWins(t *testing.T) {
	parsed := ParseSource([]string{"bo-luat-lao-dong", "2019", "khoan-1", "dieu-2"})
	require.NotNil(t, parsed)
	assert.Equal(t, 2, parsed.ArticleNumber)
	assert.Equal(t, 1, parsed.ClauseNumber)
	assert.Equal(t, canonical.EntityClause, parsed.Entity)

	parsed = ParseSource([]string{"bo-luat-lao-dong", "2019", "diem-a", "dieu-2", "khoan-1"})
	require.NotNil(t, parsed)
	assert.Equal(t, canonical.EntityPoint, parsed.Entity)
}

func TestParseSourceVietnamesePointLetter(t *testing.T) {
	parsed := ParseSource([]string{"bo-luat-dan-su", "2015", "dieu-7", "khoan-2", "diem-đ"})
	require.NotNil(t, parsed)
	assert.Equal(t, "đ", parsed.PointLetter)
	assert.Equal(t, canonical.EntityPoint, parsed.Entity)
}

func TestParseReading(t *testing.T) {
	parsed := ParseReading([]string{"bo-luat-lao-dong", "2019"})
	require.NotNil(t, parsed)
	assert.Equal(t, canonical.EntityDocument, parsed.Entity)

	parsed = ParseReading([]string{"bo-luat-lao-dong", "2019", "dieu-35"})
	require.NotNil(t, parsed)
	assert.Equal(t, 35, parsed.ArticleNumber)
	assert.Equal(t, canonical.EntityArticle, parsed.Entity)
}

func TestParseReadingRejects(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
	}{
		{"too few segments", []string{"bo-luat-lao-dong"}},
		{"non-integer year", []string{"bo-luat-lao-dong", "nam"}},
		{"clause depth not supported", []string{"bo-luat-lao-dong", "2019", "khoan-1"}},
		{"extra segment", []string{"bo-luat-lao-dong", "2019", "dieu-35", "khoan-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseReading(tt.segments))
		})
	}
}

// Source URLs must survive a split/parse round trip: they are embedded
// in JSON-LD and canonical link tags.
func TestSourceRoundTrip(t *testing.T) {
	tuples := []Parts{
		{DocSlug: "bo-luat-lao-dong", Year: 2019},
		{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35},
		{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35, ClauseNumber: 1},
		{DocSlug: "bo-luat-lao-dong", Year: 2019, ArticleNumber: 35, ClauseNumber: 1, PointLetter: "a"},
		{DocSlug: "bo-luat-dan-su", Year: 2015, ArticleNumber: 7, ClauseNumber: 2, PointLetter: "đ"},
	}

	for _, parts := range tuples {
		t.Run(SourceURL(parts), func(t *testing.T) {
			segments := strings.Split(strings.TrimPrefix(SourceURL(parts), "/luat/"), "/")
			parsed := ParseSource(segments)
			require.NotNil(t, parsed)
			assert.Equal(t, parts, parsed.Parts)
		})
	}
}
