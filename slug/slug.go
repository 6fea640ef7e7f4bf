// Package slug implements the human-facing URL grammar for legal
// document citations. Two dialects share one coordinate model: the
// source dialect ("/luat/{slug}/{year}/dieu-N/khoan-N/diem-x") addresses
// any depth and is used in citation links, the reading dialect
// ("/doc/{slug}/{year}/dieu-N") stops at article depth because reading
// pages always render a whole article.
//
// The slug grammar is a public wire format: it appears in crawlable
// URLs and in JSON-LD output, so the literal markers must not change.
package slug

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"luatvn-backend/canonical"
)

// Parts holds the coordinates of a citation URL. ArticleNumber,
// ClauseNumber and PointLetter are optional; zero/empty means absent.
type Parts struct {
	DocSlug       string
	Year          int
	ArticleNumber int
	ClauseNumber  int
	PointLetter   string
}

// Parsed is the result of parsing URL path segments. Entity is derived
// from the deepest component present, same as canonical.ParseID.
type Parsed struct {
	Parts
	Entity canonical.EntityType
}

var (
	articleSegment = regexp.MustCompile(`^dieu-(\d+)$`)
	clauseSegment  = regexp.MustCompile(`^khoan-(\d+)$`)
	// Lowercase only, including "đ". Uppercase point letters are
	// rejected here even though canonical IDs carry them uppercased.
	pointSegment = regexp.MustCompile(`^diem-([a-zđ])$`)
)

// SourceURL builds a source-dialect citation path. No validation is
// performed on the component chain.
func SourceURL(p Parts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/luat/%s/%d", p.DocSlug, p.Year)
	if p.ArticleNumber > 0 {
		fmt.Fprintf(&b, "/dieu-%d", p.ArticleNumber)
	}
	if p.ClauseNumber > 0 {
		fmt.Fprintf(&b, "/khoan-%d", p.ClauseNumber)
	}
	if p.PointLetter != "" {
		fmt.Fprintf(&b, "/diem-%s", p.PointLetter)
	}
	return b.String()
}

// ReadingURL builds a reading-dialect path. Clause and point are
// ignored: reading pages never go below article granularity.
func ReadingURL(p Parts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/doc/%s/%d", p.DocSlug, p.Year)
	if p.ArticleNumber > 0 {
		fmt.Fprintf(&b, "/dieu-%d", p.ArticleNumber)
	}
	return b.String()
}

// ParseSource parses source-dialect path segments (already split on
// "/", without the "/luat" prefix). Returns nil on any malformed
// input: callers treat nil as a routing miss, never as an error.
// Every segment after the year must match exactly one marker pattern —
// unlike canonical.ParseID, which skips unknown tokens.
func ParseSource(segments []string) *Parsed {
	if len(segments) < 2 {
		return nil
	}
	year, err := strconv.Atoi(segments[1])
	if err != nil {
		return nil
	}

	parsed := &Parsed{
		Parts:  Parts{DocSlug: segments[0], Year: year},
		Entity: canonical.EntityDocument,
	}

	for _, seg := range segments[2:] {
		switch {
		case articleSegment.MatchString(seg):
			parsed.ArticleNumber, _ = strconv.Atoi(articleSegment.FindStringSubmatch(seg)[1])
			parsed.Entity = canonical.Deeper(parsed.Entity, canonical.EntityArticle)
		case clauseSegment.MatchString(seg):
			parsed.ClauseNumber, _ = strconv.Atoi(clauseSegment.FindStringSubmatch(seg)[1])
			parsed.Entity = canonical.Deeper(parsed.Entity, canonical.EntityClause)
		case pointSegment.MatchString(seg):
			parsed.PointLetter = pointSegment.FindStringSubmatch(seg)[1]
			parsed.Entity = canonical.Deeper(parsed.Entity, canonical.EntityPoint)
		default:
			return nil
		}
	}

	return parsed
}

// ParseReading parses reading-dialect path segments. At most one
// article segment may follow the year; anything else fails the whole
// parse.
func ParseReading(segments []string) *Parsed {
	if len(segments) < 2 {
		return nil
	}
	year, err := strconv.Atoi(segments[1])
	if err != nil {
		return nil
	}

	parsed := &Parsed{
		Parts:  Parts{DocSlug: segments[0], Year: year},
		Entity: canonical.EntityDocument,
	}

	if len(segments) > 3 {
		return nil
	}
	if len(segments) == 3 {
		m := articleSegment.FindStringSubmatch(segments[2])
		if m == nil {
			return nil
		}
		parsed.ArticleNumber, _ = strconv.Atoi(m[1])
		parsed.Entity = canonical.EntityArticle
	}

	return parsed
}
