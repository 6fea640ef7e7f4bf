// Package canonical implements the canonical identifier grammar for
// Vietnamese legal documents. A canonical ID addresses a node in the
// document hierarchy: document, article (Điều), clause (Khoản) or
// point (Điểm), e.g. "VN_LLD_2019_D35_K1_A".
package canonical

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCanonicalID is returned by ParseID when the input cannot be
// a canonical ID (no 4-digit year token).
var ErrInvalidCanonicalID = errors.New("invalid canonical id")

// EntityType identifies the depth of a node in the document hierarchy.
type EntityType string

const (
	EntityDocument EntityType = "document"
	EntityArticle  EntityType = "article"
	EntityClause   EntityType = "clause"
	EntityPoint    EntityType = "point"
)

// IDParts holds the components of a canonical ID. ArticleNumber,
// ClauseNumber and PointLetter are optional; zero/empty means absent.
// Callers are expected to respect the prefix chain (no clause without
// an article, no point without a clause) — BuildID does not enforce it.
type IDParts struct {
	DocPrefix     string
	Year          int
	ArticleNumber int
	ClauseNumber  int
	PointLetter   string
}

// ParsedID is the result of decoding a canonical ID. Entity is derived
// from the deepest component present.
type ParsedID struct {
	IDParts
	Entity EntityType
}

var (
	yearToken    = regexp.MustCompile(`^\d{4}$`)
	articleToken = regexp.MustCompile(`^D(\d+)$`)
	clauseToken  = regexp.MustCompile(`^K(\d+)$`)
)

// BuildID assembles a canonical ID from its parts. The point letter is
// uppercased in the ID ("a" becomes "A", "đ" becomes "Đ"); URL slugs use
// the lowercase form. Pure, never fails.
func BuildID(p IDParts) string {
	var b strings.Builder
	b.WriteString(p.DocPrefix)
	b.WriteString("_")
	b.WriteString(strconv.Itoa(p.Year))
	if p.ArticleNumber > 0 {
		fmt.Fprintf(&b, "_D%d", p.ArticleNumber)
	}
	if p.ClauseNumber > 0 {
		fmt.Fprintf(&b, "_K%d", p.ClauseNumber)
	}
	if p.PointLetter != "" {
		b.WriteString("_")
		b.WriteString(strings.ToUpper(p.PointLetter))
	}
	return b.String()
}

// ParseID decodes a canonical ID. The first token of exactly four digits
// is the year; everything before it is the document prefix (which may
// itself contain underscores). Tokens after the year that match D<n>,
// K<n> or a single uppercase point letter (A-Z or Đ) set the article,
// clause and point components. Unrecognized tokens are ignored; this
// looseness is part of the format's observed behavior and downstream
// callers rely on it.
func ParseID(id string) (*ParsedID, error) {
	tokens := strings.Split(id, "_")

	yearIdx := -1
	for i, tok := range tokens {
		if yearToken.MatchString(tok) {
			yearIdx = i
			break
		}
	}
	if yearIdx == -1 {
		return nil, fmt.Errorf("%w: %q has no year component", ErrInvalidCanonicalID, id)
	}

	year, _ := strconv.Atoi(tokens[yearIdx])
	parsed := &ParsedID{
		IDParts: IDParts{
			DocPrefix: strings.Join(tokens[:yearIdx], "_"),
			Year:      year,
		},
		Entity: EntityDocument,
	}

	for _, tok := range tokens[yearIdx+1:] {
		if m := articleToken.FindStringSubmatch(tok); m != nil {
			parsed.ArticleNumber, _ = strconv.Atoi(m[1])
			parsed.Entity = Deeper(parsed.Entity, EntityArticle)
			continue
		}
		if m := clauseToken.FindStringSubmatch(tok); m != nil {
			parsed.ClauseNumber, _ = strconv.Atoi(m[1])
			parsed.Entity = Deeper(parsed.Entity, EntityClause)
			continue
		}
		if isUpperLetter(tok) {
			parsed.PointLetter = strings.ToLower(tok)
			parsed.Entity = Deeper(parsed.Entity, EntityPoint)
		}
		// Anything else is silently skipped.
	}

	return parsed, nil
}

var entityDepth = map[EntityType]int{
	EntityDocument: 0,
	EntityArticle:  1,
	EntityClause:   2,
	EntityPoint:    3,
}

// Deeper returns the deeper of two entity types. Every decoder of the
// identifier grammars applies it so the deepest component wins
// regardless of the order tokens appear in.
func Deeper(a, b EntityType) EntityType {
	if entityDepth[b] > entityDepth[a] {
		return b
	}
	return a
}

// isUpperLetter reports whether tok is a single uppercase point letter:
// the uppercase counterpart of the alphabet the URL slugs use, A-Z
// plus Vietnamese "Đ".
func isUpperLetter(tok string) bool {
	if utf8.RuneCountInString(tok) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r == 'Đ' || ('A' <= r && r <= 'Z')
}
