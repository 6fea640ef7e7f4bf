package parser

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// JSONParser validates and normalizes a pre-structured JSON document
// against the same tree shape and invariants as the text parser. Safe
// for concurrent use.
type JSONParser struct{}

// NewJSONParser creates a JSONParser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

var requiredFields = []string{
	"canonicalId", "title", "documentNumber", "documentType",
	"issuingBody", "issuedDate", "effectiveDate", "slug", "year",
}

// Parse validates jsonText and produces the normalized document tree.
// Syntax failures and non-object payloads short-circuit with a single
// error; once basic shape is confirmed, every structural problem is
// accumulated so an upload review shows the complete list in one pass.
func (p *JSONParser) Parse(jsonText string) ParseResult {
	var raw interface{}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return failure([]string{"invalid JSON document"}, nil)
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return failure([]string{"JSON document must be an object"}, nil)
	}

	var errors, warnings []string

	for _, field := range requiredFields {
		if _, ok := obj[field]; !ok {
			errors = append(errors, fmt.Sprintf("missing required field: %s", field))
		}
	}

	docType, _ := obj["documentType"].(string)
	if _, present := obj["documentType"]; present && !validDocumentTypes[DocumentType(docType)] {
		errors = append(errors, fmt.Sprintf("invalid documentType: %q", docType))
	}

	status, _ := obj["status"].(string)
	if _, present := obj["status"]; present && !validStatuses[DocumentStatus(status)] {
		errors = append(errors, fmt.Sprintf("invalid status: %q", status))
	}

	year, yearOK := obj["year"].(float64)
	if !yearOK || year < 1945 || year > 2100 {
		errors = append(errors, "year must be a number between 1945 and 2100")
	}

	for _, field := range []string{"issuedDate", "effectiveDate"} {
		value, _ := obj[field].(string)
		if !parseableDate(value) {
			errors = append(errors, fmt.Sprintf("invalid %s: %q", field, value))
		}
	}

	rawArticles, _ := obj["articles"].([]interface{})
	if len(rawArticles) == 0 {
		warnings = append(warnings, "document has no articles")
	}

	articles := p.parseArticles(rawArticles, &errors)

	if len(errors) > 0 {
		return failure(errors, warnings)
	}

	doc := &ParsedDocument{
		CanonicalID:    stringField(obj, "canonicalId"),
		Title:          stringField(obj, "title"),
		DocumentNumber: stringField(obj, "documentNumber"),
		DocumentType:   DocumentType(docType),
		IssuingBody:    stringField(obj, "issuingBody"),
		IssuedDate:     stringField(obj, "issuedDate"),
		EffectiveDate:  stringField(obj, "effectiveDate"),
		Slug:           stringField(obj, "slug"),
		Year:           int(year),
		Status:         DocumentStatus(status),
		Articles:       articles,
	}
	if doc.Status == "" {
		doc.Status = StatusActive
	}
	return ParseResult{Success: true, Document: doc, Errors: errors, Warnings: warnings}
}

// parseArticles walks the article list, accumulating errors. An
// article with a missing or non-numeric articleNumber is reported and
// skipped entirely, but the loop continues so later problems still
// surface.
func (p *JSONParser) parseArticles(rawArticles []interface{}, errors *[]string) []*ParsedArticle {
	articles := make([]*ParsedArticle, 0, len(rawArticles))
	seenArticles := make(map[int]bool)

	for i, rawArticle := range rawArticles {
		article, _ := rawArticle.(map[string]interface{})
		number, ok := numberField(article, "articleNumber")
		if !ok {
			*errors = append(*errors, fmt.Sprintf("article at index %d: missing or non-numeric articleNumber", i))
			continue
		}
		if seenArticles[number] {
			*errors = append(*errors, fmt.Sprintf("duplicate article number: %d", number))
		}
		seenArticles[number] = true

		if _, ok := article["content"]; !ok {
			*errors = append(*errors, fmt.Sprintf("article %d: missing content", number))
		}

		parsed := &ParsedArticle{
			ArticleNumber: number,
			Title:         optionalString(article, "title"),
			Content:       stringField(article, "content"),
			Chapter:       optionalString(article, "chapter"),
			Section:       optionalString(article, "section"),
			Clauses:       []*ParsedClause{},
		}

		rawClauses, _ := article["clauses"].([]interface{})
		parsed.Clauses = p.parseClauses(rawClauses, number, errors)

		articles = append(articles, parsed)
	}

	return articles
}

func (p *JSONParser) parseClauses(rawClauses []interface{}, articleNumber int, errors *[]string) []*ParsedClause {
	clauses := make([]*ParsedClause, 0, len(rawClauses))
	seenClauses := make(map[int]bool)

	for i, rawClause := range rawClauses {
		clause, _ := rawClause.(map[string]interface{})
		number, ok := numberField(clause, "clauseNumber")
		if !ok {
			*errors = append(*errors, fmt.Sprintf("article %d: clause at index %d: missing or non-numeric clauseNumber", articleNumber, i))
			continue
		}
		if seenClauses[number] {
			*errors = append(*errors, fmt.Sprintf("article %d: duplicate clause number: %d", articleNumber, number))
		}
		seenClauses[number] = true

		if _, ok := clause["content"]; !ok {
			*errors = append(*errors, fmt.Sprintf("article %d: clause %d: missing content", articleNumber, number))
		}

		parsed := &ParsedClause{
			ClauseNumber: number,
			Content:      stringField(clause, "content"),
			Points:       []*ParsedPoint{},
		}

		rawPoints, _ := clause["points"].([]interface{})
		parsed.Points = p.parsePoints(rawPoints, articleNumber, number, errors)

		clauses = append(clauses, parsed)
	}

	return clauses
}

func (p *JSONParser) parsePoints(rawPoints []interface{}, articleNumber, clauseNumber int, errors *[]string) []*ParsedPoint {
	points := make([]*ParsedPoint, 0, len(rawPoints))
	seenPoints := make(map[string]bool)

	for i, rawPoint := range rawPoints {
		point, _ := rawPoint.(map[string]interface{})
		letter, ok := point["pointLetter"].(string)
		if !ok || utf8.RuneCountInString(letter) != 1 {
			*errors = append(*errors, fmt.Sprintf("article %d: clause %d: point at index %d: pointLetter must be a single character", articleNumber, clauseNumber, i))
			continue
		}
		if seenPoints[letter] {
			*errors = append(*errors, fmt.Sprintf("article %d: clause %d: duplicate point letter: %s", articleNumber, clauseNumber, letter))
		}
		seenPoints[letter] = true

		if _, ok := point["content"]; !ok {
			*errors = append(*errors, fmt.Sprintf("article %d: clause %d: point %s: missing content", articleNumber, clauseNumber, letter))
		}

		points = append(points, &ParsedPoint{
			PointLetter: letter,
			Content:     stringField(point, "content"),
		})
	}

	return points
}

func stringField(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)
	return s
}

// optionalString distinguishes "absent or non-string" (nil) from a
// present string value.
func optionalString(obj map[string]interface{}, key string) *string {
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

func numberField(obj map[string]interface{}, key string) (int, bool) {
	f, ok := obj[key].(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
