package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Metadata supplies every ParsedDocument field except the article tree,
// which the text parser reconstructs from the prose itself. It usually
// comes from the admin upload form or the CLI import tool.
type Metadata struct {
	CanonicalID    string         `json:"canonicalId"`
	Title          string         `json:"title"`
	DocumentNumber string         `json:"documentNumber"`
	DocumentType   DocumentType   `json:"documentType"`
	IssuingBody    string         `json:"issuingBody"`
	IssuedDate     string         `json:"issuedDate"`
	EffectiveDate  string         `json:"effectiveDate"`
	Slug           string         `json:"slug"`
	Year           int            `json:"year"`
	Status         DocumentStatus `json:"status"`
}

// parseState tracks which node kind is currently open.
type parseState int

const (
	stateIdle parseState = iota
	stateArticle
	stateClause
	statePoint
)

// TextParser reconstructs chapter/article/clause/point structure from
// unstructured Vietnamese legal prose with a single forward pass over
// lines. Safe for concurrent use; all mutable state is per call.
type TextParser struct {
	chapterPattern *regexp.Regexp
	sectionPattern *regexp.Regexp
	articlePattern *regexp.Regexp
	clausePattern  *regexp.Regexp
	pointPattern   *regexp.Regexp
}

// NewTextParser creates a TextParser with all patterns compiled.
func NewTextParser() *TextParser {
	return &TextParser{
		// "Chương I", "Chương II NHỮNG QUY ĐỊNH CHUNG"
		chapterPattern: regexp.MustCompile(`^Chương\s+\S+`),
		// "Mục 1. AN TOÀN LAO ĐỘNG"
		sectionPattern: regexp.MustCompile(`^Mục\s+\S+`),
		// "Điều 35. Quyền đơn phương chấm dứt hợp đồng" or "Điều 35."
		articlePattern: regexp.MustCompile(`^Điều\s+(\d+)\s*[.:]\s*(.*)$`),
		// "1. Người lao động có quyền..."
		clausePattern: regexp.MustCompile(`^(\d+)\.\s+(.+)$`),
		// "a) Không được trả đủ lương..." — includes "đ)"
		pointPattern: regexp.MustCompile(`^([a-zđ])\)\s*(.+)$`),
	}
}

// textRun holds the per-call state of one parse: the machine state, the
// carried chapter/section context and the currently open node chain.
type textRun struct {
	state   parseState
	chapter *string
	section *string

	articles []*ParsedArticle

	article        *ParsedArticle
	articleContent strings.Builder
	lastClause     int

	clause        *ParsedClause
	clauseContent strings.Builder

	point        *ParsedPoint
	pointContent strings.Builder
}

// Parse runs the line state machine over text and attaches the metadata
// record. Structural problems accumulate into errors/warnings; any
// error yields Success=false with a nil document.
func (p *TextParser) Parse(text string, meta Metadata) ParseResult {
	if strings.TrimSpace(text) == "" {
		return failure([]string{"document text is empty"}, nil)
	}

	var errors, warnings []string
	errors = append(errors, validateMetadata(meta)...)

	run := &textRun{state: stateIdle}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p.consumeLine(run, line)
	}

	// End of input closes whatever chain is still open.
	run.finalizeArticle()

	if len(run.articles) == 0 {
		warnings = append(warnings, "document has no articles")
	}

	seen := make(map[int]bool)
	for _, a := range run.articles {
		if seen[a.ArticleNumber] {
			errors = append(errors, fmt.Sprintf("duplicate article number: %d", a.ArticleNumber))
		}
		seen[a.ArticleNumber] = true
	}

	if len(errors) > 0 {
		return failure(errors, warnings)
	}

	doc := documentFromMetadata(meta)
	doc.Articles = run.articles
	return ParseResult{Success: true, Document: doc, Errors: errors, Warnings: warnings}
}

// consumeLine classifies one trimmed, non-blank line and advances the
// state machine.
func (p *TextParser) consumeLine(run *textRun, line string) {
	// Chapter and section headers only update carried context. A new
	// chapter invalidates the current section.
	if p.chapterPattern.MatchString(line) {
		chapter := line
		run.chapter = &chapter
		run.section = nil
		return
	}
	if p.sectionPattern.MatchString(line) {
		section := line
		run.section = &section
		return
	}

	if m := p.articlePattern.FindStringSubmatch(line); m != nil {
		run.finalizeArticle()
		number, _ := strconv.Atoi(m[1])
		article := &ParsedArticle{
			ArticleNumber: number,
			Chapter:       run.chapter,
			Section:       run.section,
			Clauses:       []*ParsedClause{},
		}
		if title := strings.TrimSpace(m[2]); title != "" {
			article.Title = &title
		}
		run.article = article
		run.state = stateArticle
		return
	}

	if run.state != stateIdle {
		if m := p.clausePattern.FindStringSubmatch(line); m != nil {
			number, _ := strconv.Atoi(m[1])
			// Numbered lists inside prose look exactly like clause
			// headers. The only disambiguation signal is sequential
			// numbering: a real clause is last+1, or the first clause
			// of its article.
			if run.lastClause == 0 || number == run.lastClause+1 {
				run.finalizeClause()
				run.clause = &ParsedClause{ClauseNumber: number, Points: []*ParsedPoint{}}
				run.clauseContent.WriteString(m[2])
				run.lastClause = number
				run.state = stateClause
				return
			}
		}
	}

	if run.state == stateClause || run.state == statePoint {
		if m := p.pointPattern.FindStringSubmatch(line); m != nil {
			run.finalizePoint()
			run.point = &ParsedPoint{PointLetter: m[1]}
			run.pointContent.WriteString(m[2])
			run.state = statePoint
			return
		}
	}

	run.appendContinuation(line)
}

// appendContinuation space-joins a non-header line onto the deepest
// open node. Lines before the first article are discarded.
func (run *textRun) appendContinuation(line string) {
	switch {
	case run.point != nil:
		join(&run.pointContent, line)
	case run.clause != nil:
		join(&run.clauseContent, line)
	case run.article != nil:
		join(&run.articleContent, line)
	}
}

func join(b *strings.Builder, line string) {
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	b.WriteString(line)
}

// Finalization always runs inner to outer: point, then clause, then
// article. Content is trimmed once, at finalize time.

func (run *textRun) finalizePoint() {
	if run.point == nil {
		return
	}
	run.point.Content = strings.TrimSpace(run.pointContent.String())
	run.clause.Points = append(run.clause.Points, run.point)
	run.point = nil
	run.pointContent.Reset()
}

func (run *textRun) finalizeClause() {
	run.finalizePoint()
	if run.clause == nil {
		return
	}
	run.clause.Content = strings.TrimSpace(run.clauseContent.String())
	run.article.Clauses = append(run.article.Clauses, run.clause)
	run.clause = nil
	run.clauseContent.Reset()
}

func (run *textRun) finalizeArticle() {
	run.finalizeClause()
	if run.article == nil {
		return
	}
	run.article.Content = strings.TrimSpace(run.articleContent.String())
	run.articles = append(run.articles, run.article)
	run.article = nil
	run.articleContent.Reset()
	run.lastClause = 0
}

// validateMetadata applies the document-level invariants shared with
// the JSON parser: valid enums, parseable dates, year range, and a
// non-empty canonical ID.
func validateMetadata(meta Metadata) []string {
	var errors []string
	if meta.CanonicalID == "" {
		errors = append(errors, "missing required field: canonicalId")
	}
	if !validDocumentTypes[meta.DocumentType] {
		errors = append(errors, fmt.Sprintf("invalid documentType: %q", meta.DocumentType))
	}
	if meta.Status != "" && !validStatuses[meta.Status] {
		errors = append(errors, fmt.Sprintf("invalid status: %q", meta.Status))
	}
	if meta.Year < 1945 || meta.Year > 2100 {
		errors = append(errors, "year must be a number between 1945 and 2100")
	}
	if !parseableDate(meta.IssuedDate) {
		errors = append(errors, fmt.Sprintf("invalid issuedDate: %q", meta.IssuedDate))
	}
	if !parseableDate(meta.EffectiveDate) {
		errors = append(errors, fmt.Sprintf("invalid effectiveDate: %q", meta.EffectiveDate))
	}
	return errors
}

func documentFromMetadata(meta Metadata) *ParsedDocument {
	status := meta.Status
	if status == "" {
		status = StatusActive
	}
	return &ParsedDocument{
		CanonicalID:    meta.CanonicalID,
		Title:          meta.Title,
		DocumentNumber: meta.DocumentNumber,
		DocumentType:   meta.DocumentType,
		IssuingBody:    meta.IssuingBody,
		IssuedDate:     meta.IssuedDate,
		EffectiveDate:  meta.EffectiveDate,
		Slug:           meta.Slug,
		Year:           meta.Year,
		Status:         status,
		Articles:       []*ParsedArticle{},
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
