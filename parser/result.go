// Package parser converts raw legal text or pre-structured JSON into a
// validated document tree (document → articles → clauses → points).
// Both parsers produce the same ParseResult shape and enforce the same
// invariants, so the import pipeline can consume either interchangeably.
package parser

// DocumentType is the kind of legal document.
type DocumentType string

const (
	TypeLuat      DocumentType = "luat"       // law passed by the National Assembly
	TypeNghiDinh  DocumentType = "nghi_dinh"  // government decree
	TypeThongTu   DocumentType = "thong_tu"   // ministerial circular
	TypeQuyetDinh DocumentType = "quyet_dinh" // decision
)

// DocumentStatus is the lifecycle status of a document.
type DocumentStatus string

const (
	StatusActive   DocumentStatus = "active"
	StatusAmended  DocumentStatus = "amended"
	StatusRepealed DocumentStatus = "repealed"
)

var validDocumentTypes = map[DocumentType]bool{
	TypeLuat:      true,
	TypeNghiDinh:  true,
	TypeThongTu:   true,
	TypeQuyetDinh: true,
}

var validStatuses = map[DocumentStatus]bool{
	StatusActive:   true,
	StatusAmended:  true,
	StatusRepealed: true,
}

// ParseResult is the outcome of a parse. Errors and warnings accumulate
// independently: any error forces Success=false and Document=nil, while
// warnings alone never block success. A failed result never carries a
// partial document.
type ParseResult struct {
	Success  bool            `json:"success"`
	Document *ParsedDocument `json:"document"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
}

// ParsedDocument is the normalized output tree. It is a pure
// construction artifact: built once per parse, never mutated, consumed
// by the import orchestrator which assigns canonical IDs and persists.
type ParsedDocument struct {
	CanonicalID    string           `json:"canonicalId"`
	Title          string           `json:"title"`
	DocumentNumber string           `json:"documentNumber"`
	DocumentType   DocumentType     `json:"documentType"`
	IssuingBody    string           `json:"issuingBody"`
	IssuedDate     string           `json:"issuedDate"`
	EffectiveDate  string           `json:"effectiveDate"`
	Slug           string           `json:"slug"`
	Year           int              `json:"year"`
	Status         DocumentStatus   `json:"status"`
	Articles       []*ParsedArticle `json:"articles"`
}

// ParsedArticle is one Điều. Chapter and Section are inherited from the
// most recent preceding headers during text parsing.
type ParsedArticle struct {
	ArticleNumber int             `json:"articleNumber"`
	Title         *string         `json:"title"`
	Content       string          `json:"content"`
	Chapter       *string         `json:"chapter"`
	Section       *string         `json:"section"`
	Clauses       []*ParsedClause `json:"clauses"`
}

// ParsedClause is one Khoản.
type ParsedClause struct {
	ClauseNumber int            `json:"clauseNumber"`
	Content      string         `json:"content"`
	Points       []*ParsedPoint `json:"points"`
}

// ParsedPoint is one Điểm.
type ParsedPoint struct {
	PointLetter string `json:"pointLetter"`
	Content     string `json:"content"`
}

func failure(errs, warnings []string) ParseResult {
	return ParseResult{Success: false, Document: nil, Errors: errs, Warnings: warnings}
}
