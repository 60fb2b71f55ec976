package editais

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SentinelDate is the display placeholder for records without a
// recognized date.
const SentinelDate = "Data não encontrada"

// Kind classifies the target of a record's link.
type Kind string

// Record kinds, derived from the link's file extension.
const (
	KindWeb Kind = "web"
	KindPDF Kind = "pdf"
	KindDoc Kind = "doc"
)

// KindForLink classifies a link by its file extension, ignoring query
// strings and fragments.
func KindForLink(link string) Kind {
	lowered := strings.ToLower(link)
	if i := strings.IndexAny(lowered, "?#"); i >= 0 {
		lowered = lowered[:i]
	}
	switch {
	case strings.HasSuffix(lowered, ".pdf"):
		return KindPDF
	case strings.HasSuffix(lowered, ".doc"), strings.HasSuffix(lowered, ".docx"):
		return KindDoc
	default:
		return KindWeb
	}
}

// Record represents a candidate opportunity extracted from a source page.
// Records are immutable once constructed; identity is the link URL.
//
// JSON field names match the export contract consumed by the rendering
// and export layers.
type Record struct {
	Title          string `json:"titulo"`
	Link           string `json:"link"`
	Source         string `json:"fonte"`
	Excerpt        string `json:"trecho"`
	Date           string `json:"data"`
	Kind           Kind   `json:"tipo"`
	MatchedKeyword string `json:"palavraChave"`
	Relevance      int    `json:"relevancia"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Link == "" {
		return Errorf(EINVALID, "record link required")
	}
	if r.Title == "" && r.Excerpt == "" {
		return Errorf(EINVALID, "record title or excerpt required")
	}
	return nil
}

// Query represents a free-text search. Any term is accepted; the reference
// keyword tables categorize results but never restrict what may be searched.
type Query struct {
	Term string `json:"term"`
}

// Terms splits the query on whitespace and returns the lowercased sub-terms
// longer than two characters. These are the units used for matching.
func (q Query) Terms() []string {
	fields := strings.Fields(strings.ToLower(q.Term))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) > 2 {
			terms = append(terms, f)
		}
	}
	return terms
}

// Session identifies one scan across the selected sources. It replaces
// ambient search state: rendering and export receive the session value
// explicitly.
type Session struct {
	ID        string    `json:"id"`
	Term      string    `json:"term"`
	StartedAt time.Time `json:"startedAt"`
}

// ScanSummary is one line of scan history: the session plus its outcome
// counts.
type ScanSummary struct {
	Session        Session `json:"session"`
	SourcesScanned int     `json:"sourcesScanned"`
	RecordsFound   int     `json:"recordsFound"`
}

// NewSession creates a session for the given search term.
func NewSession(term string) Session {
	return Session{
		ID:        uuid.NewString(),
		Term:      term,
		StartedAt: time.Now(),
	}
}
