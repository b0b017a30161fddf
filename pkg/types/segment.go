package types

import (
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Segment is a chunk of a document.
type Segment struct {
	ID            string    `json:"id"`
	Position      int       `json:"position"`
	DocumentID    string    `json:"document_id"`
	Content       string    `json:"content"`
	Answer        string    `json:"answer,omitempty"`
	WordCount     int       `json:"word_count"`
	Tokens        int       `json:"tokens"`
	Keywords      []string  `json:"keywords"`
	IndexNodeID   string    `json:"index_node_id"`
	IndexNodeHash string    `json:"index_node_hash"`
	HitCount      int       `json:"hit_count"`
	Enabled       bool      `json:"enabled"`
	DisabledAt    Timestamp `json:"disabled_at,omitempty"`
	DisabledBy    string    `json:"disabled_by,omitempty"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     Timestamp `json:"created_at"`
	IndexingAt    Timestamp `json:"indexing_at,omitempty"`
	CompletedAt   Timestamp `json:"completed_at,omitempty"`
	Error         string    `json:"error,omitempty"`
	StoppedAt     Timestamp `json:"stopped_at,omitempty"`
	// Document is only set on retrieval hits.
	Document *struct {
		ID             string `json:"id"`
		DataSourceType string `json:"data_source_type"`
		Name           string `json:"name"`
	} `json:"document,omitempty"`
	ChildChunks []ChildChunk `json:"child_chunks,omitempty"`
}

// SegmentInput is the content of a new or edited segment. Answer is used
// by qa_model documents.
type SegmentInput struct {
	Content  string   `json:"content"`
	Answer   string   `json:"answer,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// CreateSegmentsRequest adds segments to a document.
type CreateSegmentsRequest struct {
	Segments []SegmentInput `json:"segments"`
}

// UpdateSegment edits a segment.
type UpdateSegment struct {
	Content               string   `json:"content"`
	Answer                string   `json:"answer,omitempty"`
	Keywords              []string `json:"keywords,omitempty"`
	Enabled               *bool    `json:"enabled,omitempty"`
	RegenerateChildChunks bool     `json:"regenerate_child_chunks,omitempty"`
}

// UpdateSegmentRequest wraps UpdateSegment as Dify expects.
type UpdateSegmentRequest struct {
	Segment UpdateSegment `json:"segment"`
}

// SegmentsParams filters the segments of a document.
type SegmentsParams struct {
	Keyword string
	Status  string
	Page    int
	Limit   int
}

// ToQuery encodes the parameters.
func (p SegmentsParams) ToQuery() url.Values {
	q := pkghttp.PageParams{Page: p.Page, Limit: p.Limit}.ToQuery()
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// SegmentList is returned by list and create.
type SegmentList struct {
	pkghttp.PageMeta
	Data    []Segment `json:"data"`
	DocForm DocForm   `json:"doc_form"`
}

// SegmentResponse is returned by get and update.
type SegmentResponse struct {
	Data    Segment `json:"data"`
	DocForm DocForm `json:"doc_form"`
}

// ChildChunk is a sub-chunk of a hierarchical segment.
type ChildChunk struct {
	ID        string    `json:"id"`
	SegmentID string    `json:"segment_id"`
	Content   string    `json:"content"`
	Position  int       `json:"position"`
	WordCount int       `json:"word_count"`
	Type      string    `json:"type"`
	Score     float64   `json:"score,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// ChildChunkRequest creates or edits a child chunk.
type ChildChunkRequest struct {
	Content string `json:"content"`
}

// ChildChunkResponse wraps a single child chunk.
type ChildChunkResponse struct {
	Data ChildChunk `json:"data"`
}

// ChildChunksParams filters the child chunks of a segment.
type ChildChunksParams struct {
	Keyword string
	Page    int
	Limit   int
}

// ToQuery encodes the parameters.
func (p ChildChunksParams) ToQuery() url.Values {
	return DocumentsParams(p).ToQuery()
}

// ChildChunkList is a page of child chunks.
type ChildChunkList struct {
	pkghttp.PageMeta
	Data       []ChildChunk `json:"data"`
	TotalPages int          `json:"total_pages"`
}
