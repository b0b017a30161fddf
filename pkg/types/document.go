package types

import (
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Segmentation configures how text is split into segments.
type Segmentation struct {
	Separator    string `json:"separator,omitempty"`
	MaxTokens    int    `json:"max_tokens"`
	ChunkOverlap int    `json:"chunk_overlap,omitempty"`
}

// PreProcessingRule toggles a cleaning step such as
// remove_extra_spaces or remove_urls_emails.
type PreProcessingRule struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// ProcessRules are the custom cleaning and segmentation rules.
type ProcessRules struct {
	PreProcessingRules   []PreProcessingRule `json:"pre_processing_rules,omitempty"`
	Segmentation         *Segmentation       `json:"segmentation,omitempty"`
	ParentMode           string              `json:"parent_mode,omitempty"`
	SubchunkSegmentation *Segmentation       `json:"subchunk_segmentation,omitempty"`
}

// ProcessRule selects automatic or custom document processing.
type ProcessRule struct {
	// Mode is automatic, custom or hierarchical.
	Mode  string        `json:"mode"`
	Rules *ProcessRules `json:"rules,omitempty"`
}

// AutomaticProcessing is the default processing rule.
var AutomaticProcessing = &ProcessRule{Mode: "automatic"}

// Document is a file or text inside a dataset.
type Document struct {
	ID                   string          `json:"id"`
	Position             int             `json:"position"`
	DataSourceType       string          `json:"data_source_type"`
	DataSourceInfo       JSON            `json:"data_source_info,omitempty"`
	DatasetProcessRuleID string          `json:"dataset_process_rule_id"`
	Name                 string          `json:"name"`
	CreatedFrom          string          `json:"created_from"`
	CreatedBy            string          `json:"created_by"`
	CreatedAt            Timestamp       `json:"created_at"`
	Tokens               int             `json:"tokens"`
	IndexingStatus       string          `json:"indexing_status"`
	Error                string          `json:"error,omitempty"`
	Enabled              bool            `json:"enabled"`
	DisabledAt           Timestamp       `json:"disabled_at,omitempty"`
	DisabledBy           string          `json:"disabled_by,omitempty"`
	Archived             bool            `json:"archived"`
	DisplayStatus        string          `json:"display_status,omitempty"`
	WordCount            int             `json:"word_count"`
	HitCount             int             `json:"hit_count"`
	DocForm              DocForm         `json:"doc_form"`
	DocMetadata          []MetadataValue `json:"doc_metadata,omitempty"`
}

// DocumentResponse is returned by the create and update endpoints.
// Batch identifies the indexing job for IndexingStatus.
type DocumentResponse struct {
	Document Document `json:"document"`
	Batch    string   `json:"batch"`
}

// CreateDocumentByTextRequest is the body of create-by-text.
type CreateDocumentByTextRequest struct {
	Name                   string            `json:"name"`
	Text                   string            `json:"text"`
	IndexingTechnique      IndexingTechnique `json:"indexing_technique,omitempty"`
	DocForm                DocForm           `json:"doc_form,omitempty"`
	DocLanguage            string            `json:"doc_language,omitempty"`
	ProcessRule            *ProcessRule      `json:"process_rule,omitempty"`
	RetrievalModel         *RetrievalModel   `json:"retrieval_model,omitempty"`
	EmbeddingModel         string            `json:"embedding_model,omitempty"`
	EmbeddingModelProvider string            `json:"embedding_model_provider,omitempty"`
}

// UpdateDocumentByTextRequest is the body of update-by-text.
type UpdateDocumentByTextRequest struct {
	Name        string       `json:"name,omitempty"`
	Text        string       `json:"text,omitempty"`
	ProcessRule *ProcessRule `json:"process_rule,omitempty"`
}

// DocumentFileOptions is the "data" part of create-by-file and
// update-by-file.
type DocumentFileOptions struct {
	OriginalDocumentID     string            `json:"original_document_id,omitempty"`
	IndexingTechnique      IndexingTechnique `json:"indexing_technique,omitempty"`
	DocForm                DocForm           `json:"doc_form,omitempty"`
	DocLanguage            string            `json:"doc_language,omitempty"`
	ProcessRule            *ProcessRule      `json:"process_rule,omitempty"`
	RetrievalModel         *RetrievalModel   `json:"retrieval_model,omitempty"`
	EmbeddingModel         string            `json:"embedding_model,omitempty"`
	EmbeddingModelProvider string            `json:"embedding_model_provider,omitempty"`
}

// IndexingStatus is the progress of one document in a batch.
type IndexingStatus struct {
	ID                   string    `json:"id"`
	IndexingStatus       string    `json:"indexing_status"`
	ProcessingStartedAt  Timestamp `json:"processing_started_at"`
	ParsingCompletedAt   Timestamp `json:"parsing_completed_at"`
	CleaningCompletedAt  Timestamp `json:"cleaning_completed_at"`
	SplittingCompletedAt Timestamp `json:"splitting_completed_at"`
	CompletedAt          Timestamp `json:"completed_at"`
	PausedAt             Timestamp `json:"paused_at"`
	Error                string    `json:"error,omitempty"`
	StoppedAt            Timestamp `json:"stopped_at"`
	CompletedSegments    int       `json:"completed_segments"`
	TotalSegments        int       `json:"total_segments"`
}

// Done reports whether indexing finished, failed or stopped.
func (s IndexingStatus) Done() bool {
	switch s.IndexingStatus {
	case "completed", "error", "stopped", "paused":
		return true
	}
	return false
}

// IndexingStatusList is the reply of the indexing-status endpoint.
type IndexingStatusList struct {
	Data []IndexingStatus `json:"data"`
}

// DocumentsParams filters the documents of a dataset.
type DocumentsParams struct {
	Keyword string
	Page    int
	Limit   int
}

// ToQuery encodes the parameters.
func (p DocumentsParams) ToQuery() url.Values {
	q := pkghttp.PageParams{Page: p.Page, Limit: p.Limit}.ToQuery()
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	return q
}

// DocumentList is a page of documents.
type DocumentList struct {
	pkghttp.PageMeta
	Data []Document `json:"data"`
}

// DocumentDetail is the reply of GET /datasets/{id}/documents/{doc_id}.
type DocumentDetail struct {
	Document
	DataSourceDetailDict JSON         `json:"data_source_detail_dict,omitempty"`
	DatasetProcessRule   *ProcessRule `json:"dataset_process_rule,omitempty"`
	DocumentProcessRule  *ProcessRule `json:"document_process_rule,omitempty"`
	DocType              string       `json:"doc_type,omitempty"`
	SegmentCount         int          `json:"segment_count"`
	AverageSegmentLength int          `json:"average_segment_length"`
	IndexingLatency      float64      `json:"indexing_latency"`
	CompletedAt          Timestamp    `json:"completed_at,omitempty"`
	UpdatedAt            Timestamp    `json:"updated_at,omitempty"`
}

// DocumentMetadataMode selects what GET document returns: all, only or without.
type DocumentMetadataMode string

const (
	DocumentMetadataAll     DocumentMetadataMode = "all"
	DocumentMetadataOnly    DocumentMetadataMode = "only"
	DocumentMetadataWithout DocumentMetadataMode = "without"
)

// DocumentStatusRequest is the body of the batch status endpoint.
type DocumentStatusRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

// UploadFileInfo describes the file behind a document.
type UploadFileInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	Extension   string    `json:"extension"`
	URL         string    `json:"url"`
	DownloadURL string    `json:"download_url"`
	MimeType    string    `json:"mime_type"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   Timestamp `json:"created_at"`
}
