package types

import (
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// RerankingModel selects the model used to rerank retrieval hits.
type RerankingModel struct {
	RerankingProviderName string `json:"reranking_provider_name"`
	RerankingModelName    string `json:"reranking_model_name"`
}

// RetrievalModel configures how a dataset is searched.
type RetrievalModel struct {
	SearchMethod                SearchMethod    `json:"search_method"`
	RerankingEnable             bool            `json:"reranking_enable"`
	RerankingMode               string          `json:"reranking_mode,omitempty"`
	RerankingModel              *RerankingModel `json:"reranking_model,omitempty"`
	Weights                     JSON            `json:"weights,omitempty"`
	TopK                        int             `json:"top_k"`
	ScoreThresholdEnabled       bool            `json:"score_threshold_enabled"`
	ScoreThreshold              *float64        `json:"score_threshold,omitempty"`
	MetadataFilteringConditions *MetadataFilter `json:"metadata_filtering_conditions,omitempty"`
}

// MetadataFilter restricts retrieval by document metadata.
type MetadataFilter struct {
	// LogicalOperator is "and" or "or".
	LogicalOperator string              `json:"logical_operator"`
	Conditions      []MetadataCondition `json:"conditions"`
}

// MetadataCondition compares one metadata field.
type MetadataCondition struct {
	Name               string `json:"name"`
	ComparisonOperator string `json:"comparison_operator"`
	Value              JSON   `json:"value,omitempty"`
}

// Dataset is a knowledge base.
type Dataset struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Description            string            `json:"description"`
	Provider               string            `json:"provider"`
	Permission             Permission        `json:"permission"`
	DataSourceType         string            `json:"data_source_type"`
	IndexingTechnique      IndexingTechnique `json:"indexing_technique"`
	AppCount               int               `json:"app_count"`
	DocumentCount          int               `json:"document_count"`
	WordCount              int               `json:"word_count"`
	CreatedBy              string            `json:"created_by"`
	CreatedAt              Timestamp         `json:"created_at"`
	UpdatedBy              string            `json:"updated_by"`
	UpdatedAt              Timestamp         `json:"updated_at"`
	EmbeddingModel         string            `json:"embedding_model"`
	EmbeddingModelProvider string            `json:"embedding_model_provider"`
	EmbeddingAvailable     bool              `json:"embedding_available"`
	RetrievalModelDict     *RetrievalModel   `json:"retrieval_model_dict,omitempty"`
	Tags                   []Tag             `json:"tags,omitempty"`
	DocForm                DocForm           `json:"doc_form,omitempty"`
}

// CreateDatasetRequest is the body of POST /datasets.
type CreateDatasetRequest struct {
	Name                   string            `json:"name"`
	Description            string            `json:"description,omitempty"`
	IndexingTechnique      IndexingTechnique `json:"indexing_technique,omitempty"`
	Permission             Permission        `json:"permission,omitempty"`
	Provider               string            `json:"provider,omitempty"`
	ExternalKnowledgeAPIID string            `json:"external_knowledge_api_id,omitempty"`
	ExternalKnowledgeID    string            `json:"external_knowledge_id,omitempty"`
	EmbeddingModel         string            `json:"embedding_model,omitempty"`
	EmbeddingModelProvider string            `json:"embedding_model_provider,omitempty"`
	RetrievalModel         *RetrievalModel   `json:"retrieval_model,omitempty"`
}

// UpdateDatasetRequest is the body of PATCH /datasets/{id}. Empty fields
// are left unchanged.
type UpdateDatasetRequest struct {
	Name                   string            `json:"name,omitempty"`
	Description            string            `json:"description,omitempty"`
	IndexingTechnique      IndexingTechnique `json:"indexing_technique,omitempty"`
	Permission             Permission        `json:"permission,omitempty"`
	EmbeddingModel         string            `json:"embedding_model,omitempty"`
	EmbeddingModelProvider string            `json:"embedding_model_provider,omitempty"`
	RetrievalModel         *RetrievalModel   `json:"retrieval_model,omitempty"`
	PartialMemberList      []string          `json:"partial_member_list,omitempty"`
}

// DatasetsParams filters GET /datasets.
type DatasetsParams struct {
	Page       int
	Limit      int
	Keyword    string
	TagIDs     []string
	IncludeAll bool
}

// ToQuery encodes the parameters.
func (p DatasetsParams) ToQuery() url.Values {
	q := pkghttp.PageParams{Page: p.Page, Limit: p.Limit}.ToQuery()
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	for _, id := range p.TagIDs {
		q.Add("tag_ids", id)
	}
	if p.IncludeAll {
		q.Set("include_all", "true")
	}
	return q
}

// DatasetList is a page of datasets.
type DatasetList struct {
	pkghttp.PageMeta
	Data []Dataset `json:"data"`
}

// RetrieveRequest is the body of POST /datasets/{id}/retrieve.
type RetrieveRequest struct {
	Query          string          `json:"query"`
	RetrievalModel *RetrievalModel `json:"retrieval_model,omitempty"`
}

// RetrieveResponse lists the segments that matched a query.
type RetrieveResponse struct {
	Query struct {
		Content string `json:"content"`
	} `json:"query"`
	Records []RetrieveRecord `json:"records"`
}

// RetrieveRecord is one retrieval hit.
type RetrieveRecord struct {
	Segment      Segment      `json:"segment"`
	ChildChunks  []ChildChunk `json:"child_chunks,omitempty"`
	Score        float64      `json:"score"`
	TSNEPosition JSON         `json:"tsne_position,omitempty"`
}
