package types

import pkghttp "github.com/jdziat/dify-go/pkg/http"

// Annotation is a curated question and answer pair.
type Annotation struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	HitCount  int       `json:"hit_count"`
	CreatedAt Timestamp `json:"created_at"`
}

// AnnotationList is a page of annotations.
type AnnotationList struct {
	pkghttp.PageMeta
	Data []Annotation `json:"data"`
}

// AnnotationRequest creates or updates an annotation.
type AnnotationRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnnotationReplyRequest configures annotation replies when enabling them.
type AnnotationReplyRequest struct {
	EmbeddingProviderName string  `json:"embedding_provider_name,omitempty"`
	EmbeddingModelName    string  `json:"embedding_model_name,omitempty"`
	ScoreThreshold        float64 `json:"score_threshold"`
}

// AnnotationJob tracks the asynchronous enable or disable job.
type AnnotationJob struct {
	JobID     string `json:"job_id"`
	JobStatus string `json:"job_status"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// Done reports whether the job finished, successfully or not.
func (j AnnotationJob) Done() bool {
	return j.JobStatus == "completed" || j.JobStatus == "error"
}
