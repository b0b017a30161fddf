package types

// ResponseMode selects blocking or streaming replies for chat, completion
// and workflow runs.
type ResponseMode string

const (
	ResponseModeBlocking  ResponseMode = "blocking"
	ResponseModeStreaming ResponseMode = "streaming"
)

// String returns the string representation of the response mode.
func (m ResponseMode) String() string { return string(m) }

// FileType is the kind of file attached to a message or workflow input.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeAudio    FileType = "audio"
	FileTypeVideo    FileType = "video"
	FileTypeCustom   FileType = "custom"
)

// String returns the string representation of the file type.
func (f FileType) String() string { return string(f) }

// TransferMethod describes how Dify obtains an attached file.
type TransferMethod string

const (
	TransferMethodRemoteURL TransferMethod = "remote_url"
	TransferMethodLocalFile TransferMethod = "local_file"
)

// String returns the string representation of the transfer method.
func (m TransferMethod) String() string { return string(m) }

// Rating is message feedback. An empty rating revokes earlier feedback.
type Rating string

const (
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

// String returns the string representation of the rating.
func (r Rating) String() string { return string(r) }

// IndexingTechnique is how a dataset indexes its documents.
type IndexingTechnique string

const (
	IndexingHighQuality IndexingTechnique = "high_quality"
	IndexingEconomy     IndexingTechnique = "economy"
)

// String returns the string representation of the indexing technique.
func (t IndexingTechnique) String() string { return string(t) }

// Permission controls who can see a dataset.
type Permission string

const (
	PermissionOnlyMe         Permission = "only_me"
	PermissionAllTeamMembers Permission = "all_team_members"
	PermissionPartialMembers Permission = "partial_members"
)

// String returns the string representation of the permission.
func (p Permission) String() string { return string(p) }

// DocForm is the chunking structure of a document.
type DocForm string

const (
	DocFormText         DocForm = "text_model"
	DocFormHierarchical DocForm = "hierarchical_model"
	DocFormQA           DocForm = "qa_model"
)

// String returns the string representation of the document form.
func (f DocForm) String() string { return string(f) }

// DocumentStatusAction changes the state of documents in bulk.
type DocumentStatusAction string

const (
	DocumentEnable    DocumentStatusAction = "enable"
	DocumentDisable   DocumentStatusAction = "disable"
	DocumentArchive   DocumentStatusAction = "archive"
	DocumentUnarchive DocumentStatusAction = "un_archive"
)

// String returns the string representation of the action.
func (a DocumentStatusAction) String() string { return string(a) }

// Valid reports whether a is one of the known actions.
func (a DocumentStatusAction) Valid() bool {
	switch a {
	case DocumentEnable, DocumentDisable, DocumentArchive, DocumentUnarchive:
		return true
	}
	return false
}

// SearchMethod is the retrieval strategy of a dataset.
type SearchMethod string

const (
	SearchKeyword  SearchMethod = "keyword_search"
	SearchSemantic SearchMethod = "semantic_search"
	SearchFullText SearchMethod = "full_text_search"
	SearchHybrid   SearchMethod = "hybrid_search"
)

// String returns the string representation of the search method.
func (m SearchMethod) String() string { return string(m) }

// WorkflowStatus is the state of a workflow run.
type WorkflowStatus string

const (
	WorkflowRunning          WorkflowStatus = "running"
	WorkflowSucceeded        WorkflowStatus = "succeeded"
	WorkflowFailed           WorkflowStatus = "failed"
	WorkflowStopped          WorkflowStatus = "stopped"
	WorkflowPartialSucceeded WorkflowStatus = "partial-succeeded"
)

// String returns the string representation of the status.
func (s WorkflowStatus) String() string { return string(s) }

// Done reports whether the run reached a final state.
func (s WorkflowStatus) Done() bool {
	return s != "" && s != WorkflowRunning
}

// MetadataType is the value type of a dataset metadata field.
type MetadataType string

const (
	MetadataString MetadataType = "string"
	MetadataNumber MetadataType = "number"
	MetadataTime   MetadataType = "time"
)

// String returns the string representation of the metadata type.
func (t MetadataType) String() string { return string(t) }

// AnnotationReplyAction toggles annotation replies for an app.
type AnnotationReplyAction string

const (
	AnnotationReplyEnable  AnnotationReplyAction = "enable"
	AnnotationReplyDisable AnnotationReplyAction = "disable"
)

// String returns the string representation of the action.
func (a AnnotationReplyAction) String() string { return string(a) }

// Valid reports whether a is enable or disable.
func (a AnnotationReplyAction) Valid() bool {
	return a == AnnotationReplyEnable || a == AnnotationReplyDisable
}
