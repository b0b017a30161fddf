package dify

import (
	pkghttp "github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// JSON is an alias for any, representing any JSON value.
type JSON = types.JSON

// JSONObject is an alias for map[string]any, used for app inputs and
// metadata.
type JSONObject = types.JSONObject

// Request payloads re-exported from pkg/types.
type (
	ChatRequest                 = types.ChatRequest
	CompletionRequest           = types.CompletionRequest
	WorkflowRequest             = types.WorkflowRequest
	FeedbackRequest             = types.FeedbackRequest
	TextToAudioRequest          = types.TextToAudioRequest
	CreateDatasetRequest        = types.CreateDatasetRequest
	RetrieveRequest             = types.RetrieveRequest
	CreateDocumentByTextRequest = types.CreateDocumentByTextRequest
	DocumentFileOptions         = types.DocumentFileOptions
	FileInput                   = types.FileInput
)

// Response payloads re-exported from pkg/types.
type (
	ChatResponse       = types.ChatResponse
	CompletionResponse = types.CompletionResponse
	WorkflowResponse   = types.WorkflowResponse
	Conversation       = types.Conversation
	Message            = types.Message
	UploadedFile       = types.UploadedFile
	Dataset            = types.Dataset
	Document           = types.Document
	Segment            = types.Segment
	RetrieveRecord     = types.RetrieveRecord
	Usage              = types.Usage
)

// Streaming types re-exported from pkg/types.
type (
	EventType      = types.EventType
	StreamEvent    = types.StreamEvent
	EventStream    = types.EventStream
	StreamHandler  = types.StreamHandler
	ChatResult     = types.ChatResult
	WorkflowResult = types.WorkflowResult
)

// Enumerations re-exported from pkg/types.
type (
	ResponseMode      = types.ResponseMode
	FileType          = types.FileType
	TransferMethod    = types.TransferMethod
	Rating            = types.Rating
	IndexingTechnique = types.IndexingTechnique
	WorkflowStatus    = types.WorkflowStatus
)

// Pagination types re-exported from pkg/http.
type (
	PageParams   = pkghttp.PageParams
	CursorParams = pkghttp.CursorParams
	PageMeta     = pkghttp.PageMeta
)

// Response modes.
const (
	ResponseModeBlocking  = types.ResponseModeBlocking
	ResponseModeStreaming = types.ResponseModeStreaming
)

// Stream helpers re-exported from pkg/types.
var (
	Dispatch        = types.Dispatch
	CollectChat     = types.CollectChat
	CollectWorkflow = types.CollectWorkflow
)
