package dify

import (
	"context"
	"io"

	"github.com/jdziat/dify-go/pkg/api/chat"
	"github.com/jdziat/dify-go/pkg/api/completion"
	"github.com/jdziat/dify-go/pkg/api/datasets"
	"github.com/jdziat/dify-go/pkg/api/documents"
	"github.com/jdziat/dify-go/pkg/api/workflows"
	"github.com/jdziat/dify-go/pkg/types"
)

// ChatClient defines the chat app operations. It is implemented by the
// client returned from Client.Chat and can be used for dependency
// injection and testing.
//
// Example:
//
//	func Answer(ctx context.Context, chat dify.ChatClient, q string) (string, error) {
//	    resp, err := chat.Send(ctx, types.ChatRequest{Query: q, User: "svc"})
//	    if err != nil {
//	        return "", err
//	    }
//	    return resp.Answer, nil
//	}
type ChatClient interface {
	Send(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	Stream(ctx context.Context, req types.ChatRequest) (*types.EventStream, error)
	Stop(ctx context.Context, taskID, user string) (*types.Result, error)
	Suggested(ctx context.Context, messageID, user string) ([]string, error)
	Feedback(ctx context.Context, messageID string, req types.FeedbackRequest) (*types.Result, error)
	Messages(ctx context.Context, params types.MessagesParams) (*types.MessageList, error)
	Conversations(ctx context.Context, params types.ConversationsParams) (*types.ConversationList, error)
	DeleteConversation(ctx context.Context, conversationID, user string) error
	RenameConversation(ctx context.Context, conversationID string, req types.RenameConversationRequest) (*types.Conversation, error)
}

var _ ChatClient = (*chat.Client)(nil)

// CompletionClient defines the text generation app operations.
type CompletionClient interface {
	Send(ctx context.Context, req types.CompletionRequest) (*types.CompletionResponse, error)
	Stream(ctx context.Context, req types.CompletionRequest) (*types.EventStream, error)
	Stop(ctx context.Context, taskID, user string) (*types.Result, error)
}

var _ CompletionClient = (*completion.Client)(nil)

// WorkflowClient defines the workflow app operations.
type WorkflowClient interface {
	Run(ctx context.Context, req types.WorkflowRequest) (*types.WorkflowResponse, error)
	RunStream(ctx context.Context, req types.WorkflowRequest) (*types.EventStream, error)
	GetRun(ctx context.Context, runID string) (*types.WorkflowRun, error)
	Stop(ctx context.Context, taskID, user string) (*types.Result, error)
	Logs(ctx context.Context, params types.WorkflowLogsParams) (*types.WorkflowLogList, error)
}

var _ WorkflowClient = (*workflows.Client)(nil)

// DatasetClient defines the knowledge base operations.
type DatasetClient interface {
	Create(ctx context.Context, req types.CreateDatasetRequest) (*types.Dataset, error)
	List(ctx context.Context, params types.DatasetsParams) (*types.DatasetList, error)
	Get(ctx context.Context, datasetID string) (*types.Dataset, error)
	Delete(ctx context.Context, datasetID string) error
	Retrieve(ctx context.Context, datasetID string, req types.RetrieveRequest) (*types.RetrieveResponse, error)
}

var _ DatasetClient = (*datasets.Client)(nil)

// DocumentClient defines the document ingestion operations.
type DocumentClient interface {
	CreateByText(ctx context.Context, datasetID string, req types.CreateDocumentByTextRequest) (*types.DocumentResponse, error)
	CreateByFile(ctx context.Context, datasetID, filename string, r io.Reader, opts types.DocumentFileOptions) (*types.DocumentResponse, error)
	IndexingStatus(ctx context.Context, datasetID, batch string) (*types.IndexingStatusList, error)
	Delete(ctx context.Context, datasetID, documentID string) error
}

var _ DocumentClient = (*documents.Client)(nil)

// KnowledgeClient groups the knowledge base clients. It is implemented by
// *Client.
type KnowledgeClient interface {
	Datasets() *datasets.Client
	Documents() *documents.Client
}

var _ KnowledgeClient = (*Client)(nil)
