// Package chat provides the Dify chat API client for chatbot, agent and
// chatflow apps: messages, conversations, feedback and conversation
// variables.
package chat

import (
	"context"
	"net/url"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the chat API.
const (
	MessagesEndpoint      = "/chat-messages"
	StopEndpoint          = "/chat-messages/%s/stop"
	HistoryEndpoint       = "/messages"
	SuggestedEndpoint     = "/messages/%s/suggested"
	FeedbackEndpoint      = "/messages/%s/feedbacks"
	ConversationsEndpoint = "/conversations"
	ConversationEndpoint  = "/conversations/%s"
	RenameEndpoint        = "/conversations/%s/name"
	VariablesEndpoint     = "/conversations/%s/variables"
	VariableEndpoint      = "/conversations/%s/variables/%s"
)

// Client handles chat-related API operations.
type Client struct {
	http http.Doer
}

// New creates a new chat client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

func validate(req *types.ChatRequest) error {
	if err := errors.RequireFields("query", req.Query, "user", req.User); err != nil {
		return err
	}
	if req.Inputs == nil {
		req.Inputs = types.JSONObject{}
	}
	return nil
}

// Send sends a message and waits for the full answer.
func (c *Client) Send(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	req.ResponseMode = types.ResponseModeBlocking

	var out types.ChatResponse
	if err := c.http.Post(ctx, MessagesEndpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stream sends a message and returns the answer as it is generated.
// The caller must drain or close the stream.
func (c *Client) Stream(ctx context.Context, req types.ChatRequest) (*types.EventStream, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	req.ResponseMode = types.ResponseModeStreaming

	events, err := c.http.Stream(ctx, MessagesEndpoint, req)
	if err != nil {
		return nil, err
	}
	return types.NewEventStream(events), nil
}

// Stop interrupts a streaming answer. It only works in streaming mode.
func (c *Client) Stop(ctx context.Context, taskID, user string) (*types.Result, error) {
	if err := errors.RequireFields("task_id", taskID, "user", user); err != nil {
		return nil, err
	}
	var out types.Result
	if err := c.http.Post(ctx, http.Pathf(StopEndpoint, taskID), types.StopRequest{User: user}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggested returns follow-up questions for a message.
func (c *Client) Suggested(ctx context.Context, messageID, user string) ([]string, error) {
	if err := errors.RequireFields("message_id", messageID, "user", user); err != nil {
		return nil, err
	}
	query := url.Values{"user": {user}}
	var out types.SuggestedResponse
	if err := c.http.Get(ctx, http.Pathf(SuggestedEndpoint, messageID), query, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Feedback rates a message. A nil rating revokes earlier feedback.
func (c *Client) Feedback(ctx context.Context, messageID string, req types.FeedbackRequest) (*types.Result, error) {
	if err := errors.RequireFields("message_id", messageID, "user", req.User); err != nil {
		return nil, err
	}
	var out types.Result
	if err := c.http.Post(ctx, http.Pathf(FeedbackEndpoint, messageID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages returns the history of a conversation, newest page first.
func (c *Client) Messages(ctx context.Context, params types.MessagesParams) (*types.MessageList, error) {
	if err := errors.RequireFields("conversation_id", params.ConversationID, "user", params.User); err != nil {
		return nil, err
	}
	var out types.MessageList
	if err := c.http.Get(ctx, HistoryEndpoint, params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conversations lists the conversations of a user.
func (c *Client) Conversations(ctx context.Context, params types.ConversationsParams) (*types.ConversationList, error) {
	if params.User == "" {
		return nil, errors.Required("user")
	}
	var out types.ConversationList
	if err := c.http.Get(ctx, ConversationsEndpoint, params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation removes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID, user string) error {
	if err := errors.RequireFields("conversation_id", conversationID, "user", user); err != nil {
		return err
	}
	return c.http.Delete(ctx, http.Pathf(ConversationEndpoint, conversationID), types.StopRequest{User: user}, nil)
}

// RenameConversation renames a conversation, or lets Dify generate a name
// when req.AutoGenerate is set.
func (c *Client) RenameConversation(ctx context.Context, conversationID string, req types.RenameConversationRequest) (*types.Conversation, error) {
	if err := errors.RequireFields("conversation_id", conversationID, "user", req.User); err != nil {
		return nil, err
	}
	if !req.AutoGenerate && req.Name == "" {
		return nil, errors.NewValidationError("name", "is required unless auto_generate is set")
	}
	var out types.Conversation
	if err := c.http.Post(ctx, http.Pathf(RenameEndpoint, conversationID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConversationVariables lists the variables stored on a conversation.
func (c *Client) ConversationVariables(ctx context.Context, conversationID string, params types.ConversationVariablesParams) (*types.ConversationVariableList, error) {
	if err := errors.RequireFields("conversation_id", conversationID, "user", params.User); err != nil {
		return nil, err
	}
	var out types.ConversationVariableList
	if err := c.http.Get(ctx, http.Pathf(VariablesEndpoint, conversationID), params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConversationVariable sets the value of a conversation variable.
func (c *Client) UpdateConversationVariable(ctx context.Context, conversationID, variableID string, req types.UpdateVariableRequest) (*types.ConversationVariable, error) {
	if err := errors.RequireFields("conversation_id", conversationID, "variable_id", variableID, "user", req.User); err != nil {
		return nil, err
	}
	var out types.ConversationVariable
	if err := c.http.Put(ctx, http.Pathf(VariableEndpoint, conversationID, variableID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
