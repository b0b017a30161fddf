// Package completion provides the Dify text generation API client.
package completion

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the completion API.
const (
	MessagesEndpoint = "/completion-messages"
	StopEndpoint     = "/completion-messages/%s/stop"
)

// Client handles completion requests.
type Client struct {
	http http.Doer
}

// New creates a new completion client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

func validate(req *types.CompletionRequest) error {
	if req.User == "" {
		return errors.Required("user")
	}
	if req.Inputs == nil {
		req.Inputs = types.JSONObject{}
	}
	return nil
}

// Send generates text and waits for the full result.
func (c *Client) Send(ctx context.Context, req types.CompletionRequest) (*types.CompletionResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	req.ResponseMode = types.ResponseModeBlocking

	var out types.CompletionResponse
	if err := c.http.Post(ctx, MessagesEndpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stream generates text and returns it as it is produced.
func (c *Client) Stream(ctx context.Context, req types.CompletionRequest) (*types.EventStream, error) {
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

// Stop interrupts a streaming generation.
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
