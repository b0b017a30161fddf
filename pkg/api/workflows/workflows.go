// Package workflows provides the Dify workflow API client.
package workflows

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the workflow API.
const (
	RunEndpoint        = "/workflows/run"
	RunVersionEndpoint = "/workflows/%s/run"
	RunDetailEndpoint  = "/workflows/run/%s"
	StopEndpoint       = "/workflows/tasks/%s/stop"
	LogsEndpoint       = "/workflows/logs"
)

// Client runs workflows and inspects their runs.
type Client struct {
	http http.Doer
}

// New creates a new workflows client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

func validate(req *types.WorkflowRequest) error {
	if req.User == "" {
		return errors.Required("user")
	}
	if req.Inputs == nil {
		req.Inputs = types.JSONObject{}
	}
	return nil
}

func (c *Client) run(ctx context.Context, path string, req types.WorkflowRequest) (*types.WorkflowResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	req.ResponseMode = types.ResponseModeBlocking

	var out types.WorkflowResponse
	if err := c.http.Post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) stream(ctx context.Context, path string, req types.WorkflowRequest) (*types.EventStream, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	req.ResponseMode = types.ResponseModeStreaming

	events, err := c.http.Stream(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return types.NewEventStream(events), nil
}

// Run executes the published workflow and waits for it to finish.
// A failed run is reported through Data.Status, not as an error.
func (c *Client) Run(ctx context.Context, req types.WorkflowRequest) (*types.WorkflowResponse, error) {
	return c.run(ctx, RunEndpoint, req)
}

// RunStream executes the published workflow and streams its events.
func (c *Client) RunStream(ctx context.Context, req types.WorkflowRequest) (*types.EventStream, error) {
	return c.stream(ctx, RunEndpoint, req)
}

// RunVersion executes a specific published version of the workflow.
func (c *Client) RunVersion(ctx context.Context, workflowID string, req types.WorkflowRequest) (*types.WorkflowResponse, error) {
	if workflowID == "" {
		return nil, errors.Required("workflow_id")
	}
	return c.run(ctx, http.Pathf(RunVersionEndpoint, workflowID), req)
}

// RunVersionStream executes a specific workflow version and streams its events.
func (c *Client) RunVersionStream(ctx context.Context, workflowID string, req types.WorkflowRequest) (*types.EventStream, error) {
	if workflowID == "" {
		return nil, errors.Required("workflow_id")
	}
	return c.stream(ctx, http.Pathf(RunVersionEndpoint, workflowID), req)
}

// GetRun returns the state of a workflow run.
func (c *Client) GetRun(ctx context.Context, runID string) (*types.WorkflowRun, error) {
	if runID == "" {
		return nil, errors.Required("workflow_run_id")
	}
	var out types.WorkflowRun
	if err := c.http.Get(ctx, http.Pathf(RunDetailEndpoint, runID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stop interrupts a streaming run.
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

// Logs lists workflow runs, newest first.
func (c *Client) Logs(ctx context.Context, params types.WorkflowLogsParams) (*types.WorkflowLogList, error) {
	var out types.WorkflowLogList
	if err := c.http.Get(ctx, LogsEndpoint, params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
