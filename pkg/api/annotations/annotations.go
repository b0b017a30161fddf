// Package annotations provides the Dify annotation API client.
package annotations

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the annotation API.
const (
	Endpoint            = "/apps/annotations"
	ItemEndpoint        = "/apps/annotations/%s"
	ReplyEndpoint       = "/apps/annotation-reply/%s"
	ReplyStatusEndpoint = "/apps/annotation-reply/%s/status/%s"
)

// Client manages the curated answers of an app.
type Client struct {
	http http.Doer
}

// New creates a new annotations client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// List returns a page of annotations.
func (c *Client) List(ctx context.Context, page http.PageParams) (*types.AnnotationList, error) {
	var out types.AnnotationList
	if err := c.http.Get(ctx, Endpoint, page.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds an annotation.
func (c *Client) Create(ctx context.Context, req types.AnnotationRequest) (*types.Annotation, error) {
	if err := errors.RequireFields("question", req.Question, "answer", req.Answer); err != nil {
		return nil, err
	}
	var out types.Annotation
	if err := c.http.Post(ctx, Endpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the question and answer of an annotation.
func (c *Client) Update(ctx context.Context, annotationID string, req types.AnnotationRequest) (*types.Annotation, error) {
	if err := errors.RequireFields("annotation_id", annotationID, "question", req.Question, "answer", req.Answer); err != nil {
		return nil, err
	}
	var out types.Annotation
	if err := c.http.Put(ctx, http.Pathf(ItemEndpoint, annotationID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an annotation.
func (c *Client) Delete(ctx context.Context, annotationID string) error {
	if annotationID == "" {
		return errors.Required("annotation_id")
	}
	return c.http.Delete(ctx, http.Pathf(ItemEndpoint, annotationID), nil, nil)
}

// SetReply starts a job enabling or disabling annotation replies.
// The embedding settings in req only apply when enabling.
func (c *Client) SetReply(ctx context.Context, action types.AnnotationReplyAction, req types.AnnotationReplyRequest) (*types.AnnotationJob, error) {
	if !action.Valid() {
		return nil, errors.NewValidationError("action", "must be enable or disable")
	}
	var out types.AnnotationJob
	if err := c.http.Post(ctx, http.Pathf(ReplyEndpoint, string(action)), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplyStatus polls a job started by SetReply.
func (c *Client) ReplyStatus(ctx context.Context, action types.AnnotationReplyAction, jobID string) (*types.AnnotationJob, error) {
	if !action.Valid() {
		return nil, errors.NewValidationError("action", "must be enable or disable")
	}
	if jobID == "" {
		return nil, errors.Required("job_id")
	}
	var out types.AnnotationJob
	if err := c.http.Get(ctx, http.Pathf(ReplyStatusEndpoint, string(action), jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
