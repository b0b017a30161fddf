// Package segments provides the Dify segment and child chunk API client.
package segments

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the segments API.
const (
	Endpoint            = "/datasets/%s/documents/%s/segments"
	ItemEndpoint        = "/datasets/%s/documents/%s/segments/%s"
	ChildChunksEndpoint = "/datasets/%s/documents/%s/segments/%s/child_chunks"
	ChildChunkEndpoint  = "/datasets/%s/documents/%s/segments/%s/child_chunks/%s"
)

// Client manages the segments of a document.
type Client struct {
	http http.Doer
}

// New creates a new segments client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Create adds segments to a document.
func (c *Client) Create(ctx context.Context, datasetID, documentID string, segments ...types.SegmentInput) (*types.SegmentList, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, errors.Required("segments")
	}
	for _, s := range segments {
		if s.Content == "" {
			return nil, errors.Required("segments.content")
		}
	}
	var out types.SegmentList
	body := types.CreateSegmentsRequest{Segments: segments}
	if err := c.http.Post(ctx, http.Pathf(Endpoint, datasetID, documentID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns a page of the segments of a document.
func (c *Client) List(ctx context.Context, datasetID, documentID string, params types.SegmentsParams) (*types.SegmentList, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return nil, err
	}
	var out types.SegmentList
	if err := c.http.Get(ctx, http.Pathf(Endpoint, datasetID, documentID), params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one segment.
func (c *Client) Get(ctx context.Context, datasetID, documentID, segmentID string) (*types.SegmentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID); err != nil {
		return nil, err
	}
	var out types.SegmentResponse
	if err := c.http.Get(ctx, http.Pathf(ItemEndpoint, datasetID, documentID, segmentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits a segment.
func (c *Client) Update(ctx context.Context, datasetID, documentID, segmentID string, segment types.UpdateSegment) (*types.SegmentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID); err != nil {
		return nil, err
	}
	var out types.SegmentResponse
	body := types.UpdateSegmentRequest{Segment: segment}
	if err := c.http.Post(ctx, http.Pathf(ItemEndpoint, datasetID, documentID, segmentID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a segment.
func (c *Client) Delete(ctx context.Context, datasetID, documentID, segmentID string) error {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID); err != nil {
		return err
	}
	return c.http.Delete(ctx, http.Pathf(ItemEndpoint, datasetID, documentID, segmentID), nil, nil)
}

// CreateChildChunk adds a child chunk to a hierarchical segment.
func (c *Client) CreateChildChunk(ctx context.Context, datasetID, documentID, segmentID, content string) (*types.ChildChunk, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID, "content", content); err != nil {
		return nil, err
	}
	var out types.ChildChunkResponse
	path := http.Pathf(ChildChunksEndpoint, datasetID, documentID, segmentID)
	if err := c.http.Post(ctx, path, types.ChildChunkRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListChildChunks returns a page of the child chunks of a segment.
func (c *Client) ListChildChunks(ctx context.Context, datasetID, documentID, segmentID string, params types.ChildChunksParams) (*types.ChildChunkList, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID); err != nil {
		return nil, err
	}
	var out types.ChildChunkList
	path := http.Pathf(ChildChunksEndpoint, datasetID, documentID, segmentID)
	if err := c.http.Get(ctx, path, params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateChildChunk replaces the content of a child chunk.
func (c *Client) UpdateChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string) (*types.ChildChunk, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID,
		"child_chunk_id", childChunkID, "content", content); err != nil {
		return nil, err
	}
	var out types.ChildChunkResponse
	path := http.Pathf(ChildChunkEndpoint, datasetID, documentID, segmentID, childChunkID)
	if err := c.http.Patch(ctx, path, types.ChildChunkRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteChildChunk removes a child chunk.
func (c *Client) DeleteChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID string) error {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "segment_id", segmentID,
		"child_chunk_id", childChunkID); err != nil {
		return err
	}
	return c.http.Delete(ctx, http.Pathf(ChildChunkEndpoint, datasetID, documentID, segmentID, childChunkID), nil, nil)
}
