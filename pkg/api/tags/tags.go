// Package tags provides the Dify knowledge tag API client.
package tags

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the tags API.
const (
	Endpoint          = "/datasets/tags"
	BindingEndpoint   = "/datasets/tags/binding"
	UnbindingEndpoint = "/datasets/tags/unbinding"
	DatasetEndpoint   = "/datasets/%s/tags"
)

// Client manages knowledge tags and their bindings to datasets.
type Client struct {
	http http.Doer
}

// New creates a new tags client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Create adds a tag.
func (c *Client) Create(ctx context.Context, name string) (*types.Tag, error) {
	if name == "" {
		return nil, errors.Required("name")
	}
	var out types.Tag
	if err := c.http.Post(ctx, Endpoint, types.TagRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every knowledge tag of the workspace.
func (c *Client) List(ctx context.Context) ([]types.Tag, error) {
	var out []types.Tag
	if err := c.http.Get(ctx, Endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update renames a tag.
func (c *Client) Update(ctx context.Context, tagID, name string) (*types.Tag, error) {
	if err := errors.RequireFields("tag_id", tagID, "name", name); err != nil {
		return nil, err
	}
	var out types.Tag
	if err := c.http.Patch(ctx, Endpoint, types.UpdateTagRequest{TagID: tagID, Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a tag.
func (c *Client) Delete(ctx context.Context, tagID string) error {
	if tagID == "" {
		return errors.Required("tag_id")
	}
	return c.http.Delete(ctx, Endpoint, types.DeleteTagRequest{TagID: tagID}, nil)
}

// Bind attaches tags to a dataset.
func (c *Client) Bind(ctx context.Context, datasetID string, tagIDs ...string) error {
	if datasetID == "" {
		return errors.Required("target_id")
	}
	if len(tagIDs) == 0 {
		return errors.Required("tag_ids")
	}
	return c.http.Post(ctx, BindingEndpoint, types.BindTagsRequest{TagIDs: tagIDs, TargetID: datasetID}, nil)
}

// Unbind removes a tag from a dataset.
func (c *Client) Unbind(ctx context.Context, datasetID, tagID string) error {
	if err := errors.RequireFields("target_id", datasetID, "tag_id", tagID); err != nil {
		return err
	}
	return c.http.Post(ctx, UnbindingEndpoint, types.UnbindTagRequest{TagID: tagID, TargetID: datasetID}, nil)
}

// OfDataset lists the tags bound to a dataset.
func (c *Client) OfDataset(ctx context.Context, datasetID string) (*types.DatasetTags, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	var out types.DatasetTags
	if err := c.http.Get(ctx, http.Pathf(DatasetEndpoint, datasetID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
