// Package datasets provides the Dify knowledge base API client.
package datasets

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the datasets API.
const (
	Endpoint                = "/datasets"
	ItemEndpoint            = "/datasets/%s"
	RetrieveEndpoint        = "/datasets/%s/retrieve"
	EmbeddingModelsEndpoint = "/workspaces/current/models/model-types/text-embedding"
)

// Client handles dataset-related API operations. It needs a dataset API key.
type Client struct {
	http http.Doer
}

// New creates a new datasets client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Create creates an empty dataset.
func (c *Client) Create(ctx context.Context, req types.CreateDatasetRequest) (*types.Dataset, error) {
	if req.Name == "" {
		return nil, errors.Required("name")
	}
	var out types.Dataset
	if err := c.http.Post(ctx, Endpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns a page of datasets.
func (c *Client) List(ctx context.Context, params types.DatasetsParams) (*types.DatasetList, error) {
	var out types.DatasetList
	if err := c.http.Get(ctx, Endpoint, params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a dataset by ID.
func (c *Client) Get(ctx context.Context, datasetID string) (*types.Dataset, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	var out types.Dataset
	if err := c.http.Get(ctx, http.Pathf(ItemEndpoint, datasetID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update changes the settings of a dataset.
func (c *Client) Update(ctx context.Context, datasetID string, req types.UpdateDatasetRequest) (*types.Dataset, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	var out types.Dataset
	if err := c.http.Patch(ctx, http.Pathf(ItemEndpoint, datasetID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a dataset and its documents.
func (c *Client) Delete(ctx context.Context, datasetID string) error {
	if datasetID == "" {
		return errors.Required("dataset_id")
	}
	return c.http.Delete(ctx, http.Pathf(ItemEndpoint, datasetID), nil, nil)
}

// Retrieve searches a dataset. A nil RetrievalModel uses the dataset's
// own settings.
func (c *Client) Retrieve(ctx context.Context, datasetID string, req types.RetrieveRequest) (*types.RetrieveResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "query", req.Query); err != nil {
		return nil, err
	}
	var out types.RetrieveResponse
	if err := c.http.Post(ctx, http.Pathf(RetrieveEndpoint, datasetID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmbeddingModels lists the text embedding models available to the workspace.
func (c *Client) EmbeddingModels(ctx context.Context) (*types.EmbeddingModelList, error) {
	var out types.EmbeddingModelList
	if err := c.http.Get(ctx, EmbeddingModelsEndpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
