// Package metadata provides the Dify document metadata API client.
package metadata

import (
	"context"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the metadata API.
const (
	Endpoint          = "/datasets/%s/metadata"
	ItemEndpoint      = "/datasets/%s/metadata/%s"
	BuiltInEndpoint   = "/datasets/%s/metadata/built-in/%s"
	DocumentsEndpoint = "/datasets/%s/documents/metadata"
)

// Client manages metadata fields of a dataset and their values on documents.
type Client struct {
	http http.Doer
}

// New creates a new metadata client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Create defines a metadata field on a dataset.
func (c *Client) Create(ctx context.Context, datasetID string, req types.MetadataRequest) (*types.MetadataField, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "name", req.Name, "type", string(req.Type)); err != nil {
		return nil, err
	}
	var out types.MetadataField
	if err := c.http.Post(ctx, http.Pathf(Endpoint, datasetID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the metadata fields of a dataset.
func (c *Client) List(ctx context.Context, datasetID string) (*types.DatasetMetadata, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	var out types.DatasetMetadata
	if err := c.http.Get(ctx, http.Pathf(Endpoint, datasetID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update renames a metadata field.
func (c *Client) Update(ctx context.Context, datasetID, metadataID, name string) (*types.MetadataField, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "metadata_id", metadataID, "name", name); err != nil {
		return nil, err
	}
	var out types.MetadataField
	body := types.RenameMetadataRequest{Name: name}
	if err := c.http.Patch(ctx, http.Pathf(ItemEndpoint, datasetID, metadataID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a metadata field.
func (c *Client) Delete(ctx context.Context, datasetID, metadataID string) error {
	if err := errors.RequireFields("dataset_id", datasetID, "metadata_id", metadataID); err != nil {
		return err
	}
	return c.http.Delete(ctx, http.Pathf(ItemEndpoint, datasetID, metadataID), nil, nil)
}

// ToggleBuiltIn enables or disables the built-in fields (document name,
// uploader, upload date, last update date, source).
func (c *Client) ToggleBuiltIn(ctx context.Context, datasetID string, enabled bool) error {
	if datasetID == "" {
		return errors.Required("dataset_id")
	}
	action := "disable"
	if enabled {
		action = "enable"
	}
	return c.http.Post(ctx, http.Pathf(BuiltInEndpoint, datasetID, action), nil, nil)
}

// UpdateDocuments sets metadata values on documents.
func (c *Client) UpdateDocuments(ctx context.Context, datasetID string, ops ...types.DocumentMetadataOperation) error {
	if datasetID == "" {
		return errors.Required("dataset_id")
	}
	if len(ops) == 0 {
		return errors.Required("operation_data")
	}
	for _, op := range ops {
		if op.DocumentID == "" {
			return errors.Required("operation_data.document_id")
		}
	}
	body := types.UpdateDocumentMetadataRequest{OperationData: ops}
	return c.http.Post(ctx, http.Pathf(DocumentsEndpoint, datasetID), body, nil)
}
