// Package documents provides the Dify document API client.
package documents

import (
	"context"
	"io"
	"net/url"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the documents API.
const (
	CreateByTextEndpoint   = "/datasets/%s/document/create-by-text"
	CreateByFileEndpoint   = "/datasets/%s/document/create-by-file"
	UpdateByTextEndpoint   = "/datasets/%s/documents/%s/update-by-text"
	UpdateByFileEndpoint   = "/datasets/%s/documents/%s/update-by-file"
	IndexingStatusEndpoint = "/datasets/%s/documents/%s/indexing-status"
	Endpoint               = "/datasets/%s/documents"
	ItemEndpoint           = "/datasets/%s/documents/%s"
	StatusEndpoint         = "/datasets/%s/documents/status/%s"
	UploadFileEndpoint     = "/datasets/%s/documents/%s/upload-file"
)

// Client manages the documents of a dataset.
type Client struct {
	http http.Doer
}

// New creates a new documents client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// CreateByText adds a document from plain text. Processing defaults to
// automatic rules.
func (c *Client) CreateByText(ctx context.Context, datasetID string, req types.CreateDocumentByTextRequest) (*types.DocumentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "name", req.Name, "text", req.Text); err != nil {
		return nil, err
	}
	if req.ProcessRule == nil {
		req.ProcessRule = types.AutomaticProcessing
	}
	var out types.DocumentResponse
	if err := c.http.Post(ctx, http.Pathf(CreateByTextEndpoint, datasetID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateByFile adds a document from a file.
func (c *Client) CreateByFile(ctx context.Context, datasetID, filename string, r io.Reader, opts types.DocumentFileOptions) (*types.DocumentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "filename", filename); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Required("file")
	}
	if opts.ProcessRule == nil && opts.OriginalDocumentID == "" {
		opts.ProcessRule = types.AutomaticProcessing
	}
	return c.upload(ctx, http.Pathf(CreateByFileEndpoint, datasetID), filename, r, opts)
}

// UpdateByText replaces the name or text of a document.
func (c *Client) UpdateByText(ctx context.Context, datasetID, documentID string, req types.UpdateDocumentByTextRequest) (*types.DocumentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return nil, err
	}
	var out types.DocumentResponse
	if err := c.http.Post(ctx, http.Pathf(UpdateByTextEndpoint, datasetID, documentID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateByFile replaces the file behind a document.
func (c *Client) UpdateByFile(ctx context.Context, datasetID, documentID, filename string, r io.Reader, opts types.DocumentFileOptions) (*types.DocumentResponse, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID, "filename", filename); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Required("file")
	}
	return c.upload(ctx, http.Pathf(UpdateByFileEndpoint, datasetID, documentID), filename, r, opts)
}

func (c *Client) upload(ctx context.Context, path, filename string, r io.Reader, opts types.DocumentFileOptions) (*types.DocumentResponse, error) {
	form := http.NewMultipartForm().
		JSONField("data", opts).
		File("file", filename, r, "")

	var out types.DocumentResponse
	if err := c.http.Upload(ctx, path, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IndexingStatus reports the embedding progress of a batch returned by
// the create and update calls.
func (c *Client) IndexingStatus(ctx context.Context, datasetID, batch string) (*types.IndexingStatusList, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "batch", batch); err != nil {
		return nil, err
	}
	var out types.IndexingStatusList
	if err := c.http.Get(ctx, http.Pathf(IndexingStatusEndpoint, datasetID, batch), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a document.
func (c *Client) Delete(ctx context.Context, datasetID, documentID string) error {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return err
	}
	return c.http.Delete(ctx, http.Pathf(ItemEndpoint, datasetID, documentID), nil, nil)
}

// List returns a page of the documents in a dataset.
func (c *Client) List(ctx context.Context, datasetID string, params types.DocumentsParams) (*types.DocumentList, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	var out types.DocumentList
	if err := c.http.Get(ctx, http.Pathf(Endpoint, datasetID), params.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a document. An empty mode returns the document with its metadata.
func (c *Client) Get(ctx context.Context, datasetID, documentID string, mode types.DocumentMetadataMode) (*types.DocumentDetail, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return nil, err
	}
	var query url.Values
	if mode != "" {
		query = url.Values{"metadata": {string(mode)}}
	}
	var out types.DocumentDetail
	if err := c.http.Get(ctx, http.Pathf(ItemEndpoint, datasetID, documentID), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus enables, disables, archives or unarchives documents.
func (c *Client) UpdateStatus(ctx context.Context, datasetID string, action types.DocumentStatusAction, documentIDs ...string) (*types.Result, error) {
	if datasetID == "" {
		return nil, errors.Required("dataset_id")
	}
	if !action.Valid() {
		return nil, errors.NewValidationError("action", "must be enable, disable, archive or un_archive")
	}
	if len(documentIDs) == 0 {
		return nil, errors.Required("document_ids")
	}
	var out types.Result
	body := types.DocumentStatusRequest{DocumentIDs: documentIDs}
	if err := c.http.Patch(ctx, http.Pathf(StatusEndpoint, datasetID, string(action)), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFile describes the file a document was created from.
func (c *Client) UploadFile(ctx context.Context, datasetID, documentID string) (*types.UploadFileInfo, error) {
	if err := errors.RequireFields("dataset_id", datasetID, "document_id", documentID); err != nil {
		return nil, err
	}
	var out types.UploadFileInfo
	if err := c.http.Get(ctx, http.Pathf(UploadFileEndpoint, datasetID, documentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
