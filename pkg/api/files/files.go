// Package files provides the Dify file API client.
package files

import (
	"context"
	"io"
	"mime"
	nethttp "net/http"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the file API.
const (
	UploadEndpoint  = "/files/upload"
	PreviewEndpoint = "/files/%s/preview"
)

// Client uploads and downloads files.
type Client struct {
	http http.Doer
}

// New creates a new files client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Upload sends a file for use in chat, completion or workflow requests.
// The returned ID goes into types.LocalFile.
func (c *Client) Upload(ctx context.Context, user, filename string, r io.Reader) (*types.UploadedFile, error) {
	if err := errors.RequireFields("user", user, "filename", filename); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Required("file")
	}
	form := http.NewMultipartForm().
		File("file", filename, r, "").
		Field("user", user)

	var out types.UploadedFile
	if err := c.http.Upload(ctx, UploadEndpoint, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preview downloads a previously uploaded file. With asAttachment the
// server marks the reply for download.
func (c *Client) Preview(ctx context.Context, fileID string, asAttachment bool) (*types.FileContent, error) {
	if fileID == "" {
		return nil, errors.Required("file_id")
	}
	req := http.NewRequest(nethttp.MethodGet, http.Pathf(PreviewEndpoint, fileID)).Accept("*/*")
	if asAttachment {
		req.Query("as_attachment", "true")
	}
	resp, err := c.http.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	data, err := resp.ReadAll()
	if err != nil {
		return nil, err
	}
	out := &types.FileContent{
		Data:        data,
		ContentType: resp.Header().Get("Content-Type"),
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			out.Filename = params["filename"]
		}
	}
	return out, nil
}
