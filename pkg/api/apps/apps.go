// Package apps provides the Dify application API client: app info,
// input parameters, tool icons, WebApp settings and collected feedback.
package apps

import (
	"context"

	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the app API.
const (
	InfoEndpoint       = "/info"
	ParametersEndpoint = "/parameters"
	MetaEndpoint       = "/meta"
	SiteEndpoint       = "/site"
	FeedbacksEndpoint  = "/app/feedbacks"
)

// Client handles app-level API operations.
type Client struct {
	http http.Doer
}

// New creates a new apps client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// Info returns the app name, description, tags and mode.
func (c *Client) Info(ctx context.Context) (*types.AppInfo, error) {
	var out types.AppInfo
	if err := c.http.Get(ctx, InfoEndpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Parameters returns the app's input form and feature switches.
func (c *Client) Parameters(ctx context.Context) (*types.AppParameters, error) {
	var out types.AppParameters
	if err := c.http.Get(ctx, ParametersEndpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Meta returns the tool icons used by the app.
func (c *Client) Meta(ctx context.Context) (*types.AppMeta, error) {
	var out types.AppMeta
	if err := c.http.Get(ctx, MetaEndpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Site returns the WebApp settings.
func (c *Client) Site(ctx context.Context) (*types.AppSite, error) {
	var out types.AppSite
	if err := c.http.Get(ctx, SiteEndpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Feedbacks lists the likes and dislikes end users left on messages.
func (c *Client) Feedbacks(ctx context.Context, page http.PageParams) (*types.AppFeedbackList, error) {
	var out types.AppFeedbackList
	if err := c.http.Get(ctx, FeedbacksEndpoint, page.ToQuery(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
