// Package audio provides the Dify speech API client.
package audio

import (
	"context"
	"io"
	nethttp "net/http"

	"github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/http"
	"github.com/jdziat/dify-go/pkg/types"
)

// Endpoints for the audio API.
const (
	SpeechToTextEndpoint = "/audio-to-text"
	TextToSpeechEndpoint = "/text-to-audio"
)

// Client converts between speech and text.
type Client struct {
	http http.Doer
}

// New creates a new audio client with the given HTTP doer.
func New(doer http.Doer) *Client {
	return &Client{http: doer}
}

// ToText transcribes an audio file (mp3, mp4, mpeg, mpga, m4a, wav, webm).
func (c *Client) ToText(ctx context.Context, user, filename string, r io.Reader) (*types.AudioToTextResponse, error) {
	if err := errors.RequireFields("user", user, "filename", filename); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Required("file")
	}
	form := http.NewMultipartForm().
		File("file", filename, r, "").
		Field("user", user)

	var out types.AudioToTextResponse
	if err := c.http.Upload(ctx, SpeechToTextEndpoint, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromText synthesizes speech for a message or a piece of text.
func (c *Client) FromText(ctx context.Context, req types.TextToAudioRequest) (*types.Audio, error) {
	if req.User == "" {
		return nil, errors.Required("user")
	}
	if req.MessageID == "" && req.Text == "" {
		return nil, errors.NewValidationError("text", "text or message_id is required")
	}
	resp, err := c.http.Send(ctx, http.NewRequest(nethttp.MethodPost, TextToSpeechEndpoint).
		JSON(req).
		Accept("audio/*"))
	if err != nil {
		return nil, err
	}
	data, err := resp.ReadAll()
	if err != nil {
		return nil, err
	}
	return &types.Audio{Data: data, ContentType: resp.Header().Get("Content-Type")}, nil
}
