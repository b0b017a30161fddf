package dify

import (
	"github.com/jdziat/dify-go/pkg/api/annotations"
	"github.com/jdziat/dify-go/pkg/api/apps"
	"github.com/jdziat/dify-go/pkg/api/audio"
	"github.com/jdziat/dify-go/pkg/api/chat"
	"github.com/jdziat/dify-go/pkg/api/completion"
	"github.com/jdziat/dify-go/pkg/api/datasets"
	"github.com/jdziat/dify-go/pkg/api/documents"
	"github.com/jdziat/dify-go/pkg/api/files"
	"github.com/jdziat/dify-go/pkg/api/metadata"
	"github.com/jdziat/dify-go/pkg/api/segments"
	"github.com/jdziat/dify-go/pkg/api/tags"
	"github.com/jdziat/dify-go/pkg/api/workflows"
	pkgconfig "github.com/jdziat/dify-go/pkg/config"
	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Client is the main Dify client. It is safe for concurrent use and holds
// no background goroutines, so it needs no shutdown.
type Client struct {
	config    *Config
	http      *httpClient
	knowledge *httpClient

	// App clients
	apps        *apps.Client
	files       *files.Client
	audio       *audio.Client
	chat        *chat.Client
	completion  *completion.Client
	workflows   *workflows.Client
	annotations *annotations.Client

	// Knowledge clients
	datasets  *datasets.Client
	documents *documents.Client
	segments  *segments.Client
	tags      *tags.Client
	metadata  *metadata.Client
}

// New creates a new Dify client for an app or dataset API key.
func New(apiKey string, opts ...ConfigOption) (*Client, error) {
	cfg := &Config{APIKey: apiKey}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a new Dify client from a Config struct.
// This is useful when you want to configure the client using a struct
// rather than functional options.
//
// Example:
//
//	client, err := dify.NewWithConfig(&dify.Config{
//	    APIKey:  os.Getenv("DIFY_API_KEY"),
//	    BaseURL: "http://localhost/v1",
//	    Timeout: 2 * time.Minute,
//	})
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilRequest
	}

	// Make a copy to avoid modifying the original
	cfgCopy := *cfg
	cfgCopy.Headers = cloneHeaders(cfg.Headers)
	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	executor := cfgCopy.Executor
	if executor == nil {
		hc, err := pkghttp.NewExecutor(cfgCopy.Transport)
		if err != nil {
			return nil, err
		}
		executor = hc
		cfgCopy.Executor = hc
	}

	appHTTP := newHTTPClient(&cfgCopy, executor, cfgCopy.appKey())
	knowledgeHTTP := appHTTP
	if cfgCopy.datasetKey() != cfgCopy.appKey() {
		knowledgeHTTP = newHTTPClient(&cfgCopy, executor, cfgCopy.datasetKey())
	}

	return &Client{
		config:    &cfgCopy,
		http:      appHTTP,
		knowledge: knowledgeHTTP,

		apps:        apps.New(appHTTP),
		files:       files.New(appHTTP),
		audio:       audio.New(appHTTP),
		chat:        chat.New(appHTTP),
		completion:  completion.New(appHTTP),
		workflows:   workflows.New(appHTTP),
		annotations: annotations.New(appHTTP),

		datasets:  datasets.New(knowledgeHTTP),
		documents: documents.New(knowledgeHTTP),
		segments:  segments.New(knowledgeHTTP),
		tags:      tags.New(knowledgeHTTP),
		metadata:  metadata.New(knowledgeHTTP),
	}, nil
}

// NewFromFile creates a client from a YAML configuration file. DIFY_*
// environment variables override file values and opts override both.
//
//	client, err := dify.NewFromFile(".dify.yaml")
func NewFromFile(path string, opts ...ConfigOption) (*Client, error) {
	fc, err := pkgconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}
	fc.ApplyEnv()
	return New(fc.APIKey, append(fileOptions(fc), opts...)...)
}

func cloneHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// Apps returns the client for app info, parameters and feedback.
func (c *Client) Apps() *apps.Client { return c.apps }

// Files returns the client for file uploads and previews.
func (c *Client) Files() *files.Client { return c.files }

// Audio returns the client for speech-to-text and text-to-speech.
func (c *Client) Audio() *audio.Client { return c.audio }

// Chat returns the client for chat, agent and chatflow apps.
func (c *Client) Chat() *chat.Client { return c.chat }

// Completion returns the client for text generation apps.
func (c *Client) Completion() *completion.Client { return c.completion }

// Workflows returns the client for workflow apps.
func (c *Client) Workflows() *workflows.Client { return c.workflows }

// Annotations returns the client for annotation replies.
func (c *Client) Annotations() *annotations.Client { return c.annotations }

// Datasets returns the client for knowledge bases.
func (c *Client) Datasets() *datasets.Client { return c.datasets }

// Documents returns the client for knowledge base documents.
func (c *Client) Documents() *documents.Client { return c.documents }

// Segments returns the client for document segments and child chunks.
func (c *Client) Segments() *segments.Client { return c.segments }

// Tags returns the client for knowledge tags.
func (c *Client) Tags() *tags.Client { return c.tags }

// Metadata returns the client for document metadata.
func (c *Client) Metadata() *metadata.Client { return c.metadata }

// User returns the configured end-user identifier, or DefaultUser.
func (c *Client) User() string {
	if c.config.User != "" {
		return c.config.User
	}
	return DefaultUser
}

// HTTP returns the request pipeline used by the app clients, for calling
// endpoints the SDK does not wrap.
func (c *Client) HTTP() pkghttp.Doer { return c.http }

// KnowledgeHTTP returns the request pipeline used by the knowledge clients.
func (c *Client) KnowledgeHTTP() pkghttp.Doer { return c.knowledge }

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	cfg := *c.config
	cfg.Headers = cloneHeaders(c.config.Headers)
	return cfg
}

// String returns a description of the client with masked credentials.
func (c *Client) String() string {
	return "dify.Client" + c.config.String()[len("Config"):]
}
