// Package apitest provides a recording http.Doer for endpoint client tests.
package apitest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/jdziat/dify-go/pkg/http"
)

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header nethttp.Header
	// Body is the JSON encoding of the request body, if any.
	Body []byte
	Form *http.MultipartForm
}

// BodyMap decodes the JSON body into a map.
func (c Call) BodyMap() map[string]any {
	var m map[string]any
	_ = json.Unmarshal(c.Body, &m)
	return m
}

// FormValues encodes the multipart form and returns its text fields and
// the file names keyed by field.
func (c Call) FormValues() (fields map[string]string, files map[string]string, err error) {
	if c.Form == nil {
		return nil, nil, fmt.Errorf("apitest: %s %s has no form", c.Method, c.Path)
	}
	buf, contentType, err := c.Form.Encode()
	if err != nil {
		return nil, nil, err
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil, err
	}
	fields, files = map[string]string{}, map[string]string{}
	mr := multipart.NewReader(buf, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			return fields, files, nil
		}
		if err != nil {
			return nil, nil, err
		}
		data, _ := io.ReadAll(p)
		if p.FileName() != "" {
			files[p.FormName()] = p.FileName()
		}
		fields[p.FormName()] = string(data)
	}
}

// Doer records calls and answers them from canned responses.
type Doer struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]string
	headers   map[string]nethttp.Header
	// Err, when set, is returned by every call after recording it.
	Err error
}

// New returns an empty Doer.
func New() *Doer {
	return &Doer{responses: map[string]string{}, headers: map[string]nethttp.Header{}}
}

// On sets the response body for method and path. Stream calls use it as
// the raw text/event-stream body.
func (d *Doer) On(method, path, body string) *Doer {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.responses[method+" "+path] = body
	return d
}

// OnWithHeader is On with response headers, for Send.
func (d *Doer) OnWithHeader(method, path, body string, header nethttp.Header) *Doer {
	d.On(method, path, body)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.headers[method+" "+path] = header
	return d
}

// Calls returns the recorded calls.
func (d *Doer) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// Last returns the most recent call.
func (d *Doer) Last() Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		return Call{}
	}
	return d.calls[len(d.calls)-1]
}

func (d *Doer) record(c Call, result any) error {
	d.mu.Lock()
	d.calls = append(d.calls, c)
	body, ok := d.responses[c.Method+" "+c.Path]
	d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	if !ok || result == nil || body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), result)
}

func encode(body any) []byte {
	if body == nil {
		return nil
	}
	data, _ := json.Marshal(body)
	return data
}

func (d *Doer) Get(ctx context.Context, path string, query url.Values, result any) error {
	return d.record(Call{Method: nethttp.MethodGet, Path: path, Query: query}, result)
}

func (d *Doer) Post(ctx context.Context, path string, body, result any) error {
	return d.record(Call{Method: nethttp.MethodPost, Path: path, Body: encode(body)}, result)
}

func (d *Doer) Put(ctx context.Context, path string, body, result any) error {
	return d.record(Call{Method: nethttp.MethodPut, Path: path, Body: encode(body)}, result)
}

func (d *Doer) Patch(ctx context.Context, path string, body, result any) error {
	return d.record(Call{Method: nethttp.MethodPatch, Path: path, Body: encode(body)}, result)
}

func (d *Doer) Delete(ctx context.Context, path string, body, result any) error {
	return d.record(Call{Method: nethttp.MethodDelete, Path: path, Body: encode(body)}, result)
}

func (d *Doer) Upload(ctx context.Context, path string, form *http.MultipartForm, result any) error {
	return d.record(Call{Method: nethttp.MethodPost, Path: path, Form: form}, result)
}

func (d *Doer) Stream(ctx context.Context, path string, body any) (*http.EventReader, error) {
	c := Call{Method: nethttp.MethodPost, Path: path, Body: encode(body)}
	if err := d.record(c, nil); err != nil {
		return nil, err
	}
	d.mu.Lock()
	events := d.responses[c.Method+" "+c.Path]
	d.mu.Unlock()
	return http.NewEventReader(io.NopCloser(strings.NewReader(events))), nil
}

func (d *Doer) Do(ctx context.Context, req *http.Request, result any) error {
	c, err := d.fromRequest(ctx, req)
	if err != nil {
		return err
	}
	return d.record(c, result)
}

func (d *Doer) Send(ctx context.Context, req *http.Request) (*http.Response, error) {
	c, err := d.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := d.record(c, nil); err != nil {
		return nil, err
	}
	d.mu.Lock()
	body := d.responses[c.Method+" "+c.Path]
	header := d.headers[c.Method+" "+c.Path]
	d.mu.Unlock()
	if header == nil {
		header = nethttp.Header{}
	}
	return http.NewResponse(&nethttp.Response{
		StatusCode: nethttp.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, "apitest"), nil
}

// fromRequest builds req against a placeholder host and captures what
// would go on the wire.
func (d *Doer) fromRequest(ctx context.Context, req *http.Request) (Call, error) {
	built, err := req.Build(ctx, "http://dify.test")
	if err != nil {
		return Call{}, err
	}
	c := Call{
		Method: req.Method(),
		Path:   req.Path(),
		Query:  built.URL.Query(),
		Header: built.Header,
	}
	if built.Body != nil {
		c.Body, _ = io.ReadAll(built.Body)
	}
	return c, nil
}

var _ http.Doer = (*Doer)(nil)
