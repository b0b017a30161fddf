package http

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
)

func TestRequest_BuildJSON(t *testing.T) {
	req := NewRequest(http.MethodPost, "/chat-messages").
		Query("debug", "").
		Query("lang", "en").
		Header("X-Tenant", "acme").
		Cookie(&http.Cookie{Name: "session", Value: "abc"}).
		JSON(map[string]any{"query": "hi", "user": "u1"})

	httpReq, err := req.Build(context.Background(), "https://api.dify.ai/v1/")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := httpReq.URL.String(); got != "https://api.dify.ai/v1/chat-messages?lang=en" {
		t.Errorf("URL = %q", got)
	}
	if got := httpReq.Header.Get("Content-Type"); got != ContentTypeJSON {
		t.Errorf("Content-Type = %q", got)
	}
	if got := httpReq.Header.Get("Accept"); got != ContentTypeJSON {
		t.Errorf("Accept = %q", got)
	}
	if got := httpReq.Header.Get("X-Tenant"); got != "acme" {
		t.Errorf("X-Tenant = %q", got)
	}
	c, err := httpReq.Cookie("session")
	if err != nil || c.Value != "abc" {
		t.Errorf("Cookie(session) = %v, %v", c, err)
	}

	var body map[string]any
	if err := json.NewDecoder(httpReq.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["query"] != "hi" || body["user"] != "u1" {
		t.Errorf("body = %v", body)
	}
}

func TestRequest_Streaming(t *testing.T) {
	req := NewRequest(http.MethodPost, "/workflows/run").Streaming().JSON(struct{}{})
	if !req.IsStreaming() {
		t.Error("IsStreaming() = false")
	}
	httpReq, err := req.Build(context.Background(), "http://localhost")
	if err != nil {
		t.Fatal(err)
	}
	if got := httpReq.Header.Get("Accept"); got != ContentTypeEventStream {
		t.Errorf("Accept = %q, want %q", got, ContentTypeEventStream)
	}
}

func TestRequest_BuildNoBody(t *testing.T) {
	httpReq, err := NewRequest(http.MethodGet, "/info").Build(context.Background(), "http://localhost/v1")
	if err != nil {
		t.Fatal(err)
	}
	if httpReq.Body != nil && httpReq.ContentLength != 0 {
		t.Errorf("ContentLength = %d, want 0", httpReq.ContentLength)
	}
	if httpReq.Header.Get("Content-Type") != "" {
		t.Errorf("Content-Type = %q, want empty", httpReq.Header.Get("Content-Type"))
	}
}

func TestRequest_BuildMarshalError(t *testing.T) {
	_, err := NewRequest(http.MethodPost, "/x").JSON(map[string]any{"ch": make(chan int)}).
		Build(context.Background(), "http://localhost")
	if err == nil || !strings.Contains(err.Error(), "marshal") {
		t.Errorf("Build() error = %v", err)
	}
}

func TestRequest_BuildRawBody(t *testing.T) {
	httpReq, err := NewRequest(http.MethodPut, "/blob").
		Body(strings.NewReader("raw-bytes"), "application/octet-stream").
		Build(context.Background(), "http://localhost")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(httpReq.Body)
	if string(data) != "raw-bytes" {
		t.Errorf("body = %q", data)
	}
	if httpReq.Header.Get("Content-Type") != "application/octet-stream" {
		t.Errorf("Content-Type = %q", httpReq.Header.Get("Content-Type"))
	}
}

func TestRequest_BuildMultipart(t *testing.T) {
	form := NewMultipartForm().
		Field("user", "u1").
		JSONField("data", map[string]string{"indexing_technique": "economy"}).
		File("file", "notes.txt", strings.NewReader("hello"), "")

	httpReq, err := NewRequest(http.MethodPost, "/files/upload").Multipart(form).
		Build(context.Background(), "http://localhost")
	if err != nil {
		t.Fatal(err)
	}

	mediaType, params, err := mime.ParseMediaType(httpReq.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("Content-Type = %q, %v", httpReq.Header.Get("Content-Type"), err)
	}

	mr := multipart.NewReader(httpReq.Body, params["boundary"])
	got := map[string]string{}
	var fileType, fileName string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(p)
		got[p.FormName()] = string(data)
		if p.FileName() != "" {
			fileName = p.FileName()
			fileType = p.Header.Get("Content-Type")
		}
	}

	if got["user"] != "u1" {
		t.Errorf("user = %q", got["user"])
	}
	if got["data"] != `{"indexing_technique":"economy"}` {
		t.Errorf("data = %q", got["data"])
	}
	if got["file"] != "hello" || fileName != "notes.txt" {
		t.Errorf("file = %q (%s)", got["file"], fileName)
	}
	if !strings.HasPrefix(fileType, "text/plain") {
		t.Errorf("file Content-Type = %q", fileType)
	}
}
