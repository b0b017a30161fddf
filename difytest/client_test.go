package difytest

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	dify "github.com/jdziat/dify-go"
	"github.com/jdziat/dify-go/pkg/types"
)

func TestNewTestClient(t *testing.T) {
	client, server := NewTestClient(t)

	if client == nil {
		t.Fatal("NewTestClient returned nil client")
	}
	if server == nil {
		t.Fatal("NewTestClient returned nil server")
	}

	server.HandleJSON(http.MethodGet, "/info", http.StatusOK, map[string]any{"name": "demo", "mode": "chat"})

	info, err := client.Apps().Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.Name != "demo" {
		t.Errorf("Name = %q, want demo", info.Name)
	}

	req := server.LastRequest()
	if got := req.Header.Get("Authorization"); got != "Bearer "+TestAPIKey {
		t.Errorf("Authorization = %q", got)
	}
}

func TestNewTestClient_DatasetKey(t *testing.T) {
	client, server := NewTestClient(t)
	server.HandleJSON(http.MethodGet, "/datasets/{id}", http.StatusOK, map[string]any{"id": "ds1", "name": "kb"})

	ds, err := client.Datasets().Get(context.Background(), "ds1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ds.Name != "kb" {
		t.Errorf("Name = %q", ds.Name)
	}
	if got := server.LastRequest().Header.Get("Authorization"); got != "Bearer "+TestDatasetAPIKey {
		t.Errorf("Authorization = %q", got)
	}
}

func TestNewTestClient_Stream(t *testing.T) {
	client, server := NewTestClient(t)
	server.HandleStream(http.MethodPost, "/chat-messages",
		map[string]any{"event": "message", "answer": "Hi ", "conversation_id": "c1"},
		map[string]any{"event": "message", "answer": "there"},
		map[string]any{"event": "message_end", "message_id": "m1"},
	)

	stream, err := client.Chat().Stream(context.Background(), types.ChatRequest{Query: "hello", User: "u1"})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	result, err := dify.CollectChat(stream)
	if err != nil {
		t.Fatalf("CollectChat() error = %v", err)
	}
	if result.Answer != "Hi there" || result.MessageID != "m1" {
		t.Errorf("result = %+v", result)
	}
	if server.LastRequest().JSON()["response_mode"] != "streaming" {
		t.Errorf("body = %s", server.LastRequest().Body)
	}
}

func TestNewTestClientWithConfig(t *testing.T) {
	metrics := NewMockMetrics()
	logger := NewMockLogger()
	client, server := NewTestClientWithConfig(t,
		dify.WithMetrics(metrics),
		dify.WithStructuredLogger(logger),
		dify.WithTimeout(5*time.Second),
	)

	server.RespondWithRateLimit(3)
	_, err := client.Apps().Parameters(context.Background())
	if !errors.Is(err, dify.ErrRateLimited) {
		t.Fatalf("Parameters() error = %v, want ErrRateLimited", err)
	}
	if dify.RetryAfter(err) != 3*time.Second {
		t.Errorf("RetryAfter() = %v", dify.RetryAfter(err))
	}

	if got := metrics.GetCounter("dify.http.status.429"); got != 1 {
		t.Errorf("dify.http.status.429 = %d, want 1", got)
	}
	if len(metrics.GetTimings("dify.http.duration")) != 1 {
		t.Error("duration not recorded")
	}
	if logger.MessageCount() == 0 {
		t.Error("pipeline logged nothing")
	}
}

func TestTestConstants(t *testing.T) {
	if len(TestAPIKey) < dify.MinKeyLength {
		t.Error("TestAPIKey should satisfy MinKeyLength")
	}
	if len(TestDatasetAPIKey) < dify.MinKeyLength {
		t.Error("TestDatasetAPIKey should satisfy MinKeyLength")
	}
}
