package completion

import (
	"context"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	"github.com/jdziat/dify-go/pkg/types"
)

func TestClient_Send(t *testing.T) {
	doer := apitest.New().On("POST", MessagesEndpoint, `{"message_id":"m1","mode":"completion","answer":"A haiku."}`)
	resp, err := New(doer).Send(context.Background(), types.CompletionRequest{
		Inputs: types.JSONObject{"query": "Write a haiku"},
		User:   "u1",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Answer != "A haiku." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	body := doer.Last().BodyMap()
	if body["response_mode"] != "blocking" || body["inputs"].(map[string]any)["query"] != "Write a haiku" {
		t.Errorf("body = %v", body)
	}
}

func TestClient_StreamAndStop(t *testing.T) {
	doer := apitest.New().
		On("POST", MessagesEndpoint, "data: {\"event\":\"message\",\"task_id\":\"t1\",\"answer\":\"Roses\"}\n\ndata: {\"event\":\"message_end\"}\n\n").
		On("POST", "/completion-messages/t1/stop", `{"result":"success"}`)
	c := New(doer)

	stream, err := c.Stream(context.Background(), types.CompletionRequest{User: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if !stream.Next() {
		t.Fatalf("Next() = false, err = %v", stream.Err())
	}
	first := stream.Current()
	if first.Answer != "Roses" || first.TaskID != "t1" {
		t.Errorf("first event = %+v", first)
	}
	if err := stream.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	res, err := c.Stop(context.Background(), first.TaskID, "u1")
	if err != nil || !res.OK() {
		t.Errorf("Stop() = %+v, %v", res, err)
	}
	if _, err := c.Stop(context.Background(), "", "u1"); err == nil {
		t.Error("Stop() without task_id error = nil")
	}
}

func TestClient_RequiresUser(t *testing.T) {
	if _, err := New(apitest.New()).Send(context.Background(), types.CompletionRequest{}); err == nil {
		t.Error("Send() without user error = nil")
	}
}
