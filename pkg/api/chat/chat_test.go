package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/types"
)

func TestClient_Send(t *testing.T) {
	doer := apitest.New().On("POST", MessagesEndpoint, `{
		"event":"message","message_id":"m1","conversation_id":"c1","answer":"Paris",
		"metadata":{"usage":{"total_tokens":42,"total_price":"0.0004","currency":"USD"}},
		"created_at":1705407629
	}`)
	resp, err := New(doer).Send(context.Background(), types.ChatRequest{
		Query: "Capital of France?",
		User:  "u1",
		Files: []types.FileInput{types.RemoteFile(types.FileTypeImage, "https://img/x.png")},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Answer != "Paris" || resp.ConversationID != "c1" {
		t.Errorf("Send() = %+v", resp)
	}
	if resp.Metadata.Usage == nil || resp.Metadata.Usage.TotalTokens != 42 {
		t.Errorf("Usage = %+v", resp.Metadata.Usage)
	}

	body := doer.Last().BodyMap()
	if body["response_mode"] != "blocking" {
		t.Errorf("response_mode = %v", body["response_mode"])
	}
	if inputs, ok := body["inputs"].(map[string]any); !ok || len(inputs) != 0 {
		t.Errorf("inputs = %v, want empty object", body["inputs"])
	}
	if _, ok := body["conversation_id"]; ok {
		t.Error("conversation_id sent for a new conversation")
	}
}

func TestClient_SendValidation(t *testing.T) {
	c := New(apitest.New())
	_, err := c.Send(context.Background(), types.ChatRequest{User: "u1"})
	if v, ok := pkgerrors.AsValidationError(err); !ok || v.Field != "query" {
		t.Errorf("Send() error = %v, want query required", err)
	}
	_, err = c.Stream(context.Background(), types.ChatRequest{Query: "hi"})
	if v, ok := pkgerrors.AsValidationError(err); !ok || v.Field != "user" {
		t.Errorf("Stream() error = %v, want user required", err)
	}
}

func TestClient_Stream(t *testing.T) {
	doer := apitest.New().On("POST", MessagesEndpoint,
		"data: {\"event\":\"message\",\"task_id\":\"t1\",\"conversation_id\":\"c1\",\"answer\":\"Hi \"}\n\n"+
			"event: ping\n\n"+
			"data: {\"event\":\"message\",\"answer\":\"there\"}\n\n"+
			"data: {\"event\":\"message_end\",\"metadata\":{\"usage\":{\"total_tokens\":3}}}\n\n")

	stream, err := New(doer).Stream(context.Background(), types.ChatRequest{Query: "hello", User: "u1", ConversationID: "c1"})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	res, err := types.CollectChat(stream)
	if err != nil {
		t.Fatal(err)
	}
	if res.Answer != "Hi there" || res.TaskID != "t1" {
		t.Errorf("result = %+v", res)
	}
	body := doer.Last().BodyMap()
	if body["response_mode"] != "streaming" || body["conversation_id"] != "c1" {
		t.Errorf("body = %v", body)
	}
}

func TestClient_StopAndSuggested(t *testing.T) {
	doer := apitest.New().
		On("POST", "/chat-messages/task-1/stop", `{"result":"success"}`).
		On("GET", "/messages/m1/suggested", `{"result":"success","data":["Why?","How?"]}`)
	c := New(doer)

	res, err := c.Stop(context.Background(), "task-1", "u1")
	if err != nil || !res.OK() {
		t.Errorf("Stop() = %+v, %v", res, err)
	}
	if doer.Last().BodyMap()["user"] != "u1" {
		t.Errorf("stop body = %s", doer.Last().Body)
	}

	qs, err := c.Suggested(context.Background(), "m1", "u1")
	if err != nil || len(qs) != 2 {
		t.Errorf("Suggested() = %v, %v", qs, err)
	}
	if doer.Last().Query.Get("user") != "u1" {
		t.Errorf("query = %v", doer.Last().Query)
	}
}

func TestClient_Feedback(t *testing.T) {
	doer := apitest.New().On("POST", "/messages/m1/feedbacks", `{"result":"success"}`)
	c := New(doer)

	if _, err := c.Feedback(context.Background(), "m1", types.FeedbackRequest{
		Rating: types.RatingPtr(types.RatingLike), User: "u1", Content: "great",
	}); err != nil {
		t.Fatal(err)
	}
	if got := doer.Last().BodyMap()["rating"]; got != "like" {
		t.Errorf("rating = %v", got)
	}

	if _, err := c.Feedback(context.Background(), "m1", types.FeedbackRequest{User: "u1"}); err != nil {
		t.Fatal(err)
	}
	body := doer.Last().BodyMap()
	if v, ok := body["rating"]; !ok || v != nil {
		t.Errorf("revoke rating = %v (present %v), want null", v, ok)
	}
}

func TestClient_History(t *testing.T) {
	doer := apitest.New().
		On("GET", HistoryEndpoint, `{"data":[{"id":"m1","query":"q","answer":"a","feedback":{"rating":"like"}}],"has_more":true,"limit":20}`).
		On("GET", ConversationsEndpoint, `{"data":[{"id":"c1","name":"Trip"}],"has_more":false,"limit":20}`)
	c := New(doer)

	msgs, err := c.Messages(context.Background(), types.MessagesParams{ConversationID: "c1", User: "u1", Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs.Data) != 1 || msgs.Data[0].Feedback.Rating != types.RatingLike || !msgs.HasMore {
		t.Errorf("Messages() = %+v", msgs)
	}
	if q := doer.Last().Query; q.Get("conversation_id") != "c1" || q.Get("limit") != "20" {
		t.Errorf("query = %v", q)
	}
	if _, err := c.Messages(context.Background(), types.MessagesParams{User: "u1"}); err == nil {
		t.Error("Messages() without conversation_id error = nil")
	}

	convs, err := c.Conversations(context.Background(), types.ConversationsParams{User: "u1"})
	if err != nil || len(convs.Data) != 1 || convs.Data[0].Name != "Trip" {
		t.Errorf("Conversations() = %+v, %v", convs, err)
	}
}

func TestClient_ConversationManagement(t *testing.T) {
	doer := apitest.New().
		On("POST", "/conversations/c1/name", `{"id":"c1","name":"Renamed"}`).
		On("GET", "/conversations/c1/variables", `{"data":[{"id":"v1","name":"city","value_type":"string","value":"Oslo"}],"has_more":false,"limit":100}`).
		On("PUT", "/conversations/c1/variables/v1", `{"id":"v1","name":"city","value":"Rome"}`)
	c := New(doer)
	ctx := context.Background()

	if err := c.DeleteConversation(ctx, "c1", "u1"); err != nil {
		t.Fatal(err)
	}
	if call := doer.Last(); call.Method != "DELETE" || call.Path != "/conversations/c1" || call.BodyMap()["user"] != "u1" {
		t.Errorf("delete call = %+v", call)
	}

	conv, err := c.RenameConversation(ctx, "c1", types.RenameConversationRequest{Name: "Renamed", User: "u1"})
	if err != nil || conv.Name != "Renamed" {
		t.Errorf("RenameConversation() = %+v, %v", conv, err)
	}
	if _, err := c.RenameConversation(ctx, "c1", types.RenameConversationRequest{User: "u1"}); err == nil {
		t.Error("RenameConversation() without name error = nil")
	}
	if _, err := c.RenameConversation(ctx, "c1", types.RenameConversationRequest{AutoGenerate: true, User: "u1"}); err != nil {
		t.Errorf("RenameConversation(auto) error = %v", err)
	}

	vars, err := c.ConversationVariables(ctx, "c1", types.ConversationVariablesParams{User: "u1", VariableName: "city"})
	if err != nil || len(vars.Data) != 1 || vars.Data[0].Value != "Oslo" {
		t.Errorf("ConversationVariables() = %+v, %v", vars, err)
	}
	if doer.Last().Query.Get("variable_name") != "city" {
		t.Errorf("query = %v", doer.Last().Query)
	}

	v, err := c.UpdateConversationVariable(ctx, "c1", "v1", types.UpdateVariableRequest{Value: "Rome", User: "u1"})
	if err != nil || v.Value != "Rome" {
		t.Errorf("UpdateConversationVariable() = %+v, %v", v, err)
	}
}

func TestClient_PropagatesDoerError(t *testing.T) {
	doer := apitest.New()
	doer.Err = pkgerrors.NewAPIError(404, []byte(`{"code":"not_found","message":"Conversation Not Exists.","status":404}`))
	_, err := New(doer).Send(context.Background(), types.ChatRequest{Query: "q", User: "u", ConversationID: "gone"})
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("Send() error = %v, want not found", err)
	}
}

func TestPathEscaping(t *testing.T) {
	doer := apitest.New()
	_, _ = New(doer).Stop(context.Background(), "../admin", "u1")
	if got := doer.Last().Path; got != "/chat-messages/..%2Fadmin/stop" {
		t.Errorf("path = %q", got)
	}
}
