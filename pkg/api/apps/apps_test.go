package apps

import (
	"context"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	"github.com/jdziat/dify-go/pkg/http"
)

func TestClient_Info(t *testing.T) {
	doer := apitest.New().On("GET", InfoEndpoint, `{"name":"Support Bot","mode":"advanced-chat","tags":["faq"]}`)
	info, err := New(doer).Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.Name != "Support Bot" || info.Mode != "advanced-chat" || len(info.Tags) != 1 {
		t.Errorf("Info() = %+v", info)
	}
}

func TestClient_Parameters(t *testing.T) {
	doer := apitest.New().On("GET", ParametersEndpoint, `{
		"opening_statement":"Hi!",
		"suggested_questions_after_answer":{"enabled":true},
		"user_input_form":[{"paragraph":{"label":"Notes","variable":"notes","required":true}}],
		"system_parameters":{"file_size_limit":15}
	}`)
	params, err := New(doer).Parameters(context.Background())
	if err != nil {
		t.Fatalf("Parameters() error = %v", err)
	}
	if params.OpeningStatement != "Hi!" || !params.SuggestedQuestionsAfterAnswer.Enabled {
		t.Errorf("Parameters() = %+v", params)
	}
	if len(params.UserInputForm) != 1 || params.UserInputForm[0].Type != "paragraph" {
		t.Errorf("UserInputForm = %+v", params.UserInputForm)
	}
	if params.SystemParameters.FileSizeLimit != 15 {
		t.Errorf("FileSizeLimit = %d", params.SystemParameters.FileSizeLimit)
	}
}

func TestClient_MetaAndSite(t *testing.T) {
	doer := apitest.New().
		On("GET", MetaEndpoint, `{"tool_icons":{"search":"https://icons/search.svg"}}`).
		On("GET", SiteEndpoint, `{"title":"Helpdesk","default_language":"en-US","show_workflow_steps":true}`)
	c := New(doer)

	meta, err := c.Meta(context.Background())
	if err != nil || meta.ToolIcons["search"].URL != "https://icons/search.svg" {
		t.Errorf("Meta() = %+v, %v", meta, err)
	}
	site, err := c.Site(context.Background())
	if err != nil || site.Title != "Helpdesk" || !site.ShowWorkflowSteps {
		t.Errorf("Site() = %+v, %v", site, err)
	}
}

func TestClient_Feedbacks(t *testing.T) {
	doer := apitest.New().On("GET", FeedbacksEndpoint, `{"data":[{"id":"f1","rating":"dislike","content":"wrong"}]}`)
	list, err := New(doer).Feedbacks(context.Background(), http.PageParams{Page: 2, Limit: 50})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Data) != 1 || list.Data[0].Rating != "dislike" {
		t.Errorf("Feedbacks() = %+v", list)
	}
	if q := doer.Last().Query; q.Get("page") != "2" || q.Get("limit") != "50" {
		t.Errorf("query = %v", q)
	}
}
