package segments

import (
	"context"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	"github.com/jdziat/dify-go/pkg/types"
)

const base = "/datasets/ds1/documents/doc1/segments"

func TestClient_Segments(t *testing.T) {
	doer := apitest.New().
		On("POST", base, `{"data":[{"id":"s1","content":"Q1","answer":"A1","keywords":["q"]}],"doc_form":"qa_model"}`).
		On("GET", base, `{"data":[{"id":"s1","content":"Q1","enabled":true}],"doc_form":"text_model","has_more":false,"limit":20,"total":1,"page":1}`).
		On("GET", base+"/s1", `{"data":{"id":"s1","content":"Q1","tokens":7},"doc_form":"text_model"}`).
		On("POST", base+"/s1", `{"data":{"id":"s1","content":"Q1 edited","enabled":false},"doc_form":"text_model"}`)
	c := New(doer)
	ctx := context.Background()

	created, err := c.Create(ctx, "ds1", "doc1", types.SegmentInput{Content: "Q1", Answer: "A1", Keywords: []string{"q"}})
	if err != nil || created.DocForm != types.DocFormQA || created.Data[0].Answer != "A1" {
		t.Errorf("Create() = %+v, %v", created, err)
	}
	segs := doer.Last().BodyMap()["segments"].([]any)
	if len(segs) != 1 || segs[0].(map[string]any)["content"] != "Q1" {
		t.Errorf("segments body = %v", segs)
	}
	if _, err := c.Create(ctx, "ds1", "doc1"); err == nil {
		t.Error("Create() with no segments error = nil")
	}
	if _, err := c.Create(ctx, "ds1", "doc1", types.SegmentInput{}); err == nil {
		t.Error("Create() with empty content error = nil")
	}

	list, err := c.List(ctx, "ds1", "doc1", types.SegmentsParams{Status: "completed"})
	if err != nil || list.Total != 1 || !list.Data[0].Enabled {
		t.Errorf("List() = %+v, %v", list, err)
	}
	if doer.Last().Query.Get("status") != "completed" {
		t.Errorf("query = %v", doer.Last().Query)
	}

	got, err := c.Get(ctx, "ds1", "doc1", "s1")
	if err != nil || got.Data.Tokens != 7 {
		t.Errorf("Get() = %+v, %v", got, err)
	}

	disabled := false
	updated, err := c.Update(ctx, "ds1", "doc1", "s1", types.UpdateSegment{Content: "Q1 edited", Enabled: &disabled})
	if err != nil || updated.Data.Content != "Q1 edited" {
		t.Errorf("Update() = %+v, %v", updated, err)
	}
	seg := doer.Last().BodyMap()["segment"].(map[string]any)
	if seg["enabled"] != false || seg["content"] != "Q1 edited" {
		t.Errorf("segment body = %v", seg)
	}

	if err := c.Delete(ctx, "ds1", "doc1", "s1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "ds1", "doc1", ""); err == nil {
		t.Error("Delete() without segment_id error = nil")
	}
}

func TestClient_ChildChunks(t *testing.T) {
	doer := apitest.New().
		On("POST", base+"/s1/child_chunks", `{"data":{"id":"cc1","segment_id":"s1","content":"part","position":1}}`).
		On("GET", base+"/s1/child_chunks", `{"data":[{"id":"cc1","content":"part"}],"total":1,"total_pages":1,"page":1,"limit":20}`).
		On("PATCH", base+"/s1/child_chunks/cc1", `{"data":{"id":"cc1","content":"part v2"}}`)
	c := New(doer)
	ctx := context.Background()

	cc, err := c.CreateChildChunk(ctx, "ds1", "doc1", "s1", "part")
	if err != nil || cc.ID != "cc1" || cc.Position != 1 {
		t.Errorf("CreateChildChunk() = %+v, %v", cc, err)
	}

	list, err := c.ListChildChunks(ctx, "ds1", "doc1", "s1", types.ChildChunksParams{Limit: 20})
	if err != nil || list.TotalPages != 1 || len(list.Data) != 1 {
		t.Errorf("ListChildChunks() = %+v, %v", list, err)
	}

	cc, err = c.UpdateChildChunk(ctx, "ds1", "doc1", "s1", "cc1", "part v2")
	if err != nil || cc.Content != "part v2" {
		t.Errorf("UpdateChildChunk() = %+v, %v", cc, err)
	}
	if _, err := c.UpdateChildChunk(ctx, "ds1", "doc1", "s1", "cc1", ""); err == nil {
		t.Error("UpdateChildChunk() without content error = nil")
	}

	if err := c.DeleteChildChunk(ctx, "ds1", "doc1", "s1", "cc1"); err != nil {
		t.Fatal(err)
	}
	if call := doer.Last(); call.Method != "DELETE" || call.Path != base+"/s1/child_chunks/cc1" {
		t.Errorf("delete call = %s %s", call.Method, call.Path)
	}
}
