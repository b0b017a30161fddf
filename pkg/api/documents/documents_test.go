package documents

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	"github.com/jdziat/dify-go/pkg/types"
)

const docResponse = `{"document":{"id":"doc1","name":"guide","indexing_status":"waiting","doc_form":"text_model"},"batch":"b1"}`

func TestClient_CreateByText(t *testing.T) {
	doer := apitest.New().On("POST", "/datasets/ds1/document/create-by-text", docResponse)
	resp, err := New(doer).CreateByText(context.Background(), "ds1", types.CreateDocumentByTextRequest{
		Name:              "guide",
		Text:              "Step one...",
		IndexingTechnique: types.IndexingEconomy,
	})
	if err != nil {
		t.Fatalf("CreateByText() error = %v", err)
	}
	if resp.Document.ID != "doc1" || resp.Batch != "b1" {
		t.Errorf("CreateByText() = %+v", resp)
	}
	rule := doer.Last().BodyMap()["process_rule"].(map[string]any)
	if rule["mode"] != "automatic" {
		t.Errorf("process_rule = %v, want automatic default", rule)
	}

	if _, err := New(doer).CreateByText(context.Background(), "ds1", types.CreateDocumentByTextRequest{Name: "x"}); err == nil {
		t.Error("CreateByText() without text error = nil")
	}
}

func TestClient_CreateByFile(t *testing.T) {
	doer := apitest.New().On("POST", "/datasets/ds1/document/create-by-file", docResponse)
	resp, err := New(doer).CreateByFile(context.Background(), "ds1", "guide.md", strings.NewReader("# Guide"),
		types.DocumentFileOptions{
			IndexingTechnique: types.IndexingHighQuality,
			DocForm:           types.DocFormHierarchical,
			ProcessRule: &types.ProcessRule{
				Mode: "hierarchical",
				Rules: &types.ProcessRules{
					Segmentation: &types.Segmentation{Separator: "\n\n", MaxTokens: 500},
					ParentMode:   "paragraph",
				},
			},
		})
	if err != nil || resp.Batch != "b1" {
		t.Fatalf("CreateByFile() = %+v, %v", resp, err)
	}

	fields, files, err := doer.Last().FormValues()
	if err != nil {
		t.Fatal(err)
	}
	if files["file"] != "guide.md" || fields["file"] != "# Guide" {
		t.Errorf("file part = %q (%s)", fields["file"], files["file"])
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(fields["data"]), &data); err != nil {
		t.Fatalf("data part %q: %v", fields["data"], err)
	}
	if data["doc_form"] != "hierarchical_model" || data["indexing_technique"] != "high_quality" {
		t.Errorf("data = %v", data)
	}
}

func TestClient_Update(t *testing.T) {
	doer := apitest.New().
		On("POST", "/datasets/ds1/documents/doc1/update-by-text", docResponse).
		On("POST", "/datasets/ds1/documents/doc1/update-by-file", docResponse)
	c := New(doer)
	ctx := context.Background()

	if _, err := c.UpdateByText(ctx, "ds1", "doc1", types.UpdateDocumentByTextRequest{Text: "v2"}); err != nil {
		t.Fatal(err)
	}
	if body := doer.Last().BodyMap(); body["text"] != "v2" || body["process_rule"] != nil {
		t.Errorf("update-by-text body = %v", body)
	}

	if _, err := c.UpdateByFile(ctx, "ds1", "doc1", "v2.txt", strings.NewReader("v2"), types.DocumentFileOptions{}); err != nil {
		t.Fatal(err)
	}
	fields, _, err := doer.Last().FormValues()
	if err != nil || fields["data"] != "{}" {
		t.Errorf("update-by-file data = %q, %v", fields["data"], err)
	}
	if _, err := c.UpdateByFile(ctx, "ds1", "", "v2.txt", strings.NewReader("v2"), types.DocumentFileOptions{}); err == nil {
		t.Error("UpdateByFile() without document_id error = nil")
	}
}

func TestClient_IndexingStatus(t *testing.T) {
	doer := apitest.New().On("GET", "/datasets/ds1/documents/b1/indexing-status",
		`{"data":[{"id":"doc1","indexing_status":"indexing","completed_segments":3,"total_segments":10}]}`)
	list, err := New(doer).IndexingStatus(context.Background(), "ds1", "b1")
	if err != nil {
		t.Fatal(err)
	}
	st := list.Data[0]
	if st.Done() || st.CompletedSegments != 3 || st.TotalSegments != 10 {
		t.Errorf("IndexingStatus() = %+v", st)
	}
}

func TestClient_ListGetDelete(t *testing.T) {
	doer := apitest.New().
		On("GET", "/datasets/ds1/documents", `{"data":[{"id":"doc1","name":"guide","word_count":120}],"has_more":false,"limit":20,"total":1,"page":1}`).
		On("GET", "/datasets/ds1/documents/doc1", `{"id":"doc1","name":"guide","segment_count":4,"doc_metadata":[{"id":"m1","name":"author","type":"string","value":"ann"}]}`)
	c := New(doer)
	ctx := context.Background()

	list, err := c.List(ctx, "ds1", types.DocumentsParams{Keyword: "guide"})
	if err != nil || list.Total != 1 || list.Data[0].WordCount != 120 {
		t.Errorf("List() = %+v, %v", list, err)
	}

	doc, err := c.Get(ctx, "ds1", "doc1", types.DocumentMetadataAll)
	if err != nil || doc.SegmentCount != 4 || doc.Name != "guide" || len(doc.DocMetadata) != 1 {
		t.Errorf("Get() = %+v, %v", doc, err)
	}
	if doer.Last().Query.Get("metadata") != "all" {
		t.Errorf("query = %v", doer.Last().Query)
	}
	if _, err := c.Get(ctx, "ds1", "doc1", ""); err != nil {
		t.Fatal(err)
	}
	if doer.Last().Query != nil {
		t.Errorf("query = %v, want none", doer.Last().Query)
	}

	if err := c.Delete(ctx, "ds1", "doc1"); err != nil {
		t.Fatal(err)
	}
	if doer.Last().Method != "DELETE" {
		t.Errorf("method = %s", doer.Last().Method)
	}
}

func TestClient_UpdateStatus(t *testing.T) {
	doer := apitest.New().On("PATCH", "/datasets/ds1/documents/status/disable", `{"result":"success"}`)
	c := New(doer)
	ctx := context.Background()

	res, err := c.UpdateStatus(ctx, "ds1", types.DocumentDisable, "doc1", "doc2")
	if err != nil || !res.OK() {
		t.Errorf("UpdateStatus() = %+v, %v", res, err)
	}
	ids := doer.Last().BodyMap()["document_ids"].([]any)
	if len(ids) != 2 {
		t.Errorf("document_ids = %v", ids)
	}
	if _, err := c.UpdateStatus(ctx, "ds1", "purge", "doc1"); err == nil {
		t.Error("UpdateStatus(purge) error = nil")
	}
	if _, err := c.UpdateStatus(ctx, "ds1", types.DocumentEnable); err == nil {
		t.Error("UpdateStatus() without ids error = nil")
	}
}

func TestClient_UploadFile(t *testing.T) {
	doer := apitest.New().On("GET", "/datasets/ds1/documents/doc1/upload-file",
		`{"id":"f1","name":"guide.md","size":2048,"extension":"md","download_url":"https://files/f1"}`)
	info, err := New(doer).UploadFile(context.Background(), "ds1", "doc1")
	if err != nil || info.Extension != "md" || info.DownloadURL != "https://files/f1" {
		t.Errorf("UploadFile() = %+v, %v", info, err)
	}
}
