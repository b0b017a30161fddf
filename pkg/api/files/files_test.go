package files

import (
	"context"
	"io"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/jdziat/dify-go/pkg/api/internal/apitest"
	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
	"github.com/jdziat/dify-go/pkg/types"
)

func TestClient_Upload(t *testing.T) {
	doer := apitest.New().On("POST", UploadEndpoint, `{"id":"file-1","name":"cat.png","size":1024,"mime_type":"image/png"}`)
	f, err := New(doer).Upload(context.Background(), "u1", "cat.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if f.ID != "file-1" || f.Size != 1024 {
		t.Errorf("Upload() = %+v", f)
	}
	if in := f.AsInput(types.FileTypeImage); in.UploadFileID != "file-1" || in.TransferMethod != types.TransferMethodLocalFile {
		t.Errorf("AsInput() = %+v", in)
	}

	fields, files, err := doer.Last().FormValues()
	if err != nil {
		t.Fatal(err)
	}
	if fields["user"] != "u1" || fields["file"] != "png-bytes" || files["file"] != "cat.png" {
		t.Errorf("form fields = %v, files = %v", fields, files)
	}
}

func TestClient_UploadValidation(t *testing.T) {
	c := New(apitest.New())
	tests := []struct {
		name, user, filename, field string
		hasReader                   bool
	}{
		{"missing user", "", "a.txt", "user", true},
		{"missing filename", "u1", "", "filename", true},
		{"missing reader", "u1", "a.txt", "file", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r io.Reader
			if tt.hasReader {
				r = strings.NewReader("x")
			}
			_, err := c.Upload(context.Background(), tt.user, tt.filename, r)
			v, ok := pkgerrors.AsValidationError(err)
			if !ok || v.Field != tt.field {
				t.Errorf("Upload() error = %v, want %s required", err, tt.field)
			}
		})
	}
}

func TestClient_Preview(t *testing.T) {
	header := nethttp.Header{}
	header.Set("Content-Type", "application/pdf")
	header.Set("Content-Disposition", `attachment; filename="report.pdf"`)
	doer := apitest.New().OnWithHeader("GET", "/files/file-9/preview", "%PDF-1.7", header)

	content, err := New(doer).Preview(context.Background(), "file-9", true)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if string(content.Data) != "%PDF-1.7" || content.ContentType != "application/pdf" || content.Filename != "report.pdf" {
		t.Errorf("Preview() = %+v", content)
	}
	if doer.Last().Query.Get("as_attachment") != "true" {
		t.Errorf("query = %v", doer.Last().Query)
	}
	if _, err := New(doer).Preview(context.Background(), "", false); err == nil {
		t.Error("Preview(\"\") error = nil")
	}
}

func TestClient_PreviewLargeFile(t *testing.T) {
	header := nethttp.Header{}
	header.Set("Content-Type", "application/pdf")
	pdf := strings.Repeat("p", 12<<20)
	doer := apitest.New().OnWithHeader("GET", "/files/f1/preview", pdf, header)

	content, err := New(doer).Preview(context.Background(), "f1", false)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if len(content.Data) != len(pdf) {
		t.Errorf("Preview() returned %d bytes, want %d", len(content.Data), len(pdf))
	}
}
