package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

// MultipartForm is an ordered multipart/form-data body.
type MultipartForm struct {
	parts []formPart
	err   error
}

type formPart struct {
	name        string
	filename    string
	contentType string
	value       string
	reader      io.Reader
}

// NewMultipartForm creates an empty form.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{}
}

// Field adds a plain text field.
func (f *MultipartForm) Field(name, value string) *MultipartForm {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// JSONField adds a field holding v encoded as JSON. Dify's document
// endpoints take their settings this way in a field named "data".
func (f *MultipartForm) JSONField(name string, v any) *MultipartForm {
	data, err := json.Marshal(v)
	if err != nil {
		if f.err == nil {
			f.err = fmt.Errorf("dify: failed to encode form field %q: %w", name, err)
		}
		return f
	}
	f.parts = append(f.parts, formPart{name: name, value: string(data)})
	return f
}

// File adds a file part. An empty contentType is inferred from the
// filename extension.
func (f *MultipartForm) File(name, filename string, r io.Reader, contentType string) *MultipartForm {
	if contentType == "" {
		contentType = ContentTypeFor(filename)
	}
	f.parts = append(f.parts, formPart{name: name, filename: filename, contentType: contentType, reader: r})
	return f
}

// Len returns the number of parts.
func (f *MultipartForm) Len() int {
	return len(f.parts)
}

// HasFile reports whether the form contains a file part named name.
func (f *MultipartForm) HasFile(name string) bool {
	for _, p := range f.parts {
		if p.name == name && p.reader != nil {
			return true
		}
	}
	return false
}

// Encode writes the form into a buffer and returns it with the
// Content-Type header value including the boundary.
func (f *MultipartForm) Encode() (*bytes.Buffer, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, p := range f.parts {
		if p.reader == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("dify: failed to write form field %q: %w", p.name, err)
			}
			continue
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.name), escapeQuotes(p.filename)))
		h.Set("Content-Type", p.contentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("dify: failed to create form file %q: %w", p.filename, err)
		}
		if _, err := io.Copy(pw, p.reader); err != nil {
			return nil, "", fmt.Errorf("dify: failed to copy form file %q: %w", p.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("dify: failed to close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// ContentTypeFor returns the media type for filename's extension, or
// application/octet-stream. Types Dify accepts for documents and audio are
// fixed here so the result does not depend on the host's mime tables.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case "":
		return "application/octet-stream"
	case ".txt":
		return "text/plain"
	case ".md", ".markdown", ".mdx":
		return "text/markdown"
	case ".csv":
		return "text/csv"
	case ".mp3", ".mpga":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".webm":
		return "audio/webm"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
