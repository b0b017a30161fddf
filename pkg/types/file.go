package types

// UploadedFile is the reply of POST /files/upload.
type UploadedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Extension  string    `json:"extension"`
	MimeType   string    `json:"mime_type"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  Timestamp `json:"created_at"`
	PreviewURL string    `json:"preview_url,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
}

// AsInput returns a FileInput referencing the uploaded file.
func (f UploadedFile) AsInput(t FileType) FileInput {
	return LocalFile(t, f.ID)
}

// FileContent is a downloaded file body with its metadata.
type FileContent struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition when the server sends one.
	Filename string
}
