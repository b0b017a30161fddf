package types

// MetadataField is a metadata field defined on a dataset.
type MetadataField struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  MetadataType `json:"type"`
	Count int          `json:"count,omitempty"`
}

// MetadataValue is a metadata value on a document.
type MetadataValue struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  MetadataType `json:"type,omitempty"`
	Value JSON         `json:"value"`
}

// MetadataRequest creates a metadata field.
type MetadataRequest struct {
	Type MetadataType `json:"type"`
	Name string       `json:"name"`
}

// RenameMetadataRequest renames a metadata field.
type RenameMetadataRequest struct {
	Name string `json:"name"`
}

// DatasetMetadata is the reply of GET /datasets/{id}/metadata.
type DatasetMetadata struct {
	DocMetadata         []MetadataField `json:"doc_metadata"`
	BuiltInFieldEnabled bool            `json:"built_in_field_enabled"`
}

// DocumentMetadataOperation sets the metadata of one document.
type DocumentMetadataOperation struct {
	DocumentID   string          `json:"document_id"`
	MetadataList []MetadataValue `json:"metadata_list"`
}

// UpdateDocumentMetadataRequest is the body of POST
// /datasets/{id}/documents/metadata.
type UpdateDocumentMetadataRequest struct {
	OperationData []DocumentMetadataOperation `json:"operation_data"`
}
