package types

// Tag is a knowledge tag.
type Tag struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	BindingCount FlexInt `json:"binding_count,omitempty"`
}

// TagRequest creates a tag.
type TagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest renames a tag.
type UpdateTagRequest struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

// DeleteTagRequest is the body of DELETE /datasets/tags.
type DeleteTagRequest struct {
	TagID string `json:"tag_id"`
}

// BindTagsRequest attaches tags to a dataset.
type BindTagsRequest struct {
	TagIDs   []string `json:"tag_ids"`
	TargetID string   `json:"target_id"`
}

// UnbindTagRequest removes a tag from a dataset.
type UnbindTagRequest struct {
	TagID    string `json:"tag_id"`
	TargetID string `json:"target_id"`
}

// DatasetTags lists the tags bound to one dataset.
type DatasetTags struct {
	Data  []Tag `json:"data"`
	Total int   `json:"total"`
}
