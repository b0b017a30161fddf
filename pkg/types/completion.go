package types

// CompletionRequest is the body of POST /completion-messages.
// The prompt goes into Inputs, usually under "query".
type CompletionRequest struct {
	Inputs       JSONObject   `json:"inputs"`
	ResponseMode ResponseMode `json:"response_mode"`
	User         string       `json:"user"`
	Files        []FileInput  `json:"files,omitempty"`
}

// CompletionResponse is the reply of a blocking completion request.
type CompletionResponse struct {
	Event     string          `json:"event"`
	TaskID    string          `json:"task_id"`
	ID        string          `json:"id"`
	MessageID string          `json:"message_id"`
	Mode      string          `json:"mode"`
	Answer    string          `json:"answer"`
	Metadata  MessageMetadata `json:"metadata"`
	CreatedAt Timestamp       `json:"created_at"`
}
