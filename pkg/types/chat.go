package types

// FileInput attaches a file to a chat, completion or workflow request.
// Use URL with TransferMethodRemoteURL or UploadFileID with
// TransferMethodLocalFile.
type FileInput struct {
	Type           FileType       `json:"type"`
	TransferMethod TransferMethod `json:"transfer_method"`
	URL            string         `json:"url,omitempty"`
	UploadFileID   string         `json:"upload_file_id,omitempty"`
}

// RemoteFile returns a FileInput pointing at a URL.
func RemoteFile(t FileType, url string) FileInput {
	return FileInput{Type: t, TransferMethod: TransferMethodRemoteURL, URL: url}
}

// LocalFile returns a FileInput referencing a file uploaded with the files API.
func LocalFile(t FileType, uploadFileID string) FileInput {
	return FileInput{Type: t, TransferMethod: TransferMethodLocalFile, UploadFileID: uploadFileID}
}

// ChatRequest is the body of POST /chat-messages.
type ChatRequest struct {
	Query            string       `json:"query"`
	Inputs           JSONObject   `json:"inputs"`
	ResponseMode     ResponseMode `json:"response_mode"`
	User             string       `json:"user"`
	ConversationID   string       `json:"conversation_id,omitempty"`
	Files            []FileInput  `json:"files,omitempty"`
	AutoGenerateName *bool        `json:"auto_generate_name,omitempty"`
	WorkflowID       string       `json:"workflow_id,omitempty"`
}

// ChatResponse is the reply of a blocking chat request.
type ChatResponse struct {
	Event          string          `json:"event"`
	TaskID         string          `json:"task_id"`
	ID             string          `json:"id"`
	MessageID      string          `json:"message_id"`
	ConversationID string          `json:"conversation_id"`
	Mode           string          `json:"mode"`
	Answer         string          `json:"answer"`
	Metadata       MessageMetadata `json:"metadata"`
	CreatedAt      Timestamp       `json:"created_at"`
}

// MessageMetadata holds usage and retrieval citations of a message.
type MessageMetadata struct {
	Usage              *Usage              `json:"usage,omitempty"`
	RetrieverResources []RetrieverResource `json:"retriever_resources,omitempty"`
	AnnotationReply    *AnnotationReply    `json:"annotation_reply,omitempty"`
}

// AnnotationReply marks an answer served from an annotation.
type AnnotationReply struct {
	ID      string `json:"id"`
	Account struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"account"`
}

// Usage is the token and price accounting of a model call.
type Usage struct {
	PromptTokens        int     `json:"prompt_tokens"`
	PromptUnitPrice     Decimal `json:"prompt_unit_price,omitempty"`
	PromptPriceUnit     Decimal `json:"prompt_price_unit,omitempty"`
	PromptPrice         Decimal `json:"prompt_price,omitempty"`
	CompletionTokens    int     `json:"completion_tokens"`
	CompletionUnitPrice Decimal `json:"completion_unit_price,omitempty"`
	CompletionPriceUnit Decimal `json:"completion_price_unit,omitempty"`
	CompletionPrice     Decimal `json:"completion_price,omitempty"`
	TotalTokens         int     `json:"total_tokens"`
	TotalPrice          Decimal `json:"total_price,omitempty"`
	Currency            string  `json:"currency,omitempty"`
	Latency             float64 `json:"latency,omitempty"`
}

// RetrieverResource is a knowledge citation attached to an answer.
type RetrieverResource struct {
	Position     int     `json:"position"`
	DatasetID    string  `json:"dataset_id"`
	DatasetName  string  `json:"dataset_name"`
	DocumentID   string  `json:"document_id"`
	DocumentName string  `json:"document_name"`
	SegmentID    string  `json:"segment_id"`
	Score        float64 `json:"score"`
	Content      string  `json:"content"`
}

// StopRequest is the body of the stop endpoints.
type StopRequest struct {
	User string `json:"user"`
}

// SuggestedResponse lists follow-up questions for a message.
type SuggestedResponse struct {
	Result string   `json:"result"`
	Data   []string `json:"data"`
}
