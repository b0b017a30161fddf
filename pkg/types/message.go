package types

import (
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Message is one turn of a conversation.
type Message struct {
	ID                 string              `json:"id"`
	ConversationID     string              `json:"conversation_id"`
	Inputs             JSONObject          `json:"inputs"`
	Query              string              `json:"query"`
	Answer             string              `json:"answer"`
	MessageFiles       []MessageFile       `json:"message_files"`
	Feedback           *Feedback           `json:"feedback"`
	RetrieverResources []RetrieverResource `json:"retriever_resources"`
	AgentThoughts      []AgentThought      `json:"agent_thoughts"`
	Status             string              `json:"status,omitempty"`
	Error              string              `json:"error,omitempty"`
	CreatedAt          Timestamp           `json:"created_at"`
}

// MessageFile is a file produced by or attached to a message.
type MessageFile struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	BelongsTo string `json:"belongs_to"`
}

// AgentThought is one reasoning step of an agent app.
type AgentThought struct {
	ID           string    `json:"id"`
	MessageID    string    `json:"message_id"`
	ChainID      string    `json:"chain_id,omitempty"`
	Position     int       `json:"position"`
	Thought      string    `json:"thought"`
	Observation  string    `json:"observation"`
	Tool         string    `json:"tool"`
	ToolLabels   JSON      `json:"tool_labels,omitempty"`
	ToolInput    string    `json:"tool_input"`
	MessageFiles []string  `json:"message_files"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Feedback is the rating a user left on a message.
type Feedback struct {
	Rating Rating `json:"rating"`
}

// MessagesParams selects the history of a conversation.
type MessagesParams struct {
	ConversationID string
	User           string
	FirstID        string
	Limit          int
}

// ToQuery encodes the parameters.
func (p MessagesParams) ToQuery() url.Values {
	q := pkghttp.CursorParams{FirstID: p.FirstID, Limit: p.Limit}.ToQuery()
	q.Set("conversation_id", p.ConversationID)
	q.Set("user", p.User)
	return q
}

// MessageList is a page of messages, oldest first.
type MessageList struct {
	pkghttp.PageMeta
	Data []Message `json:"data"`
}

// FeedbackRequest rates a message. A nil Rating revokes the feedback.
type FeedbackRequest struct {
	Rating  *Rating `json:"rating"`
	User    string  `json:"user"`
	Content string  `json:"content,omitempty"`
}

// RatingPtr returns a pointer to r for use in FeedbackRequest.
func RatingPtr(r Rating) *Rating {
	return &r
}

// AppFeedback is an entry of GET /app/feedbacks.
type AppFeedback struct {
	ID             string `json:"id"`
	AppID          string `json:"app_id"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Rating         Rating `json:"rating"`
	Content        string `json:"content"`
	FromSource     string `json:"from_source"`
	FromEndUserID  string `json:"from_end_user_id"`
	FromAccountID  string `json:"from_account_id"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// AppFeedbackList is a page of app feedback.
type AppFeedbackList struct {
	Data []AppFeedback `json:"data"`
}
