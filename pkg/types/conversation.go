package types

import (
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// Conversation is a chat session.
type Conversation struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Inputs       JSONObject `json:"inputs"`
	Status       string     `json:"status"`
	Introduction string     `json:"introduction"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    Timestamp  `json:"updated_at"`
}

// ConversationsParams filters GET /conversations.
type ConversationsParams struct {
	User   string
	LastID string
	Limit  int
	// SortBy is one of created_at, -created_at, updated_at, -updated_at.
	SortBy string
}

// ToQuery encodes the parameters.
func (p ConversationsParams) ToQuery() url.Values {
	q := pkghttp.CursorParams{LastID: p.LastID, Limit: p.Limit}.ToQuery()
	q.Set("user", p.User)
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	return q
}

// ConversationList is a page of conversations.
type ConversationList struct {
	pkghttp.PageMeta
	Data []Conversation `json:"data"`
}

// RenameConversationRequest renames a conversation. With AutoGenerate
// set, Dify picks the name and Name is ignored.
type RenameConversationRequest struct {
	Name         string `json:"name,omitempty"`
	AutoGenerate bool   `json:"auto_generate"`
	User         string `json:"user"`
}

// ConversationVariable is a variable stored on a conversation.
type ConversationVariable struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ValueType   string    `json:"value_type"`
	Value       JSON      `json:"value"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// ConversationVariablesParams filters the variables of a conversation.
type ConversationVariablesParams struct {
	User         string
	LastID       string
	Limit        int
	VariableName string
}

// ToQuery encodes the parameters.
func (p ConversationVariablesParams) ToQuery() url.Values {
	q := pkghttp.CursorParams{LastID: p.LastID, Limit: p.Limit}.ToQuery()
	q.Set("user", p.User)
	if p.VariableName != "" {
		q.Set("variable_name", p.VariableName)
	}
	return q
}

// ConversationVariableList is a page of conversation variables.
type ConversationVariableList struct {
	pkghttp.PageMeta
	Data []ConversationVariable `json:"data"`
}

// UpdateVariableRequest sets the value of a conversation variable.
type UpdateVariableRequest struct {
	Value JSON   `json:"value"`
	User  string `json:"user"`
}
