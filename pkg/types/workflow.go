package types

import (
	"bytes"
	"encoding/json"
	"net/url"

	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// WorkflowRequest is the body of POST /workflows/run.
type WorkflowRequest struct {
	Inputs       JSONObject   `json:"inputs"`
	ResponseMode ResponseMode `json:"response_mode"`
	User         string       `json:"user"`
	Files        []FileInput  `json:"files,omitempty"`
	TraceID      string       `json:"trace_id,omitempty"`
}

// WorkflowResponse is the reply of a blocking workflow run.
type WorkflowResponse struct {
	WorkflowRunID string          `json:"workflow_run_id"`
	TaskID        string          `json:"task_id"`
	Data          WorkflowRunData `json:"data"`
}

// WorkflowRunData is the outcome of a run.
type WorkflowRunData struct {
	ID          string         `json:"id"`
	WorkflowID  string         `json:"workflow_id"`
	Status      WorkflowStatus `json:"status"`
	Outputs     JSONObject     `json:"outputs"`
	Error       string         `json:"error,omitempty"`
	ElapsedTime float64        `json:"elapsed_time"`
	TotalTokens int            `json:"total_tokens"`
	TotalSteps  int            `json:"total_steps"`
	CreatedAt   Timestamp      `json:"created_at"`
	FinishedAt  Timestamp      `json:"finished_at"`
}

// WorkflowRun is the reply of GET /workflows/run/{id}. Dify returns inputs
// and outputs either as objects or as JSON encoded strings; both are kept
// raw and decoded with DecodeInputs and DecodeOutputs.
type WorkflowRun struct {
	ID          string          `json:"id"`
	WorkflowID  string          `json:"workflow_id"`
	Status      WorkflowStatus  `json:"status"`
	Inputs      json.RawMessage `json:"inputs"`
	Outputs     json.RawMessage `json:"outputs"`
	Error       string          `json:"error,omitempty"`
	TotalSteps  int             `json:"total_steps"`
	TotalTokens int             `json:"total_tokens"`
	ElapsedTime float64         `json:"elapsed_time"`
	CreatedAt   Timestamp       `json:"created_at"`
	FinishedAt  Timestamp       `json:"finished_at"`
}

// DecodeInputs returns the run inputs as an object.
func (r WorkflowRun) DecodeInputs() (JSONObject, error) {
	return decodeEmbeddedObject(r.Inputs)
}

// DecodeOutputs returns the run outputs as an object.
func (r WorkflowRun) DecodeOutputs() (JSONObject, error) {
	return decodeEmbeddedObject(r.Outputs)
}

// decodeEmbeddedObject decodes an object that may itself be JSON encoded
// inside a string.
func decodeEmbeddedObject(raw json.RawMessage) (JSONObject, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		raw = json.RawMessage(s)
	}
	var out JSONObject
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WorkflowLogsParams filters GET /workflows/logs.
type WorkflowLogsParams struct {
	Keyword                   string
	Status                    WorkflowStatus
	Page                      int
	Limit                     int
	CreatedByEndUserSessionID string
	CreatedByAccount          string
}

// ToQuery encodes the parameters.
func (p WorkflowLogsParams) ToQuery() url.Values {
	q := pkghttp.PageParams{Page: p.Page, Limit: p.Limit}.ToQuery()
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.CreatedByEndUserSessionID != "" {
		q.Set("created_by_end_user_session_id", p.CreatedByEndUserSessionID)
	}
	if p.CreatedByAccount != "" {
		q.Set("created_by_account", p.CreatedByAccount)
	}
	return q
}

// EndUser is the app user that triggered a run.
type EndUser struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	IsAnonymous bool   `json:"is_anonymous"`
	SessionID   string `json:"session_id"`
}

// WorkflowLog is one entry of the workflow log.
type WorkflowLog struct {
	ID          string `json:"id"`
	WorkflowRun struct {
		ID          string         `json:"id"`
		Version     string         `json:"version"`
		Status      WorkflowStatus `json:"status"`
		Error       string         `json:"error,omitempty"`
		ElapsedTime float64        `json:"elapsed_time"`
		TotalTokens int            `json:"total_tokens"`
		TotalSteps  int            `json:"total_steps"`
		CreatedAt   Timestamp      `json:"created_at"`
		FinishedAt  Timestamp      `json:"finished_at"`
	} `json:"workflow_run"`
	CreatedFrom      string    `json:"created_from"`
	CreatedByRole    string    `json:"created_by_role"`
	CreatedByAccount JSON      `json:"created_by_account"`
	CreatedByEndUser *EndUser  `json:"created_by_end_user"`
	CreatedAt        Timestamp `json:"created_at"`
}

// WorkflowLogList is a page of workflow logs.
type WorkflowLogList struct {
	pkghttp.PageMeta
	Data []WorkflowLog `json:"data"`
}
