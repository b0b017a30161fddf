package types

import (
	"encoding/json"
	"fmt"

	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
	pkghttp "github.com/jdziat/dify-go/pkg/http"
)

// EventType names a server-sent event of a chat, completion or workflow stream.
type EventType string

const (
	EventMessage        EventType = "message"
	EventAgentMessage   EventType = "agent_message"
	EventAgentThought   EventType = "agent_thought"
	EventMessageFile    EventType = "message_file"
	EventMessageEnd     EventType = "message_end"
	EventMessageReplace EventType = "message_replace"
	EventTTSMessage     EventType = "tts_message"
	EventTTSMessageEnd  EventType = "tts_message_end"

	EventWorkflowStarted  EventType = "workflow_started"
	EventWorkflowFinished EventType = "workflow_finished"
	EventNodeStarted      EventType = "node_started"
	EventNodeFinished     EventType = "node_finished"
	EventNodeRetry        EventType = "node_retry"
	EventTextChunk        EventType = "text_chunk"
	EventTextReplace      EventType = "text_replace"

	EventIterationStarted   EventType = "iteration_started"
	EventIterationNext      EventType = "iteration_next"
	EventIterationCompleted EventType = "iteration_completed"
	EventLoopStarted        EventType = "loop_started"
	EventLoopNext           EventType = "loop_next"
	EventLoopCompleted      EventType = "loop_completed"

	EventParallelBranchStarted  EventType = "parallel_branch_started"
	EventParallelBranchFinished EventType = "parallel_branch_finished"

	EventAgentLog EventType = "agent_log"
	EventError    EventType = "error"
	EventPing     EventType = "ping"
)

// String returns the string representation of the event type.
func (e EventType) String() string { return string(e) }

// IsWorkflow reports whether the event belongs to workflow execution.
func (e EventType) IsWorkflow() bool {
	switch e {
	case EventWorkflowStarted, EventWorkflowFinished, EventNodeStarted, EventNodeFinished,
		EventNodeRetry, EventTextChunk, EventTextReplace,
		EventIterationStarted, EventIterationNext, EventIterationCompleted,
		EventLoopStarted, EventLoopNext, EventLoopCompleted,
		EventParallelBranchStarted, EventParallelBranchFinished, EventAgentLog:
		return true
	}
	return false
}

// EventStream is a decoded chat, completion or workflow event stream.
type EventStream = pkghttp.Stream[StreamEvent]

// NewEventStream decodes the events read by r.
func NewEventStream(r *pkghttp.EventReader) *EventStream {
	return pkghttp.NewStream[StreamEvent](r)
}

var _ EventSource = (*EventStream)(nil)

// StreamEvent is one decoded server-sent event. It carries the union of
// the fields of every event kind; which ones are set depends on Event.
// Workflow events keep their payload in Data, decoded by the typed accessors.
type StreamEvent struct {
	Event          EventType `json:"event"`
	TaskID         string    `json:"task_id,omitempty"`
	ID             string    `json:"id,omitempty"`
	MessageID      string    `json:"message_id,omitempty"`
	ConversationID string    `json:"conversation_id,omitempty"`
	WorkflowRunID  string    `json:"workflow_run_id,omitempty"`
	CreatedAt      Timestamp `json:"created_at,omitempty"`

	// message, agent_message, message_replace
	Answer string `json:"answer,omitempty"`
	// tts_message: base64 encoded mp3 chunk
	Audio string `json:"audio,omitempty"`

	// message_end
	Metadata *MessageMetadata `json:"metadata,omitempty"`

	// message_file
	Type      string `json:"type,omitempty"`
	BelongsTo string `json:"belongs_to,omitempty"`
	URL       string `json:"url,omitempty"`

	// agent_thought
	Position     int      `json:"position,omitempty"`
	Thought      string   `json:"thought,omitempty"`
	Observation  string   `json:"observation,omitempty"`
	Tool         string   `json:"tool,omitempty"`
	ToolInput    string   `json:"tool_input,omitempty"`
	MessageFiles []string `json:"message_files,omitempty"`

	// error
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	Data json.RawMessage `json:"data,omitempty"`
}

// StreamErr returns the in-band error of an "error" event, nil otherwise.
func (e StreamEvent) StreamErr() error {
	if e.Event != EventError {
		return nil
	}
	return &pkgerrors.StreamError{
		Status:    e.Status,
		DifyCode:  e.Code,
		Message:   e.Message,
		TaskID:    e.TaskID,
		MessageID: e.MessageID,
	}
}

// IsText reports whether the event carries a piece of the answer.
func (e StreamEvent) IsText() bool {
	return e.Event == EventMessage || e.Event == EventAgentMessage
}

// WorkflowStarted decodes a workflow_started payload.
func (e StreamEvent) WorkflowStarted() (*WorkflowStartedData, error) {
	return decodeData[WorkflowStartedData](e, EventWorkflowStarted)
}

// WorkflowFinished decodes a workflow_finished payload.
func (e StreamEvent) WorkflowFinished() (*WorkflowRunData, error) {
	return decodeData[WorkflowRunData](e, EventWorkflowFinished)
}

// NodeStarted decodes a node_started payload.
func (e StreamEvent) NodeStarted() (*NodeData, error) {
	return decodeData[NodeData](e, EventNodeStarted)
}

// NodeFinished decodes a node_finished or node_retry payload.
func (e StreamEvent) NodeFinished() (*NodeData, error) {
	return decodeData[NodeData](e, EventNodeFinished, EventNodeRetry)
}

// TextChunk decodes a text_chunk or text_replace payload.
func (e StreamEvent) TextChunk() (*TextChunkData, error) {
	return decodeData[TextChunkData](e, EventTextChunk, EventTextReplace)
}

// Iteration decodes an iteration or loop payload.
func (e StreamEvent) Iteration() (*IterationData, error) {
	return decodeData[IterationData](e,
		EventIterationStarted, EventIterationNext, EventIterationCompleted,
		EventLoopStarted, EventLoopNext, EventLoopCompleted)
}

func decodeData[T any](e StreamEvent, kinds ...EventType) (*T, error) {
	match := false
	for _, k := range kinds {
		if e.Event == k {
			match = true
			break
		}
	}
	if !match {
		return nil, fmt.Errorf("types: event %q does not carry %T", e.Event, *new(T))
	}
	out := new(T)
	if len(e.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return nil, fmt.Errorf("types: decode %s data: %w", e.Event, err)
	}
	return out, nil
}

// WorkflowStartedData is the payload of workflow_started.
type WorkflowStartedData struct {
	ID             string     `json:"id"`
	WorkflowID     string     `json:"workflow_id"`
	SequenceNumber int        `json:"sequence_number"`
	Inputs         JSONObject `json:"inputs"`
	CreatedAt      Timestamp  `json:"created_at"`
}

// NodeData is the payload of node_started and node_finished.
type NodeData struct {
	ID                string         `json:"id"`
	NodeID            string         `json:"node_id"`
	NodeType          string         `json:"node_type"`
	Title             string         `json:"title"`
	Index             int            `json:"index"`
	PredecessorNodeID string         `json:"predecessor_node_id,omitempty"`
	Inputs            JSONObject     `json:"inputs,omitempty"`
	ProcessData       JSON           `json:"process_data,omitempty"`
	Outputs           JSONObject     `json:"outputs,omitempty"`
	Status            WorkflowStatus `json:"status,omitempty"`
	Error             string         `json:"error,omitempty"`
	ElapsedTime       float64        `json:"elapsed_time,omitempty"`
	ExecutionMetadata *struct {
		TotalTokens int     `json:"total_tokens"`
		TotalPrice  Decimal `json:"total_price"`
		Currency    string  `json:"currency"`
	} `json:"execution_metadata,omitempty"`
	CreatedAt  Timestamp `json:"created_at"`
	FinishedAt Timestamp `json:"finished_at,omitempty"`
}

// TextChunkData is the payload of text_chunk.
type TextChunkData struct {
	Text                 string   `json:"text"`
	FromVariableSelector []string `json:"from_variable_selector,omitempty"`
}

// IterationData is the payload of iteration and loop events.
type IterationData struct {
	ID          string     `json:"id"`
	NodeID      string     `json:"node_id"`
	NodeType    string     `json:"node_type"`
	Title       string     `json:"title"`
	Index       int        `json:"index,omitempty"`
	Inputs      JSONObject `json:"inputs,omitempty"`
	Outputs     JSONObject `json:"outputs,omitempty"`
	Status      string     `json:"status,omitempty"`
	Error       string     `json:"error,omitempty"`
	ElapsedTime float64    `json:"elapsed_time,omitempty"`
	TotalTokens int        `json:"total_tokens,omitempty"`
	Steps       int        `json:"steps,omitempty"`
	CreatedAt   Timestamp  `json:"created_at"`
	FinishedAt  Timestamp  `json:"finished_at,omitempty"`
}
