package types

import "strings"

// EventSource is a stream of decoded events. *http.Stream[StreamEvent]
// implements it.
type EventSource interface {
	Next() bool
	Current() StreamEvent
	Err() error
	Close() error
}

// StreamHandler routes stream events to callbacks. Nil callbacks are
// skipped; events without a matching callback go to OnEvent. A callback
// returning an error stops dispatch and closes the stream.
type StreamHandler struct {
	OnMessage        func(ev StreamEvent) error
	OnMessageEnd     func(ev StreamEvent) error
	OnMessageReplace func(ev StreamEvent) error
	OnMessageFile    func(ev StreamEvent) error
	OnAgentThought   func(ev StreamEvent) error
	OnTTS            func(ev StreamEvent) error

	OnWorkflowStarted  func(ev StreamEvent, data *WorkflowStartedData) error
	OnNodeStarted      func(ev StreamEvent, data *NodeData) error
	OnNodeFinished     func(ev StreamEvent, data *NodeData) error
	OnTextChunk        func(ev StreamEvent, data *TextChunkData) error
	OnIteration        func(ev StreamEvent, data *IterationData) error
	OnWorkflowFinished func(ev StreamEvent, data *WorkflowRunData) error

	// OnError receives the error that ended the stream, including
	// in-band "error" events.
	OnError func(err error)

	// OnEvent receives every event no other callback handled.
	OnEvent func(ev StreamEvent) error
}

// Dispatch drains src into h and returns the first callback or stream
// error. The stream is always closed on return.
func Dispatch(src EventSource, h StreamHandler) error {
	defer src.Close()
	for src.Next() {
		if err := h.handle(src.Current()); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		if h.OnError != nil {
			h.OnError(err)
		}
		return err
	}
	return nil
}

func (h StreamHandler) handle(ev StreamEvent) error {
	switch ev.Event {
	case EventMessage, EventAgentMessage:
		if h.OnMessage != nil {
			return h.OnMessage(ev)
		}
	case EventMessageEnd:
		if h.OnMessageEnd != nil {
			return h.OnMessageEnd(ev)
		}
	case EventMessageReplace:
		if h.OnMessageReplace != nil {
			return h.OnMessageReplace(ev)
		}
	case EventMessageFile:
		if h.OnMessageFile != nil {
			return h.OnMessageFile(ev)
		}
	case EventAgentThought:
		if h.OnAgentThought != nil {
			return h.OnAgentThought(ev)
		}
	case EventTTSMessage, EventTTSMessageEnd:
		if h.OnTTS != nil {
			return h.OnTTS(ev)
		}
	case EventWorkflowStarted:
		if h.OnWorkflowStarted != nil {
			return withData(ev, ev.WorkflowStarted, h.OnWorkflowStarted)
		}
	case EventNodeStarted:
		if h.OnNodeStarted != nil {
			return withData(ev, ev.NodeStarted, h.OnNodeStarted)
		}
	case EventNodeFinished, EventNodeRetry:
		if h.OnNodeFinished != nil {
			return withData(ev, ev.NodeFinished, h.OnNodeFinished)
		}
	case EventTextChunk, EventTextReplace:
		if h.OnTextChunk != nil {
			return withData(ev, ev.TextChunk, h.OnTextChunk)
		}
	case EventIterationStarted, EventIterationNext, EventIterationCompleted,
		EventLoopStarted, EventLoopNext, EventLoopCompleted:
		if h.OnIteration != nil {
			return withData(ev, ev.Iteration, h.OnIteration)
		}
	case EventWorkflowFinished:
		if h.OnWorkflowFinished != nil {
			return withData(ev, ev.WorkflowFinished, h.OnWorkflowFinished)
		}
	}
	if h.OnEvent != nil {
		return h.OnEvent(ev)
	}
	return nil
}

func withData[T any](ev StreamEvent, decode func() (*T, error), fn func(StreamEvent, *T) error) error {
	data, err := decode()
	if err != nil {
		return err
	}
	return fn(ev, data)
}

// ChatResult is a chat or completion answer assembled from a stream.
type ChatResult struct {
	TaskID         string
	MessageID      string
	ConversationID string
	Answer         string
	Metadata       *MessageMetadata
	Thoughts       []AgentThought
	Files          []MessageFile
}

// CollectChat drains a chat or completion stream into a ChatResult.
// On error the partial result is returned with it.
func CollectChat(src EventSource) (*ChatResult, error) {
	res := &ChatResult{}
	var answer strings.Builder
	err := Dispatch(src, StreamHandler{
		OnEvent: func(ev StreamEvent) error {
			res.track(ev)
			return nil
		},
		OnMessage: func(ev StreamEvent) error {
			res.track(ev)
			answer.WriteString(ev.Answer)
			return nil
		},
		OnMessageReplace: func(ev StreamEvent) error {
			res.track(ev)
			answer.Reset()
			answer.WriteString(ev.Answer)
			return nil
		},
		OnMessageEnd: func(ev StreamEvent) error {
			res.track(ev)
			res.Metadata = ev.Metadata
			return nil
		},
		OnAgentThought: func(ev StreamEvent) error {
			res.track(ev)
			res.Thoughts = append(res.Thoughts, AgentThought{
				ID:           ev.ID,
				MessageID:    ev.MessageID,
				Position:     ev.Position,
				Thought:      ev.Thought,
				Observation:  ev.Observation,
				Tool:         ev.Tool,
				ToolInput:    ev.ToolInput,
				MessageFiles: ev.MessageFiles,
				CreatedAt:    ev.CreatedAt,
			})
			return nil
		},
		OnMessageFile: func(ev StreamEvent) error {
			res.track(ev)
			res.Files = append(res.Files, MessageFile{
				ID:        ev.ID,
				Type:      ev.Type,
				URL:       ev.URL,
				BelongsTo: ev.BelongsTo,
			})
			return nil
		},
	})
	res.Answer = answer.String()
	return res, err
}

func (r *ChatResult) track(ev StreamEvent) {
	if ev.TaskID != "" {
		r.TaskID = ev.TaskID
	}
	if ev.MessageID != "" {
		r.MessageID = ev.MessageID
	}
	if ev.ConversationID != "" {
		r.ConversationID = ev.ConversationID
	}
}

// WorkflowResult is a workflow run assembled from a stream.
type WorkflowResult struct {
	TaskID        string
	WorkflowRunID string
	// Text is the concatenation of text_chunk events.
	Text  string
	Nodes []NodeData
	Run   *WorkflowRunData
}

// CollectWorkflow drains a workflow stream into a WorkflowResult.
func CollectWorkflow(src EventSource) (*WorkflowResult, error) {
	res := &WorkflowResult{}
	var text strings.Builder
	track := func(ev StreamEvent) {
		if ev.TaskID != "" {
			res.TaskID = ev.TaskID
		}
		if ev.WorkflowRunID != "" {
			res.WorkflowRunID = ev.WorkflowRunID
		}
	}
	err := Dispatch(src, StreamHandler{
		OnEvent: func(ev StreamEvent) error {
			track(ev)
			return nil
		},
		OnTextChunk: func(ev StreamEvent, data *TextChunkData) error {
			track(ev)
			if ev.Event == EventTextReplace {
				text.Reset()
			}
			text.WriteString(data.Text)
			return nil
		},
		OnNodeFinished: func(ev StreamEvent, data *NodeData) error {
			track(ev)
			res.Nodes = append(res.Nodes, *data)
			return nil
		},
		OnWorkflowFinished: func(ev StreamEvent, data *WorkflowRunData) error {
			track(ev)
			res.Run = data
			return nil
		},
	})
	res.Text = text.String()
	return res, err
}
