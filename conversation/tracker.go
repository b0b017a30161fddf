package conversation

import (
	"context"
	"errors"

	dify "github.com/jdziat/dify-go"
	"github.com/jdziat/dify-go/pkg/types"
)

// ChatClient is the part of the chat client a Tracker needs.
type ChatClient interface {
	Send(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	Stream(ctx context.Context, req types.ChatRequest) (*types.EventStream, error)
}

// Tracker sends chat messages in the conversation stored under a key and
// records the conversation Dify assigns. A request that already names a
// conversation is sent unchanged.
//
// When Dify answers 404 for a stored conversation (deleted, or expired on
// the server) the key is forgotten and the error returned; the next call
// starts a new conversation.
type Tracker struct {
	chat  ChatClient
	store Store
}

// NewTracker creates a Tracker.
func NewTracker(chat ChatClient, store Store) *Tracker {
	return &Tracker{chat: chat, store: store}
}

// Store returns the underlying store.
func (t *Tracker) Store() Store { return t.store }

// Send sends a blocking chat message.
func (t *Tracker) Send(ctx context.Context, key string, req types.ChatRequest) (*types.ChatResponse, error) {
	stored, err := t.resolve(ctx, key, &req)
	if err != nil {
		return nil, err
	}

	resp, err := t.chat.Send(ctx, req)
	if err != nil {
		return nil, t.forgetOnNotFound(ctx, key, stored, err)
	}

	if resp.ConversationID != "" && resp.ConversationID != req.ConversationID {
		if err := t.store.Set(ctx, key, resp.ConversationID); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// Stream sends a streaming chat message. The conversation id is saved as
// soon as an event carries it.
func (t *Tracker) Stream(ctx context.Context, key string, req types.ChatRequest) (*Stream, error) {
	stored, err := t.resolve(ctx, key, &req)
	if err != nil {
		return nil, err
	}

	events, err := t.chat.Stream(ctx, req)
	if err != nil {
		return nil, t.forgetOnNotFound(ctx, key, stored, err)
	}
	return &Stream{
		events: events,
		ctx:    ctx,
		key:    key,
		store:  t.store,
		saved:  req.ConversationID,
	}, nil
}

// Forget drops the conversation stored under key.
func (t *Tracker) Forget(ctx context.Context, key string) error {
	return t.store.Delete(ctx, key)
}

// resolve fills an empty req.ConversationID from the store and returns
// the id it loaded. It returns "" when the request names its own
// conversation.
func (t *Tracker) resolve(ctx context.Context, key string, req *types.ChatRequest) (string, error) {
	if req.ConversationID != "" {
		return "", nil
	}
	id, err := t.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	req.ConversationID = id
	return id, nil
}

func (t *Tracker) forgetOnNotFound(ctx context.Context, key, stored string, err error) error {
	if stored != "" && errors.Is(err, dify.ErrNotFound) {
		if delErr := t.store.Delete(ctx, key); delErr != nil {
			return errors.Join(err, delErr)
		}
	}
	return err
}

// Stream is an event stream that records the conversation id it reports.
type Stream struct {
	events *types.EventStream
	ctx    context.Context
	key    string
	store  Store
	saved  string
	err    error
}

// Next advances to the next event.
func (s *Stream) Next() bool {
	if s.err != nil || !s.events.Next() {
		return false
	}
	if id := s.events.Current().ConversationID; id != "" && id != s.saved {
		if err := s.store.Set(s.ctx, s.key, id); err != nil {
			s.err = err
			s.events.Close()
			return false
		}
		s.saved = id
	}
	return true
}

// Current returns the event read by the last Next.
func (s *Stream) Current() types.StreamEvent { return s.events.Current() }

// Err returns the error that stopped the stream.
func (s *Stream) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.events.Err()
}

// Close releases the response.
func (s *Stream) Close() error { return s.events.Close() }

// ConversationID returns the conversation id seen so far.
func (s *Stream) ConversationID() string { return s.saved }

var _ types.EventSource = (*Stream)(nil)
