// Package adkagent exposes a Dify chat app as a Google ADK agent.
//
//	difyAgent, err := adkagent.New(adkagent.Config{
//	    Name:   "support",
//	    Client: client,
//	})
//
// Every invocation streams one chat message. Tokens are yielded as partial
// events and the full answer as the final event. The Dify conversation is
// tracked per ADK session, so follow-up messages in a session continue the
// same conversation.
package adkagent

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	dify "github.com/jdziat/dify-go"
	"github.com/jdziat/dify-go/conversation"
	"github.com/jdziat/dify-go/pkg/types"
)

// Config configures a Dify-backed agent.
type Config struct {
	// Name is the agent name. Required.
	Name string
	// Description is shown to parent agents and in agent cards.
	Description string
	// Client sends the chat messages. Required.
	Client *dify.Client
	// User is the Dify end-user identifier. Defaults to the session's user
	// id, then to the client's user.
	User string
	// Inputs are sent as the app's input variables on every message.
	Inputs map[string]any
	// Conversations maps ADK session ids to Dify conversation ids.
	// Defaults to an in-memory store.
	Conversations conversation.Store
}

// ContextWithAPIKey returns a context whose Dify calls authenticate with
// apiKey instead of the client's key. Set it in the HTTP layer in front of
// the agent to forward a caller's key.
func ContextWithAPIKey(ctx context.Context, apiKey string) context.Context {
	return dify.WithAPIKey(ctx, apiKey)
}

// New returns an agent.Agent whose Run calls the Dify chat-messages API
// in streaming mode.
func New(cfg Config) (agent.Agent, error) {
	if cfg.Name == "" {
		return nil, errors.New("adkagent: Name must not be empty")
	}
	if cfg.Client == nil {
		return nil, errors.New("adkagent: Client must not be nil")
	}
	if cfg.Conversations == nil {
		cfg.Conversations = conversation.NewMemoryStore(0)
	}

	r := &runner{
		cfg:     cfg,
		tracker: conversation.NewTracker(cfg.Client.Chat(), cfg.Conversations),
	}
	return agent.New(agent.Config{
		Name:        cfg.Name,
		Description: cfg.Description,
		Run:         r.run,
	})
}

type runner struct {
	cfg     Config
	tracker *conversation.Tracker
}

func (r *runner) run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		query := extractQuery(ctx.UserContent())
		if query == "" {
			yield(r.event(ctx, "(empty input)", false), nil)
			return
		}

		key := ""
		if s := ctx.Session(); s != nil {
			key = s.ID()
		}
		req := types.ChatRequest{
			Query:  query,
			User:   r.user(ctx),
			Inputs: r.cfg.Inputs,
		}

		var (
			stream types.EventSource
			err    error
		)
		if key == "" {
			stream, err = r.cfg.Client.Chat().Stream(ctx, req)
		} else {
			stream, err = r.tracker.Stream(ctx, key, req)
		}
		if err != nil {
			yield(nil, fmt.Errorf("adkagent: dify request failed: %w", err))
			return
		}
		defer stream.Close()

		var full strings.Builder
		for stream.Next() {
			ev := stream.Current()
			switch ev.Event {
			case types.EventMessage, types.EventAgentMessage:
				full.WriteString(ev.Answer)
			case types.EventMessageReplace:
				full.Reset()
				full.WriteString(ev.Answer)
			default:
				continue
			}
			if ev.Answer == "" {
				continue
			}
			if !yield(r.event(ctx, ev.Answer, true), nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			yield(nil, fmt.Errorf("adkagent: dify stream failed: %w", err))
			return
		}

		yield(r.event(ctx, full.String(), false), nil)
	}
}

func (r *runner) user(ctx agent.InvocationContext) string {
	if r.cfg.User != "" {
		return r.cfg.User
	}
	if s := ctx.Session(); s != nil && s.UserID() != "" {
		return s.UserID()
	}
	return r.cfg.Client.User()
}

func (r *runner) event(ctx agent.InvocationContext, text string, partial bool) *session.Event {
	ev := session.NewEvent(ctx.InvocationID())
	ev.Author = r.cfg.Name
	ev.Branch = ctx.Branch()
	ev.LLMResponse = model.LLMResponse{
		Content: textContent(text),
		Partial: partial,
	}
	return ev
}

// extractQuery joins the text parts of the user message.
func extractQuery(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

func textContent(text string) *genai.Content {
	return genai.NewContentFromText(text, genai.RoleModel)
}
