package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jdziat/dify-go/internal/cli/config"
	"github.com/jdziat/dify-go/pkg/types"
)

func (c *cli) chat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	conversationID := fs.String("c", "", "conversation to continue")
	rawInputs := fs.String("inputs", "", "app inputs as a JSON object")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if query == "" {
		return errors.New("usage: difyctl chat [-c id] [-inputs json] <query>")
	}
	inputs, err := c.inputs(*rawInputs)
	if err != nil {
		return err
	}

	req := types.ChatRequest{
		Query:          query,
		Inputs:         inputs,
		User:           c.cfg.User(),
		ConversationID: *conversationID,
	}

	if !c.cfg.Stream {
		resp, err := c.client.Chat().Send(ctx, req)
		if err != nil {
			return err
		}
		return c.print(resp, func(w io.Writer) error {
			fmt.Fprintln(w, resp.Answer)
			fmt.Fprintf(c.errOut, "conversation: %s\n", resp.ConversationID)
			return nil
		})
	}

	stream, err := c.client.Chat().Stream(ctx, req)
	if err != nil {
		return err
	}
	return c.streamAnswer(stream)
}

func (c *cli) complete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	rawInputs := fs.String("inputs", "", "app inputs as a JSON object")
	if err := fs.Parse(args); err != nil {
		return err
	}
	inputs, err := c.inputs(*rawInputs)
	if err != nil {
		return err
	}
	if query := strings.Join(fs.Args(), " "); query != "" {
		inputs["query"] = query
	}
	if len(inputs) == 0 {
		return errors.New("usage: difyctl complete [-inputs json] <query>")
	}

	req := types.CompletionRequest{Inputs: inputs, User: c.cfg.User()}

	if !c.cfg.Stream {
		resp, err := c.client.Completion().Send(ctx, req)
		if err != nil {
			return err
		}
		return c.print(resp, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, resp.Answer)
			return err
		})
	}

	stream, err := c.client.Completion().Stream(ctx, req)
	if err != nil {
		return err
	}
	return c.streamAnswer(stream)
}

// streamAnswer writes answer text as it arrives. In json mode the
// collected result is printed once the stream ends.
func (c *cli) streamAnswer(stream types.EventSource) error {
	if c.cfg.Output == config.OutputJSON {
		result, err := types.CollectChat(stream)
		if err != nil {
			return err
		}
		return c.print(result, nil)
	}

	var conversationID string
	err := types.Dispatch(stream, types.StreamHandler{
		OnMessage: func(ev types.StreamEvent) error {
			_, err := io.WriteString(c.out, ev.Answer)
			return err
		},
		OnMessageReplace: func(ev types.StreamEvent) error {
			_, err := fmt.Fprintf(c.out, "\n%s", ev.Answer)
			return err
		},
		OnMessageEnd: func(ev types.StreamEvent) error {
			conversationID = ev.ConversationID
			return nil
		},
	})
	fmt.Fprintln(c.out)
	if err != nil {
		return err
	}
	if conversationID != "" {
		fmt.Fprintf(c.errOut, "conversation: %s\n", conversationID)
	}
	return nil
}
