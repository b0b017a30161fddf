package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jdziat/dify-go/internal/cli/config"
	"github.com/jdziat/dify-go/pkg/types"
)

func (c *cli) runWorkflow(ctx context.Context, args []string) error {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	}
	inputs, err := c.inputs(raw)
	if err != nil {
		return err
	}
	req := types.WorkflowRequest{Inputs: inputs, User: c.cfg.User()}
	wf := c.client.Workflows()
	id := c.cfg.Workflow.ID

	if !c.cfg.Stream {
		var resp *types.WorkflowResponse
		if id != "" {
			resp, err = wf.RunVersion(ctx, id, req)
		} else {
			resp, err = wf.Run(ctx, req)
		}
		if err != nil {
			return err
		}
		return c.finishWorkflow(&resp.Data)
	}

	var stream *types.EventStream
	if id != "" {
		stream, err = wf.RunVersionStream(ctx, id, req)
	} else {
		stream, err = wf.RunStream(ctx, req)
	}
	if err != nil {
		return err
	}

	var run *types.WorkflowRunData
	err = types.Dispatch(stream, types.StreamHandler{
		OnNodeFinished: func(_ types.StreamEvent, node *types.NodeData) error {
			fmt.Fprintf(c.errOut, "node %s (%s): %s %.2fs\n", node.Title, node.NodeType, node.Status, node.ElapsedTime)
			return nil
		},
		OnTextChunk: func(ev types.StreamEvent, chunk *types.TextChunkData) error {
			if c.cfg.Output == config.OutputJSON {
				return nil
			}
			if ev.Event == types.EventTextReplace {
				fmt.Fprintln(c.out)
			}
			_, err := io.WriteString(c.out, chunk.Text)
			return err
		},
		OnWorkflowFinished: func(_ types.StreamEvent, data *types.WorkflowRunData) error {
			run = data
			return nil
		},
	})
	if err != nil {
		return err
	}
	if run == nil {
		return errors.New("workflow stream ended without a result")
	}
	return c.finishWorkflow(run)
}

// finishWorkflow prints the run outputs and reports a failed run as an error.
func (c *cli) finishWorkflow(run *types.WorkflowRunData) error {
	if err := c.print(run, func(w io.Writer) error {
		fmt.Fprintf(c.errOut, "workflow %s: %s in %.2fs, %d tokens\n", run.ID, run.Status, run.ElapsedTime, run.TotalTokens)
		if len(run.Outputs) == 0 {
			return nil
		}
		fmt.Fprintln(w)
		return printJSON(w, run.Outputs)
	}); err != nil {
		return err
	}
	switch run.Status {
	case types.WorkflowFailed, types.WorkflowStopped:
		if run.Error != "" {
			return fmt.Errorf("workflow %s: %s", run.Status, run.Error)
		}
		return fmt.Errorf("workflow %s", run.Status)
	}
	return nil
}
