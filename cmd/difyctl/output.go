package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"text/tabwriter"

	"github.com/jdziat/dify-go/internal/cli/config"
	"github.com/jdziat/dify-go/pkg/types"
)

// print writes v as indented JSON in json mode, otherwise calls text.
func (c *cli) print(v any, text func(w io.Writer) error) error {
	if c.cfg.Output == config.OutputJSON || text == nil {
		return printJSON(c.out, v)
	}
	return text(c.out)
}

// table writes tab separated rows aligned in columns.
func table(w io.Writer, header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

// inputs merges configured inputs with those given as a JSON object.
func (c *cli) inputs(raw string) (types.JSONObject, error) {
	out := types.JSONObject{}
	maps.Copy(out, c.cfg.Inputs)
	if raw == "" {
		return out, nil
	}
	var given types.JSONObject
	if err := json.Unmarshal([]byte(raw), &given); err != nil {
		return nil, fmt.Errorf("inputs must be a JSON object: %w", err)
	}
	maps.Copy(out, given)
	return out, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
