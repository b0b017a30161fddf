package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func (c *cli) info(ctx context.Context) error {
	info, err := c.client.Apps().Info(ctx)
	if err != nil {
		return err
	}
	return c.print(info, func(w io.Writer) error {
		fmt.Fprintf(w, "Name:        %s\n", info.Name)
		fmt.Fprintf(w, "Mode:        %s\n", info.Mode)
		fmt.Fprintf(w, "Author:      %s\n", info.AuthorName)
		if len(info.Tags) > 0 {
			fmt.Fprintf(w, "Tags:        %s\n", strings.Join(info.Tags, ", "))
		}
		if info.Description != "" {
			fmt.Fprintf(w, "Description: %s\n", info.Description)
		}
		return nil
	})
}

func (c *cli) parameters(ctx context.Context) error {
	params, err := c.client.Apps().Parameters(ctx)
	if err != nil {
		return err
	}
	return c.print(params, func(w io.Writer) error {
		if params.OpeningStatement != "" {
			fmt.Fprintf(w, "Opening statement: %s\n\n", params.OpeningStatement)
		}
		if len(params.UserInputForm) == 0 {
			fmt.Fprintln(w, "No input variables.")
			return nil
		}
		return table(w, "VARIABLE\tTYPE\tREQUIRED\tLABEL", func(tw io.Writer) {
			for _, f := range params.UserInputForm {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", f.Variable, f.Type, f.Required, f.Label)
			}
		})
	})
}

func (c *cli) upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: difyctl upload <file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	uploaded, err := c.client.Files().Upload(ctx, c.cfg.User(), filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	return c.print(uploaded, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d bytes\n", uploaded.ID, uploaded.Name, uploaded.Size)
		return err
	})
}
