package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jdziat/dify-go/pkg/types"
)

func (c *cli) datasets(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("datasets", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "items per page")
	keyword := fs.String("q", "", "filter by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := c.client.Datasets().List(ctx, types.DatasetsParams{Page: *page, Limit: *limit, Keyword: *keyword})
	if err != nil {
		return err
	}
	return c.print(list, func(w io.Writer) error {
		err := table(w, "ID\tNAME\tDOCUMENTS\tWORDS\tINDEXING", func(tw io.Writer) {
			for _, ds := range list.Data {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", ds.ID, ds.Name, ds.DocumentCount, ds.WordCount, ds.IndexingTechnique)
			}
		})
		if err == nil && list.HasMore {
			fmt.Fprintf(c.errOut, "more results: -page %d\n", list.NextPage())
		}
		return err
	})
}

func (c *cli) documents(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("documents", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "items per page")
	keyword := fs.String("q", "", "filter by name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: difyctl documents [-page n] [-limit n] <dataset-id>")
	}

	list, err := c.client.Documents().List(ctx, fs.Arg(0), types.DocumentsParams{Page: *page, Limit: *limit, Keyword: *keyword})
	if err != nil {
		return err
	}
	return c.print(list, func(w io.Writer) error {
		err := table(w, "ID\tNAME\tSTATUS\tWORDS\tENABLED", func(tw io.Writer) {
			for _, doc := range list.Data {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\n", doc.ID, doc.Name, doc.IndexingStatus, doc.WordCount, doc.Enabled)
			}
		})
		if err == nil && list.HasMore {
			fmt.Fprintf(c.errOut, "more results: -page %d\n", list.NextPage())
		}
		return err
	})
}

func (c *cli) retrieve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("retrieve", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	topK := fs.Int("top-k", 0, "number of segments to return")
	method := fs.String("method", string(types.SearchSemantic), "search method")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("usage: difyctl retrieve [-top-k n] <dataset-id> <query>")
	}

	req := types.RetrieveRequest{Query: strings.Join(fs.Args()[1:], " ")}
	if *topK > 0 {
		req.RetrievalModel = &types.RetrievalModel{
			SearchMethod: types.SearchMethod(*method),
			TopK:         *topK,
		}
	}
	resp, err := c.client.Datasets().Retrieve(ctx, fs.Arg(0), req)
	if err != nil {
		return err
	}
	return c.print(resp, func(w io.Writer) error {
		for i, rec := range resp.Records {
			fmt.Fprintf(w, "[%d] score=%.3f document=%s segment=%s\n", i+1, rec.Score, rec.Segment.DocumentID, rec.Segment.ID)
			fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(rec.Segment.Content))
		}
		if len(resp.Records) == 0 {
			fmt.Fprintln(w, "No matching segments.")
		}
		return nil
	})
}
