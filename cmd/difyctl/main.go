// Package main provides the difyctl command line client for Dify apps and
// knowledge bases.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	dify "github.com/jdziat/dify-go"
	"github.com/jdziat/dify-go/internal/cli/config"
)

const version = "0.1.0"

// cli carries what every command needs.
type cli struct {
	cfg    *config.Config
	client *dify.Client
	out    io.Writer
	errOut io.Writer
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "--version", "-v":
		fmt.Printf("difyctl version %s (sdk %s)\n", version, dify.Version)
		return
	case "help", "--help", "-h":
		printUsage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	client, err := cfg.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{cfg: cfg, client: client, out: os.Stdout, errOut: os.Stderr}
	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run executes one command with its arguments.
func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "chat":
		return c.chat(ctx, args)
	case "complete":
		return c.complete(ctx, args)
	case "run-workflow":
		return c.runWorkflow(ctx, args)
	case "info":
		return c.info(ctx)
	case "parameters":
		return c.parameters(ctx)
	case "upload":
		return c.upload(ctx, args)
	case "datasets":
		return c.datasets(ctx, args)
	case "documents":
		return c.documents(ctx, args)
	case "retrieve":
		return c.retrieve(ctx, args)
	default:
		printUsage(c.errOut)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `difyctl - command line client for Dify apps and knowledge bases

Usage:
  difyctl <command> [flags] [arguments]

Commands:
  chat [-c id] [-inputs json] <query>     Send a chat message, streaming the answer
  complete [-inputs json] <query>         Run a text generation app
  run-workflow <inputs-json>              Run a workflow app
  info                                    Show app information
  parameters                              Show app input parameters
  upload <file>                           Upload a file for use in messages
  datasets [-page n] [-limit n] [-q kw]   List knowledge bases
  documents [-page n] [-limit n] <id>     List documents of a knowledge base
  retrieve [-top-k n] <id> <query>        Query a knowledge base
  version                                 Print version information
  help                                    Show this help message

Environment Variables:
  DIFY_API_KEY          App API key
  DIFY_DATASET_API_KEY  Knowledge base API key
  DIFY_BASE_URL         API base URL (default https://api.dify.ai/v1)
  DIFY_USER             End-user identifier sent with requests
  DIFY_TIMEOUT          Request timeout, e.g. 90s
  DIFY_DEBUG            Set to "true" to log requests
  DIFYCTL_OUTPUT        Output format: text or json
  DIFYCTL_STREAM        Set to "false" to use blocking mode

Configuration:
  Create .difyctl.yaml in your project; it is searched for from the
  working directory upwards. A .env file in the working directory is
  loaded first. ${VAR} references in keys and URLs are expanded.`)
}
