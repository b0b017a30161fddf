// Package dify provides a Go SDK for the Dify HTTP API.
//
// Dify exposes every published app (chat, agent, completion, workflow) and
// every knowledge base over a REST API authenticated with bearer keys. This
// SDK wraps that API with typed clients and a small transport layer that
// works with any HTTP executor.
//
// # Quick Start
//
// Create a client with an app key and send a chat message:
//
//	client, err := dify.New(os.Getenv("DIFY_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Chat().Send(ctx, types.ChatRequest{
//	    Query: "What is Dify?",
//	    User:  "user-123",
//	})
//
// Streaming replies are read with a pull iterator. The stream owns the
// response body until it is closed or drained:
//
//	stream, err := client.Chat().Stream(ctx, types.ChatRequest{
//	    Query: "Tell me a story",
//	    User:  "user-123",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for stream.Next() {
//	    fmt.Print(stream.Current().Answer)
//	}
//	if err := stream.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Knowledge Bases
//
// Dataset endpoints take a dataset key ("dataset-..."). A client can hold
// both kinds of keys; the knowledge clients (Datasets, Documents, Segments,
// Tags, Metadata) use the dataset key when one is configured:
//
//	client, err := dify.New(appKey, dify.WithDatasetAPIKey(datasetKey))
//
// # Configuration
//
//	client, err := dify.New(apiKey,
//	    dify.WithBaseURL("https://dify.internal.example.com/v1"),
//	    dify.WithTimeout(2*time.Minute),
//	    dify.WithMaxIdleConnsPerHost(32),
//	    dify.WithHeader("X-Tenant", "acme"),
//	    dify.WithDebug(true),
//	)
//
// NewFromEnv reads DIFY_API_KEY, DIFY_DATASET_API_KEY, DIFY_BASE_URL,
// DIFY_TIMEOUT, DIFY_USER and DIFY_DEBUG. NewFromFile reads a YAML file.
//
// # Transport
//
// Every call is sent exactly once. The SDK does not retry; errors carry
// enough information (status, Dify error code, Retry-After) for callers to
// implement their own policy. Any value with a Do(*http.Request) method can
// be plugged in as the executor:
//
//	client, err := dify.New(apiKey, dify.WithExecutor(instrument.NewExecutor(nil)))
//
// # Error Handling
//
// Non-2xx replies are returned as *APIError and match the status sentinels
// with errors.Is:
//
//	_, err := client.Datasets().Get(ctx, id)
//	if errors.Is(err, dify.ErrNotFound) {
//	    // ...
//	}
//
// Error events on a stream surface as *StreamError from Stream.Err.
//
// # Thread Safety
//
// The Client is safe for concurrent use and starts no goroutines. Streams
// and request builders must be used from a single goroutine.
package dify

// Version is the SDK version sent in the User-Agent header.
const Version = "0.4.0"

// UserAgent is the default User-Agent header value.
const UserAgent = "dify-go/" + Version
