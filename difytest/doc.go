// Package difytest provides testing utilities for applications using the dify-go SDK.
//
// # Mock Server
//
// MockServer records every request and answers registered routes. Routes
// use gorilla/mux path templates below /v1:
//
//	server := difytest.NewMockServer()
//	defer server.Close()
//
//	server.HandleJSON(http.MethodGet, "/info", 200, map[string]string{"name": "demo"})
//	server.HandleStream(http.MethodPost, "/chat-messages",
//	    map[string]any{"event": "message", "answer": "Hi"},
//	    map[string]any{"event": "message_end", "message_id": "m1"},
//	)
//
//	client, _ := dify.New("app-key", dify.WithBaseURL(server.BaseURL()))
//
// Unrouted requests get a Dify-style 404 unless a scenario is configured:
//
//	server.RespondWithRateLimit(5)
//
// # Test Client
//
// Use NewTestClient for a pre-configured client with a mock server:
//
//	func TestMyFeature(t *testing.T) {
//	    client, server := difytest.NewTestClient(t)
//	    server.HandleJSON(http.MethodGet, "/parameters", 200, params)
//	    // ...
//	    if !server.HasRequestWithPath("/v1/parameters") {
//	        t.Error("parameters not fetched")
//	    }
//	}
//
// # Mock Metrics and Logger
//
//	metrics := difytest.NewMockMetrics()
//	logger := difytest.NewMockLogger()
//	client, server := difytest.NewTestClientWithConfig(t,
//	    dify.WithMetrics(metrics),
//	    dify.WithStructuredLogger(logger),
//	)
package difytest
