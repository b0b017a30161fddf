package difytest

import (
	dify "github.com/jdziat/dify-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// TestAPIKey is the default test app key.
const TestAPIKey = "app-test-key-0000"

// TestDatasetAPIKey is the default test dataset key.
const TestDatasetAPIKey = "dataset-test-key-0000"

// NewTestClient creates a client pointed at a fresh MockServer.
// The client and server are automatically cleaned up when the test ends.
func NewTestClient(t TestingT) (*dify.Client, *MockServer) {
	t.Helper()
	return NewTestClientWithConfig(t)
}

// NewTestClientWithConfig creates a client with custom configuration for testing.
// Base options (mock server URL, test dataset key, no keep-alives) are applied
// first, then the provided options are applied on top.
func NewTestClientWithConfig(t TestingT, opts ...dify.ConfigOption) (*dify.Client, *MockServer) {
	t.Helper()

	server := NewMockServer()

	baseOpts := []dify.ConfigOption{
		dify.WithBaseURL(server.BaseURL()),
		dify.WithDatasetAPIKey(TestDatasetAPIKey),
		dify.WithDisableKeepAlives(true),
	}

	client, err := dify.New(TestAPIKey, append(baseOpts, opts...)...)
	if err != nil {
		server.Close()
		t.Fatalf("Failed to create test client: %v", err)
	}

	t.Cleanup(server.Close)

	return client, server
}
