package dify

import (
	"fmt"

	pkgconfig "github.com/jdziat/dify-go/pkg/config"
)

// Environment variable names for configuration.
const (
	// EnvAPIKey is the environment variable for the app API key.
	EnvAPIKey = pkgconfig.EnvAPIKey
	// EnvDatasetAPIKey is the environment variable for the knowledge base API key.
	EnvDatasetAPIKey = pkgconfig.EnvDatasetAPIKey
	// EnvBaseURL is the environment variable for the Dify API base URL.
	EnvBaseURL = pkgconfig.EnvBaseURL
	// EnvTimeout is the environment variable for the request timeout
	// ("90s" or a number of seconds).
	EnvTimeout = pkgconfig.EnvTimeout
	// EnvUser is the environment variable for the default end-user identifier.
	EnvUser = pkgconfig.EnvUser
	// EnvDebug is the environment variable to enable debug mode.
	EnvDebug = pkgconfig.EnvDebug
)

// NewFromEnv creates a new client using environment variables for configuration.
// It reads DIFY_API_KEY and/or DIFY_DATASET_API_KEY, and optionally
// DIFY_BASE_URL, DIFY_TIMEOUT, DIFY_USER and DIFY_DEBUG.
//
// Example:
//
//	client, err := dify.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	apiKey := pkgconfig.GetEnvString(EnvAPIKey, "")
	datasetKey := pkgconfig.GetEnvString(EnvDatasetAPIKey, "")

	if apiKey == "" && datasetKey == "" {
		return nil, fmt.Errorf("dify: %s or %s environment variable is required", EnvAPIKey, EnvDatasetAPIKey)
	}

	// Prepend env var options so explicit options can override them
	envOpts := make([]ConfigOption, 0, 5)

	if datasetKey != "" {
		envOpts = append(envOpts, WithDatasetAPIKey(datasetKey))
	}
	if baseURL := pkgconfig.GetEnvString(EnvBaseURL, ""); baseURL != "" {
		envOpts = append(envOpts, WithBaseURL(baseURL))
	}
	if timeout := pkgconfig.GetEnvDuration(EnvTimeout, 0); timeout != 0 {
		envOpts = append(envOpts, WithTimeout(timeout))
	}
	if user := pkgconfig.GetEnvString(EnvUser, ""); user != "" {
		envOpts = append(envOpts, WithUser(user))
	}
	if pkgconfig.GetEnvBool(EnvDebug) {
		envOpts = append(envOpts, WithDebug(true))
	}

	return New(apiKey, append(envOpts, opts...)...)
}
