package config

import (
	"os"
	"path/filepath"
	"testing"

	dify "github.com/jdziat/dify-go"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		dify.EnvAPIKey, dify.EnvDatasetAPIKey, dify.EnvBaseURL, dify.EnvTimeout,
		dify.EnvUser, dify.EnvDebug, "DIFYCTL_OUTPUT", "DIFYCTL_STREAM",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != OutputText {
		t.Errorf("expected default output to be text, got %s", cfg.Output)
	}
	if !cfg.Stream {
		t.Error("expected streaming to be enabled by default")
	}
	if cfg.User() != dify.DefaultUser {
		t.Errorf("expected default user %s, got %s", dify.DefaultUser, cfg.User())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested", "deeper")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	content := `api_key: ${CTL_TEST_KEY}
base_url: http://dify.lan/v1
user: ops
output: json
stream: false
inputs:
  topic: billing
workflow:
  id: wf-1
`
	if err := os.WriteFile(filepath.Join(dir, ".difyctl.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, ".env"), []byte("CTL_TEST_KEY=app-from-dotenv-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CTL_TEST_KEY", "")
	os.Unsetenv("CTL_TEST_KEY")
	t.Chdir(sub)
	t.Setenv(dify.EnvBaseURL, "http://override.lan/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "app-from-dotenv-1" {
		t.Errorf("APIKey = %q, want value from .env", cfg.APIKey)
	}
	if cfg.BaseURL != "http://override.lan/v1" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
	if cfg.Output != OutputJSON || cfg.Stream {
		t.Errorf("Output = %v, Stream = %v", cfg.Output, cfg.Stream)
	}
	if cfg.Inputs["topic"] != "billing" || cfg.Workflow.ID != "wf-1" {
		t.Errorf("Inputs = %v, Workflow = %+v", cfg.Inputs, cfg.Workflow)
	}
	if cfg.User() != "ops" {
		t.Errorf("User() = %q", cfg.User())
	}
	if filepath.Base(cfg.Path) != ".difyctl.yaml" {
		t.Errorf("Path = %q", cfg.Path)
	}

	client, err := cfg.NewClient()
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if got := client.Config().BaseURL; got != "http://override.lan/v1" {
		t.Errorf("client BaseURL = %q", got)
	}
}

func TestLoad_InvalidOutput(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("DIFYCTL_OUTPUT", "yaml")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject unknown output format")
	}
}

func TestNewClient_NoKey(t *testing.T) {
	if _, err := DefaultConfig().NewClient(); err == nil {
		t.Error("NewClient() without a key should fail")
	}
}
