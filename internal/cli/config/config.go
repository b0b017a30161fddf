// Package config provides configuration loading for difyctl.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dify "github.com/jdziat/dify-go"
	pkgconfig "github.com/jdziat/dify-go/pkg/config"
)

// Output is the output format of command results.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

// FileNames are the configuration files searched for, from the working
// directory up to the filesystem root.
var FileNames = []string{".difyctl.yaml", ".difyctl.yml"}

// Config represents the complete difyctl configuration.
type Config struct {
	dify.FileConfig `yaml:",inline"`

	Output   Output         `yaml:"output"`
	Stream   bool           `yaml:"stream"`
	Inputs   map[string]any `yaml:"inputs"`
	Workflow WorkflowConfig `yaml:"workflow"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// WorkflowConfig holds workflow run settings.
type WorkflowConfig struct {
	// ID pins runs to a specific published workflow version.
	ID string `yaml:"id"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
		Stream: true,
	}
}

// Load reads .env, the configuration file and DIFY_* environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	if err := pkgconfig.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := DefaultConfig()

	if path := pkgconfig.FindFile(FileNames...); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.Path = path
	}

	cfg.FileConfig.Expand()
	applyEnvOverrides(cfg)

	return cfg, cfg.validate()
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	cfg.FileConfig.ApplyEnv()

	if v := os.Getenv("DIFYCTL_OUTPUT"); v != "" {
		cfg.Output = Output(v)
	}
	if v := os.Getenv("DIFYCTL_STREAM"); v != "" {
		cfg.Stream = v == "true" || v == "1"
	}
}

func (c *Config) validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output)
	}
}

// User returns the configured end user, or the SDK default.
func (c *Config) User() string {
	if c.FileConfig.User != "" {
		return c.FileConfig.User
	}
	return dify.DefaultUser
}

// NewClient creates a Dify client from the configuration.
func (c *Config) NewClient(opts ...dify.ConfigOption) (*dify.Client, error) {
	if c.APIKey == "" && c.DatasetAPIKey == "" {
		return nil, fmt.Errorf("no API key: set %s or api_key in %s", dify.EnvAPIKey, FileNames[0])
	}
	fc := c.FileConfig
	return dify.New(fc.APIKey, append([]dify.ConfigOption{dify.WithFileConfig(&fc)}, opts...)...)
}
