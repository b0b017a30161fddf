package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of client settings.
//
//	api_key: ${DIFY_API_KEY}
//	base_url: https://dify.internal.example.com/v1
//	timeout: 2m
//	user: build-bot
//	headers:
//	  X-Tenant: acme
//	transport:
//	  max_idle_conns: 50
type FileConfig struct {
	APIKey        string            `yaml:"api_key"`
	DatasetAPIKey string            `yaml:"dataset_api_key"`
	BaseURL       string            `yaml:"base_url"`
	Timeout       time.Duration     `yaml:"timeout"`
	User          string            `yaml:"user"`
	Debug         bool              `yaml:"debug"`
	Headers       map[string]string `yaml:"headers"`
	Transport     TransportConfig   `yaml:"transport"`
}

// TransportConfig holds the connection pool knobs handed to net/http.
type TransportConfig struct {
	MaxIdleConns        int           `yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int           `yaml:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `yaml:"idle_conn_timeout"`
	DisableKeepAlives   bool          `yaml:"disable_keep_alives"`
	Proxy               string        `yaml:"proxy"`
}

// LoadFile reads a YAML configuration file and expands ${VAR} references
// in credential and URL fields.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dify: parse %s: %w", path, err)
	}
	cfg.Expand()
	return cfg, nil
}

// FindFile walks from the working directory to the filesystem root and
// returns the first existing file among names, or "".
func FindFile(names ...string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findFrom(dir, names)
}

func findFrom(dir string, names []string) string {
	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ApplyEnv overrides file values with DIFY_* environment variables.
func (c *FileConfig) ApplyEnv() {
	c.APIKey = GetEnvString(EnvAPIKey, c.APIKey)
	c.DatasetAPIKey = GetEnvString(EnvDatasetAPIKey, c.DatasetAPIKey)
	c.BaseURL = GetEnvString(EnvBaseURL, c.BaseURL)
	c.User = GetEnvString(EnvUser, c.User)
	c.Timeout = GetEnvDuration(EnvTimeout, c.Timeout)
	if GetEnvBool(EnvDebug) {
		c.Debug = true
	}
}

// Expand replaces ${VAR} and $VAR references with environment values.
func (c *FileConfig) Expand() {
	c.APIKey = ExpandEnv(c.APIKey)
	c.DatasetAPIKey = ExpandEnv(c.DatasetAPIKey)
	c.BaseURL = ExpandEnv(c.BaseURL)
	c.Transport.Proxy = ExpandEnv(c.Transport.Proxy)
	for k, v := range c.Headers {
		c.Headers[k] = ExpandEnv(v)
	}
}

var envRef = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// ExpandEnv expands ${VAR} and $VAR references in s.
func ExpandEnv(s string) string {
	if s == "" || !strings.Contains(s, "$") {
		return s
	}
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "${")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "}")
		return os.Getenv(name)
	})
}
