package id

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Logger is the printf-style logger used for warnings.
type Logger interface {
	Printf(format string, v ...any)
}

// Metrics records generation counters.
type Metrics interface {
	IncrementCounter(name string, value int64)
}

// Mode controls what happens when random ID generation fails.
type Mode int

const (
	// ModeFallback switches to timestamp-based IDs. This is the default.
	ModeFallback Mode = iota

	// ModeStrict returns an error instead.
	ModeStrict
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFallback:
		return "fallback"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// FallbackPrefix starts every fallback ID.
const FallbackPrefix = "fb-"

var (
	fallbackCounter atomic.Uint64
	processID       = os.Getpid()
	randomFailures  atomic.Int64
)

// Generator generates request IDs.
type Generator struct {
	mode    Mode
	metrics Metrics
	logger  Logger
	random  func() (uuid.UUID, error)
}

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	Mode    Mode
	Metrics Metrics
	Logger  Logger
}

// NewGenerator creates a generator. A nil config uses ModeFallback.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	if cfg == nil {
		cfg = &GeneratorConfig{}
	}
	return &Generator{
		mode:    cfg.Mode,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		random:  uuid.NewRandom,
	}
}

// Generate returns a new ID. It fails only in ModeStrict when the random
// source fails.
func (g *Generator) Generate() (string, error) {
	u, err := g.random()
	if err == nil {
		return u.String(), nil
	}

	failures := randomFailures.Add(1)
	if g.metrics != nil {
		g.metrics.IncrementCounter("dify.id.random_failures", 1)
	}

	switch g.mode {
	case ModeStrict:
		return "", fmt.Errorf("dify: generate request id (%d failures): %w", failures, err)
	case ModeFallback:
		if failures == 1 && g.logger != nil {
			g.logger.Printf("dify: random source failed, using fallback request ids: %v", err)
		}
		if g.metrics != nil {
			g.metrics.IncrementCounter("dify.id.fallback_used", 1)
		}
		return fallback(), nil
	default:
		return "", fmt.Errorf("dify: unknown id mode %d", g.mode)
	}
}

// fallback builds an ID from the clock, a counter and the process ID.
func fallback() string {
	return fmt.Sprintf("%s%x-%08x-%d", FallbackPrefix, time.Now().UnixNano(), fallbackCounter.Add(1), processID)
}

// RandomFailureCount returns how often the random source failed.
func RandomFailureCount() int64 {
	return randomFailures.Load()
}

var defaultGenerator = NewGenerator(nil)

// New returns an ID from the default generator. It never fails.
func New() string {
	id, err := defaultGenerator.Generate()
	if err != nil {
		return fallback()
	}
	return id
}

// IsFallback reports whether id was generated without the random source.
func IsFallback(id string) bool {
	return strings.HasPrefix(id, FallbackPrefix)
}
