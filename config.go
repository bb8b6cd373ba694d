package bridgepage

import (
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-bridgepage/renderer"
)

var (
	ErrHostingBackendUnknown = errors.New("bridgepage: unknown hosting backend")
	ErrHostingDSNRequired    = errors.New("bridgepage: hosting DSN is required for database backends")
	ErrLoggingLevelInvalid   = errors.New("bridgepage: invalid logging level")
	ErrLoggingFormatInvalid  = errors.New("bridgepage: invalid logging format")
	ErrStageDelayNegative    = errors.New("bridgepage: stage delay cannot be negative")
)

// Hosting backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config is the module-level configuration consumed by New.
type Config struct {
	Hosting   HostingConfig
	Logging   LoggingConfig
	Publisher PublisherConfig
	Renderer  RendererConfig
}

// HostingConfig selects where generated pages are stored and the public
// origin their URLs are built against.
type HostingConfig struct {
	// Backend is one of memory, sqlite, or postgres.
	Backend string
	// DSN is the database connection string; unused by the memory backend.
	DSN string
	// BaseURL is the public origin page URLs are built from.
	BaseURL string
}

// LoggingConfig mirrors the go-logger surface the module exposes to hosts.
type LoggingConfig struct {
	// Enabled switches structured logging on; a no-op logger is used otherwise.
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
	Focus     string
}

// PublisherConfig tunes the generation pipeline.
type PublisherConfig struct {
	// StageDelay paces stage transitions so subscribers can observe them.
	StageDelay time.Duration
}

// RendererConfig tunes the HTML artifact.
type RendererConfig struct {
	// AnalyticsEndpoint, when set, points the embedded tracking shim at an
	// HTTP collector in addition to the localStorage buffer.
	AnalyticsEndpoint string
	// DemoBanner renders the fixed demo notice at the top of each page.
	DemoBanner bool
}

// DefaultConfig returns the configuration used by the demo deployment: an
// in-memory store, console logging, and a short stage delay.
func DefaultConfig() Config {
	return Config{
		Hosting: HostingConfig{
			Backend: BackendMemory,
			BaseURL: renderer.DefaultBaseURL,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
		Publisher: PublisherConfig{
			StageDelay: 300 * time.Millisecond,
		},
		Renderer: RendererConfig{
			DemoBanner: true,
		},
	}
}

// Validate checks the configuration before the module wires anything.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Hosting.Backend)) {
	case BackendMemory:
	case BackendSQLite, BackendPostgres:
		if strings.TrimSpace(c.Hosting.DSN) == "" {
			return ErrHostingDSNRequired
		}
	default:
		return ErrHostingBackendUnknown
	}

	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "error":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "console", "json", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}

	if c.Publisher.StageDelay < 0 {
		return ErrStageDelayNegative
	}
	return nil
}
