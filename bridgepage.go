// Package bridgepage assembles the page builder runtime: content
// validation, HTML rendering, the generation pipeline, and a pluggable
// hosting store. Hosts construct a Module from a Config and drive it
// through the exposed services.
package bridgepage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-bridgepage/analytics"
	"github.com/goliatone/go-bridgepage/auth"
	"github.com/goliatone/go-bridgepage/hosting"
	"github.com/goliatone/go-bridgepage/internal/logging"
	"github.com/goliatone/go-bridgepage/internal/logging/gologger"
	"github.com/goliatone/go-bridgepage/pkg/interfaces"
	"github.com/goliatone/go-bridgepage/publisher"
	"github.com/goliatone/go-bridgepage/renderer"
)

// PublisherService exports the generation pipeline contract.
type PublisherService = publisher.Service

// GenerateRequest exports the pipeline request type.
type GenerateRequest = publisher.GenerateRequest

// GenerateResult exports the pipeline result type.
type GenerateResult = publisher.GenerateResult

// Store exports the hosting store contract.
type Store = hosting.Store

// Module is the top level runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	db       *bun.DB
	store    hosting.Store
	renderer *renderer.Renderer
	pub      publisher.Service
	sink     *analytics.MemorySink
	accounts *auth.Service
}

// Option overrides a wired dependency before construction completes.
type Option func(*Module)

// WithLoggerProvider replaces the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithStore replaces the hosting store built from Config.Hosting.
func WithStore(store hosting.Store) Option {
	return func(m *Module) {
		if store != nil {
			m.store = store
		}
	}
}

// New constructs the module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	urls := hosting.NewLocatorBuilder(cfg.Hosting.BaseURL)

	if m.store == nil {
		store, db, err := buildStore(cfg.Hosting, urls)
		if err != nil {
			return nil, err
		}
		m.store = store
		m.db = db
	}

	rend, err := renderer.New(
		renderer.WithBaseURL(cfg.Hosting.BaseURL),
		renderer.WithAnalyticsEndpoint(cfg.Renderer.AnalyticsEndpoint),
		renderer.WithDemoBanner(cfg.Renderer.DemoBanner),
		renderer.WithLogger(logging.RendererLogger(m.provider)),
	)
	if err != nil {
		return nil, err
	}
	m.renderer = rend

	m.sink = analytics.NewMemorySink()
	m.accounts = auth.NewService()

	pub, err := publisher.NewService(m.renderer, m.store,
		publisher.WithStageDelay(cfg.Publisher.StageDelay),
		publisher.WithEventSink(m.sink),
		publisher.WithLogger(logging.PublisherLogger(m.provider)),
	)
	if err != nil {
		return nil, err
	}
	m.pub = pub

	return m, nil
}

// Publisher returns the generation pipeline.
func (m *Module) Publisher() PublisherService {
	return m.pub
}

// Hosting returns the configured page store.
func (m *Module) Hosting() Store {
	return m.store
}

// Renderer returns the HTML renderer.
func (m *Module) Renderer() *renderer.Renderer {
	return m.renderer
}

// Analytics returns the in-memory event sink.
func (m *Module) Analytics() *analytics.MemorySink {
	return m.sink
}

// Auth returns the demo account directory.
func (m *Module) Auth() *auth.Service {
	return m.accounts
}

// Logger returns a named module logger.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// Close releases the database handle when a database backend is in use.
func (m *Module) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	var focus []string
	if trimmed := strings.TrimSpace(cfg.Focus); trimmed != "" {
		focus = strings.Split(trimmed, ",")
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Focus:     focus,
	})
}

func buildStore(cfg HostingConfig, urls *hosting.LocatorBuilder) (hosting.Store, *bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case BackendMemory:
		return hosting.NewMemoryStore(urls), nil, nil
	case BackendSQLite:
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("bridgepage: open sqlite store: %w", err)
		}
		db := bun.NewDB(sqldb, sqlitedialect.New())
		if err := hosting.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return hosting.NewBunStore(db, urls), db, nil
	case BackendPostgres:
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("bridgepage: open postgres store: %w", err)
		}
		db := bun.NewDB(sqldb, pgdialect.New())
		if err := hosting.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return hosting.NewBunStore(db, urls), db, nil
	default:
		return nil, nil, ErrHostingBackendUnknown
	}
}
