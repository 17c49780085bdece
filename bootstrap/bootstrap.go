// Package bootstrap wires the executor, metrics and feature client from
// configuration.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/metrics"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/app"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/config"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// App holds the wired components. Client and Executor are replaced on
// Reload; read them through the accessors.
type App struct {
	Logger   zerolog.Logger
	Metrics  *metrics.Collector
	Registry *prometheus.Registry

	transport http.RoundTripper

	mu       sync.RWMutex
	cfg      *config.Config
	executor *fetch.Executor
	client   *app.Client
	identity fetch.Identity
}

// Options provides optional dependencies for New.
type Options struct {
	// Logger overrides the logger built from cfg.Logging.
	Logger *zerolog.Logger

	// Transport is passed to the executor; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// New builds the application from cfg.
func New(cfg *config.Config, opts Options) (*App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger := SetupLogger(cfg.Logging.Level, cfg.Logging.Format)
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	a := &App{
		Logger:    logger,
		transport: opts.Transport,
	}
	if cfg.Metrics.Enabled {
		a.Registry = prometheus.NewRegistry()
		a.Metrics = metrics.NewWithRegistry(a.Registry)
		logger.Info().Msg("prometheus metrics enabled")
	}

	if err := a.Reload(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload rebuilds the executor and client for cfg. On error the previous
// ones stay in place.
func (a *App) Reload(cfg *config.Config) error {
	cookies, err := LoadCookies(cfg.Client.CookieFile)
	if err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}

	logger := a.Logger.Level(levelOf(cfg.Logging.Level))
	var observer ports.Observer = ports.NopObserver{}
	if a.Metrics != nil {
		observer = a.Metrics
	}
	fc := fetch.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		Headers:   cfg.API.Headers,
		UserAgent: cfg.API.UserAgent,
		Locale:    cfg.Client.Locale,
		Logger:    logger,
		Observer:  observer,
		Transport: a.transport,
	}

	var ex *fetch.Executor
	var identity fetch.Identity
	switch cfg.Client.Mode {
	case config.ModeServer:
		ex, err = fetch.NewServer(fc)
		identity = fetch.Identity{Cookie: CookieHeader(cookies)}
	default:
		var jar *cookiejar.Jar
		jar, err = cookiejar.New(nil)
		if err == nil && len(cookies) > 0 {
			base, _ := url.Parse(cfg.API.BaseURL)
			jar.SetCookies(base, cookies)
		}
		if err == nil {
			ex, err = fetch.NewBrowser(fc, jar)
		}
	}
	if err != nil {
		return fmt.Errorf("build executor: %w", err)
	}

	a.mu.Lock()
	a.cfg = cfg
	a.executor = ex
	a.client = app.NewClient(ex, logger)
	a.identity = identity
	a.mu.Unlock()

	logger.Debug().
		Str("mode", cfg.Client.Mode).
		Str("base_url", cfg.API.BaseURL).
		Int("cookies", len(cookies)).
		Msg("executor ready")
	return nil
}

// Config returns the configuration the current client was built from.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Client returns the current feature client.
func (a *App) Client() *app.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// Executor returns the current executor.
func (a *App) Executor() *fetch.Executor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.executor
}

// Context prepares ctx for a call through the client. Server executors
// forward the configured identity; browser executors use their jar.
func (a *App) Context(ctx context.Context) context.Context {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.executor.Variant() == fetch.VariantServer {
		return fetch.WithIdentity(ctx, a.identity)
	}
	return ctx
}

// SetupLogger builds the process logger writing to stderr.
func SetupLogger(level, format string) zerolog.Logger {
	return NewLogger(os.Stderr, level, format)
}

// NewLogger builds a logger writing to w. Format "console" is human
// readable; anything else is JSON.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(levelOf(level)).With().Timestamp().Logger()
}

func levelOf(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
