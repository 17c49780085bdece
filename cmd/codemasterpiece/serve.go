package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	apihttp "github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/http"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/bootstrap"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/config"
)

var hotReload bool

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor the API and serve health and metrics endpoints",
	Long: `Monitor the content API at the configured interval and serve the outcome.

The monitor server exposes:
  /healthz   process liveness
  /readyz    503 while the latest check failed
  /version   build information
  /metrics   Prometheus metrics (when metrics.enabled is set)

The config file is watched for changes and re-read on SIGHUP; api.*,
client.*, logging.level and monitor.interval apply without a restart.

Environment variables (when no config file is present):
  CMP_API_BASE_URL      - API base URL (required)
  CMP_CLIENT_MODE       - browser or server
  CMP_METRICS_ENABLED   - expose /metrics
  CMP_METRICS_ADDR      - monitor server address (default: :9090)
  CMP_MONITOR_INTERVAL  - monitor interval (default: 30s)`,
	RunE: runMonitor,
}

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Serve a seeded in-memory content API",
	Long: `Serve the content API from memory for local development.

The store is seeded with a category tree, three posts and a guest comment
(password 1234). Sessions:
  SESSION=dev-admin    administrator
  SESSION=dev-member   regular member`,
	RunE: runDevServer,
}

var devserverAddr string

func init() {
	monitorCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
	rootCmd.AddCommand(monitorCmd)

	devserverCmd.Flags().StringVar(&devserverAddr, "addr", "", "listen address (overrides devserver.addr)")
	rootCmd.AddCommand(devserverCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	if hasConfigFile && hotReload {
		holder, err := config.NewHolder(cfgFile, app.Logger)
		if err != nil {
			return err
		}
		defer holder.Stop()

		holder.OnChange(func(next *config.Config) {
			if err := app.Reload(next); err != nil {
				app.Logger.Error().Err(err).Msg("failed to apply config")
			}
		})
		if app.Metrics != nil {
			holder.OnReload(app.Metrics.ConfigReloaded)
		}
		if err := holder.WatchFile(); err != nil {
			app.Logger.Warn().Err(err).Msg("config file watch disabled")
		}
		holder.WatchSignals()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	monitor := bootstrap.NewMonitor(app)
	go monitor.Run(ctx)

	deps := apihttp.MonitorDeps{
		Health:  apihttp.NewHealthHandler(monitor, 0),
		Version: version,
		Logger:  app.Logger,
	}
	if app.Registry != nil {
		deps.Gatherer = app.Registry
	}

	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           apihttp.NewMonitorRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return bootstrap.Serve(ctx, app.Logger, srv)
}

func runDevServer(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults("http://127.0.0.1:8081")
	if _, err := os.Stat(cfgFile); err == nil || config.HasEnvConfig() {
		if cfg, err = loadConfig(); err != nil {
			return err
		}
	}
	if devserverAddr != "" {
		cfg.DevServer.Addr = devserverAddr
	}
	logger := bootstrap.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	handler, err := bootstrap.DevServer(cfg.DevServer, "", logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.DevServer.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return bootstrap.Serve(cmd.Context(), logger, srv)
}
