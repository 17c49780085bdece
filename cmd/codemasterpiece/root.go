package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/bootstrap"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/config"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "codemasterpiece",
	Short: "Typed client for the codemasterpiece content API",
	Long: `codemasterpiece talks to the blog's content API through the same
typed request layer the site uses.

Reading:
  codemasterpiece categories list
  codemasterpiece posts list --sort POPULAR
  codemasterpiece posts get hello-world
  codemasterpiece comments list <post-id>

Operations:
  codemasterpiece monitor    # Health and metrics endpoint with a periodic API check
  codemasterpiece devserver  # Seeded in-memory API for local development
  codemasterpiece validate   # Validate configuration`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "codemasterpiece.yaml", "config file path")
}

// loadConfig reads the config file, falling back to CMP_* environment
// variables when it does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func newApp() (*bootstrap.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg, bootstrap.Options{})
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}
	return app, nil
}
