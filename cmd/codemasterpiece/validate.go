package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/bootstrap"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate the codemasterpiece configuration file.

Checks:
  - YAML syntax is valid
  - The API base URL and every duration are well-formed
  - The cookie file parses (when configured)
  - The API answers the category request (optional)

Examples:
  codemasterpiece validate
  codemasterpiece validate --check-api --config /etc/codemasterpiece.yaml`,
	RunE: runValidate,
}

var validateCheckAPI bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckAPI, "check-api", false, "check that the API is reachable")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s...\n\n", cfgFile)

	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("  %s Config file exists\n", crossMark)
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	fmt.Printf("  %s Config file exists\n", checkMark)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("  %s Config syntax valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("  %s Config syntax valid\n", checkMark)

	fmt.Printf("  %s API: %s (timeout %s)\n", checkMark, cfg.API.BaseURL, cfg.API.Timeout)
	fmt.Printf("  %s Client mode: %s, locale %s\n", checkMark, cfg.Client.Mode, cfg.Client.Locale)

	if cfg.Client.CookieFile != "" {
		cookies, err := bootstrap.LoadCookies(cfg.Client.CookieFile)
		if err != nil {
			fmt.Printf("  %s Cookie file\n", crossMark)
			return fmt.Errorf("cookie file: %w", err)
		}
		fmt.Printf("  %s Cookie file: %d cookies\n", checkMark, len(cookies))
	}

	if validateCheckAPI {
		if err := checkAPIReachable(cmd.Context(), cfg); err != nil {
			fmt.Printf("  %s API reachable\n", crossMark)
			fmt.Printf("      Error: %v\n", err)
		} else {
			fmt.Printf("  %s API reachable\n", checkMark)
		}
	}

	fmt.Println()
	fmt.Println("Configuration is valid.")
	return nil
}

func checkAPIReachable(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	app, err := bootstrap.New(cfg, bootstrap.Options{})
	if err != nil {
		return err
	}
	return bootstrap.NewMonitor(app).Once(ctx)
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)
