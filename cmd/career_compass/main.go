// Package main provides the career_compass CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	logger  = zap.NewNop()
	fileCfg = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Career Compass recommendation engine",
	Long: "Career Compass turns a self-assessment into safe, stretch and adventure career recommendations " +
		"drawn from a curated catalog, from the command line or over a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON config file providing defaults for flags")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug information")
}

// setup builds the logger and loads the optional config file before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l

	if configPath == "" {
		return nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fileCfg = cfg
	if cfg.Verbose && !verbose {
		verbose = true
		if l, err := newLogger(true); err == nil {
			logger = l
		}
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// databaseURL picks the flag value, then the config file, then DATABASE_URL.
func databaseURL(flagValue string) (string, error) {
	for _, candidate := range []string{flagValue, fileCfg.DatabaseURL, os.Getenv("DATABASE_URL")} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
