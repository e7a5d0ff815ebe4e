package main

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the career catalog and recommendations.
Configuration comes from the environment: DATABASE_URL and JWT_SECRET are required;
CATALOG_PATH, REDIS_ADDR and OTEL_COLLECTOR_URL are optional.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: $PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewFromEnv(cmd.Context(), logger, servePort)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
