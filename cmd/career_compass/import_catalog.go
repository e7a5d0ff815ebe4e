package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog",
	Short: "Load catalog files into Postgres",
	Long: `Consolidates the given catalog files and upserts every career into the careers table.
Existing careers with the same ID are replaced. Run "migrate" first on a new database.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		url, err := databaseURL(importDatabaseURL)
		if err != nil {
			return err
		}
		return runImportCatalog(cmd.Context(), url, importIn, cmd.OutOrStdout())
	},
}

var (
	importIn          []string
	importDatabaseURL string
)

func init() {
	importCatalogCmd.Flags().StringSliceVarP(&importIn, "in", "i", nil, "Catalog files to import (repeat or comma-separate)")
	importCatalogCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (default: $DATABASE_URL)")

	if err := importCatalogCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(importCatalogCmd)
}

func runImportCatalog(ctx context.Context, url string, in []string, stdout io.Writer) error {
	// Consolidate before connecting so bad input never touches the database
	careers, report, err := catalog.Consolidate(ctx, in)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	n, err := database.UpsertCareers(ctx, careers)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}
	total, err := database.CountCareers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count careers: %w", err)
	}

	logger.Info("catalog imported",
		zap.Int("records", report.Records),
		zap.Int("upserted", n),
		zap.Int("total", total),
	)
	_, _ = fmt.Fprintf(stdout, "Imported %d careers (%d in catalog)\n", n, total)
	return nil
}
