package main

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/spf13/cobra"
)

var migrateDatabaseURL string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		url, err := databaseURL(migrateDatabaseURL)
		if err != nil {
			return err
		}

		database, err := db.Connect(cmd.Context(), url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(cmd.Context()); err != nil {
			return err
		}
		logger.Info("database schema is up to date")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "Database URL (default: $DATABASE_URL)")
	rootCmd.AddCommand(migrateCmd)
}
