package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/spf13/cobra"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate-catalog",
	Short: "Merge catalog files into one normalized catalog",
	Long: `Reads one or more career catalog files, normalizes every record, merges duplicates by
career ID (earlier files win) and writes a single JSON array sorted by career ID.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConsolidate(cmd.Context(), consolidateIn, consolidateOut, cmd.OutOrStdout())
	},
}

var (
	consolidateIn  []string
	consolidateOut string
)

func init() {
	consolidateCmd.Flags().StringSliceVarP(&consolidateIn, "in", "i", nil, "Input catalog files (repeat or comma-separate)")
	consolidateCmd.Flags().StringVarP(&consolidateOut, "out", "o", "", "Output path for the consolidated catalog")

	if err := consolidateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := consolidateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(ctx context.Context, in []string, out string, stdout io.Writer) error {
	careers, report, err := catalog.Consolidate(ctx, in)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(careers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	observability.NewPrinter(stdout).PrintConsolidationReport(report)
	_, _ = fmt.Fprintf(stdout, "Wrote %d careers to %s\n", len(careers), out)
	return nil
}
