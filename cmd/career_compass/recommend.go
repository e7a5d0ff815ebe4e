package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a self-assessment",
	Long: `Normalizes a self-assessment, consolidates the catalog files and writes a zoned
RecommendationSet as JSON. Without --out the JSON goes to stdout; with --out a readable
summary is printed instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := config.Config{
			Assessment:       recommendAssessment,
			Catalog:          recommendCatalog,
			Out:              recommendOut,
			ExplorationLevel: recommendExploration,
			ZoneSize:         recommendZoneSize,
			Verbose:          verbose,
		}
		return runRecommend(cmd.Context(), flags.MergeWithDefaults(*fileCfg), cmd.OutOrStdout(), logger)
	},
}

var (
	recommendAssessment  string
	recommendCatalog     []string
	recommendOut         string
	recommendExploration int
	recommendZoneSize    int
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendAssessment, "assessment", "a", "", "Path to assessment JSON")
	recommendCmd.Flags().StringSliceVarP(&recommendCatalog, "catalog", "c", nil, "Catalog JSON files (repeat or comma-separate)")
	recommendCmd.Flags().StringVarP(&recommendOut, "out", "o", "", "Output path for the recommendation set")
	recommendCmd.Flags().IntVar(&recommendExploration, "exploration-level", 0, "Exploration level 1-5, overriding the assessment")
	recommendCmd.Flags().IntVar(&recommendZoneSize, "zone-size", 0, "Careers per zone, 1-10")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(ctx context.Context, cfg config.Config, stdout io.Writer, logger *zap.Logger) error {
	if cfg.Assessment == "" {
		return fmt.Errorf("--assessment is required")
	}
	if len(cfg.Catalog) == 0 {
		return fmt.Errorf("--catalog is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	assessment, err := loadAssessment(cfg.Assessment, logger)
	if err != nil {
		return err
	}
	if cfg.ExplorationLevel != 0 {
		assessment.ExplorationLevel = cfg.ExplorationLevel
	}

	engineCfg, err := config.NewEngineConfig()
	if err != nil {
		return err
	}
	opts := engineCfg.Options()
	if cfg.ZoneSize != 0 {
		opts.ZoneSize = cfg.ZoneSize
	}

	careers, report, err := catalog.Consolidate(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog consolidated",
		zap.Int("files", len(report.Files)),
		zap.Int("records", report.Records),
		zap.Int("careers", report.Careers),
	)

	p, warnings, err := profile.Normalize(assessment, opts.ExplorationLevel)
	if err != nil {
		return err
	}
	set, err := engine.RecommendProfile(p, careers, opts)
	if err != nil {
		return err
	}
	if warnings != nil {
		set.Diagnostics.Warnings = warnings
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if schemaPath := schemas.ResolveSchemaPath(schemas.RecommendationSetSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return fmt.Errorf("recommendation output failed schema validation: %w", err)
		}
	}

	if cfg.Out == "" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	printer := observability.NewPrinter(stdout)
	if cfg.Verbose {
		printer.PrintProfile(&p, warnings)
	}
	printer.PrintRecommendations(set)
	_, _ = fmt.Fprintf(stdout, "Wrote %d recommendations to %s\n", len(set.Recommendations), cfg.Out)
	return nil
}

// loadAssessment reads an assessment file, checking it against the assessment schema when the
// schema can be found.
func loadAssessment(path string, logger *zap.Logger) (types.Assessment, error) {
	var a types.Assessment
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("failed to read assessment: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.AssessmentSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return a, fmt.Errorf("assessment %s is invalid: %w", path, err)
		}
	} else {
		logger.Warn("assessment schema not found, skipping validation")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&a); err != nil {
		return a, fmt.Errorf("failed to parse assessment: %w", err)
	}
	if err := a.Validate(); err != nil {
		return a, fmt.Errorf("assessment %s is invalid: %w", path, err)
	}
	return a, nil
}
