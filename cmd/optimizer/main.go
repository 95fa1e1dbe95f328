// Command optimizer converts a Tiny ERP balance-sheet export (wide format,
// one column per month) into a long-format CSV for Looker Studio.
//
// Usage:
//
//	optimizer <balancete.csv>
//
// The output is written next to the input with an "_optimized" suffix.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"balancetecli/internal/config"
	"balancetecli/internal/dataprocessing"
	"balancetecli/internal/errors"
	"balancetecli/internal/exporter"
	"balancetecli/internal/files"
	"balancetecli/internal/infrastructure"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: optimizer <balancete.csv|balancete.xlsx>")
		os.Exit(1)
	}
	inputPath := os.Args[1]
	outputPath := config.OutputPath(inputPath)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	if err := run(ctx, logger, inputPath, outputPath); err != nil {
		logger.ErrorContext(ctx, "transformation failed",
			slog.String("error", err.Error()),
			slog.String("code", errors.CodeOf(err)))
		os.Exit(1)
	}
}

// run executes the full transform: read, validate, reshape, write, summarize.
func run(ctx context.Context, logger *slog.Logger, inputPath, outputPath string) error {
	logger.InfoContext(ctx, "reading input file", slog.String("path", inputPath))
	table, err := files.ReadTable(inputPath)
	if err != nil {
		return err
	}

	if err := dataprocessing.Validate(table); err != nil {
		return err
	}

	observations, err := dataprocessing.NewReshaper(logger).Reshape(ctx, table)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "saving transformed data", slog.String("path", outputPath))
	if err := exporter.NewCSVWriter(logger).WriteObservations(outputPath, observations); err != nil {
		return err
	}

	summary, err := dataprocessing.Summarize(observations)
	if err != nil {
		if stderrors.Is(err, dataprocessing.ErrNoObservations) {
			logger.WarnContext(ctx, "transformation completed with no observations",
				slog.String("output_path", outputPath))
			return nil
		}
		return err
	}

	logger.InfoContext(ctx, "transformation completed successfully",
		slog.String("output_path", outputPath),
		slog.String("start_date", summary.StartDate),
		slog.String("end_date", summary.EndDate),
		slog.Int("total_entries", summary.TotalEntries),
		slog.String("total_income", summary.TotalIncome.StringFixed(2)),
		slog.String("total_expenses", summary.TotalExpenses.StringFixed(2)),
		slog.Int("unique_groups", summary.UniqueGroups),
		slog.Int("unique_categories", summary.UniqueCategories))
	return nil
}
