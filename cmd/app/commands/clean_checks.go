package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	checkUsecase "github.com/allisson/cardcheck/internal/check/usecase"
)

// RunCleanChecks deletes check records older than the specified number of days.
// Supports dry-run mode to preview the deletion count and both text/JSON output
// formats.
func RunCleanChecks(
	ctx context.Context,
	useCase checkUsecase.CheckUseCase,
	logger *slog.Logger,
	out io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning checks",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	retention := time.Duration(days) * 24 * time.Hour
	count, err := useCase.CleanChecks(ctx, retention, dryRun)
	if err != nil {
		return fmt.Errorf("failed to clean checks: %w", err)
	}

	if format == "json" {
		outputCleanJSON(out, count, days, dryRun)
	} else {
		outputCleanText(out, count, days, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanText outputs the result in human-readable text format.
func outputCleanText(out io.Writer, count int64, days int, dryRun bool) {
	if dryRun {
		fmt.Fprintf(out, "Dry-run mode: Would delete %d check(s) older than %d day(s)\n", count, days)
	} else {
		fmt.Fprintf(out, "Successfully deleted %d check(s) older than %d day(s)\n", count, days)
	}
}

// outputCleanJSON outputs the result in JSON format for machine consumption.
func outputCleanJSON(out io.Writer, count int64, days int, dryRun bool) {
	result := map[string]interface{}{
		"count":   count,
		"days":    days,
		"dry_run": dryRun,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
