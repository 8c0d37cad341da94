package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	checkUsecase "github.com/allisson/cardcheck/internal/check/usecase"
)

// RunGenerate creates a random number of the given total length that passes
// validation and records it. Supports both text and JSON output formats.
func RunGenerate(
	ctx context.Context,
	useCase checkUsecase.CheckUseCase,
	logger *slog.Logger,
	out io.Writer,
	length int,
	format string,
) error {
	generated, err := useCase.Generate(ctx, length)
	if err != nil {
		return fmt.Errorf("failed to generate number: %w", err)
	}

	logger.Info("number generated",
		slog.Int("length", length),
		slog.String("fingerprint", generated.Check.Fingerprint),
	)

	if format == "json" {
		result := map[string]interface{}{
			"number":      generated.Number,
			"length":      generated.Check.Length,
			"fingerprint": generated.Check.Fingerprint,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	fmt.Fprintln(out, generated.Number)
	return nil
}
