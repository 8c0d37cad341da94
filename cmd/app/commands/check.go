package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	checkUsecase "github.com/allisson/cardcheck/internal/check/usecase"
)

// RunCheck validates a number and records the outcome. Returns whether the
// number passed validation so the caller can set the process exit code.
// Supports both text and JSON output formats.
func RunCheck(
	ctx context.Context,
	useCase checkUsecase.CheckUseCase,
	logger *slog.Logger,
	out io.Writer,
	number string,
	format string,
) (bool, error) {
	check, err := useCase.Check(ctx, number)
	if err != nil {
		return false, fmt.Errorf("failed to check number: %w", err)
	}

	logger.Info("number checked",
		slog.String("fingerprint", check.Fingerprint),
		slog.Bool("valid", check.Valid),
	)

	if format == "json" {
		result := map[string]interface{}{
			"valid":       check.Valid,
			"length":      check.Length,
			"fingerprint": check.Fingerprint,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return check.Valid, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
		return check.Valid, nil
	}

	if check.Valid {
		fmt.Fprintf(out, "valid (length=%d, fingerprint=%s)\n", check.Length, check.Fingerprint)
	} else {
		fmt.Fprintf(out, "invalid (length=%d, fingerprint=%s)\n", check.Length, check.Fingerprint)
	}

	return check.Valid, nil
}
