package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	checkHTTPMocks "github.com/allisson/cardcheck/internal/check/http/mocks"
)

func TestRunCleanChecks(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	days := 30
	retention := time.Duration(days) * 24 * time.Hour

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &checkHTTPMocks.MockCheckUseCase{}
		mockUseCase.On("CleanChecks", ctx, retention, false).Return(int64(100), nil)

		var out bytes.Buffer
		err := RunCleanChecks(ctx, mockUseCase, logger, &out, days, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 100 check(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("dry-run-text-output", func(t *testing.T) {
		mockUseCase := &checkHTTPMocks.MockCheckUseCase{}
		mockUseCase.On("CleanChecks", ctx, retention, true).Return(int64(25), nil)

		var out bytes.Buffer
		err := RunCleanChecks(ctx, mockUseCase, logger, &out, days, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Would delete 25 check(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &checkHTTPMocks.MockCheckUseCase{}
		mockUseCase.On("CleanChecks", ctx, retention, true).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanChecks(ctx, mockUseCase, logger, &out, days, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 50`)
		require.Contains(t, out.String(), `"dry_run": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-days", func(t *testing.T) {
		mockUseCase := &checkHTTPMocks.MockCheckUseCase{}

		err := RunCleanChecks(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
		mockUseCase.AssertNotCalled(t, "CleanChecks")
	})
}
