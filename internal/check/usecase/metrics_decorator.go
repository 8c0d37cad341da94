package usecase

import (
	"context"
	"time"

	"github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/metrics"
)

// checkUseCaseWithMetrics decorates CheckUseCase with metrics instrumentation.
type checkUseCaseWithMetrics struct {
	next    CheckUseCase
	metrics metrics.BusinessMetrics
}

// NewCheckUseCaseWithMetrics wraps a CheckUseCase with metrics recording.
func NewCheckUseCaseWithMetrics(useCase CheckUseCase, m metrics.BusinessMetrics) CheckUseCase {
	return &checkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *checkUseCaseWithMetrics) instrument(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "check", operation, status)
	c.metrics.RecordDuration(ctx, "check", operation, time.Since(start), status)
}

// Check records metrics for text check operations.
func (c *checkUseCaseWithMetrics) Check(ctx context.Context, number string) (*domain.Check, error) {
	start := time.Now()
	check, err := c.next.Check(ctx, number)
	c.instrument(ctx, "check_create", start, err)
	return check, err
}

// CheckNumber records metrics for integer check operations.
func (c *checkUseCaseWithMetrics) CheckNumber(ctx context.Context, number uint64) (*domain.Check, error) {
	start := time.Now()
	check, err := c.next.CheckNumber(ctx, number)
	c.instrument(ctx, "check_create", start, err)
	return check, err
}

// CheckBatch records metrics for batch check operations.
func (c *checkUseCaseWithMetrics) CheckBatch(ctx context.Context, numbers []string) ([]*domain.Check, error) {
	start := time.Now()
	checks, err := c.next.CheckBatch(ctx, numbers)
	c.instrument(ctx, "check_batch", start, err)
	return checks, err
}

// Generate records metrics for number generation operations.
func (c *checkUseCaseWithMetrics) Generate(ctx context.Context, length int) (*GeneratedNumber, error) {
	start := time.Now()
	generated, err := c.next.Generate(ctx, length)
	c.instrument(ctx, "number_generate", start, err)
	return generated, err
}

// ListChecks records metrics for check listing operations.
func (c *checkUseCaseWithMetrics) ListChecks(ctx context.Context, offset, limit int) ([]*domain.Check, error) {
	start := time.Now()
	checks, err := c.next.ListChecks(ctx, offset, limit)
	c.instrument(ctx, "check_list", start, err)
	return checks, err
}

// ListChecksByFingerprint records metrics for fingerprint lookup operations.
func (c *checkUseCaseWithMetrics) ListChecksByFingerprint(ctx context.Context, fingerprint string, offset, limit int) ([]*domain.Check, error) {
	start := time.Now()
	checks, err := c.next.ListChecksByFingerprint(ctx, fingerprint, offset, limit)
	c.instrument(ctx, "check_list", start, err)
	return checks, err
}

// CleanChecks records metrics for check cleanup operations.
func (c *checkUseCaseWithMetrics) CleanChecks(ctx context.Context, retention time.Duration, dryRun bool) (int64, error) {
	start := time.Now()
	removed, err := c.next.CleanChecks(ctx, retention, dryRun)
	c.instrument(ctx, "check_clean", start, err)
	return removed, err
}
