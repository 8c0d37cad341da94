// Package usecase implements the business operations of the check module.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/cardcheck/internal/check/domain"
)

// CheckRepository defines the interface for check record persistence.
type CheckRepository interface {
	// Create persists a new check record.
	Create(ctx context.Context, check *domain.Check) error

	// List returns check records ordered by creation time descending.
	List(ctx context.Context, offset, limit int) ([]*domain.Check, error)

	// ListByFingerprint returns check records for a fingerprint ordered by
	// creation time descending.
	ListByFingerprint(ctx context.Context, fingerprint string, offset, limit int) ([]*domain.Check, error)

	// DeleteOlderThan removes check records created before the given time and
	// returns the number of removed records.
	DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error)

	// CountOlderThan returns the number of check records created before the
	// given time.
	CountOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
}

// GeneratedNumber is the result of generating a valid number. The number is
// only available here, it is never persisted.
type GeneratedNumber struct {
	Number string
	Check  *domain.Check
}

// CheckUseCase defines the interface for check operations.
type CheckUseCase interface {
	// Check validates a number given as text and records the outcome.
	Check(ctx context.Context, number string) (*domain.Check, error)

	// CheckNumber validates a number given as an unsigned integer and records
	// the outcome.
	CheckNumber(ctx context.Context, number uint64) (*domain.Check, error)

	// CheckBatch validates several numbers concurrently and records each
	// outcome. Results keep the order of the input.
	CheckBatch(ctx context.Context, numbers []string) ([]*domain.Check, error)

	// Generate creates a random number of the given total length that passes
	// validation and records it.
	Generate(ctx context.Context, length int) (*GeneratedNumber, error)

	// ListChecks returns recorded checks ordered by creation time descending.
	ListChecks(ctx context.Context, offset, limit int) ([]*domain.Check, error)

	// ListChecksByFingerprint returns recorded checks for a fingerprint.
	ListChecksByFingerprint(ctx context.Context, fingerprint string, offset, limit int) ([]*domain.Check, error)

	// CleanChecks removes checks older than the given retention period. With
	// dryRun it only counts the records that would be removed.
	CleanChecks(ctx context.Context, retention time.Duration, dryRun bool) (int64, error)
}
