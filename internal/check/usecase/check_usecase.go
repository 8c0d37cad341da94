package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/check/service"
	"github.com/allisson/cardcheck/internal/database"
	apperrors "github.com/allisson/cardcheck/internal/errors"
	"github.com/allisson/cardcheck/internal/luhn"
)

type checkUseCase struct {
	checkRepo        CheckRepository
	fingerprinter    service.Fingerprinter
	txManager        database.TxManager
	batchConcurrency int
}

// NewCheckUseCase creates a new check use case. batchConcurrency bounds the
// number of numbers validated in parallel by CheckBatch.
func NewCheckUseCase(checkRepo CheckRepository, fingerprinter service.Fingerprinter, txManager database.TxManager, batchConcurrency int) CheckUseCase {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &checkUseCase{
		checkRepo:        checkRepo,
		fingerprinter:    fingerprinter,
		txManager:        txManager,
		batchConcurrency: batchConcurrency,
	}
}

// record validates the number, builds the check record and persists it.
func (u *checkUseCase) record(ctx context.Context, number luhn.Number, source domain.Source) (*domain.Check, error) {
	raw := number.String()
	if len(raw) > domain.MaxNumberLength {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "number exceeds %d characters", domain.MaxNumberLength)
	}

	if err := source.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "failed to validate check source")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate check id")
	}

	canonical := strings.ReplaceAll(raw, " ", "")
	check := &domain.Check{
		ID:          id,
		Fingerprint: u.fingerprinter.Fingerprint(raw),
		Length:      len(canonical),
		Valid:       number.Valid(),
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	}

	err = u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.checkRepo.Create(ctx, check); err != nil {
			return apperrors.Wrap(err, "failed to create check")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return check, nil
}

// Check validates a number given as text and records the outcome.
func (u *checkUseCase) Check(ctx context.Context, number string) (*domain.Check, error) {
	return u.record(ctx, luhn.FromString(number), domain.SourceText)
}

// CheckNumber validates a number given as an unsigned integer and records
// the outcome.
func (u *checkUseCase) CheckNumber(ctx context.Context, number uint64) (*domain.Check, error) {
	return u.record(ctx, luhn.FromUint64(number), domain.SourceNumber)
}

// CheckBatch validates several numbers concurrently and records each
// outcome. Results keep the order of the input.
func (u *checkUseCase) CheckBatch(ctx context.Context, numbers []string) ([]*domain.Check, error) {
	if len(numbers) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "numbers must not be empty")
	}

	checks := make([]*domain.Check, len(numbers))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.batchConcurrency)

	for i, number := range numbers {
		group.Go(func() error {
			check, err := u.Check(groupCtx, number)
			if err != nil {
				return err
			}
			checks[i] = check
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, apperrors.Wrap(err, "failed to check batch")
	}

	return checks, nil
}

// Generate creates a random number of the given total length that passes
// validation and records it.
func (u *checkUseCase) Generate(ctx context.Context, length int) (*GeneratedNumber, error) {
	number, err := luhn.Generate(length)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate number")
	}

	check, err := u.record(ctx, number, domain.SourceNumber)
	if err != nil {
		return nil, err
	}

	return &GeneratedNumber{Number: number.String(), Check: check}, nil
}

// ListChecks returns recorded checks ordered by creation time descending.
func (u *checkUseCase) ListChecks(ctx context.Context, offset, limit int) ([]*domain.Check, error) {
	checks, err := u.checkRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks")
	}
	return checks, nil
}

// ListChecksByFingerprint returns recorded checks for a fingerprint.
func (u *checkUseCase) ListChecksByFingerprint(ctx context.Context, fingerprint string, offset, limit int) ([]*domain.Check, error) {
	checks, err := u.checkRepo.ListByFingerprint(ctx, fingerprint, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks by fingerprint")
	}
	return checks, nil
}

// CleanChecks removes checks older than the given retention period. With
// dryRun it only counts the records that would be removed.
func (u *checkUseCase) CleanChecks(ctx context.Context, retention time.Duration, dryRun bool) (int64, error) {
	olderThan := time.Now().UTC().Add(-retention)

	if dryRun {
		count, err := u.checkRepo.CountOlderThan(ctx, olderThan)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count old checks")
		}
		return count, nil
	}

	var removed int64
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		count, err := u.checkRepo.DeleteOlderThan(ctx, olderThan)
		if err != nil {
			return apperrors.Wrap(err, "failed to delete old checks")
		}
		removed = count
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
