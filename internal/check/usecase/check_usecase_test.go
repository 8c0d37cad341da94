package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/check/service"
	checkUsecaseMocks "github.com/allisson/cardcheck/internal/check/usecase/mocks"
	databaseMocks "github.com/allisson/cardcheck/internal/database/mocks"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newUseCase(repo *checkUsecaseMocks.MockCheckRepository) CheckUseCase {
	return NewCheckUseCase(repo, service.NewFingerprinter(), &databaseMocks.PassthroughTxManager{}, 4)
}

// TestCheckUseCase_Check tests the Check method of checkUseCase.
func TestCheckUseCase_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ValidNumber", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Once()

		useCase := newUseCase(mockRepo)
		check, err := useCase.Check(ctx, "4532 0151 1283 0366")

		assert.NoError(t, err)
		assert.True(t, check.Valid)
		assert.Equal(t, 16, check.Length)
		assert.Equal(t, checkDomain.SourceText, check.Source)
		assert.Len(t, check.Fingerprint, 64)
		assert.False(t, check.CreatedAt.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_InvalidNumberIsRecordedNotRejected", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Once()

		useCase := newUseCase(mockRepo)
		check, err := useCase.Check(ctx, "059a")

		assert.NoError(t, err)
		assert.False(t, check.Valid)
		assert.Equal(t, 4, check.Length)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_EmptyNumberIsRecordedNotRejected", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Once()

		useCase := newUseCase(mockRepo)
		check, err := useCase.Check(ctx, "")

		assert.NoError(t, err)
		assert.False(t, check.Valid)
		assert.Equal(t, 0, check.Length)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_SpacedAndCompactShareFingerprint", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Twice()

		useCase := newUseCase(mockRepo)
		spaced, err := useCase.Check(ctx, "4539 3195 0343 6467")
		assert.NoError(t, err)
		compact, err := useCase.Check(ctx, "4539319503436467")
		assert.NoError(t, err)

		assert.Equal(t, compact.Fingerprint, spaced.Fingerprint)
		assert.NotEqual(t, compact.ID, spaced.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid_NumberTooLong", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}

		useCase := newUseCase(mockRepo)
		long := make([]byte, checkDomain.MaxNumberLength+1)
		for i := range long {
			long[i] = '1'
		}
		check, err := useCase.Check(ctx, string(long))

		assert.Error(t, err)
		assert.Nil(t, check)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).
			Return(errors.New("database error")).Once()

		useCase := newUseCase(mockRepo)
		check, err := useCase.Check(ctx, "059")

		assert.Error(t, err)
		assert.Nil(t, check)
		mockRepo.AssertExpectations(t)
	})
}

// TestCheckUseCase_CheckNumber tests the CheckNumber method of checkUseCase.
func TestCheckUseCase_CheckNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ValidInteger", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Once()

		useCase := newUseCase(mockRepo)
		check, err := useCase.CheckNumber(ctx, 59)

		assert.NoError(t, err)
		assert.True(t, check.Valid)
		assert.Equal(t, 2, check.Length)
		assert.Equal(t, checkDomain.SourceNumber, check.Source)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_IntegerMatchesTextFingerprint", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Twice()

		useCase := newUseCase(mockRepo)
		fromInteger, err := useCase.CheckNumber(ctx, 79927398713)
		assert.NoError(t, err)
		fromText, err := useCase.Check(ctx, "79927398713")
		assert.NoError(t, err)

		assert.Equal(t, fromText.Fingerprint, fromInteger.Fingerprint)
		assert.Equal(t, fromText.Valid, fromInteger.Valid)
		mockRepo.AssertExpectations(t)
	})
}

// TestCheckUseCase_CheckBatch tests the CheckBatch method of checkUseCase.
func TestCheckUseCase_CheckBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MixedBatchKeepsOrder", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Times(3)

		useCase := newUseCase(mockRepo)
		checks, err := useCase.CheckBatch(ctx, []string{"059", "1", "4532015112830366"})

		assert.NoError(t, err)
		assert.Len(t, checks, 3)
		assert.True(t, checks[0].Valid)
		assert.False(t, checks[1].Valid)
		assert.True(t, checks[2].Valid)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid_EmptyBatch", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}

		useCase := newUseCase(mockRepo)
		checks, err := useCase.CheckBatch(ctx, nil)

		assert.Error(t, err)
		assert.Nil(t, checks)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_RepositoryFailureStopsBatch", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).
			Return(errors.New("database error"))

		useCase := newUseCase(mockRepo)
		checks, err := useCase.CheckBatch(ctx, []string{"059", "1"})

		assert.Error(t, err)
		assert.Nil(t, checks)
	})
}

// TestCheckUseCase_Generate tests the Generate method of checkUseCase.
func TestCheckUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GeneratedNumberIsValid", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Check")).Return(nil).Once()

		useCase := newUseCase(mockRepo)
		generated, err := useCase.Generate(ctx, 16)

		assert.NoError(t, err)
		assert.Len(t, generated.Number, 16)
		assert.True(t, generated.Check.Valid)
		assert.Equal(t, 16, generated.Check.Length)
		assert.Equal(t, checkDomain.SourceNumber, generated.Check.Source)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid_LengthTooSmall", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}

		useCase := newUseCase(mockRepo)
		generated, err := useCase.Generate(ctx, 1)

		assert.Error(t, err)
		assert.Nil(t, generated)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

// TestCheckUseCase_ListChecks tests the listing methods of checkUseCase.
func TestCheckUseCase_ListChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_List", func(t *testing.T) {
		expected := []*checkDomain.Check{
			{Fingerprint: "abc", Valid: true, Source: checkDomain.SourceText},
		}
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("List", mock.Anything, 0, 50).Return(expected, nil).Once()

		useCase := newUseCase(mockRepo)
		checks, err := useCase.ListChecks(ctx, 0, 50)

		assert.NoError(t, err)
		assert.Equal(t, expected, checks)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_ListByFingerprint", func(t *testing.T) {
		expected := []*checkDomain.Check{
			{Fingerprint: "abc", Valid: false, Source: checkDomain.SourceNumber},
		}
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("ListByFingerprint", mock.Anything, "abc", 0, 50).Return(expected, nil).Once()

		useCase := newUseCase(mockRepo)
		checks, err := useCase.ListChecksByFingerprint(ctx, "abc", 0, 50)

		assert.NoError(t, err)
		assert.Equal(t, expected, checks)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_ListFailure", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("List", mock.Anything, 0, 50).Return(nil, errors.New("database error")).Once()

		useCase := newUseCase(mockRepo)
		checks, err := useCase.ListChecks(ctx, 0, 50)

		assert.Error(t, err)
		assert.Nil(t, checks)
		mockRepo.AssertExpectations(t)
	})
}

// TestCheckUseCase_CleanChecks tests the CleanChecks method of checkUseCase.
func TestCheckUseCase_CleanChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Delete", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("DeleteOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(7), nil).Once()

		useCase := newUseCase(mockRepo)
		removed, err := useCase.CleanChecks(ctx, 30*24*time.Hour, false)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), removed)
		mockRepo.AssertNotCalled(t, "CountOlderThan")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_DryRunOnlyCounts", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("CountOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once()

		useCase := newUseCase(mockRepo)
		removed, err := useCase.CleanChecks(ctx, 30*24*time.Hour, true)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		mockRepo.AssertNotCalled(t, "DeleteOlderThan")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_DeleteFailure", func(t *testing.T) {
		mockRepo := &checkUsecaseMocks.MockCheckRepository{}
		mockRepo.On("DeleteOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("database error")).Once()

		useCase := newUseCase(mockRepo)
		removed, err := useCase.CleanChecks(ctx, 30*24*time.Hour, false)

		assert.Error(t, err)
		assert.Equal(t, int64(0), removed)
		mockRepo.AssertExpectations(t)
	})
}
