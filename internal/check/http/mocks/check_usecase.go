// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	checkUseCase "github.com/allisson/cardcheck/internal/check/usecase"
)

// MockCheckUseCase is a mock implementation of CheckUseCase for testing.
type MockCheckUseCase struct {
	mock.Mock
}

// Check mocks the Check method of CheckUseCase.
func (m *MockCheckUseCase) Check(ctx context.Context, number string) (*checkDomain.Check, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkDomain.Check), args.Error(1)
}

// CheckNumber mocks the CheckNumber method of CheckUseCase.
func (m *MockCheckUseCase) CheckNumber(ctx context.Context, number uint64) (*checkDomain.Check, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkDomain.Check), args.Error(1)
}

// CheckBatch mocks the CheckBatch method of CheckUseCase.
func (m *MockCheckUseCase) CheckBatch(ctx context.Context, numbers []string) ([]*checkDomain.Check, error) {
	args := m.Called(ctx, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkDomain.Check), args.Error(1)
}

// Generate mocks the Generate method of CheckUseCase.
func (m *MockCheckUseCase) Generate(ctx context.Context, length int) (*checkUseCase.GeneratedNumber, error) {
	args := m.Called(ctx, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkUseCase.GeneratedNumber), args.Error(1)
}

// ListChecks mocks the ListChecks method of CheckUseCase.
func (m *MockCheckUseCase) ListChecks(ctx context.Context, offset, limit int) ([]*checkDomain.Check, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkDomain.Check), args.Error(1)
}

// ListChecksByFingerprint mocks the ListChecksByFingerprint method of CheckUseCase.
func (m *MockCheckUseCase) ListChecksByFingerprint(
	ctx context.Context,
	fingerprint string,
	offset, limit int,
) ([]*checkDomain.Check, error) {
	args := m.Called(ctx, fingerprint, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkDomain.Check), args.Error(1)
}

// CleanChecks mocks the CleanChecks method of CheckUseCase.
func (m *MockCheckUseCase) CleanChecks(ctx context.Context, retention time.Duration, dryRun bool) (int64, error) {
	args := m.Called(ctx, retention, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
