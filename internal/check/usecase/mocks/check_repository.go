// Package mocks provides mock implementations for testing check use cases.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
)

// MockCheckRepository is a mock implementation of CheckRepository for testing.
type MockCheckRepository struct {
	mock.Mock
}

// Create mocks the Create method of CheckRepository.
func (m *MockCheckRepository) Create(ctx context.Context, check *checkDomain.Check) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

// List mocks the List method of CheckRepository.
func (m *MockCheckRepository) List(ctx context.Context, offset, limit int) ([]*checkDomain.Check, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkDomain.Check), args.Error(1)
}

// ListByFingerprint mocks the ListByFingerprint method of CheckRepository.
func (m *MockCheckRepository) ListByFingerprint(
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

// DeleteOlderThan mocks the DeleteOlderThan method of CheckRepository.
func (m *MockCheckRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// CountOlderThan mocks the CountOlderThan method of CheckRepository.
func (m *MockCheckRepository) CountOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}
