// Package domain defines core domain models for Luhn check records.
// A check records the outcome of validating one number; the number itself is
// never stored, only its fingerprint.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies the input representation a number was converted from.
type Source string

const (
	// SourceText marks numbers that arrived as text.
	SourceText Source = "text"

	// SourceNumber marks numbers that arrived as unsigned integers.
	SourceNumber Source = "number"
)

// Validate checks if the source is valid.
func (s Source) Validate() error {
	switch s {
	case SourceText, SourceNumber:
		return nil
	default:
		return ErrInvalidSource
	}
}

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// Check represents the recorded outcome of one Luhn validation.
type Check struct {
	ID uuid.UUID
	// Fingerprint is the SHA3-256 hex digest of the canonicalized input
	// (ASCII spaces removed). The original number is never persisted.
	Fingerprint string
	// Length is the number of characters in the canonicalized input.
	Length int
	Valid  bool
	Source Source
	// CreatedAt is the UTC timestamp at which the check was performed.
	CreatedAt time.Time
}
