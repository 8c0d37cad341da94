// Package service provides supporting services for the check module.
package service

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Fingerprinter computes stable fingerprints for numbers so checks can be
// recorded and looked up without persisting the number itself.
type Fingerprinter interface {
	// Fingerprint returns the hex-encoded digest of the canonicalized number.
	Fingerprint(number string) string
}

type sha3Fingerprinter struct{}

// NewFingerprinter returns a SHA3-256 based Fingerprinter.
func NewFingerprinter() Fingerprinter {
	return &sha3Fingerprinter{}
}

// Fingerprint canonicalizes the number by removing ASCII spaces and returns
// the lowercase hex SHA3-256 digest. Two renderings of the same number with
// different spacing produce the same fingerprint.
func (f *sha3Fingerprinter) Fingerprint(number string) string {
	canonical := strings.ReplaceAll(number, " ", "")
	digest := sha3.Sum256([]byte(canonical))
	return hex.EncodeToString(digest[:])
}
