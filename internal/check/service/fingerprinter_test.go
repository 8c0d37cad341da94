package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA3Fingerprinter_Fingerprint(t *testing.T) {
	fingerprinter := NewFingerprinter()

	t.Run("Success_StableOutput", func(t *testing.T) {
		first := fingerprinter.Fingerprint("4532015112830366")
		second := fingerprinter.Fingerprint("4532015112830366")

		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("Success_SpacingDoesNotChangeFingerprint", func(t *testing.T) {
		spaced := fingerprinter.Fingerprint("4532 0151 1283 0366")
		compact := fingerprinter.Fingerprint("4532015112830366")

		assert.Equal(t, compact, spaced)
	})

	t.Run("Success_DifferentNumbersDiffer", func(t *testing.T) {
		first := fingerprinter.Fingerprint("059")
		second := fingerprinter.Fingerprint("159")

		assert.NotEqual(t, first, second)
	})

	t.Run("Success_LowercaseHex", func(t *testing.T) {
		fingerprint := fingerprinter.Fingerprint("059")

		assert.Regexp(t, "^[0-9a-f]{64}$", fingerprint)
	})
}
