// Package luhn implements Luhn checksum validation and generation for
// identification numbers such as payment card numbers.
//
// A Number can be built from any supported input representation (string,
// byte slice, unsigned integer). Construction never fails; malformed input
// is reported by Valid returning false.
package luhn

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Number holds a digit-bearing representation to be checked against the Luhn
// algorithm. The original representation is kept verbatim; validity is
// determined by Valid, not at construction time.
type Number struct {
	raw string
}

// FromString creates a Number from a string. Any string is accepted,
// including empty strings and strings containing non-digit characters.
func FromString(s string) Number {
	return Number{raw: s}
}

// FromBytes creates a Number from a byte slice. The bytes are copied, so
// later mutation of the slice does not affect the Number.
func FromBytes(b []byte) Number {
	return Number{raw: string(b)}
}

// FromUint64 creates a Number from an unsigned integer, rendered in base 10.
func FromUint64(n uint64) Number {
	return Number{raw: strconv.FormatUint(n, 10)}
}

// String returns the original representation, verbatim.
func (n Number) String() string {
	return n.raw
}

// Valid reports whether the number satisfies the Luhn checksum.
//
// ASCII spaces are stripped before validation. After stripping, the input is
// invalid if it is empty or contains any character that is not an ASCII
// digit. Otherwise digits are traversed right to left, every second digit is
// doubled (subtracting 9 when the result exceeds 9), and the number is valid
// iff the digit sum is a multiple of 10.
func (n Number) Valid() bool {
	digits := make([]int, 0, len(n.raw))
	for i := 0; i < len(n.raw); i++ {
		c := n.raw[i]
		if c == ' ' {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
		digits = append(digits, int(c-'0'))
	}

	if len(digits) == 0 {
		return false
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		digit := digits[len(digits)-1-i]
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return sum%10 == 0
}

// CheckDigit calculates the Luhn check digit for a payload of ASCII digits.
// The payload must not include the check digit position. Returns an error if
// the payload is empty or contains non-digit characters.
func CheckDigit(payload string) (int, error) {
	if payload == "" {
		return 0, errors.New("payload must not be empty")
	}

	digits := make([]int, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c < '0' || c > '9' {
			return 0, errors.New("payload must contain only numeric characters")
		}
		digits[i] = int(c - '0')
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		digit := digits[len(digits)-1-i]

		// The check digit will occupy the rightmost position, so the payload
		// digits start at the doubled parity.
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10, nil
}

// Generate creates a cryptographically random Luhn-compliant Number of the
// specified length. The last digit is the Luhn check digit. Returns an error
// if length is less than 2 or greater than 255.
func Generate(length int) (Number, error) {
	if length < 2 {
		return Number{}, errors.New("length must be at least 2 for Luhn numbers")
	}
	if length > 255 {
		return Number{}, errors.New("length must not exceed 255")
	}

	payload := make([]byte, length-1)
	for i := range payload {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return Number{}, fmt.Errorf("failed to generate random digit: %w", err)
		}
		payload[i] = byte('0' + n.Int64())
	}

	checkDigit, err := CheckDigit(string(payload))
	if err != nil {
		return Number{}, err
	}

	return Number{raw: string(payload) + strconv.Itoa(checkDigit)}, nil
}
