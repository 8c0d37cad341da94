// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
)

// CheckRequest contains the parameters for checking a single number.
// The number may be given as text or as an unsigned integer; exactly one of
// the two must be present. The text form is not restricted to digits, a
// malformed number is a normal request that results in valid=false.
type CheckRequest struct {
	Number       *string `json:"number"`
	NumberUint64 *uint64 `json:"number_uint64"`
}

// Validate checks if the check request is valid.
func (r *CheckRequest) Validate() error {
	if r.Number == nil && r.NumberUint64 == nil {
		return validation.NewError("validation_check_request", "either number or number_uint64 is required")
	}
	if r.Number != nil && r.NumberUint64 != nil {
		return validation.NewError("validation_check_request", "number and number_uint64 are mutually exclusive")
	}
	if r.Number != nil {
		return validation.Validate(*r.Number,
			validation.Length(0, checkDomain.MaxNumberLength),
		)
	}
	return nil
}

// BatchCheckRequest contains the parameters for checking several numbers at
// once.
type BatchCheckRequest struct {
	Numbers []string `json:"numbers"`
}

// Validate checks if the batch check request is valid. The per-number length
// bound matches the single check limit; the batch size bound is enforced by
// the handler from configuration.
func (r *BatchCheckRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Numbers,
			validation.Required,
			validation.Each(validation.Length(0, checkDomain.MaxNumberLength)),
		),
	)
}

// GenerateRequest contains the parameters for generating a valid number.
type GenerateRequest struct {
	Length int `json:"length"`
}

// Validate checks if the generate request is valid.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length,
			validation.Required,
			validation.Min(checkDomain.MinGeneratedLength),
			validation.Max(checkDomain.MaxGeneratedLength),
		),
	)
}
