package dto

import (
	"time"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	checkUseCase "github.com/allisson/cardcheck/internal/check/usecase"
)

// CheckResponse represents a check record in API responses. The checked
// number is never included, only its fingerprint.
type CheckResponse struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Length      int       `json:"length"`
	Valid       bool      `json:"valid"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapCheckToResponse converts a domain check to an API response.
func MapCheckToResponse(check *checkDomain.Check) CheckResponse {
	return CheckResponse{
		ID:          check.ID.String(),
		Fingerprint: check.Fingerprint,
		Length:      check.Length,
		Valid:       check.Valid,
		Source:      check.Source.String(),
		CreatedAt:   check.CreatedAt,
	}
}

// BatchCheckResponse represents the outcome of a batch check. Checks keep
// the order of the request numbers.
type BatchCheckResponse struct {
	Checks []CheckResponse `json:"checks"`
}

// MapChecksToBatchResponse converts domain checks to a batch API response.
func MapChecksToBatchResponse(checks []*checkDomain.Check) BatchCheckResponse {
	response := BatchCheckResponse{Checks: make([]CheckResponse, 0, len(checks))}
	for _, check := range checks {
		response.Checks = append(response.Checks, MapCheckToResponse(check))
	}
	return response
}

// GenerateResponse represents a generated number in API responses. This is
// the only place the number itself appears, it is not stored.
type GenerateResponse struct {
	Number string        `json:"number"`
	Check  CheckResponse `json:"check"`
}

// MapGeneratedNumberToResponse converts a generated number to an API response.
func MapGeneratedNumberToResponse(generated *checkUseCase.GeneratedNumber) GenerateResponse {
	return GenerateResponse{
		Number: generated.Number,
		Check:  MapCheckToResponse(generated.Check),
	}
}

// ListChecksResponse represents a paginated list of check records.
type ListChecksResponse struct {
	Checks []CheckResponse `json:"checks"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// MapChecksToListResponse converts domain checks to a paginated API response.
func MapChecksToListResponse(checks []*checkDomain.Check, offset, limit int) ListChecksResponse {
	response := ListChecksResponse{
		Checks: make([]CheckResponse, 0, len(checks)),
		Offset: offset,
		Limit:  limit,
	}
	for _, check := range checks {
		response.Checks = append(response.Checks, MapCheckToResponse(check))
	}
	return response
}
