// Package http provides HTTP handlers for Luhn check operations.
// Checked numbers are never echoed back or persisted, responses carry only
// their fingerprints.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/check/http/dto"
	checkUseCase "github.com/allisson/cardcheck/internal/check/usecase"
	"github.com/allisson/cardcheck/internal/httputil"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// CheckHandler handles HTTP requests for check operations.
type CheckHandler struct {
	checkUseCase checkUseCase.CheckUseCase
	maxBatchSize int
	logger       *slog.Logger
}

// NewCheckHandler creates a new check handler with required dependencies.
// maxBatchSize bounds the number of numbers accepted by the batch endpoint.
func NewCheckHandler(useCase checkUseCase.CheckUseCase, maxBatchSize int, logger *slog.Logger) *CheckHandler {
	return &CheckHandler{
		checkUseCase: useCase,
		maxBatchSize: maxBatchSize,
		logger:       logger,
	}
}

// CheckHandler validates a single number and records the outcome.
// POST /v1/checks
// Returns 201 Created with the check record. A number that fails validation
// is a normal outcome (valid=false), not an error.
func (h *CheckHandler) CheckHandler(c *gin.Context) {
	var req dto.CheckRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var check *checkDomain.Check
	var err error
	if req.Number != nil {
		check, err = h.checkUseCase.Check(c.Request.Context(), *req.Number)
	} else {
		check, err = h.checkUseCase.CheckNumber(c.Request.Context(), *req.NumberUint64)
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCheckToResponse(check))
}

// BatchCheckHandler validates several numbers and records each outcome.
// POST /v1/checks/batch
// Returns 201 Created with the check records in request order.
func (h *CheckHandler) BatchCheckHandler(c *gin.Context) {
	var req dto.BatchCheckRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if len(req.Numbers) > h.maxBatchSize {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("batch size exceeds maximum of %d numbers", h.maxBatchSize),
			h.logger,
		)
		return
	}

	checks, err := h.checkUseCase.CheckBatch(c.Request.Context(), req.Numbers)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapChecksToBatchResponse(checks))
}

// GenerateHandler creates a random number that passes validation.
// POST /v1/generate
// Returns 201 Created with the number and its check record. This is the only
// response that contains a number.
func (h *CheckHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	generated, err := h.checkUseCase.Generate(c.Request.Context(), req.Length)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGeneratedNumberToResponse(generated))
}

// ListChecksHandler returns recorded checks ordered by creation time descending.
// GET /v1/checks?offset=N&limit=M
// Returns 200 OK with a paginated list of check records.
func (h *CheckHandler) ListChecksHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	checks, err := h.checkUseCase.ListChecks(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapChecksToListResponse(checks, offset, limit))
}

// ListChecksByFingerprintHandler returns recorded checks for a fingerprint.
// GET /v1/checks/:fingerprint?offset=N&limit=M
// Returns 200 OK with a paginated list of check records.
func (h *CheckHandler) ListChecksByFingerprintHandler(c *gin.Context) {
	fingerprint := c.Param("fingerprint")
	if err := customValidation.Fingerprint.Validate(fingerprint); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	checks, err := h.checkUseCase.ListChecksByFingerprint(c.Request.Context(), fingerprint, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapChecksToListResponse(checks, offset, limit))
}
