package domain

import (
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// ErrInvalidSource is returned when a check source is not recognized.
var ErrInvalidSource = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid check source")
