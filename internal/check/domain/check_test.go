package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cardcheck/internal/errors"
)

func TestSource_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{
			name:    "Valid_Text",
			source:  SourceText,
			wantErr: false,
		},
		{
			name:    "Valid_Number",
			source:  SourceNumber,
			wantErr: false,
		},
		{
			name:    "Invalid_Empty",
			source:  Source(""),
			wantErr: true,
		},
		{
			name:    "Invalid_Unknown",
			source:  Source("binary"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "text", SourceText.String())
	assert.Equal(t, "number", SourceNumber.String())
}
