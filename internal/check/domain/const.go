package domain

const (
	// MaxNumberLength is the maximum accepted input length for a check.
	MaxNumberLength = 255

	// MinGeneratedLength is the minimum total length of a generated number.
	MinGeneratedLength = 2

	// MaxGeneratedLength is the maximum total length of a generated number.
	MaxGeneratedLength = 255
)
