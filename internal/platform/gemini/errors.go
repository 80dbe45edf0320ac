package gemini

import "errors"

// Error definitions for the gemini package. They describe the cause of a
// failure and are carried inside generation.RoundError for logging.
var (
	// ErrNoCandidates is returned when a response carries no usable candidate.
	ErrNoCandidates = errors.New("response has no candidates")

	// ErrContentBlocked is returned when the model stops for safety reasons.
	ErrContentBlocked = errors.New("content blocked by safety filters")

	// ErrNoInlineData is returned when no part of a response carries inline bytes.
	ErrNoInlineData = errors.New("response has no inline data")

	// ErrInvalidOptions is returned when the options list does not have the expected shape.
	ErrInvalidOptions = errors.New("invalid options format")
)
