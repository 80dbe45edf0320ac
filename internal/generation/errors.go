package generation

import (
	"errors"
	"fmt"
)

// UserMessage is the only failure message shown to players, whatever the cause.
const UserMessage = "Không tạo được câu đố mới. Bé hãy thử lại nhé!"

// Common errors returned by the generation package
var (
	// ErrRoundGenerationFailed matches every round generation failure.
	ErrRoundGenerationFailed = errors.New("round generation failed")

	// ErrMalformedResponse is returned when the options response is missing or mis-shaped
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrImageGenerationFailed is returned when the image response carries no inline image
	ErrImageGenerationFailed = errors.New("image generation failed")

	// ErrTransportFailure is returned when the remote call itself fails
	ErrTransportFailure = errors.New("transport failure calling language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// FailureKind tags the cause of a failed round generation.
type FailureKind int

// Round generation failure kinds
const (
	FailureMalformedResponse FailureKind = iota + 1
	FailureImageGeneration
	FailureTransport
)

// String returns the log-friendly name of the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureMalformedResponse:
		return "malformed_response"
	case FailureImageGeneration:
		return "image_generation_failed"
	case FailureTransport:
		return "transport_failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureMalformedResponse:
		return ErrMalformedResponse
	case FailureImageGeneration:
		return ErrImageGenerationFailed
	case FailureTransport:
		return ErrTransportFailure
	default:
		return nil
	}
}

// RoundError is the tagged result of a failed round generation. Its message is
// always UserMessage so callers can show it directly; Kind lets them tell the
// causes apart. The underlying cause is kept for logging only.
type RoundError struct {
	Kind  FailureKind
	cause error
}

// NewRoundError wraps cause as a failure of the given kind.
func NewRoundError(kind FailureKind, cause error) *RoundError {
	return &RoundError{Kind: kind, cause: cause}
}

// Error implements the error interface.
func (e *RoundError) Error() string {
	return UserMessage
}

// Is matches ErrRoundGenerationFailed and the sentinel for the error's kind.
func (e *RoundError) Is(target error) bool {
	if target == ErrRoundGenerationFailed {
		return true
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Cause returns the underlying error for diagnostics.
func (e *RoundError) Cause() error {
	return e.cause
}

// KindOf returns the failure kind of err, or 0 when err is not a RoundError.
func KindOf(err error) FailureKind {
	var re *RoundError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
