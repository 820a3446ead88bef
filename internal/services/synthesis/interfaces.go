package synthesis

import (
	"context"
	"errors"
	"fmt"
)

// Backend is the single synchronous contract the pipeline needs from a
// speech synthesis provider: text in, encoded audio bytes out.
type Backend interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// Request holds the parameters for one synthesis call.
type Request struct {
	Text    string  // Sanitized line text
	VoiceID string  // Opaque backend voice identifier
	Speed   float64 // Positive multiplier; 0 means backend default
}

// Sentinel errors
var (
	ErrEmptyInput = errors.New("text is empty after sanitization")
)

// BackendError represents a failure reported by the synthesis backend.
// Status carries the HTTP status when the failure came from a response;
// it is zero for transport-level errors.
type BackendError struct {
	Status int
	Body   string
	Err    error
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("synthesis backend returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("synthesis backend call failed: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a synthesis error is worth retrying. Transport
// errors, rate limits and server-side failures are transient; client errors
// (malformed input, bad voice) are not.
func Retryable(err error) bool {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		if backendErr.Status == 0 {
			return true // network/transport error
		}
		return backendErr.Status == 429 || backendErr.Status >= 500
	}
	return true
}
