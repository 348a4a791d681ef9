package api

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network I/O when the client
	// was configured without an API key.
	ErrMissingAPIKey = errors.New("api key is missing")

	// ErrInvalidURL signals a malformed base URL or endpoint construction.
	ErrInvalidURL = errors.New("invalid request url")

	// ErrInvalidResponse signals a transport response that could not be
	// read in full.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrDecoding signals a 2xx response whose body does not match the
	// expected schema.
	ErrDecoding = errors.New("failed to decode server response")

	// ErrAlreadyVoted is the 409 result of a vote call: the server already
	// holds a vote for this device.
	ErrAlreadyVoted = errors.New("already voted for this feature request")

	// ErrPermissionDenied is the 403 result: the device's entitlement does
	// not allow creating feature requests.
	ErrPermissionDenied = errors.New("creating feature requests is not permitted for this plan")
)

// ServerError is any response status outside 200-299 that has no dedicated
// sentinel above.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Code)
}

// NetworkError wraps a transport-level failure (DNS, timeout, reset).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the operation that produced err may succeed on
// retry: network failures, unreadable responses, and 5xx server errors
// qualify; everything else is a caller or contract problem.
func IsRetryable(err error) bool {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, ErrInvalidResponse)
}
