package awscore

import (
	"errors"
	"fmt"
	"net"

	"github.com/canceraiddev/aws-core-go/service"
)

// TransportError wraps a failure that occurred before any response was
// available to decode: a bad URL, a timeout, or a network failure. The
// core surfaces it immediately and never retries.
type TransportError struct {
	Err error
}

// Error satisfies the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying failure was a timeout.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// DecodeError indicates a decoder rejected a well-formed HTTP response.
// It carries the response status code and a descriptive message.
type DecodeError struct {
	StatusCode int
	Message    string
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed with status %d: %s", e.StatusCode, e.Message)
}

// ServiceError indicates the remote API returned a structured error
// payload that the operation's error decoder understood. Err carries the
// caller's typed error value.
type ServiceError struct {
	StatusCode int
	Err        error
}

// Error satisfies the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error with status %d: %v", e.StatusCode, e.Err)
}

// Unwrap returns the typed service error, making it reachable through
// errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// SigningUnsupportedError indicates the service descriptor names a
// signing scheme with no signer implemented. It is returned before any
// network call is attempted.
type SigningUnsupportedError struct {
	Scheme service.SigningScheme
}

// Error satisfies the error interface.
func (e *SigningUnsupportedError) Error() string {
	return fmt.Sprintf("signing scheme %s is not implemented", e.Scheme)
}
