package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

const (
	msgRequestFailed = "Request failed"
	msgUnknownError  = "Unknown error occurred"
)

// Error is the uniform failure shape. StatusCode is 0 when no response was
// received (connection failure, timeout, abort, interceptor failure).
type Error struct {
	// Message describes the failure. For responses carrying a JSON body
	// with a "message" field, it is that value verbatim.
	Message string
	// StatusCode is the HTTP status code, or 0 without a response.
	StatusCode int
	// Body is the raw response body when a response was received.
	Body []byte
	// Err is the original underlying error, retained for diagnostics.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newTransportError classifies a failure that produced no usable response.
func newTransportError(err error) *Error {
	msg := msgUnknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Message: msg, Err: err}
}

// classifyResponse converts a non-2xx response into a typed error.
// Returns nil for 2xx status codes.
func classifyResponse(resp *http.Response, body []byte) *Error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg := messageFromBody(body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	if msg == "" {
		msg = msgRequestFailed
	}
	return &Error{Message: msg, StatusCode: resp.StatusCode, Body: body}
}

// messageFromBody extracts the "message" field from a JSON error body.
func messageFromBody(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// StatusCode returns the HTTP status carried by err, or 0 for transport
// failures and non-client errors.
func StatusCode(err error) int {
	if e, ok := AsError(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsTransport checks if an error settled without any response.
func IsTransport(err error) bool {
	e, ok := AsError(err)
	return ok && e.StatusCode == 0
}

// IsTimeout checks if an error is a timeout or deadline failure.
func IsTimeout(err error) bool {
	e, ok := AsError(err)
	if !ok || e.StatusCode != 0 {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsAuth checks if an error is a 401/403 response.
func IsAuth(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsNotFound checks if an error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsServerError checks if an error is a 5xx response.
func IsServerError(err error) bool {
	return StatusCode(err) >= 500
}
