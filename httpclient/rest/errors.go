package rest

import "github.com/ParthKapoor-dev/better-axios/httpclient"

// Error helpers delegate to httpclient's classification. These are
// convenience re-exports so REST client users don't need to import
// httpclient directly for error checking.

// IsNotFound checks if the error is a 404 Not Found.
func IsNotFound(err error) bool { return httpclient.IsNotFound(err) }

// IsAuth checks if the error is a 401/403 authentication error.
func IsAuth(err error) bool { return httpclient.IsAuth(err) }

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool { return httpclient.IsServerError(err) }

// IsTransport checks if the error settled without any response.
func IsTransport(err error) bool { return httpclient.IsTransport(err) }

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool { return httpclient.IsTimeout(err) }

// StatusCode returns the HTTP status carried by the error, or 0.
func StatusCode(err error) int { return httpclient.StatusCode(err) }
