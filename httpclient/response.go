package httpclient

import "net/http"

// Response is the uniform success envelope. It is only ever constructed for
// settled 2xx round trips; failures are represented exclusively by *Error.
type Response struct {
	// Success is always true. Failure never produces a Response.
	Success bool
	// StatusCode is the HTTP status code.
	StatusCode int
	// Message is the HTTP status text. May be empty for unknown codes.
	Message string
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
