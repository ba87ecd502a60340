package httpclient

import "time"

// Request describes an outbound HTTP request with its per-call overrides.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL.
	Path string
	// Headers are request-specific headers, merged over client defaults.
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded.
	Body any
	// Timeout overrides the client timeout for this call when positive.
	Timeout time.Duration
	// SkipAuth suppresses the auth header for this call even when a token
	// is set. The explicit opt-out wins over injection and over a request
	// interceptor that re-adds the header.
	SkipAuth bool
	// OnSuccess overrides the global success hook for this call. Its
	// presence alone suppresses the global hook.
	OnSuccess func(*Response)
	// OnError overrides the global error hook for this call. Its presence
	// alone suppresses the global hook.
	OnError func(*Error)
	// SkipGlobalHooks suppresses the global hooks for this call. A per-call
	// hook still fires.
	SkipGlobalHooks bool
}
