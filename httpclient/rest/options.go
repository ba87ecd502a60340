package rest

import (
	"time"

	"github.com/ParthKapoor-dev/better-axios/httpclient"
)

// RequestOption configures a single REST request.
type RequestOption func(*httpclient.Request)

// WithHeaders merges headers into the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			r.Headers[k] = v
		}
	}
}

// WithHeader sets a single request header.
func WithHeader(key, value string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, 1)
		}
		r.Headers[key] = value
	}
}

// WithQuery adds query parameters to the request.
func WithQuery(params map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string, len(params))
		}
		for k, v := range params {
			r.Query[k] = v
		}
	}
}

// WithTimeout overrides the client timeout for this request.
func WithTimeout(d time.Duration) RequestOption {
	return func(r *httpclient.Request) {
		r.Timeout = d
	}
}

// WithoutAuth suppresses the auth header for this request even when a token
// is set.
func WithoutAuth() RequestOption {
	return func(r *httpclient.Request) {
		r.SkipAuth = true
	}
}

// OnSuccess sets a per-call success hook. Its presence suppresses the global
// success hook for this request.
func OnSuccess(hook func(*httpclient.Response)) RequestOption {
	return func(r *httpclient.Request) {
		r.OnSuccess = hook
	}
}

// OnError sets a per-call error hook. Its presence suppresses the global
// error hook for this request.
func OnError(hook func(*httpclient.Error)) RequestOption {
	return func(r *httpclient.Request) {
		r.OnError = hook
	}
}

// SkipGlobalHooks suppresses the global hooks for this request. Per-call
// hooks still fire.
func SkipGlobalHooks() RequestOption {
	return func(r *httpclient.Request) {
		r.SkipGlobalHooks = true
	}
}
