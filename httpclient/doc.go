// Package httpclient provides a convenience layer over net/http with a
// uniform response/error envelope, bearer-token injection, and global or
// per-call success/error hooks.
//
// Every request settles into exactly one of two shapes: a *Response with
// Success=true, or a *Error carrying a human-readable message, the HTTP
// status (0 when no response was received), and the original cause.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	})
//
//	client.SetAuthToken("my-token")
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// # Hooks
//
// Global hooks fire on every outcome unless a per-call hook is supplied or
// the call sets SkipGlobalHooks. A per-call hook always suppresses the
// global one for that call:
//
//	client, _ := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    OnError: func(e *httpclient.Error) { log.Println("api error:", e.Message) },
//	})
//
// The subpackage rest adds generic typed verbs (rest.Get[T], rest.Post[T],
// ...) that decode JSON bodies into caller-supplied types.
package httpclient
