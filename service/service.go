// Package service provides a composable base for grouping API endpoints
// under a shared path prefix.
//
// A Service holds a shared rest.Client and a base path; concrete endpoint
// groups hold a *Service and expose their own typed methods calling the
// scoped verbs. See the package example.
package service

import (
	"context"
	"strings"

	"github.com/ParthKapoor-dev/better-axios/httpclient/rest"
)

// Service scopes a rest.Client to a base path. The client is shared, not
// owned; its lifetime is the caller's responsibility. Service adds no
// behavior beyond URL scoping.
type Service struct {
	client   *rest.Client
	basePath string
}

// New creates a service rooted at basePath. A leading slash is enforced and
// a trailing slash dropped, so "users", "/users" and "/users/" are
// equivalent.
func New(client *rest.Client, basePath string) *Service {
	return &Service{client: client, basePath: normalizeBasePath(basePath)}
}

// Client returns the underlying rest client.
func (s *Service) Client() *rest.Client {
	return s.client
}

// BasePath returns the normalized base path.
func (s *Service) BasePath() string {
	return s.basePath
}

// BuildURL resolves a relative endpoint against the base path, collapsing
// any run of repeated slashes. "/users"+"123" and "/users"+"/123" both
// resolve to "/users/123".
func (s *Service) BuildURL(endpoint string) string {
	return collapseSlashes(s.basePath + "/" + endpoint)
}

// Get performs a GET request scoped to the service's base path.
func Get[T any](ctx context.Context, s *Service, endpoint string, opts ...rest.RequestOption) (*rest.Response[T], error) {
	return rest.Get[T](ctx, s.client, s.BuildURL(endpoint), opts...)
}

// Post performs a POST request scoped to the service's base path.
func Post[T any](ctx context.Context, s *Service, endpoint string, body any, opts ...rest.RequestOption) (*rest.Response[T], error) {
	return rest.Post[T](ctx, s.client, s.BuildURL(endpoint), body, opts...)
}

// Put performs a PUT request scoped to the service's base path.
func Put[T any](ctx context.Context, s *Service, endpoint string, body any, opts ...rest.RequestOption) (*rest.Response[T], error) {
	return rest.Put[T](ctx, s.client, s.BuildURL(endpoint), body, opts...)
}

// Patch performs a PATCH request scoped to the service's base path.
func Patch[T any](ctx context.Context, s *Service, endpoint string, body any, opts ...rest.RequestOption) (*rest.Response[T], error) {
	return rest.Patch[T](ctx, s.client, s.BuildURL(endpoint), body, opts...)
}

// Delete performs a DELETE request scoped to the service's base path.
func Delete[T any](ctx context.Context, s *Service, endpoint string, opts ...rest.RequestOption) (*rest.Response[T], error) {
	return rest.Delete[T](ctx, s.client, s.BuildURL(endpoint), opts...)
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = collapseSlashes(p)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

func collapseSlashes(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	prevSlash := false
	for _, r := range p {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
