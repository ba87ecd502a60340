// Package rest provides a JSON-focused typed layer over the base client.
//
// It inherits the envelope, auth, and hook semantics from httpclient and
// adds generic verbs that decode response bodies into caller-supplied types:
//
//	client, _ := rest.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	})
//	client.HTTP().SetAuthToken("token")
//
//	// Typed GET
//	user, err := rest.Get[User](ctx, client, "/users/123")
//
//	// Typed POST
//	created, err := rest.Post[User](ctx, client, "/users", CreateUserRequest{Name: "Alice"})
//
// Per-call behavior is tuned with functional options:
//
//	rest.Get[User](ctx, client, "/public/health",
//	    rest.WithoutAuth(),
//	    rest.SkipGlobalHooks(),
//	)
package rest
