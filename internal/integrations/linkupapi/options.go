package linkupapi

import (
	"context"
	"time"
)

// TokenProvider yields the bearer token for the current request context.
// Injected explicitly so the client never reaches into global session state;
// the gateway wires it to the session placed in the context by the auth
// middleware, tests wire a stub.
type TokenProvider interface {
	Token(ctx context.Context) (string, bool)
}

// TokenProviderFunc adapts a function to the TokenProvider interface
type TokenProviderFunc func(ctx context.Context) (string, bool)

func (f TokenProviderFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

type requestOptions struct {
	skipAuth bool
	timeout  time.Duration
}

// RequestOption customizes a single request
type RequestOption func(*requestOptions)

// SkipAuth suppresses bearer-token injection for unauthenticated flows
// such as login and signup
func SkipAuth() RequestOption {
	return func(o *requestOptions) {
		o.skipAuth = true
	}
}

// WithTimeout overrides the client's default timeout for this request
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = d
	}
}
