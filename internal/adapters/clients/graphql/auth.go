package graphql

import (
	"context"
)

// HeaderAPIKey carries the static API key credential.
const HeaderAPIKey = "x-api-key"

// Auth attaches a credential to an outgoing operation.
type Auth interface {
	Apply(ctx context.Context, op *Operation) error
}

// AuthFunc adapts a function to Auth.
type AuthFunc func(ctx context.Context, op *Operation) error

// Apply calls f.
func (f AuthFunc) Apply(ctx context.Context, op *Operation) error {
	return f(ctx, op)
}

// APIKeyAuth attaches key as the x-api-key header. The realtime transport
// forwards the same header in its authorization extension.
func APIKeyAuth(key string) Auth {
	return AuthFunc(func(_ context.Context, op *Operation) error {
		op.Header.Set(HeaderAPIKey, key)
		return nil
	})
}

type authTransport struct {
	auth Auth
	next Transport
}

// AuthLink returns a Link that applies auth to every operation before it
// reaches the next transport. The caller's Operation is not modified.
func AuthLink(auth Auth) Link {
	return func(next Transport) Transport {
		return &authTransport{auth: auth, next: next}
	}
}

func (t *authTransport) Do(ctx context.Context, op *Operation) (*Response, error) {
	op = op.clone()
	if err := t.auth.Apply(ctx, op); err != nil {
		return nil, err
	}
	return t.next.Do(ctx, op)
}

func (t *authTransport) Subscribe(ctx context.Context, op *Operation) (*Subscription, error) {
	op = op.clone()
	if err := t.auth.Apply(ctx, op); err != nil {
		return nil, err
	}
	return t.next.Subscribe(ctx, op)
}
