package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

// Response is the decoded result of a query or mutation. Errors, when
// present, are also returned as a *domain.GraphQLError by Transport.Do.
type Response struct {
	Data json.RawMessage
}

// Transport executes operations. Do serves queries and mutations; Subscribe
// serves every kind and always yields the four-phase event stream.
type Transport interface {
	Do(ctx context.Context, op *Operation) (*Response, error)
	Subscribe(ctx context.Context, op *Operation) (*Subscription, error)
}

// Link decorates a Transport.
type Link func(next Transport) Transport

// Chain composes links into one. The first link is outermost: it sees each
// operation first.
//
//	Chain(a, b)(t) == a(b(t))
func Chain(links ...Link) Link {
	return func(next Transport) Transport {
		for i := len(links) - 1; i >= 0; i-- {
			next = links[i](next)
		}
		return next
	}
}

// splitter routes subscriptions to the realtime transport and everything
// else to the HTTP transport.
type splitter struct {
	http     Transport
	realtime Transport
}

// Split returns a Transport that sends subscription operations to realtime
// and every other operation to http. Do on a subscription document fails
// with domain.ErrValidation because a subscription has no single result.
func Split(http, realtime Transport) Transport {
	return &splitter{http: http, realtime: realtime}
}

func (s *splitter) Do(ctx context.Context, op *Operation) (*Response, error) {
	if op.Kind == KindSubscription {
		return nil, fmt.Errorf("operation %q is a subscription: %w", op.Name, domain.ErrValidation)
	}
	return s.http.Do(ctx, op)
}

func (s *splitter) Subscribe(ctx context.Context, op *Operation) (*Subscription, error) {
	if op.Kind == KindSubscription {
		return s.realtime.Subscribe(ctx, op)
	}
	return s.http.Subscribe(ctx, op)
}
