// Package graphql implements the client side of a managed GraphQL API: a
// composable transport chain (auth decorator, protocol splitter, HTTP and
// realtime transports) and a request client with query, mutate and subscribe.
//
// The chain is assembled once and shared:
//
//	transport := graphql.Chain(
//		graphql.AuthLink(graphql.APIKeyAuth(cfg.APIKey)),
//	)(graphql.Split(httpTransport, realtimeTransport))
//	client := graphql.NewClient(transport, metrics, logger)
//
// Nothing touches the network until the first operation is issued.
package graphql

import (
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

// Kind is the operation type of a GraphQL document.
type Kind string

// Operation kinds.
const (
	KindQuery        Kind = "query"
	KindMutation     Kind = "mutation"
	KindSubscription Kind = "subscription"
)

// Operation is one GraphQL request travelling through the transport chain.
// Links may add to Header and Extensions; Document and Variables are sent
// as given.
type Operation struct {
	Name       string
	Kind       Kind
	Document   string
	Variables  map[string]any
	Header     http.Header
	Extensions map[string]any
}

// NewOperation parses document to learn its operation kind and name.
// A document that does not parse, declares no operation, or declares more
// than one is rejected with domain.ErrValidation before any I/O.
func NewOperation(document string, variables map[string]any) (*Operation, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "document", Input: document})
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"document": err.Error()}}
	}

	switch len(doc.Operations) {
	case 0:
		return nil, &domain.ValidationError{Fields: map[string]string{"document": "declares no operation"}}
	case 1:
	default:
		return nil, &domain.ValidationError{Fields: map[string]string{"document": "declares more than one operation"}}
	}

	def := doc.Operations[0]

	var kind Kind
	switch def.Operation {
	case ast.Mutation:
		kind = KindMutation
	case ast.Subscription:
		kind = KindSubscription
	default:
		kind = KindQuery
	}

	return &Operation{
		Name:       def.Name,
		Kind:       kind,
		Document:   document,
		Variables:  variables,
		Header:     make(http.Header),
		Extensions: make(map[string]any),
	}, nil
}

// clone returns a copy whose Header and Extensions can be modified without
// affecting op.
func (op *Operation) clone() *Operation {
	c := *op
	c.Header = op.Header.Clone()
	if c.Header == nil {
		c.Header = make(http.Header)
	}
	c.Extensions = make(map[string]any, len(op.Extensions))
	for k, v := range op.Extensions {
		c.Extensions[k] = v
	}
	return &c
}
