package graphql_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/graphql"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

func TestNewOperation_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		wantKind graphql.Kind
		wantName string
	}{
		{"named query", `query ListTodos { listTodos { items { id } } }`, graphql.KindQuery, "ListTodos"},
		{"shorthand query", `{ listTodos { items { id } } }`, graphql.KindQuery, ""},
		{"mutation", `mutation CreateTodo($input: CreateTodoInput!) { createTodo(input: $input) { id } }`, graphql.KindMutation, "CreateTodo"},
		{"subscription", `subscription OnCreateTodo { onCreateTodo { id } }`, graphql.KindSubscription, "OnCreateTodo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			op, err := graphql.NewOperation(tt.document, map[string]any{"a": 1})
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, op.Kind)
			require.Equal(t, tt.wantName, op.Name)
			require.Equal(t, tt.document, op.Document)
			require.NotNil(t, op.Header)
			require.NotNil(t, op.Extensions)
		})
	}
}

func TestNewOperation_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{"syntax error", `query {`},
		{"fragment only", `fragment F on Todo { id }`},
		{"two operations", `query A { a } query B { b }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := graphql.NewOperation(tt.document, nil)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrValidation), "error = %v, want ErrValidation", err)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Contains(t, verr.Fields, "document")
		})
	}
}
