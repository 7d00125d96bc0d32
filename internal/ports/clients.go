package ports

import (
	"context"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/identity"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
)

// TodoClient defines the client port for the remote todo GraphQL API.
// Implemented by the GraphQL adapter; called by the application layer.
// Methods map 1:1 to the documents the adapter sends.
type TodoClient interface {
	// ListTodos returns every todo the API lists.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// CreateTodo sends the createTodo mutation exactly once and returns the
	// created entity. No deduplication is attempted.
	CreateTodo(ctx context.Context, input todo.CreateInput) (*todo.Todo, error)

	// SubscribeTodos opens one change-notification channel. The stream's
	// Events channel closes after the terminal event or after Close.
	SubscribeTodos(ctx context.Context, channel todo.Channel) (TodoStream, error)
}

// TodoStream is an open change-notification channel.
type TodoStream interface {
	// Events yields the channel's phases in order: start, zero or more next,
	// then exactly one of error or complete.
	Events() <-chan todo.ChangeEvent

	// Close releases the channel. Safe to call more than once.
	Close()
}

// IdentityClient defines the client port for the hosted identity provider.
type IdentityClient interface {
	// CurrentUser returns the signed-in user.
	// Returns domain.ErrNotSignedIn if no session exists or it cannot be refreshed.
	CurrentUser(ctx context.Context) (*identity.User, error)

	// FederatedSignIn starts the hosted sign-in flow and returns the URL the
	// user must open. Completion arrives later via CompleteSignIn.
	FederatedSignIn(ctx context.Context) (string, error)

	// CompleteSignIn exchanges the authorization code delivered to the
	// redirect URL for a session and persists it.
	// Returns domain.ErrAuth if state does not match a pending sign-in.
	CompleteSignIn(ctx context.Context, state, code string) (*identity.User, error)

	// SignOut forgets the stored session and returns the hosted logout URL.
	SignOut(ctx context.Context) (string, error)
}
