package ports

import (
	"context"
	"io"
)

// Actions defines the service port for the user-visible actions.
// Implemented by the application layer; called by the TUI, the command
// runner and the sign-in callback handler.
//
// Every outcome, success or failure, is reported through the Notifier the
// implementation was built with. The returned error mirrors the notified
// outcome and exists so callers can set an exit status.
type Actions interface {
	// QueryTodos lists todos and reports the result.
	QueryTodos(ctx context.Context) error

	// CreateTodo creates one todo with a generated, unique name.
	CreateTodo(ctx context.Context) error

	// SubscribeTodos opens the create, update and delete channels and
	// reports every phase of each. Closing the returned value releases all
	// three channels.
	SubscribeTodos(ctx context.Context) (io.Closer, error)

	// SignIn starts the hosted sign-in flow.
	SignIn(ctx context.Context) error

	// CompleteSignIn finishes a sign-in started by SignIn.
	CompleteSignIn(ctx context.Context, state, code string) error

	// CurrentUser reports the signed-in user.
	CurrentUser(ctx context.Context) error

	// SignOut forgets the stored session.
	SignOut(ctx context.Context) error
}
