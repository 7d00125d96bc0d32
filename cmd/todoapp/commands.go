package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/console"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// signInTimeout matches how long the identity client keeps a pending
// sign-in.
const signInTimeout = 10 * time.Minute

const usage = `usage: todoapp [command]

Without a command, todoapp starts the interactive UI (a terminal is required).

Commands:
  query      list todos
  create     create a todo
  subscribe  stream create, update and delete events until interrupted
  signin     sign in through the hosted UI and wait for the redirect
  whoami     show the signed-in user
  signout    forget the stored session
  status     report the health of the remote services`

var errUsage = errors.New(usage)

// runCommand runs one command against the wired graph. Failures already
// shown as notices come back wrapped in errReported.
func runCommand(ctx context.Context, injector do.Injector, args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) != 1 {
		return errUsage
	}

	if args[0] == "status" {
		return runStatus(ctx, injector, out)
	}

	actions, err := do.Invoke[ports.Actions](injector)
	if err != nil {
		return fmt.Errorf("resolving actions: %w", err)
	}

	switch args[0] {
	case "query":
		return reported(actions.QueryTodos(ctx))
	case "create":
		return reported(actions.CreateTodo(ctx))
	case "subscribe":
		return runSubscribe(ctx, actions)
	case "signin":
		return runSignIn(ctx, injector, actions, logger)
	case "whoami":
		return reported(actions.CurrentUser(ctx))
	case "signout":
		return reported(actions.SignOut(ctx))
	default:
		return errUsage
	}
}

func reported(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

// runSubscribe streams events until ctx is cancelled (Ctrl-C).
func runSubscribe(ctx context.Context, actions ports.Actions) error {
	subs, err := actions.SubscribeTodos(ctx)
	if subs != nil {
		defer func() { _ = subs.Close() }()
	}
	if err != nil {
		return reported(err)
	}

	<-ctx.Done()
	return nil
}

// runSignIn starts the hosted sign-in and blocks until the browser is
// redirected back to the callback server.
func runSignIn(ctx context.Context, injector do.Injector, actions ports.Actions, logger *slog.Logger) error {
	stop, err := startCallback(ctx, injector, logger)
	if err != nil {
		return fmt.Errorf("sign-in needs the local callback server: %w", err)
	}
	defer stop()

	if err := actions.SignIn(ctx); err != nil {
		return reported(err)
	}

	waiter := do.MustInvoke[*signInWaiter](injector)
	waitCtx, cancel := context.WithTimeout(ctx, signInTimeout)
	defer cancel()

	if err := waiter.wait(waitCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.New("timed out waiting for the sign-in redirect")
		}
		return reported(err)
	}
	return nil
}

func runStatus(ctx context.Context, injector do.Injector, out io.Writer) error {
	registry, err := do.Invoke[ports.HealthRegistry](injector)
	if err != nil {
		return fmt.Errorf("resolving health registry: %w", err)
	}
	renderer := do.MustInvoke[*console.Renderer](injector)

	resp, healthy := dto.ToReadinessResponse(registry.CheckAll(ctx))
	text, err := renderer.Payload(resp)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, text)

	if !healthy {
		return errReported
	}
	return nil
}
