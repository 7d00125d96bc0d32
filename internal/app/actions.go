// Package app provides the application service behind the user-visible
// actions. It coordinates the todo and identity ports and reports every
// outcome through a single Notifier.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/app/fanout"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Compile-time check that ActionService implements ports.Actions.
var _ ports.Actions = (*ActionService)(nil)

// ActionService implements ports.Actions. Each method notifies exactly the
// outcomes it produced; errors are returned as well so command mode can set
// an exit status, but no caller needs to handle them for the user to see
// what happened.
type ActionService struct {
	todos    ports.TodoClient
	identity ports.IdentityClient
	notifier ports.Notifier
	clock    *nameClock
	logger   *slog.Logger
}

// Option configures an ActionService.
type Option func(*ActionService)

// WithClock replaces the wall clock used for generated todo names.
func WithClock(now func() time.Time) Option {
	return func(s *ActionService) {
		s.clock = newNameClock(now)
	}
}

// NewActionService creates an ActionService. A nil logger discards output.
func NewActionService(
	todos ports.TodoClient,
	identity ports.IdentityClient,
	notifier ports.Notifier,
	logger *slog.Logger,
	opts ...Option,
) *ActionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ActionService{
		todos:    todos,
		identity: identity,
		notifier: notifier,
		clock:    newNameClock(time.Now),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryTodos lists every todo.
func (s *ActionService) QueryTodos(ctx context.Context) error {
	s.logger.InfoContext(ctx, "querying todos")

	todos, err := s.todos.ListTodos(ctx)
	if err != nil {
		return s.fail(ctx, ActionQueryTodos, ports.DisplayConsole, "Query todos failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionQueryTodos,
		Level:   ports.LevelSuccess,
		Display: ports.DisplayConsole,
		Title:   fmt.Sprintf("%d todos", len(todos)),
		Payload: toTodoViews(todos),
	})
	return nil
}

// CreateTodo creates one todo named after the next clock tick. The mutation
// is sent once; a failure is reported, never retried.
func (s *ActionService) CreateTodo(ctx context.Context) error {
	in := todo.NewCreateInput(s.clock.next())
	s.logger.InfoContext(ctx, "creating todo", slog.String("name", in.Name))

	created, err := s.todos.CreateTodo(ctx, in)
	if err != nil {
		return s.fail(ctx, ActionCreateTodo, ports.DisplayConsole, "Create todo failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionCreateTodo,
		Level:   ports.LevelSuccess,
		Display: ports.DisplayConsole,
		Title:   "Mutation result",
		Payload: toTodoView(*created),
	})
	return nil
}

// SubscribeTodos opens all three change channels concurrently. Channels that
// fail to open are reported individually; the returned set holds the ones
// that opened. The error is non-nil only when none did.
func (s *ActionService) SubscribeTodos(ctx context.Context) (io.Closer, error) {
	channels := todo.Channels()
	s.logger.InfoContext(ctx, "subscribing to todo changes", slog.Int("channels", len(channels)))

	results := fanout.Run(ctx, len(channels), channels,
		func(ctx context.Context, ch todo.Channel) (ports.TodoStream, error) {
			return s.todos.SubscribeTodos(ctx, ch)
		})

	set := &SubscriptionSet{}
	for i, r := range results {
		ch := channels[i]
		if r.Err != nil {
			_ = s.fail(ctx, ActionSubscribeTodos, displayFor(ch), fmt.Sprintf("Subscribe %s failed", ch), r.Err)
			continue
		}
		set.add(r.Value, func() { s.forward(ctx, ch, r.Value) })
	}

	if set.Len() == 0 {
		return set, fanout.Errors(channels, results)
	}
	return set, nil
}

// forward relays every event of one channel until it closes.
func (s *ActionService) forward(ctx context.Context, ch todo.Channel, stream ports.TodoStream) {
	for ev := range stream.Events() {
		n := ports.Notice{
			Action:  ActionSubscribeTodos,
			Level:   levelFor(ev.Phase),
			Display: displayFor(ch),
			Title:   fmt.Sprintf("on%s %s", channelTitle(ch), ev.Phase),
			Payload: toChangeView(ev),
			Err:     ev.Err,
		}
		if ev.Err != nil {
			s.logger.WarnContext(ctx, "subscription failed",
				slog.String("channel", string(ch)),
				slog.Any("error", ev.Err),
			)
		}
		s.notify(context.WithoutCancel(ctx), n)
	}
	s.logger.DebugContext(ctx, "subscription ended", slog.String("channel", string(ch)))
}

// SignIn starts the hosted sign-in flow and hands the user the URL to open.
func (s *ActionService) SignIn(ctx context.Context) error {
	url, err := s.identity.FederatedSignIn(ctx)
	if err != nil {
		return s.fail(ctx, ActionSignIn, ports.DisplayAlert, "Sign in failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionSignIn,
		Level:   ports.LevelInfo,
		Display: ports.DisplayAlert,
		Title:   "Open this URL to sign in",
		Payload: URLView{URL: url},
	})
	return nil
}

// CompleteSignIn redeems the authorization code from the sign-in redirect.
func (s *ActionService) CompleteSignIn(ctx context.Context, state, code string) error {
	user, err := s.identity.CompleteSignIn(ctx, state, code)
	if err != nil {
		return s.fail(ctx, ActionCompleteSignIn, ports.DisplayAlert, "Sign in failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionCompleteSignIn,
		Level:   ports.LevelSuccess,
		Display: ports.DisplayAlert,
		Title:   "Signed in as " + user.Username,
		Payload: toUserView(user),
	})
	return nil
}

// CurrentUser reports the signed-in user. Having no session is an ordinary
// outcome: it is notified as "No current user" and returns nil.
func (s *ActionService) CurrentUser(ctx context.Context) error {
	user, err := s.identity.CurrentUser(ctx)
	if errors.Is(err, domain.ErrNotSignedIn) {
		s.logger.InfoContext(ctx, "no current user")
		s.notify(ctx, ports.Notice{
			Action:  ActionCurrentUser,
			Level:   ports.LevelInfo,
			Display: ports.DisplayAlert,
			Title:   "No current user",
			Err:     err,
		})
		return nil
	}
	if err != nil {
		return s.fail(ctx, ActionCurrentUser, ports.DisplayAlert, "Current user failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionCurrentUser,
		Level:   ports.LevelSuccess,
		Display: ports.DisplayAlert,
		Title:   user.Username,
		Payload: toUserView(user),
	})
	return nil
}

// SignOut forgets the session and hands the user the hosted logout URL.
func (s *ActionService) SignOut(ctx context.Context) error {
	url, err := s.identity.SignOut(ctx)
	if err != nil {
		return s.fail(ctx, ActionSignOut, ports.DisplayAlert, "Sign out failed", err)
	}

	s.notify(ctx, ports.Notice{
		Action:  ActionSignOut,
		Level:   ports.LevelSuccess,
		Display: ports.DisplayAlert,
		Title:   "Signed out",
		Payload: URLView{URL: url},
	})
	return nil
}

// fail logs and notifies err, then returns it.
func (s *ActionService) fail(ctx context.Context, action string, display ports.Display, title string, err error) error {
	s.logger.ErrorContext(ctx, "action failed",
		slog.String("action", action),
		slog.Any("error", err),
	)
	s.notify(ctx, ports.Notice{
		Action:  action,
		Level:   ports.LevelError,
		Display: display,
		Title:   title,
		Err:     err,
	})
	return err
}

func (s *ActionService) notify(ctx context.Context, n ports.Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	s.notifier.Notify(ctx, n)
}

// displayFor puts create events in front of the user and keeps the noisier
// update and delete channels in the console.
func displayFor(ch todo.Channel) ports.Display {
	if ch == todo.ChannelCreate {
		return ports.DisplayAlert
	}
	return ports.DisplayConsole
}

func levelFor(p domain.Phase) ports.Level {
	switch p {
	case domain.PhaseNext:
		return ports.LevelSuccess
	case domain.PhaseError:
		return ports.LevelError
	default:
		return ports.LevelInfo
	}
}

func channelTitle(ch todo.Channel) string {
	switch ch {
	case todo.ChannelCreate:
		return "Create"
	case todo.ChannelUpdate:
		return "Update"
	case todo.ChannelDelete:
		return "Delete"
	default:
		return string(ch)
	}
}
