package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/identity"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
	"github.com/jsamuelsen11/appsync-todo-client/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recordingNotifier collects notices from any goroutine.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []ports.Notice
	ch      chan ports.Notice
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{ch: make(chan ports.Notice, 64)}
}

func (r *recordingNotifier) Notify(_ context.Context, n ports.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
	r.ch <- n
}

func (r *recordingNotifier) all() []ports.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.Notice(nil), r.notices...)
}

func (r *recordingNotifier) next(t *testing.T) ports.Notice {
	t.Helper()
	select {
	case n := <-r.ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notice")
		return ports.Notice{}
	}
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "4f6b1c9e",
		Name:        "name-1760000000000",
		Description: todo.DefaultDescription,
		CreatedAt:   time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newService(t *testing.T, opts ...Option) (*ActionService, *mocks.MockTodoClient, *mocks.MockIdentityClient, *recordingNotifier) {
	t.Helper()
	todos := mocks.NewMockTodoClient(t)
	ident := mocks.NewMockIdentityClient(t)
	notifier := newRecordingNotifier()
	return NewActionService(todos, ident, notifier, discardLogger(), opts...), todos, ident, notifier
}

// --- NewActionService ---

func TestNewActionService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewActionService(mocks.NewMockTodoClient(t), mocks.NewMockIdentityClient(t), newRecordingNotifier(), nil)
	require.NotNil(t, svc.logger)
}

// --- QueryTodos ---

func TestQueryTodos_Success(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)
	todos.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{validTodo()}, nil)

	require.NoError(t, svc.QueryTodos(context.Background()))

	n := notifier.next(t)
	require.Equal(t, ActionQueryTodos, n.Action)
	require.Equal(t, ports.LevelSuccess, n.Level)
	require.Equal(t, ports.DisplayConsole, n.Display)
	require.False(t, n.At.IsZero())

	views, ok := n.Payload.([]TodoView)
	require.True(t, ok, "payload %T", n.Payload)
	require.Len(t, views, 1)
	require.Equal(t, "name-1760000000000", views[0].Name)
}

func TestQueryTodos_NetworkErrorIsNotified(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)
	wire := fmt.Errorf("listing todos: status 500: %w", domain.ErrNetwork)
	todos.EXPECT().ListTodos(mock.Anything).Return(nil, wire)

	err := svc.QueryTodos(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)

	n := notifier.next(t)
	require.Equal(t, ports.LevelError, n.Level)
	require.ErrorIs(t, n.Err, domain.ErrNetwork)
	require.Len(t, notifier.all(), 1)
}

// --- CreateTodo ---

func TestCreateTodo_NamesAreUniqueAndIncreasing(t *testing.T) {
	t.Parallel()

	// A stalled wall clock must still produce distinct names.
	stalled := time.UnixMilli(1_760_000_000_000)
	svc, todos, _, notifier := newService(t, WithClock(func() time.Time { return stalled }))

	var inputs []todo.CreateInput
	todos.EXPECT().CreateTodo(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in todo.CreateInput) (*todo.Todo, error) {
			inputs = append(inputs, in)
			created := validTodo()
			created.Name = in.Name
			return &created, nil
		}).Times(3)

	for range 3 {
		require.NoError(t, svc.CreateTodo(context.Background()))
		require.Equal(t, ports.LevelSuccess, notifier.next(t).Level)
	}

	require.Len(t, inputs, 3)
	var last int64
	for _, in := range inputs {
		require.Equal(t, todo.DefaultDescription, in.Description)
		require.True(t, strings.HasPrefix(in.Name, "name-"), in.Name)
		ms, err := strconv.ParseInt(strings.TrimPrefix(in.Name, "name-"), 10, 64)
		require.NoError(t, err)
		require.Greater(t, ms, last)
		last = ms
	}
	require.Equal(t, "name-1760000000000", inputs[0].Name)
}

func TestCreateTodo_FailureIsNotifiedOnce(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)
	todos.EXPECT().CreateTodo(mock.Anything, mock.Anything).
		Return(nil, &domain.GraphQLError{}).Once()

	err := svc.CreateTodo(context.Background())
	require.ErrorIs(t, err, domain.ErrGraphQL)

	n := notifier.next(t)
	require.Equal(t, ActionCreateTodo, n.Action)
	require.Equal(t, ports.LevelError, n.Level)
}

// --- SubscribeTodos ---

func streamOf(t *testing.T, events chan todo.ChangeEvent) *mocks.MockTodoStream {
	t.Helper()
	s := mocks.NewMockTodoStream(t)
	s.EXPECT().Events().Return(events).Maybe()
	s.EXPECT().Close().Maybe()
	return s
}

func TestSubscribeTodos_ForwardsEveryPhase(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)

	streams := map[todo.Channel]chan todo.ChangeEvent{}
	for _, ch := range todo.Channels() {
		events := make(chan todo.ChangeEvent, 4)
		streams[ch] = events
		todos.EXPECT().SubscribeTodos(mock.Anything, ch).Return(streamOf(t, events), nil)
	}

	closer, err := svc.SubscribeTodos(context.Background())
	require.NoError(t, err)
	set, ok := closer.(*SubscriptionSet)
	require.True(t, ok)
	require.Equal(t, 3, set.Len())

	created := validTodo()
	create := streams[todo.ChannelCreate]
	create <- todo.ChangeEvent{Channel: todo.ChannelCreate, Phase: domain.PhaseStart}
	create <- todo.ChangeEvent{Channel: todo.ChannelCreate, Phase: domain.PhaseNext, Todo: &created}
	create <- todo.ChangeEvent{Channel: todo.ChannelCreate, Phase: domain.PhaseComplete}
	close(create)

	start := notifier.next(t)
	require.Equal(t, "onCreate start", start.Title)
	require.Equal(t, ports.DisplayAlert, start.Display)
	require.Equal(t, ports.LevelInfo, start.Level)

	next := notifier.next(t)
	require.Equal(t, ports.LevelSuccess, next.Level)
	view, ok := next.Payload.(ChangeView)
	require.True(t, ok)
	require.Equal(t, "next", view.Phase)
	require.Equal(t, created.ID, view.Todo.ID)

	require.Equal(t, "onCreate complete", notifier.next(t).Title)

	update := streams[todo.ChannelUpdate]
	update <- todo.ChangeEvent{Channel: todo.ChannelUpdate, Phase: domain.PhaseError, Err: domain.ErrAuth}
	close(update)

	failed := notifier.next(t)
	require.Equal(t, ports.DisplayConsole, failed.Display)
	require.Equal(t, ports.LevelError, failed.Level)
	require.ErrorIs(t, failed.Err, domain.ErrAuth)

	close(streams[todo.ChannelDelete])
	require.NoError(t, closer.Close())
	set.Wait()
	require.Len(t, notifier.all(), 4)
}

func TestSubscribeTodos_PartialFailure(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)

	for _, ch := range []todo.Channel{todo.ChannelCreate, todo.ChannelDelete} {
		events := make(chan todo.ChangeEvent)
		close(events)
		todos.EXPECT().SubscribeTodos(mock.Anything, ch).Return(streamOf(t, events), nil)
	}
	todos.EXPECT().SubscribeTodos(mock.Anything, todo.ChannelUpdate).
		Return(nil, fmt.Errorf("dial: %w", domain.ErrNetwork))

	closer, err := svc.SubscribeTodos(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, closer.(*SubscriptionSet).Len())

	n := notifier.next(t)
	require.Equal(t, "Subscribe update failed", n.Title)
	require.ErrorIs(t, n.Err, domain.ErrNetwork)
	require.NoError(t, closer.Close())
}

func TestSubscribeTodos_AllChannelsFail(t *testing.T) {
	t.Parallel()

	svc, todos, _, notifier := newService(t)
	todos.EXPECT().SubscribeTodos(mock.Anything, mock.Anything).
		Return(nil, domain.ErrAuth).Times(3)

	closer, err := svc.SubscribeTodos(context.Background())
	require.ErrorIs(t, err, domain.ErrAuth)
	require.Contains(t, err.Error(), "create: ")
	require.NotNil(t, closer)
	require.NoError(t, closer.Close())

	require.Len(t, notifier.all(), 3)
}

func TestSubscriptionSet_CloseReleasesEveryStream(t *testing.T) {
	t.Parallel()

	set := &SubscriptionSet{}
	for range 3 {
		events := make(chan todo.ChangeEvent)
		s := mocks.NewMockTodoStream(t)
		s.EXPECT().Close().Run(func() { close(events) }).Once()
		set.add(s, func() {
			for range events {
			}
		})
	}

	require.NoError(t, set.Close())
	require.NoError(t, set.Close())
	set.Wait()
}

// --- SignIn / CompleteSignIn / SignOut ---

func TestSignIn_NotifiesURL(t *testing.T) {
	t.Parallel()

	svc, _, ident, notifier := newService(t)
	ident.EXPECT().FederatedSignIn(mock.Anything).Return("https://auth.example/oauth2/authorize?state=s", nil)

	require.NoError(t, svc.SignIn(context.Background()))

	n := notifier.next(t)
	require.Equal(t, ports.DisplayAlert, n.Display)
	require.Equal(t, URLView{URL: "https://auth.example/oauth2/authorize?state=s"}, n.Payload)
}

func TestCompleteSignIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      *identity.User
		err       error
		wantLevel ports.Level
	}{
		{name: "success", user: &identity.User{Username: "alice"}, wantLevel: ports.LevelSuccess},
		{name: "rejected code", err: domain.ErrAuth, wantLevel: ports.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, ident, notifier := newService(t)
			ident.EXPECT().CompleteSignIn(mock.Anything, "state-1", "code-1").Return(tt.user, tt.err)

			err := svc.CompleteSignIn(context.Background(), "state-1", "code-1")
			require.ErrorIs(t, err, tt.err)

			n := notifier.next(t)
			require.Equal(t, ActionCompleteSignIn, n.Action)
			require.Equal(t, tt.wantLevel, n.Level)
		})
	}
}

func TestSignOut_NotifiesLogoutURL(t *testing.T) {
	t.Parallel()

	svc, _, ident, notifier := newService(t)
	ident.EXPECT().SignOut(mock.Anything).Return("https://auth.example/logout", nil)

	require.NoError(t, svc.SignOut(context.Background()))
	require.Equal(t, URLView{URL: "https://auth.example/logout"}, notifier.next(t).Payload)
}

// --- CurrentUser ---

func TestCurrentUser_WithoutSessionNotifiesNoCurrentUser(t *testing.T) {
	t.Parallel()

	svc, _, ident, notifier := newService(t)
	ident.EXPECT().CurrentUser(mock.Anything).Return(nil, domain.ErrNotSignedIn)

	require.NoError(t, svc.CurrentUser(context.Background()))

	n := notifier.next(t)
	require.Equal(t, "No current user", n.Title)
	require.Equal(t, ports.DisplayAlert, n.Display)
	require.Equal(t, ports.LevelInfo, n.Level)
	require.ErrorIs(t, n.Err, domain.ErrNotSignedIn)
}

func TestCurrentUser_SignedIn(t *testing.T) {
	t.Parallel()

	svc, _, ident, notifier := newService(t)
	ident.EXPECT().CurrentUser(mock.Anything).Return(&identity.User{
		Username: "alice",
		Subject:  "0f1e2d3c",
		Email:    "alice@example.com",
	}, nil)

	require.NoError(t, svc.CurrentUser(context.Background()))

	n := notifier.next(t)
	require.Equal(t, "alice", n.Title)
	view, ok := n.Payload.(UserView)
	require.True(t, ok)
	require.Equal(t, "0f1e2d3c", view.Subject)
}

func TestCurrentUser_ProviderOutageIsError(t *testing.T) {
	t.Parallel()

	svc, _, ident, notifier := newService(t)
	ident.EXPECT().CurrentUser(mock.Anything).Return(nil, domain.ErrNetwork)

	err := svc.CurrentUser(context.Background())
	require.True(t, errors.Is(err, domain.ErrNetwork))
	require.Equal(t, ports.LevelError, notifier.next(t).Level)
}

func TestActions_UseMockNotifier(t *testing.T) {
	t.Parallel()

	todos := mocks.NewMockTodoClient(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewActionService(todos, mocks.NewMockIdentityClient(t), notifier, discardLogger())

	todos.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n ports.Notice) bool {
		return n.Action == ActionQueryTodos && n.Title == "0 todos"
	})).Once()

	require.NoError(t, svc.QueryTodos(context.Background()))
}
