package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/console"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
	"github.com/jsamuelsen11/appsync-todo-client/mocks"
)

type countingCloser struct{ closed int }

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func newTestModel(t *testing.T) (Model, *mocks.MockActions) {
	t.Helper()
	actions := mocks.NewMockActions(t)
	renderer, err := console.NewRenderer(console.FormatJSON)
	require.NoError(t, err)
	m := New(t.Context(), actions, NewNotifier(), renderer)
	return m, actions
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_NumberKeysPressButtons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		expect func(a *mocks.MockActions)
	}{
		{key: "1", expect: func(a *mocks.MockActions) { a.EXPECT().QueryTodos(mock.Anything).Return(nil) }},
		{key: "2", expect: func(a *mocks.MockActions) { a.EXPECT().CreateTodo(mock.Anything).Return(nil) }},
		{key: "3", expect: func(a *mocks.MockActions) { a.EXPECT().SubscribeTodos(mock.Anything).Return(&countingCloser{}, nil) }},
		{key: "4", expect: func(a *mocks.MockActions) { a.EXPECT().SignIn(mock.Anything).Return(nil) }},
		{key: "5", expect: func(a *mocks.MockActions) { a.EXPECT().CurrentUser(mock.Anything).Return(errors.New("outage")) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			m, actions := newTestModel(t)
			tt.expect(actions)

			m, cmd := update(t, m, keyPress(tt.key))
			require.NotNil(t, cmd)
			assert.True(t, m.busy[m.cursor])
			assert.Contains(t, m.View(), "…")

			done, ok := cmd().(actionDoneMsg)
			require.True(t, ok)
			m, _ = update(t, m, done)
			assert.False(t, m.busy[m.cursor])
		})
	}
}

func TestModel_BusyButtonIgnored(t *testing.T) {
	t.Parallel()

	m, actions := newTestModel(t)
	actions.EXPECT().QueryTodos(mock.Anything).Return(nil).Once()

	m, first := update(t, m, keyPress("1"))
	require.NotNil(t, first)
	m, second := update(t, m, keyPress("1"))
	assert.Nil(t, second)

	first()
}

func TestModel_ArrowsAndEnter(t *testing.T) {
	t.Parallel()

	m, actions := newTestModel(t)
	actions.EXPECT().CurrentUser(mock.Anything).Return(nil)

	m, _ = update(t, m, keyPress("left"))
	assert.Equal(t, 4, m.cursor)
	m, _ = update(t, m, keyPress("right"))
	assert.Equal(t, 0, m.cursor)
	m, _ = update(t, m, keyPress("left"))

	_, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	cmd()
}

func TestModel_NoticesFillConsole(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	m, cmd := update(t, m, noticeMsg(ports.Notice{
		Action:  "query-todos",
		Level:   ports.LevelSuccess,
		Title:   "2 todos",
		Payload: map[string]string{"name": "name-1"},
	}))
	require.NotNil(t, cmd)
	assert.Empty(t, m.alerts)

	view := m.View()
	assert.Contains(t, view, "2 todos")
	assert.Contains(t, view, "name-1")
	for _, label := range []string{"Query todos", "Create todos", "Subscribe todos", "Sign In", "Current User"} {
		assert.Contains(t, view, label)
	}
}

func TestModel_AlertsQueueUntilDismissed(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(t, m, noticeMsg(ports.Notice{Display: ports.DisplayAlert, Title: "onCreate start"}))
	m, _ = update(t, m, noticeMsg(ports.Notice{Display: ports.DisplayAlert, Title: "No current user"}))
	require.Len(t, m.alerts, 2)

	view := m.View()
	assert.Contains(t, view, "onCreate start")
	assert.Contains(t, view, "1 more")

	// Buttons are inert while an alert is shown.
	m, cmd := update(t, m, keyPress("1"))
	assert.Nil(t, cmd)

	m, _ = update(t, m, keyPress("enter"))
	assert.Contains(t, m.View(), "No current user")
	m, _ = update(t, m, keyPress("esc"))
	assert.Empty(t, m.alerts)
	assert.Contains(t, m.View(), "Query todos")
}

func TestModel_ResubscribeReplacesSubscription(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	first, second := &countingCloser{}, &countingCloser{}

	m, _ = update(t, m, actionDoneMsg{index: 2, closer: first})
	m, _ = update(t, m, actionDoneMsg{index: 2, closer: second})
	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 0, second.closed)

	_, cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, second.closed)
}

func TestNotifier_DeliversInOrder(t *testing.T) {
	t.Parallel()

	n := NewNotifier()
	n.Notify(t.Context(), ports.Notice{Title: "a"})
	n.Notify(t.Context(), ports.Notice{Title: "b"})

	cmd := n.waitForNotice()
	assert.Equal(t, "a", ports.Notice(cmd().(noticeMsg)).Title)
	assert.Equal(t, "b", ports.Notice(cmd().(noticeMsg)).Title)
}

func TestNotifier_FullBufferRespectsContext(t *testing.T) {
	t.Parallel()

	n := NewNotifier()
	for range noticeBuffer {
		n.Notify(t.Context(), ports.Notice{})
	}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		n.Notify(ctx, ports.Notice{Title: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify did not return after context expiry")
	}
}
