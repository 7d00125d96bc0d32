// Package tui is the interactive front end: a row of buttons, a console
// pane that logs every notice, and a modal for alerts.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/console"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// maxConsoleLines bounds the console pane's history.
const maxConsoleLines = 2000

type button struct {
	label string
	run   func(context.Context, ports.Actions) (io.Closer, error)
}

func buttons() []button {
	wrap := func(f func(ports.Actions, context.Context) error) func(context.Context, ports.Actions) (io.Closer, error) {
		return func(ctx context.Context, a ports.Actions) (io.Closer, error) {
			return nil, f(a, ctx)
		}
	}
	return []button{
		{label: "Query todos", run: wrap(ports.Actions.QueryTodos)},
		{label: "Create todos", run: wrap(ports.Actions.CreateTodo)},
		{label: "Subscribe todos", run: func(ctx context.Context, a ports.Actions) (io.Closer, error) {
			return a.SubscribeTodos(ctx)
		}},
		{label: "Sign In", run: wrap(ports.Actions.SignIn)},
		{label: "Current User", run: wrap(ports.Actions.CurrentUser)},
	}
}

// actionDoneMsg reports that a button's action returned. Its outcome was
// already delivered as a notice.
type actionDoneMsg struct {
	index  int
	closer io.Closer
}

// Model is the bubbletea model of the application.
type Model struct {
	ctx      context.Context
	actions  ports.Actions
	notifier *Notifier
	renderer *console.Renderer

	buttons []button
	cursor  int
	busy    map[int]bool

	lines   []string
	console viewport.Model
	alerts  []ports.Notice

	subscription io.Closer

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New creates the model. ctx bounds every action the buttons start.
func New(ctx context.Context, actions ports.Actions, notifier *Notifier, renderer *console.Renderer) Model {
	return Model{
		ctx:      ctx,
		actions:  actions,
		notifier: notifier,
		renderer: renderer,
		buttons:  buttons(),
		busy:     make(map[int]bool),
		console:  viewport.New(80, 10),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init starts draining notices.
func (m Model) Init() tea.Cmd {
	return m.notifier.waitForNotice()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case noticeMsg:
		m.record(ports.Notice(msg))
		return m, m.notifier.waitForNotice()

	case actionDoneMsg:
		delete(m.busy, msg.index)
		if msg.closer != nil {
			if m.subscription != nil {
				_ = m.subscription.Close()
			}
			m.subscription = msg.closer
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.closeSubscription()
		return m, tea.Quit
	}

	if len(m.alerts) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alerts = m.alerts[1:]
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Buttons):
		idx := int(msg.String()[0] - '1')
		m.cursor = idx
		return m, m.press(idx)
	case key.Matches(msg, m.keys.Press):
		return m, m.press(m.cursor)
	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor + len(m.buttons) - 1) % len(m.buttons)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % len(m.buttons)
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}
	return m, nil
}

// press runs button idx in the background. A button whose previous press
// has not returned is ignored.
func (m *Model) press(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.buttons) || m.busy[idx] {
		return nil
	}
	m.busy[idx] = true

	b := m.buttons[idx]
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		closer, _ := b.run(ctx, actions)
		return actionDoneMsg{index: idx, closer: closer}
	}
}

func (m *Model) record(n ports.Notice) {
	m.lines = append(m.lines, strings.Split(m.renderer.Headline(n), "\n")...)
	if body := m.renderer.Body(n); body != "" {
		for _, line := range strings.Split(body, "\n") {
			m.lines = append(m.lines, "  "+line)
		}
	}
	if over := len(m.lines) - maxConsoleLines; over > 0 {
		m.lines = m.lines[over:]
	}
	m.console.SetContent(strings.Join(m.lines, "\n"))
	m.console.GotoBottom()

	if n.Display == ports.DisplayAlert {
		m.alerts = append(m.alerts, n)
	}
}

func (m *Model) resize() {
	m.help.Width = m.width
	w := max(m.width-4, 10)
	h := max(m.height-consoleChrome, 3)
	m.console.Width = w
	m.console.Height = h
}

func (m *Model) closeSubscription() {
	if m.subscription != nil {
		_ = m.subscription.Close()
		m.subscription = nil
	}
}

// Run starts the program on the terminal and blocks until the user quits
// or ctx is cancelled. Any open subscription is released on return.
func Run(ctx context.Context, actions ports.Actions, notifier *Notifier, renderer *console.Renderer) error {
	p := tea.NewProgram(New(ctx, actions, notifier, renderer), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closeSubscription()
	}
	return err
}
