package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

const noticeBuffer = 64

// Notifier hands notices to the running program. Notify blocks while the
// buffer is full, so a stalled UI applies backpressure instead of losing
// subscription events.
type Notifier struct {
	ch chan ports.Notice
}

// NewNotifier creates a Notifier with a bounded buffer.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan ports.Notice, noticeBuffer)}
}

// Notify implements ports.Notifier. It gives up when ctx is done.
func (n *Notifier) Notify(ctx context.Context, notice ports.Notice) {
	select {
	case n.ch <- notice:
	case <-ctx.Done():
	}
}

type noticeMsg ports.Notice

// waitForNotice is re-issued after every delivered notice.
func (n *Notifier) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-n.ch)
	}
}
