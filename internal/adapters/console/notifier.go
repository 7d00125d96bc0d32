package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Notifier writes every notice to out, errors to errOut. Writes are
// serialized so notices from concurrent subscription channels never
// interleave.
type Notifier struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	renderer *Renderer
}

// NewNotifier creates a Notifier. A nil errOut sends errors to out.
func NewNotifier(out, errOut io.Writer, renderer *Renderer) *Notifier {
	if errOut == nil {
		errOut = out
	}
	return &Notifier{out: out, errOut: errOut, renderer: renderer}
}

// Notify implements ports.Notifier.
func (n *Notifier) Notify(_ context.Context, notice ports.Notice) {
	text := n.renderer.Render(notice)

	n.mu.Lock()
	defer n.mu.Unlock()

	w := n.out
	if notice.Level == ports.LevelError {
		w = n.errOut
	}
	_, _ = fmt.Fprintln(w, text)
}
