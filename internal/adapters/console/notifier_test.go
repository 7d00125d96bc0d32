package console_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/console"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

func newNotifier(t *testing.T, out, errOut *bytes.Buffer) *console.Notifier {
	t.Helper()
	r, err := console.NewRenderer(console.FormatJSON)
	require.NoError(t, err)
	if errOut == nil {
		return console.NewNotifier(out, nil, r)
	}
	return console.NewNotifier(out, errOut, r)
}

func TestNotifier_SplitsErrors(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	n := newNotifier(t, &out, &errOut)

	n.Notify(t.Context(), ports.Notice{Level: ports.LevelSuccess, Title: "Mutation result"})
	n.Notify(t.Context(), ports.Notice{Level: ports.LevelError, Title: "Query failed", Err: errors.New("boom")})

	assert.Contains(t, out.String(), "Mutation result")
	assert.NotContains(t, out.String(), "Query failed")
	assert.Contains(t, errOut.String(), "Query failed")
	assert.Contains(t, errOut.String(), "boom")
}

func TestNotifier_NilErrOut(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n := newNotifier(t, &out, nil)

	n.Notify(t.Context(), ports.Notice{Level: ports.LevelError, Title: "Sign-in failed"})

	assert.Contains(t, out.String(), "Sign-in failed")
}

func TestNotifier_ConcurrentNotices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n := newNotifier(t, &out, nil)

	const count = 30
	var wg sync.WaitGroup
	for i := range count {
		wg.Go(func() {
			n.Notify(t.Context(), ports.Notice{Title: fmt.Sprintf("onCreate next %d", i)})
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, count)
}
