package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

const signedInPage = `<!doctype html>
<html><head><title>Signed in</title></head>
<body><p>Signed in. You can close this window and return to the terminal.</p></body></html>
`

// CallbackHandler receives the hosted sign-in redirect.
type CallbackHandler struct {
	actions ports.Actions
	onDone  func(error)
}

// NewCallbackHandler creates a CallbackHandler. onDone, when set, is called
// with the outcome of every redirect.
func NewCallbackHandler(actions ports.Actions, onDone func(error)) *CallbackHandler {
	if onDone == nil {
		onDone = func(error) {}
	}
	return &CallbackHandler{actions: actions, onDone: onDone}
}

// Complete handles GET on the redirect path: ?code=...&state=... on success,
// ?error=...&error_description=... when the provider refused.
func (h *CallbackHandler) Complete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if reason := q.Get("error"); reason != "" {
		err := fmt.Errorf("%w: provider returned %s: %s", domain.ErrAuth, reason, q.Get("error_description"))
		logging.FromContext(r.Context()).WarnContext(r.Context(), "sign-in refused by provider",
			slog.String("reason", reason),
		)
		h.onDone(err)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	err := h.actions.CompleteSignIn(r.Context(), q.Get("state"), q.Get("code"))
	h.onDone(err)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePage(w, http.StatusOK, signedInPage)
}
