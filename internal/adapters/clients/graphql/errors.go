package graphql

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/httpclient"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// wireError is one entry of a GraphQL errors array as the managed API sends
// it: the error type sits next to the message rather than under extensions.
type wireError struct {
	Message    string              `json:"message"`
	Path       ast.Path            `json:"path,omitempty"`
	Locations  []gqlerror.Location `json:"locations,omitempty"`
	ErrorType  string              `json:"errorType,omitempty"`
	ErrorInfo  any                 `json:"errorInfo,omitempty"`
	Extensions map[string]any      `json:"extensions,omitempty"`
}

// toErrorList converts wire errors to a gqlerror.List, folding errorType and
// errorInfo into each entry's extensions.
func toErrorList(wire []wireError) gqlerror.List {
	list := make(gqlerror.List, 0, len(wire))
	for _, w := range wire {
		ext := make(map[string]any, len(w.Extensions)+2)
		for k, v := range w.Extensions {
			ext[k] = v
		}
		if w.ErrorType != "" {
			ext["errorType"] = w.ErrorType
		}
		if w.ErrorInfo != nil {
			ext["errorInfo"] = w.ErrorInfo
		}
		if len(ext) == 0 {
			ext = nil
		}
		list = append(list, &gqlerror.Error{
			Message:    w.Message,
			Path:       w.Path,
			Locations:  w.Locations,
			Extensions: ext,
		})
	}
	return list
}

// translateStatus maps a non-2xx response to a domain error. Rejected
// credentials become ErrAuth; every other status is ErrNetwork.
func translateStatus(resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)

	var body struct {
		Errors []wireError `json:"errors"`
	}
	if resp.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if err == nil && json.Unmarshal(raw, &body) == nil && len(body.Errors) > 0 {
			detail = toErrorList(body.Errors).Error()
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("HTTP %d: %s: %w", resp.StatusCode, detail, domain.ErrAuth)
	default:
		return fmt.Errorf("HTTP %d: %s: %w", resp.StatusCode, detail, domain.ErrNetwork)
	}
}

// translateTransportError maps a failure to obtain any response at all.
// An open circuit breaker satisfies both ErrUnavailable and ErrNetwork.
func translateTransportError(err error) error {
	if httpclient.IsCircuitOpen(err) {
		return fmt.Errorf("%w: %w: %w", domain.ErrUnavailable, domain.ErrNetwork, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
}
