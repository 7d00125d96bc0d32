package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
)

// Doer sends an HTTP request. Satisfied by *httpclient.Client.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// HTTPTransport sends operations as GraphQL-over-HTTP POST requests.
type HTTPTransport struct {
	client   Doer
	endpoint string
	logger   *slog.Logger
}

// NewHTTPTransport returns a transport that posts to endpoint. The endpoint
// is not checked here; a malformed value fails the first operation.
func NewHTTPTransport(client Doer, endpoint string, logger *slog.Logger) *HTTPTransport {
	return &HTTPTransport{client: client, endpoint: endpoint, logger: logger}
}

type httpRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
	Extensions    map[string]any `json:"extensions,omitempty"`
}

type httpResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []wireError     `json:"errors"`
}

// Do posts op and decodes the result. Mutations are sent exactly once; the
// retry stage of the HTTP client is bypassed for them.
//
// A response carrying GraphQL errors returns both the Response (partial data
// may be present) and a *domain.GraphQLError.
func (t *HTTPTransport) Do(ctx context.Context, op *Operation) (*Response, error) {
	body, err := json.Marshal(httpRequest{
		Query:         op.Document,
		Variables:     op.Variables,
		OperationName: op.Name,
		Extensions:    op.Extensions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", op.Name, err)
	}

	requestID := uuid.NewString()
	ctx = httpclient.WithRequestID(ctx, requestID)
	if op.Kind == KindMutation {
		ctx = httpclient.WithoutRetry(ctx)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w: %w", t.endpoint, domain.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range op.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(ctx, req)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if resp == nil {
		return nil, translateTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := translateStatus(resp)
		logging.FromContext(ctx).ErrorContext(ctx, "graphql request failed",
			slog.String("operation", op.Name),
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", statusErr),
		)
		return nil, statusErr
	}

	var decoded httpResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w: %w", op.Name, domain.ErrNetwork, err)
	}

	result := &Response{Data: decoded.Data}
	if len(decoded.Errors) > 0 {
		return result, &domain.GraphQLError{Errors: toErrorList(decoded.Errors)}
	}
	return result, nil
}

// Subscribe runs a non-subscription operation once and presents its result
// as a stream: start, then next and complete on success, or error.
func (t *HTTPTransport) Subscribe(ctx context.Context, op *Operation) (*Subscription, error) {
	if op.Kind == KindSubscription {
		return nil, fmt.Errorf("operation %q needs a realtime transport: %w", op.Name, domain.ErrValidation)
	}

	runCtx, cancel := context.WithCancel(ctx)
	sub := newSubscription(uuid.NewString(), cancel)
	sub.bindContext(ctx)

	go func() {
		defer cancel()

		sub.emit(Event{Phase: domain.PhaseStart})
		resp, err := t.Do(runCtx, op)
		if err != nil {
			sub.emit(Event{Phase: domain.PhaseError, Err: err})
			return
		}
		if sub.emit(Event{Phase: domain.PhaseNext, Data: resp.Data}) {
			sub.emit(Event{Phase: domain.PhaseComplete})
		}
	}()

	return sub, nil
}
