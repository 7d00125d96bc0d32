// Package dto holds the response shapes of the callback server: RFC 9457
// Problem Details for failures and the health report.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected query parameter.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusBySentinel is checked in order; ErrUnavailable wraps ErrNetwork so
// it must come first.
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrAuth, http.StatusUnauthorized},
	{domain.ErrNotSignedIn, http.StatusUnauthorized},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{domain.ErrNetwork, http.StatusBadGateway},
	{domain.ErrGraphQL, http.StatusBadGateway},
}

// NewProblem builds a problem for status. Instance is the request path only;
// the query string carries the authorization code.
func NewProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}
}

// NewErrorResponse maps a domain error to a problem.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			status = s.status
			break
		}
	}

	resp := NewProblem(r, status, err.Error())
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = queryDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp with its own status code.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

func queryDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "query." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
