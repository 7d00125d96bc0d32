package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"code": domain.MsgRequired}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rejected code maps to 401",
			err:        fmt.Errorf("exchanging authorization code: %w", domain.ErrAuth),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not signed in maps to 401",
			err:        domain.ErrNotSignedIn,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "open circuit maps to 503",
			err:        fmt.Errorf("%w: %w", domain.ErrUnavailable, domain.ErrNetwork),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "network maps to 502",
			err:        domain.ErrNetwork,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/callback?code=secret&state=s", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Instance != "/callback" {
				t.Errorf("Instance = %q, want %q", got.Instance, "/callback")
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetailsSorted(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/callback", nil)
	got := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{
		"state": "does not match a pending sign-in",
		"code":  domain.MsgRequired,
	}})

	if len(got.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(got.Errors))
	}
	if got.Errors[0].Location != "query.code" || got.Errors[1].Location != "query.state" {
		t.Errorf("Errors = %+v, want query.code then query.state", got.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/callback?code=secret", nil)
	dto.WriteErrorResponse(rec, r, domain.ErrAuth)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Error("problem body leaks the authorization code")
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != http.StatusUnauthorized {
		t.Errorf("body.Status = %d", body.Status)
	}
}

func TestWriteProblem_TimeoutShape(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/callback?code=secret", nil)
	dto.WriteProblem(rec, r, dto.NewProblem(r, http.StatusGatewayTimeout, "sign-in did not complete in time"))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Title != "Gateway Timeout" || body.Instance != "/callback" || len(body.Errors) != 0 {
		t.Errorf("body = %+v", body)
	}
}
