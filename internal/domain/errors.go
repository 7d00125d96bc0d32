package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrNetwork reports an unreachable transport or a non-2xx response.
	ErrNetwork = errors.New("network error")
	// ErrAuth reports an invalid or expired credential.
	ErrAuth = errors.New("authorization error")
	// ErrGraphQL reports an operation the server rejected (validation,
	// resolver failure) while the transport itself succeeded.
	ErrGraphQL = errors.New("graphql error")
	// ErrNotSignedIn reports the absence of an active identity session.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrValidation reports a request that was rejected before any I/O.
	ErrValidation = errors.New("validation error")
	// ErrUnavailable reports a downstream the client has stopped calling
	// (circuit breaker open). Callers see it wrapped together with ErrNetwork.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the standard validation message for missing fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// GraphQLError reports a response whose errors array was non-empty. The
// transport succeeded; the server rejected the operation or a resolver failed.
// It matches ErrGraphQL, and also ErrAuth when any entry carries the
// UnauthorizedException error type.
type GraphQLError struct {
	Errors gqlerror.List
}

// ErrorTypeUnauthorized is the error type the server attaches to rejected
// credentials.
const ErrorTypeUnauthorized = "UnauthorizedException"

func (e *GraphQLError) Error() string {
	if len(e.Errors) == 0 {
		return ErrGraphQL.Error()
	}
	return fmt.Sprintf("%s: %s", ErrGraphQL.Error(), e.Errors.Error())
}

// Is lets errors.Is classify a GraphQLError against the sentinel taxonomy.
func (e *GraphQLError) Is(target error) bool {
	switch target {
	case ErrGraphQL:
		return true
	case ErrAuth:
		return e.Unauthorized()
	default:
		return false
	}
}

// Unauthorized reports whether any entry carries the unauthorized error type.
func (e *GraphQLError) Unauthorized() bool {
	for _, entry := range e.Errors {
		if entry == nil {
			continue
		}
		if t, ok := entry.Extensions["errorType"].(string); ok && t == ErrorTypeUnauthorized {
			return true
		}
	}
	return false
}
