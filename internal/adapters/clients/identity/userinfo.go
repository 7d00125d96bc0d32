package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/identity"
)

// maxUserInfoBytes caps the userInfo body read into memory.
const maxUserInfoBytes = 1 << 20

// userInfo fetches the claims of the user tok belongs to.
func (c *Client) userInfo(ctx context.Context, tok *oauth2.Token) (*identity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.JoinPath(userInfoPath).String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building userInfo request: %w: %w", domain.ErrNetwork, err)
	}
	tok.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("fetching user: %w", domain.ErrNotSignedIn)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.WarnContext(ctx, "userInfo request failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetching user: status %d: %w", resp.StatusCode, domain.ErrNetwork)
	}

	var claims map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoBytes)).Decode(&claims); err != nil {
		return nil, fmt.Errorf("decoding user: %w: %w", domain.ErrNetwork, err)
	}
	return toUser(claims), nil
}

// toUser promotes the well-known claims. The provider reports booleans as
// either JSON booleans or strings.
func toUser(claims map[string]any) *identity.User {
	u := &identity.User{
		Username:    stringClaim(claims, "username"),
		Subject:     stringClaim(claims, "sub"),
		Email:       stringClaim(claims, "email"),
		PhoneNumber: stringClaim(claims, "phone_number"),
		Attributes:  claims,
	}
	if u.Username == "" {
		u.Username = stringClaim(claims, "cognito:username")
	}
	if u.Username == "" {
		u.Username = u.Subject
	}

	switch v := claims["email_verified"].(type) {
	case bool:
		u.EmailVerified = v
	case string:
		u.EmailVerified, _ = strconv.ParseBool(v)
	}
	return u
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
