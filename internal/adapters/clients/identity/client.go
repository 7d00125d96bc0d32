// Package identity implements the outbound adapter for the hosted sign-in
// service: the OAuth2 authorization code flow with PKCE, a file-backed
// session store, and the current-user lookup.
//
// Sign-in is split in two. FederatedSignIn returns the hosted-UI URL the
// user opens; CompleteSignIn runs when the redirect comes back with a code.
// Only the process that produced the URL can complete it, because the PKCE
// verifier never leaves memory.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/identity"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Compile-time interface check.
var _ ports.IdentityClient = (*Client)(nil)

// ErrAlreadyConfigured is returned by a second call to Configure.
var ErrAlreadyConfigured = errors.New("identity client already configured")

// Hosted-UI paths relative to the configured domain.
const (
	authorizePath = "/oauth2/authorize"
	tokenPath     = "/oauth2/token"
	userInfoPath  = "/oauth2/userInfo"
	logoutPath    = "/logout"
)

// pendingTTL bounds how long an unanswered sign-in URL stays redeemable.
const pendingTTL = 10 * time.Minute

// Client implements [ports.IdentityClient] against a hosted sign-in domain.
type Client struct {
	httpClient *http.Client
	store      *SessionStore
	logger     *slog.Logger
	now        func() time.Time

	mu         sync.Mutex
	configured bool
	oauth      *oauth2.Config
	base       *url.URL
	signOutURI string
	pending    map[string]pendingSignIn
}

type pendingSignIn struct {
	verifier string
	issued   time.Time
}

// New creates a Client and configures it from cfg. Requests go through
// httpClient; the session is persisted in store.
func New(cfg *config.IdentityConfig, httpClient *http.Client, store *SessionStore, logger *slog.Logger) (*Client, error) {
	c := &Client{
		httpClient: httpClient,
		store:      store,
		logger:     logger,
		now:        time.Now,
		pending:    make(map[string]pendingSignIn),
	}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies the provider parameters. It may run once per Client.
func (c *Client) Configure(cfg *config.IdentityConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.configured {
		return ErrAlreadyConfigured
	}

	fields := map[string]string{}
	if cfg.ClientID == "" {
		fields["client_id"] = domain.MsgRequired
	}
	if cfg.RedirectSignIn == "" {
		fields["redirect_sign_in"] = domain.MsgRequired
	}
	base, err := hostedBase(cfg.Domain)
	if err != nil {
		fields["domain"] = err.Error()
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	c.base = base
	c.signOutURI = cfg.RedirectSignOut
	c.oauth = &oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: cfg.RedirectSignIn,
		Scopes:      cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base.JoinPath(authorizePath).String(),
			TokenURL:  base.JoinPath(tokenPath).String(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	c.configured = true
	return nil
}

// FederatedSignIn returns the hosted-UI URL that starts a sign-in. The
// state and PKCE verifier are kept until CompleteSignIn redeems them.
func (c *Client) FederatedSignIn(_ context.Context) (string, error) {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prunePending()
	c.pending[state] = pendingSignIn{verifier: verifier, issued: c.now()}

	return c.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)), nil
}

// CompleteSignIn exchanges the authorization code returned with state,
// stores the session and returns the signed-in user.
func (c *Client) CompleteSignIn(ctx context.Context, state, code string) (*identity.User, error) {
	if code == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"code": domain.MsgRequired}}
	}

	c.mu.Lock()
	c.prunePending()
	p, ok := c.pending[state]
	delete(c.pending, state)
	c.mu.Unlock()

	if !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{"state": "does not match a pending sign-in"}}
	}

	// An authorization code is single-use.
	ctx = httpclient.WithoutRetry(c.oauthContext(ctx))
	tok, err := c.oauth.Exchange(ctx, code, oauth2.VerifierOption(p.verifier))
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", tokenError(err))
	}

	sess := &Session{Token: tok, IDToken: idToken(tok), ObtainedAt: c.now().UTC()}
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "sign-in completed", slog.String("session_file", c.store.Path()))

	return c.userInfo(ctx, tok)
}

// CurrentUser returns the user of the stored session, refreshing an expired
// access token first. Without a usable session it returns
// domain.ErrNotSignedIn.
func (c *Client) CurrentUser(ctx context.Context) (*identity.User, error) {
	sess, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	tok, err := c.oauth.TokenSource(c.oauthContext(ctx), sess.Token).Token()
	if err != nil {
		c.logger.WarnContext(ctx, "session refresh failed", slog.Any("error", err))
		return nil, fmt.Errorf("refreshing session: %w: %w", domain.ErrNotSignedIn, err)
	}

	if tok.AccessToken != sess.Token.AccessToken {
		refreshed := &Session{Token: tok, IDToken: sess.IDToken, ObtainedAt: c.now().UTC()}
		if id := idToken(tok); id != "" {
			refreshed.IDToken = id
		}
		if err := c.store.Save(refreshed); err != nil {
			return nil, err
		}
		c.logger.DebugContext(ctx, "session refreshed")
	}

	return c.userInfo(ctx, tok)
}

// SignOut forgets the stored session and returns the hosted logout URL.
func (c *Client) SignOut(ctx context.Context) (string, error) {
	if err := c.store.Delete(); err != nil {
		return "", err
	}

	c.mu.Lock()
	clear(c.pending)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "signed out")

	q := url.Values{"client_id": {c.oauth.ClientID}}
	if c.signOutURI != "" {
		q.Set("logout_uri", c.signOutURI)
	}
	u := c.base.JoinPath(logoutPath)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// oauthContext makes x/oauth2 send its requests through the instrumented
// client.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// prunePending drops expired sign-in attempts. Callers hold c.mu.
func (c *Client) prunePending() {
	cutoff := c.now().Add(-pendingTTL)
	for state, p := range c.pending {
		if p.issued.Before(cutoff) {
			delete(c.pending, state)
		}
	}
}

// hostedBase turns the configured domain into a base URL. A bare host
// means https.
func hostedBase(domainName string) (*url.URL, error) {
	if domainName == "" {
		return nil, errors.New(domain.MsgRequired)
	}
	if !strings.Contains(domainName, "://") {
		domainName = "https://" + domainName
	}
	u, err := url.Parse(domainName)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid domain %q", domainName)
	}
	return u, nil
}

// tokenError maps a token endpoint failure onto the domain taxonomy.
func tokenError(err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		if rerr.Response != nil && rerr.Response.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
}

func idToken(tok *oauth2.Token) string {
	s, _ := tok.Extra("id_token").(string)
	return s
}
