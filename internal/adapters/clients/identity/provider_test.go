package identity_test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

// fakeProvider is a minimal hosted sign-in domain: token endpoint with
// PKCE verification and refresh, and a bearer-protected userInfo.
type fakeProvider struct {
	*httptest.Server

	mu          sync.Mutex
	codes       map[string]string // code -> code_challenge
	access      map[string]string // access token -> refresh token
	refreshes   int
	tokenStatus int
	claims      map[string]any
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	p := &fakeProvider{
		codes:  make(map[string]string),
		access: make(map[string]string),
		claims: map[string]any{
			"sub":            "0f1e2d3c",
			"username":       "alice",
			"email":          "alice@example.com",
			"email_verified": "true",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", p.token)
	mux.HandleFunc("GET /oauth2/userInfo", p.userInfo)
	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Close)
	return p
}

// issueCode registers an authorization code bound to challenge.
func (p *fakeProvider) issueCode(challenge string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	code := uuid.NewString()
	p.codes[code] = challenge
	return code
}

// grant registers an access token as if a sign-in had completed.
func (p *fakeProvider) grant(accessToken, refreshToken string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.access[accessToken] = refreshToken
}

func (p *fakeProvider) revokeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.access)
}

func (p *fakeProvider) failTokenWith(status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokenStatus = status
}

func (p *fakeProvider) refreshCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshes
}

func (p *fakeProvider) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokenStatus != 0 {
		writeOAuthError(w, p.tokenStatus, "server_error")
		return
	}

	switch r.PostForm.Get("grant_type") {
	case "authorization_code":
		challenge, ok := p.codes[r.PostForm.Get("code")]
		delete(p.codes, r.PostForm.Get("code"))
		sum := sha256.Sum256([]byte(r.PostForm.Get("code_verifier")))
		if !ok || base64.RawURLEncoding.EncodeToString(sum[:]) != challenge {
			writeOAuthError(w, http.StatusBadRequest, "invalid_grant")
			return
		}
		access, refresh := uuid.NewString(), uuid.NewString()
		p.access[access] = refresh
		writeJSON(w, map[string]any{
			"access_token":  access,
			"refresh_token": refresh,
			"id_token":      "id-" + access,
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	case "refresh_token":
		refresh := r.PostForm.Get("refresh_token")
		var found bool
		for _, rt := range p.access {
			if rt == refresh {
				found = true
				break
			}
		}
		if !found {
			writeOAuthError(w, http.StatusBadRequest, "invalid_grant")
			return
		}
		p.refreshes++
		access := uuid.NewString()
		p.access[access] = refresh
		// The provider does not rotate refresh tokens.
		writeJSON(w, map[string]any{
			"access_token": access,
			"id_token":     "id-" + access,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	default:
		writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type")
	}
}

func (p *fakeProvider) userInfo(w http.ResponseWriter, r *http.Request) {
	access := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	p.mu.Lock()
	_, ok := p.access[access]
	claims := p.claims
	p.mu.Unlock()

	if !ok {
		writeOAuthError(w, http.StatusUnauthorized, "invalid_token")
		return
	}
	writeJSON(w, claims)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeOAuthError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
