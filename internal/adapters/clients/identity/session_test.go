package identity_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/identity"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store, err := identity.NewSessionStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrNotSignedIn)

	obtained := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Save(&identity.Session{
		Token:      &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"},
		IDToken:    "id",
		ObtainedAt: obtained,
	}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "a", got.Token.AccessToken)
	require.Equal(t, "r", got.Token.RefreshToken)
	require.Equal(t, "id", got.IDToken)
	require.True(t, obtained.Equal(got.ObtainedAt))

	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete())
	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestSessionStore_EmptyTokenIsNotSignedIn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":{}}`), 0o600))

	store, err := identity.NewSessionStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestSessionStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store, err := identity.NewSessionStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrNotSignedIn)
	assert.Contains(t, err.Error(), path)
}
