package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit/pkg/session"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestStoreSaveOpenClear(t *testing.T) {
	path := tokenPath(t)
	token := signedToken(t, jwt.MapClaims{"id": 7, "email": "ops@example.com", "username": "ops"})

	store := session.NewStore(path)
	require.NoError(t, store.Save(token))

	// A fresh store picks the token up from disk.
	reopened := session.NewStore(path)
	require.NoError(t, reopened.Open())
	require.Equal(t, token, reopened.Token())
	require.True(t, reopened.LoggedIn())

	require.NoError(t, reopened.Clear())
	require.Empty(t, reopened.Token())
	require.False(t, reopened.LoggedIn())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	require.NoError(t, reopened.Clear())
}

func TestStoreOpenMissingFile(t *testing.T) {
	store := session.NewStore(tokenPath(t))
	require.NoError(t, store.Open())
	require.False(t, store.LoggedIn())
}

func TestIdentityDecodesClaims(t *testing.T) {
	store := session.NewStore(tokenPath(t))
	require.NoError(t, store.Save(signedToken(t, jwt.MapClaims{
		"id":       42,
		"email":    "admin@example.com",
		"username": "admin",
	})))

	id, err := store.Identity()
	require.NoError(t, err)
	require.Equal(t, int64(42), id.ID)
	require.Equal(t, "admin@example.com", id.Email)
	require.Equal(t, "admin", id.Username)
}

func TestIdentityNotLoggedIn(t *testing.T) {
	store := session.NewStore(tokenPath(t))
	_, err := store.Identity()
	require.ErrorIs(t, err, session.ErrNotLoggedIn)
}

func TestMalformedTokenSelfClears(t *testing.T) {
	path := tokenPath(t)
	store := session.NewStore(path)
	require.NoError(t, store.Save("not-a-jwt"))

	_, err := store.Identity()
	require.ErrorIs(t, err, session.ErrMalformedToken)

	// The bad token is gone, in memory and on disk.
	require.Empty(t, store.Token())
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}
