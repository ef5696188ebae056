package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookmystars_client/internal/config"
	"bookmystars_client/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttlMinutes int) *Store {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.FilePath = filepath.Join(t.TempDir(), "session.json")
	cfg.Session.TTLMinutes = ttlMinutes
	return NewStore(cfg)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"professionalsId": 7,
		"exp":             exp.Unix(),
	})
	signed, err := token.SignedString([]byte("unit-test"))
	require.NoError(t, err)
	return signed
}

func TestGetUserSessionDegradesToNil(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := newTestStore(t, 0)
		assert.Nil(t, store.GetUserSession())
	})

	t.Run("malformed json", func(t *testing.T) {
		store := newTestStore(t, 0)
		require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
		require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))
		assert.Nil(t, store.GetUserSession())
	})

	t.Run("zero value accessors", func(t *testing.T) {
		store := newTestStore(t, 0)
		assert.Empty(t, store.GetAuthToken())
		assert.Zero(t, store.GetProfessionalsID())
		assert.Zero(t, store.GetProfessionalsProfileID())
	})
}

func TestSetAndGetUserSession(t *testing.T) {
	store := newTestStore(t, 0)

	user := models.User{ProfessionalsID: 42, FullName: "Jane Sharma", Email: "jane@x.com"}
	require.NoError(t, store.SetUserSession(user, "tok-123"))

	sess := store.GetUserSession()
	require.NotNil(t, sess)
	assert.Equal(t, 42, sess.User.ProfessionalsID)
	assert.Equal(t, "tok-123", sess.Token)
	assert.InDelta(t, time.Now().UnixMilli(), sess.Timestamp, float64(5*time.Second/time.Millisecond))

	assert.Equal(t, "tok-123", store.GetAuthToken())
	assert.Equal(t, 42, store.GetProfessionalsID())
}

func TestIsLoggedIn(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		store := newTestStore(t, 0)
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("empty json object", func(t *testing.T) {
		store := newTestStore(t, 0)
		require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
		require.NoError(t, os.WriteFile(store.Path(), []byte("{}"), 0o600))
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("empty token", func(t *testing.T) {
		store := newTestStore(t, 0)
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, ""))
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("opaque token counts as live", func(t *testing.T) {
		store := newTestStore(t, 0)
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, "opaque-token"))
		assert.True(t, store.IsLoggedIn())
	})

	t.Run("jwt with future exp is live", func(t *testing.T) {
		store := newTestStore(t, 0)
		tok := signedToken(t, time.Now().Add(time.Hour))
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, tok))
		assert.True(t, store.IsLoggedIn())
	})

	t.Run("jwt with past exp is dead", func(t *testing.T) {
		store := newTestStore(t, 0)
		tok := signedToken(t, time.Now().Add(-time.Hour))
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, tok))
		assert.False(t, store.IsLoggedIn())
	})

	t.Run("ttl expiry", func(t *testing.T) {
		store := newTestStore(t, 30)
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, "opaque-token"))
		assert.True(t, store.IsLoggedIn())

		// Age the session past the TTL by rewriting its timestamp.
		sess := store.GetUserSession()
		sess.Timestamp = time.Now().Add(-time.Hour).UnixMilli()
		require.NoError(t, store.write(sess))
		assert.False(t, store.IsLoggedIn())
	})
}

func TestSetProfessionalsProfileID(t *testing.T) {
	t.Run("merges into existing session", func(t *testing.T) {
		store := newTestStore(t, 0)
		require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, "tok"))

		store.SetProfessionalsProfileID(99)
		assert.Equal(t, 99, store.GetProfessionalsProfileID())

		// Token survives the merge.
		assert.Equal(t, "tok", store.GetAuthToken())
	})

	t.Run("no-op without a session", func(t *testing.T) {
		store := newTestStore(t, 0)
		store.SetProfessionalsProfileID(99)
		assert.Nil(t, store.GetUserSession())
		assert.Zero(t, store.GetProfessionalsProfileID())
	})
}

func TestClearUserSession(t *testing.T) {
	store := newTestStore(t, 0)
	require.NoError(t, store.SetUserSession(models.User{ProfessionalsID: 1}, "tok"))

	store.ClearUserSession()
	assert.Nil(t, store.GetUserSession())
	assert.False(t, store.IsLoggedIn())

	// Clearing an already-clear store is harmless.
	store.ClearUserSession()
}
