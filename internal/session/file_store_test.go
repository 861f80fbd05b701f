package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	return s, path
}

func signedToken(t *testing.T, claims models.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestNewFileStore_MissingFileMeansLoggedOut(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, "", s.Token())
	assert.True(t, s.Session().Empty())
}

func TestNewFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path, logger.Nop())
	assert.Error(t, err)
}

func TestSetToken_PersistsAndReloads(t *testing.T) {
	s, path := newTestStore(t)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.SetToken("  abc.def.ghi \n"))
	assert.Equal(t, "abc.def.ghi", s.Token())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored models.Session
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, models.Session{Token: "abc.def.ghi", SavedAt: fixed}, stored)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", reopened.Token())
}

func TestSetToken_StripsBearerScheme(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SetToken("Bearer tok-1"))
	assert.Equal(t, "tok-1", s.Token())

	require.NoError(t, s.SetToken("bearer tok-2"))
	assert.Equal(t, "tok-2", s.Token())
}

func TestSetToken_Empty(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.SetToken("   "), ErrEmptyToken)
	assert.ErrorIs(t, s.SetToken(""), ErrEmptyToken)
}

func TestLogout_RemovesFile(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.SetToken("tok"))

	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, "", s.Token())
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogout_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Logout(context.Background()))
	require.NoError(t, s.Logout(context.Background()))
}

func TestLogout_CancelledContext(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SetToken("tok"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Logout(ctx), context.Canceled)
	assert.Equal(t, "tok", s.Token())
}

func TestMemoryStore(t *testing.T) {
	s, err := NewFileStore(MemoryPath, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SetToken("tok"))
	assert.Equal(t, "tok", s.Token())
	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, "", s.Token())

	defaulted, err := NewFileStore("", nil)
	require.NoError(t, err)
	assert.Equal(t, MemoryPath, defaulted.Path())
}

func TestClaims(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Claims()
	assert.ErrorIs(t, err, ErrNoSession)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: "viewer@danmu.dev",
	})
	require.NoError(t, s.SetToken(token))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "viewer@danmu.dev", claims.Email)
	assert.True(t, claims.ExpiresAtTime().Equal(exp))

	require.NoError(t, s.SetToken("opaque-token"))
	_, err = s.Claims()
	assert.Error(t, err)
}
