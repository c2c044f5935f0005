package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func makeToken(t *testing.T, userID, email string, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func tempSessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".codescout_session")
}

func TestDecodeClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := makeToken(t, "user-1", "ada@example.com", expiry)

	claims, err := DecodeClaims(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, expiry.Unix(), claims.Expiry.Unix())
}

func TestDecodeClaimsRejectsGarbage(t *testing.T) {
	_, err := DecodeClaims("not-a-token")
	assert.Error(t, err)
}

func TestDecodeClaimsRequiresUserID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = DecodeClaims(signed)
	assert.Error(t, err)
}

func TestSetSessionAndBootstrap(t *testing.T) {
	path := tempSessionPath(t)
	now := time.Now()
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(time.Hour))

	store := NewStore(path)
	assert.NoError(t, store.SetSession(raw))
	assert.True(t, store.Active())

	// A fresh store sees the persisted credential
	restored := NewStore(path)
	assert.NoError(t, restored.Bootstrap(now))

	claims, err := restored.Claims()
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	token, err := restored.Token()
	assert.NoError(t, err)
	assert.Equal(t, raw, token)
}

func TestSetSessionToleratesUndecodableToken(t *testing.T) {
	path := tempSessionPath(t)

	// The credential is opaque to the client; a token it cannot decode is
	// still installed and persisted, it just carries no usable identity.
	// The server settles its fate on the next request.
	store := NewStore(path)
	assert.NoError(t, store.SetSession("not-a-jwt"))
	assert.True(t, store.Active())

	claims, err := store.Claims()
	assert.NoError(t, err)
	assert.Empty(t, claims.UserID)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "not-a-jwt", string(data))
}

func TestSetSessionExpiredTokenDiscardedAtBootstrap(t *testing.T) {
	path := tempSessionPath(t)
	now := time.Now()
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(-time.Hour))

	// Installing does not gate on expiry; the boot sequence does.
	store := NewStore(path)
	assert.NoError(t, store.SetSession(raw))
	assert.True(t, store.Active())

	restored := NewStore(path)
	assert.ErrorIs(t, restored.Bootstrap(now), ErrSessionExpired)
	assert.False(t, restored.Active())
	assert.Equal(t, ExpiredNotice, restored.TakeNotice())
}

func TestBootstrapNoSession(t *testing.T) {
	store := NewStore(tempSessionPath(t))
	assert.ErrorIs(t, store.Bootstrap(time.Now()), ErrNoSession)
	assert.Empty(t, store.TakeNotice())
}

func TestBootstrapDiscardsExpiredCredential(t *testing.T) {
	path := tempSessionPath(t)
	now := time.Now()
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(-time.Minute))
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	store := NewStore(path)
	assert.ErrorIs(t, store.Bootstrap(now), ErrSessionExpired)
	assert.False(t, store.Active())
	assert.Equal(t, ExpiredNotice, store.TakeNotice())
	// The notice is one-shot
	assert.Empty(t, store.TakeNotice())

	// The stale credential is gone from disk
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBootstrapDiscardsCorruptCredential(t *testing.T) {
	path := tempSessionPath(t)
	assert.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	store := NewStore(path)
	assert.ErrorIs(t, store.Bootstrap(time.Now()), ErrNoSession)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLogoutClearsEverything(t *testing.T) {
	path := tempSessionPath(t)
	now := time.Now()
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(time.Hour))

	store := NewStore(path)
	assert.NoError(t, store.SetSession(raw))
	assert.NoError(t, store.Logout())

	assert.False(t, store.Active())
	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Logging out twice is harmless
	assert.NoError(t, store.Logout())
}
