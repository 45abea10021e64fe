package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*SessionService, *MemorySessionStore) {
	t.Helper()
	store := NewMemorySessionStore()
	t.Cleanup(store.Close)
	svc := NewSessionService(EnvCredentials{Username: "admin", Password: "opensesame"}, store, 0)
	return svc, store
}

func TestSessionService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	token, session, err := svc.Login(ctx, "admin", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, session)
}

func TestSessionService_LoginAndValidate(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	token, session, err := svc.Login(ctx, "admin", "opensesame")
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "admin", session.Username)

	got, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
}

func TestSessionService_ValidateUnknownToken(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.Validate(context.Background(), TokenPrefix+"deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_ExpiresAfterTTLAndClearsSession(t *testing.T) {
	svc, store := newTestSessionService(t)
	ctx := context.Background()

	base := time.Now()
	svc.now = func() time.Time { return base }

	token, _, err := svc.Login(ctx, "admin", "opensesame")
	require.NoError(t, err)

	// 25 hours later the 24h session is gone.
	svc.now = func() time.Time { return base.Add(25 * time.Hour) }

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// The expired session was cleared, not just rejected.
	session, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Logout(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin", "opensesame")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestEnvCredentials_EmptyPasswordNeverMatches(t *testing.T) {
	creds := EnvCredentials{Username: "admin", Password: ""}
	assert.False(t, creds.Verify("admin", ""))
	assert.False(t, creds.Verify("admin", "anything"))
}
