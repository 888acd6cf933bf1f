package auth

import (
	"testing"
	"time"

	"bizdir/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *sessionTokenService {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{Secret: "test-secret", TTL: ttl}}
	svc, err := NewSessionTokenService(cfg)
	require.NoError(t, err)

	return svc.(*sessionTokenService)
}

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestSessionTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Subject(token)
	assert.Error(t, err)
}

func TestSessionTokenService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)
	other.secret = "another-secret"

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Subject(token)
	assert.Error(t, err)
}

func TestSessionTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.Subject("not.a.token")
	assert.Error(t, err)
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokenService(&config.Config{})
	assert.Error(t, err)
}
