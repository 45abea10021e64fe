package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"dealerdrive-api/internal/model"
)

const (
	// TokenPrefix is the prefix for all admin session tokens
	TokenPrefix = "dds_"

	// DefaultSessionTTL is the session lifetime when none is configured
	DefaultSessionTTL = 24 * time.Hour
)

var (
	// ErrInvalidCredentials is returned when the username/password pair
	// does not match the configured admin credentials.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidSession is returned for missing, unknown or expired
	// session tokens. An expired session is indistinguishable from never
	// having logged in.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// CredentialVerifier checks an admin credential pair. Abstracted so real
// secret storage can be substituted without touching the session logic.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// EnvCredentials verifies against a single credential pair taken from the
// environment. An empty configured password never matches, which keeps
// admin login disabled until one is set.
type EnvCredentials struct {
	Username string
	Password string
}

func (c EnvCredentials) Verify(username, password string) bool {
	if c.Password == "" {
		return false
	}
	return username == c.Username && password == c.Password
}

// SessionStore persists admin sessions keyed by token.
type SessionStore interface {
	// Put stores a session under token. The ttl is advisory: backends may
	// use it to expire entries early, but SessionService always re-checks
	// the login time itself.
	Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error

	// Get returns the session for token, or nil if there is none.
	Get(ctx context.Context, token string) (*model.Session, error)

	// Delete removes the session for token. Deleting an absent token is
	// not an error.
	Delete(ctx context.Context, token string) error
}

// SessionService is the admin session gate: it issues tokens on login,
// validates them with the expiry check at this single boundary, and
// revokes them on logout.
type SessionService struct {
	creds CredentialVerifier
	store SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionService creates a session service. A non-positive ttl falls
// back to DefaultSessionTTL.
func NewSessionService(creds CredentialVerifier, store SessionStore, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		creds: creds,
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Login verifies the credential pair and, on match, stores a new session
// and returns its token. On mismatch nothing is stored.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, *model.Session, error) {
	if !s.creds.Verify(username, password) {
		return "", nil, ErrInvalidCredentials
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	token := TokenPrefix + hex.EncodeToString(tokenBytes)

	session := model.Session{
		Username:        username,
		IsAuthenticated: true,
		LoginTime:       s.now(),
	}
	if err := s.store.Put(ctx, token, session, s.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("[SessionService] Admin %q logged in, session expires %v",
		username, session.LoginTime.Add(s.ttl).Format(time.RFC3339))
	return token, &session, nil
}

// Validate returns the session for token if it is still live. Sessions
// older than the configured TTL are deleted and reported invalid.
func (s *SessionService) Validate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" || len(token) <= len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil, ErrInvalidSession
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil || !session.IsAuthenticated {
		return nil, ErrInvalidSession
	}

	if s.now().Sub(session.LoginTime) > s.ttl {
		if err := s.store.Delete(ctx, token); err != nil {
			log.Printf("[SessionService] failed to clear expired session: %v", err)
		}
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Logout deletes the session for token unconditionally.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}
