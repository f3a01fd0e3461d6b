package session

import (
	"context"
	"fmt"
	"time"

	"campusmarket/internal/models"
	"campusmarket/utils"
)

// CookieName is the browser cookie holding the signed session token.
const CookieName = "campus_session"

// Manager exchanges identity-provider tokens for server sessions and
// resolves them back to users on every request.
type Manager struct {
	verifier Verifier
	store    Store
	tokens   *utils.Manager
	ttl      time.Duration
}

func NewManager(verifier Verifier, store Store, tokens *utils.Manager, ttl time.Duration) *Manager {
	return &Manager{verifier: verifier, store: store, tokens: tokens, ttl: ttl}
}

// SignIn verifies the Firebase ID token, records a session, and returns
// the signed cookie token together with the resolved user.
func (m *Manager) SignIn(ctx context.Context, idToken string) (string, models.User, error) {
	user, err := m.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", models.User{}, err
	}

	id, err := m.tokens.NewSessionID()
	if err != nil {
		return "", models.User{}, fmt.Errorf("new session id: %w", err)
	}
	sess := Session{ID: id, User: user, ExpiresAt: time.Now().Add(m.ttl)}
	if err := m.store.Save(ctx, sess); err != nil {
		return "", models.User{}, err
	}

	cookieToken, err := m.tokens.NewJWT(id, m.ttl)
	if err != nil {
		return "", models.User{}, fmt.Errorf("sign session token: %w", err)
	}
	return cookieToken, user, nil
}

// Resolve maps a cookie token back to its session.
func (m *Manager) Resolve(ctx context.Context, cookieToken string) (Session, error) {
	id, err := m.tokens.Parse(cookieToken)
	if err != nil {
		return Session{}, fmt.Errorf("parse session token: %w", err)
	}
	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if time.Now().After(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// SignOut drops the session. The cookie itself is expired by the handler.
func (m *Manager) SignOut(ctx context.Context, cookieToken string) error {
	id, err := m.tokens.Parse(cookieToken)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// TTL is the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
