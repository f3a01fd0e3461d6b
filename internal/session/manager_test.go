package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusmarket/internal/models"
	"campusmarket/utils"
)

type fakeVerifier struct {
	user models.User
	err  error
}

func (v fakeVerifier) Verify(ctx context.Context, idToken string) (models.User, error) {
	if v.err != nil {
		return models.User{}, v.err
	}
	return v.user, nil
}

func newTestManager(t *testing.T, verifier Verifier, ttl time.Duration) *Manager {
	t.Helper()
	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return NewManager(verifier, NewMemoryStore(), tokens, ttl)
}

func TestSignInAndResolve(t *testing.T) {
	user := models.User{UID: "u1", DisplayName: "Sam", Email: "sam@campus.edu"}
	m := newTestManager(t, fakeVerifier{user: user}, time.Hour)

	cookieToken, got, err := m.SignIn(context.Background(), "firebase-token")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if got != user {
		t.Fatalf("user = %+v", got)
	}
	if cookieToken == "" {
		t.Fatal("empty cookie token")
	}

	sess, err := m.Resolve(context.Background(), cookieToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sess.User != user {
		t.Fatalf("resolved user = %+v", sess.User)
	}
	if sess.ID == "" {
		t.Fatal("empty session id")
	}
}

func TestSignInRejectedToken(t *testing.T) {
	m := newTestManager(t, fakeVerifier{err: errors.New("token revoked")}, time.Hour)

	if _, _, err := m.SignIn(context.Background(), "bad-token"); err == nil {
		t.Fatal("expected verification error")
	}
}

func TestResolveGarbageToken(t *testing.T) {
	m := newTestManager(t, fakeVerifier{}, time.Hour)

	if _, err := m.Resolve(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveExpiredSession(t *testing.T) {
	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	store := NewMemoryStore()
	m := NewManager(fakeVerifier{}, store, tokens, time.Hour)

	// A still-valid cookie token whose backing session has already expired.
	if err := store.Save(context.Background(), Session{
		ID:        "stale",
		User:      models.User{UID: "u1"},
		ExpiresAt: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	cookieToken, err := tokens.NewJWT("stale", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.Resolve(context.Background(), cookieToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSignOut(t *testing.T) {
	m := newTestManager(t, fakeVerifier{user: models.User{UID: "u1"}}, time.Hour)

	cookieToken, _, err := m.SignIn(context.Background(), "firebase-token")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := m.SignOut(context.Background(), cookieToken); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := m.Resolve(context.Background(), cookieToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after sign-out, got %v", err)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	m := newTestManager(t, fakeVerifier{user: models.User{UID: "u1"}}, time.Hour)

	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		cookieToken, _, err := m.SignIn(context.Background(), "firebase-token")
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		sess, err := m.Resolve(context.Background(), cookieToken)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if seen[sess.ID] {
			t.Fatalf("duplicate session id %q", sess.ID)
		}
		seen[sess.ID] = true
	}
}
