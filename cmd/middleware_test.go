package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusmarket/internal/models"
	"campusmarket/internal/session"
	"campusmarket/utils"
)

type stubVerifier struct{ user models.User }

func (v stubVerifier) Verify(ctx context.Context, idToken string) (models.User, error) {
	return v.user, nil
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return &application{
		infoLog:  log.New(io.Discard, "", 0),
		errorLog: log.New(io.Discard, "", 0),
		sessions: session.NewManager(
			stubVerifier{user: models.User{UID: "u1"}},
			session.NewMemoryStore(), tokens, time.Hour),
	}
}

func TestRequireSessionRedirectsPageLoads(t *testing.T) {
	app := newTestApp(t)
	handler := app.requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached without a session")
	}))

	r := httptest.NewRequest(http.MethodGet, "/catalog/listings", nil)
	r.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q", got)
	}
}

func TestRequireSessionRejectsAPICalls(t *testing.T) {
	app := newTestApp(t)
	handler := app.requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached without a session")
	}))

	r := httptest.NewRequest(http.MethodGet, "/catalog/listings", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireSessionPassesValidCookie(t *testing.T) {
	app := newTestApp(t)
	cookieToken, _, err := app.sessions.SignIn(context.Background(), "firebase-token")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var gotUID string
	handler := app.requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			t.Error("session missing from context")
			return
		}
		gotUID = sess.User.UID
	}))

	r := httptest.NewRequest(http.MethodGet, "/catalog/listings", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookieToken})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotUID != "u1" {
		t.Fatalf("uid = %q", gotUID)
	}
}

func TestRequireSessionRejectsGarbageCookie(t *testing.T) {
	app := newTestApp(t)
	handler := app.requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached with a garbage cookie")
	}))

	r := httptest.NewRequest(http.MethodGet, "/catalog/listings", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
