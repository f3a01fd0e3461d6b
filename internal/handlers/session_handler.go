package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"campusmarket/internal/session"
)

type SessionHandler struct {
	Sessions *session.Manager
}

// SignIn exchanges a Firebase ID token from the sign-in popup for a
// session cookie.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.IDToken == "" {
		writeMessage(w, http.StatusBadRequest, "id_token is required")
		return
	}

	cookieToken, user, err := h.Sessions.SignIn(r.Context(), req.IDToken)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Sign in failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    cookieToken,
		Path:     "/",
		Expires:  time.Now().Add(h.Sessions.TTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, user)
}

// SignOut drops the session and expires the cookie; the browser then
// lands back on the landing page.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.Sessions.SignOut(r.Context(), cookie.Value); err != nil {
			writeError(w, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	writeMessage(w, http.StatusOK, "signed out")
}

// Me returns the signed-in user, so pages can show identity without
// another round trip to the identity provider.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, sess.User)
}
