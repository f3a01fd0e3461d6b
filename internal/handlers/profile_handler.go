package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"campusmarket/internal/marketapi"
	"campusmarket/internal/models"
	"campusmarket/internal/render"
	"campusmarket/internal/session"
)

type ProfileHandler struct {
	API *marketapi.Client
}

// UpdateContactInfo publishes the user's contact metadata. Name, email and
// location are required; the phone number is optional.
func (h *ProfileHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var info models.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	switch {
	case info.Name == "":
		writeMessage(w, http.StatusUnprocessableEntity, "Name is required")
		return
	case info.Email == "":
		writeMessage(w, http.StatusUnprocessableEntity, "Email is required")
		return
	case info.Location == "":
		writeMessage(w, http.StatusUnprocessableEntity, "Location is required")
		return
	}

	if err := h.API.UploadContactInfo(r.Context(), sess.User.UID, info); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Contact information updated successfully")
}

// Items returns everything the user currently has posted, as cards.
// Fetched on demand from the profile panel, not preloaded.
func (h *ProfileHandler) Items(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	items, err := h.API.ListOfItems(r.Context(), sess.User.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Items []render.Card `json:"items"`
	}{Items: render.BuildCards(items, time.Now())})
}

// Transactions returns the user's completed buys, sells and ISOs.
func (h *ProfileHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	history, err := h.API.TransactionHistory(r.Context(), sess.User.UID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		History []models.Transaction `json:"history"`
	}{History: history})
}
