package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"campusmarket/internal/editor"
	"campusmarket/internal/models"
	"campusmarket/internal/session"
)

// Request bodies larger than this are rejected outright; the editor only
// ever moves small field edits plus one image.
const maxImageBytes = 10 << 20

type EditorHandler struct {
	Editor *editor.Service
}

// Draft returns the session's current editor state.
func (h *EditorHandler) Draft(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	d, err := h.Editor.Draft(r.Context(), sess.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// SwitchTab activates an editor tab. The draft is always cleared on entry.
func (h *EditorHandler) SwitchTab(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	var req struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	d, err := h.Editor.SwitchTab(r.Context(), sess.ID, req.Tab)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Items lists the user's own items for the dropdown; it is called only
// when the dropdown opens.
func (h *EditorHandler) Items(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	listingType := models.NormalizeListingType(getParam(r, "kind"))
	if !models.ValidListingType(listingType) {
		writeMessage(w, http.StatusBadRequest, "unknown listing kind")
		return
	}
	items, err := h.Editor.Items(r.Context(), sess.User, listingType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Items []models.ItemRef `json:"items"`
	}{Items: items})
}

// SelectItem loads an existing item into the draft, overwriting any
// in-progress edits.
func (h *EditorHandler) SelectItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	var req struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	listingType := models.NormalizeListingType(req.Type)
	if !models.ValidListingType(listingType) || req.ID == "" {
		writeMessage(w, http.StatusBadRequest, "type and id are required")
		return
	}
	d, err := h.Editor.SelectItem(r.Context(), sess.ID, listingType, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// SetField applies one field edit. The response carries the whole draft so
// the page can echo normalized values (the price field) back into the
// input.
func (h *EditorHandler) SetField(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	d, err := h.Editor.SetField(r.Context(), sess.ID, req.Field, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Submit runs the active tab's operation. The form posts multipart when an
// image accompanies the submission, plain otherwise.
func (h *EditorHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}

	image, err := readImage(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.Editor.Submit(r.Context(), sess.ID, sess.User, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, message)
}

// readImage pulls the optional image attachment off a multipart submit.
func readImage(r *http.Request) (*editor.ImageUpload, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || len(ct) < 19 || ct[:19] != "multipart/form-data" {
		return nil, nil
	}
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return nil, err
	}
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return &editor.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, nil
}
