package handlers

import (
	"io"
	"net/http"
	"time"

	"campusmarket/internal/editor"
	"campusmarket/internal/marketapi"
	"campusmarket/internal/models"
	"campusmarket/internal/render"
	"campusmarket/internal/session"
)

type ListingHandler struct {
	API    *marketapi.Client
	Images editor.ImageStorage
}

// ItemDetails fetches one listing's full record, rendered as a card plus
// the raw fields the detail view needs.
func (h *ListingHandler) ItemDetails(w http.ResponseWriter, r *http.Request) {
	listingType := models.NormalizeListingType(getParam(r, "kind"))
	if !models.ValidListingType(listingType) {
		writeMessage(w, http.StatusBadRequest, "unknown listing kind")
		return
	}
	id := getParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "missing item id")
		return
	}

	listing, err := h.API.ListingDetails(r.Context(), listingType, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Listing models.Listing `json:"listing"`
		Card    render.Card    `json:"card"`
	}{Listing: listing, Card: render.BuildCard(listing, time.Now())})
}

// UploadImage stores an image and returns its public URL for the listing
// record that will reference it.
func (h *ListingHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "failed to read image")
		return
	}

	imageURL, err := h.Images.Upload(r.Context(), data, header.Header.Get("Content-Type"), sess.User.UID, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message  string `json:"message"`
		ImageURL string `json:"image_url"`
	}{Message: "Image uploaded successfully", ImageURL: imageURL})
}

// DeleteImage removes one of the user's own stored images.
func (h *ListingHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}
	filename := getParam(r, "filename")
	if filename == "" {
		writeMessage(w, http.StatusBadRequest, "missing filename")
		return
	}
	if err := h.Images.Delete(r.Context(), filename, sess.User.UID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Image deleted successfully")
}
