package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"campusmarket/internal/editor"
	"campusmarket/internal/marketapi"
)

// messageBody is the failure envelope every endpoint shares: a JSON body
// with at least a message field, surfaced to the user as-is.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageBody{Message: message})
}

// writeError maps an error onto the response. Validation failures are the
// caller's fault and carry their own message; upstream API errors keep the
// backend's status and message verbatim; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *marketapi.APIError
	switch {
	case errors.Is(err, editor.ErrTitleRequired),
		errors.Is(err, editor.ErrNegativePrice),
		errors.Is(err, editor.ErrInvalidPrice),
		errors.Is(err, editor.ErrInvalidListingType),
		errors.Is(err, editor.ErrNoSelection),
		errors.Is(err, editor.ErrUnknownTab),
		errors.Is(err, editor.ErrUnknownField):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, editor.ErrNotSignedIn):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeMessage(w, status, apiErr.Message)
	default:
		log.Printf("ERROR\t%v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
