package handlers

import (
	"net/http"
	"time"

	"campusmarket/internal/editor"
	"campusmarket/internal/marketapi"
	"campusmarket/internal/models"
	"campusmarket/internal/render"
	"campusmarket/internal/session"
)

type CatalogHandler struct {
	API   *marketapi.Client
	Store editor.Store
}

// searchResponse replaces the page's listing collection wholesale.
type searchResponse struct {
	Listings []render.Card `json:"listings"`
	Message  string        `json:"message,omitempty"`
}

// Search builds the canonical query from the filter controls and runs it.
// Every search gets a per-session generation number; if a newer search
// finishes first, the stale result is discarded instead of overwriting it.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not signed in")
		return
	}

	query, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	gen, err := h.Store.NextSearchGeneration(r.Context(), sess.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	listings, err := h.API.SearchListings(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	latest, err := h.Store.SearchGeneration(r.Context(), sess.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if latest != gen {
		// A newer search was issued while this one was in flight.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := searchResponse{Listings: render.BuildCards(listings, time.Now())}
	if len(resp.Listings) == 0 {
		resp.Message = "No items found"
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseSearchQuery maps the filter controls one-to-one onto a SearchQuery.
// Blank prices mean zero; the three type toggles are independent and may
// all be off.
func parseSearchQuery(r *http.Request) (models.SearchQuery, error) {
	q := r.URL.Query()

	minPrice, err := editor.ParsePrice(editor.NormalizePrice(q.Get("min_price")))
	if err != nil {
		return models.SearchQuery{}, err
	}
	maxPrice, err := editor.ParsePrice(editor.NormalizePrice(q.Get("max_price")))
	if err != nil {
		return models.SearchQuery{}, err
	}

	query := models.SearchQuery{
		Text:       q.Get("search"),
		Category:   q.Get("category"),
		Sort:       q.Get("sort"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Categories: q["categories"],
		Types: models.TypeToggles{
			Sale:    isToggleOn(q.Get("sale")),
			Rent:    isToggleOn(q.Get("rent")),
			Request: isToggleOn(q.Get("request")),
		},
	}
	return query, nil
}

func isToggleOn(v string) bool {
	return v == "true" || v == "1" || v == "on"
}
