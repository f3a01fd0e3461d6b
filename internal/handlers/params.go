package handlers

import "net/http"

// getParam reads a route parameter. The router exposes pat-style params as
// colon-prefixed query values; fall back to net/http's PathValue so the
// handlers also work when mounted on a plain ServeMux in tests.
func getParam(r *http.Request, name string) string {
	if v := r.URL.Query().Get(":" + name); v != "" {
		return v
	}
	return r.PathValue(name)
}
