package marketapi

import (
	"context"
	"net/http"

	"campusmarket/internal/models"
)

// SearchListings runs one catalog search. The returned slice replaces the
// displayed collection in full; there is no pagination or merging.
func (c *Client) SearchListings(ctx context.Context, q models.SearchQuery) ([]models.Listing, error) {
	var out struct {
		Listings []models.Listing `json:"listings"`
	}
	path := catalogPrefix + "/listings?" + q.Values().Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Listings {
		out.Listings[i].Type = models.NormalizeListingType(out.Listings[i].Type)
	}
	return out.Listings, nil
}
