package marketapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"campusmarket/internal/models"
)

// UploadResult is the backend's acknowledgment of a create.
type UploadResult struct {
	Message   string `json:"message"`
	ListingID string `json:"listing_id"`
}

// UploadListing creates a new listing or request, routed by listing type.
func (c *Client) UploadListing(ctx context.Context, l models.Listing) (UploadResult, error) {
	var out UploadResult
	err := c.doJSON(ctx, http.MethodPost, prefixFor(l.Type)+"/upload", l, &out)
	return out, err
}

// UpdateListing overwrites an existing listing owned by l.UserID.
func (c *Client) UpdateListing(ctx context.Context, id string, l models.Listing) error {
	path := fmt.Sprintf("%s/update/%s", prefixFor(l.Type), url.PathEscape(id))
	return c.doJSON(ctx, http.MethodPut, path, l, nil)
}

// DeleteListing removes a listing. The backend checks ownership against
// userID.
func (c *Client) DeleteListing(ctx context.Context, listingType, id, userID string) error {
	path := fmt.Sprintf("%s/delete/%s?user_id=%s",
		prefixFor(listingType), url.PathEscape(id), url.QueryEscape(userID))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// MarkComplete toggles the trans_comp flag on a listing or request.
func (c *Client) MarkComplete(ctx context.Context, listingType, id string) error {
	path := fmt.Sprintf("%s/mark/%s", prefixFor(listingType), url.PathEscape(id))
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// ListingDetails fetches the full record behind a dropdown pick.
func (c *Client) ListingDetails(ctx context.Context, listingType, id string) (models.Listing, error) {
	var out struct {
		Message string         `json:"message"`
		Details models.Listing `json:"listingDetails"`
	}
	path := fmt.Sprintf("%s/listing-details/%s", prefixFor(listingType), url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return models.Listing{}, err
	}
	out.Details.Type = models.NormalizeListingType(out.Details.Type)
	return out.Details, nil
}

// UserListings returns the short refs that populate the editor dropdown.
// Fetched lazily, only when the dropdown opens.
func (c *Client) UserListings(ctx context.Context, listingType, uid string) ([]models.ItemRef, error) {
	var out []models.ItemRef
	path := fmt.Sprintf("%s/user-listings/%s", prefixFor(listingType), url.PathEscape(uid))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
