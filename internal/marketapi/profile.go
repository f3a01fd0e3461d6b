package marketapi

import (
	"context"
	"net/http"
	"net/url"

	"campusmarket/internal/models"
)

// UploadContactInfo publishes the user's contact metadata so buyers can
// reach them.
func (c *Client) UploadContactInfo(ctx context.Context, uid string, info models.ContactInfo) error {
	body := struct {
		UserID string `json:"user_id"`
		models.ContactInfo
	}{UserID: uid, ContactInfo: info}
	return c.doJSON(ctx, http.MethodPost, profilePrefix+"/upload_contact_info", body, nil)
}

// ListOfItems returns everything the user currently has posted.
func (c *Client) ListOfItems(ctx context.Context, uid string) ([]models.Listing, error) {
	var out struct {
		Items []models.Listing `json:"listingOfItems"`
	}
	path := profilePrefix + "/get_list_of_items?requester_id=" + url.QueryEscape(uid)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// TransactionHistory returns the user's completed buys, sells and ISOs.
func (c *Client) TransactionHistory(ctx context.Context, uid string) ([]models.Transaction, error) {
	var out struct {
		History []models.Transaction `json:"listingOfTransactionHistory"`
	}
	path := profilePrefix + "/get_transaction_history?requester_id=" + url.QueryEscape(uid)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}
