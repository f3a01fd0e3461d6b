package models

import "time"

// User is the identity resolved from the session cookie. It is carried in
// the request context by the session middleware, never in a package global.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// ContactInfo is the profile panel's editable contact metadata.
type ContactInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location"`
}

// Transaction is one row of a user's transaction history (buys, sells, ISOs).
type Transaction struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	RequesterID string    `json:"requester_id,omitempty"`
	SellerID    string    `json:"seller_id,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}
