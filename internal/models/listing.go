package models

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Canonical listing types. Older clients sent "sell" or "buy" for sale
// listings and "iso" for requests; NormalizeListingType folds those in.
const (
	TypeSale    = "sale"
	TypeRent    = "rent"
	TypeRequest = "request"
)

// Sort options accepted by the catalog endpoint.
const (
	SortDateAsc   = "date_asc"
	SortDateDesc  = "date_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

type Listing struct {
	ID                string     `json:"id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Price             float64    `json:"price"`
	ImageURL          string     `json:"image_url,omitempty"`
	Category          string     `json:"category,omitempty"`
	Categories        []string   `json:"categories,omitempty"`
	Type              string     `json:"type"`
	Urgent            bool       `json:"urgent,omitempty"`
	AvailabilityDates *DateRange `json:"availability_dates,omitempty"`
	TransComp         bool       `json:"trans_comp"`
	UserID            string     `json:"user_id"`
	DisplayName       string     `json:"display_name,omitempty"`
	Email             string     `json:"email,omitempty"`
	CreatedAt         time.Time  `json:"created_at,omitempty"`
}

// DateRange is the availability window of a rentable item.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (d DateRange) String() string {
	return fmt.Sprintf("%s - %s", d.Start.Format("Jan 2"), d.End.Format("Jan 2, 2006"))
}

// ItemRef is the short form used to fill the editor dropdown.
type ItemRef struct {
	ID    string `json:"listing_id"`
	Title string `json:"title"`
}

// NormalizeListingType maps legacy type literals onto the canonical set.
// Unknown literals are returned unchanged so the caller can reject them.
func NormalizeListingType(t string) string {
	switch t {
	case "sell", "buy", TypeSale:
		return TypeSale
	case TypeRent:
		return TypeRent
	case "iso", TypeRequest:
		return TypeRequest
	}
	return t
}

// ValidListingType reports whether t is one of the canonical types.
func ValidListingType(t string) bool {
	switch t {
	case TypeSale, TypeRent, TypeRequest:
		return true
	}
	return false
}

// TypeToggles mirrors the three independent listing-type filters of the
// catalog page. All three off is a legal state and simply matches nothing.
type TypeToggles struct {
	Sale    bool `json:"sale"`
	Rent    bool `json:"rent"`
	Request bool `json:"request"`
}

// Enabled returns the enabled type literals in canonical order.
func (t TypeToggles) Enabled() []string {
	var types []string
	if t.Sale {
		types = append(types, TypeSale)
	}
	if t.Rent {
		types = append(types, TypeRent)
	}
	if t.Request {
		types = append(types, TypeRequest)
	}
	return types
}

// SearchQuery is rebuilt from the filter controls on every search
// submission. It is never persisted.
type SearchQuery struct {
	Text       string      `json:"search"`
	Category   string      `json:"category"`
	Sort       string      `json:"sort"`
	MinPrice   float64     `json:"min_price"`
	MaxPrice   float64     `json:"max_price"`
	Types      TypeToggles `json:"types"`
	Categories []string    `json:"categories"`
}

// Values encodes the query canonically for the catalog endpoint. Each
// enabled type toggle contributes one repeated listing_types value;
// categories repeat likewise and are emitted sorted so the same query
// always encodes to the same string.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	if q.Text != "" {
		v.Set("search", q.Text)
	}
	if q.Category != "" && q.Category != "All" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	v.Set("min_price", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	v.Set("max_price", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	for _, t := range q.Types.Enabled() {
		v.Add("listing_types", t)
	}
	categories := append([]string(nil), q.Categories...)
	sort.Strings(categories)
	for _, c := range categories {
		v.Add("categories", c)
	}
	return v
}
