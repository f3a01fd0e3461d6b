package render

import (
	"fmt"
	"math"
	"time"

	"campusmarket/internal/models"
)

const descriptionLimit = 200

// Card is the display form of one listing summary. Building it has no
// side effects; handlers serialize it straight to the page.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Owner       string `json:"owner"`
	Price       string `json:"price"`
	Secondary   string `json:"secondary"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Accent      string `json:"accent"`
	ImageURL    string `json:"image_url,omitempty"`
	Urgent      bool   `json:"urgent,omitempty"`
}

// BuildCard renders a listing summary. Descriptions longer than 200
// characters are truncated with a trailing ellipsis; integral prices drop
// the decimal point; the secondary line prefers the availability range and
// falls back to time since listing.
func BuildCard(l models.Listing, now time.Time) Card {
	return Card{
		ID:          l.ID,
		Title:       l.Title,
		Owner:       l.DisplayName,
		Price:       FormatPrice(l.Price),
		Secondary:   secondaryLine(l, now),
		Description: truncate(l.Description, descriptionLimit),
		Type:        l.Type,
		Accent:      accentFor(l.Type),
		ImageURL:    l.ImageURL,
		Urgent:      l.Urgent,
	}
}

// BuildCards renders a whole result set in display order.
func BuildCards(listings []models.Listing, now time.Time) []Card {
	cards := make([]Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, BuildCard(l, now))
	}
	return cards
}

// FormatPrice renders 25 as "$25" and 25.5 as "$25.50".
func FormatPrice(p float64) string {
	if p == math.Trunc(p) {
		return fmt.Sprintf("$%d", int64(p))
	}
	return fmt.Sprintf("$%.2f", p)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func secondaryLine(l models.Listing, now time.Time) string {
	if l.AvailabilityDates != nil {
		return l.AvailabilityDates.String()
	}
	return TimeSince(l.CreatedAt, now)
}

// TimeSince renders a coarse relative age for the card's secondary line.
func TimeSince(created, now time.Time) string {
	if created.IsZero() {
		return ""
	}
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return plural(int(d.Hours()/(24*7)), "week")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// accentFor mirrors the card's colored edge: blue for sale, green for
// rent, purple for requests.
func accentFor(listingType string) string {
	switch listingType {
	case models.TypeSale:
		return "blue"
	case models.TypeRent:
		return "green"
	default:
		return "purple"
	}
}
