package render

import (
	"strings"
	"testing"
	"time"

	"campusmarket/internal/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{"integral", 25, "$25"},
		{"fractional", 25.5, "$25.50"},
		{"two decimals", 19.99, "$19.99"},
		{"zero", 0, "$0"},
		{"large integral", 1200, "$1200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price); got != tt.want {
				t.Fatalf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestBuildCardTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 250)
	card := BuildCard(models.Listing{Description: long}, time.Now())
	if len([]rune(card.Description)) != 203 {
		t.Fatalf("description length = %d, want 203", len([]rune(card.Description)))
	}
	if !strings.HasSuffix(card.Description, "...") {
		t.Fatalf("description missing ellipsis: %q", card.Description[190:])
	}

	exact := strings.Repeat("b", 200)
	card = BuildCard(models.Listing{Description: exact}, time.Now())
	if card.Description != exact {
		t.Fatal("200-character description should pass through unchanged")
	}
}

func TestBuildCardSecondaryLine(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	withRange := models.Listing{
		CreatedAt: now.Add(-2 * time.Hour),
		AvailabilityDates: &models.DateRange{
			Start: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	if got := BuildCard(withRange, now).Secondary; got != "Mar 12 - Mar 15, 2026" {
		t.Fatalf("secondary = %q", got)
	}

	withoutRange := models.Listing{CreatedAt: now.Add(-2 * time.Hour)}
	if got := BuildCard(withoutRange, now).Secondary; got != "2 hours ago" {
		t.Fatalf("secondary = %q", got)
	}
}

func TestTimeSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"one minute", 90 * time.Second, "1 minute ago"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"one hour", 90 * time.Minute, "1 hour ago"},
		{"hours", 6 * time.Hour, "6 hours ago"},
		{"one day", 30 * time.Hour, "1 day ago"},
		{"days", 3 * 24 * time.Hour, "3 days ago"},
		{"weeks", 20 * 24 * time.Hour, "2 weeks ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeSince(now.Add(-tt.age), now); got != tt.want {
				t.Fatalf("TimeSince = %q, want %q", got, tt.want)
			}
		})
	}

	if got := TimeSince(time.Time{}, now); got != "" {
		t.Fatalf("zero time should render empty, got %q", got)
	}
}

func TestBuildCardAccent(t *testing.T) {
	tests := []struct {
		listingType string
		want        string
	}{
		{models.TypeSale, "blue"},
		{models.TypeRent, "green"},
		{models.TypeRequest, "purple"},
	}
	for _, tt := range tests {
		card := BuildCard(models.Listing{Type: tt.listingType}, time.Now())
		if card.Accent != tt.want {
			t.Fatalf("accent for %q = %q, want %q", tt.listingType, card.Accent, tt.want)
		}
	}
}

func TestBuildCardsPreservesOrder(t *testing.T) {
	listings := []models.Listing{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
	}
	cards := BuildCards(listings, time.Now())
	if len(cards) != 2 || cards[0].ID != "a" || cards[1].ID != "b" {
		t.Fatalf("cards = %+v", cards)
	}
}
