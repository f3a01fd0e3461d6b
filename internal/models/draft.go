package models

// Draft is the per-session editor state: the not-yet-submitted listing
// fields plus the active tab and the existing-item selection used by the
// update/delete/mark-complete tabs.
type Draft struct {
	Tab               string     `json:"tab"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Price             string     `json:"price"`
	ImageURL          string     `json:"image_url"`
	Category          string     `json:"category"`
	Categories        []string   `json:"categories"`
	Urgent            bool       `json:"urgent"`
	AvailabilityDates *DateRange `json:"availability_dates,omitempty"`
	SelectedID        string     `json:"selected_id"`
	SelectedType      string     `json:"selected_type"`
}

// Reset clears every field except the active tab.
func (d *Draft) Reset() {
	*d = Draft{Tab: d.Tab}
}

// ApplyListing overwrites the draft fields from an existing listing,
// discarding any in-progress edits.
func (d *Draft) ApplyListing(l Listing, price string) {
	d.Type = NormalizeListingType(l.Type)
	d.Title = l.Title
	d.Description = l.Description
	d.Price = price
	d.ImageURL = l.ImageURL
	d.Category = l.Category
	d.Categories = append([]string(nil), l.Categories...)
	d.Urgent = l.Urgent
	d.AvailabilityDates = l.AvailabilityDates
	d.SelectedID = l.ID
	d.SelectedType = NormalizeListingType(l.Type)
}
