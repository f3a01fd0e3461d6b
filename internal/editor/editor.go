package editor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"campusmarket/internal/marketapi"
	"campusmarket/internal/models"
)

var (
	ErrUnknownField       = errors.New("unknown draft field")
	ErrInvalidListingType = errors.New("invalid listing type")
)

// ImageStorage is the object store that listing images go to before the
// JSON submission that references them.
type ImageStorage interface {
	Upload(ctx context.Context, data []byte, contentType, uid, filename string) (string, error)
	Delete(ctx context.Context, filename, uid string) error
}

// ImageUpload is a pending image attachment read off a multipart form.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Service drives the listing editor for one session at a time: tab
// switching, lazy item selection, field edits and the submit pipeline.
type Service struct {
	API    *marketapi.Client
	Store  Store
	Images ImageStorage
}

// Draft returns the session's current draft, defaulting to a blank Upload
// tab.
func (s *Service) Draft(ctx context.Context, sessionID string) (models.Draft, error) {
	return s.Store.Draft(ctx, sessionID)
}

// SwitchTab activates another editor tab and clears the draft.
func (s *Service) SwitchTab(ctx context.Context, sessionID, tab string) (models.Draft, error) {
	d, err := s.Store.Draft(ctx, sessionID)
	if err != nil {
		return models.Draft{}, err
	}
	if err := SwitchTab(&d, tab); err != nil {
		return models.Draft{}, err
	}
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return models.Draft{}, err
	}
	return d, nil
}

// Items returns the user's own items for the dropdown. The call happens
// only when the dropdown opens; nothing is prefetched.
func (s *Service) Items(ctx context.Context, user models.User, listingType string) ([]models.ItemRef, error) {
	return s.API.UserListings(ctx, listingType, user.UID)
}

// SelectItem fetches the full detail of an existing item and loads it into
// the draft, overwriting any in-progress edits.
func (s *Service) SelectItem(ctx context.Context, sessionID string, listingType, id string) (models.Draft, error) {
	d, err := s.Store.Draft(ctx, sessionID)
	if err != nil {
		return models.Draft{}, err
	}
	if !NeedsSelection(d.Tab) {
		return models.Draft{}, fmt.Errorf("tab %q takes no item selection", d.Tab)
	}
	listing, err := s.API.ListingDetails(ctx, listingType, id)
	if err != nil {
		return models.Draft{}, err
	}
	d.ApplyListing(listing, NormalizePrice(strconv.FormatFloat(listing.Price, 'f', -1, 64)))
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return models.Draft{}, err
	}
	return d, nil
}

// SetField applies one field edit to the draft. Price edits pass through
// the normalizer, mirroring the per-keystroke behavior of the form.
func (s *Service) SetField(ctx context.Context, sessionID, field, value string) (models.Draft, error) {
	d, err := s.Store.Draft(ctx, sessionID)
	if err != nil {
		return models.Draft{}, err
	}
	switch field {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "price":
		d.Price = NormalizePrice(value)
	case "type":
		t := models.NormalizeListingType(value)
		if !models.ValidListingType(t) {
			return models.Draft{}, fmt.Errorf("%w: %q", ErrInvalidListingType, value)
		}
		d.Type = t
	case "category":
		d.Category = value
	case "categories":
		d.Categories = splitCategories(value)
	case "urgent":
		d.Urgent = value == "true" || value == "1"
	case "availability_start", "availability_end":
		if err := setAvailability(&d, field, value); err != nil {
			return models.Draft{}, err
		}
	default:
		return models.Draft{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return models.Draft{}, err
	}
	return d, nil
}

// Submit runs the active tab's mutation for this draft. The validation
// gate comes first: on failure no network call of any kind is made and the
// draft is left untouched. An attached image is uploaded strictly before
// the JSON submission; if that upload fails the submission is abandoned.
func (s *Service) Submit(ctx context.Context, sessionID string, user models.User, image *ImageUpload) (string, error) {
	d, err := s.Store.Draft(ctx, sessionID)
	if err != nil {
		return "", err
	}

	switch d.Tab {
	case TabUpload:
		return s.submitUpload(ctx, sessionID, d, user, image)
	case TabUpdate:
		return s.submitUpdate(ctx, sessionID, d, user, image)
	case TabDelete:
		return s.submitDelete(ctx, sessionID, d, user)
	case TabMarkComplete:
		return s.submitMarkComplete(ctx, d, user)
	default:
		return "", ErrUnknownTab
	}
}

func (s *Service) submitUpload(ctx context.Context, sessionID string, d models.Draft, user models.User, image *ImageUpload) (string, error) {
	price, err := ValidateDraft(d, user)
	if err != nil {
		return "", err
	}
	listingType := models.NormalizeListingType(d.Type)
	if !models.ValidListingType(listingType) {
		return "", fmt.Errorf("%w: %q", ErrInvalidListingType, d.Type)
	}

	if image != nil {
		imageURL, err := s.Images.Upload(ctx, image.Data, image.ContentType, user.UID, image.Filename)
		if err != nil {
			return "", fmt.Errorf("image upload failed: %w", err)
		}
		d.ImageURL = imageURL
	}

	result, err := s.API.UploadListing(ctx, s.listingFrom(d, user, listingType, price))
	if err != nil {
		return "", err
	}

	d.Reset()
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return "", err
	}
	if result.Message != "" {
		return result.Message, nil
	}
	return "Listing uploaded successfully", nil
}

func (s *Service) submitUpdate(ctx context.Context, sessionID string, d models.Draft, user models.User, image *ImageUpload) (string, error) {
	if d.SelectedID == "" {
		return "", ErrNoSelection
	}
	price, err := ValidateDraft(d, user)
	if err != nil {
		return "", err
	}

	oldImageURL := ""
	if image != nil {
		oldImageURL = d.ImageURL
		imageURL, err := s.Images.Upload(ctx, image.Data, image.ContentType, user.UID, image.Filename)
		if err != nil {
			return "", fmt.Errorf("image upload failed: %w", err)
		}
		d.ImageURL = imageURL
	}

	if err := s.API.UpdateListing(ctx, d.SelectedID, s.listingFrom(d, user, d.SelectedType, price)); err != nil {
		return "", err
	}

	// Best effort: a leftover old image is an accepted inconsistency.
	if oldImageURL != "" {
		if filename := imageFilename(oldImageURL); filename != "" {
			_ = s.Images.Delete(ctx, filename, user.UID)
		}
	}

	d.Reset()
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return "", err
	}
	return "Listing updated successfully", nil
}

func (s *Service) submitDelete(ctx context.Context, sessionID string, d models.Draft, user models.User) (string, error) {
	if user.UID == "" {
		return "", ErrNotSignedIn
	}
	if d.SelectedID == "" {
		return "", ErrNoSelection
	}

	if err := s.API.DeleteListing(ctx, d.SelectedType, d.SelectedID, user.UID); err != nil {
		return "", err
	}

	d.Reset()
	if err := s.Store.SaveDraft(ctx, sessionID, d); err != nil {
		return "", err
	}
	return "Listing deleted successfully", nil
}

func (s *Service) submitMarkComplete(ctx context.Context, d models.Draft, user models.User) (string, error) {
	if user.UID == "" {
		return "", ErrNotSignedIn
	}
	if d.SelectedID == "" {
		return "", ErrNoSelection
	}

	if err := s.API.MarkComplete(ctx, d.SelectedType, d.SelectedID); err != nil {
		return "", err
	}
	return "Transaction marked complete", nil
}

func (s *Service) listingFrom(d models.Draft, user models.User, listingType string, price float64) models.Listing {
	return models.Listing{
		Title:             d.Title,
		Description:       d.Description,
		Price:             price,
		ImageURL:          d.ImageURL,
		Category:          d.Category,
		Categories:        d.Categories,
		Type:              listingType,
		Urgent:            d.Urgent,
		AvailabilityDates: d.AvailabilityDates,
		UserID:            user.UID,
		DisplayName:       user.DisplayName,
		Email:             user.Email,
	}
}

func splitCategories(value string) []string {
	var categories []string
	for _, c := range strings.Split(value, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

func setAvailability(d *models.Draft, field, value string) error {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}
	if d.AvailabilityDates == nil {
		d.AvailabilityDates = &models.DateRange{}
	}
	if field == "availability_start" {
		d.AvailabilityDates.Start = t
	} else {
		d.AvailabilityDates.End = t
	}
	return nil
}

// imageFilename extracts the stored object filename from a public image
// URL.
func imageFilename(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
