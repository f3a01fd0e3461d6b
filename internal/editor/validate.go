package editor

import (
	"errors"
	"fmt"

	"campusmarket/internal/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNotSignedIn   = errors.New("you need to be signed in to submit")
	ErrNoSelection   = errors.New("pick one of your items first")
)

// ValidateDraft is the gate in front of every network mutation: a
// non-empty title, a finite non-negative price, and a signed-in user.
// The parsed price is returned so the caller submits exactly the value
// that was validated.
func ValidateDraft(d models.Draft, user models.User) (float64, error) {
	if d.Title == "" {
		return 0, ErrTitleRequired
	}
	price, err := ParsePrice(d.Price)
	if err != nil {
		if errors.Is(err, ErrNegativePrice) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if user.UID == "" {
		return 0, ErrNotSignedIn
	}
	return price, nil
}
