package editor

import (
	"errors"

	"campusmarket/internal/models"
)

// Editor tabs. Exactly one is active at a time; earlier iterations of the
// pages tracked these as parallel booleans, which collapsed into this
// single tagged state.
const (
	TabUpload       = "upload"
	TabUpdate       = "update"
	TabDelete       = "delete"
	TabMarkComplete = "mark_complete"
)

var ErrUnknownTab = errors.New("unknown editor tab")

// tabs that operate on an existing item picked from the dropdown.
var needsSelection = map[string]struct{}{
	TabUpdate:       {},
	TabDelete:       {},
	TabMarkComplete: {},
}

// ValidTab reports whether tab names one of the four editor tabs.
func ValidTab(tab string) bool {
	switch tab {
	case TabUpload, TabUpdate, TabDelete, TabMarkComplete:
		return true
	}
	return false
}

// NeedsSelection reports whether the tab requires an existing-item pick
// before it can submit.
func NeedsSelection(tab string) bool {
	_, ok := needsSelection[tab]
	return ok
}

// SwitchTab moves the draft to another tab. Any tab is reachable from any
// other; the only transition effect is clearing the draft, so entering
// Upload always starts blank and entering the item-bound tabs drops any
// stale selection.
func SwitchTab(d *models.Draft, tab string) error {
	if !ValidTab(tab) {
		return ErrUnknownTab
	}
	d.Reset()
	d.Tab = tab
	return nil
}
