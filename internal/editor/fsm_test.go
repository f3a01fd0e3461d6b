package editor

import (
	"errors"
	"testing"

	"campusmarket/internal/models"
)

func TestSwitchTabClearsDraft(t *testing.T) {
	d := models.Draft{
		Tab:         TabUpdate,
		Type:        models.TypeSale,
		Title:       "Mini fridge",
		Description: "barely used",
		Price:       "45",
		ImageURL:    "https://img/x.jpg",
		Urgent:      true,
		Categories:  []string{"appliances"},
		SelectedID:  "abc123",
	}

	if err := SwitchTab(&d, TabUpload); err != nil {
		t.Fatalf("SwitchTab: %v", err)
	}
	if d.Tab != TabUpload {
		t.Fatalf("tab = %q", d.Tab)
	}
	if d.Title != "" || d.Description != "" || d.Price != "" || d.ImageURL != "" ||
		d.Urgent || d.Categories != nil || d.SelectedID != "" || d.Type != "" {
		t.Fatalf("draft not cleared: %+v", d)
	}
}

func TestSwitchTabAnyToAny(t *testing.T) {
	tabs := []string{TabUpload, TabUpdate, TabDelete, TabMarkComplete}
	for _, from := range tabs {
		for _, to := range tabs {
			d := models.Draft{Tab: from, SelectedID: "stale"}
			if err := SwitchTab(&d, to); err != nil {
				t.Fatalf("SwitchTab(%s -> %s): %v", from, to, err)
			}
			if d.SelectedID != "" {
				t.Fatalf("SwitchTab(%s -> %s) kept selection", from, to)
			}
		}
	}
}

func TestSwitchTabUnknown(t *testing.T) {
	d := models.Draft{Tab: TabUpload, Title: "keep me"}
	if err := SwitchTab(&d, "publish"); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("expected ErrUnknownTab, got %v", err)
	}
	if d.Title != "keep me" {
		t.Fatal("draft mutated on invalid tab")
	}
}

func TestNeedsSelection(t *testing.T) {
	if NeedsSelection(TabUpload) {
		t.Fatal("upload should not need a selection")
	}
	for _, tab := range []string{TabUpdate, TabDelete, TabMarkComplete} {
		if !NeedsSelection(tab) {
			t.Fatalf("%s should need a selection", tab)
		}
	}
}
