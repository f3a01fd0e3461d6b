package editor

import (
	"context"
	"testing"

	"campusmarket/internal/models"
)

func TestMemoryStoreDefaultDraft(t *testing.T) {
	store := NewMemoryStore()

	d, err := store.Draft(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if d.Tab != TabUpload {
		t.Fatalf("default tab = %q, want %q", d.Tab, TabUpload)
	}
	if d.Title != "" || d.SelectedID != "" {
		t.Fatalf("default draft not empty: %+v", d)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	in := models.Draft{Tab: TabUpdate, Title: "Couch", Price: "80", SelectedID: "item9"}

	if err := store.SaveDraft(context.Background(), "s1", in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	out, err := store.Draft(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if out.Title != in.Title || out.SelectedID != in.SelectedID {
		t.Fatalf("draft = %+v", out)
	}

	// Sessions do not share drafts.
	other, err := store.Draft(context.Background(), "s2")
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if other.Title != "" {
		t.Fatalf("draft leaked across sessions: %+v", other)
	}
}

func TestSearchGenerationCounter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if gen, _ := store.SearchGeneration(ctx, "s1"); gen != 0 {
		t.Fatalf("initial generation = %d", gen)
	}
	for want := int64(1); want <= 3; want++ {
		gen, err := store.NextSearchGeneration(ctx, "s1")
		if err != nil {
			t.Fatalf("NextSearchGeneration: %v", err)
		}
		if gen != want {
			t.Fatalf("generation = %d, want %d", gen, want)
		}
	}
	if gen, _ := store.SearchGeneration(ctx, "s1"); gen != 3 {
		t.Fatalf("latest generation = %d, want 3", gen)
	}
	if gen, _ := store.SearchGeneration(ctx, "s2"); gen != 0 {
		t.Fatalf("counter leaked across sessions: %d", gen)
	}
}
