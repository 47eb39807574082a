package vocab

import (
	"testing"

	"github.com/verte-zerg/typemaster/internal/model"
)

func TestFilterTokenModes(t *testing.T) {
	for _, mode := range []model.Mode{model.ModeWords, model.ModeProgramming} {
		filter := FilterForMode(mode)
		if !filter("forEach") {
			t.Fatalf("expected forEach to pass %s filter", mode)
		}
		for _, word := range []string{"", "two words", "tab\there", "bell\a"} {
			if filter(word) {
				t.Fatalf("expected %q to be rejected for %s", word, mode)
			}
		}
	}
}

func TestFilterQuotes(t *testing.T) {
	filter := FilterForMode(model.ModeQuotes)
	if !filter("Stay hungry, stay foolish.") {
		t.Fatalf("expected sentence to pass quotes filter")
	}
	if filter("   ") {
		t.Fatalf("expected blank line to be rejected")
	}
	if filter("tab\tinside") {
		t.Fatalf("expected tab to be rejected")
	}
}

func TestFilterApplyCountsDropped(t *testing.T) {
	kept, dropped := FilterForMode(model.ModeWords).Apply([]string{"one", "two three", "four"})
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
	if len(kept) != 2 || kept[0] != "one" || kept[1] != "four" {
		t.Fatalf("unexpected kept entries: %v", kept)
	}
}
