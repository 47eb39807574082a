package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typemaster/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "typemaster.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return s
}

func TestAddAndListEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	added, err := s.AddEntries(ctx, model.ModeWords, []string{"alpha", "beta", "alpha"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 new entries, got %d", added)
	}

	added, err = s.AddEntries(ctx, model.ModeWords, []string{"beta", "gamma"})
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 new entry, got %d", added)
	}

	got, err := s.ListEntries(ctx, model.ModeWords)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAddEntriesRejectsUnknownMode(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.AddEntries(context.Background(), model.Mode("haiku"), []string{"x"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestModesAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.AddEntries(ctx, model.ModeQuotes, []string{"To be or not to be."}); err != nil {
		t.Fatalf("add quotes: %v", err)
	}
	if _, err := s.AddEntries(ctx, model.ModeProgramming, []string{"func", "defer"}); err != nil {
		t.Fatalf("add programming: %v", err)
	}

	words, err := s.ListEntries(ctx, model.ModeWords)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no word entries, got %v", words)
	}

	counts, err := s.CountByMode(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := []ModeCount{
		{Mode: model.ModeWords, Count: 0},
		{Mode: model.ModeProgramming, Count: 2},
		{Mode: model.ModeQuotes, Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %v, got %v", want, counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, counts)
		}
	}
}

func TestClearModeAndLoadCustom(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.AddEntries(ctx, model.ModeWords, []string{"one", "two"}); err != nil {
		t.Fatalf("add words: %v", err)
	}
	if _, err := s.AddEntries(ctx, model.ModeProgramming, []string{"chan"}); err != nil {
		t.Fatalf("add programming: %v", err)
	}

	removed, err := s.ClearMode(ctx, model.ModeWords)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	custom, err := s.LoadCustom(ctx)
	if err != nil {
		t.Fatalf("load custom: %v", err)
	}
	if _, ok := custom[model.ModeWords]; ok {
		t.Fatalf("expected no words after clear, got %v", custom[model.ModeWords])
	}
	if got := custom[model.ModeProgramming]; len(got) != 1 || got[0] != "chan" {
		t.Fatalf("expected [chan], got %v", got)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typemaster.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.AddEntries(ctx, model.ModeWords, []string{"persist"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			t.Errorf("close: %v", cerr)
		}
	}()
	got, err := s.ListEntries(ctx, model.ModeWords)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0] != "persist" {
		t.Fatalf("expected [persist], got %v", got)
	}
}
