package vocab

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/typemaster/internal/model"
)

// FilterFunc returns true when an entry should be kept.
type FilterFunc func(string) bool

// FilterForMode returns the entry filter for a mode's vocabulary.
func FilterForMode(mode model.Mode) FilterFunc {
	switch mode {
	case model.ModeQuotes:
		return filterSentence
	default:
		return filterToken
	}
}

// Apply keeps the entries accepted by f and returns how many were dropped.
func (f FilterFunc) Apply(entries []string) ([]string, int) {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if f(e) {
			kept = append(kept, e)
		}
	}
	return kept, len(entries) - len(kept)
}

func filterToken(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func filterSentence(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	for _, r := range line {
		if r != ' ' && !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
