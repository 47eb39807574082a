package vocab

import (
	"fmt"

	"github.com/verte-zerg/typemaster/internal/model"
)

// Set holds one vocabulary per mode.
type Set struct {
	Words       []string
	Programming []string
	Quotes      []string
}

// Builtin returns the vocabularies shipped with the binary.
func Builtin() Set {
	return Set{
		Words:       append([]string(nil), commonWords...),
		Programming: append([]string(nil), programmingWords...),
		Quotes:      append([]string(nil), quotes...),
	}
}

// For returns the vocabulary for mode.
func (s Set) For(mode model.Mode) []string {
	switch mode {
	case model.ModeProgramming:
		return s.Programming
	case model.ModeQuotes:
		return s.Quotes
	default:
		return s.Words
	}
}

// Validate rejects a set with any empty vocabulary.
func (s Set) Validate() error {
	for _, mode := range model.Modes {
		if len(s.For(mode)) == 0 {
			return fmt.Errorf("%s vocabulary is empty", mode)
		}
	}
	return nil
}

// Overlay replaces base vocabularies with non-empty custom ones.
func Overlay(base Set, custom map[model.Mode][]string) Set {
	out := base
	for mode, entries := range custom {
		if len(entries) == 0 {
			continue
		}
		copied := append([]string(nil), entries...)
		switch mode {
		case model.ModeWords:
			out.Words = copied
		case model.ModeProgramming:
			out.Programming = copied
		case model.ModeQuotes:
			out.Quotes = copied
		}
	}
	return out
}
