package stats

import (
	"sort"

	"github.com/verte-zerg/typemaster/internal/model"
)

// CharMiss counts how often a target character was mistyped.
type CharMiss struct {
	Char  string
	Count int
}

// MissedChars returns the top n target characters at the recorded error
// positions, most missed first. Ties are broken by character.
func MissedChars(text string, errorPositions []int, n int) []CharMiss {
	if n <= 0 || len(errorPositions) == 0 {
		return nil
	}
	target := []rune(text)
	counts := map[string]int{}
	for _, pos := range errorPositions {
		if pos < 0 || pos >= len(target) {
			continue
		}
		counts[charLabel(target[pos])]++
	}
	items := make([]CharMiss, 0, len(counts))
	for ch, count := range counts {
		items = append(items, CharMiss{Char: ch, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// MissedCharsForSnapshot is MissedChars over a session snapshot.
func MissedCharsForSnapshot(snap model.Snapshot, n int) []CharMiss {
	return MissedChars(snap.Text, snap.ErrorPositions, n)
}

func charLabel(r rune) string {
	if r == ' ' {
		return "<space>"
	}
	return string(r)
}
