// Package generator builds typing text sequences.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/vocab"
)

// Generator produces randomized typing text.
type Generator struct {
	rnd   *rand.Rand
	vocab vocab.Set
}

// New returns a Generator drawing from set. A nil src seeds from the current time.
// Empty vocabularies are rejected here so that Generate never fails.
func New(set vocab.Set, src rand.Source) (*Generator, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rnd: rand.New(src), vocab: set}, nil
}

// Generate returns practice text for mode. Quotes ignore count and return one
// complete quote; other modes draw count words uniformly with replacement.
func (g *Generator) Generate(mode model.Mode, count int) string {
	entries := g.vocab.For(mode)
	if mode == model.ModeQuotes {
		return entries[g.rnd.Intn(len(entries))]
	}
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		words = append(words, entries[g.rnd.Intn(len(entries))])
	}
	return strings.Join(words, " ")
}
