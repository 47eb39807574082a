package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, nil, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	target := []rune("a")
	input := []rune("a")
	cursorIndex := -1

	runes := buildStyledRunes(target, input, nil, cursorIndex)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, nil, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	input := []rune("o")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, nil, cursorIndex)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[1].s != currentWordStyle.Render("n") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	input := []rune("ax")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, nil, cursorIndex)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesCorrectedPosition(t *testing.T) {
	target := []rune("abc")
	input := []rune("abc")
	audited := auditedSet([]int{1})

	runes := buildStyledRunes(target, input, audited, -1)
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for untouched rune")
	}
	if runes[1].s != correctedStyle.Render("b") {
		t.Fatalf("expected corrected style for fixed mistake")
	}
	if runes[2].s != correctStyle.Render("c") {
		t.Fatalf("expected correct style for untouched rune")
	}
}

func TestBuildStyledRunesAuditedMismatchStaysIncorrect(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")
	audited := auditedSet([]int{1})

	runes := buildStyledRunes(target, input, audited, len(input))
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for current mismatch")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("one two three")
	runes := buildStyledRunes(target, nil, nil, -1)

	out := renderLines(wrapLines(runes, 8))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
}

func TestWrapLinesTracksStarts(t *testing.T) {
	target := []rune("aa bb cc")
	runes := buildStyledRunes(target, nil, nil, -1)

	lines := wrapLines(runes, 2)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	wantStarts := []int{0, 3, 6}
	for i, want := range wantStarts {
		if lines[i].start != want {
			t.Fatalf("line %d: expected start %d, got %d", i, want, lines[i].start)
		}
		if lineWidthOf(lines[i].runes) > 2 {
			t.Fatalf("line %d wider than 2", i)
		}
	}
	if got := lineForIndex(lines, 4); got != 1 {
		t.Fatalf("expected index 4 on line 1, got %d", got)
	}
}

func TestWrapLinesSplitsLongWords(t *testing.T) {
	runes := buildStyledRunes([]rune("abcdef"), nil, nil, -1)
	lines := wrapLines(runes, 4)
	if len(lines) != 2 || lines[1].start != 4 {
		t.Fatalf("expected split at 4, got %d lines", len(lines))
	}
}

func TestVisibleWindowFollowsCursor(t *testing.T) {
	lines := make([]wrappedLine, 10)
	for i := range lines {
		lines[i] = wrappedLine{start: i * 10}
	}

	if from, to := visibleWindow(lines, 0, 3); from != 0 || to != 3 {
		t.Fatalf("expected [0,3), got [%d,%d)", from, to)
	}
	if from, to := visibleWindow(lines, 55, 3); from != 4 || to != 7 {
		t.Fatalf("expected [4,7), got [%d,%d)", from, to)
	}
	if from, to := visibleWindow(lines, 99, 3); from != 7 || to != 10 {
		t.Fatalf("expected [7,10), got [%d,%d)", from, to)
	}
	if from, to := visibleWindow(lines, 55, 0); from != 0 || to != 10 {
		t.Fatalf("expected all lines, got [%d,%d)", from, to)
	}
}
