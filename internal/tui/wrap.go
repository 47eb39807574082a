package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes styles each target rune from the typed input. Positions in
// audited that now match are shown as corrected.
func buildStyledRunes(targetRunes, inputRunes []rune, audited map[int]bool, cursorIndex int) []styledRune {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		typed := i < len(inputRunes)
		if typed {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case inputRunes[i] == target && audited[i]:
				style = correctedStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if target != ' ' {
			if currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			} else {
				style = pendingStyle
			}
		}
		if i == cursorIndex && i >= len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

// auditedSet indexes a snapshot's error positions.
func auditedSet(positions []int) map[int]bool {
	set := make(map[int]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 {
		return nil
	}
	if cursorIndex < 0 {
		return &words[0]
	}
	wordIdx := -1
	for i, w := range words {
		if cursorIndex >= w.start && cursorIndex < w.end {
			wordIdx = i
			break
		}
		if cursorIndex < w.start {
			wordIdx = i
			break
		}
	}
	if wordIdx == -1 {
		return &words[len(words)-1]
	}
	return &words[wordIdx]
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrappedLine is one display line; start is the target index of its first rune.
type wrappedLine struct {
	start int
	runes []styledRune
}

// wrapLines breaks runes into lines no wider than width, breaking at spaces.
// A space that would overflow is dropped from display. Words wider than a
// line are split.
func wrapLines(runes []styledRune, width int) []wrappedLine {
	if width <= 0 {
		return []wrappedLine{{runes: runes}}
	}
	var lines []wrappedLine
	line := wrappedLine{}
	lineWidth := 0
	flush := func(next int) {
		lines = append(lines, line)
		line = wrappedLine{start: next}
		lineWidth = 0
	}

	for i := 0; i < len(runes); {
		if runes[i].isSpace {
			if lineWidth+runes[i].width > width {
				flush(i + 1)
			} else {
				line.runes = append(line.runes, runes[i])
				lineWidth += runes[i].width
			}
			i++
			continue
		}
		end := i
		for end < len(runes) && !runes[end].isSpace {
			end++
		}
		word := runes[i:end]
		if lineWidth > 0 && lineWidth+lineWidthOf(word) > width {
			flush(i)
		}
		for _, item := range word {
			if lineWidth > 0 && lineWidth+item.width > width {
				flush(line.start + len(line.runes))
			}
			line.runes = append(line.runes, item)
			lineWidth += item.width
		}
		i = end
	}
	if len(line.runes) > 0 || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// lineForIndex returns the line holding target index idx.
func lineForIndex(lines []wrappedLine, idx int) int {
	found := 0
	for i, line := range lines {
		if line.start > idx {
			break
		}
		found = i
	}
	return found
}

// visibleWindow picks at most maxLines lines, keeping one line of context
// above the cursor line.
func visibleWindow(lines []wrappedLine, cursorIndex, maxLines int) (int, int) {
	if maxLines <= 0 || len(lines) <= maxLines {
		return 0, len(lines)
	}
	from := 0
	if cursorIndex >= 0 {
		from = lineForIndex(lines, cursorIndex) - 1
	}
	if from < 0 {
		from = 0
	}
	to := from + maxLines
	if to > len(lines) {
		to = len(lines)
		from = to - maxLines
	}
	return from, to
}

func renderLines(lines []wrappedLine) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderStyledRunes(line.runes)
	}
	return strings.Join(rendered, "\n")
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}
