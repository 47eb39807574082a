// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a typing session.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
)

// Mode selects the vocabulary used to generate practice text.
type Mode string

const (
	ModeWords       Mode = "words"
	ModeProgramming Mode = "programming"
	ModeQuotes      Mode = "quotes"
)

// Modes lists every mode in selector order.
var Modes = []Mode{ModeWords, ModeProgramming, ModeQuotes}

// TimeLimits lists the selectable time limits in seconds.
var TimeLimits = []int{15, 30, 60, 120}

// DefaultWordCount is the number of words generated for Words and Programming.
const DefaultWordCount = 100

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWords:
		return ModeWords, nil
	case ModeProgramming:
		return ModeProgramming, nil
	case ModeQuotes:
		return ModeQuotes, nil
	default:
		return "", fmt.Errorf("unknown mode %q (available: words, programming, quotes)", s)
	}
}

// Label returns a display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeProgramming:
		return "Programming"
	case ModeQuotes:
		return "Quotes"
	default:
		return "Words"
	}
}

// Config defines practice settings.
type Config struct {
	Mode        Mode
	TimeLimit   int
	Words       int
	CustomVocab bool
}

// Stats is a derived snapshot of typing performance.
type Stats struct {
	WPM            int     `json:"wpm"`
	RawWPM         int     `json:"rawWpm"`
	Accuracy       int     `json:"accuracy"`
	CorrectChars   int     `json:"correctChars"`
	IncorrectChars int     `json:"incorrectChars"`
	TotalChars     int     `json:"totalChars"`
	TimeElapsed    float64 `json:"timeElapsed"`
}

// BaselineStats returns the stats of a session nobody has typed into.
func BaselineStats() Stats {
	return Stats{Accuracy: 100}
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	ID             string  `json:"id"`
	Status         Status  `json:"status"`
	Text           string  `json:"text"`
	UserInput      string  `json:"userInput"`
	CurrentIndex   int     `json:"currentIndex"`
	ErrorPositions []int   `json:"errorPositions"`
	Stats          Stats   `json:"stats"`
	TimeLimit      int     `json:"timeLimit"`
	TimeRemaining  int     `json:"timeRemaining"`
	Mode           Mode    `json:"mode"`
	Samples        []Stats `json:"samples"`
}
