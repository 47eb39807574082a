// Package session implements the state machine of a single typing attempt.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/stats"
)

// Session is one attempt from Idle through Running to Finished. It is not
// safe for concurrent use; callers serialize access.
//
// errorPositions is append-only: an index stays recorded after the user
// corrects it. Correct and incorrect counts are rescanned from the current
// input on every event.
type Session struct {
	id     string
	status model.Status
	mode   model.Mode
	text   []rune

	input          []rune
	errorPositions map[int]struct{}
	stats          model.Stats
	samples        []model.Stats

	timeLimit     int
	timeRemaining int
	startedAt     time.Time
}

// New returns an Idle session for text.
func New(text string, mode model.Mode, timeLimit int) *Session {
	return &Session{
		id:             uuid.New().String(),
		status:         model.StatusIdle,
		mode:           mode,
		text:           []rune(text),
		errorPositions: map[int]struct{}{},
		stats:          model.BaselineStats(),
		timeLimit:      timeLimit,
		timeRemaining:  timeLimit,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Status returns the current lifecycle state.
func (s *Session) Status() model.Status {
	return s.status
}

// Start moves an Idle session to Running. It reports whether it did.
func (s *Session) Start(now time.Time) bool {
	if s.status != model.StatusIdle {
		return false
	}
	s.status = model.StatusRunning
	s.startedAt = now
	s.timeRemaining = s.timeLimit
	return true
}

// Submit replaces the typed input. The first input of an Idle session starts
// it; input to a Finished session is ignored. Submit reports whether the
// session changed.
func (s *Session) Submit(input string, now time.Time) bool {
	switch s.status {
	case model.StatusFinished:
		return false
	case model.StatusIdle:
		s.Start(now)
	}

	s.input = []rune(input)
	correct, incorrect := 0, 0
	for i, r := range s.input {
		if i >= len(s.text) {
			break
		}
		if r == s.text[i] {
			correct++
			continue
		}
		incorrect++
		s.errorPositions[i] = struct{}{}
	}

	s.stats = stats.Compute(correct, incorrect, now.Sub(s.startedAt).Seconds())
	if len(s.input) >= len(s.text) {
		s.status = model.StatusFinished
		s.samples = append(s.samples, s.stats)
	}
	return true
}

// Tick advances the countdown by one second. Stats are refreshed from the
// current counts unless the countdown expires, in which case the session
// finishes with the stats it last computed. Tick reports whether the session
// finished.
func (s *Session) Tick() bool {
	if s.status != model.StatusRunning {
		return false
	}
	s.timeRemaining--
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.status = model.StatusFinished
		return true
	}
	elapsed := float64(s.timeLimit - s.timeRemaining)
	s.stats = stats.Compute(s.stats.CorrectChars, s.stats.IncorrectChars, elapsed)
	s.samples = append(s.samples, s.stats)
	return false
}

// Snapshot returns a copy of the session's observable state.
func (s *Session) Snapshot() model.Snapshot {
	positions := make([]int, 0, len(s.errorPositions))
	for p := range s.errorPositions {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	samples := make([]model.Stats, len(s.samples))
	copy(samples, s.samples)
	return model.Snapshot{
		ID:             s.id,
		Status:         s.status,
		Text:           string(s.text),
		UserInput:      string(s.input),
		CurrentIndex:   len(s.input),
		ErrorPositions: positions,
		Stats:          s.stats,
		TimeLimit:      s.timeLimit,
		TimeRemaining:  s.timeRemaining,
		Mode:           s.mode,
		Samples:        samples,
	}
}
