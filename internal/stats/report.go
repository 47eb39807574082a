package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/typemaster/internal/model"
)

// ResultRows returns the label/value pairs shown for a session result.
func ResultRows(snap model.Snapshot) [][]string {
	s := snap.Stats
	return [][]string{
		{"Mode", snap.Mode.Label()},
		{"WPM", fmt.Sprintf("%d", s.WPM)},
		{"Raw WPM", fmt.Sprintf("%d", s.RawWPM)},
		{"Accuracy", fmt.Sprintf("%d%%", s.Accuracy)},
		{"Correct", fmt.Sprintf("%d", s.CorrectChars)},
		{"Incorrect", fmt.Sprintf("%d", s.IncorrectChars)},
		{"Time", fmt.Sprintf("%.0fs", s.TimeElapsed)},
	}
}

// RenderResult prints a finished session's summary table.
func RenderResult(w io.Writer, snap model.Snapshot) error {
	if snap.Status != model.StatusFinished {
		_, err := fmt.Fprintln(w, "No finished session.")
		return err
	}
	if _, err := fmt.Fprintln(w, Rating(snap.Stats.WPM)); err != nil {
		return err
	}
	for _, line := range formatTable([]string{"Metric", "Value"}, ResultRows(snap), map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if wpm, _ := SampleSeries(snap.Samples); len(wpm) > 1 {
		if _, err := fmt.Fprintf(w, "Speed: %s\n", Sparkline(MovingAverage(wpm, TrendWindow))); err != nil {
			return err
		}
	}
	if misses := MissedCharsForSnapshot(snap, 5); len(misses) > 0 {
		parts := make([]string, 0, len(misses))
		for _, m := range misses {
			parts = append(parts, fmt.Sprintf("%s×%d", m.Char, m.Count))
		}
		if _, err := fmt.Fprintf(w, "Missed: %s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
