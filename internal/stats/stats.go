// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/typemaster/internal/model"
)

const (
	charsPerWord = 5.0
	sparkChars   = " .:-=+*#%@"
)

// Compute derives speed and accuracy from character counts and elapsed seconds.
// WPM counts only correct characters; raw WPM counts every scored character.
func Compute(correct, incorrect int, elapsedSeconds float64) model.Stats {
	total := correct + incorrect
	minutes := elapsedSeconds / 60
	out := model.Stats{
		Accuracy:       100,
		CorrectChars:   correct,
		IncorrectChars: incorrect,
		TotalChars:     total,
		TimeElapsed:    elapsedSeconds,
	}
	if minutes > 0 {
		out.RawWPM = int(math.Round((float64(total) / charsPerWord) / minutes))
		out.WPM = int(math.Round((float64(correct) / charsPerWord) / minutes))
	}
	if total > 0 {
		out.Accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return out
}

// Rating returns the headline label for a finished session's WPM.
func Rating(wpm int) string {
	switch {
	case wpm >= 80:
		return "Outstanding!"
	case wpm >= 60:
		return "Excellent!"
	case wpm >= 40:
		return "Good Job!"
	case wpm >= 25:
		return "Keep Practicing!"
	default:
		return "Getting Started!"
	}
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := seriesMinMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// SampleSeries splits per-second samples into WPM and raw WPM series.
func SampleSeries(samples []model.Stats) (wpm, raw []float64) {
	wpm = make([]float64, len(samples))
	raw = make([]float64, len(samples))
	for i, s := range samples {
		wpm[i] = float64(s.WPM)
		raw[i] = float64(s.RawWPM)
	}
	return wpm, raw
}

// TrendWindow is the number of samples averaged into the speed trend.
const TrendWindow = 5

// SpeedSeries returns the WPM, raw WPM and smoothed WPM trend series.
func SpeedSeries(samples []model.Stats) []Series {
	wpm, raw := SampleSeries(samples)
	return []Series{
		{Name: "WPM", Values: wpm},
		{Name: "Raw", Values: raw},
		{Name: "Trend", Values: MovingAverage(wpm, TrendWindow)},
	}
}

func seriesMinMax(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.IsInf(minVal, 1) {
		minVal = 0
	}
	if math.IsInf(maxVal, -1) {
		maxVal = 0
	}
	return minVal, maxVal
}
