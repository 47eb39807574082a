package stats

import (
	"testing"

	"github.com/verte-zerg/typemaster/internal/model"
)

func TestComputeExample(t *testing.T) {
	got := Compute(2, 1, 2)
	want := model.Stats{
		WPM:            12,
		RawWPM:         18,
		Accuracy:       67,
		CorrectChars:   2,
		IncorrectChars: 1,
		TotalChars:     3,
		TimeElapsed:    2,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeZeroElapsed(t *testing.T) {
	got := Compute(10, 0, 0)
	if got.WPM != 0 || got.RawWPM != 0 {
		t.Fatalf("expected zero speed without elapsed time, got %+v", got)
	}
	if got.Accuracy != 100 {
		t.Fatalf("expected 100 accuracy, got %d", got.Accuracy)
	}
}

func TestComputeBaseline(t *testing.T) {
	if got := Compute(0, 0, 0); got != model.BaselineStats() {
		t.Fatalf("expected baseline, got %+v", got)
	}
}

func TestComputeRoundsHalfAwayFromZero(t *testing.T) {
	// 1 of 8 correct is 12.5%.
	if got := Compute(1, 7, 60).Accuracy; got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	// 25 correct over two minutes is 2.5 WPM.
	if got := Compute(25, 0, 120).WPM; got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestComputeProperties(t *testing.T) {
	for correct := 0; correct <= 40; correct += 3 {
		for incorrect := 0; incorrect <= 40; incorrect += 5 {
			for _, elapsed := range []float64{0.5, 1, 7, 15, 59.9, 120} {
				s := Compute(correct, incorrect, elapsed)
				if s.WPM > s.RawWPM {
					t.Fatalf("wpm %d > raw %d for %d/%d/%v", s.WPM, s.RawWPM, correct, incorrect, elapsed)
				}
				if s.Accuracy < 0 || s.Accuracy > 100 {
					t.Fatalf("accuracy out of range: %d", s.Accuracy)
				}
				if again := Compute(correct, incorrect, elapsed); again != s {
					t.Fatalf("compute is not deterministic: %+v vs %+v", s, again)
				}
			}
		}
	}
}

func TestRatingThresholds(t *testing.T) {
	cases := map[int]string{
		0:   "Getting Started!",
		24:  "Getting Started!",
		25:  "Keep Practicing!",
		40:  "Good Job!",
		60:  "Excellent!",
		80:  "Outstanding!",
		140: "Outstanding!",
	}
	for wpm, want := range cases {
		if got := Rating(wpm); got != want {
			t.Fatalf("Rating(%d) = %q, want %q", wpm, got, want)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSpeedSeriesSmoothsTrend(t *testing.T) {
	samples := []model.Stats{{WPM: 10, RawWPM: 12}, {WPM: 20, RawWPM: 22}, {WPM: 30, RawWPM: 30}}
	series := SpeedSeries(samples)
	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}
	if series[1].Values[0] != 12 {
		t.Fatalf("unexpected raw series: %v", series[1].Values)
	}
	want := []float64{10, 15, 20}
	for i, v := range want {
		if series[2].Values[i] != v {
			t.Fatalf("trend index %d: expected %v, got %v", i, v, series[2].Values[i])
		}
	}
}

func TestSparklineFlatAndRange(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
}
