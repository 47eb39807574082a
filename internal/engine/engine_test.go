package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typemaster/internal/countdown"
	"github.com/verte-zerg/typemaster/internal/generator"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/vocab"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, clockwork.FakeClock) {
	t.Helper()
	gen, err := generator.New(vocab.Builtin(), rand.NewSource(7))
	require.NoError(t, err)
	clock := clockwork.NewFakeClock()
	e := New(gen, append([]Option{WithClock(clock)}, opts...)...)
	t.Cleanup(e.Close)
	return e, clock
}

// activeTimer reads the countdown handle on the loop goroutine.
func activeTimer(e *Engine) *countdown.Handle {
	var h *countdown.Handle
	e.do(func() { h = e.timer })
	return h
}

func tickOnce(t *testing.T, e *Engine, clock clockwork.FakeClock, wantRemaining int) {
	t.Helper()
	clock.Advance(countdown.Interval)
	require.Eventually(t, func() bool {
		return e.Snapshot().TimeRemaining == wantRemaining
	}, time.Second, time.Millisecond)
}

func TestNewEngineHoldsIdleSession(t *testing.T) {
	e, _ := newTestEngine(t, WithTimeLimit(30), WithWordCount(10))
	snap := e.Snapshot()

	assert.Equal(t, model.StatusIdle, snap.Status)
	assert.Equal(t, model.ModeWords, snap.Mode)
	assert.Equal(t, 30, snap.TimeLimit)
	assert.Equal(t, 30, snap.TimeRemaining)
	assert.Equal(t, model.BaselineStats(), snap.Stats)
	assert.NotEmpty(t, snap.Text)
	assert.Nil(t, activeTimer(e))
}

func TestCountdownFinishesSessionAtZero(t *testing.T) {
	e, clock := newTestEngine(t, WithTimeLimit(15))

	snap := e.Start()
	require.Equal(t, model.StatusRunning, snap.Status)
	require.NotNil(t, activeTimer(e))

	for want := 14; want >= 0; want-- {
		tickOnce(t, e, clock, want)
	}

	snap = e.Snapshot()
	assert.Equal(t, model.StatusFinished, snap.Status)
	assert.Equal(t, 0, snap.TimeRemaining)
	assert.Nil(t, activeTimer(e))

	clock.Advance(3 * countdown.Interval)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, e.Snapshot().TimeRemaining)
	assert.Equal(t, model.StatusFinished, e.Snapshot().Status)
}

func TestTicksRecomputeStatsWhileRunning(t *testing.T) {
	e, clock := newTestEngine(t, WithTimeLimit(60))
	text := e.Snapshot().Text

	e.Submit(text[:5])
	tickOnce(t, e, clock, 59)

	snap := e.Snapshot()
	assert.Equal(t, 5, snap.Stats.CorrectChars)
	assert.Equal(t, float64(1), snap.Stats.TimeElapsed)
	assert.Equal(t, 60, snap.Stats.WPM)
	assert.NotEmpty(t, snap.Samples)
}

func TestFirstSubmitStartsCountdown(t *testing.T) {
	e, _ := newTestEngine(t)
	text := e.Snapshot().Text

	snap := e.Submit(text[:1])

	assert.Equal(t, model.StatusRunning, snap.Status)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.NotNil(t, activeTimer(e))
}

func TestCompletionCancelsCountdown(t *testing.T) {
	e, clock := newTestEngine(t, WithWordCount(3))
	text := e.Snapshot().Text

	e.Submit(text[:1])
	h := activeTimer(e)
	require.NotNil(t, h)

	snap := e.Submit(text)
	assert.Equal(t, model.StatusFinished, snap.Status)
	assert.Equal(t, 100, snap.Stats.Accuracy)
	assert.True(t, h.Cancelled())
	assert.Nil(t, activeTimer(e))

	clock.Advance(countdown.Interval)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, snap.TimeRemaining, e.Snapshot().TimeRemaining)
}

func TestSubmitIgnoredAfterFinish(t *testing.T) {
	e, _ := newTestEngine(t, WithWordCount(2))
	text := e.Snapshot().Text
	finished := e.Submit(text)
	require.Equal(t, model.StatusFinished, finished.Status)

	snap := e.Submit(text + "extra")
	assert.Equal(t, finished, snap)
}

func TestResetWhileRunning(t *testing.T) {
	e, clock := newTestEngine(t, WithTimeLimit(30))
	before := e.Snapshot()
	e.Submit("zzz")
	tickOnce(t, e, clock, 29)
	h := activeTimer(e)
	require.NotNil(t, h)

	snap := e.Reset()

	assert.Equal(t, model.StatusIdle, snap.Status)
	assert.NotEqual(t, before.ID, snap.ID)
	assert.Equal(t, 30, snap.TimeRemaining)
	assert.Equal(t, model.BaselineStats(), snap.Stats)
	assert.Empty(t, snap.UserInput)
	assert.Empty(t, snap.ErrorPositions)
	assert.Empty(t, snap.Samples)
	assert.True(t, h.Cancelled())
	assert.Nil(t, activeTimer(e))

	clock.Advance(countdown.Interval)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 30, e.Snapshot().TimeRemaining)
}

func TestResetAfterFinishStartsOver(t *testing.T) {
	e, _ := newTestEngine(t, WithWordCount(2))
	e.Submit(e.Snapshot().Text)

	snap := e.Reset()
	assert.Equal(t, model.StatusIdle, snap.Status)

	snap = e.Start()
	assert.Equal(t, model.StatusRunning, snap.Status)
	assert.NotNil(t, activeTimer(e))
}

func TestSetTimeLimit(t *testing.T) {
	e, _ := newTestEngine(t)
	before := e.Snapshot()

	snap := e.SetTimeLimit(30)
	assert.Equal(t, 30, snap.TimeLimit)
	assert.Equal(t, 30, snap.TimeRemaining)
	assert.Equal(t, before.Text, snap.Text)
	assert.NotEqual(t, before.ID, snap.ID)

	assert.Equal(t, snap, e.SetTimeLimit(0))
	assert.Equal(t, snap, e.SetTimeLimit(-5))

	e.Start()
	running := e.SetTimeLimit(120)
	assert.Equal(t, 30, running.TimeLimit)
	assert.Equal(t, model.StatusRunning, running.Status)
}

func TestSettingsWithCurrentValuesIgnoredWhileRunning(t *testing.T) {
	e, _ := newTestEngine(t)
	started := e.Start()

	snap := e.SetTimeLimit(started.TimeLimit)
	assert.Equal(t, model.StatusRunning, snap.Status)
	assert.Equal(t, started.ID, snap.ID)

	snap = e.SetMode(started.Mode)
	assert.Equal(t, model.StatusRunning, snap.Status)
	assert.Equal(t, started.ID, snap.ID)
	assert.NotNil(t, activeTimer(e))
}

func TestSetTimeLimitAfterFinishRegeneratesSession(t *testing.T) {
	e, _ := newTestEngine(t, WithWordCount(2))
	e.Submit(e.Snapshot().Text)

	snap := e.SetTimeLimit(15)
	assert.Equal(t, model.StatusIdle, snap.Status)
	assert.Equal(t, 15, snap.TimeRemaining)
	assert.Empty(t, snap.UserInput)
}

func TestSetMode(t *testing.T) {
	e, _ := newTestEngine(t)

	snap := e.SetMode(model.ModeQuotes)
	assert.Equal(t, model.ModeQuotes, snap.Mode)
	assert.Contains(t, vocab.Builtin().Quotes, snap.Text)

	assert.Equal(t, snap, e.SetMode(model.Mode("klingon")))

	e.Start()
	running := e.SetMode(model.ModeProgramming)
	assert.Equal(t, model.ModeQuotes, running.Mode)
	assert.Equal(t, snap.Text, running.Text)

	e.Reset()
	assert.Equal(t, model.ModeQuotes, e.Snapshot().Mode)
}

func TestSubscribeReceivesLatestSnapshot(t *testing.T) {
	e, _ := newTestEngine(t)
	ch, cancel := e.Subscribe()

	first := <-ch
	assert.Equal(t, model.StatusIdle, first.Status)

	e.Submit("a")
	e.Submit("ab")

	select {
	case snap := <-ch:
		assert.Equal(t, "ab", snap.UserInput)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot after submit")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestSubscribeSeesTicks(t *testing.T) {
	e, clock := newTestEngine(t, WithTimeLimit(15))
	ch, cancel := e.Subscribe()
	defer cancel()
	<-ch

	e.Start()
	<-ch
	clock.Advance(countdown.Interval)

	require.Eventually(t, func() bool {
		select {
		case snap := <-ch:
			return snap.TimeRemaining == 14
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

func TestCloseCancelsCountdownAndSubscriptions(t *testing.T) {
	e, _ := newTestEngine(t)
	ch, _ := e.Subscribe()
	<-ch
	e.Start()
	h := activeTimer(e)
	require.NotNil(t, h)

	e.Close()
	e.Close()

	assert.True(t, h.Cancelled())
	for range ch {
	}

	last := e.Snapshot()
	assert.Equal(t, model.StatusRunning, last.Status)
	assert.Equal(t, last, e.Reset())

	late, _ := e.Subscribe()
	_, open := <-late
	assert.False(t, open)
}
