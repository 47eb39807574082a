// Package engine serializes commands and countdown ticks against the active
// typing session.
package engine

import (
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/verte-zerg/typemaster/internal/countdown"
	"github.com/verte-zerg/typemaster/internal/generator"
	"github.com/verte-zerg/typemaster/internal/logger"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/session"
)

// Engine owns the single active Session and its countdown. Every mutation
// runs on one goroutine; callers interact through its methods.
type Engine struct {
	gen   *generator.Generator
	clock clockwork.Clock
	log   *logger.Logger

	words     int
	timeLimit int
	mode      model.Mode

	inbox     chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	mu     sync.RWMutex
	latest model.Snapshot

	// Owned by the loop goroutine.
	sess       *session.Session
	timer      *countdown.Handle
	timerFor   string
	lastStatus model.Status
	subs       map[int]chan model.Snapshot
	nextSub    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for timestamps and the countdown.
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the logger for session transitions.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithWordCount sets how many words Words and Programming texts contain.
func WithWordCount(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.words = n
		}
	}
}

// WithTimeLimit sets the initial time limit in seconds.
func WithTimeLimit(seconds int) Option {
	return func(e *Engine) {
		if seconds > 0 {
			e.timeLimit = seconds
		}
	}
}

// WithMode sets the initial text mode.
func WithMode(mode model.Mode) Option {
	return func(e *Engine) {
		if _, err := model.ParseMode(string(mode)); err == nil {
			e.mode = mode
		}
	}
}

// New creates an Engine holding a fresh Idle session and starts its loop.
// Call Close to stop it.
func New(gen *generator.Generator, opts ...Option) *Engine {
	e := &Engine{
		gen:       gen,
		clock:     clockwork.NewRealClock(),
		log:       logger.Discard(),
		words:     model.DefaultWordCount,
		timeLimit: 60,
		mode:      model.ModeWords,
		inbox:     make(chan func()),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		subs:      map[int]chan model.Snapshot{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sess = e.newSession("")
	e.afterChange()
	go e.loop()
	return e
}

// Close stops the loop, cancels any running countdown and closes all
// subscriptions. The last snapshot stays readable.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
		<-e.done
	})
}

// Snapshot returns the current state of the active session.
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// Start moves an Idle session to Running.
func (e *Engine) Start() model.Snapshot {
	return e.exec(func() bool {
		return e.sess.Start(e.clock.Now())
	})
}

// Submit replaces the typed input of the active session.
func (e *Engine) Submit(text string) model.Snapshot {
	return e.exec(func() bool {
		return e.sess.Submit(text, e.clock.Now())
	})
}

// Reset discards the active session and creates a new Idle one with fresh text.
func (e *Engine) Reset() model.Snapshot {
	return e.exec(func() bool {
		e.sess = e.newSession("")
		return true
	})
}

// SetTimeLimit changes the time limit. It is ignored while Running or for
// non-positive values. An Idle session keeps its text.
func (e *Engine) SetTimeLimit(seconds int) model.Snapshot {
	return e.exec(func() bool {
		if seconds <= 0 || e.sess.Status() == model.StatusRunning {
			return false
		}
		e.timeLimit = seconds
		text := ""
		if e.sess.Status() == model.StatusIdle {
			text = e.sess.Snapshot().Text
		}
		e.sess = e.newSession(text)
		return true
	})
}

// SetMode changes the text mode and regenerates text. It is ignored while
// Running or for unknown modes.
func (e *Engine) SetMode(mode model.Mode) model.Snapshot {
	return e.exec(func() bool {
		if _, err := model.ParseMode(string(mode)); err != nil {
			return false
		}
		if e.sess.Status() == model.StatusRunning {
			return false
		}
		e.mode = mode
		e.sess = e.newSession("")
		return true
	})
}

// Subscribe returns a channel that receives the current snapshot and then the
// latest one after each change. A slow reader only sees the newest snapshot.
// The returned func unsubscribes and closes the channel.
func (e *Engine) Subscribe() (<-chan model.Snapshot, func()) {
	ch := make(chan model.Snapshot, 1)
	id := -1
	ok := e.do(func() {
		id = e.nextSub
		e.nextSub++
		e.subs[id] = ch
		ch <- e.sess.Snapshot()
	})
	if !ok {
		close(ch)
		return ch, func() {}
	}
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.do(func() {
				if sub, found := e.subs[id]; found {
					delete(e.subs, id)
					close(sub)
				}
			})
		})
	}
}

func (e *Engine) loop() {
	defer close(e.done)
	for {
		select {
		case fn := <-e.inbox:
			fn()
		case <-e.timer.C():
			if e.sess.Tick() {
				e.log.Debug("countdown expired", logger.F("session", e.sess.ID()))
			}
			e.afterChange()
		case <-e.quit:
			e.timer.Cancel()
			e.timer = nil
			for id, sub := range e.subs {
				delete(e.subs, id)
				close(sub)
			}
			return
		}
	}
}

// do runs fn on the loop goroutine and waits for it. It reports false if the
// engine is closed.
func (e *Engine) do(fn func()) bool {
	finished := make(chan struct{})
	select {
	case e.inbox <- func() {
		defer close(finished)
		fn()
	}:
	case <-e.done:
		return false
	}
	<-finished
	return true
}

func (e *Engine) exec(mutate func() bool) model.Snapshot {
	var snap model.Snapshot
	ok := e.do(func() {
		if mutate() {
			e.afterChange()
		}
		snap = e.sess.Snapshot()
	})
	if !ok {
		return e.Snapshot()
	}
	return snap
}

// afterChange keeps the countdown tied to the Running state of the current
// session, then publishes the new snapshot.
func (e *Engine) afterChange() {
	running := e.sess.Status() == model.StatusRunning
	if e.timer != nil && (!running || e.timerFor != e.sess.ID()) {
		e.timer.Cancel()
		e.timer = nil
		e.timerFor = ""
	}
	if running && e.timer == nil {
		e.timer = countdown.Start(e.clock, countdown.Interval)
		e.timerFor = e.sess.ID()
	}

	snap := e.sess.Snapshot()
	if snap.Status != e.lastStatus {
		e.logTransition(snap)
		e.lastStatus = snap.Status
	}
	e.mu.Lock()
	e.latest = snap
	e.mu.Unlock()
	for _, sub := range e.subs {
		publish(sub, snap)
	}
}

func (e *Engine) logTransition(snap model.Snapshot) {
	fields := []logger.Field{
		logger.F("session", snap.ID),
		logger.F("mode", snap.Mode),
		logger.F("status", snap.Status),
	}
	if snap.Status == model.StatusFinished {
		fields = append(fields,
			logger.F("wpm", snap.Stats.WPM),
			logger.F("accuracy", snap.Stats.Accuracy),
			logger.F("remaining", snap.TimeRemaining),
		)
	}
	e.log.Debug("session transition", fields...)
}

func (e *Engine) newSession(text string) *session.Session {
	if text == "" {
		text = e.gen.Generate(e.mode, e.words)
	}
	return session.New(text, e.mode, e.timeLimit)
}

// publish replaces any unread snapshot in ch with snap.
func publish(ch chan model.Snapshot, snap model.Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
