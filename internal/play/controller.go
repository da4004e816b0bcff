// Package play runs a memory-match game session in real time.
//
// The Controller owns the single game.Session and the session's BestScores, feeds
// it clicks, carries out the effects it returns (timers, audio cues, best score
// bookkeeping) and makes sure deferred work from a previous deal never touches
// a new one.
package play

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/janpfeifer/MemoryMatch/internal/game"
	"k8s.io/klog/v2"
)

// Audio plays game cues. Implementations must not block and must not report
// failures back: cues are fire-and-forget.
type Audio interface {
	Play(cue game.Cue)
}

// AudioFunc adapts a function to the Audio interface.
type AudioFunc func(cue game.Cue)

// Play implements Audio.
func (f AudioFunc) Play(cue game.Cue) { f(cue) }

// Controller drives one game session at a time. It is safe for concurrent use:
// clicks from the UI and timer callbacks are serialized.
type Controller struct {
	mu         sync.Mutex
	session    *game.Session
	best       game.BestScores
	newBest    bool
	difficulty game.Difficulty
	rng        *rand.Rand
	audio      Audio
	onChange   func()

	// Deferred work of the current session. All of it is stopped on reset.
	revertTimer *time.Timer
	tickTimer   *time.Timer
	cueTimers   []*time.Timer
	closed      bool
}

// Option configures a Controller.
type Option func(c *Controller)

// WithDifficulty sets the difficulty of the first deal. Default is game.Easy.
func WithDifficulty(d game.Difficulty) Option {
	return func(c *Controller) { c.difficulty = d }
}

// WithRand sets the random source used for dealing.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithAudio sets the audio collaborator.
func WithAudio(a Audio) Option {
	return func(c *Controller) { c.audio = a }
}

// WithOnChange registers a function called (without locks held) after every
// change of the session, including the ones caused by timers.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New creates a Controller with a freshly dealt Idle session.
func New(opts ...Option) *Controller {
	c := &Controller{difficulty: game.Easy}
	for _, opt := range opts {
		opt(c)
	}
	if !c.difficulty.Valid() {
		klog.Warningf("play.New: invalid difficulty %d, using %s", int(c.difficulty), game.Easy)
		c.difficulty = game.Easy
	}
	c.session = game.NewSession(c.difficulty, c.rng)
	klog.Infof("New session %s (%s)", c.session.ID, c.difficulty)
	return c
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() game.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Clone()
}

// BestScores returns the best score per difficulty recorded so far.
func (c *Controller) BestScores() game.BestScores {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.best
}

// NewBest reports whether the current session is completed with a score equal
// to the best recorded for its difficulty.
func (c *Controller) NewBest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newBest
}

// Difficulty of the current session.
func (c *Controller) Difficulty() game.Difficulty {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.difficulty
}

// Click flips the card at slot, if the session allows it.
func (c *Controller) Click(slot int) {
	c.handle("", game.Click{Slot: slot})
}

// Restart deals a new session with the current difficulty.
func (c *Controller) Restart() {
	c.SetDifficulty(c.Difficulty())
}

// SetDifficulty deals a new session with difficulty d. It always re-deals,
// even if d is the current difficulty.
func (c *Controller) SetDifficulty(d game.Difficulty) {
	if !d.Valid() {
		klog.Warningf("SetDifficulty: ignoring invalid difficulty %d", int(d))
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.stopDeferredLocked()
	old := c.session.ID
	c.difficulty = d
	c.newBest = false
	c.session = game.NewSession(d, c.rng)
	id := c.session.ID
	c.mu.Unlock()

	klog.Infof("Session %s replaced by %s (%s)", old, id, d)
	c.notify()
}

// Close stops all pending timers. The Controller ignores any further input.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopDeferredLocked()
}

// handle applies ev to the session and carries out its effects. A non-empty
// sessionID is checked against the current session first: deferred events
// created for an older deal are dropped here, and Session.Handle drops them
// again if they slip through.
func (c *Controller) handle(sessionID string, ev game.Event) {
	c.mu.Lock()
	if c.closed || (sessionID != "" && sessionID != c.session.ID) {
		c.mu.Unlock()
		klog.V(2).Infof("Dropping stale %T for session %s", ev, sessionID)
		return
	}
	effects := c.session.Handle(ev)
	if len(effects) == 0 {
		c.mu.Unlock()
		if _, isTick := ev.(game.Tick); isTick {
			c.notify()
		}
		return
	}
	klog.V(1).Infof("%T%+v -> %v", ev, ev, effects)

	var cues []game.Cue
	for _, e := range effects {
		switch e.Type {
		case game.EffectStartTimer:
			c.startTickerLocked()
		case game.EffectStopTimer:
			c.stopTickerLocked()
		case game.EffectScheduleRevert:
			c.scheduleRevertLocked(e.Delay)
		case game.EffectCompleted:
			c.completeLocked(e.Score)
		case game.EffectPlayCue:
			if e.Delay > 0 {
				c.scheduleCueLocked(e.Cue, e.Delay)
			} else {
				cues = append(cues, e.Cue)
			}
		}
	}
	c.mu.Unlock()

	for _, cue := range cues {
		c.play(cue)
	}
	c.notify()
}

func (c *Controller) completeLocked(score int) {
	d := c.session.Difficulty
	var updated bool
	c.best, updated = c.best.RecordIfBest(d, score)
	c.newBest = score > 0 && score == c.best.Get(d)
	klog.Infof("Session %s completed: difficulty=%s score=%d moves=%d elapsed=%s best=%d (updated=%v)",
		c.session.ID, d, score, c.session.Moves, game.FormatClock(c.session.ElapsedSeconds), c.best.Get(d), updated)
}

func (c *Controller) scheduleRevertLocked(delay time.Duration) {
	if c.revertTimer != nil {
		c.revertTimer.Stop()
	}
	id := c.session.ID
	c.revertTimer = time.AfterFunc(delay, func() {
		c.handle(id, game.Revert{SessionID: id})
	})
}

func (c *Controller) startTickerLocked() {
	c.stopTickerLocked()
	id := c.session.ID
	var tick func()
	tick = func() {
		c.handle(id, game.Tick{SessionID: id})
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed && c.session.ID == id && c.session.Phase() == game.InProgress {
			c.tickTimer = time.AfterFunc(game.TickInterval, tick)
		}
	}
	c.tickTimer = time.AfterFunc(game.TickInterval, tick)
}

func (c *Controller) stopTickerLocked() {
	if c.tickTimer != nil {
		c.tickTimer.Stop()
		c.tickTimer = nil
	}
}

func (c *Controller) scheduleCueLocked(cue game.Cue, delay time.Duration) {
	id := c.session.ID
	c.cueTimers = append(c.cueTimers, time.AfterFunc(delay, func() {
		c.mu.Lock()
		stale := c.closed || c.session.ID != id
		c.mu.Unlock()
		if !stale {
			c.play(cue)
		}
	}))
}

func (c *Controller) stopDeferredLocked() {
	if c.revertTimer != nil {
		c.revertTimer.Stop()
		c.revertTimer = nil
	}
	c.stopTickerLocked()
	for _, t := range c.cueTimers {
		t.Stop()
	}
	c.cueTimers = nil
}

func (c *Controller) play(cue game.Cue) {
	if c.audio != nil {
		c.audio.Play(cue)
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
