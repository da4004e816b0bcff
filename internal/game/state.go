package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Phase of a Session.
type Phase int

const (
	Idle Phase = iota
	InProgress
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Session is one play-through, from the deal until it is completed or
// replaced by a new deal. It is owned by a single goroutine (or guarded by its
// owner) and only mutated through Handle.
type Session struct {
	ID             string     `json:"id"` // Unique per deal, used to reject stale deferred events.
	Difficulty     Difficulty `json:"difficulty"`
	Cards          []Card     `json:"cards"`
	Flipped        []int      `json:"flipped"` // Slots currently face-up but not matched: at most 2.
	Moves          int        `json:"moves"`
	Score          int        `json:"score"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	Started        bool       `json:"started"`
	Completed      bool       `json:"completed"`
}

// NewSession deals a fresh Idle session for the difficulty.
func NewSession(d Difficulty, rng *rand.Rand) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Difficulty: d,
		Cards:      BuildDeck(d, rng),
		Flipped:    make([]int, 0, 2),
	}
}

// Phase returns the current phase of the session.
func (s *Session) Phase() Phase {
	switch {
	case s.Completed:
		return Completed
	case s.Started:
		return InProgress
	default:
		return Idle
	}
}

// Clone returns a deep copy, safe to hand to renderers.
func (s *Session) Clone() Session {
	c := *s
	c.Cards = append([]Card(nil), s.Cards...)
	c.Flipped = append(make([]int, 0, 2), s.Flipped...)
	return c
}

// AllMatched reports whether every card has been matched.
func (s *Session) AllMatched() bool {
	for _, c := range s.Cards {
		if !c.IsMatched {
			return false
		}
	}
	return len(s.Cards) > 0
}

// Handle applies one event to the session and returns the side effects the
// caller must carry out. Events that don't apply (invalid clicks, ticks or
// reverts from another session) leave the session untouched and return nil.
func (s *Session) Handle(ev Event) []Effect {
	switch ev := ev.(type) {
	case Click:
		return s.click(ev.Slot)
	case Tick:
		return s.tick(ev.SessionID)
	case Revert:
		return s.revert(ev.SessionID)
	}
	return nil
}

// CanFlip reports whether a click on slot would be accepted.
func (s *Session) CanFlip(slot int) bool {
	if s.Completed || len(s.Flipped) >= 2 || slot < 0 || slot >= len(s.Cards) {
		return false
	}
	c := s.Cards[slot]
	return !c.IsFlipped && !c.IsMatched
}

func (s *Session) click(slot int) []Effect {
	if !s.CanFlip(slot) {
		return nil
	}

	var effects []Effect
	if !s.Started {
		s.Started = true
		effects = append(effects, Effect{Type: EffectStartTimer})
	}
	s.Cards[slot].IsFlipped = true
	s.Flipped = append(s.Flipped, slot)
	effects = append(effects, playCue(CueFlip))
	if len(s.Flipped) < 2 {
		return effects
	}

	s.Moves++
	first, second := &s.Cards[s.Flipped[0]], &s.Cards[s.Flipped[1]]
	if first.Symbol != second.Symbol {
		return append(effects, Effect{Type: EffectScheduleRevert, Delay: MismatchDelay})
	}

	first.IsMatched, second.IsMatched = true, true
	s.Score += s.Difficulty.MatchScore()
	s.Flipped = s.Flipped[:0]
	effects = append(effects, playCue(CueMatch))
	if s.AllMatched() {
		s.Completed = true
		effects = append(effects,
			Effect{Type: EffectStopTimer},
			Effect{Type: EffectCompleted, Score: s.Score},
			Effect{Type: EffectPlayCue, Cue: CueVictory, Delay: VictoryCueDelay},
		)
	}
	return effects
}

func (s *Session) tick(sessionID string) []Effect {
	if sessionID != s.ID || s.Phase() != InProgress {
		return nil
	}
	s.ElapsedSeconds++
	return nil
}

func (s *Session) revert(sessionID string) []Effect {
	if sessionID != s.ID || len(s.Flipped) != 2 {
		return nil
	}
	for _, slot := range s.Flipped {
		s.Cards[slot].IsFlipped = false
	}
	s.Flipped = s.Flipped[:0]
	return []Effect{playCue(CueMismatch)}
}

func (s *Session) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session %s: difficulty=%s, phase=%s, moves=%d, score=%d, elapsed=%ds, flipped=%v, cards: ",
		s.ID, s.Difficulty, s.Phase(), s.Moves, s.Score, s.ElapsedSeconds, s.Flipped)
	for _, c := range s.Cards {
		mark := " "
		switch {
		case c.IsMatched:
			mark = "*"
		case c.IsFlipped:
			mark = "^"
		}
		fmt.Fprintf(&sb, "%d:%s%s ", c.ID, c.Symbol, mark)
	}
	return sb.String()
}
