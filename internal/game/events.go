package game

import (
	"fmt"
	"time"
)

// Event is an input to Session.Handle. It is one of Click, Tick or Revert.
type Event interface {
	isEvent()
}

// Click is the player selecting the card at Slot.
type Click struct {
	Slot int
}

// Tick is one TickInterval of elapsed time for the session SessionID.
type Tick struct {
	SessionID string
}

// Revert turns back the open mismatched pair of session SessionID.
type Revert struct {
	SessionID string
}

func (Click) isEvent()  {}
func (Tick) isEvent()   {}
func (Revert) isEvent() {}

// EffectType enumerates the side effects requested by Session.Handle.
type EffectType string

const (
	EffectStartTimer     EffectType = "start_timer"     // Start ticking every TickInterval.
	EffectStopTimer      EffectType = "stop_timer"      // Stop the ticker.
	EffectScheduleRevert EffectType = "schedule_revert" // Deliver a Revert event after Delay.
	EffectPlayCue        EffectType = "play_cue"        // Play Cue after Delay.
	EffectCompleted      EffectType = "completed"       // Game completed with Score.
)

// Effect is a side effect the owner of a Session must carry out.
// The Session itself never sleeps, schedules or plays anything.
type Effect struct {
	Type  EffectType
	Delay time.Duration // For EffectScheduleRevert and EffectPlayCue.
	Cue   Cue           // For EffectPlayCue.
	Score int           // For EffectCompleted.
}

func (e Effect) String() string {
	switch e.Type {
	case EffectScheduleRevert:
		return fmt.Sprintf("%s(%s)", e.Type, e.Delay)
	case EffectPlayCue:
		if e.Delay > 0 {
			return fmt.Sprintf("%s(%s, %s)", e.Type, e.Cue, e.Delay)
		}
		return fmt.Sprintf("%s(%s)", e.Type, e.Cue)
	case EffectCompleted:
		return fmt.Sprintf("%s(%d)", e.Type, e.Score)
	default:
		return string(e.Type)
	}
}

func playCue(cue Cue) Effect {
	return Effect{Type: EffectPlayCue, Cue: cue}
}
