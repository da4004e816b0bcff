package game

import "time"

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// MatchPoints is the base score of a matched pair, multiplied by the
// difficulty's ScoreMultiplier.
const MatchPoints = 10

// MismatchDelay is how long two non-matching cards stay face-up before
// they are turned back.
const MismatchDelay = 1000 * time.Millisecond

// VictoryCueDelay is the delay between the last match and the victory cue.
const VictoryCueDelay = 500 * time.Millisecond

// TickInterval is the granularity of the elapsed-time clock.
const TickInterval = time.Second
