package game

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// newTestSession returns an Idle session with a fixed, known layout.
func newTestSession(d Difficulty, symbols ...SymbolID) *Session {
	cards := make([]Card, len(symbols))
	for i, s := range symbols {
		cards[i] = Card{ID: i, Symbol: s}
	}
	return &Session{ID: "test", Difficulty: d, Cards: cards, Flipped: make([]int, 0, 2)}
}

// pairsOf groups the slots of a session by symbol.
func pairsOf(s *Session) [][2]int {
	bySymbol := make(map[SymbolID][]int)
	var order []SymbolID
	for _, c := range s.Cards {
		if _, ok := bySymbol[c.Symbol]; !ok {
			order = append(order, c.Symbol)
		}
		bySymbol[c.Symbol] = append(bySymbol[c.Symbol], c.ID)
	}
	pairs := make([][2]int, 0, len(order))
	for _, sym := range order {
		slots := bySymbol[sym]
		pairs = append(pairs, [2]int{slots[0], slots[1]})
	}
	return pairs
}

func hasEffect(effects []Effect, t EffectType) bool {
	return slices.ContainsFunc(effects, func(e Effect) bool { return e.Type == t })
}

func hasCue(effects []Effect, cue Cue) bool {
	return slices.ContainsFunc(effects, func(e Effect) bool { return e.Type == EffectPlayCue && e.Cue == cue })
}

func TestNewSession(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	a := NewSession(Easy, rng)
	b := NewSession(Easy, rng)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected distinct non-empty session IDs, got %q and %q", a.ID, b.ID)
	}
	if got := len(a.Cards); got != 12 {
		t.Errorf("Expected 12 cards for easy, got %d", got)
	}
	if a.Phase() != Idle {
		t.Errorf("Expected new session to be idle, got %s", a.Phase())
	}
}

func TestClickMatch(t *testing.T) {
	// Easy deal with Github on slots 3 and 7.
	s := newTestSession(Easy,
		"Apple", "Figma", "Docker", "Github", "Apple", "Figma",
		"Node", "Github", "Docker", "React", "Node", "React")

	effects := s.Handle(Click{Slot: 3})
	if !hasEffect(effects, EffectStartTimer) || !hasCue(effects, CueFlip) {
		t.Errorf("First click: expected start_timer and flip cue, got %v", effects)
	}
	if s.Phase() != InProgress {
		t.Errorf("Expected in_progress after first click, got %s", s.Phase())
	}
	if s.Moves != 0 {
		t.Errorf("Expected 0 moves after one flip, got %d", s.Moves)
	}

	effects = s.Handle(Click{Slot: 7})
	if hasEffect(effects, EffectStartTimer) {
		t.Errorf("Second click should not restart the timer: %v", effects)
	}
	if !hasCue(effects, CueMatch) {
		t.Errorf("Expected match cue, got %v", effects)
	}
	if !s.Cards[3].IsMatched || !s.Cards[7].IsMatched {
		t.Errorf("Expected slots 3 and 7 matched: %v", s)
	}
	if s.Score != 10 || s.Moves != 1 || len(s.Flipped) != 0 {
		t.Errorf("Expected score=10 moves=1 flipped=[], got score=%d moves=%d flipped=%v", s.Score, s.Moves, s.Flipped)
	}
}

func TestClickMismatchAndRevert(t *testing.T) {
	s := newTestSession(Medium, "Apple", "Figma", "Apple", "Figma")
	s.Handle(Click{Slot: 0})
	effects := s.Handle(Click{Slot: 1})
	if !hasEffect(effects, EffectScheduleRevert) {
		t.Fatalf("Expected schedule_revert, got %v", effects)
	}
	for _, e := range effects {
		if e.Type == EffectScheduleRevert && e.Delay != MismatchDelay {
			t.Errorf("Expected revert delay %s, got %s", MismatchDelay, e.Delay)
		}
	}
	if s.Moves != 1 || s.Score != 0 {
		t.Errorf("Expected moves=1 score=0, got moves=%d score=%d", s.Moves, s.Score)
	}
	if !s.Cards[0].IsFlipped || !s.Cards[1].IsFlipped {
		t.Errorf("Both cards should stay face-up until the revert: %v", s)
	}

	// While the pair is open every click is ignored.
	before := s.Clone()
	if effects := s.Handle(Click{Slot: 2}); effects != nil {
		t.Errorf("Click during open pair should be ignored, got %v", effects)
	}
	if s.Cards[2].IsFlipped || len(s.Flipped) != 2 || s.Moves != before.Moves {
		t.Errorf("Click during open pair changed the session: %v", s)
	}

	// A revert from another session is ignored.
	if effects := s.Handle(Revert{SessionID: "other"}); effects != nil || len(s.Flipped) != 2 {
		t.Errorf("Stale revert should be ignored, got effects=%v session=%v", effects, s)
	}

	effects = s.Handle(Revert{SessionID: s.ID})
	if !hasCue(effects, CueMismatch) {
		t.Errorf("Expected mismatch cue on revert, got %v", effects)
	}
	if s.Cards[0].IsFlipped || s.Cards[1].IsFlipped || len(s.Flipped) != 0 {
		t.Errorf("Expected both cards face-down after revert: %v", s)
	}
	if s.Moves != 1 || s.Score != 0 {
		t.Errorf("Revert must not change moves/score, got moves=%d score=%d", s.Moves, s.Score)
	}

	// A second revert has nothing to turn back.
	if effects := s.Handle(Revert{SessionID: s.ID}); effects != nil {
		t.Errorf("Revert with no open pair should be ignored, got %v", effects)
	}
}

func TestInvalidClicksIgnored(t *testing.T) {
	s := newTestSession(Easy, "Apple", "Apple", "Figma", "Figma")
	for _, slot := range []int{-1, 4, 100} {
		if effects := s.Handle(Click{Slot: slot}); effects != nil {
			t.Errorf("Click on out-of-range slot %d should be ignored, got %v", slot, effects)
		}
	}
	if s.Started {
		t.Errorf("Invalid clicks must not start the game")
	}

	s.Handle(Click{Slot: 0})
	if effects := s.Handle(Click{Slot: 0}); effects != nil {
		t.Errorf("Click on already flipped card should be ignored, got %v", effects)
	}
	s.Handle(Click{Slot: 1})
	before := s.Clone()
	for _, slot := range []int{0, 1} {
		if effects := s.Handle(Click{Slot: slot}); effects != nil {
			t.Errorf("Click on matched card %d should be ignored, got %v", slot, effects)
		}
	}
	if s.Moves != before.Moves || s.Score != before.Score || len(s.Flipped) != 0 {
		t.Errorf("Clicks on matched cards changed the session: %v", s)
	}
}

func TestCompleteHard(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	s := NewSession(Hard, rng)
	pairs := pairsOf(s)
	if len(pairs) != 12 {
		t.Fatalf("Expected 12 pairs, got %d", len(pairs))
	}

	var last []Effect
	for i, p := range pairs {
		if s.Completed {
			t.Fatalf("Completed after only %d pairs", i)
		}
		s.Handle(Click{Slot: p[0]})
		last = s.Handle(Click{Slot: p[1]})
		if len(s.Flipped) > 2 {
			t.Fatalf("Flipped set grew beyond 2: %v", s.Flipped)
		}
	}
	if !s.Completed || s.Phase() != Completed || !s.AllMatched() {
		t.Fatalf("Expected completed session: %v", s)
	}
	if s.Score != 360 || s.Score != Hard.MaxScore() {
		t.Errorf("Expected score 360, got %d", s.Score)
	}
	if s.Moves != 12 {
		t.Errorf("Expected 12 moves, got %d", s.Moves)
	}
	if !hasEffect(last, EffectStopTimer) || !hasEffect(last, EffectCompleted) || !hasCue(last, CueVictory) {
		t.Errorf("Expected stop_timer, completed and victory cue on last match, got %v", last)
	}
	for _, e := range last {
		if e.Type == EffectCompleted && e.Score != 360 {
			t.Errorf("Completed effect carries score %d, expected 360", e.Score)
		}
		if e.Type == EffectPlayCue && e.Cue == CueVictory && e.Delay != VictoryCueDelay {
			t.Errorf("Victory cue delay %s, expected %s", e.Delay, VictoryCueDelay)
		}
	}

	// Once completed nothing moves.
	before := s.Clone()
	for slot := range s.Cards {
		s.Handle(Click{Slot: slot})
	}
	s.Handle(Tick{SessionID: s.ID})
	if s.Moves != before.Moves || s.Score != before.Score || s.ElapsedSeconds != before.ElapsedSeconds {
		t.Errorf("Completed session changed: before %v, after %v", &before, s)
	}
}

func TestTick(t *testing.T) {
	s := newTestSession(Easy, "Apple", "Apple")
	s.Handle(Tick{SessionID: s.ID})
	if s.ElapsedSeconds != 0 {
		t.Errorf("Idle session should not tick, elapsed=%d", s.ElapsedSeconds)
	}
	s.Handle(Click{Slot: 0})
	s.Handle(Tick{SessionID: s.ID})
	s.Handle(Tick{SessionID: s.ID})
	s.Handle(Tick{SessionID: "stale"})
	if s.ElapsedSeconds != 2 {
		t.Errorf("Expected 2 elapsed seconds, got %d", s.ElapsedSeconds)
	}
}

func TestRandomClicksKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for _, d := range Difficulties() {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSession(d, rng)
			for range 2000 {
				if rng.IntN(4) == 0 {
					s.Handle(Revert{SessionID: s.ID})
				} else {
					slot := rng.IntN(len(s.Cards)+2) - 1
					wasMatched := slot >= 0 && slot < len(s.Cards) && s.Cards[slot].IsMatched
					before := s.Clone()
					effects := s.Handle(Click{Slot: slot})
					if wasMatched && (effects != nil || s.Moves != before.Moves || s.Score != before.Score) {
						t.Fatalf("Click on matched slot %d changed state", slot)
					}
					if s.Score > before.Score && s.Score-before.Score != d.MatchScore() {
						t.Fatalf("Score jumped by %d, expected %d", s.Score-before.Score, d.MatchScore())
					}
					if s.Score > before.Score && s.Moves != before.Moves+1 {
						t.Fatalf("Match should count exactly one move")
					}
				}
				if len(s.Flipped) > 2 {
					t.Fatalf("Flipped set grew beyond 2: %v", s.Flipped)
				}
				if s.Completed != s.AllMatched() {
					t.Fatalf("Completed=%v but AllMatched=%v", s.Completed, s.AllMatched())
				}
			}
		})
	}
}

func TestClone(t *testing.T) {
	s := newTestSession(Easy, "Apple", "Apple")
	c := s.Clone()
	s.Handle(Click{Slot: 0})
	if c.Cards[0].IsFlipped || len(c.Flipped) != 0 {
		t.Errorf("Clone shares state with the original: %v", &c)
	}
}
