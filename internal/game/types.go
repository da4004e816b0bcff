package game

import (
	"fmt"
	"strings"
)

// Difficulty is one of the three fixed game configurations.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard

	// NumDifficulties is the number of valid Difficulty values.
	NumDifficulties = 3
)

var difficultyNames = [NumDifficulties]string{"easy", "medium", "hard"}

// Difficulties returns all difficulties in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	return d >= Easy && d < NumDifficulties
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Title is the capitalized name used in buttons and panels.
func (d Difficulty) Title() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty converts "easy", "medium" or "hard" (any case) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// GridColumns holds the number of grid columns per viewport size.
type GridColumns struct {
	Small  int `json:"sm"`
	Medium int `json:"md"`
	Large  int `json:"lg"`
}

// DifficultyConfig is the immutable description of a difficulty.
type DifficultyConfig struct {
	Pairs           int         `json:"pairs"`
	ScoreMultiplier int         `json:"score_multiplier"`
	Columns         GridColumns `json:"columns"`
}

var difficultyConfigs = [NumDifficulties]DifficultyConfig{
	Easy:   {Pairs: 6, ScoreMultiplier: 1, Columns: GridColumns{Small: 4, Medium: 4, Large: 4}},
	Medium: {Pairs: 8, ScoreMultiplier: 2, Columns: GridColumns{Small: 4, Medium: 4, Large: 4}},
	Hard:   {Pairs: 12, ScoreMultiplier: 3, Columns: GridColumns{Small: 6, Medium: 6, Large: 6}},
}

// Config returns the configuration for d. It panics for invalid difficulties.
func (d Difficulty) Config() DifficultyConfig {
	if !d.Valid() {
		panic(fmt.Sprintf("game: invalid difficulty %d", int(d)))
	}
	return difficultyConfigs[d]
}

// MatchScore is the score awarded for one matched pair at difficulty d.
func (d Difficulty) MatchScore() int {
	return MatchPoints * d.Config().ScoreMultiplier
}

// MaxScore is the score of a completed game at difficulty d.
func (d Difficulty) MaxScore() int {
	return d.Config().Pairs * d.MatchScore()
}

// SymbolID is the stable identity of a card face. Cards match iff their
// SymbolIDs are equal; rendering is derived from it, never compared.
type SymbolID string

// Symbol is an entry of the symbol catalog.
type Symbol struct {
	ID   SymbolID `json:"id"`
	Name string   `json:"name"`
}

// Image is the path of the icon used to render the symbol.
func (s Symbol) Image() string {
	return fmt.Sprintf("/web/images/icons/%s.svg", strings.ToLower(string(s.ID)))
}

// Card is one slot of the dealt grid.
type Card struct {
	ID        int      `json:"id"` // Slot position, 0..2N-1.
	Symbol    SymbolID `json:"symbol"`
	IsFlipped bool     `json:"is_flipped"`
	IsMatched bool     `json:"is_matched"`
}

// FaceUp reports whether the card's symbol should be visible.
func (c Card) FaceUp() bool {
	return c.IsFlipped || c.IsMatched
}

// Cue is a discrete audio cue emitted by the game.
type Cue string

const (
	CueFlip     Cue = "flip"
	CueMatch    Cue = "match"
	CueMismatch Cue = "mismatch"
	CueVictory  Cue = "victory"
)

// FormatClock formats elapsed seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
