package frontend

import (
	"fmt"

	"github.com/janpfeifer/MemoryMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Controls shows the clock, the score and the restart button.
// Compact is the variant used inside the mobile menu.
type Controls struct {
	app.Compo
	ElapsedSeconds int
	Score          int
	Compact        bool
}

func (c *Controls) onRestart(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.Restart()
}

func (c *Controls) Render() app.UI {
	class := "controls desktop-only"
	if c.Compact {
		class = "controls controls-compact"
	}
	return app.Div().Class(class).Body(
		app.Span().Class("clock").Body(
			app.Span().Aria("hidden", true).Text("⏱ "),
			app.Strong().Text(game.FormatClock(c.ElapsedSeconds)),
		),
		app.Span().Class("score").Body(
			app.Span().Aria("hidden", true).Text("🏆 "),
			app.Strong().Text(fmt.Sprintf("%d", c.Score)),
		),
		app.Button().Class("restart").OnClick(c.onRestart).Text("↻ Restart"),
	)
}

// DifficultyButton selects one difficulty level.
type DifficultyButton struct {
	app.Compo
	Level   game.Difficulty
	Current game.Difficulty
}

func (b *DifficultyButton) onClick(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.SetDifficulty(b.Level)
}

func (b *DifficultyButton) Render() app.UI {
	class := "secondary outline"
	if b.Level == b.Current {
		class = "primary"
	}
	return app.Button().
		Class(class).
		Aria("pressed", b.Level == b.Current).
		OnClick(b.onClick).
		Text(b.Level.Title())
}

// renderDifficulties renders the difficulty selector row.
func renderDifficulties(current game.Difficulty) app.UI {
	buttons := make([]app.UI, 0, game.NumDifficulties)
	for _, d := range game.Difficulties() {
		buttons = append(buttons, &DifficultyButton{Level: d, Current: current})
	}
	return app.Div().Class("difficulty").Body(
		app.Span().Class("difficulty-label").Text("🎮 Difficulty:"),
		app.Div().Class("difficulty-buttons").Body(buttons...),
	)
}
