package frontend

import (
	"fmt"

	"github.com/janpfeifer/MemoryMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Completed is the panel shown once every pair has been found.
type Completed struct {
	app.Compo
	Difficulty     game.Difficulty
	Moves          int
	ElapsedSeconds int
	Score          int
	NewBest        bool
}

func (c *Completed) Render() app.UI {
	var best app.UI = app.Text("")
	if c.NewBest {
		best = app.Strong().Class("new-best").
			Text(fmt.Sprintf("🏆 New Best Score for %s difficulty!", c.Difficulty.Title()))
	}
	return app.Article().Class("completed").Body(
		app.H2().Text("Congratulations! 🎉"),
		app.P().Body(
			app.Text(fmt.Sprintf("You completed the game in %d moves and %s minutes with a score of %d points!",
				c.Moves, game.FormatClock(c.ElapsedSeconds), c.Score)),
			best,
		),
	)
}

// BestScores lists the best score of each difficulty in this session.
type BestScores struct {
	app.Compo
	Scores game.BestScores
}

func (b *BestScores) Render() app.UI {
	items := make([]app.UI, 0, game.NumDifficulties)
	for _, d := range game.Difficulties() {
		items = append(items, app.Div().Class("best-score").Body(
			app.Div().Class("best-score-level").Text(d.Title()),
			app.Div().Class("best-score-value").Text(fmt.Sprintf("%d", b.Scores.Get(d))),
		))
	}
	return app.Article().Class("best-scores").Body(
		app.H3().Text("Best Scores"),
		app.Div().Class("grid").Body(items...),
	)
}
