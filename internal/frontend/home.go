package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Home is the game page.
type Home struct {
	app.Compo
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	State.Listeners["home"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
}

func (h *Home) OnDismount() {
	delete(State.Listeners, "home")
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, not reloading not to interrupt the game...")
}

func (h *Home) Render() app.UI {
	s := State.Controller.Snapshot()

	var menu app.UI = app.Text("")
	if State.ShowMenu {
		menu = app.Div().Class("mobile-only", "mobile-menu").Body(
			&Controls{ElapsedSeconds: s.ElapsedSeconds, Score: s.Score, Compact: true},
		)
	}

	var completed app.UI = app.Text("")
	if s.Completed {
		completed = &Completed{
			Difficulty:     s.Difficulty,
			Moves:          s.Moves,
			ElapsedSeconds: s.ElapsedSeconds,
			Score:          s.Score,
			NewBest:        State.Controller.NewBest(),
		}
	}

	return app.Main().Class("container").Body(
		app.Div().Class("header").Body(
			&TopBar{SoundEnabled: State.SoundEnabled, ShowMenu: State.ShowMenu},
			&Controls{ElapsedSeconds: s.ElapsedSeconds, Score: s.Score},
		),
		menu,
		renderDifficulties(s.Difficulty),
		&Board{Cards: s.Cards, Columns: s.Difficulty.Config().Columns},
		completed,
		&BestScores{Scores: State.Controller.BestScores()},
	)
}
