package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// TopBar shows the title, the sound toggle and, on small screens, the menu button.
type TopBar struct {
	app.Compo
	SoundEnabled bool
	ShowMenu     bool
}

func (t *TopBar) onToggleSound(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.ToggleSound()
}

func (t *TopBar) onToggleMenu(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.ToggleMenu()
}

func (t *TopBar) Render() app.UI {
	soundIcon := "🔊"
	if !t.SoundEnabled {
		soundIcon = "🔇"
	}
	menuIcon := "☰"
	if t.ShowMenu {
		menuIcon = "✕"
	}

	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(app.H1().Class("title").Text("Memory Match")),
		),
		app.Ul().Body(
			app.Li().Body(
				app.A().
					Href("#").
					OnClick(t.onToggleSound).
					Style("text-decoration", "none").
					Aria("label", "Toggle sound").
					Body(
						app.Span().
							Class("sound-icon").
							Style("font-family", "system-ui").
							Text(soundIcon),
					),
			),
			app.Li().Class("mobile-only").Body(
				app.Button().
					Class("secondary", "menu-toggle").
					Aria("label", "Menu").
					Aria("expanded", t.ShowMenu).
					OnClick(t.onToggleMenu).
					Text(menuIcon),
			),
		),
	)
}
