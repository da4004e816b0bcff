package frontend

import (
	"fmt"

	"github.com/janpfeifer/MemoryMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Board renders the dealt cards in a grid and forwards clicks, by slot, to
// the controller. It keeps no game state of its own.
type Board struct {
	app.Compo
	Cards   []game.Card
	Columns game.GridColumns
}

func (b *Board) onCardClick(slot int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		klog.V(1).Infof("Board: click on slot %d", slot)
		State.Controller.Click(slot)
	}
}

func (b *Board) renderCard(c game.Card) app.UI {
	classes := []string{"card"}
	label := fmt.Sprintf("Card %d, face down", c.ID+1)
	var face app.UI = app.Text("")
	if c.FaceUp() {
		classes = append(classes, "flipped")
		sym, found := game.LookupSymbol(c.Symbol)
		if !found {
			sym = game.Symbol{ID: c.Symbol, Name: string(c.Symbol)}
		}
		label = fmt.Sprintf("Card %d, %s", c.ID+1, sym.Name)
		face = app.Img().Class("card-icon").Src(sym.Image()).Alt(sym.Name)
	}
	if c.IsMatched {
		classes = append(classes, "matched")
	}

	return app.Div().
		Class(classes...).
		Aria("label", label).
		DataSet("slot", c.ID).
		OnClick(b.onCardClick(c.ID)).
		Body(app.Div().Class("card-inner").Body(face))
}

func (b *Board) Render() app.UI {
	if len(b.Cards) == 0 {
		return app.Div().Aria("busy", "true").Text("Dealing...")
	}
	cards := make([]app.UI, 0, len(b.Cards))
	for _, c := range b.Cards {
		cards = append(cards, b.renderCard(c))
	}
	return app.Div().
		Class(
			"board",
			fmt.Sprintf("cols-sm-%d", b.Columns.Small),
			fmt.Sprintf("cols-md-%d", b.Columns.Medium),
			fmt.Sprintf("cols-lg-%d", b.Columns.Large),
		).
		Body(cards...)
}
