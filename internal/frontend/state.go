package frontend

import (
	"github.com/janpfeifer/MemoryMatch/internal/game"
	"github.com/janpfeifer/MemoryMatch/internal/play"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GlobalClientState holds the running game and the UI-only state shared by
// the components.
type GlobalClientState struct {
	Controller *play.Controller

	// UI state, no effect on the game.
	SoundEnabled bool
	ShowMenu     bool

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

// cueSounds maps each game cue to the sound effect played for it.
var cueSounds = map[game.Cue]string{
	game.CueFlip:     "/web/sounds/flipcard.mp3",
	game.CueMatch:    "/web/sounds/correct.mp3",
	game.CueMismatch: "/web/sounds/wrong-answer.mp3",
	game.CueVictory:  "/web/sounds/goodresult.mp3",
}

// HTMLAudio plays game cues through HTML audio elements.
type HTMLAudio struct{}

// Play implements play.Audio.
func (HTMLAudio) Play(cue game.Cue) {
	if State == nil || !State.SoundEnabled {
		return
	}
	url, found := cueSounds[cue]
	if !found {
		klog.Warningf("HTMLAudio: no sound for cue %q", cue)
		return
	}
	State.PlaySound(url)
}

func (s *GlobalClientState) ToggleSound() {
	s.SoundEnabled = !s.SoundEnabled
	klog.Infof("ToggleSound: SoundEnabled is now %v", s.SoundEnabled)
	s.Notify()
}

func (s *GlobalClientState) ToggleMenu() {
	s.ShowMenu = !s.ShowMenu
	s.Notify()
}

// Restart deals a new game with the current difficulty and closes the menu.
func (s *GlobalClientState) Restart() {
	s.ShowMenu = false
	s.Controller.Restart()
}

// SetDifficulty deals a new game with difficulty d and closes the menu.
func (s *GlobalClientState) SetDifficulty(d game.Difficulty) {
	s.ShowMenu = false
	s.Controller.SetDifficulty(d)
}

func (s *GlobalClientState) PlaySound(url string) {
	if app.IsServer {
		return
	}

	// Create a new Audio element for the sound effect
	audio := app.Window().Get("document").Call("createElement", "audio")
	audio.Set("src", url)

	// Play the sound (fire and forget)
	promise := audio.Call("play")
	if promise.Truthy() {
		promise.Call("catch", app.FuncOf(func(this app.Value, args []app.Value) any {
			klog.Errorf("PlaySound: Failed to play %s: %v", url, args[0])
			return nil
		}))
	}
}

func (s *GlobalClientState) Notify() {
	klog.V(2).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Listeners:    make(map[string]func()),
			SoundEnabled: true,
		}
		State.Controller = play.New(
			play.WithAudio(HTMLAudio{}),
			play.WithOnChange(func() { State.Notify() }),
		)
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}
