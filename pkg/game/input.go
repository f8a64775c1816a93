package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/slipstream/pkg/physics"
)

// IntentSource produces one driving intent per frame. Keyboard bindings
// implement it for humans; tests substitute scripted sources.
type IntentSource interface {
	Intent() physics.Intent
}

// KeyMap polls a fixed set of keys for throttle, brake and steering.
type KeyMap struct {
	Up, Down, Left, Right ebiten.Key
}

// ArrowKeys is the player-one binding.
var ArrowKeys = KeyMap{
	Up:    ebiten.KeyArrowUp,
	Down:  ebiten.KeyArrowDown,
	Left:  ebiten.KeyArrowLeft,
	Right: ebiten.KeyArrowRight,
}

// WASDKeys is the player-two binding for split view.
var WASDKeys = KeyMap{
	Up:    ebiten.KeyW,
	Down:  ebiten.KeyS,
	Left:  ebiten.KeyA,
	Right: ebiten.KeyD,
}

func (k KeyMap) Intent() physics.Intent {
	in := physics.Intent{
		Throttle: ebiten.IsKeyPressed(k.Up),
		Brake:    ebiten.IsKeyPressed(k.Down),
	}
	// Both steer keys held cancel out.
	if ebiten.IsKeyPressed(k.Left) {
		in.Steer--
	}
	if ebiten.IsKeyPressed(k.Right) {
		in.Steer++
	}
	return in
}

// confirmPressed reports the edge-triggered "start next race" input.
func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
