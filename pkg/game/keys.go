package game

import (
	"github.com/golangdaddy/doodledrive/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReadKeyboard returns the driving keys currently held.
func ReadKeyboard() input.Snapshot {
	return input.Snapshot{
		Forward: anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Back:    anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Restart: anyPressed(ebiten.KeyR),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
