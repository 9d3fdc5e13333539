package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// directionKeys lists the keys polled each frame, arrows first.
var directionKeys = []struct {
	key int32
	dir core.Direction
}{
	{rl.KeyUp, core.DirUp},
	{rl.KeyDown, core.DirDown},
	{rl.KeyLeft, core.DirLeft},
	{rl.KeyRight, core.DirRight},
	{rl.KeyW, core.DirUp},
	{rl.KeyS, core.DirDown},
	{rl.KeyA, core.DirLeft},
	{rl.KeyD, core.DirRight},
}

// Keyboard implements core.InputSource with raylib key polling.
// The last pressed direction key stays latched until another replaces it.
type Keyboard struct {
	dir    core.Direction
	hasDir bool
	quit   bool
}

// Poll reads key presses since the previous frame. Escape and the close
// button both surface through WindowShouldClose.
func (k *Keyboard) Poll() {
	if rl.WindowShouldClose() {
		k.quit = true
		return
	}

	for _, dk := range directionKeys {
		if rl.IsKeyPressed(dk.key) {
			k.dir = dk.dir
			k.hasDir = true
		}
	}
}

// QuitRequested reports whether the window was asked to close.
func (k *Keyboard) QuitRequested() bool {
	return k.quit
}

// LastDirection returns the most recently pressed direction key.
func (k *Keyboard) LastDirection() (core.Direction, bool) {
	return k.dir, k.hasDir
}
