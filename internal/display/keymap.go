package display

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keypad maps the keyboard to the hexadecimal keypad. The left hand side
// of a QWERTY keyboard mirrors the 4x4 keypad layout:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keypad = [...]struct {
	key   ebiten.Key
	index int
}{
	{ebiten.Key1, 0x1},
	{ebiten.Key2, 0x2},
	{ebiten.Key3, 0x3},
	{ebiten.Key4, 0xC},
	{ebiten.KeyQ, 0x4},
	{ebiten.KeyW, 0x5},
	{ebiten.KeyE, 0x6},
	{ebiten.KeyR, 0xD},
	{ebiten.KeyA, 0x7},
	{ebiten.KeyS, 0x8},
	{ebiten.KeyD, 0x9},
	{ebiten.KeyF, 0xE},
	{ebiten.KeyZ, 0xA},
	{ebiten.KeyX, 0x0},
	{ebiten.KeyC, 0xB},
	{ebiten.KeyV, 0xF},
}

// Control keys of the emulator window.
const (
	keyQuit  = ebiten.KeyEscape
	keyPause = ebiten.KeyP
	keyStep  = ebiten.KeyN
	keyReset = ebiten.KeyBackspace
)
