package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled input state for one frame.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// DropPressed is true on the frame the drop-through key is pressed.
	DropPressed bool
	// PausePressed toggles the pause overlay.
	PausePressed bool
	// CopyPressed requests a clipboard export of the inspected cell.
	CopyPressed bool
	// CursorX/Y is the cursor position in logical screen coordinates.
	CursorX int
	CursorY int
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and, when present, the first gamepad.
func (i *Input) Update() {
	i.CursorX, i.CursorY = ebiten.CursorPosition()

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpJump, gpDrop bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}

		gpJump = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpDrop = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}

	i.MoveX = moveX
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJump
	i.DropPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) ||
		inpututil.IsKeyJustPressed(ebiten.KeyDown) || gpDrop
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
}
