package main

import (
	"github.com/CatPunch007/LittleWitch/common"
	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// keyboardInput reads keyboard and the first gamepad. Jump is Space or the
// top face button, dash is left shift or the left face button.
type keyboardInput struct{}

func (k *keyboardInput) Poll(tick int) mover.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	dashPressed := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := common.Deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), stickDeadzone)
		if leftX != 0 {
			moveX = leftX
		}

		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		dashPressed = dashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	return mover.Input{
		Axis:        moveX,
		JumpPressed: jumpPressed,
		DashPressed: dashPressed,
	}
}

// active reports whether the player touched any control this frame.
func (k *keyboardInput) active() bool {
	in := k.Poll(0)
	return in.Axis != 0 || in.JumpPressed || in.DashPressed
}
