package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the pointer state OrbitControls reads once per frame.
type Input interface {
	MouseDelta() rl.Vector2
	WheelMove() float32
	RotateHeld() bool
	PanHeld() bool
}

// RaylibInput reads the mouse through raylib. Left button rotates, right
// button pans, the wheel dollies.
type RaylibInput struct {
	// Captured, when set, reports that another layer (the HUD) owns the pointer.
	Captured func() bool
}

func (in RaylibInput) captured() bool {
	return in.Captured != nil && in.Captured()
}

func (in RaylibInput) MouseDelta() rl.Vector2 {
	return rl.GetMouseDelta()
}

func (in RaylibInput) WheelMove() float32 {
	if in.captured() {
		return 0
	}
	return rl.GetMouseWheelMove()
}

func (in RaylibInput) RotateHeld() bool {
	return !in.captured() && rl.IsMouseButtonDown(rl.MouseLeftButton)
}

func (in RaylibInput) PanHeld() bool {
	return !in.captured() && rl.IsMouseButtonDown(rl.MouseRightButton)
}
