package solar

import (
	"solarsystem/internal/camera"
	"solarsystem/internal/engine"
)

// SpinPerFrame is the self-rotation, in radians, every body gets each frame.
const SpinPerFrame = 0.01

// Controls is advanced once per frame, before drawing.
type Controls interface {
	Advance()
}

// Renderer draws the scene from a camera.
type Renderer interface {
	Render(scene *engine.Scene, cam *camera.Perspective)
}

// Loop is the per-frame update. The host calls Frame once per display
// refresh; it never blocks and never runs concurrently with itself.
type Loop struct {
	scene     *engine.Scene
	camera    *camera.Perspective
	assembler *Assembler
	controls  Controls
	renderer  Renderer

	frames uint64
}

func NewLoop(scene *engine.Scene, cam *camera.Perspective, assembler *Assembler, controls Controls, renderer Renderer) *Loop {
	return &Loop{
		scene:     scene,
		camera:    cam,
		assembler: assembler,
		controls:  controls,
		renderer:  renderer,
	}
}

// Step advances every tracked body by one frame.
func (l *Loop) Step() {
	for _, b := range l.assembler.Bodies() {
		b.Visual.Transform.Rotation.Y += SpinPerFrame
		if b.Pivot != nil {
			b.Pivot.Transform.Rotation.Y += b.OrbitSpeed
		}
	}
}

// Frame applies finished loads, animates, advances the controls and draws.
func (l *Loop) Frame() {
	l.assembler.Pump()
	l.Step()
	if l.controls != nil {
		l.controls.Advance()
	}
	l.renderer.Render(l.scene, l.camera)
	l.frames++
}

func (l *Loop) Frames() uint64 {
	return l.frames
}
