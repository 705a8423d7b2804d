package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Perspective is a perspective camera with an explicit projection matrix.
// Call UpdateProjection after changing FOV, Aspect, Near or Far.
type Perspective struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	FOV      float32 // vertical, degrees
	Aspect   float32
	Near     float32
	Far      float32

	Projection rl.Matrix
}

func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Position: rl.Vector3{X: 0, Y: 100, Z: 250},
		Target:   rl.Vector3Zero(),
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjection()
	return c
}

func (c *Perspective) UpdateProjection() {
	c.Projection = rl.MatrixPerspective(c.FOV*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c *Perspective) View() rl.Matrix {
	return rl.MatrixLookAt(c.Position, c.Target, c.Up)
}

// ViewProjection combines View and Projection, view first.
func (c *Perspective) ViewProjection() rl.Matrix {
	return rl.MatrixMultiply(c.View(), c.Projection)
}

func (c *Perspective) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
