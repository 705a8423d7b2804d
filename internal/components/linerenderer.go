package components

import (
	"solarsystem/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineRenderer draws a polyline through Points in the owner's local space.
type LineRenderer struct {
	engine.BaseComponent
	Points []rl.Vector3
	Color  rl.Color
}

func NewLineRenderer(points []rl.Vector3, color rl.Color) *LineRenderer {
	return &LineRenderer{
		Points: points,
		Color:  color,
	}
}

func (l *LineRenderer) Draw() {
	g := l.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() || len(l.Points) < 2 {
		return
	}

	world := g.WorldMatrix()
	prev := rl.Vector3Transform(l.Points[0], world)
	for _, p := range l.Points[1:] {
		next := rl.Vector3Transform(p, world)
		rl.DrawLine3D(prev, next, l.Color)
		prev = next
	}
}
