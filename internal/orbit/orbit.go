// Package orbit builds the reference circles drawn under orbiting bodies.
package orbit

import (
	"fmt"
	"math"
	"solarsystem/internal/components"
	"solarsystem/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Segments is the number of line segments approximating a circle.
const Segments = 100

// Tag marks orbit path nodes in the scene.
const Tag = "orbitPath"

// Points returns Segments+1 points on a circle of radius r in the XZ plane,
// centred at the origin. The last point repeats the first.
func Points(r float32) []rl.Vector3 {
	pts := make([]rl.Vector3, Segments+1)
	for i := range Segments {
		t := 2 * math.Pi * float64(i) / Segments
		pts[i] = rl.Vector3{
			X: r * float32(math.Cos(t)),
			Y: 0,
			Z: r * float32(math.Sin(t)),
		}
	}
	pts[Segments] = pts[0]
	return pts
}

// NewPath returns a node drawing the circle of radius r. r must be positive.
func NewPath(r float32, color rl.Color) *engine.GameObject {
	path := engine.NewGameObject(fmt.Sprintf("Orbit_%g", r))
	path.Tags = []string{Tag}
	path.AddComponent(components.NewLineRenderer(Points(r), color))
	return path
}
