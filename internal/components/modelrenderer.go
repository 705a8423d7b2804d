package components

import (
	"solarsystem/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a loaded model with its owner's world transform.
// The model itself is owned by the asset loader and is never unloaded here.
type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Tint  rl.Color
	// Bounds is the model's local bounding box, used for culling.
	// A zero box disables culling for this renderer.
	Bounds rl.BoundingBox
}

func NewModelRenderer(model rl.Model, bounds rl.BoundingBox) *ModelRenderer {
	return &ModelRenderer{
		Model:  model,
		Tint:   rl.White,
		Bounds: bounds,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Tint)
}

// BoundingSphere returns the world-space sphere enclosing the model.
// ok is false when no bounds are known.
func (m *ModelRenderer) BoundingSphere() (center rl.Vector3, radius float32, ok bool) {
	g := m.GetGameObject()
	if g == nil || m.Bounds.Min == m.Bounds.Max {
		return rl.Vector3{}, 0, false
	}

	world := g.WorldMatrix()
	localCenter := rl.Vector3Scale(rl.Vector3Add(m.Bounds.Min, m.Bounds.Max), 0.5)
	center = rl.Vector3Transform(localCenter, world)

	half := rl.Vector3Length(rl.Vector3Subtract(m.Bounds.Max, m.Bounds.Min)) / 2
	s := g.Transform.Scale
	maxScale := max(s.X, s.Y, s.Z)
	for p := g.Parent; p != nil; p = p.Parent {
		ps := p.Transform.Scale
		maxScale *= max(ps.X, ps.Y, ps.Z)
	}
	return center, half * maxScale, true
}
