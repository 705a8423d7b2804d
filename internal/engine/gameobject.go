package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in radians
	Scale    rl.Vector3
}

// Matrix returns the local transform: scale -> rotate (X, Y, Z) -> translate.
func (t Transform) Matrix() rl.Matrix {
	scaleMatrix := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)

	rotX := rl.MatrixRotateX(t.Rotation.X)
	rotY := rl.MatrixRotateY(t.Rotation.Y)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	transMatrix := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddChild attaches child under g. A node has one parent: the child is first
// detached from its previous parent, or from the scene root list.
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil {
		return
	}
	for p := g; p != nil; p = p.Parent {
		if p == child {
			return
		}
	}
	child.detach()
	child.Parent = g
	child.setScene(g.Scene)
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) detach() {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
		return
	}
	if g.Scene != nil {
		g.Scene.removeRoot(g)
	}
}

func (g *GameObject) setScene(s *Scene) {
	g.Scene = s
	for _, c := range g.Children {
		c.setScene(s)
	}
}

// WorldMatrix composes the local transform with every ancestor.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return rl.Vector3Transform(rl.Vector3Zero(), g.WorldMatrix())
}

// ActiveInHierarchy reports whether g and all of its ancestors are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active {
			return false
		}
	}
	return true
}
