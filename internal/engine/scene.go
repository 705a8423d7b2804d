package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Scene owns the root nodes of the graph. Children hang off their parents and
// are reached through Walk.
type Scene struct {
	Name        string
	GameObjects []*GameObject

	// Background is drawn behind everything when set.
	Background *rl.Texture2D
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

// AddGameObject makes g a root node, detaching it from any previous parent.
func (s *Scene) AddGameObject(g *GameObject) {
	if g == nil {
		return
	}
	g.detach()
	g.Parent = nil
	g.setScene(s)
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	if s.removeRoot(g) {
		g.setScene(nil)
	}
}

func (s *Scene) removeRoot(g *GameObject) bool {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return true
		}
	}
	return false
}

// Walk visits every node depth-first in insertion order. Returning false from
// fn skips that node's children.
func (s *Scene) Walk(fn func(g *GameObject) bool) {
	for _, g := range s.GameObjects {
		walk(g, fn)
	}
}

func walk(g *GameObject, fn func(g *GameObject) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.Children {
		walk(c, fn)
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if found == nil && g.Name == name {
			found = g
		}
		return found == nil
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Count returns the number of nodes in the graph, roots and descendants.
func (s *Scene) Count() int {
	n := 0
	s.Walk(func(*GameObject) bool {
		n++
		return true
	})
	return n
}
