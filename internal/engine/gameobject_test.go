package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("new GameObject should be active")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"planet", "orbitPath"}

	if !obj.HasTag("planet") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("star") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectReparentKeepsSingleParent(t *testing.T) {
	first := NewGameObject("First")
	second := NewGameObject("Second")
	child := NewGameObject("Child")

	first.AddChild(child)
	second.AddChild(child)

	if child.Parent != second {
		t.Error("Child should belong to the last parent")
	}
	if len(first.Children) != 0 {
		t.Errorf("Previous parent still holds %d children", len(first.Children))
	}
	if len(second.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(second.Children))
	}
}

func TestGameObjectAddChildRejectsCycle(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	child.AddChild(parent)
	child.AddChild(child)

	if parent.Parent != nil {
		t.Error("Ancestor must not become a child of its descendant")
	}
	if len(child.Children) != 0 {
		t.Errorf("Expected no children, got %d", len(child.Children))
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestWorldPositionFollowsRotatingParent(t *testing.T) {
	pivot := NewGameObject("Pivot")
	child := NewGameObject("Child")
	child.Transform.Position.X = 40
	child.Transform.Scale = rl.Vector3{X: 3, Y: 3, Z: 3}
	pivot.AddChild(child)

	for _, angle := range []float32{0, 0.5, 1, math.Pi, 4} {
		pivot.Transform.Rotation.Y = angle
		pos := child.WorldPosition()

		if d := rl.Vector3Length(pos); math.Abs(float64(d-40)) > 1e-3 {
			t.Errorf("angle %v: expected distance 40 from origin, got %v", angle, d)
		}
		if math.Abs(float64(pos.Y)) > 1e-4 {
			t.Errorf("angle %v: expected Y=0, got %v", angle, pos.Y)
		}
	}

	pivot.Transform.Rotation.Y = 0
	if pos := child.WorldPosition(); math.Abs(float64(pos.X-40)) > 1e-4 {
		t.Errorf("Unrotated pivot should leave child at X=40, got %v", pos)
	}
}

func TestActiveInHierarchy(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	if !child.ActiveInHierarchy() {
		t.Error("Child should be active when every ancestor is")
	}

	parent.Active = false
	if child.ActiveInHierarchy() {
		t.Error("Child should be inactive when its parent is")
	}
}
