package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Sun")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneAddGameObjectTwiceKeepsOneRoot(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Sun")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 root, got %d", len(scene.GameObjects))
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Sun")
	obj2 := NewGameObject("Earth")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject should not keep its scene")
	}
}

func TestSceneReparentRootUnderChild(t *testing.T) {
	scene := NewScene("Test")
	pivot := NewGameObject("Pivot")
	planet := NewGameObject("Earth")

	scene.AddGameObject(pivot)
	scene.AddGameObject(planet)
	pivot.AddChild(planet)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != pivot {
		t.Fatalf("Expected only the pivot at the root, got %d roots", len(scene.GameObjects))
	}
	if planet.Scene != scene {
		t.Error("Reparented child should stay in the scene")
	}

	// Moving it back to the root detaches it from the pivot.
	scene.AddGameObject(planet)
	if planet.Parent != nil {
		t.Error("Root node should have no parent")
	}
	if len(pivot.Children) != 0 {
		t.Errorf("Pivot should have no children, got %d", len(pivot.Children))
	}
	if len(scene.GameObjects) != 2 {
		t.Errorf("Expected 2 roots, got %d", len(scene.GameObjects))
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	pivot := NewGameObject("Pivot")
	planet := NewGameObject("Mars")
	scene.AddGameObject(pivot)
	pivot.AddChild(planet)

	if found := scene.FindByName("Mars"); found != planet {
		t.Error("FindByName should search descendants")
	}

	if scene.FindByName("Pluto") != nil {
		t.Error("FindByName should return nil for unknown names")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	a.Tags = []string{"orbitPath"}
	b := NewGameObject("B")
	c := NewGameObject("C")
	c.Tags = []string{"orbitPath"}

	scene.AddGameObject(a)
	scene.AddGameObject(b)
	b.AddChild(c)

	found := scene.FindByTag("orbitPath")
	if len(found) != 2 {
		t.Errorf("Expected 2 tagged objects, got %d", len(found))
	}
}

func TestSceneWalkSkipsPrunedSubtrees(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Root")
	hidden := NewGameObject("Hidden")
	leaf := NewGameObject("Leaf")
	scene.AddGameObject(root)
	root.AddChild(hidden)
	hidden.AddChild(leaf)

	var visited []string
	scene.Walk(func(g *GameObject) bool {
		visited = append(visited, g.Name)
		return g != hidden
	})

	if len(visited) != 2 || visited[0] != "Root" || visited[1] != "Hidden" {
		t.Errorf("Unexpected walk order %v", visited)
	}

	if n := scene.Count(); n != 3 {
		t.Errorf("Expected 3 nodes, got %d", n)
	}
}

func TestEventWithArgInvokesListeners(t *testing.T) {
	var ev EventWithArg[int]
	sum := 0
	ev.AddListener(func(v int) { sum += v })
	ev.AddListener(func(v int) { sum += v * 10 })
	ev.AddListener(nil)

	ev.Invoke(2)

	if sum != 22 {
		t.Errorf("Expected 22, got %d", sum)
	}
	if ev.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", ev.GetListenerCount())
	}

	ev.RemoveAllListeners()
	ev.Invoke(5)
	if sum != 22 {
		t.Error("Listeners should be cleared")
	}
}
