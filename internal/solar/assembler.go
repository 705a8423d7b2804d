// Package solar assembles the solar system scene and animates it.
package solar

import (
	"fmt"
	"log"
	"solarsystem/internal/assets"
	"solarsystem/internal/bodies"
	"solarsystem/internal/components"
	"solarsystem/internal/engine"
	"solarsystem/internal/orbit"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Source hands out resources asynchronously. Requests return at once; their
// completions come back, in any order, from later calls to Poll.
type Source interface {
	LoadModel(ref string)
	LoadTexture(ref string)
	Poll() []assets.Completion
}

// Body is a loaded, animated body. Pivot is nil for the central body.
type Body struct {
	Name       string
	Visual     *engine.GameObject
	Pivot      *engine.GameObject
	OrbitSpeed float32
}

// Failure records a resource that never made it into the scene.
type Failure struct {
	Name string // body name, empty for the background
	Ref  string
	Err  error
}

func (f Failure) Error() string {
	if f.Name == "" {
		return f.Err.Error()
	}
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

// Assembler turns load completions into scene nodes.
type Assembler struct {
	OrbitColor rl.Color

	scene  *engine.Scene
	source Source

	pending    map[string][]bodies.Descriptor
	requested  int
	background string
	showOrbits bool

	bodies   []*Body
	failures []Failure

	OnBody    engine.EventWithArg[*Body]
	OnFailure engine.EventWithArg[Failure]
}

func NewAssembler(scene *engine.Scene, source Source) *Assembler {
	return &Assembler{
		OrbitColor: rl.White,
		scene:      scene,
		source:     source,
		pending:    make(map[string][]bodies.Descriptor),
		showOrbits: true,
	}
}

// Request asks the source for every descriptor's model.
func (a *Assembler) Request(table bodies.Table) {
	for _, d := range table {
		a.pending[d.Model] = append(a.pending[d.Model], d)
		a.requested++
		a.source.LoadModel(d.Model)
	}
}

// RequestBackground asks the source for the backdrop texture.
func (a *Assembler) RequestBackground(ref string) {
	a.background = ref
	a.source.LoadTexture(ref)
}

// Pump applies every completion the source has ready.
func (a *Assembler) Pump() {
	for _, c := range a.source.Poll() {
		switch c.Kind {
		case assets.KindModel:
			a.completeModel(c)
		case assets.KindTexture:
			a.completeTexture(c)
		}
	}
}

func (a *Assembler) completeModel(c assets.Completion) {
	queue := a.pending[c.Ref]
	if len(queue) == 0 {
		log.Printf("Scene: unexpected model completion for %s", c.Ref)
		return
	}
	d := queue[0]
	if len(queue) == 1 {
		delete(a.pending, c.Ref)
	} else {
		a.pending[c.Ref] = queue[1:]
	}

	if c.Err != nil {
		a.fail(Failure{Name: d.Name, Ref: c.Ref, Err: c.Err})
		return
	}

	visual := engine.NewGameObject(d.Name)
	visual.Tags = []string{"body"}
	visual.AddComponent(components.NewModelRenderer(c.Model, c.Bounds))
	a.place(d, visual)
}

// place wires a loaded visual into the scene and starts tracking it.
func (a *Assembler) place(d bodies.Descriptor, visual *engine.GameObject) {
	visual.Transform.Scale = rl.Vector3{X: d.Scale, Y: d.Scale, Z: d.Scale}

	body := &Body{Name: d.Name, Visual: visual}
	if d.Orbits() {
		pivot := engine.NewGameObject(d.Name + "_Pivot")
		a.scene.AddGameObject(pivot)
		pivot.AddChild(visual)
		visual.Transform.Position = rl.Vector3{X: d.OrbitRadius}

		path := orbit.NewPath(d.OrbitRadius, a.OrbitColor)
		path.Active = a.showOrbits
		a.scene.AddGameObject(path)

		body.Pivot = pivot
		body.OrbitSpeed = d.OrbitSpeed
	} else {
		visual.Transform.Position = rl.Vector3Zero()
		a.scene.AddGameObject(visual)
	}

	a.bodies = append(a.bodies, body)
	log.Printf("Scene: loaded %s", d.Name)
	a.OnBody.Invoke(body)
}

func (a *Assembler) completeTexture(c assets.Completion) {
	if c.Ref != a.background {
		log.Printf("Scene: unexpected texture completion for %s", c.Ref)
		return
	}
	if c.Err != nil {
		a.fail(Failure{Ref: c.Ref, Err: c.Err})
		return
	}
	tex := c.Texture
	a.scene.Background = &tex
}

func (a *Assembler) fail(f Failure) {
	log.Printf("Assets: warning: %v", f)
	a.failures = append(a.failures, f)
	a.OnFailure.Invoke(f)
}

// Bodies returns the tracked bodies in load order. The slice only grows.
func (a *Assembler) Bodies() []*Body {
	return a.bodies
}

func (a *Assembler) Failures() []Failure {
	return a.failures
}

// Requested is the number of bodies asked for so far.
func (a *Assembler) Requested() int {
	return a.requested
}

// Waiting is the number of bodies whose model has not completed yet.
func (a *Assembler) Waiting() int {
	n := 0
	for _, q := range a.pending {
		n += len(q)
	}
	return n
}

// SetOrbitsVisible shows or hides every orbit path, current and future.
func (a *Assembler) SetOrbitsVisible(visible bool) {
	a.showOrbits = visible
	for _, path := range a.scene.FindByTag(orbit.Tag) {
		path.Active = visible
	}
}

func (a *Assembler) OrbitsVisible() bool {
	return a.showOrbits
}
