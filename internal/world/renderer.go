package world

import (
	"solarsystem/internal/camera"
	"solarsystem/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounded is implemented by drawables that can be frustum culled.
type Bounded interface {
	BoundingSphere() (center rl.Vector3, radius float32, ok bool)
}

type Renderer struct {
	ClearColor rl.Color
	// Overlay runs after the 3D pass, in screen space.
	Overlay func()
	Culling bool

	width      int32
	height     int32
	pixelScale float32

	drawn  int
	culled int
}

func NewRenderer(width, height int32) *Renderer {
	return &Renderer{
		ClearColor: rl.Black,
		Culling:    true,
		width:      width,
		height:     height,
		pixelScale: 1,
	}
}

// SetViewportSize sets the output size in screen coordinates.
func (r *Renderer) SetViewportSize(width, height int32) {
	r.width = width
	r.height = height
}

// SetPixelDensityScale sets the ratio of framebuffer pixels to screen
// coordinates.
func (r *Renderer) SetPixelDensityScale(factor float32) {
	if factor <= 0 {
		factor = 1
	}
	r.pixelScale = factor
}

func (r *Renderer) ViewportSize() (width, height int32) {
	return r.width, r.height
}

func (r *Renderer) PixelDensityScale() float32 {
	return r.pixelScale
}

// Stats returns the drawables drawn and culled during the last frame.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

// Render draws one frame of scene seen through cam.
func (r *Renderer) Render(scene *engine.Scene, cam *camera.Perspective) {
	rl.BeginDrawing()
	rl.ClearBackground(r.ClearColor)

	if scene.Background != nil {
		bg := *scene.Background
		rl.DrawTexturePro(
			bg,
			rl.Rectangle{X: 0, Y: 0, Width: float32(bg.Width), Height: float32(bg.Height)},
			rl.Rectangle{X: 0, Y: 0, Width: float32(r.width), Height: float32(r.height)},
			rl.Vector2{},
			0,
			rl.White,
		)
	}

	rl.Viewport(0, 0, int32(float32(r.width)*r.pixelScale), int32(float32(r.height)*r.pixelScale))
	rl.BeginMode3D(cam.Raylib())
	rl.SetMatrixProjection(cam.Projection)

	visible := r.Visible(scene, cam)
	for _, d := range visible {
		d.Draw()
	}

	rl.EndMode3D()

	if r.Overlay != nil {
		r.Overlay()
	}
	rl.EndDrawing()
}

// Visible collects the drawables of every active node, skipping inactive
// subtrees and, when culling is on, bounded drawables outside the frustum.
func (r *Renderer) Visible(scene *engine.Scene, cam *camera.Perspective) []engine.Drawable {
	frustum := ExtractFrustum(cam.ViewProjection())
	r.drawn, r.culled = 0, 0

	var out []engine.Drawable
	scene.Walk(func(g *engine.GameObject) bool {
		if !g.Active {
			return false
		}
		for _, c := range g.Components() {
			d, ok := c.(engine.Drawable)
			if !ok {
				continue
			}
			if r.Culling && !inFrustum(&frustum, d) {
				r.culled++
				continue
			}
			out = append(out, d)
		}
		return true
	})
	r.drawn = len(out)
	return out
}

func inFrustum(f *Frustum, d engine.Drawable) bool {
	b, ok := d.(Bounded)
	if !ok {
		return true
	}
	center, radius, ok := b.BoundingSphere()
	if !ok {
		return true
	}
	return f.ContainsSphere(center, radius)
}
