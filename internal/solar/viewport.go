package solar

import "solarsystem/internal/camera"

// Surface is the output the renderer draws into.
type Surface interface {
	SetViewportSize(width, height int32)
}

// Viewport keeps the camera and the output surface in step with the window.
type Viewport struct {
	Camera  *camera.Perspective
	Surface Surface
}

// Resize applies new viewport dimensions. A zero-sized viewport, as reported
// for a minimised window, is ignored.
func (v *Viewport) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Camera.Aspect = float32(width) / float32(height)
	v.Camera.UpdateProjection()
	v.Surface.SetViewportSize(width, height)
}
