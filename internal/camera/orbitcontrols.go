package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const minPolarMargin = 0.01

// OrbitControls moves a camera on a sphere around its target.
// Dragging changes azimuth and polar angle, the wheel changes the radius and
// panning moves the target with the camera.
type OrbitControls struct {
	RotateSpeed float32 // radians per pixel of drag
	ZoomSpeed   float32
	PanSpeed    float32 // world units per pixel, per unit of distance
	// Damping in (0, 1] leaves inertia after a drag, decaying by (1-Damping)
	// every tick. 0 stops the camera as soon as input stops.
	Damping float32

	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	camera *Perspective
	input  Input

	deltaAzimuth float32
	deltaPolar   float32
	zoom         float32
	pan          rl.Vector3
}

func NewOrbitControls() *OrbitControls {
	return &OrbitControls{
		RotateSpeed: 0.005,
		ZoomSpeed:   1,
		PanSpeed:    0.001,
		MinDistance: 5,
		MaxDistance: 1000,
		MinPolar:    minPolarMargin,
		MaxPolar:    math.Pi - minPolarMargin,
		zoom:        1,
	}
}

// Attach binds the controls to a camera and an input source.
func (o *OrbitControls) Attach(cam *Perspective, input Input) {
	o.camera = cam
	o.input = input
	o.deltaAzimuth, o.deltaPolar = 0, 0
	o.zoom = 1
	o.pan = rl.Vector3{}
}

// Advance reads one tick of input and moves the camera.
func (o *OrbitControls) Advance() {
	if o.camera == nil {
		return
	}
	if o.input != nil {
		o.readInput()
	}
	if o.idle() {
		return
	}

	step := float32(1)
	if o.Damping > 0 {
		step = o.Damping
	}

	cam := o.camera
	r, polar, azimuth := toSpherical(rl.Vector3Subtract(cam.Position, cam.Target))
	azimuth += o.deltaAzimuth * step
	polar = mgl32.Clamp(polar+o.deltaPolar*step, o.MinPolar, o.MaxPolar)
	r = mgl32.Clamp(r*o.zoom, o.MinDistance, o.MaxDistance)

	cam.Target = rl.Vector3Add(cam.Target, rl.Vector3Scale(o.pan, step))
	cam.Position = rl.Vector3Add(cam.Target, fromSpherical(r, polar, azimuth))

	o.zoom = 1
	if o.Damping > 0 {
		keep := 1 - o.Damping
		o.deltaAzimuth = settle(o.deltaAzimuth * keep)
		o.deltaPolar = settle(o.deltaPolar * keep)
		o.pan = rl.Vector3{X: settle(o.pan.X * keep), Y: settle(o.pan.Y * keep), Z: settle(o.pan.Z * keep)}
	} else {
		o.deltaAzimuth, o.deltaPolar = 0, 0
		o.pan = rl.Vector3{}
	}
}

func (o *OrbitControls) readInput() {
	d := o.input.MouseDelta()

	if o.input.RotateHeld() {
		o.deltaAzimuth -= d.X * o.RotateSpeed
		o.deltaPolar -= d.Y * o.RotateSpeed
	}

	if o.input.PanHeld() {
		cam := o.camera
		offset := rl.Vector3Subtract(cam.Position, cam.Target)
		forward := rl.Vector3Normalize(rl.Vector3Negate(offset))
		right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
		up := rl.Vector3CrossProduct(right, forward)

		s := o.PanSpeed * rl.Vector3Length(offset)
		o.pan = rl.Vector3Add(o.pan, rl.Vector3Scale(right, -d.X*s))
		o.pan = rl.Vector3Add(o.pan, rl.Vector3Scale(up, d.Y*s))
	}

	if w := o.input.WheelMove(); w != 0 {
		o.zoom *= float32(math.Pow(0.95, float64(o.ZoomSpeed*w)))
	}
}

func (o *OrbitControls) idle() bool {
	return o.deltaAzimuth == 0 && o.deltaPolar == 0 && o.zoom == 1 && o.pan == (rl.Vector3{})
}

func settle(v float32) float32 {
	if v > -1e-6 && v < 1e-6 {
		return 0
	}
	return v
}

// toSpherical converts a Y-up offset to radius, polar angle from +Y and
// azimuth measured from +X towards +Z.
func toSpherical(v rl.Vector3) (r, polar, azimuth float32) {
	r = mgl32.Vec3{v.X, v.Y, v.Z}.Len()
	if r == 0 {
		return 0, 0, 0
	}
	polar = float32(math.Acos(float64(mgl32.Clamp(v.Y/r, -1, 1))))
	azimuth = float32(math.Atan2(float64(v.Z), float64(v.X)))
	return r, polar, azimuth
}

func fromSpherical(r, polar, azimuth float32) rl.Vector3 {
	// mgl32 puts the polar axis on Z.
	c := mgl32.SphericalToCartesian(r, polar, azimuth)
	return rl.Vector3{X: c.X(), Y: c.Z(), Z: c.Y()}
}
