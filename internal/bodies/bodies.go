// Package bodies holds the table of celestial bodies shown in the scene.
package bodies

import (
	"errors"
	"fmt"
)

// Descriptor describes one body's visual and motion parameters.
type Descriptor struct {
	Name  string  `json:"name"`
	Model string  `json:"model"`
	Scale float32 `json:"scale"`
	// OrbitRadius is the distance from the origin. 0 marks the central body.
	OrbitRadius float32 `json:"orbitRadius"`
	// OrbitSpeed is the angle in radians the pivot turns each frame.
	OrbitSpeed float32 `json:"orbitSpeed"`
}

// Orbits reports whether the body revolves around the origin.
func (d Descriptor) Orbits() bool {
	return d.OrbitRadius > 0
}

func (d Descriptor) Validate() error {
	switch {
	case d.Name == "":
		return errors.New("name is required")
	case d.Model == "":
		return fmt.Errorf("%s: model is required", d.Name)
	case d.Scale <= 0:
		return fmt.Errorf("%s: scale must be positive, got %v", d.Name, d.Scale)
	case d.OrbitRadius < 0:
		return fmt.Errorf("%s: orbit radius must not be negative, got %v", d.Name, d.OrbitRadius)
	case !d.Orbits() && d.OrbitSpeed != 0:
		return fmt.Errorf("%s: central body cannot have an orbit speed", d.Name)
	}
	return nil
}

// Table is an ordered list of descriptors. Order only affects request order.
type Table []Descriptor

func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for i, d := range t {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		if seen[d.Name] {
			return fmt.Errorf("body %d: duplicate name %q", i, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Central returns the descriptors that stay at the origin.
func (t Table) Central() Table {
	var out Table
	for _, d := range t {
		if !d.Orbits() {
			out = append(out, d)
		}
	}
	return out
}

// Orbiting returns the descriptors that revolve around the origin.
func (t Table) Orbiting() Table {
	var out Table
	for _, d := range t {
		if d.Orbits() {
			out = append(out, d)
		}
	}
	return out
}

// Default is the Sun and the eight planets. Sizes are relative to Earth,
// except the Sun which is scaled down to fit the view.
func Default() Table {
	return Table{
		{Name: "Sun", Model: "models/sun.glb", Scale: 10, OrbitRadius: 0, OrbitSpeed: 0},
		{Name: "Mercury", Model: "models/mercury.glb", Scale: 0.38, OrbitRadius: 20, OrbitSpeed: 0.04},
		{Name: "Venus", Model: "models/venus.glb", Scale: 0.95, OrbitRadius: 30, OrbitSpeed: 0.015},
		{Name: "Earth", Model: "models/earth.glb", Scale: 1, OrbitRadius: 40, OrbitSpeed: 0.01},
		{Name: "Mars", Model: "models/mars.glb", Scale: 0.53, OrbitRadius: 50, OrbitSpeed: 0.008},
		{Name: "Jupiter", Model: "models/jupiter.glb", Scale: 11.2, OrbitRadius: 70, OrbitSpeed: 0.002},
		{Name: "Saturn", Model: "models/saturn.glb", Scale: 9.45, OrbitRadius: 90, OrbitSpeed: 0.0018},
		{Name: "Uranus", Model: "models/uranus.glb", Scale: 4, OrbitRadius: 110, OrbitSpeed: 0.0012},
		{Name: "Neptune", Model: "models/neptune.glb", Scale: 3.88, OrbitRadius: 130, OrbitSpeed: 0.0009},
	}
}
