package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"solarsystem/internal/assets"
)

type WindowConfig struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"targetFPS"`
	VSync     bool   `json:"vsync"`
	HighDPI   bool   `json:"highDPI"`
	MSAA      bool   `json:"msaa"`
}

type CameraConfig struct {
	Position    [3]float32 `json:"position"`
	Target      [3]float32 `json:"target"`
	FOV         float32    `json:"fov"`
	Near        float32    `json:"near"`
	Far         float32    `json:"far"`
	Damping     float32    `json:"damping"`
	MinDistance float32    `json:"minDistance"`
	MaxDistance float32    `json:"maxDistance"`
}

// Config is the application configuration. Paths are relative to AssetRoot,
// except Bodies which is relative to the working directory.
type Config struct {
	Window     WindowConfig `json:"window"`
	Camera     CameraConfig `json:"camera"`
	AssetRoot  string       `json:"assetRoot"`
	Background string       `json:"background"`
	// Bodies is an optional JSON body table replacing the built-in one.
	Bodies     string `json:"bodies,omitempty"`
	OrbitColor string `json:"orbitColor"`
	ShowOrbits bool   `json:"showOrbits"`
	ShowHUD    bool   `json:"showHUD"`
	Culling    bool   `json:"culling"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Solar System",
			TargetFPS: 60,
			VSync:     true,
			HighDPI:   true,
			MSAA:      true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 100, 250},
			FOV:         60,
			Near:        0.1,
			Far:         2000,
			MinDistance: 5,
			MaxDistance: 1000,
		},
		AssetRoot:  "assets",
		Background: "textures/stars.jpg",
		OrbitColor: "White",
		ShowOrbits: true,
		ShowHUD:    true,
		Culling:    true,
	}
}

// Load reads a JSON config file on top of Default. Fields missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target FPS must not be negative, got %d", c.Window.TargetFPS))
	}
	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %v", cam.FOV))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		errs = append(errs, fmt.Errorf("camera clip range must satisfy 0 < near < far, got %v..%v", cam.Near, cam.Far))
	}
	if cam.Damping < 0 || cam.Damping > 1 {
		errs = append(errs, fmt.Errorf("camera damping must be in [0, 1], got %v", cam.Damping))
	}
	if cam.MinDistance <= 0 || cam.MaxDistance < cam.MinDistance {
		errs = append(errs, fmt.Errorf("camera distance must satisfy 0 < min <= max, got %v..%v", cam.MinDistance, cam.MaxDistance))
	}
	if cam.Position == cam.Target {
		errs = append(errs, errors.New("camera position and target must differ"))
	}
	if !assets.IsColorName(c.OrbitColor) {
		errs = append(errs, fmt.Errorf("unknown orbit color %q", c.OrbitColor))
	}
	return errors.Join(errs...)
}

// Save writes cfg as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
