package game

import (
	"errors"
	"log"
	"os"
	"solarsystem/internal/assets"
	"solarsystem/internal/bodies"
	"solarsystem/internal/camera"
	"solarsystem/internal/config"
	"solarsystem/internal/engine"
	"solarsystem/internal/solar"
	"solarsystem/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game is the application context: everything the frame loop touches is
// created once in New and lives until Run returns.
type Game struct {
	Config config.Config
	Table  bodies.Table

	Scene     *engine.Scene
	Camera    *camera.Perspective
	Controls  *camera.OrbitControls
	Renderer  *world.Renderer
	Loader    *assets.Loader
	Assembler *solar.Assembler
	Loop      *solar.Loop
	Viewport  *solar.Viewport

	hud *hud
}

func New(cfg config.Config, table bodies.Table) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height

	cam := camera.NewPerspective(cfg.Camera.FOV, float32(w)/float32(h), cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = vec3(cfg.Camera.Position)
	cam.Target = vec3(cfg.Camera.Target)

	controls := camera.NewOrbitControls()
	controls.Damping = cfg.Camera.Damping
	controls.MinDistance = cfg.Camera.MinDistance
	controls.MaxDistance = cfg.Camera.MaxDistance

	scene := engine.NewScene("Solar System")
	renderer := world.NewRenderer(w, h)
	renderer.Culling = cfg.Culling

	loader := assets.NewLoader(os.DirFS(cfg.AssetRoot), assets.RaylibDecoder{Root: cfg.AssetRoot})
	assembler := solar.NewAssembler(scene, loader)
	assembler.OrbitColor = assets.LookupColor(cfg.OrbitColor)
	assembler.SetOrbitsVisible(cfg.ShowOrbits)

	g := &Game{
		Config:    cfg,
		Table:     table,
		Scene:     scene,
		Camera:    cam,
		Controls:  controls,
		Renderer:  renderer,
		Loader:    loader,
		Assembler: assembler,
		Loop:      solar.NewLoop(scene, cam, assembler, controls, renderer),
		Viewport:  &solar.Viewport{Camera: cam, Surface: renderer},
	}
	g.hud = newHUD(g, cfg.ShowHUD)
	assembler.OnFailure.AddListener(g.hud.addFailure)
	renderer.Overlay = g.hud.Draw
	return g
}

func (g *Game) windowFlags() uint32 {
	flags := uint32(rl.FlagWindowResizable)
	if g.Config.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	if g.Config.Window.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	if g.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	return flags
}

// Run opens the window and drives the frame loop until the window closes.
func (g *Game) Run() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(g.windowFlags())
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	if !rl.IsWindowReady() {
		return errors.New("window: initialization failed")
	}
	defer rl.CloseWindow()

	if g.Config.Window.TargetFPS > 0 {
		rl.SetTargetFPS(g.Config.Window.TargetFPS)
	}

	// GPU resources need the GL context, so requests start after InitWindow.
	defer g.Loader.Unload()
	initHUDStyle()

	g.Controls.Attach(g.Camera, camera.RaylibInput{Captured: g.hud.Captured})
	g.Renderer.SetPixelDensityScale(rl.GetWindowScaleDPI().X)
	g.Viewport.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	g.Assembler.Request(g.Table)
	if g.Config.Background != "" {
		g.Assembler.RequestBackground(g.Config.Background)
	}
	log.Printf("Scene: requested %d bodies", len(g.Table))

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			g.Viewport.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		g.handleKeys()
		g.Loop.Frame()
	}
	return nil
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.hud.visible = !g.hud.visible
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.Assembler.SetOrbitsVisible(!g.Assembler.OrbitsVisible())
	}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
