package game

import (
	"fmt"
	"solarsystem/internal/solar"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxHUDFailures = 3

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextHi    = rl.NewColor(255, 255, 255, 255)
	colorWarning   = rl.NewColor(255, 140, 90, 255)
)

// initHUDStyle sets up the dark indigo raygui theme.
func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextHi))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextHi))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// hud is the status overlay: load progress, culling stats, recent load
// failures and the orbit path toggle.
type hud struct {
	game     *Game
	visible  bool
	bounds   rl.Rectangle
	failures []string
}

func newHUD(g *Game, visible bool) *hud {
	return &hud{
		game:    g,
		visible: visible,
		bounds:  rl.Rectangle{X: 10, Y: 10, Width: 260, Height: 0},
	}
}

func (h *hud) addFailure(f solar.Failure) {
	h.failures = append(h.failures, f.Error())
	if len(h.failures) > maxHUDFailures {
		h.failures = h.failures[len(h.failures)-maxHUDFailures:]
	}
}

// Captured reports whether the pointer is over the overlay.
func (h *hud) Captured() bool {
	return h.visible && rl.CheckCollisionPointRec(rl.GetMousePosition(), h.bounds)
}

type status struct {
	loaded, requested, waiting int
	drawn, culled              int
	frames                     uint64
}

func (h *hud) status() status {
	drawn, culled := h.game.Renderer.Stats()
	return status{
		loaded:    len(h.game.Assembler.Bodies()),
		requested: h.game.Assembler.Requested(),
		waiting:   h.game.Assembler.Waiting(),
		drawn:     drawn,
		culled:    culled,
		frames:    h.game.Loop.Frames(),
	}
}

func statusLines(s status) []string {
	lines := []string{
		fmt.Sprintf("Bodies: %d/%d", s.loaded, s.requested),
	}
	if s.waiting > 0 {
		lines = append(lines, fmt.Sprintf("Loading: %d", s.waiting))
	}
	lines = append(lines,
		fmt.Sprintf("Drawn: %d  Culled: %d", s.drawn, s.culled),
		fmt.Sprintf("Frame: %d", s.frames),
	)
	return lines
}

func (h *hud) Draw() {
	if !h.visible {
		return
	}

	const lineHeight = 20
	lines := statusLines(h.status())
	h.bounds.Height = float32(40 + lineHeight*(len(lines)+len(h.failures)+1))

	gui.Panel(h.bounds, "Solar System")

	x := h.bounds.X + 10
	y := h.bounds.Y + 30
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: h.bounds.Width - 20, Height: lineHeight}, line)
		y += lineHeight
	}

	show := gui.CheckBox(rl.Rectangle{X: x, Y: y + 2, Width: 16, Height: 16}, "Show orbits (O)", h.game.Assembler.OrbitsVisible())
	if show != h.game.Assembler.OrbitsVisible() {
		h.game.Assembler.SetOrbitsVisible(show)
	}
	y += lineHeight

	for _, msg := range h.failures {
		rl.DrawText(msg, int32(x), int32(y+4), 10, colorWarning)
		y += lineHeight
	}

	rl.DrawFPS(int32(h.bounds.X), int32(h.bounds.Y+h.bounds.Height+5))
}
