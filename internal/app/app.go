//go:build ebiten

package app

import (
	"image/color"
	"strconv"
	"time"

	"majority-ca/internal/core"
	"majority-ca/internal/render"
	"majority-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	running  bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. sps sets the auto-run
// rate in generations per second and hudWidth the control panel width.
func New(sim core.Sim, scale, sps, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim),
		stepper:  core.NewFixedStep(sps),
		onColor:  color.RGBA{R: 236, G: 226, B: 200, A: 255},
		offColor: color.RGBA{R: 24, G: 20, B: 18, A: 255},
		scale:    scale,
	}
}

// Reset refills the grid from the sim's current random stream.
func (g *Game) Reset() error {
	g.tickOnce = false
	g.stepper.Restart()
	return g.sim.Reset()
}

// Reseed draws a fresh seed from the clock, then resets.
func (g *Game) Reseed() error {
	if seeder, ok := g.sim.(core.Seeder); ok {
		seeder.SeedRandom(strconv.FormatInt(time.Now().UnixNano(), 36))
	}
	return g.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
		g.stepper.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reseed(); err != nil {
			return err
		}
	}

	g.hud.Update(g.sim.Size().W * g.scale)
	g.overlay.Update()

	if g.tickOnce || (g.running && g.stepper.ShouldStep()) {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, size.W, size.H, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, size.W*g.scale, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
