//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mudk-ux/emergence-lab/internal/core"
	"github.com/mudk-ux/emergence-lab/internal/render"
)

// paletteProvider is implemented by sims that carry their own colors.
type paletteProvider interface {
	Palette() []color.RGBA
}

var defaultPalette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Game adapts a core simulation to the ebiten.Game interface. Simulation
// stepping is gated by a FixedStep clock so the generation rate stays
// independent of the display refresh rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	palette := defaultPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		palette: palette,
		clock:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.clock.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
