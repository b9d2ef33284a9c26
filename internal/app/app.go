//go:build ebiten

package app

import (
	"log/slog"

	"contraption/internal/render"
	"contraption/internal/sims/beams"
	"contraption/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	logger  *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	finished bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, logger *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, beams.Palette()),
		logger:  logger,
		scale:   scale,
	}
}

// Reset restarts the simulation.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
	g.finished = false
	g.logger.Debug("Simulation reset.", "sim", g.sim.Name())
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
		g.Reset()
	}

	if (!g.paused || g.tickOnce) && !g.finished {
		if !g.sim.Step() {
			g.finished = true
			g.logger.Info("Simulation finished.", "sim", g.sim.Name(), "status", g.sim.Status())
		}
		g.tickOnce = false
		ebiten.SetWindowTitle(g.sim.Name() + ": " + g.sim.Status())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
