//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
	simcore "mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim     simcore.Sim
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *core.FixedStep

	onColor  color.RGBA
	offColor color.RGBA

	scale     int
	paused    bool
	tickOnce  bool
	seed      int64
	statePath string
}

// New constructs a Game for the provided simulation.
func New(sim simcore.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:       sim,
		session:   NewSession(sim),
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(sim, cfg.HUDWidth),
		pace:      core.NewFixedInterval(cfg.Delay),
		onColor:   color.RGBA{R: 120, G: 230, B: 120, A: 255},
		offColor:  color.RGBA{A: 255},
		scale:     cfg.Scale,
		seed:      cfg.Seed,
		statePath: cfg.State,
	}
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
		g.session.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.session.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if err := g.session.Save(g.statePath); err != nil {
			log.Printf("save %s: %v", g.statePath, err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := g.session.Load(g.statePath); err != nil {
			log.Printf("load %s: %v", g.statePath, err)
		}
	}

	if g.tickOnce || (!g.paused && g.pace.ShouldStep()) {
		g.session.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.session.Stats(g.paused))
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
