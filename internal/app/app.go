//go:build ebiten

// Package app adapts a running episode to the ebiten game loop for the
// interactive viewer.
package app

import (
	"time"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/episode"
	"github.com/hagrid67/flatland-2019/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an episode to the ebiten.Game interface.
type Game struct {
	ep      *episode.Episode
	painter *render.GridPainter
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided episode, stepping it at tps.
func New(ep *episode.Episode, scale, tps int, seed int64) *Game {
	return &Game{
		ep:      ep,
		painter: render.NewGridPainter(ep.Width(), ep.Height()),
		pacer:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset replays the episode placement with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	// A placement that worked once works again; the error only matters on
	// first construction.
	_ = g.ep.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the episode.
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
		g.ep.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pacer.ShouldStep() {
		g.ep.Step()
	}
	return nil
}

// Draw renders the current episode state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ep.Cells(), render.Palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ep.Width() * g.scale, g.ep.Height() * g.scale
}
