//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cavegen/internal/core"
	"cavegen/internal/render"
	"cavegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the parameter panel width in pixels.
const hudWidth = 240

// Game adapts a cave Session to the ebiten.Game interface. Smoothing steps
// are played back at the configured rate so the cave can be watched forming.
type Game struct {
	session  *Session
	painter  *render.GridPainter
	overlay  *ui.Overlay
	hud      *ui.HUD
	playback *core.Playback

	solidColor color.Color
	emptyColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	showGrid bool
}

// New constructs a Game for s.
func New(s *Session, cfg *Config) *Game {
	w, h := s.Size()
	g := &Game{
		session:    s,
		painter:    render.NewGridPainter(w, h),
		overlay:    ui.NewOverlay(cfg.Scale, render.Fill, render.Stroke),
		playback:   core.NewPlayback(cfg.TPS),
		solidColor: color.RGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff},
		emptyColor: render.Background,
		scale:      cfg.Scale,
		showGrid:   true,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(s, hudWidth)
	}
	return g
}

// Reset rebuilds the cave from seed and restarts playback.
func (g *Game) Reset(seed int64) error {
	if err := g.session.Regenerate(seed); err != nil {
		return err
	}
	g.playback.Restart()
	g.tickOnce = false
	return nil
}

// Update handles per-frame logic and advances playback.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Finish()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.session.Seed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	w, _ := g.session.Size()
	g.hud.Update(w * g.scale)
	g.overlay.Update()
	g.ensurePainter()

	if g.tickOnce || (!g.paused && g.playback.Due(time.Now())) {
		g.session.Advance()
		g.tickOnce = false
	}
	return nil
}

// ensurePainter follows size changes made from the HUD.
func (g *Game) ensurePainter() {
	w, h := g.session.Size()
	if pw, ph := g.painter.Size(); pw != w || ph != h {
		g.painter = render.NewGridPainter(w, h)
	}
}

// Draw renders the current generation, its outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.emptyColor)
	if g.showGrid {
		g.painter.Blit(screen, g.session.Grid(), g.solidColor, g.emptyColor, g.scale)
	}
	g.overlay.Draw(screen, g.session.Contours())
	w, _ := g.session.Size()
	g.hud.Draw(screen, w*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.session.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
