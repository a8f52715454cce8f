package game

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/view-animation/internal/anim"
	"github.com/iburimskiy/view-animation/internal/asset"
	"github.com/iburimskiy/view-animation/internal/config"
)

// Game runs the animation inside an Ebiten window. The screen is only
// repainted after the director asked for it, so the main loop must be
// started with ebiten.SetScreenClearedEveryFrame(false).
type Game struct {
	director *anim.Director
	painter  *painter
	dirty    bool
}

func New(img *asset.Image, rng *rand.Rand) (*Game, error) {
	p, err := newPainter(img)
	if err != nil {
		return nil, err
	}
	g := &Game{
		painter: p,
		dirty:   true, // first frame
	}
	g.director = anim.NewDirector(config.WindowWidth, config.WindowHeight, rng, g)
	return g, nil
}

// RequestRepaint marks the screen stale. Requests made between two draws
// collapse into one repaint.
func (g *Game) RequestRepaint() {
	g.dirty = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.director.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	g.repaint(b.Dx(), b.Dy(), func(f anim.Frame) {
		g.painter.paint(screen, f)
	})
}

// repaint hands a freshly planned frame to paint if a repaint is pending,
// and reports whether it did. Planning a frame moves the particles.
func (g *Game) repaint(width, height int, paint func(anim.Frame)) bool {
	if !g.dirty {
		return false
	}
	g.dirty = false
	paint(g.director.RenderFrame(width, height))
	return true
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
