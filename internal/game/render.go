package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/view-animation/internal/anim"
	"github.com/iburimskiy/view-animation/internal/asset"
	"github.com/iburimskiy/view-animation/internal/config"
	"golang.org/x/image/font/gofont/gobold"
)

// painter turns an anim.Frame into pixels.
type painter struct {
	image         *ebiten.Image
	width, height int
	face          *text.GoTextFace

	gradient *ebiten.Image
}

func newPainter(img *asset.Image) (*painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &painter{
		image:  ebiten.NewImageFromImage(img.Pixels),
		width:  img.Width,
		height: img.Height,
		face:   &text.GoTextFace{Source: src, Size: config.LabelSize},
	}, nil
}

func (p *painter) paint(screen *ebiten.Image, f anim.Frame) {
	// Background
	p.drawBackground(screen, f.Width, f.Height)

	// Particles
	particleColor := toRGBA(config.ParticleColor)
	for _, pt := range f.Particles {
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), config.ParticleRadius, particleColor, true)
	}

	switch f.Phase {
	case anim.PhaseCircle:
		p.drawCircle(screen, f)
	case anim.PhaseImage:
		p.drawImage(screen, f.Image)
	}
}

func (p *painter) drawBackground(screen *ebiten.Image, width, height int) {
	if p.gradient == nil || p.gradient.Bounds().Dx() != width || p.gradient.Bounds().Dy() != height {
		if p.gradient != nil {
			p.gradient.Deallocate()
		}
		p.gradient = ebiten.NewImageFromImage(gradientImage(width, height, config.GradientTop, config.GradientBottom))
	}
	screen.DrawImage(p.gradient, nil)
}

func (p *painter) drawCircle(screen *ebiten.Image, f anim.Frame) {
	vector.DrawFilledCircle(screen, float32(f.Circle.X), float32(f.Circle.Y), config.CircleRadius, toRGBA(config.CircleColor), true)

	// Label point is the baseline origin; text.Draw wants the top of the line.
	op := &text.DrawOptions{}
	op.GeoM.Translate(f.Label.X, f.Label.Y-p.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(toRGBA(config.LabelColor))
	text.Draw(screen, config.LabelText, p.face, op)
}

func (p *painter) drawImage(screen *ebiten.Image, t anim.ImageTransform) {
	op := &ebiten.DrawImageOptions{
		GeoM:   imageGeoM(t, p.width, p.height),
		Filter: ebiten.FilterLinear,
	}
	screen.DrawImage(p.image, op)
}
