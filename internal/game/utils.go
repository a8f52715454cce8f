package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/view-animation/internal/anim"
	"github.com/iburimskiy/view-animation/internal/config"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toRGBA converts a [0,1] color to an opaque color.RGBA.
func toRGBA(c config.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: 255,
	}
}

func lerpRGB(a, b config.RGB, t float64) config.RGB {
	t = clamp01(t)
	return config.RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// gradientImage rasterizes a vertical linear gradient, top to bottom,
// sampling each row at its center.
func gradientImage(width, height int, top, bottom config.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := toRGBA(lerpRGB(top, bottom, (float64(y)+0.5)/float64(height)))
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// imageGeoM maps image pixels of a w x h image onto the canvas: the image
// center goes to t.Center, rotated and scaled about itself.
func imageGeoM(t anim.ImageTransform, w, h int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(w/2), -float64(h/2))
	m.Scale(t.Scale, t.Scale)
	m.Rotate(t.RotationDegrees * math.Pi / 180)
	m.Translate(t.Center.X, t.Center.Y)
	return m
}
