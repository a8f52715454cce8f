package anim

import "github.com/iburimskiy/view-animation/internal/config"

// Phase is what gets drawn on top of the background and particles.
type Phase int

const (
	PhaseCircle Phase = iota
	PhaseImage
)

func (p Phase) String() string {
	if p == PhaseImage {
		return "image"
	}
	return "circle"
}

// PhaseFor picks the phase from the vertical offset alone.
func PhaseFor(verticalOffset float64) Phase {
	if verticalOffset <= config.OffsetThreshold {
		return PhaseCircle
	}
	return PhaseImage
}

type Point struct {
	X, Y float64
}

// ImageTransform places the image centered on Center, rotated by
// RotationDegrees and scaled by Scale about its own center.
type ImageTransform struct {
	Center          Point
	RotationDegrees float64
	Scale           float64
}

// Frame describes one picture. Circle and Label are only meaningful in
// PhaseCircle, Image only in PhaseImage.
type Frame struct {
	Width, Height int
	Particles     []Point
	Phase         Phase
	Circle        Point
	Label         Point
	Image         ImageTransform
}

// RenderFrame returns the frame to paint for a canvas of the given size.
// It moves the particles as a side effect: the returned positions are the
// ones before the move.
func (d *Director) RenderFrame(width, height int) Frame {
	f := Frame{
		Width:     width,
		Height:    height,
		Particles: d.field.Positions(),
		Phase:     PhaseFor(d.state.VerticalOffset),
	}
	d.field.Step(height)

	cx := float64(width / 2)
	switch f.Phase {
	case PhaseCircle:
		f.Circle = Point{X: cx, Y: d.state.VerticalOffset}
		f.Label = Point{
			X: cx + config.LabelOffsetX,
			Y: d.state.VerticalOffset + config.LabelOffsetY,
		}
	case PhaseImage:
		f.Image = ImageTransform{
			Center:          Point{X: cx, Y: float64(height / 2)},
			RotationDegrees: d.state.ImageRotation,
			Scale:           d.state.ImageScale,
		}
	}
	return f
}
