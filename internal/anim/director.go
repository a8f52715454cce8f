package anim

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/view-animation/internal/config"
)

// Stage is the part of the sequence the director is in.
type Stage int

const (
	StageRising Stage = iota
	StageSettling
	StageSettled
)

func (s Stage) String() string {
	switch s {
	case StageRising:
		return "rising"
	case StageSettling:
		return "settling"
	case StageSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Repainter is notified whenever the picture has changed.
type Repainter interface {
	RequestRepaint()
}

// State is the animated part of the scene.
type State struct {
	VerticalOffset float64
	ImageScale     float64
	ImageRotation  float64 // degrees
}

// Director owns the animation state and the two tickers that move it.
type Director struct {
	state     State
	stage     Stage
	field     *Field
	primary   *Ticker
	secondary *Ticker
	repaint   Repainter
}

// NewDirector sets up the initial state for a canvas of the given size and
// arms the primary ticker.
func NewDirector(width, height int, rng *rand.Rand, repaint Repainter) *Director {
	d := &Director{
		state: State{
			VerticalOffset: config.StartOffset,
		},
		stage:   StageRising,
		field:   NewField(config.ParticleCount, width, height, rng),
		repaint: repaint,
	}
	d.primary = NewTicker(config.PrimaryPeriod, d.OnPrimaryTick)
	d.secondary = NewTicker(config.SecondaryPeriod, d.OnSecondaryTick)
	d.primary.Start()
	return d
}

// State returns a copy of the current state.
func (d *Director) State() State { return d.state }

func (d *Director) Stage() Stage { return d.stage }

func (d *Director) Field() *Field { return d.field }

func (d *Director) PrimaryArmed() bool { return d.primary.Armed() }

func (d *Director) SecondaryArmed() bool { return d.secondary.Armed() }

// Advance feeds dt to the ticker of the current stage only, so the
// secondary ticker never sees time that passed before it was armed.
func (d *Director) Advance(dt time.Duration) {
	switch d.stage {
	case StageRising:
		d.primary.Advance(dt)
	case StageSettling:
		d.secondary.Advance(dt)
	}
}

// OnPrimaryTick moves the circle down. Once it passes the threshold the
// primary ticker is disarmed, the secondary one armed, and false returned.
// No repaint is requested on that last tick.
func (d *Director) OnPrimaryTick() bool {
	d.state.VerticalOffset += config.OffsetStep
	if d.state.VerticalOffset > config.OffsetThreshold {
		d.primary.Stop()
		d.secondary.Start()
		d.enter(StageSettling)
		return false
	}
	d.repaint.RequestRepaint()
	return true
}

// OnSecondaryTick grows and spins the image while its scale is below 1.
// The scale is not clamped and may end up one step past 1. The tick that
// first sees a full scale straightens the image and disarms the ticker.
func (d *Director) OnSecondaryTick() bool {
	if d.state.ImageScale < 1.0 {
		d.state.ImageScale += config.ScaleStep
		d.state.ImageRotation += config.RotationStep
		d.repaint.RequestRepaint()
		return true
	}
	d.state.ImageRotation = 0.0
	d.repaint.RequestRepaint()
	d.secondary.Stop()
	d.enter(StageSettled)
	return false
}

func (d *Director) enter(s Stage) {
	log.Printf("animation stage %s -> %s (offset=%.0f scale=%.2f)", d.stage, s, d.state.VerticalOffset, d.state.ImageScale)
	d.stage = s
}
