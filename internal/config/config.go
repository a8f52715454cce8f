package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Animation"

	// Image shown once the circle has left the scene, relative to the working directory.
	ImagePath = "./animation.jpg"

	// Timer periods
	PrimaryPeriod   = 30 * time.Millisecond
	SecondaryPeriod = 50 * time.Millisecond

	// Circle motion
	StartOffset     = -50.0
	OffsetStep      = 5.0
	OffsetThreshold = 300.0
	CircleRadius    = 30.0

	// Label drawn under the circle
	LabelText    = "Hey, look at this view"
	LabelSize    = 20.0
	LabelOffsetX = -100.0
	LabelOffsetY = 50.0

	// Image transform
	ScaleStep    = 0.05
	RotationStep = 10.0

	// Particles
	ParticleCount      = 10
	ParticleRadius     = 5.0
	ParticleMinSpeed   = 0.5
	ParticleSpeedSteps = 100 // speeds span [min, min+1) in 1/steps increments
	ParticleWrapX      = 400
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

var (
	// Dark blue at the top to purple at the bottom.
	GradientTop    = RGB{0.1, 0.1, 0.2}
	GradientBottom = RGB{0.4, 0.1, 0.6}

	ParticleColor = RGB{1, 1, 1}
	CircleColor   = RGB{1, 0.5, 0}
	LabelColor    = RGB{1, 1, 1}
)
