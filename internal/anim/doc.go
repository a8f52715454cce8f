// Package anim holds the animation state and the rules that move it.
//
// A Director owns the vertical offset of the circle, the scale and rotation
// of the image and a field of particles. Two tickers advance it: the primary
// one moves the circle down until it passes the threshold, then hands over
// to the secondary one which grows and spins the image until it reaches full
// size. Painting is left to the caller, which asks for a Frame describing
// what to draw.
package anim
