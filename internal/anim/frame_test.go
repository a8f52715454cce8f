package anim

import "testing"

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		offset   float64
		expected Phase
	}{
		{-50, PhaseCircle},
		{0, PhaseCircle},
		{300, PhaseCircle},
		{300.5, PhaseImage},
		{305, PhaseImage},
		{10000, PhaseImage},
	}
	for _, test := range tests {
		if got := PhaseFor(test.offset); got != test.expected {
			t.Errorf("PhaseFor(%v) = %s, expected %s", test.offset, got, test.expected)
		}
	}
}

func TestRenderFrame_CirclePhase(t *testing.T) {
	d, _ := newTestDirector(5)
	before := d.Field().Positions()

	f := d.RenderFrame(800, 600)
	if f.Phase != PhaseCircle {
		t.Fatalf("phase = %s, expected circle", f.Phase)
	}
	if f.Circle != (Point{X: 400, Y: -50}) {
		t.Errorf("circle at %+v, expected (400, -50)", f.Circle)
	}
	if f.Label != (Point{X: 300, Y: 0}) {
		t.Errorf("label at %+v, expected (300, 0)", f.Label)
	}
	if f.Image != (ImageTransform{}) {
		t.Errorf("image transform set in circle phase: %+v", f.Image)
	}
	if f.Width != 800 || f.Height != 600 {
		t.Errorf("frame size %dx%d, expected 800x600", f.Width, f.Height)
	}

	for i, p := range f.Particles {
		if p != before[i] {
			t.Errorf("particle %d drawn at %+v, expected position before the move %+v", i, p, before[i])
		}
	}
	moved := false
	for i, p := range d.Field().Positions() {
		if p != before[i] {
			moved = true
		}
	}
	if !moved {
		t.Error("RenderFrame() did not advance the particles")
	}
}

func TestRenderFrame_ImagePhaseAfter71Ticks(t *testing.T) {
	d, _ := newTestDirector(5)
	for i := 0; i < 71; i++ {
		d.OnPrimaryTick()
	}
	if got := d.State().VerticalOffset; got != 305 {
		t.Fatalf("offset = %v, expected 305", got)
	}

	f := d.RenderFrame(800, 600)
	if f.Phase != PhaseImage {
		t.Fatalf("phase = %s, expected image", f.Phase)
	}
	if f.Circle != (Point{}) || f.Label != (Point{}) {
		t.Errorf("circle or label set in image phase: %+v %+v", f.Circle, f.Label)
	}
	expected := ImageTransform{Center: Point{X: 400, Y: 300}}
	if f.Image != expected {
		t.Errorf("image transform = %+v, expected %+v", f.Image, expected)
	}

	d.OnSecondaryTick()
	d.OnSecondaryTick()
	f = d.RenderFrame(800, 600)
	if f.Image.Scale != 0.1 || f.Image.RotationDegrees != 20 {
		t.Errorf("image transform = %+v, expected scale 0.1 rotation 20", f.Image)
	}
}

func TestRenderFrame_OddSizeCentersWithIntegerHalves(t *testing.T) {
	d, _ := newTestDirector(5)
	for d.OnPrimaryTick() {
	}
	f := d.RenderFrame(801, 601)
	if f.Image.Center != (Point{X: 400, Y: 300}) {
		t.Errorf("center = %+v, expected (400, 300)", f.Image.Center)
	}
}
