package ebitengine

import (
	"testing"

	"github.com/motionkit/motion"
)

var _ motion.Surface = (*Surface)(nil)

func TestDrawOptions(t *testing.T) {
	op := drawOptions(motion.Red)
	if !op.AntiAlias {
		t.Error("paths should be drawn antialiased")
	}
	cs := op.ColorScale
	if cs.R() != 1 || cs.G() != 0 || cs.B() != 0 || cs.A() != 1 {
		t.Errorf("color scale = (%v, %v, %v, %v), want (1, 0, 0, 1)",
			cs.R(), cs.G(), cs.B(), cs.A())
	}
}

func TestSurface_NoTargetIsNoop(t *testing.T) {
	s := NewSurface(640, 360, motion.RectWH(8, 4.5))
	p := motion.NewPath()
	p.Circle(0, 0, 1)

	// Must not touch the graphics stack before SetTarget.
	s.FillPath(p, motion.Red)
	s.StrokePath(p, motion.Red, 0.05)
}

func TestSurface_PixelMapping(t *testing.T) {
	s := NewSurface(800, 450, motion.RectWH(8, 4.5))

	x, y := s.px(motion.Pt(0, 0))
	if x != 400 || y != 225 {
		t.Errorf("origin maps to (%v, %v), want (400, 225)", x, y)
	}
	x, y = s.px(motion.Pt(-4, 2.25))
	if x != 0 || y != 0 {
		t.Errorf("top-left corner maps to (%v, %v), want (0, 0)", x, y)
	}
}
