package soft

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/motionkit/motion"
)

func TestSurface_Clear(t *testing.T) {
	s := NewSurface(16, 16, motion.RectWH(4, 4))
	s.Clear(motion.RGB(1, 0, 0))

	c := s.Image().RGBAAt(8, 8)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("cleared pixel = %v, want opaque red", c)
	}
}

func TestSurface_FillPathCoversCenter(t *testing.T) {
	s := NewSurface(64, 64, motion.RectWH(4, 4))
	s.Clear(motion.Color{A: 1})

	p := motion.NewPath()
	p.Rectangle(0, 0, 2, 2)
	s.FillPath(p, motion.RGB(0, 1, 0))

	// World origin maps to the image center; the rectangle spans half
	// the viewport around it.
	center := s.Image().RGBAAt(32, 32)
	if center.G < 200 {
		t.Errorf("center pixel = %v, want green fill", center)
	}

	// A corner of the viewport lies outside the rectangle.
	corner := s.Image().RGBAAt(2, 2)
	if corner.G > 50 {
		t.Errorf("corner pixel = %v, want untouched background", corner)
	}
}

func TestSurface_FillRespectsAlpha(t *testing.T) {
	s := NewSurface(32, 32, motion.RectWH(4, 4))
	s.Clear(motion.Color{A: 1})

	p := motion.NewPath()
	p.Rectangle(0, 0, 4, 4)
	s.FillPath(p, motion.RGBA(1, 1, 1, 0.5))

	c := s.Image().RGBAAt(16, 16)
	if c.R < 100 || c.R > 155 {
		t.Errorf("half-alpha white over black = %v, want mid gray", c.R)
	}
}

func TestSurface_StrokeDrawsAlongSegment(t *testing.T) {
	s := NewSurface(64, 64, motion.RectWH(4, 4))
	s.Clear(motion.Color{A: 1})

	p := motion.NewPath()
	p.MoveTo(-1.5, 0)
	p.LineTo(1.5, 0)
	s.StrokePath(p, motion.RGB(1, 1, 1), 0.2)

	on := s.Image().RGBAAt(32, 32)
	if on.R < 200 {
		t.Errorf("pixel on the stroke = %v, want white", on)
	}
	off := s.Image().RGBAAt(32, 8)
	if off.R > 50 {
		t.Errorf("pixel far from the stroke = %v, want background", off)
	}
}

func TestSurface_WritePNG(t *testing.T) {
	s := NewSurface(8, 8, motion.RectWH(2, 2))
	s.Clear(motion.RGB(0, 0, 1))

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

var _ motion.Surface = (*Surface)(nil)
