package motion

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b float64
	}{
		{"#ff0000", 1, 0, 0},
		{"#00ff00", 0, 1, 0},
		{"#f00", 1, 0, 0},
		{"#ffffff", 1, 1, 1},
		{"#000000", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := Hex(tt.in)
			if math.Abs(c.R-tt.r) > 1e-9 || math.Abs(c.G-tt.g) > 1e-9 || math.Abs(c.B-tt.b) > 1e-9 {
				t.Errorf("Hex(%q) = %v", tt.in, c)
			}
			if c.A != 1 {
				t.Errorf("Hex(%q) alpha = %v, want 1", tt.in, c.A)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	if c, ok := Named("steelblue"); !ok || c.B <= c.R {
		t.Errorf("Named(steelblue) = %v, %v", c, ok)
	}
	if _, ok := Named("notacolor"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestColorInterp_Endpoints(t *testing.T) {
	a := RGBA(0.1, 0.2, 0.3, 0.4)
	b := RGBA(0.9, 0.8, 0.7, 0.6)

	if got := a.Interp(b, 0); got != a {
		t.Errorf("Interp(0) = %v, want exactly %v", got, a)
	}
	if got := a.Interp(b, 1); got != b {
		t.Errorf("Interp(1) = %v, want exactly %v", got, b)
	}

	mid := a.Interp(b, 0.5)
	if math.Abs(mid.A-0.5) > 1e-9 {
		t.Errorf("mid alpha = %v, want 0.5", mid.A)
	}
}

func TestRandomColor_InRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := RandomColor()
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("component out of range: %v", c)
			}
		}
		if c.A != 1 {
			t.Fatalf("random color alpha = %v, want 1", c.A)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c.A != 0.25 {
		t.Errorf("alpha = %v, want 0.25", c.A)
	}
	if c.R != Red.R || c.G != Red.G || c.B != Red.B {
		t.Error("WithAlpha should not touch the rgb channels")
	}
}

func TestNRGBA(t *testing.T) {
	n := RGBA(1, 0, 0, 0.5).NRGBA()
	if n.R != 255 || n.G != 0 || n.B != 0 {
		t.Errorf("NRGBA rgb = %v", n)
	}
	if n.A < 127 || n.A > 128 {
		t.Errorf("NRGBA alpha = %v, want about 127", n.A)
	}
}
