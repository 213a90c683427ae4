package motion

import (
	"math"
	"testing"
)

func TestPath_Length(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Path)
		want  float64
		eps   float64
	}{
		{
			name: "open polyline",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.LineTo(3, 0)
				p.LineTo(3, 4)
			},
			want: 7,
			eps:  1e-12,
		},
		{
			name: "closed square counts the closing line",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.LineTo(2, 0)
				p.LineTo(2, 2)
				p.LineTo(0, 2)
				p.Close()
			},
			want: 8,
			eps:  1e-12,
		},
		{
			name: "unit circle",
			build: func(p *Path) {
				p.Circle(0, 0, 1)
			},
			want: 2 * math.Pi,
			eps:  0.01,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			got := p.Length(DefaultTolerance)
			if math.Abs(got-tt.want) > tt.eps {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)

	q := p.Transform(Translate(3, -1))
	if q.points[0] != Pt(4, 0) || q.points[1] != Pt(5, 0) {
		t.Errorf("translated points = %v", q.points)
	}
	// The receiver is untouched.
	if p.points[0] != Pt(1, 1) {
		t.Error("Transform must not mutate the receiver")
	}
}

func TestPath_CloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)

	q := p.Clone()
	q.LineTo(2, 0)
	if len(p.verbs) != 2 {
		t.Error("mutating the clone changed the original")
	}
}

func TestPath_BoundingBoxContainsShape(t *testing.T) {
	p := NewPath()
	p.Circle(1, 2, 3)

	bb := p.BoundingBox()
	// Conservative: must at least cover the true extents.
	if bb.Min.X > -2 || bb.Max.X < 4 || bb.Min.Y > -1 || bb.Max.Y < 5 {
		t.Errorf("bounding box %v does not cover the circle", bb)
	}
}

func TestPath_WalkOrder(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.QuadraticTo(2, 1, 3, 0)
	p.Close()

	var ops []string
	p.Walk(
		func(at Point) { ops = append(ops, "move") },
		func(from, to Point) { ops = append(ops, "line") },
		func(from, ctrl, to Point) { ops = append(ops, "quad") },
		func(from, c1, c2, to Point) { ops = append(ops, "cubic") },
		func(from, to Point) {
			ops = append(ops, "close")
			if to != Pt(0, 0) {
				t.Errorf("close target = %v, want subpath start", to)
			}
		},
	)
	want := []string{"move", "line", "quad", "close"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
}

func TestMatrix_Compose(t *testing.T) {
	m := Translate(1, 0).Multiply(Rotate(math.Pi / 2))
	got := m.TransformPoint(Pt(1, 0))
	if math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("rotate-then-translate = %v, want (1, 1)", got)
	}
}

func TestCurve_FlattenWithinTolerance(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(2, 0)}

	var pts []Point
	q.flatten(0.01*0.01, func(p Point) { pts = append(pts, p) })
	if len(pts) < 4 {
		t.Fatalf("expected several segments, got %d", len(pts))
	}
	last := pts[len(pts)-1]
	if last != Pt(2, 0) {
		t.Errorf("flatten must end at P2, got %v", last)
	}
}
