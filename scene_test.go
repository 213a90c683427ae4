package motion

import (
	"math"
	"testing"
)

// captureSurface records the order and colors of draw commands.
type captureSurface struct {
	fills   []Color
	strokes []Color
}

func (c *captureSurface) FillPath(p *Path, col Color) { c.fills = append(c.fills, col) }

func (c *captureSurface) StrokePath(p *Path, col Color, w float64) {
	c.strokes = append(c.strokes, col)
}

func TestDraw_CreationOrder(t *testing.T) {
	s := testScene()
	first := s.Circle().WithFillColor(Red).Make()
	second := s.Circle().WithFillColor(Green).Make()
	third := s.Circle().WithFillColor(Blue).Make()
	_ = first
	_ = second
	_ = third

	s.Update(0, s.Bounds().Rect())

	var surf captureSurface
	s.Draw(&surf)

	if len(surf.fills) != 3 {
		t.Fatalf("got %d fills, want 3", len(surf.fills))
	}
	want := []Color{Red, Green, Blue}
	for i, c := range want {
		if surf.fills[i] != c {
			t.Errorf("fill %d = %v, want %v", i, surf.fills[i], c)
		}
	}
}

func TestDraw_DepthFromCreationCount(t *testing.T) {
	s := testScene()
	a := s.Circle().Make()
	b := s.Rectangle().Make()

	da, _ := s.world.depths.Get(a.Entity().ID)
	db, _ := s.world.depths.Get(b.Entity().ID)
	if float64(da) != 0.1 {
		t.Errorf("first depth = %v, want 0.1", da)
	}
	if float64(db) != 0.2 {
		t.Errorf("second depth = %v, want 0.2", db)
	}
}

func TestDraw_OpacityZeroSkipped(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	s.world.opacities.set(c.Entity().ID, Opacity(0))

	s.Update(0, s.Bounds().Rect())

	var surf captureSurface
	s.Draw(&surf)
	if len(surf.fills) != 0 || len(surf.strokes) != 0 {
		t.Errorf("fully transparent entity drawn: %d fills, %d strokes", len(surf.fills), len(surf.strokes))
	}
}

func TestDraw_LineStrokesOnly(t *testing.T) {
	s := testScene()
	s.Line().From(-1, 0).To(1, 0).Make()

	s.Update(0, s.Bounds().Rect())

	var surf captureSurface
	s.Draw(&surf)
	if len(surf.fills) != 0 {
		t.Errorf("line produced %d fills, want 0", len(surf.fills))
	}
	if len(surf.strokes) != 1 {
		t.Errorf("line produced %d strokes, want 1", len(surf.strokes))
	}
}

func TestDraw_OpacityScalesAlpha(t *testing.T) {
	s := testScene()
	c := s.Circle().WithFillColor(RGB(1, 0, 0)).Make()
	s.world.opacities.set(c.Entity().ID, Opacity(0.5))

	s.Update(0, s.Bounds().Rect())

	var surf captureSurface
	s.Draw(&surf)
	if len(surf.fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(surf.fills))
	}
	if math.Abs(surf.fills[0].A-0.5) > 1e-12 {
		t.Errorf("fill alpha = %v, want 0.5", surf.fills[0].A)
	}
}

func TestToEdge_TargetOnBoundary(t *testing.T) {
	s := testScene()
	c := s.Circle().WithPosition(1, 0.5).Make()

	ea := c.ToEdge(DirRight)
	s.Play(ea).StartTime(0).RunTime(1)
	s.Update(1.0, s.Bounds().Rect())

	pos, _ := s.world.positions.get(c.Entity().ID)
	want := s.Bounds().Rect().Max.X
	if pos.X != want {
		t.Errorf("x = %v, want %v", pos.X, want)
	}
	if pos.Y != 0.5 {
		t.Errorf("y = %v, want unchanged 0.5", pos.Y)
	}
}

func TestWait_AdvancesCursor(t *testing.T) {
	s := testScene()
	if s.EventTime() != 0.5 {
		t.Fatalf("initial cursor = %v, want 0.5", s.EventTime())
	}
	s.Wait()
	if s.EventTime() != 1.5 {
		t.Errorf("after Wait: %v, want 1.5", s.EventTime())
	}
	s.WaitFor(0.25)
	if s.EventTime() != 1.75 {
		t.Errorf("after WaitFor: %v, want 1.75", s.EventTime())
	}
}

func TestAddCircle_VisibleImmediately(t *testing.T) {
	s := testScene()
	s.Update(2.0, s.Bounds().Rect())
	s.AddCircle(1, 1)

	// The reveal runs at the current clock time with a short duration.
	s.Update(2.2, s.Bounds().Rect())

	var surf captureSurface
	s.Draw(&surf)
	if len(surf.fills) != 1 {
		t.Errorf("got %d fills, want 1", len(surf.fills))
	}
}

func TestMorphInto_PinsTargetShape(t *testing.T) {
	s := testScene()
	circle := s.Circle().WithRadius(1).Make()
	square := s.Square(2).WithPosition(3, 0).Make()

	s.Play(circle.MorphInto(square)).StartTime(0).RunTime(1)
	s.Update(0.5, s.Bounds().Rect())
	s.Update(1.0, s.Bounds().Rect())

	got, _ := s.world.paths.get(circle.Entity().ID)
	want, _ := s.world.paths.get(square.Entity().ID)
	if len(got.verbs) != len(want.verbs) {
		t.Errorf("morphed path has %d verbs, want target's %d", len(got.verbs), len(want.verbs))
	}
}
