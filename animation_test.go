package motion

import (
	"math"
	"testing"
)

func testScene() *Scene {
	return NewScene(RectWH(8, 4.5))
}

func TestScheduler_RelativeOpacity(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	id := c.Entity().ID

	s.world.opacities.set(id, Opacity(0.2))

	s.Play(c.Fade(0.5)).
		StartTime(1.0).
		RunTime(2.0).
		RateFunc(Linear)

	viewport := s.Bounds().Rect()

	s.Update(0.9, viewport)
	if got, _ := s.world.opacities.get(id); float64(got) != 0.2 {
		t.Errorf("before start: opacity = %v, want 0.2", got)
	}

	s.Update(1.5, viewport)
	if got, _ := s.world.opacities.get(id); math.Abs(float64(got)-0.325) > 1e-12 {
		t.Errorf("at t=1.5: opacity = %v, want 0.325", got)
	}

	s.Update(3.0, viewport)
	if got, _ := s.world.opacities.get(id); float64(got) != 0.7 {
		t.Errorf("at end: opacity = %v, want exactly 0.7", got)
	}

	s.Update(3.5, viewport)
	if got, _ := s.world.opacities.get(id); float64(got) != 0.7 {
		t.Errorf("after end: opacity = %v, want pinned 0.7", got)
	}
}

func TestScheduler_AbsoluteMove(t *testing.T) {
	s := testScene()
	c := s.Circle().WithPosition(-2, 0).Make()
	id := c.Entity().ID

	s.Play(c.MoveTo(2, 0)).
		StartTime(0).
		RunTime(1.0).
		RateFunc(Linear)

	viewport := s.Bounds().Rect()

	s.Update(0.5, viewport)
	pos, _ := s.world.positions.get(id)
	if math.Abs(pos.X) > 1e-12 {
		t.Errorf("halfway: x = %v, want 0", pos.X)
	}

	s.Update(2.0, viewport)
	pos, _ = s.world.positions.get(id)
	if pos.X != 2 || pos.Y != 0 {
		t.Errorf("after end: pos = %v, want exactly (2, 0)", pos)
	}
}

func TestScheduler_MultiplicativeScale(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	id := c.Entity().ID
	viewport := s.Bounds().Rect()

	s.Play(c.Scale(2)).StartTime(0).RunTime(1)
	s.Update(1.0, viewport)
	if got, _ := s.world.scales.get(id); float64(got) != 2 {
		t.Fatalf("after first scale: %v, want 2", got)
	}

	s.Play(c.Scale(2)).StartTime(2).RunTime(1)
	s.Update(3.0, viewport)
	if got, _ := s.world.scales.get(id); float64(got) != 4 {
		t.Errorf("after second scale: %v, want 4", got)
	}
}

func TestScheduler_ZeroDurationPinsImmediately(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	id := c.Entity().ID
	viewport := s.Bounds().Rect()

	s.Play(c.SetOpacity(0.1)).StartTime(1.0).RunTime(0)

	s.Update(0.5, viewport)
	if got, _ := s.world.opacities.get(id); float64(got) != 1 {
		t.Errorf("before start: opacity = %v, want 1", got)
	}

	s.Update(1.0, viewport)
	if got, _ := s.world.opacities.get(id); float64(got) != 0.1 {
		t.Errorf("at start: opacity = %v, want exactly 0.1", got)
	}
}

func TestScheduler_MissingAttributeIgnored(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	viewport := s.Bounds().Rect()

	// Circles carry no font size; the request must be dropped without
	// disturbing the rest of the batch.
	b := s.Play(c.ChangeFontSize(4), c.Shift(1, 0)).
		StartTime(0).RunTime(1).RateFunc(Linear)
	if len(b.groups[0]) != 0 {
		t.Errorf("font size request should be dropped, got %d handles", len(b.groups[0]))
	}
	if len(b.groups[1]) != 1 {
		t.Fatalf("shift request should be scheduled, got %d handles", len(b.groups[1]))
	}

	s.Update(1.0, viewport)
	pos, _ := s.world.positions.get(c.Entity().ID)
	if pos.X != 1 {
		t.Errorf("shift still runs: x = %v, want 1", pos.X)
	}
}

func TestAnimBuilder_Lag(t *testing.T) {
	s := testScene()
	a := s.Circle().Make()
	b := s.Circle().Make()
	viewport := s.Bounds().Rect()

	s.Play(a.MoveTo(1, 0), b.MoveTo(1, 0)).
		StartTime(0).
		RunTime(1).
		Lag(0.5).
		RateFunc(Linear)

	s.Update(0.5, viewport)
	pa, _ := s.world.positions.get(a.Entity().ID)
	pb, _ := s.world.positions.get(b.Entity().ID)
	if math.Abs(pa.X-0.5) > 1e-12 {
		t.Errorf("first entity at t=0.5: x = %v, want 0.5", pa.X)
	}
	if pb.X != 0 {
		t.Errorf("lagged entity at t=0.5: x = %v, want 0", pb.X)
	}

	s.Update(1.5, viewport)
	pa, _ = s.world.positions.get(a.Entity().ID)
	pb, _ = s.world.positions.get(b.Entity().ID)
	if pa.X != 1 || pb.X != 1 {
		t.Errorf("both pinned at t=1.5: got %v and %v, want 1 and 1", pa.X, pb.X)
	}
}

func TestPlay_UsesEventTimeCursor(t *testing.T) {
	s := testScene()
	c := s.Circle().Make()
	viewport := s.Bounds().Rect()

	s.WaitFor(1.5) // cursor now at 2.0
	s.Play(c.MoveTo(1, 0)).RunTime(1).RateFunc(Linear)

	s.Update(1.9, viewport)
	pos, _ := s.world.positions.get(c.Entity().ID)
	if pos.X != 0 {
		t.Errorf("before cursor: x = %v, want 0", pos.X)
	}

	s.Update(2.5, viewport)
	pos, _ = s.world.positions.get(c.Entity().ID)
	if math.Abs(pos.X-0.5) > 1e-12 {
		t.Errorf("halfway after cursor: x = %v, want 0.5", pos.X)
	}
}

func TestShowCreation_TruncatesRenderedPath(t *testing.T) {
	s := testScene()
	c := s.Circle().WithRadius(1).Make()
	id := c.Entity().ID
	viewport := s.Bounds().Rect()

	s.Play(c.ShowCreation()).StartTime(0).RunTime(1).RateFunc(Linear)

	if got, _ := s.world.completions.get(id); float64(got) != 0 {
		t.Fatalf("completion after scheduling = %v, want 0", got)
	}

	full, _ := s.world.paths.get(id)
	fullLen := full.Length(DefaultTolerance)

	s.Update(0.5, viewport)
	rendered, _ := s.world.rendered.Get(id)
	gotLen := rendered.Length(DefaultTolerance)
	if math.Abs(gotLen-fullLen/2) > fullLen*0.01 {
		t.Errorf("rendered length at half completion = %v, want about %v", gotLen, fullLen/2)
	}

	s.Update(1.0, viewport)
	rendered, _ = s.world.rendered.Get(id)
	if math.Abs(rendered.Length(DefaultTolerance)-fullLen) > fullLen*1e-6 {
		t.Errorf("rendered length at full completion = %v, want %v", rendered.Length(DefaultTolerance), fullLen)
	}
}

func TestSizeAnimationRegeneratesPath(t *testing.T) {
	s := testScene()
	c := s.Circle().WithRadius(1).Make()
	id := c.Entity().ID
	viewport := s.Bounds().Rect()

	s.Play(c.SetSize(4, 4)).StartTime(0).RunTime(1).RateFunc(Linear)
	s.Update(1.0, viewport)

	p, _ := s.world.paths.get(id)
	bb := p.BoundingBox()
	if bb.Width() < 3.9 {
		t.Errorf("regenerated path width = %v, want about 4", bb.Width())
	}
}
