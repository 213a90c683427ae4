package motion

import "math"

// LineBuilder configures a line segment before it is added to the
// scene. Lines have no interior, so the draw pass strokes them and
// never fills.
type LineBuilder struct {
	scene  *Scene
	from   Point
	to     Point
	stroke Color
	weight float64
}

// Line starts building a unit-length horizontal segment centered at
// the origin.
func (s *Scene) Line() *LineBuilder {
	return &LineBuilder{
		scene:  s,
		from:   Pt(-0.5, 0),
		to:     Pt(0.5, 0),
		stroke: White,
		weight: float64(ThinStroke),
	}
}

// From sets the segment's start point in world coordinates.
func (b *LineBuilder) From(x, y float64) *LineBuilder {
	b.from = Pt(x, y)
	return b
}

// To sets the segment's end point in world coordinates.
func (b *LineBuilder) To(x, y float64) *LineBuilder {
	b.to = Pt(x, y)
	return b
}

// WithColor sets the stroke color.
func (b *LineBuilder) WithColor(c Color) *LineBuilder {
	b.stroke = c
	return b
}

// WithStrokeWeight sets the stroke width.
func (b *LineBuilder) WithStrokeWeight(w float64) *LineBuilder {
	b.weight = w
	return b
}

// Make adds the line to the scene and returns its handle. The entity's
// position is the segment midpoint; the path holds the endpoints
// relative to it so the line translates and rotates about its center.
func (b *LineBuilder) Make() Object {
	mid := b.from.Add(b.to).Mul(0.5)
	dx := b.to.X - b.from.X
	dy := b.to.Y - b.from.Y
	sx := math.Copysign(1, dx)
	sy := math.Copysign(1, dy)

	gen := func(size Size) *Path {
		ex := sx * size.Width / 2
		ey := sy * size.Height / 2
		p := NewPath()
		p.Line(-ex, -ey, ex, ey)
		return p
	}
	return b.scene.insert(objectSeed{
		kind:     ShapeLine,
		position: Position{X: mid.X, Y: mid.Y},
		size:     SizeWH(math.Abs(dx), math.Abs(dy)),
		stroke:   b.stroke,
		weight:   StrokeWeight(b.weight),
		pathGen:  gen,
	})
}
