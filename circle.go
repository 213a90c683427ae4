package motion

// CircleBuilder configures a circle before it is added to the scene.
type CircleBuilder struct {
	scene  *Scene
	pos    Position
	radius float64
	fill   Color
	stroke Color
	weight float64
}

// Circle starts building a circle centered at the origin with a unit
// radius and the default palette.
func (s *Scene) Circle() *CircleBuilder {
	return &CircleBuilder{
		scene:  s,
		radius: 1.0,
		fill:   White,
		stroke: White,
		weight: float64(ThinStroke),
	}
}

// WithPosition centers the circle at (x, y).
func (b *CircleBuilder) WithPosition(x, y float64) *CircleBuilder {
	b.pos = Position{X: x, Y: y}
	return b
}

// WithRadius sets the radius.
func (b *CircleBuilder) WithRadius(r float64) *CircleBuilder {
	b.radius = r
	return b
}

// WithColor sets both fill and stroke to the same color.
func (b *CircleBuilder) WithColor(c Color) *CircleBuilder {
	b.fill = c
	b.stroke = c
	return b
}

// WithFillColor sets the fill color.
func (b *CircleBuilder) WithFillColor(c Color) *CircleBuilder {
	b.fill = c
	return b
}

// WithStrokeColor sets the stroke color.
func (b *CircleBuilder) WithStrokeColor(c Color) *CircleBuilder {
	b.stroke = c
	return b
}

// WithStrokeWeight sets the stroke width.
func (b *CircleBuilder) WithStrokeWeight(w float64) *CircleBuilder {
	b.weight = w
	return b
}

// WithThinStroke selects the thin stroke preset.
func (b *CircleBuilder) WithThinStroke() *CircleBuilder {
	b.weight = float64(ThinStroke)
	return b
}

// WithThickStroke selects the thick stroke preset.
func (b *CircleBuilder) WithThickStroke() *CircleBuilder {
	b.weight = float64(ThickStroke)
	return b
}

// Make adds the circle to the scene and returns its handle.
func (b *CircleBuilder) Make() Object {
	gen := func(size Size) *Path {
		p := NewPath()
		p.Circle(0, 0, size.Width/2)
		return p
	}
	return b.scene.insert(objectSeed{
		kind:     ShapeCircle,
		position: b.pos,
		size:     SizeWH(b.radius*2, b.radius*2),
		fill:     b.fill,
		stroke:   b.stroke,
		weight:   StrokeWeight(b.weight),
		pathGen:  gen,
	})
}
