package motion

// RectangleBuilder configures an axis-aligned rectangle before it is
// added to the scene.
type RectangleBuilder struct {
	scene  *Scene
	pos    Position
	width  float64
	height float64
	angle  float64
	fill   Color
	stroke Color
	weight float64
}

// Rectangle starts building a unit square centered at the origin.
func (s *Scene) Rectangle() *RectangleBuilder {
	return &RectangleBuilder{
		scene:  s,
		width:  1.0,
		height: 1.0,
		fill:   White,
		stroke: White,
		weight: float64(ThinStroke),
	}
}

// Square starts building a square with the given side length.
func (s *Scene) Square(side float64) *RectangleBuilder {
	b := s.Rectangle()
	b.width = side
	b.height = side
	return b
}

// WithPosition centers the rectangle at (x, y).
func (b *RectangleBuilder) WithPosition(x, y float64) *RectangleBuilder {
	b.pos = Position{X: x, Y: y}
	return b
}

// WithSize sets the width and height.
func (b *RectangleBuilder) WithSize(w, h float64) *RectangleBuilder {
	b.width = w
	b.height = h
	return b
}

// WithColor sets both fill and stroke to the same color.
func (b *RectangleBuilder) WithColor(c Color) *RectangleBuilder {
	b.fill = c
	b.stroke = c
	return b
}

// WithFillColor sets the fill color.
func (b *RectangleBuilder) WithFillColor(c Color) *RectangleBuilder {
	b.fill = c
	return b
}

// WithStrokeColor sets the stroke color.
func (b *RectangleBuilder) WithStrokeColor(c Color) *RectangleBuilder {
	b.stroke = c
	return b
}

// WithStrokeWeight sets the stroke width.
func (b *RectangleBuilder) WithStrokeWeight(w float64) *RectangleBuilder {
	b.weight = w
	return b
}

// WithThinStroke selects the thin stroke preset.
func (b *RectangleBuilder) WithThinStroke() *RectangleBuilder {
	b.weight = float64(ThinStroke)
	return b
}

// WithThickStroke selects the thick stroke preset.
func (b *RectangleBuilder) WithThickStroke() *RectangleBuilder {
	b.weight = float64(ThickStroke)
	return b
}

// WithAngle sets the initial orientation in radians.
func (b *RectangleBuilder) WithAngle(radians float64) *RectangleBuilder {
	b.angle = radians
	return b
}

// Make adds the rectangle to the scene and returns its handle.
func (b *RectangleBuilder) Make() Object {
	gen := func(size Size) *Path {
		p := NewPath()
		p.Rectangle(0, 0, size.Width, size.Height)
		return p
	}
	return b.scene.insert(objectSeed{
		kind:     ShapeRectangle,
		position: b.pos,
		size:     SizeWH(b.width, b.height),
		angle:    Angle(b.angle),
		fill:     b.fill,
		stroke:   b.stroke,
		weight:   StrokeWeight(b.weight),
		pathGen:  gen,
	})
}
