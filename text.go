package motion

// TextBuilder configures a text object before it is added to the
// scene. Text needs a shaper (see WithTextShaper) to produce glyph
// outlines; without one the object renders as a placeholder box
// proportional to the string length.
type TextBuilder struct {
	scene *Scene
	pos   Position
	text  string
	size  float64
	fill  Color
}

// Text starts building a text object with the given content.
func (s *Scene) Text(text string) *TextBuilder {
	return &TextBuilder{
		scene: s,
		text:  text,
		size:  1.0,
		fill:  White,
	}
}

// WithPosition centers the text at (x, y).
func (b *TextBuilder) WithPosition(x, y float64) *TextBuilder {
	b.pos = Position{X: x, Y: y}
	return b
}

// WithFontSize sets the font size in world units.
func (b *TextBuilder) WithFontSize(size float64) *TextBuilder {
	b.size = size
	return b
}

// WithColor sets the fill color. Text has no stroke.
func (b *TextBuilder) WithColor(c Color) *TextBuilder {
	b.fill = c
	return b
}

// WithText replaces the content set by Scene.Text.
func (b *TextBuilder) WithText(text string) *TextBuilder {
	b.text = text
	return b
}

// Make shapes the text into an outline path, adds the object to the
// scene, and returns its handle. Font-size animations reshape the
// outline each frame the size changes.
func (b *TextBuilder) Make() Object {
	shaper := b.scene.opts.shaper
	text := b.text

	gen := func(fs FontSize) *Path {
		size := float64(fs)
		if shaper != nil {
			p, err := shaper.Outline(text, size)
			if err == nil {
				return centerPath(p)
			}
			Logger().Debug("text shaping failed; using placeholder",
				"text", text, "error", err)
		}
		return placeholderText(text, size)
	}

	path := gen(FontSize(b.size))
	bb := path.BoundingBox()
	return b.scene.insert(objectSeed{
		kind:     ShapeText,
		position: b.pos,
		size:     SizeWH(bb.Width(), bb.Height()),
		fill:     b.fill,
		stroke:   b.fill,
		weight:   StrokeWeight(0),
		fontSize: FontSize(b.size),
		fontGen:  gen,
		path:     path,
		label:    text,
	})
}

// centerPath translates a path so its bounding box is centered on the
// origin.
func centerPath(p *Path) *Path {
	if p.Empty() {
		return p
	}
	c := p.BoundingBox().Center()
	return p.Transform(Translate(-c.X, -c.Y))
}

// placeholderText builds a centered box roughly the size the shaped
// string would occupy.
func placeholderText(text string, size float64) *Path {
	n := len([]rune(text))
	if n == 0 {
		return NewPath()
	}
	w := float64(n) * size * 0.6
	p := NewPath()
	p.Rectangle(0, 0, w, size)
	return p
}
