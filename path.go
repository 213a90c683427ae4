package motion

import "math"

// PathVerb identifies a single path-construction command.
type PathVerb uint8

const (
	// VerbMoveTo starts a new subpath at a point.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a straight line to a point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// pointsFor reports how many points each verb consumes.
func (v PathVerb) pointsFor() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Path is an ordered sequence of path-construction commands forming a
// piecewise curve. The zero value is an empty path ready for use.
//
// Paths used as interpolation endpoints must flatten to a non-degenerate
// polyline (total length > 0); see Interp.
type Path struct {
	verbs   []PathVerb
	points  []Point
	start   Point // first point of the current subpath
	current Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 8),
		points: make([]Point, 0, 16),
	}
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve with control (cx, cy) to (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Pt(cx, cy), Pt(x, y))
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve with controls (c1x, c1y), (c2x, c2y)
// to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	p.current = Pt(x, y)
}

// Close closes the current subpath with a line back to its start point.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
	p.current = p.start
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		verbs:   make([]PathVerb, len(p.verbs)),
		points:  make([]Point, len(p.points)),
		start:   p.start,
		current: p.current,
	}
	copy(out.verbs, p.verbs)
	copy(out.points, p.points)
	return out
}

// Transform returns a new path with the matrix applied to all points.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	out := &Path{
		verbs:   make([]PathVerb, len(p.verbs)),
		points:  make([]Point, len(p.points)),
		start:   m.TransformPoint(p.start),
		current: m.TransformPoint(p.current),
	}
	copy(out.verbs, p.verbs)
	for i, pt := range p.points {
		out.points[i] = m.TransformPoint(pt)
	}
	return out
}

// walk invokes the callbacks for each command in order. moveTo receives
// the subpath start, lineTo/quadTo/cubicTo receive the segment points with
// the implicit "from" point first, closeTo receives the closing line
// (current point back to the subpath start).
func (p *Path) walk(
	moveTo func(at Point),
	lineTo func(from, to Point),
	quadTo func(from, ctrl, to Point),
	cubicTo func(from, ctrl1, ctrl2, to Point),
	closeTo func(from, to Point),
) {
	var cur, start Point
	i := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			start = p.points[i]
			cur = start
			if moveTo != nil {
				moveTo(start)
			}
		case VerbLineTo:
			to := p.points[i]
			if lineTo != nil {
				lineTo(cur, to)
			}
			cur = to
		case VerbQuadTo:
			ctrl, to := p.points[i], p.points[i+1]
			if quadTo != nil {
				quadTo(cur, ctrl, to)
			}
			cur = to
		case VerbCubicTo:
			c1, c2, to := p.points[i], p.points[i+1], p.points[i+2]
			if cubicTo != nil {
				cubicTo(cur, c1, c2, to)
			}
			cur = to
		case VerbClose:
			if closeTo != nil {
				closeTo(cur, start)
			}
			cur = start
		}
		i += v.pointsFor()
	}
}

// Walk invokes the callbacks for each command in order, curves intact.
// Rendering backends that understand curves use this instead of
// Flattened. Nil callbacks are skipped.
func (p *Path) Walk(
	moveTo func(at Point),
	lineTo func(from, to Point),
	quadTo func(from, ctrl, to Point),
	cubicTo func(from, ctrl1, ctrl2, to Point),
	closeTo func(from, to Point),
) {
	p.walk(moveTo, lineTo, quadTo, cubicTo, closeTo)
}

// Rectangle adds an axis-aligned rectangle centered at (cx, cy).
func (p *Path) Rectangle(cx, cy, w, h float64) {
	x := cx - w/2
	y := cy - h/2
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle centered at (cx, cy) using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers:
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an axis-aligned ellipse centered at (cx, cy).
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Line adds an open segment from (x0, y0) to (x1, y1).
func (p *Path) Line(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy),
// split into cubic Bezier segments of at most 90 degrees each.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.verbs) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// BoundingBox returns the axis-aligned bounding box of the path's
// control polygon. Control points of curves are included, so the box
// is conservative rather than tight.
func (p *Path) BoundingBox() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	bbox := Rect{Min: p.points[0], Max: p.points[0]}
	for _, pt := range p.points[1:] {
		bbox = bbox.Union(Rect{Min: pt, Max: pt})
	}
	return bbox
}
