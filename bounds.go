package motion

// Bounds wraps the scene viewport, recomputed each frame from the
// current viewport rectangle and exposed to collaborators as edge
// queries.
type Bounds struct {
	rect Rect
}

// NewBounds creates bounds from a viewport rectangle.
func NewBounds(rect Rect) Bounds {
	return Bounds{rect: rect}
}

// Rect returns the viewport rectangle.
func (b Bounds) Rect() Rect { return b.rect }

// EdgeUpper returns the top edge coordinate.
func (b Bounds) EdgeUpper() float64 { return b.rect.Max.Y }

// EdgeLower returns the bottom edge coordinate.
func (b Bounds) EdgeLower() float64 { return b.rect.Min.Y }

// EdgeLeft returns the left edge coordinate.
func (b Bounds) EdgeLeft() float64 { return b.rect.Min.X }

// EdgeRight returns the right edge coordinate.
func (b Bounds) EdgeRight() float64 { return b.rect.Max.X }

// Direction names an edge of the viewport for off-screen entry and
// exit animations.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// SnapToEdge clamps the point into the bounds and then snaps it to the
// edge in the given direction, preserving the other coordinate. Used to
// move entities flush against (or just beyond) the viewport.
func (b Bounds) SnapToEdge(p Point, dir Direction) Point {
	p = b.rect.Clamp(p)
	switch dir {
	case DirUp:
		p.Y = b.EdgeUpper()
	case DirDown:
		p.Y = b.EdgeLower()
	case DirLeft:
		p.X = b.EdgeLeft()
	case DirRight:
		p.X = b.EdgeRight()
	}
	return p
}
