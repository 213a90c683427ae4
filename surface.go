package motion

import "sort"

// Surface is the external rendering collaborator the draw pass emits
// commands to. Implementations rasterize, record or forward the
// primitives; the engine borrows the surface for the duration of one
// draw pass only and never retains it.
type Surface interface {
	// FillPath fills the path with the given color.
	FillPath(path *Path, c Color)

	// StrokePath strokes the path outline with the given color and
	// stroke width.
	StrokePath(path *Path, c Color, weight float64)
}

// Draw emits the current frame to the surface. The pass is strictly
// read-only with respect to the attribute store and runs after the
// update pipeline completes for the frame. Entities draw in
// creation-depth order regardless of kind or animation state.
func (s *Scene) Draw(surface Surface) {
	w := s.world

	type drawable struct {
		id    int
		depth float64
	}
	list := make([]drawable, 0, w.depths.Len())
	w.depths.Each(func(id int, d *Depth) {
		list = append(list, drawable{id: id, depth: float64(*d)})
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].depth != list[j].depth {
			return list[i].depth < list[j].depth
		}
		return list[i].id < list[j].id
	})

	for _, d := range list {
		s.drawEntity(surface, d.id)
	}
}

// drawEntity emits a single entity's fill and stroke commands.
func (s *Scene) drawEntity(surface Surface, id int) {
	w := s.world

	rp := w.rendered.Ptr(id)
	if rp == nil || *rp == nil || (*rp).Empty() {
		return
	}
	kind, ok := w.kinds.Get(id)
	if !ok {
		return
	}

	// Placement: rotate about the origin, then translate to position.
	m := Identity()
	if pos, ok := w.positions.get(id); ok {
		m = Translate(pos.X, pos.Y)
	}
	if ang, ok := w.angles.get(id); ok && float64(ang) != 0 {
		m = m.Multiply(Rotate(float64(ang)))
	}
	path := (*rp).Transform(m)

	opacity := 1.0
	if o, ok := w.opacities.get(id); ok {
		opacity = o.Clamped()
	}
	if opacity <= 0 {
		return
	}

	if kind != ShapeLine {
		if fill, ok := w.fills.get(id); ok {
			surface.FillPath(path, fill.WithAlpha(fill.A*opacity))
		}
	}
	if kind == ShapeText {
		return
	}
	stroke, ok := w.strokes.get(id)
	if !ok {
		return
	}
	weight, wok := w.weights.get(id)
	if !wok || float64(weight) <= 0 {
		return
	}
	surface.StrokePath(path, stroke.WithAlpha(stroke.A*opacity), float64(weight))
}
