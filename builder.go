package motion

// objectSeed is the full initial state a shape builder hands to the
// scene. Every animatable attribute gets an explicit starting value so
// the scheduler never sees a missing store entry for a shape's own
// attributes.
type objectSeed struct {
	kind     ShapeKind
	position Position
	size     Size
	angle    Angle
	fill     Color
	stroke   Color
	weight   StrokeWeight
	fontSize FontSize
	label    string

	path    *Path
	pathGen PathGen
	fontGen func(FontSize) *Path
}

// insert creates the entity, populates every attribute store and side
// table, and assigns the creation depth.
func (s *Scene) insert(seed objectSeed) Object {
	w := s.world
	e := w.Create()
	id := e.ID

	w.positions.set(id, seed.position)
	w.sizes.set(id, seed.size)
	w.scales.set(id, Scale(1))
	w.angles.set(id, seed.angle)
	w.opacities.set(id, Opacity(1))
	w.fills.set(id, seed.fill)
	w.strokes.set(id, seed.stroke)
	w.weights.set(id, seed.weight)
	w.completions.set(id, Completion(1))

	if seed.kind == ShapeText {
		w.fontSizes.set(id, seed.fontSize)
		if seed.fontGen != nil {
			w.fontGens.Set(id, seed.fontGen)
		}
	}

	path := seed.path
	if path == nil && seed.pathGen != nil {
		path = seed.pathGen(seed.size)
	}
	if path == nil {
		path = NewPath()
	}
	w.paths.set(id, path)
	w.rendered.Set(id, path)

	if seed.pathGen != nil {
		w.pathGens.Set(id, seed.pathGen)
	}
	w.kinds.Set(id, seed.kind)
	w.depths.Set(id, s.nextDepth())
	if seed.label != "" {
		w.labels.Set(id, seed.label)
	}

	return Object{entity: e, scene: s}
}
