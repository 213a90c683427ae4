package motion

// Entity storage: an arena of entity ids with typed side-tables per
// attribute kind. There is no inheritance hierarchy; entities are
// polymorphic purely via which attribute tables carry an entry for
// their id.

// Entity is an opaque identifier owning zero or more attribute values
// and zero or more active animations.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the entity is a real id (not the zero value).
func (e Entity) Valid() bool { return e.ID > 0 }

// entityArena tracks entity generations and free ids.
type entityArena struct {
	nextID int
	gen    []int
	free   []int
}

func (a *entityArena) create() Entity {
	var id int
	if len(a.free) > 0 {
		id = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
	} else {
		a.nextID++
		id = a.nextID
		a.gen = append(a.gen, 0)
	}
	return Entity{ID: id, Gen: a.gen[id-1]}
}

func (a *entityArena) destroy(e Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	a.gen[e.ID-1]++
	a.free = append(a.free, e.ID)
	return true
}

func (a *entityArena) isAlive(e Entity) bool {
	if e.ID <= 0 || e.ID > len(a.gen) {
		return false
	}
	return a.gen[e.ID-1] == e.Gen
}

// table is a sparse-set side-table mapping entity ids to values of one
// attribute type. Iteration order is insertion order until a removal
// swaps entries.
type table[T any] struct {
	dense  []int
	values []T
	sparse []int
}

// Has returns true if the entity id has an entry.
func (t *table[T]) Has(id int) bool {
	if id <= 0 || id-1 >= len(t.sparse) {
		return false
	}
	idx := t.sparse[id-1]
	return idx >= 0 && idx < len(t.dense) && t.dense[idx] == id
}

// Get returns the value for id and whether it exists.
func (t *table[T]) Get(id int) (T, bool) {
	if !t.Has(id) {
		var zero T
		return zero, false
	}
	return t.values[t.sparse[id-1]], true
}

// Ptr returns a pointer to the value for id, or nil.
func (t *table[T]) Ptr(id int) *T {
	if !t.Has(id) {
		return nil
	}
	return &t.values[t.sparse[id-1]]
}

// Set inserts or updates the value for id.
func (t *table[T]) Set(id int, v T) {
	if id <= 0 {
		return
	}
	for id-1 >= len(t.sparse) {
		t.sparse = append(t.sparse, -1)
	}
	if t.Has(id) {
		t.values[t.sparse[id-1]] = v
		return
	}
	t.dense = append(t.dense, id)
	t.values = append(t.values, v)
	t.sparse[id-1] = len(t.dense) - 1
}

// Remove deletes the entry for id if present.
func (t *table[T]) Remove(id int) {
	if !t.Has(id) {
		return
	}
	idx := t.sparse[id-1]
	last := len(t.dense) - 1
	lastID := t.dense[last]

	t.dense[idx] = t.dense[last]
	t.values[idx] = t.values[last]
	t.sparse[lastID-1] = idx

	t.dense = t.dense[:last]
	t.values = t.values[:last]
	t.sparse[id-1] = -1
}

// Each invokes fn for every entry. The value pointer is valid for the
// duration of the call only.
func (t *table[T]) Each(fn func(id int, v *T)) {
	for i, id := range t.dense {
		fn(id, &t.values[i])
	}
}

// Len returns the number of entries.
func (t *table[T]) Len() int { return len(t.dense) }

// ShapeKind identifies which drawable an entity is.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
	ShapeLine
	ShapeText
)

// PathGen regenerates a shape's model-space path from its current
// size. Registered per entity at creation so the derived-path stage
// can rebuild paths when size animates.
type PathGen func(size Size) *Path

// World owns the entity arena and every attribute side-table.
type World struct {
	arena entityArena

	positions   *attrStore[Position]
	sizes       *attrStore[Size]
	scales      *attrStore[Scale]
	angles      *attrStore[Angle]
	opacities   *attrStore[Opacity]
	fills       *attrStore[Color]
	strokes     *attrStore[Color]
	weights     *attrStore[StrokeWeight]
	fontSizes   *attrStore[FontSize]
	completions *attrStore[Completion]
	paths       *attrStore[*Path]

	depths   table[Depth]
	kinds    table[ShapeKind]
	pathGens table[PathGen]
	fontGens table[func(FontSize) *Path]
	labels   table[string]

	// rendered holds the final per-frame path consumed by the draw
	// pass: the model path scaled by the scale attribute and truncated
	// by the completion ratio. Recomputed by the derived stage.
	rendered table[*Path]
}

// NewWorld creates an empty world with all attribute stores.
func NewWorld() *World {
	return &World{
		positions: newAttrStore(KindPosition, Position.Interp, resolvePosition),
		sizes:     newAttrStore(KindSize, Size.Interp, resolveSize),
		scales: newAttrStore(KindScale, Scale.Interp,
			func(prev, req Scale, m BlendMode) Scale {
				return Scale(resolveScalar(float64(prev), float64(req), m))
			}),
		angles: newAttrStore(KindAngle, Angle.Interp,
			func(prev, req Angle, m BlendMode) Angle {
				return Angle(resolveScalar(float64(prev), float64(req), m))
			}),
		opacities: newAttrStore(KindOpacity, Opacity.Interp,
			func(prev, req Opacity, m BlendMode) Opacity {
				return Opacity(resolveScalar(float64(prev), float64(req), m))
			}),
		fills:   newAttrStore(KindFillColor, Color.Interp, resolveColor),
		strokes: newAttrStore(KindStrokeColor, Color.Interp, resolveColor),
		weights: newAttrStore(KindStrokeWeight, StrokeWeight.Interp,
			func(prev, req StrokeWeight, m BlendMode) StrokeWeight {
				return StrokeWeight(resolveScalar(float64(prev), float64(req), m))
			}),
		fontSizes: newAttrStore(KindFontSize, FontSize.Interp,
			func(prev, req FontSize, m BlendMode) FontSize {
				return FontSize(resolveScalar(float64(prev), float64(req), m))
			}),
		completions: newAttrStore(KindCompletion, Completion.Interp,
			func(prev, req Completion, m BlendMode) Completion {
				return Completion(resolveScalar(float64(prev), float64(req), m))
			}),
		paths: newAttrStore(KindPath, (*Path).Interp, resolvePath),
	}
}

// Create allocates a new entity id.
func (w *World) Create() Entity {
	return w.arena.create()
}

// Destroy removes the entity and all its attribute entries.
func (w *World) Destroy(e Entity) bool {
	if !w.arena.destroy(e) {
		return false
	}
	id := e.ID
	w.positions.remove(id)
	w.sizes.remove(id)
	w.scales.remove(id)
	w.angles.remove(id)
	w.opacities.remove(id)
	w.fills.remove(id)
	w.strokes.remove(id)
	w.weights.remove(id)
	w.fontSizes.remove(id)
	w.completions.remove(id)
	w.paths.remove(id)
	w.depths.Remove(id)
	w.kinds.Remove(id)
	w.pathGens.Remove(id)
	w.fontGens.Remove(id)
	w.labels.Remove(id)
	w.rendered.Remove(id)
	return true
}

// Alive reports whether the entity has not been destroyed.
func (w *World) Alive(e Entity) bool { return w.arena.isAlive(e) }
