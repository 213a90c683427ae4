package motion

// The per-frame update pipeline. The stages run in a fixed order:
//
//  1. snapshot previous values for attributes about to animate,
//  2. initialize target bookkeeping for animations starting now,
//  3. apply active animations,
//  4. recompute derived attributes (the rendered path consumes the
//     already-updated size, scale and completion values),
//  5. retire elapsed animations, pinning their exact targets.
//
// Stage 4 must run strictly after stage 3 or the shape lags its own
// attributes by one frame.

// Update advances the scene clock to now, recomputes bounds from the
// viewport, and runs the staged pipeline.
func (s *Scene) Update(now float64, viewport Rect) {
	s.bounds = NewBounds(viewport)
	w := s.world

	// Stages 1+2, then 3, for the regular attributes.
	w.positions.snapshotAndInit(now)
	w.sizes.snapshotAndInit(now)
	w.scales.snapshotAndInit(now)
	w.angles.snapshotAndInit(now)
	w.opacities.snapshotAndInit(now)
	w.fills.snapshotAndInit(now)
	w.strokes.snapshotAndInit(now)
	w.weights.snapshotAndInit(now)
	w.fontSizes.snapshotAndInit(now)
	w.completions.snapshotAndInit(now)

	w.positions.apply(now)
	w.sizes.apply(now)
	w.scales.apply(now)
	w.angles.apply(now)
	w.opacities.apply(now)
	w.fills.apply(now)
	w.strokes.apply(now)
	w.weights.apply(now)
	w.fontSizes.apply(now)
	w.completions.apply(now)

	// Path animations run after every attribute they may depend on.
	w.paths.snapshotAndInit(now)
	w.paths.apply(now)

	// Stage 4.
	s.updateDerived()

	// Stage 5.
	w.positions.retire(now)
	w.sizes.retire(now)
	w.scales.retire(now)
	w.angles.retire(now)
	w.opacities.retire(now)
	w.fills.retire(now)
	w.strokes.retire(now)
	w.weights.retire(now)
	w.fontSizes.retire(now)
	w.completions.retire(now)
	w.paths.retire(now)

	s.clockTime = now
}

// updateDerived recomputes attributes whose rendered form depends on
// other attributes' current values.
func (s *Scene) updateDerived() {
	w := s.world

	// A size change regenerates the model path from the shape's
	// registered generator.
	for _, id := range w.sizes.changed {
		gen := w.pathGens.Ptr(id)
		if gen == nil || *gen == nil {
			continue
		}
		if sz, ok := w.sizes.get(id); ok {
			w.paths.set(id, (*gen)(sz))
		}
	}

	// A font-size change regenerates a text entity's outline.
	for _, id := range w.fontSizes.changed {
		gen := w.fontGens.Ptr(id)
		if gen == nil || *gen == nil {
			continue
		}
		if fs, ok := w.fontSizes.get(id); ok {
			w.paths.set(id, (*gen)(fs))
		}
	}

	// The rendered path is the model path scaled by the scale
	// attribute and truncated by the completion ratio.
	w.paths.current.Each(func(id int, pp **Path) {
		p := *pp
		if p == nil {
			return
		}
		if sc, ok := w.scales.get(id); ok && float64(sc) != 1 {
			p = p.Transform(ScaleXY(float64(sc), float64(sc)))
		}
		if c, ok := w.completions.get(id); ok && c.Clamped() < 1 {
			p = p.Upto(c.Clamped(), s.opts.tolerance)
		}
		w.rendered.Set(id, p)
	})
}
