package motion

// Animation requests and their per-attribute storage.
//
// An animation is a pure function of clock time: progress ratios are
// re-evaluated every frame from the request's definition, so skipping
// or rewinding time simply recomputes. The only monotonic commit is the
// retirement pin, which writes the exact resolved target when the
// interval has fully elapsed.

// Animation is a single queued request to drive one attribute of one
// entity toward a value.
type Animation[T any] struct {
	// Value is the request value: the final value for BlendAbsolute, a
	// delta for BlendAdditive/BlendRelative, or a factor for
	// BlendMultiplicative.
	Value    T
	Start    float64
	Duration float64
	Ease     EaseFunc
	Blend    BlendMode

	// started is set once the clock first reaches Start: the previous
	// snapshot has been captured and resolved holds the absolute
	// target.
	started  bool
	resolved T
}

func (a *Animation[T]) end() float64 { return a.Start + a.Duration }

// retime adjusts the schedule of a not-yet-started animation.
func (a *Animation[T]) retime(start, duration float64) {
	a.Start = start
	a.Duration = duration
}

func (a *Animation[T]) setEase(f EaseFunc) { a.Ease = f }

// scheduled is the retiming handle AnimBuilder keeps for each queued
// animation.
type scheduled interface {
	retime(start, duration float64)
	setEase(f EaseFunc)
}

// attrStore holds one attribute kind across all entities: the current
// values, the previous-value shadow copies, and the per-entity
// animation queues.
type attrStore[T any] struct {
	kind    AttributeKind
	current table[T]
	prev    table[T]
	anims   table[[]*Animation[T]]

	interp  func(a, b T, progress float64) T
	resolve func(prev, req T, mode BlendMode) T

	// changed lists entity ids whose current value was written by the
	// animation-apply stage this frame. Reset every update.
	changed []int
}

func newAttrStore[T any](
	kind AttributeKind,
	interp func(a, b T, progress float64) T,
	resolve func(prev, req T, mode BlendMode) T,
) *attrStore[T] {
	return &attrStore[T]{kind: kind, interp: interp, resolve: resolve}
}

func (s *attrStore[T]) set(id int, v T) { s.current.Set(id, v) }

func (s *attrStore[T]) get(id int) (T, bool) { return s.current.Get(id) }

func (s *attrStore[T]) has(id int) bool { return s.current.Has(id) }

func (s *attrStore[T]) remove(id int) {
	s.current.Remove(id)
	s.prev.Remove(id)
	s.anims.Remove(id)
}

// queue appends an animation request for the entity. The caller has
// already verified the entity carries this attribute.
func (s *attrStore[T]) queue(id int, a *Animation[T]) {
	q, _ := s.anims.Get(id)
	s.anims.Set(id, append(q, a))
}

// snapshotAndInit runs pipeline stages 1 and 2 for this store: for
// every animation whose start time has been reached but whose target
// bookkeeping is uninitialized, copy the current value into the
// previous shadow and resolve the absolute target from it. This must
// run before the apply stage mutates current values, because the
// multiplicative and relative blends read the previous value as their
// baseline.
func (s *attrStore[T]) snapshotAndInit(now float64) {
	s.anims.Each(func(id int, q *[]*Animation[T]) {
		for _, a := range *q {
			if a.started || now < a.Start {
				continue
			}
			cur, ok := s.current.Get(id)
			if !ok {
				continue
			}
			s.prev.Set(id, cur)
			a.resolved = s.resolve(cur, a.Value, a.Blend)
			a.started = true
		}
	})
}

// apply runs pipeline stage 3: every attribute with an active animation
// whose interval contains the current clock time is set to
// interp(previous, target, ease(progressRatio)). A non-positive
// duration is treated as immediate completion.
func (s *attrStore[T]) apply(now float64) {
	s.changed = s.changed[:0]
	s.anims.Each(func(id int, q *[]*Animation[T]) {
		for _, a := range *q {
			if !a.started || now < a.Start {
				continue
			}
			progress := 1.0
			if a.Duration > 0 {
				progress = clamp01((now - a.Start) / a.Duration)
			}
			if a.Ease != nil {
				progress = a.Ease(progress)
			}
			prev, ok := s.prev.Get(id)
			if !ok {
				continue
			}
			s.current.Set(id, s.interp(prev, a.resolved, progress))
			s.changed = append(s.changed, id)
		}
	})
}

// retire runs pipeline stage 5: animations whose interval has fully
// elapsed are removed from the queue and their attribute pinned to the
// exact resolved target, eliminating residual floating-point drift.
func (s *attrStore[T]) retire(now float64) {
	s.anims.Each(func(id int, q *[]*Animation[T]) {
		kept := (*q)[:0]
		for _, a := range *q {
			if a.started && now >= a.end() {
				s.current.Set(id, a.resolved)
				continue
			}
			kept = append(kept, a)
		}
		*q = kept
	})
}

// changedThisFrame reports whether the entity's value was written by
// the latest apply stage.
func (s *attrStore[T]) changedThisFrame(id int) bool {
	for _, c := range s.changed {
		if c == id {
			return true
		}
	}
	return false
}

// AnimationSpec is one attribute-animation request, not yet bound to a
// schedule. Specs are produced by the methods on Object and consumed by
// Scene.Play.
type AnimationSpec interface {
	// Kind identifies the attribute the spec drives.
	Kind() AttributeKind

	// schedule queues the animation against the world. It returns nil
	// when the entity does not carry the attribute; the request is then
	// a logged no-op per the scheduler's failure semantics.
	schedule(w *World, e Entity, start, duration float64, ease EaseFunc) scheduled
}

// animSpec is the typed implementation of AnimationSpec.
type animSpec[T any] struct {
	kind  AttributeKind
	value T
	blend BlendMode
	store func(w *World) *attrStore[T]
}

func (s animSpec[T]) Kind() AttributeKind { return s.kind }

func (s animSpec[T]) schedule(w *World, e Entity, start, duration float64, ease EaseFunc) scheduled {
	st := s.store(w)
	if !st.has(e.ID) {
		Logger().Debug("animation references missing attribute; ignored",
			"entity", e.ID, "attribute", s.kind.String())
		return nil
	}
	a := &Animation[T]{
		Value:    s.value,
		Start:    start,
		Duration: duration,
		Ease:     ease,
		Blend:    s.blend,
	}
	st.queue(e.ID, a)
	return a
}

// EntityAnimations groups the animation specs queued for one entity by
// a single builder call.
type EntityAnimations struct {
	entity Entity
	specs  []AnimationSpec
}

// Entity returns the target entity.
func (ea EntityAnimations) Entity() Entity { return ea.entity }

// AnimBuilder retimes a batch of animation requests queued by
// Scene.Play. Animations are scheduled immediately with the scene's
// defaults (start at the event-time cursor, one second duration, the
// default easing); the builder's methods adjust them in place before
// the next Update consumes them.
type AnimBuilder struct {
	scene    *Scene
	start    float64
	duration float64
	lag      float64
	groups   [][]scheduled
}

// StartTime sets an absolute start time for the batch.
func (b *AnimBuilder) StartTime(t float64) *AnimBuilder {
	b.start = t
	b.apply()
	return b
}

// RunTime sets the duration of every animation in the batch.
func (b *AnimBuilder) RunTime(d float64) *AnimBuilder {
	if d < 0 {
		d = 0
	}
	b.duration = d
	b.apply()
	return b
}

// Lag staggers successive entities in the batch by d seconds each.
func (b *AnimBuilder) Lag(d float64) *AnimBuilder {
	b.lag = d
	b.apply()
	return b
}

// RateFunc sets the easing curve for every animation in the batch.
func (b *AnimBuilder) RateFunc(f EaseFunc) *AnimBuilder {
	for _, group := range b.groups {
		for _, h := range group {
			h.setEase(f)
		}
	}
	return b
}

func (b *AnimBuilder) apply() {
	for i, group := range b.groups {
		start := b.start + float64(i)*b.lag
		for _, h := range group {
			h.retime(start, b.duration)
		}
	}
}
