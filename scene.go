package motion

// Scene owns the world, the scene clock, and the staged update
// pipeline. One frame is processed to completion (full update, then
// full draw) before the next begins; nothing in a Scene is safe for
// concurrent use.
type Scene struct {
	world  *World
	bounds Bounds

	// eventTime is the cursor for sequential scheduling: Play queues
	// animations at this time, Wait/WaitFor advance it.
	eventTime float64

	// clockTime is the render time of the most recent Update.
	clockTime float64

	// creationCount backs depth assignment: every object added to the
	// scene gets a depth (z) value derived from a running counter so
	// occlusion order follows creation order.
	creationCount int

	opts sceneOptions
}

// TextShaper converts a string into a glyph-outline path at a font
// size. Implemented by textpath.Source; scenes without a shaper render
// text entities as placeholder boxes.
type TextShaper interface {
	Outline(text string, size float64) (*Path, error)
}

type sceneOptions struct {
	defaultEase     EaseFunc
	defaultDuration float64
	tolerance       float64
	shaper          TextShaper
}

// SceneOption configures a Scene during creation.
type SceneOption func(*sceneOptions)

// WithDefaultEase sets the easing used by Play when the builder does
// not override it. The default is EaseInOutCubic.
func WithDefaultEase(f EaseFunc) SceneOption {
	return func(o *sceneOptions) { o.defaultEase = f }
}

// WithDefaultDuration sets the duration Play assigns before RunTime is
// called. The default is one second.
func WithDefaultDuration(d float64) SceneOption {
	return func(o *sceneOptions) { o.defaultDuration = d }
}

// WithTolerance sets the flattening tolerance used for partial-path
// extraction and arc length during updates. The default is
// DefaultTolerance.
func WithTolerance(tol float64) SceneOption {
	return func(o *sceneOptions) { o.tolerance = tol }
}

// WithTextShaper sets the shaper used by text builders to produce
// glyph-outline paths.
func WithTextShaper(ts TextShaper) SceneOption {
	return func(o *sceneOptions) { o.shaper = ts }
}

// NewScene creates a scene with the given viewport rectangle defining
// world-to-screen bounds.
func NewScene(viewport Rect, opts ...SceneOption) *Scene {
	o := sceneOptions{
		defaultEase:     EaseInOutCubic,
		defaultDuration: 1.0,
		tolerance:       DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		world:     NewWorld(),
		bounds:    NewBounds(viewport),
		eventTime: 0.5,
		opts:      o,
	}
}

// World returns the scene's entity world.
func (s *Scene) World() *World { return s.world }

// Bounds returns the bounds computed from the most recent viewport.
func (s *Scene) Bounds() Bounds { return s.bounds }

// ClockTime returns the render time of the most recent Update.
func (s *Scene) ClockTime() float64 { return s.clockTime }

// EventTime returns the sequential scheduling cursor.
func (s *Scene) EventTime() float64 { return s.eventTime }

// nextDepth assigns the next creation depth. Objects keep a running
// counter so later objects draw above earlier ones.
func (s *Scene) nextDepth() Depth {
	s.creationCount++
	return Depth(float64(s.creationCount) / 10.0)
}

// Wait advances the sequential scheduling cursor by one second.
func (s *Scene) Wait() {
	s.eventTime += 1.0
}

// WaitFor advances the sequential scheduling cursor by the given
// number of seconds.
func (s *Scene) WaitFor(seconds float64) {
	s.eventTime += seconds
}

// Play queues a batch of animation requests starting at the event-time
// cursor with the scene's default duration and easing and returns a
// builder to retime them. Requests for attributes an entity does not
// carry are debug-logged and dropped.
func (s *Scene) Play(anims ...EntityAnimations) *AnimBuilder {
	b := &AnimBuilder{
		scene:    s,
		start:    s.eventTime,
		duration: s.opts.defaultDuration,
	}
	for _, ea := range anims {
		var group []scheduled
		for _, spec := range ea.specs {
			if h := spec.schedule(s.world, ea.entity, b.start, b.duration, s.opts.defaultEase); h != nil {
				group = append(group, h)
			}
		}
		b.groups = append(b.groups, group)
	}
	return b
}

// AddCircle drops a small randomly colored circle at (x, y) and reveals
// it immediately at the current clock time.
func (s *Scene) AddCircle(x, y float64) {
	c := s.Circle().
		WithPosition(x, y).
		WithRadius(0.2).
		WithColor(RandomColor()).
		Make()
	s.Play(c.ShowCreation()).StartTime(s.clockTime).RunTime(0.1)
}
