package motion

// Interpolatable is the capability every animatable attribute type
// implements: blending two values of the type at a progress ratio in
// [0, 1]. Implementations guarantee exact endpoints — Interp(a, b, 0)
// is a and Interp(a, b, 1) is b, not merely approximately — so
// animation boundaries never drift.
type Interpolatable[T any] interface {
	Interp(other T, progress float64) T
}

// lerp performs linear interpolation between two scalars with exact
// endpoints.
func lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// BlendMode is the rule by which a queued animation target combines
// with the attribute's previous value.
type BlendMode uint8

const (
	// BlendAbsolute replaces the previous value outright at progress 1;
	// the request target is the final value.
	BlendAbsolute BlendMode = iota

	// BlendAdditive interprets the request target as a delta applied
	// cumulatively: the resolved target is previous + delta, so
	// successive queued animations accumulate rather than reset.
	BlendAdditive

	// BlendMultiplicative interprets the request target as a factor:
	// the resolved target is previous * factor, so compounding
	// animations on the same attribute compose multiplicatively.
	BlendMultiplicative

	// BlendRelative is the relative-delta rule used for angle, opacity,
	// completion and font size. Its resolution matches BlendAdditive:
	// both add the request delta to the previous value at animation
	// start. The two modes are kept distinct so per-attribute policy
	// stays an explicit choice rather than an inferred one.
	BlendRelative
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendAbsolute:
		return "absolute"
	case BlendAdditive:
		return "additive"
	case BlendMultiplicative:
		return "multiplicative"
	case BlendRelative:
		return "relative"
	default:
		return "unknown"
	}
}
