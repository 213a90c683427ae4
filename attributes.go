package motion

// Animatable attribute types. Every entity carries a subset of these;
// which attributes an entity has is simply which side-tables contain an
// entry for its id.

// AttributeKind identifies an animatable attribute.
type AttributeKind uint8

const (
	KindPosition AttributeKind = iota
	KindSize
	KindScale
	KindAngle
	KindOpacity
	KindFillColor
	KindStrokeColor
	KindStrokeWeight
	KindFontSize
	KindCompletion
	KindPath
)

// String returns the attribute kind name.
func (k AttributeKind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindSize:
		return "size"
	case KindScale:
		return "scale"
	case KindAngle:
		return "angle"
	case KindOpacity:
		return "opacity"
	case KindFillColor:
		return "fillColor"
	case KindStrokeColor:
		return "strokeColor"
	case KindStrokeWeight:
		return "strokeWeight"
	case KindFontSize:
		return "fontSize"
	case KindCompletion:
		return "completion"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// DefaultBlend returns the blend mode conventionally used when
// animating this attribute: plain absolute for position, colors and
// stroke weight, multiplicative for size and scale, relative-delta for
// angle, opacity, completion and font size.
func (k AttributeKind) DefaultBlend() BlendMode {
	switch k {
	case KindSize, KindScale:
		return BlendMultiplicative
	case KindAngle, KindOpacity, KindCompletion, KindFontSize:
		return BlendRelative
	default:
		return BlendAbsolute
	}
}

// Position is an entity's world-space center.
type Position struct {
	X, Y float64
}

// Interp linearly interpolates the position.
func (p Position) Interp(other Position, progress float64) Position {
	return Position{
		X: lerp(p.X, other.X, progress),
		Y: lerp(p.Y, other.Y, progress),
	}
}

// Point converts the position to a geometry point.
func (p Position) Point() Point { return Point{X: p.X, Y: p.Y} }

// Size is an entity's width and height in world units.
type Size struct {
	Width, Height float64
}

// SizeWH creates a size.
func SizeWH(w, h float64) Size { return Size{Width: w, Height: h} }

// Interp linearly interpolates the size.
func (s Size) Interp(other Size, progress float64) Size {
	return Size{
		Width:  lerp(s.Width, other.Width, progress),
		Height: lerp(s.Height, other.Height, progress),
	}
}

// Scale is a uniform scale factor applied to the rendered shape.
type Scale float64

// Interp linearly interpolates the scale.
func (s Scale) Interp(other Scale, progress float64) Scale {
	return Scale(lerp(float64(s), float64(other), progress))
}

// Angle is a rotation in radians.
type Angle float64

// Interp linearly interpolates the angle.
func (a Angle) Interp(other Angle, progress float64) Angle {
	return Angle(lerp(float64(a), float64(other), progress))
}

// Opacity is a scalar in [0, 1] multiplied into an entity's colors at
// draw time.
type Opacity float64

// Interp linearly interpolates the opacity.
func (o Opacity) Interp(other Opacity, progress float64) Opacity {
	return Opacity(lerp(float64(o), float64(other), progress))
}

// Clamped returns the opacity constrained to [0, 1].
func (o Opacity) Clamped() float64 { return clamp01(float64(o)) }

// StrokeWeight is the stroke width of an entity's outline.
type StrokeWeight float64

// Stroke weights used by the builders' thin/thick shorthands.
const (
	ThinStroke  StrokeWeight = 1.0
	ThickStroke StrokeWeight = 3.0
)

// Interp linearly interpolates the stroke weight.
func (w StrokeWeight) Interp(other StrokeWeight, progress float64) StrokeWeight {
	return StrokeWeight(lerp(float64(w), float64(other), progress))
}

// FontSize is the point size of a text entity.
type FontSize float64

// Interp linearly interpolates the font size.
func (f FontSize) Interp(other FontSize, progress float64) FontSize {
	return FontSize(lerp(float64(f), float64(other), progress))
}

// Completion is the path-completion ratio in [0, 1] used for creation
// reveal animations.
type Completion float64

// Interp linearly interpolates the completion ratio.
func (c Completion) Interp(other Completion, progress float64) Completion {
	return Completion(lerp(float64(c), float64(other), progress))
}

// Clamped returns the completion ratio constrained to [0, 1].
func (c Completion) Clamped() float64 { return clamp01(float64(c)) }

// Depth is a creation-order-derived scalar used purely for draw
// occlusion ordering. It is assigned once at creation and never
// animated.
type Depth float64

// Attribute value resolution per blend mode. The resolved target is
// computed once, when an animation starts, from the previous snapshot
// and the queued request value.

func resolvePosition(prev, req Position, mode BlendMode) Position {
	switch mode {
	case BlendAdditive, BlendRelative:
		return Position{X: prev.X + req.X, Y: prev.Y + req.Y}
	case BlendMultiplicative:
		return Position{X: prev.X * req.X, Y: prev.Y * req.Y}
	default:
		return req
	}
}

func resolveSize(prev, req Size, mode BlendMode) Size {
	switch mode {
	case BlendAdditive, BlendRelative:
		return Size{Width: prev.Width + req.Width, Height: prev.Height + req.Height}
	case BlendMultiplicative:
		return Size{Width: prev.Width * req.Width, Height: prev.Height * req.Height}
	default:
		return req
	}
}

func resolveScalar(prev, req float64, mode BlendMode) float64 {
	switch mode {
	case BlendAdditive, BlendRelative:
		return prev + req
	case BlendMultiplicative:
		return prev * req
	default:
		return req
	}
}

// Colors and paths only support absolute replacement; morph targets
// and color targets are taken as requested regardless of mode.

func resolveColor(prev, req Color, mode BlendMode) Color {
	return req
}

func resolvePath(prev, req *Path, mode BlendMode) *Path {
	return req
}
