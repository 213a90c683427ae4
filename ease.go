package motion

import "math"

// EaseFunc maps linear time-progress in [0,1] to perceptual progress.
// Easing functions are monotonic with f(0)=0 and f(1)=1; input outside
// [0,1] is clamped by the scheduler before the function is applied.
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero velocity, more sharply than quad.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates to zero velocity, more sharply than quad.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates until halfway, then decelerates.
// This is the default easing for animation builders.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInQuint accelerates from zero velocity, very sharply.
func EaseInQuint(t float64) float64 { return t * t * t * t * t }

// EaseOutQuint decelerates to zero velocity, very sharply.
func EaseOutQuint(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}

// EaseInOutQuint accelerates until halfway, then decelerates, very sharply.
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// EaseInSine accelerates following a sine curve.
func EaseInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// EaseOutSine decelerates following a sine curve.
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutSine accelerates then decelerates following a sine curve.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseInExpo accelerates exponentially.
func EaseInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// EaseOutExpo decelerates exponentially.
func EaseOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseByName returns the easing function registered under name.
// Names follow the function names in lower camel case, e.g. "linear",
// "easeInOutCubic". Unknown names return (nil, false).
func EaseByName(name string) (EaseFunc, bool) {
	f, ok := easeNames[name]
	return f, ok
}

var easeNames = map[string]EaseFunc{
	"linear":         Linear,
	"easeInQuad":     EaseInQuad,
	"easeOutQuad":    EaseOutQuad,
	"easeInOutQuad":  EaseInOutQuad,
	"easeInCubic":    EaseInCubic,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeInQuint":    EaseInQuint,
	"easeOutQuint":   EaseOutQuint,
	"easeInOutQuint": EaseInOutQuint,
	"easeInSine":     EaseInSine,
	"easeOutSine":    EaseOutSine,
	"easeInOutSine":  EaseInOutSine,
	"easeInExpo":     EaseInExpo,
	"easeOutExpo":    EaseOutExpo,
}
