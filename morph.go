package motion

// Path morphing and partial-path extraction.
//
// Morphing resamples two arbitrary paths onto a shared arc-length
// parameterization so point-for-point interpolation produces a smooth
// transition even between topologically different shapes.

// morphTolerance is the fixed flattening tolerance used by Interp.
const morphTolerance = 0.5

// Interp produces a path that morphs from p to other as progress goes
// from 0 to 1. Out-of-range progress is clamped. Progress at or below
// 0.001 returns a clone of p and at or above 0.999 a clone of other,
// avoiding resampling error at the boundaries.
//
// Both paths must flatten to a polyline of non-zero length; a
// degenerate input makes the morph collapse to a clone of p.
func (p *Path) Interp(other *Path, progress float64) *Path {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	if progress <= 0.001 {
		return p.Clone()
	}
	if progress >= 0.999 {
		return other.Clone()
	}

	pl1 := p.flattenPolyline(morphTolerance)
	pl2 := other.flattenPolyline(morphTolerance)
	len1 := pl1.total()
	len2 := pl2.total()
	if len1 <= 0 || len2 <= 0 {
		return p.Clone()
	}

	// Shared parameterization: both breakpoint sequences normalized to
	// [0,1] and merged into one non-decreasing sequence.
	ratios := combineWithOrdering(pl1.segmentEnds(), pl2.segmentEnds())

	// Walk each path at the shared breakpoints, starting from the
	// subpath start, giving two point sequences of equal length.
	out := NewPath()
	start1 := pl1.sampleAt(0)
	start2 := pl2.sampleAt(0)
	first := start1.Lerp(start2, progress)
	out.MoveTo(first.X, first.Y)
	for _, r := range ratios {
		a := pl1.sampleAt(r * len1)
		b := pl2.sampleAt(r * len2)
		pt := a.Lerp(b, progress)
		out.LineTo(pt.X, pt.Y)
	}
	out.Close()
	return out
}

// combineWithOrdering merges two monotonically increasing sequences
// into one non-decreasing sequence of values normalized by each input's
// final element. Values from v2 are emitted before the v1 value they
// precede; duplicates are preserved. Trailing v2 values not less than
// the last v1 value are dropped, so the final element is always
// v1's normalized last value (1.0).
func combineWithOrdering(v1, v2 []float64) []float64 {
	if len(v1) == 0 {
		return nil
	}
	combined := make([]float64, 0, len(v1)+len(v2))

	s1 := v1[len(v1)-1]
	var s2 float64
	if len(v2) > 0 {
		s2 = v2[len(v2)-1]
	}

	j := 0
	for _, val1 := range v1 {
		for j < len(v2) && v2[j]/s2 < val1/s1 {
			combined = append(combined, v2[j]/s2)
			j++
		}
		combined = append(combined, val1/s1)
	}
	return combined
}

// Upto returns the path truncated at the given fraction of its total
// arc length. A ratio at or above 1 returns the receiver unchanged;
// negative ratios are clamped to 0. The final segment is cut at the
// exact crossing point, and a Close encountered before the cutoff is
// preserved verbatim.
//
// Animating the completion ratio from 0 to 1 with Upto implements
// "creation reveal" animations.
func (p *Path) Upto(ratio float64, tolerance float64) *Path {
	if ratio >= 1.0 {
		return p
	}
	if ratio < 0 {
		ratio = 0
	}

	fullLength := p.Length(tolerance)
	stopAt := ratio * fullLength

	out := NewPath()
	length := 0.0
	done := false

	lineSeg := func(from, to Point, closing bool) {
		if done {
			return
		}
		segLength := from.Distance(to)
		newLength := length + segLength
		if newLength > stopAt {
			if segLength > 0 {
				segRatio := 1.0 - (newLength-stopAt)/segLength
				pt := from.Lerp(to, segRatio)
				out.LineTo(pt.X, pt.Y)
			}
			done = true
			return
		}
		length = newLength
		if closing {
			out.Close()
		} else {
			out.LineTo(to.X, to.Y)
		}
	}

	p.Flattened(
		tolerance,
		func(at Point) {
			if !done {
				out.MoveTo(at.X, at.Y)
			}
		},
		func(from, to Point) { lineSeg(from, to, false) },
		func(from, to Point) { lineSeg(from, to, true) },
	)
	return out
}
