package motion

// DefaultTolerance is the flattening tolerance used when callers pass a
// non-positive value. Path morphing uses its own fixed tolerance.
const DefaultTolerance = 0.01

// Flattened walks the path with all curves approximated by straight
// line segments within tolerance. moveTo receives each subpath start,
// lineTo every straight segment (including those produced from curves),
// and closeTo the implicit closing line of a Close command.
func (p *Path) Flattened(
	tolerance float64,
	moveTo func(at Point),
	lineTo func(from, to Point),
	closeTo func(from, to Point),
) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	p.walk(
		moveTo,
		lineTo,
		func(from, ctrl, to Point) {
			cur := from
			QuadBez{P0: from, P1: ctrl, P2: to}.flatten(tolSq, func(pt Point) {
				if lineTo != nil {
					lineTo(cur, pt)
				}
				cur = pt
			})
		},
		func(from, ctrl1, ctrl2, to Point) {
			cur := from
			CubicBez{P0: from, P1: ctrl1, P2: ctrl2, P3: to}.flatten(tolSq, func(pt Point) {
				if lineTo != nil {
					lineTo(cur, pt)
				}
				cur = pt
			})
		},
		closeTo,
	)
}

// Length returns the approximate arc length of the path, computed by
// flattening at the given tolerance. Closing lines contribute to the
// length.
func (p *Path) Length(tolerance float64) float64 {
	var length float64
	seg := func(from, to Point) {
		length += from.Distance(to)
	}
	p.Flattened(tolerance, nil, seg, seg)
	return length
}

// polyline is a flattened path: the visited points in order together
// with the cumulative arc length at each point. cum[0] is always 0 and
// cum[len-1] is the total length. Subpath jumps (MoveTo after drawing)
// contribute no length; morphing inputs are expected to be a single
// contiguous subpath.
type polyline struct {
	pts []Point
	cum []float64
}

// flattenPolyline flattens the path at tolerance into a polyline.
func (p *Path) flattenPolyline(tolerance float64) polyline {
	var pl polyline
	push := func(pt Point, d float64) {
		pl.pts = append(pl.pts, pt)
		pl.cum = append(pl.cum, d)
	}
	seg := func(from, to Point) {
		if len(pl.pts) == 0 {
			push(from, 0)
		}
		push(to, pl.cum[len(pl.cum)-1]+from.Distance(to))
	}
	p.Flattened(
		tolerance,
		func(at Point) {
			if len(pl.pts) == 0 {
				push(at, 0)
			}
		},
		seg,
		seg,
	)
	return pl
}

// total returns the total arc length of the polyline.
func (pl polyline) total() float64 {
	if len(pl.cum) == 0 {
		return 0
	}
	return pl.cum[len(pl.cum)-1]
}

// segmentEnds returns the cumulative arc length at the end of each
// segment, in order. This is the monotonically increasing sequence used
// as morphing breakpoints; it excludes the leading zero.
func (pl polyline) segmentEnds() []float64 {
	if len(pl.cum) < 2 {
		return nil
	}
	return pl.cum[1:]
}

// sampleAt returns the point at arc distance d from the start, clamped
// to the polyline's extent. Points between vertices are linearly
// interpolated.
func (pl polyline) sampleAt(d float64) Point {
	n := len(pl.pts)
	if n == 0 {
		return Point{}
	}
	if d <= 0 {
		return pl.pts[0]
	}
	total := pl.total()
	if d >= total {
		return pl.pts[n-1]
	}
	// Binary search for the first vertex at or past d.
	lo, hi := 1, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if pl.cum[mid] < d {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	segLen := pl.cum[lo] - pl.cum[lo-1]
	if segLen <= 0 {
		return pl.pts[lo]
	}
	t := (d - pl.cum[lo-1]) / segLen
	return pl.pts[lo-1].Lerp(pl.pts[lo], t)
}
