// Package soft is a pure-software rendering surface.
//
// It rasterizes fills with a scanline non-zero winding algorithm over
// an image.RGBA, antialiased by vertical subsampling with exact
// horizontal span coverage. Strokes are rendered as filled segment
// quads. The output is a plain Go image, ready for PNG encoding.
package soft

import (
	"image"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/motionkit/motion"
)

// subsamples is the number of vertical samples per scanline.
const subsamples = 4

// Surface rasterizes draw commands into an RGBA image. It maps the
// world-space viewport onto the pixel grid with y flipped so world y
// grows upward. Not safe for concurrent use.
type Surface struct {
	img      *image.RGBA
	width    int
	height   int
	scaleX   float64
	scaleY   float64
	offsetX  float64
	offsetY  float64
	coverage []float64

	// tolerance is the world-space flattening tolerance, derived from
	// a quarter-pixel error at the surface scale.
	tolerance float64
}

// NewSurface creates a surface of the given pixel dimensions showing
// the world-space viewport.
func NewSurface(width, height int, viewport motion.Rect) *Surface {
	sx := float64(width) / viewport.Width()
	sy := float64(height) / viewport.Height()
	s := &Surface{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		width:    width,
		height:   height,
		scaleX:   sx,
		scaleY:   sy,
		offsetX:  viewport.Min.X,
		offsetY:  viewport.Max.Y,
		coverage: make([]float64, width),
	}
	s.tolerance = 0.25 / math.Max(sx, sy)
	if s.tolerance <= 0 {
		s.tolerance = motion.DefaultTolerance
	}
	return s
}

// Image returns the backing image. The surface keeps drawing into it.
func (s *Surface) Image() *image.RGBA { return s.img }

// Clear fills the whole surface with a color, replacing all pixels.
func (s *Surface) Clear(c motion.Color) {
	n := c.NRGBA()
	for y := 0; y < s.height; y++ {
		row := s.img.Pix[y*s.img.Stride : y*s.img.Stride+s.width*4]
		for x := 0; x < s.width*4; x += 4 {
			row[x+0] = n.R
			row[x+1] = n.G
			row[x+2] = n.B
			row[x+3] = n.A
		}
	}
}

// WritePNG encodes the current image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// toPixel maps a world point to pixel coordinates.
func (s *Surface) toPixel(p motion.Point) (float64, float64) {
	return (p.X - s.offsetX) * s.scaleX, (s.offsetY - p.Y) * s.scaleY
}

// FillPath implements motion.Surface.
func (s *Surface) FillPath(path *motion.Path, c motion.Color) {
	polys := s.flatten(path, true)
	s.fillPolygons(polys, c)
}

// StrokePath implements motion.Surface. Each flattened segment becomes
// a filled quad of the stroke width; the non-zero rule absorbs the
// overlap at joints.
func (s *Surface) StrokePath(path *motion.Path, c motion.Color, weight float64) {
	if weight <= 0 {
		return
	}
	half := weight * math.Max(s.scaleX, s.scaleY) / 2

	var polys [][]point
	seg := func(from, to motion.Point) {
		x0, y0 := s.toPixel(from)
		x1, y1 := s.toPixel(to)
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			return
		}
		// Unit normal scaled to the half width.
		nx := -dy / length * half
		ny := dx / length * half
		polys = append(polys, []point{
			{x0 + nx, y0 + ny},
			{x1 + nx, y1 + ny},
			{x1 - nx, y1 - ny},
			{x0 - nx, y0 - ny},
		})
		// Round the joints and caps with a small disc.
		polys = append(polys, disc(x0, y0, half), disc(x1, y1, half))
	}
	path.Flattened(s.tolerance, nil, seg, seg)
	s.fillPolygons(polys, c)
}

type point struct {
	x, y float64
}

// disc approximates a filled circle for stroke joints.
func disc(cx, cy, r float64) []point {
	const n = 12
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// flatten converts the path to pixel-space polygons, one per subpath.
// Open subpaths are closed when closeAll is set since fills treat
// every contour as closed.
func (s *Surface) flatten(path *motion.Path, closeAll bool) [][]point {
	var polys [][]point
	var cur []point

	flush := func() {
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	moveTo := func(at motion.Point) {
		flush()
		x, y := s.toPixel(at)
		cur = append(cur, point{x, y})
	}
	lineTo := func(from, to motion.Point) {
		if len(cur) == 0 {
			x, y := s.toPixel(from)
			cur = append(cur, point{x, y})
		}
		x, y := s.toPixel(to)
		cur = append(cur, point{x, y})
	}
	path.Flattened(s.tolerance, moveTo, lineTo, func(from, to motion.Point) {
		// The closing line is implicit in polygon filling.
		flush()
	})
	if closeAll {
		flush()
	}
	return polys
}

// edge is a polygon edge normalized for scanline conversion, winding
// +1 for downward and -1 for upward edges.
type edge struct {
	yMin, yMax float64
	xAtYMin    float64
	dxdy       float64
	winding    int
}

func buildEdges(polys [][]point) []edge {
	var edges []edge
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			w := 1
			if a.y > b.y {
				a, b = b, a
				w = -1
			}
			if b.y-a.y < 1e-9 {
				continue
			}
			edges = append(edges, edge{
				yMin:    a.y,
				yMax:    b.y,
				xAtYMin: a.x,
				dxdy:    (b.x - a.x) / (b.y - a.y),
				winding: w,
			})
		}
	}
	return edges
}

// fillPolygons rasterizes the polygons with the non-zero winding rule
// and blends the color source-over.
func (s *Surface) fillPolygons(polys [][]point, c motion.Color) {
	edges := buildEdges(polys)
	if len(edges) == 0 || c.A <= 0 {
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		yMin = math.Min(yMin, e.yMin)
		yMax = math.Max(yMax, e.yMax)
	}
	y0 := clampInt(int(math.Floor(yMin)), 0, s.height)
	y1 := clampInt(int(math.Ceil(yMax)), 0, s.height)

	type crossing struct {
		x       float64
		winding int
	}
	var crossings []crossing

	for py := y0; py < y1; py++ {
		cov := s.coverage
		for i := range cov {
			cov[i] = 0
		}
		hit := false

		for sub := 0; sub < subsamples; sub++ {
			sy := float64(py) + (float64(sub)+0.5)/subsamples
			crossings = crossings[:0]
			for _, e := range edges {
				if sy < e.yMin || sy >= e.yMax {
					continue
				}
				crossings = append(crossings, crossing{
					x:       e.xAtYMin + (sy-e.yMin)*e.dxdy,
					winding: e.winding,
				})
			}
			if len(crossings) < 2 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

			winding := 0
			for i := 0; i < len(crossings)-1; i++ {
				winding += crossings[i].winding
				if winding == 0 {
					continue
				}
				s.addSpan(cov, crossings[i].x, crossings[i+1].x, 1.0/subsamples)
				hit = true
			}
		}
		if hit {
			s.blendRow(py, cov, c)
		}
	}
}

// addSpan accumulates coverage for the span [x0, x1) with exact
// fractional coverage at both ends.
func (s *Surface) addSpan(cov []float64, x0, x1, amount float64) {
	if x1 <= 0 || x0 >= float64(s.width) {
		return
	}
	x0 = math.Max(x0, 0)
	x1 = math.Min(x1, float64(s.width))
	i0 := int(x0)
	i1 := int(x1)
	if i0 == i1 {
		cov[i0] += (x1 - x0) * amount
		return
	}
	cov[i0] += (float64(i0+1) - x0) * amount
	for i := i0 + 1; i < i1; i++ {
		cov[i] += amount
	}
	if i1 < s.width {
		cov[i1] += (x1 - float64(i1)) * amount
	}
}

// blendRow composites one scanline source-over.
func (s *Surface) blendRow(py int, cov []float64, c motion.Color) {
	row := s.img.Pix[py*s.img.Stride:]
	for x := 0; x < s.width; x++ {
		a := cov[x] * c.A
		if a <= 0 {
			continue
		}
		if a > 1 {
			a = 1
		}
		i := x * 4
		row[i+0] = blend(row[i+0], c.R, a)
		row[i+1] = blend(row[i+1], c.G, a)
		row[i+2] = blend(row[i+2], c.B, a)
		row[i+3] = blendAlpha(row[i+3], a)
	}
}

func blend(dst uint8, src, alpha float64) uint8 {
	v := src*255*alpha + float64(dst)*(1-alpha)
	return uint8(clamp(v, 0, 255) + 0.5)
}

func blendAlpha(dst uint8, alpha float64) uint8 {
	v := 255*alpha + float64(dst)*(1-alpha)
	return uint8(clamp(v, 0, 255) + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
