// Package ebitengine renders scenes into an Ebitengine window.
//
// Surface adapts a motion.Scene draw pass onto ebiten's vector
// rasterizer; Runner wraps a scene in an ebiten.Game that advances the
// scene clock at the engine's tick rate and draws every frame.
package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/motionkit/motion"
)

// Surface implements motion.Surface on top of an ebiten.Image. The
// world-space viewport maps onto the target with y flipped so world y
// grows upward on screen.
type Surface struct {
	target  *ebiten.Image
	scaleX  float64
	scaleY  float64
	offsetX float64
	offsetY float64
}

// NewSurface creates a surface drawing the viewport onto targets of
// the given pixel dimensions. Call SetTarget before each frame.
func NewSurface(width, height int, viewport motion.Rect) *Surface {
	return &Surface{
		scaleX:  float64(width) / viewport.Width(),
		scaleY:  float64(height) / viewport.Height(),
		offsetX: viewport.Min.X,
		offsetY: viewport.Max.Y,
	}
}

// SetTarget points the surface at the image to draw into.
func (s *Surface) SetTarget(img *ebiten.Image) { s.target = img }

func (s *Surface) px(p motion.Point) (float32, float32) {
	return float32((p.X - s.offsetX) * s.scaleX), float32((s.offsetY - p.Y) * s.scaleY)
}

// vectorPath converts a motion.Path to an ebiten vector path in pixel
// coordinates, curves intact.
func (s *Surface) vectorPath(path *motion.Path) *vector.Path {
	var vp vector.Path
	path.Walk(
		func(at motion.Point) {
			x, y := s.px(at)
			vp.MoveTo(x, y)
		},
		func(from, to motion.Point) {
			x, y := s.px(to)
			vp.LineTo(x, y)
		},
		func(from, ctrl, to motion.Point) {
			cx, cy := s.px(ctrl)
			x, y := s.px(to)
			vp.QuadTo(cx, cy, x, y)
		},
		func(from, c1, c2, to motion.Point) {
			c1x, c1y := s.px(c1)
			c2x, c2y := s.px(c2)
			x, y := s.px(to)
			vp.CubicTo(c1x, c1y, c2x, c2y, x, y)
		},
		func(from, to motion.Point) {
			vp.Close()
		},
	)
	return &vp
}

// FillPath implements motion.Surface.
func (s *Surface) FillPath(path *motion.Path, c motion.Color) {
	if s.target == nil {
		return
	}
	vp := s.vectorPath(path)
	vector.FillPath(s.target, vp, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, drawOptions(c))
}

func drawOptions(c motion.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.NRGBA())
	return op
}

// StrokePath implements motion.Surface. The stroke width is given in
// world units and scaled to pixels.
func (s *Surface) StrokePath(path *motion.Path, c motion.Color, weight float64) {
	if s.target == nil || weight <= 0 {
		return
	}
	vp := s.vectorPath(path)
	op := &vector.StrokeOptions{
		Width:    float32(weight * s.scaleX),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vector.StrokePath(s.target, vp, op, drawOptions(c))
}

// Runner drives a scene as an ebiten.Game. The script (the Play calls)
// is expected to be queued before Run; the runner only advances the
// clock and draws.
type Runner struct {
	Scene      *motion.Scene
	Viewport   motion.Rect
	Width      int
	Height     int
	Background motion.Color

	surface *Surface
	elapsed float64
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	r.elapsed += 1.0 / float64(ebiten.TPS())
	r.Scene.Update(r.elapsed, r.Viewport)
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	if r.surface == nil {
		r.surface = NewSurface(r.Width, r.Height, r.Viewport)
	}
	bg := r.Background.NRGBA()
	screen.Fill(color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	r.surface.SetTarget(screen)
	r.Scene.Draw(r.surface)
	r.surface.SetTarget(nil)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.Width, r.Height
}

// Run opens a window and plays the scene until the window closes.
func Run(title string, r *Runner) error {
	ebiten.SetWindowSize(r.Width, r.Height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(r)
}
