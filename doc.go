// Package motion is an animation engine for procedurally generated
// vector-graphics scenes.
//
// # Overview
//
// motion animates abstract shape descriptions over time and turns each
// frame into drawing commands for a pluggable rendering surface. The
// engine owns a world of entities, each carrying animatable attributes
// (position, size, color, opacity, path, ...), and a staged per-frame
// pipeline that advances all active animations against a scene clock.
//
// # Quick Start
//
//	import "github.com/motionkit/motion"
//
//	scene := motion.NewScene(motion.RectWH(8, 4.5))
//
//	c := scene.Circle().
//		WithPosition(-2, 0).
//		WithColor(motion.Blue).
//		Make()
//
//	scene.Play(c.MoveTo(2, 0)).RunTime(2)
//	scene.Wait()
//	scene.Play(c.FadeOut())
//
//	for t := 0.0; t < 5.0; t += 1.0 / 60 {
//		scene.Update(t, scene.Bounds().Rect())
//		scene.Draw(surface)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Scene, Object, Path, Color, the shape builders
//   - Scheduling: Play, AnimBuilder, the staged update pipeline
//   - Subpackages: textpath (glyph outlines), storyboard (declarative
//     scenes), backend (surfaces), render (frame export)
//
// Surfaces implement two calls, FillPath and StrokePath; everything
// about timing, easing, blending, and path morphing happens before a
// surface ever sees a frame.
package motion
