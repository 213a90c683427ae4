// Command motiondemo plays a short animation, either into a window or
// as a PNG frame sequence. Pass -board to play a YAML storyboard
// instead of the built-in demo.
package main

import (
	"context"
	"flag"
	"log"
	"math"

	"github.com/motionkit/motion"
	"github.com/motionkit/motion/backend/ebitengine"
	"github.com/motionkit/motion/render"
	"github.com/motionkit/motion/storyboard"
)

func main() {
	var (
		width    = flag.Int("width", 1280, "output width in pixels")
		height   = flag.Int("height", 720, "output height in pixels")
		duration = flag.Float64("duration", 6.0, "animation length in seconds")
		fps      = flag.Float64("fps", 60, "frame rate for -frames output")
		frames   = flag.String("frames", "", "write PNG frames to this directory instead of opening a window")
		board    = flag.String("board", "", "play a YAML storyboard file")
	)
	flag.Parse()

	viewport := motion.RectWH(8, 8*float64(*height)/float64(*width))
	scene := motion.NewScene(viewport)

	if *board != "" {
		sb, err := storyboard.Load(*board)
		if err != nil {
			log.Fatalf("load storyboard: %v", err)
		}
		if _, err := sb.Build(scene); err != nil {
			log.Fatalf("build storyboard: %v", err)
		}
	} else {
		buildDemo(scene)
	}

	if *frames != "" {
		opts := render.Options{
			Width:      *width,
			Height:     *height,
			FPS:        *fps,
			Duration:   *duration,
			Background: motion.Hex("#101018"),
			Dir:        *frames,
		}
		if err := render.Frames(context.Background(), scene, viewport, opts); err != nil {
			log.Fatalf("render frames: %v", err)
		}
		return
	}

	runner := &ebitengine.Runner{
		Scene:      scene,
		Viewport:   viewport,
		Width:      *width,
		Height:     *height,
		Background: motion.Hex("#101018"),
	}
	if err := ebitengine.Run("motion demo", runner); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// buildDemo scripts the built-in animation: a traced circle morphing
// into a square while a line sweeps below.
func buildDemo(scene *motion.Scene) {
	circle := scene.Circle().
		WithPosition(-2, 0.5).
		WithRadius(1).
		WithColor(motion.Blue).
		WithStrokeWeight(float64(motion.ThickStroke)).
		Make()

	square := scene.Square(2).
		WithPosition(2, 0.5).
		WithColor(motion.Green).
		Make()

	sweep := scene.Line().
		From(-3, -1.8).
		To(3, -1.8).
		WithColor(motion.Gray).
		Make()

	scene.Play(circle.ShowCreation(), square.ShowCreation()).
		RunTime(1.5).
		Lag(0.3)
	scene.Wait()

	scene.Play(
		circle.MoveTo(0, 0.5),
		square.Rotate(math.Pi/4),
		sweep.Shift(0, 0.4),
	).RunTime(1.0)
	scene.WaitFor(1.2)

	scene.Play(circle.MorphInto(square)).
		RunTime(1.5).
		RateFunc(motion.EaseInOutQuint)
	scene.Wait()

	scene.Play(circle.FadeOut(), square.FadeOut(), sweep.Uncreate()).
		RunTime(1.0)
}
