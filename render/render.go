// Package render exports scenes as numbered PNG frame sequences.
//
// The scene clock is single-threaded, so frames are updated and
// recorded in order; rasterizing and encoding the recorded commands is
// embarrassingly parallel and fans out across a worker group.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/motionkit/motion"
	"github.com/motionkit/motion/backend/record"
	"github.com/motionkit/motion/backend/soft"
)

// Options configures a frame export.
type Options struct {
	// Width and Height are the output pixel dimensions.
	Width  int
	Height int

	// FPS is the frame rate. Defaults to 60.
	FPS float64

	// Duration is the length of the export in seconds.
	Duration float64

	// Background fills each frame before drawing. Defaults to opaque
	// black.
	Background motion.Color

	// Dir is the output directory, created if missing. Frames are
	// written as frame_000000.png, frame_000001.png, ...
	Dir string

	// Workers bounds the concurrent rasterize/encode goroutines.
	// Defaults to the number of CPUs.
	Workers int
}

func (o *Options) defaults() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: invalid dimensions %dx%d", o.Width, o.Height)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("render: invalid duration %v", o.Duration)
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.Background == (motion.Color{}) {
		o.Background = motion.Color{A: 1}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return nil
}

// Frames plays the scene from time zero and writes every frame as a
// PNG. The scene is updated sequentially; pixels are produced
// concurrently from per-frame command recordings.
func Frames(ctx context.Context, scene *motion.Scene, viewport motion.Rect, opts Options) error {
	if err := opts.defaults(); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("render: create output dir: %w", err)
	}

	total := int(opts.Duration*opts.FPS + 0.5)
	dt := 1.0 / opts.FPS

	// The derived context is canceled once Wait returns, so the parent
	// context decides whether a finished run counts as canceled.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for frame := 0; frame < total; frame++ {
		if err := gctx.Err(); err != nil {
			break
		}

		scene.Update(float64(frame)*dt, viewport)
		rec := record.NewRecorder()
		scene.Draw(rec)

		frame := frame
		g.Go(func() error {
			return writeFrame(rec, frame, viewport, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func writeFrame(rec *record.Recorder, frame int, viewport motion.Rect, opts Options) error {
	surface := soft.NewSurface(opts.Width, opts.Height, viewport)
	surface.Clear(opts.Background)
	rec.Playback(surface)

	name := filepath.Join(opts.Dir, fmt.Sprintf("frame_%06d.png", frame))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", name, err)
	}
	if err := surface.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", name, err)
	}
	return nil
}
