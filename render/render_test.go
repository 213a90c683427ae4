package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/motionkit/motion"
)

func TestFrames_WritesSequence(t *testing.T) {
	viewport := motion.RectWH(4, 4)
	scene := motion.NewScene(viewport)
	c := scene.Circle().WithRadius(1).WithColor(motion.Red).Make()
	scene.Play(c.MoveTo(1, 0)).StartTime(0).RunTime(0.2)

	dir := t.TempDir()
	opts := Options{
		Width:    32,
		Height:   32,
		FPS:      10,
		Duration: 0.5,
		Dir:      dir,
	}
	if err := Frames(context.Background(), scene, viewport, opts); err != nil {
		t.Fatalf("Frames() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Fatalf("wrote %d frames, want 5", len(entries))
	}
	if entries[0].Name() != "frame_000000.png" {
		t.Errorf("first frame = %q", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("frame file is empty")
	}
}

func TestFrames_ValidatesOptions(t *testing.T) {
	scene := motion.NewScene(motion.RectWH(4, 4))

	if err := Frames(context.Background(), scene, motion.RectWH(4, 4), Options{
		Width: 0, Height: 32, Duration: 1, Dir: t.TempDir(),
	}); err == nil {
		t.Error("zero width should fail")
	}
	if err := Frames(context.Background(), scene, motion.RectWH(4, 4), Options{
		Width: 32, Height: 32, Duration: 0, Dir: t.TempDir(),
	}); err == nil {
		t.Error("zero duration should fail")
	}
}

func TestFrames_HonorsCancellation(t *testing.T) {
	scene := motion.NewScene(motion.RectWH(4, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Frames(ctx, scene, motion.RectWH(4, 4), Options{
		Width: 32, Height: 32, Duration: 1, Dir: t.TempDir(),
	})
	if err == nil {
		t.Error("cancelled context should surface an error")
	}
}
