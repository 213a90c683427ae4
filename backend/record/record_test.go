package record

import (
	"testing"

	"github.com/motionkit/motion"
)

func box() *motion.Path {
	p := motion.NewPath()
	p.Rectangle(0, 0, 2, 2)
	return p
}

func TestRecorder_CapturesInOrder(t *testing.T) {
	r := NewRecorder()
	r.FillPath(box(), motion.Red)
	r.StrokePath(box(), motion.Blue, 3)
	r.FillPath(box(), motion.Green)

	cmds := r.Commands()
	if len(cmds) != 3 {
		t.Fatalf("recorded %d commands, want 3", len(cmds))
	}
	wantTypes := []CommandType{CmdFillPath, CmdStrokePath, CmdFillPath}
	for i, want := range wantTypes {
		if cmds[i].Type != want {
			t.Errorf("command %d type = %v, want %v", i, cmds[i].Type, want)
		}
	}
	if cmds[1].Weight != 3 {
		t.Errorf("stroke weight = %v, want 3", cmds[1].Weight)
	}
	if cmds[1].Color != motion.Blue {
		t.Errorf("stroke color = %v", cmds[1].Color)
	}
}

func TestRecorder_Playback(t *testing.T) {
	src := NewRecorder()
	src.FillPath(box(), motion.Red)
	src.StrokePath(box(), motion.White, 1)

	dst := NewRecorder()
	src.Playback(dst)

	if dst.Len() != src.Len() {
		t.Fatalf("playback produced %d commands, want %d", dst.Len(), src.Len())
	}
	for i := range src.Commands() {
		if dst.Commands()[i].Type != src.Commands()[i].Type {
			t.Errorf("command %d type mismatch", i)
		}
	}
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder()
	r.FillPath(box(), motion.Red)
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
}

func TestCommandType_String(t *testing.T) {
	if CmdFillPath.String() != "FillPath" || CmdStrokePath.String() != "StrokePath" {
		t.Error("command type names wrong")
	}
	if CommandType(99).String() != "Unknown" {
		t.Error("out-of-range command type should be Unknown")
	}
}

// Recorder satisfies the draw pass surface seam.
var _ motion.Surface = (*Recorder)(nil)
