// Package record captures draw passes as typed command structures.
//
// A Recorder implements motion.Surface and stores every fill and
// stroke as a Command instead of rasterizing it. Recordings can be
// inspected in tests or replayed to any other surface.
package record

import (
	"github.com/motionkit/motion"
)

// CommandType identifies the kind of a recorded command.
type CommandType uint8

const (
	// CmdFillPath fills a path.
	CmdFillPath CommandType = iota
	// CmdStrokePath strokes a path outline.
	CmdStrokePath
)

var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
}

// String returns the command type name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is one recorded drawing operation. Path is the path as the
// draw pass emitted it; Weight is only meaningful for CmdStrokePath.
type Command struct {
	Type   CommandType
	Path   *motion.Path
	Color  motion.Color
	Weight float64
}

// Recorder implements motion.Surface by appending commands. The zero
// value is ready to use. Not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FillPath records a fill.
func (r *Recorder) FillPath(path *motion.Path, c motion.Color) {
	r.commands = append(r.commands, Command{
		Type:  CmdFillPath,
		Path:  path,
		Color: c,
	})
}

// StrokePath records a stroke.
func (r *Recorder) StrokePath(path *motion.Path, c motion.Color, weight float64) {
	r.commands = append(r.commands, Command{
		Type:   CmdStrokePath,
		Path:   path,
		Color:  c,
		Weight: weight,
	})
}

// Commands returns the recorded commands in draw order. The slice is
// owned by the recorder; Reset invalidates it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Reset clears the recording for reuse across frames.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recording onto another surface in order.
func (r *Recorder) Playback(dst motion.Surface) {
	for _, cmd := range r.commands {
		switch cmd.Type {
		case CmdFillPath:
			dst.FillPath(cmd.Path, cmd.Color)
		case CmdStrokePath:
			dst.StrokePath(cmd.Path, cmd.Color, cmd.Weight)
		}
	}
}
