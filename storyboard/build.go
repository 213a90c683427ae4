package storyboard

import (
	"fmt"

	"github.com/motionkit/motion"
)

// Build creates the storyboard's objects in the scene and schedules
// every step, advancing the scene's event-time cursor as it goes. It
// returns the created objects by name.
func (sb *Storyboard) Build(scene *motion.Scene) (map[string]motion.Object, error) {
	objects := make(map[string]motion.Object, len(sb.Objects))
	for _, spec := range sb.Objects {
		obj, err := makeObject(scene, spec)
		if err != nil {
			return nil, err
		}
		objects[spec.Name] = obj
	}

	for i, step := range sb.Steps {
		if step.Play != nil {
			if err := playStep(scene, objects, step.Play); err != nil {
				return nil, fmt.Errorf("storyboard: step %d: %w", i, err)
			}
		}
		if step.Wait > 0 {
			scene.WaitFor(step.Wait)
		}
	}
	return objects, nil
}

func makeObject(scene *motion.Scene, spec ObjectSpec) (motion.Object, error) {
	at := pointOf(spec.At)
	fill, stroke, err := palette(spec)
	if err != nil {
		return motion.Object{}, fmt.Errorf("storyboard: object %q: %w", spec.Name, err)
	}

	switch spec.Shape {
	case "circle":
		b := scene.Circle().WithPosition(at.X, at.Y)
		if spec.Radius > 0 {
			b = b.WithRadius(spec.Radius)
		}
		b = b.WithFillColor(fill).WithStrokeColor(stroke)
		if spec.StrokeWeight > 0 {
			b = b.WithStrokeWeight(spec.StrokeWeight)
		}
		return b.Make(), nil

	case "rectangle":
		b := scene.Rectangle().WithPosition(at.X, at.Y)
		if spec.Width > 0 || spec.Height > 0 {
			b = b.WithSize(spec.Width, spec.Height)
		}
		b = b.WithFillColor(fill).WithStrokeColor(stroke)
		if spec.StrokeWeight > 0 {
			b = b.WithStrokeWeight(spec.StrokeWeight)
		}
		return b.Make(), nil

	case "line":
		from := pointOf(spec.From)
		to := pointOf(spec.To)
		b := scene.Line().From(from.X, from.Y).To(to.X, to.Y).WithColor(stroke)
		if spec.StrokeWeight > 0 {
			b = b.WithStrokeWeight(spec.StrokeWeight)
		}
		return b.Make(), nil

	case "text":
		b := scene.Text(spec.Text).WithPosition(at.X, at.Y).WithColor(fill)
		if spec.FontSize > 0 {
			b = b.WithFontSize(spec.FontSize)
		}
		return b.Make(), nil
	}
	return motion.Object{}, fmt.Errorf("storyboard: object %q: unknown shape %q", spec.Name, spec.Shape)
}

// palette resolves the spec's color fields. "color" sets both fill and
// stroke; "fill"/"stroke" override individually.
func palette(spec ObjectSpec) (fill, stroke motion.Color, err error) {
	fill, stroke = motion.White, motion.White
	if spec.Color != "" {
		c, err := parseColor(spec.Color)
		if err != nil {
			return fill, stroke, err
		}
		fill, stroke = c, c
	}
	if spec.Fill != "" {
		if fill, err = parseColor(spec.Fill); err != nil {
			return fill, stroke, err
		}
	}
	if spec.Stroke != "" {
		if stroke, err = parseColor(spec.Stroke); err != nil {
			return fill, stroke, err
		}
	}
	return fill, stroke, nil
}

// parseColor accepts "#rgb"/"#rrggbb" hex, an SVG color name, or
// "random".
func parseColor(s string) (motion.Color, error) {
	if s == "random" {
		return motion.RandomColor(), nil
	}
	if len(s) > 0 && s[0] == '#' {
		return motion.Hex(s), nil
	}
	if c, ok := motion.Named(s); ok {
		return c, nil
	}
	return motion.Color{}, fmt.Errorf("unknown color %q", s)
}

func playStep(scene *motion.Scene, objects map[string]motion.Object, play *Play) error {
	batch := make([]motion.EntityAnimations, 0, len(play.Actions))
	for _, act := range play.Actions {
		ea, err := buildAction(scene, objects, act)
		if err != nil {
			return err
		}
		batch = append(batch, ea)
	}

	b := scene.Play(batch...)
	if play.Duration > 0 {
		b.RunTime(play.Duration)
	}
	if play.Lag > 0 {
		b.Lag(play.Lag)
	}
	if play.Ease != "" {
		f, ok := motion.EaseByName(play.Ease)
		if !ok {
			return fmt.Errorf("unknown ease %q", play.Ease)
		}
		b.RateFunc(f)
	}
	return nil
}

func buildAction(scene *motion.Scene, objects map[string]motion.Object, act Action) (motion.EntityAnimations, error) {
	o := objects[act.Target]
	switch act.Do {
	case "moveTo":
		p := pointOf(act.To)
		return o.MoveTo(p.X, p.Y), nil
	case "shift":
		p := pointOf(act.By)
		return o.Shift(p.X, p.Y), nil
	case "toEdge":
		dir, err := direction(act.Edge)
		if err != nil {
			return motion.EntityAnimations{}, err
		}
		return o.ToEdge(dir), nil
	case "scale":
		return o.Scale(act.Factor), nil
	case "rotate":
		return o.Rotate(act.Angle), nil
	case "fadeIn":
		return o.FadeIn(), nil
	case "fadeOut":
		return o.FadeOut(), nil
	case "fade":
		return o.Fade(act.Delta), nil
	case "setOpacity":
		return o.SetOpacity(act.Value), nil
	case "setColor":
		c, err := parseColor(act.Color)
		if err != nil {
			return motion.EntityAnimations{}, err
		}
		return o.SetColor(c), nil
	case "setStrokeWeight":
		return o.SetStrokeWeight(act.Value), nil
	case "showCreation":
		return o.ShowCreation(), nil
	case "uncreate":
		return o.Uncreate(), nil
	case "grow":
		return o.Grow(act.Factor), nil
	case "setSize":
		p := pointOf(act.Size)
		return o.SetSize(p.X, p.Y), nil
	case "changeFontSize":
		return o.ChangeFontSize(act.Delta), nil
	case "morphInto":
		return o.MorphInto(objects[act.Into]), nil
	}
	return motion.EntityAnimations{}, fmt.Errorf("unknown action %q", act.Do)
}

// validateOp checks the action's verb and verb-specific arguments
// without a scene.
func validateOp(act Action) error {
	switch act.Do {
	case "moveTo", "shift", "scale", "rotate", "fadeIn", "fadeOut",
		"fade", "setOpacity", "setStrokeWeight", "showCreation",
		"uncreate", "grow", "setSize", "changeFontSize":
		return nil
	case "toEdge":
		_, err := direction(act.Edge)
		return err
	case "setColor":
		_, err := parseColor(act.Color)
		return err
	case "morphInto":
		if act.Into == "" {
			return fmt.Errorf("morphInto needs a target")
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", act.Do)
}

func direction(s string) (motion.Direction, error) {
	switch s {
	case "up", "top":
		return motion.DirUp, nil
	case "down", "bottom":
		return motion.DirDown, nil
	case "left":
		return motion.DirLeft, nil
	case "right":
		return motion.DirRight, nil
	}
	return motion.DirUp, fmt.Errorf("unknown edge %q", s)
}

func pointOf(v []float64) motion.Point {
	var p motion.Point
	if len(v) > 0 {
		p.X = v[0]
	}
	if len(v) > 1 {
		p.Y = v[1]
	}
	return p
}
