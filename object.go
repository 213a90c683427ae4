package motion

// Object is a handle to a scene entity. Objects are cheap values;
// copying one copies the handle, not the entity. Animation entry
// points return a request batch for Scene.Play and mutate nothing
// until the scheduler consumes them, except ShowCreation, which zeroes
// completion up front so the shape is hidden before its reveal starts.
type Object struct {
	entity Entity
	scene  *Scene
}

// Entity returns the underlying entity handle.
func (o Object) Entity() Entity { return o.entity }

// Alive reports whether the entity still exists.
func (o Object) Alive() bool { return o.scene.world.Alive(o.entity) }

func (o Object) anims(specs ...AnimationSpec) EntityAnimations {
	return EntityAnimations{entity: o.entity, specs: specs}
}

// positionSpec and friends build typed specs against the world's
// stores without exposing the store layout.
func positionSpec(v Position, mode BlendMode) AnimationSpec {
	return animSpec[Position]{kind: KindPosition, value: v, blend: mode,
		store: func(w *World) *attrStore[Position] { return w.positions }}
}

func sizeSpec(v Size, mode BlendMode) AnimationSpec {
	return animSpec[Size]{kind: KindSize, value: v, blend: mode,
		store: func(w *World) *attrStore[Size] { return w.sizes }}
}

func scaleSpec(v Scale, mode BlendMode) AnimationSpec {
	return animSpec[Scale]{kind: KindScale, value: v, blend: mode,
		store: func(w *World) *attrStore[Scale] { return w.scales }}
}

func angleSpec(v Angle, mode BlendMode) AnimationSpec {
	return animSpec[Angle]{kind: KindAngle, value: v, blend: mode,
		store: func(w *World) *attrStore[Angle] { return w.angles }}
}

func opacitySpec(v Opacity, mode BlendMode) AnimationSpec {
	return animSpec[Opacity]{kind: KindOpacity, value: v, blend: mode,
		store: func(w *World) *attrStore[Opacity] { return w.opacities }}
}

func fillSpec(v Color, mode BlendMode) AnimationSpec {
	return animSpec[Color]{kind: KindFillColor, value: v, blend: mode,
		store: func(w *World) *attrStore[Color] { return w.fills }}
}

func strokeSpec(v Color, mode BlendMode) AnimationSpec {
	return animSpec[Color]{kind: KindStrokeColor, value: v, blend: mode,
		store: func(w *World) *attrStore[Color] { return w.strokes }}
}

func weightSpec(v StrokeWeight, mode BlendMode) AnimationSpec {
	return animSpec[StrokeWeight]{kind: KindStrokeWeight, value: v, blend: mode,
		store: func(w *World) *attrStore[StrokeWeight] { return w.weights }}
}

func fontSizeSpec(v FontSize, mode BlendMode) AnimationSpec {
	return animSpec[FontSize]{kind: KindFontSize, value: v, blend: mode,
		store: func(w *World) *attrStore[FontSize] { return w.fontSizes }}
}

func completionSpec(v Completion, mode BlendMode) AnimationSpec {
	return animSpec[Completion]{kind: KindCompletion, value: v, blend: mode,
		store: func(w *World) *attrStore[Completion] { return w.completions }}
}

func pathSpec(v *Path, mode BlendMode) AnimationSpec {
	return animSpec[*Path]{kind: KindPath, value: v, blend: mode,
		store: func(w *World) *attrStore[*Path] { return w.paths }}
}

// MoveTo animates the object's position to the absolute point (x, y).
func (o Object) MoveTo(x, y float64) EntityAnimations {
	return o.anims(positionSpec(Position{X: x, Y: y}, BlendAbsolute))
}

// Shift animates the position by a delta relative to wherever the
// object is when the animation starts.
func (o Object) Shift(dx, dy float64) EntityAnimations {
	return o.anims(positionSpec(Position{X: dx, Y: dy}, BlendAdditive))
}

// ToEdge animates the object to the nearest point on the named scene
// edge. The target is computed from the current position at request
// time, not at animation start.
func (o Object) ToEdge(dir Direction) EntityAnimations {
	pos, _ := o.scene.world.positions.get(o.entity.ID)
	target := o.scene.bounds.SnapToEdge(pos.Point(), dir)
	return o.anims(positionSpec(Position{X: target.X, Y: target.Y}, BlendAbsolute))
}

// Scale animates the object's scale by multiplying the current value
// by factor. Scaling twice by 2 yields 4x.
func (o Object) Scale(factor float64) EntityAnimations {
	return o.anims(scaleSpec(Scale(factor), BlendMultiplicative))
}

// SetScale animates to an absolute scale factor.
func (o Object) SetScale(factor float64) EntityAnimations {
	return o.anims(scaleSpec(Scale(factor), BlendAbsolute))
}

// Rotate animates the object's angle by delta radians relative to its
// orientation when the animation starts.
func (o Object) Rotate(delta float64) EntityAnimations {
	return o.anims(angleSpec(Angle(delta), BlendRelative))
}

// SetAngle animates to an absolute orientation in radians.
func (o Object) SetAngle(angle float64) EntityAnimations {
	return o.anims(angleSpec(Angle(angle), BlendAbsolute))
}

// FadeIn raises opacity by one relative to the starting value. An
// object at zero fades fully in; values are clamped at draw time.
func (o Object) FadeIn() EntityAnimations {
	return o.anims(opacitySpec(Opacity(1), BlendRelative))
}

// FadeOut lowers opacity by one relative to the starting value.
func (o Object) FadeOut() EntityAnimations {
	return o.anims(opacitySpec(Opacity(-1), BlendRelative))
}

// Fade animates opacity by an arbitrary relative delta.
func (o Object) Fade(delta float64) EntityAnimations {
	return o.anims(opacitySpec(Opacity(delta), BlendRelative))
}

// SetOpacity animates to an absolute opacity.
func (o Object) SetOpacity(v float64) EntityAnimations {
	return o.anims(opacitySpec(Opacity(v), BlendAbsolute))
}

// SetColor animates fill and stroke to the same color.
func (o Object) SetColor(c Color) EntityAnimations {
	return o.anims(
		fillSpec(c, BlendAbsolute),
		strokeSpec(c, BlendAbsolute),
	)
}

// SetFillColor animates the fill color.
func (o Object) SetFillColor(c Color) EntityAnimations {
	return o.anims(fillSpec(c, BlendAbsolute))
}

// SetStrokeColor animates the stroke color.
func (o Object) SetStrokeColor(c Color) EntityAnimations {
	return o.anims(strokeSpec(c, BlendAbsolute))
}

// SetStrokeWeight animates the stroke width.
func (o Object) SetStrokeWeight(weight float64) EntityAnimations {
	return o.anims(weightSpec(StrokeWeight(weight), BlendAbsolute))
}

// SetSize animates to an absolute width and height. The model path is
// rebuilt from the new size every frame the size changes.
func (o Object) SetSize(width, height float64) EntityAnimations {
	return o.anims(sizeSpec(Size{Width: width, Height: height}, BlendAbsolute))
}

// Grow animates the size by multiplying both dimensions by factor.
func (o Object) Grow(factor float64) EntityAnimations {
	return o.anims(sizeSpec(Size{Width: factor, Height: factor}, BlendMultiplicative))
}

// ChangeFontSize animates the font size by a relative delta in points.
// Non-text objects ignore the request.
func (o Object) ChangeFontSize(delta float64) EntityAnimations {
	return o.anims(fontSizeSpec(FontSize(delta), BlendRelative))
}

// SetFontSize animates to an absolute font size in points.
func (o Object) SetFontSize(size float64) EntityAnimations {
	return o.anims(fontSizeSpec(FontSize(size), BlendAbsolute))
}

// ShowCreation reveals the object by tracing its outline: completion
// snaps to zero immediately and animates to one, so the partial-path
// pass draws a growing prefix of the shape.
func (o Object) ShowCreation() EntityAnimations {
	o.scene.world.completions.set(o.entity.ID, Completion(0))
	return o.anims(completionSpec(Completion(1), BlendAbsolute))
}

// Uncreate hides the object by tracing its outline in reverse,
// animating completion back to zero.
func (o Object) Uncreate() EntityAnimations {
	return o.anims(completionSpec(Completion(0), BlendAbsolute))
}

// MorphInto animates the object's path into the target shape's path.
// Intermediate frames are flattened blends of the two outlines; the
// final frame pins the target path exactly.
func (o Object) MorphInto(target Object) EntityAnimations {
	tp, ok := target.scene.world.paths.get(target.entity.ID)
	if !ok {
		Logger().Debug("morph target has no path; ignored",
			"entity", target.entity.ID)
		return o.anims()
	}
	return o.anims(pathSpec(tp.Clone(), BlendAbsolute))
}

// MorphIntoPath animates the object's path into an explicit path.
func (o Object) MorphIntoPath(target *Path) EntityAnimations {
	return o.anims(pathSpec(target.Clone(), BlendAbsolute))
}
