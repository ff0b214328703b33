package mintcrate

// AnimationDef describes one named animation inside an ActiveDef: how many
// frames it has, how long each frame holds, and whether it loops. Attached
// at registration time and immutable thereafter.
type AnimationDef struct {
	// FrameCount is the number of frames in the sequence.
	FrameCount int
	// FrameDuration is the hold time per frame, in ticks.
	FrameDuration int
	// FrameDurations optionally overrides FrameDuration per frame.
	// Shorter lists fall back to FrameDuration for the remaining frames.
	FrameDurations []int
	// Loop wraps to frame 0 after the last frame; otherwise the last frame
	// is a terminal pose held until another animation is played.
	Loop bool
	// Row selects the sprite-sheet row holding this animation's frames.
	Row int
	// OffsetX/OffsetY is a constant visual offset applied while this
	// animation plays.
	OffsetX float64
	OffsetY float64
	// FrameOffsets optionally overrides the constant offset per frame.
	FrameOffsets []Vec2
}

// durationOf returns the hold time for the given frame, in ticks.
func (d *AnimationDef) durationOf(frame int) int {
	if frame < len(d.FrameDurations) && d.FrameDurations[frame] > 0 {
		return d.FrameDurations[frame]
	}
	if d.FrameDuration > 0 {
		return d.FrameDuration
	}
	return 1
}

// offsetOf returns the visual offset for the given frame.
func (d *AnimationDef) offsetOf(frame int) Vec2 {
	if frame < len(d.FrameOffsets) {
		return d.FrameOffsets[frame]
	}
	return Vec2{X: d.OffsetX, Y: d.OffsetY}
}

// PlayAnimation switches the Active to the named animation. Calling it with
// the animation already playing is a no-op that preserves frame progress, so
// a state machine can call PlayAnimation every tick for the current pose
// without visual stutter. Any other name resets the frame index and timer
// to 0. Fails with UnknownAnimationError for a name not present in the
// Active's definition, and with InvalidStateError on a destroyed handle.
func (a *Active) PlayAnimation(name string) error {
	if a.destroyed {
		if globalDebug {
			checkDestroyed(&a.Entity, "PlayAnimation")
		}
		return &InvalidStateError{Op: "PlayAnimation", ID: a.ID}
	}
	if name == a.animName {
		return nil
	}
	if _, ok := a.def.Animations[name]; !ok {
		return &UnknownAnimationError{Definition: a.def.Name, Animation: name}
	}
	a.animName = name
	a.frame = 0
	a.frameTimer = 0
	a.animDone = false
	return nil
}

// AnimationName returns the name of the currently playing animation.
func (a *Active) AnimationName() string {
	return a.animName
}

// Frame returns the current frame index, always in [0, FrameCount).
func (a *Active) Frame() int {
	return a.frame
}

// FrameTimer returns the ticks elapsed in the current frame.
func (a *Active) FrameTimer() int {
	return a.frameTimer
}

// AnimationFinished reports whether a non-looping animation has reached and
// holds its terminal frame.
func (a *Active) AnimationFinished() bool {
	return a.animDone
}

// advanceAnimation runs one tick of the frame-timing state machine.
// Called by the tick driver for every live Active after room logic settles.
func (a *Active) advanceAnimation() {
	def := a.animDef()
	if def == nil || def.FrameCount <= 0 || a.animDone {
		return
	}
	a.frameTimer++
	if a.frameTimer < def.durationOf(a.frame) {
		return
	}
	a.frameTimer = 0
	a.frame++
	if a.frame < def.FrameCount {
		return
	}
	if def.Loop {
		a.frame = 0
		return
	}
	// Terminal pose: clamp and hold until PlayAnimation switches away.
	a.frame = def.FrameCount - 1
	a.animDone = true
	if a.OnAnimationFinish != nil {
		a.OnAnimationFinish(a.animName)
	}
}

// animDef returns the definition of the currently playing animation, or nil.
func (a *Active) animDef() *AnimationDef {
	if a.def == nil {
		return nil
	}
	return a.def.Animations[a.animName]
}
