package mintcrate

// Active is a moving or interactive entity: the only kind with a collider
// and animation state. Create one with Registry.AddActive; the definition
// name selects an ActiveDef from the Library.
type Active struct {
	Entity

	// Collider is the world-space collision geometry, copied from the
	// definition at creation. Game logic may retune it per instance.
	Collider Collider

	// Visual attributes read by the draw pass.
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	Opacity        float64 // [0, 1]
	FlipX, FlipY   bool

	// OnAnimationFinish fires once when a non-looping animation reaches its
	// terminal frame. Game logic commonly uses it to trigger audio or state
	// changes; the framework itself only reports it.
	OnAnimationFinish func(name string)

	def        *ActiveDef
	animName   string
	frame      int
	frameTimer int
	animDone   bool
}

// DefinitionName returns the name of the ActiveDef this entity was created
// from.
func (a *Active) DefinitionName() string {
	if a.def == nil {
		return ""
	}
	return a.def.Name
}

// VisualOffset returns the sprite offset for the current animation frame:
// the definition's constant offset, or the per-frame offset when the
// animation defines one.
func (a *Active) VisualOffset() Vec2 {
	def := a.animDef()
	if def == nil {
		return Vec2{}
	}
	return def.offsetOf(a.frame)
}

// ActionPoint returns the world position of the definition's semantic
// anchor (a weapon muzzle, a hand, a feet marker). The engine never reads
// it; it exists for game logic.
func (a *Active) ActionPoint() (x, y float64) {
	if a.def == nil {
		return a.X, a.Y
	}
	return a.X + a.def.ActionPointX, a.Y + a.def.ActionPointY
}

// Bounds returns the collider's world-space AABB at the current position.
func (a *Active) Bounds() Rect {
	return a.Collider.Bounds(a.X, a.Y)
}

// Destroy removes the Active from its registry immediately and invalidates
// the handle. A second Destroy is a no-op; either way the nil sentinel is
// returned so the caller can clear its own reference in one step:
//
//	enemy = enemy.Destroy()
func (a *Active) Destroy() *Active {
	if a == nil || a.destroyed {
		return nil
	}
	a.reg.removeActive(a)
	a.destroyed = true
	return nil
}

// BringForward swaps the Active with its immediate successor in the active
// collection, drawing it one step later (on top of that neighbor).
func (a *Active) BringForward() {
	if checkDestroyed(&a.Entity, "BringForward") {
		return
	}
	swapForward(a.reg.actives, a)
}

// SendBackward swaps the Active with its immediate predecessor, drawing it
// one step earlier (behind that neighbor).
func (a *Active) SendBackward() {
	if checkDestroyed(&a.Entity, "SendBackward") {
		return
	}
	swapBackward(a.reg.actives, a)
}

// BringToFront moves the Active to the tail of the active collection so it
// draws last (topmost) among actives.
func (a *Active) BringToFront() {
	if checkDestroyed(&a.Entity, "BringToFront") {
		return
	}
	a.reg.actives = moveToTail(a.reg.actives, a)
}

// SendToBack moves the Active to the head of the active collection so it
// draws first (bottom) among actives.
func (a *Active) SendToBack() {
	if checkDestroyed(&a.Entity, "SendToBack") {
		return
	}
	a.reg.actives = moveToHead(a.reg.actives, a)
}
