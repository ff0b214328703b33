package mintcrate

// Backdrop is a static visual layer: no collider, no animation frames.
// Backdrops draw before all actives and paragraphs.
type Backdrop struct {
	Entity

	// Mosaic tiles the texture across the draw area instead of drawing it
	// once.
	Mosaic bool

	// Width, Height optionally set a draw area distinct from the texture
	// size. Zero means use the texture dimensions.
	Width, Height float64

	def *BackdropDef
}

// DefinitionName returns the name of the BackdropDef this entity was
// created from.
func (b *Backdrop) DefinitionName() string {
	if b.def == nil {
		return ""
	}
	return b.def.Name
}

// DrawSize returns the effective draw area: the explicit size when set,
// otherwise the definition's texture dimensions.
func (b *Backdrop) DrawSize() (w, h float64) {
	w, h = b.Width, b.Height
	if w <= 0 && b.def != nil {
		w = float64(b.def.Width)
	}
	if h <= 0 && b.def != nil {
		h = float64(b.def.Height)
	}
	return w, h
}

// Destroy removes the Backdrop from its registry immediately and
// invalidates the handle. Idempotent; always returns the nil sentinel.
func (b *Backdrop) Destroy() *Backdrop {
	if b == nil || b.destroyed {
		return nil
	}
	b.reg.removeBackdrop(b)
	b.destroyed = true
	return nil
}

// BringForward swaps the Backdrop with its immediate successor in the
// backdrop collection.
func (b *Backdrop) BringForward() {
	if checkDestroyed(&b.Entity, "BringForward") {
		return
	}
	swapForward(b.reg.backdrops, b)
}

// SendBackward swaps the Backdrop with its immediate predecessor.
func (b *Backdrop) SendBackward() {
	if checkDestroyed(&b.Entity, "SendBackward") {
		return
	}
	swapBackward(b.reg.backdrops, b)
}

// BringToFront moves the Backdrop to the tail of the backdrop collection.
// Backdrops still draw below every active and paragraph.
func (b *Backdrop) BringToFront() {
	if checkDestroyed(&b.Entity, "BringToFront") {
		return
	}
	b.reg.backdrops = moveToTail(b.reg.backdrops, b)
}

// SendToBack moves the Backdrop to the head of the backdrop collection.
func (b *Backdrop) SendToBack() {
	if checkDestroyed(&b.Entity, "SendToBack") {
		return
	}
	b.reg.backdrops = moveToHead(b.reg.backdrops, b)
}
