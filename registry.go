package mintcrate

// Registry owns the three ordered entity collections and assigns draw
// order. Within a kind, entities draw in collection order: an Add appends
// to the tail, so the newest sibling draws on top. Across kinds the order
// is fixed — backdrops, then actives, then paragraphs — and that two-level
// ordering is the entire z-order model.
type Registry struct {
	lib  *Library
	room *Room

	actives    []*Active
	backdrops  []*Backdrop
	paragraphs []*Paragraph

	// animBuf is reused each tick so that mid-tick destruction cannot
	// disturb the animation traversal.
	animBuf []*Active

	nextID uint32
}

// NewRegistry creates an empty registry resolving definition names against
// lib.
func NewRegistry(lib *Library) *Registry {
	return &Registry{lib: lib}
}

// setRoom changes the room that newly added entities belong to.
// Called by the room manager on handoff.
func (r *Registry) setRoom(room *Room) {
	r.room = room
}

func (r *Registry) newEntity() Entity {
	r.nextID++
	return Entity{
		ID:      r.nextID,
		Visible: true,
		room:    r.room,
		reg:     r,
	}
}

// AddActive creates an Active at (x, y) from the named ActiveDef and
// appends it to the active collection. Fails with
// UndefinedDefinitionError if the name was never registered.
func (r *Registry) AddActive(name string, x, y float64) (*Active, error) {
	def := r.lib.active(name)
	if def == nil {
		return nil, &UndefinedDefinitionError{Kind: "active", Name: name}
	}
	a := &Active{
		Entity:   r.newEntity(),
		Collider: def.Collider,
		ScaleX:   1,
		ScaleY:   1,
		Opacity:  1,
		def:      def,
	}
	a.X, a.Y = x, y
	if def.DefaultAnimation != "" {
		a.animName = def.DefaultAnimation
	}
	r.actives = append(r.actives, a)
	logger.Debug("active added", "name", name, "id", a.ID)
	return a, nil
}

// AddBackdrop creates a Backdrop at (x, y) from the named BackdropDef and
// appends it to the backdrop collection. Fails with
// UndefinedDefinitionError if the name was never registered.
func (r *Registry) AddBackdrop(name string, x, y float64) (*Backdrop, error) {
	def := r.lib.backdrop(name)
	if def == nil {
		return nil, &UndefinedDefinitionError{Kind: "backdrop", Name: name}
	}
	b := &Backdrop{
		Entity: r.newEntity(),
		Mosaic: def.Mosaic,
		def:    def,
	}
	b.X, b.Y = x, y
	r.backdrops = append(r.backdrops, b)
	return b, nil
}

// AddParagraph creates a Paragraph at (x, y) rendering text with the named
// font and appends it to the paragraph collection. Fails with
// UndefinedDefinitionError if the font was never registered.
func (r *Registry) AddParagraph(fontName string, x, y float64, text string) (*Paragraph, error) {
	font := r.lib.font(fontName)
	if font == nil {
		return nil, &UndefinedDefinitionError{Kind: "font", Name: fontName}
	}
	p := &Paragraph{
		Entity:      r.newEntity(),
		text:        text,
		font:        font,
		layoutDirty: true,
	}
	p.X, p.Y = x, y
	r.paragraphs = append(r.paragraphs, p)
	return p, nil
}

// Actives returns the active collection in draw order.
// The returned slice MUST NOT be mutated by the caller.
func (r *Registry) Actives() []*Active {
	return r.actives
}

// Backdrops returns the backdrop collection in draw order.
// The returned slice MUST NOT be mutated by the caller.
func (r *Registry) Backdrops() []*Backdrop {
	return r.backdrops
}

// Paragraphs returns the paragraph collection in draw order.
// The returned slice MUST NOT be mutated by the caller.
func (r *Registry) Paragraphs() []*Paragraph {
	return r.paragraphs
}

// Len returns the total number of live entities.
func (r *Registry) Len() int {
	return len(r.actives) + len(r.backdrops) + len(r.paragraphs)
}

// advanceAnimations runs one animation tick for every live Active. The
// traversal works on a reused snapshot so an OnAnimationFinish hook that
// destroys entities cannot disturb the iteration.
func (r *Registry) advanceAnimations() {
	r.animBuf = append(r.animBuf[:0], r.actives...)
	for _, a := range r.animBuf {
		if !a.destroyed {
			a.advanceAnimation()
		}
	}
}

// adoptOrphans assigns room to every entity created before the room
// existed (entities made inside the room's own factory).
func (r *Registry) adoptOrphans(room *Room) {
	for _, a := range r.actives {
		if a.room == nil {
			a.room = room
		}
	}
	for _, b := range r.backdrops {
		if b.room == nil {
			b.room = room
		}
	}
	for _, p := range r.paragraphs {
		if p.room == nil {
			p.room = room
		}
	}
}

// destroyRoom destroys every entity owned by room. Called during room
// teardown; handles held by game logic become inert.
func (r *Registry) destroyRoom(room *Room) {
	r.actives = destroyOwned(r.actives, room, func(a *Active) *Entity { return &a.Entity })
	r.backdrops = destroyOwned(r.backdrops, room, func(b *Backdrop) *Entity { return &b.Entity })
	r.paragraphs = destroyOwned(r.paragraphs, room, func(p *Paragraph) *Entity { return &p.Entity })
}

func (r *Registry) removeActive(a *Active) {
	r.actives = removeFrom(r.actives, a)
}

func (r *Registry) removeBackdrop(b *Backdrop) {
	r.backdrops = removeFrom(r.backdrops, b)
}

func (r *Registry) removeParagraph(p *Paragraph) {
	r.paragraphs = removeFrom(r.paragraphs, p)
}

// --- Ordered-collection helpers ---

// removeFrom removes x preserving order. Uses copy+nil to avoid retaining a
// dangling pointer in the backing array.
func removeFrom[T comparable](s []T, x T) []T {
	for i, v := range s {
		if v == x {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// destroyOwned marks every element owned by room destroyed and compacts the
// slice in place, preserving the order of survivors.
func destroyOwned[T any](s []*T, room *Room, ent func(*T) *Entity) []*T {
	kept := s[:0]
	for _, v := range s {
		e := ent(v)
		if e.room == room {
			e.destroyed = true
			continue
		}
		kept = append(kept, v)
	}
	for i := len(kept); i < len(s); i++ {
		s[i] = nil
	}
	return kept
}

// swapForward swaps x with its immediate successor; no-op at the tail.
func swapForward[T comparable](s []T, x T) {
	for i, v := range s {
		if v == x {
			if i+1 < len(s) {
				s[i], s[i+1] = s[i+1], s[i]
			}
			return
		}
	}
}

// swapBackward swaps x with its immediate predecessor; no-op at the head.
func swapBackward[T comparable](s []T, x T) {
	for i, v := range s {
		if v == x {
			if i > 0 {
				s[i], s[i-1] = s[i-1], s[i]
			}
			return
		}
	}
}

// moveToTail moves x to the end of the slice, preserving the relative order
// of the other elements.
func moveToTail[T comparable](s []T, x T) []T {
	for i, v := range s {
		if v == x {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = x
			return s
		}
	}
	return s
}

// moveToHead moves x to the front of the slice, preserving the relative
// order of the other elements.
func moveToHead[T comparable](s []T, x T) []T {
	for i, v := range s {
		if v == x {
			copy(s[1:i+1], s[:i])
			s[0] = x
			return s
		}
	}
	return s
}
