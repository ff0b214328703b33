package mintcrate

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RoomState is a room's position in the scene lifecycle.
type RoomState uint8

const (
	RoomLoading   RoomState = iota // constructed, not yet ticked
	RoomFadingIn                   // entry overlay fading out
	RoomActive                     // normal play
	RoomFadingOut                  // exit overlay fading in
	RoomHandoff                    // terminal; successor under construction
)

// FadeConfig describes one fade transition. Duration is the alpha ramp in
// ticks; Delay is the ticks held at full overlay color (before the ramp on
// fade-in, after it on fade-out).
type FadeConfig struct {
	Duration int
	Delay    int
	Color    Color
}

// RoomMember is implemented by game objects that take part in a room's
// per-tick logic. A member owns its entity handles and composes them; the
// framework never reaches into member internals.
type RoomMember interface {
	Update(g *Game)
}

// RoomFactory constructs a room. The room manager invokes it during
// handoff, after the previous room is fully torn down.
type RoomFactory func(g *Game) *Room

type roomTimer struct {
	remaining int
	fn        func()
}

// Room is a scene: dimensions, background, an optional tilemap, fade
// transitions, a camera offset, per-tick logic members, and a set of
// one-shot deferred callbacks. Entities created while a room is current
// belong to it and are destroyed with it.
type Room struct {
	// Width, Height are the room dimensions in pixels.
	Width, Height int

	// Background fills the frame before any entity draws.
	Background Color

	// CameraX, CameraY offset world drawing; game logic moves them freely.
	CameraX, CameraY float64

	// OnTick is optional room-level logic run before the members each tick.
	OnTick func(g *Game)

	name    string
	tilemap *Tilemap
	fadeIn  FadeConfig
	fadeOut FadeConfig

	state      RoomState
	stateTicks int
	fadeTween  *gween.Tween
	fadeAlpha  float64

	members   []RoomMember
	memberBuf []RoomMember
	timers    []roomTimer
	tornDown  bool
}

// NewRoom creates a room with the given dimensions, a black background,
// and instant (zero-duration) fades.
func NewRoom(name string, width, height int) *Room {
	return &Room{
		name:       name,
		Width:      width,
		Height:     height,
		Background: ColorBlack,
		fadeIn:     FadeConfig{Color: ColorBlack},
		fadeOut:    FadeConfig{Color: ColorBlack},
	}
}

// Name returns the room's name, used in lifecycle diagnostics.
func (r *Room) Name() string {
	return r.name
}

// State returns the room's lifecycle state.
func (r *Room) State() RoomState {
	return r.state
}

// SetTilemap attaches the room's tile grids. Part of room setup; the
// tilemap is immutable once the room runs.
func (r *Room) SetTilemap(m *Tilemap) {
	r.tilemap = m
}

// Tilemap returns the room's tilemap, or nil.
func (r *Room) Tilemap() *Tilemap {
	return r.tilemap
}

// ConfigureFadeIn sets the entry transition: durationTicks of alpha ramp
// after delayTicks held at full color.
func (r *Room) ConfigureFadeIn(durationTicks, delayTicks int, color Color) {
	r.fadeIn = FadeConfig{Duration: durationTicks, Delay: delayTicks, Color: color}
}

// ConfigureFadeOut sets the exit transition: durationTicks of alpha ramp,
// then delayTicks held at full color before handoff.
func (r *Room) ConfigureFadeOut(durationTicks, delayTicks int, color Color) {
	r.fadeOut = FadeConfig{Duration: durationTicks, Delay: delayTicks, Color: color}
}

// AddMember registers a game object for the room's per-tick logic.
// Members update in registration order.
func (r *Room) AddMember(m RoomMember) {
	r.members = append(r.members, m)
}

// RemoveMember unregisters a game object. Safe to call from inside a
// member's own Update; the current tick finishes with the snapshot taken
// at its start.
func (r *Room) RemoveMember(m RoomMember) {
	for i, v := range r.members {
		if v == m {
			copy(r.members[i:], r.members[i+1:])
			r.members[len(r.members)-1] = nil
			r.members = r.members[:len(r.members)-1]
			return
		}
	}
}

// Delay schedules fn to run once, ticks ticks from now, scoped to this
// room. Pending callbacks run in registration order and are dropped —
// never fired — if the room is torn down first.
func (r *Room) Delay(ticks int, fn func()) {
	if r.tornDown || fn == nil {
		return
	}
	r.timers = append(r.timers, roomTimer{remaining: ticks, fn: fn})
}

// FadeOverlay returns the overlay color and alpha the draw pass blends
// over the frame. Alpha 0 means no overlay.
func (r *Room) FadeOverlay() (Color, float64) {
	switch r.state {
	case RoomLoading, RoomFadingIn:
		return r.fadeIn.Color, r.fadeAlpha
	case RoomFadingOut, RoomHandoff:
		return r.fadeOut.Color, r.fadeAlpha
	}
	return Color{}, 0
}

// tickTimers decrements every pending callback and fires the ones that
// reach zero, in registration order. Runs before room logic each tick.
// Callbacks scheduled by a firing callback start counting from the next
// tick.
func (r *Room) tickTimers() {
	if len(r.timers) == 0 {
		return
	}
	due := r.timers
	r.timers = nil
	for i := range due {
		due[i].remaining--
	}
	kept := due[:0]
	for _, t := range due {
		if t.remaining <= 0 {
			t.fn()
			if r.tornDown {
				return
			}
			continue
		}
		kept = append(kept, t)
	}
	r.timers = append(kept, r.timers...)
}

// runLogic executes the room's per-tick logic: the OnTick hook, then every
// member in registration order. The member list is snapshotted so that
// mid-tick removal or room changes cannot disturb the traversal.
func (r *Room) runLogic(g *Game) {
	if r.OnTick != nil {
		r.OnTick(g)
	}
	r.memberBuf = append(r.memberBuf[:0], r.members...)
	for _, m := range r.memberBuf {
		if r.tornDown {
			return
		}
		m.Update(g)
	}
}

// advanceFade runs one tick of the current fade transition. Returns true
// when the transition (ramp plus delay) has fully completed.
func (r *Room) advanceFade() bool {
	cfg := r.fadeIn
	if r.state == RoomFadingOut {
		cfg = r.fadeOut
	}
	r.stateTicks++

	if r.state == RoomFadingIn {
		// Hold at full color through the delay, then ramp 1 -> 0.
		if r.stateTicks <= cfg.Delay {
			r.fadeAlpha = 1
			return false
		}
		if r.fadeTween == nil {
			if cfg.Duration <= 0 {
				r.fadeAlpha = 0
				return true
			}
			r.fadeTween = gween.New(1, 0, float32(cfg.Duration), ease.Linear)
		}
		alpha, done := r.fadeTween.Update(1)
		r.fadeAlpha = float64(alpha)
		return done
	}

	// Fade out: ramp 0 -> 1, then hold at full color through the delay.
	if r.fadeTween == nil && cfg.Duration > 0 {
		r.fadeTween = gween.New(0, 1, float32(cfg.Duration), ease.Linear)
	}
	if r.fadeTween != nil {
		alpha, done := r.fadeTween.Update(1)
		r.fadeAlpha = float64(alpha)
		if !done {
			return false
		}
	} else {
		r.fadeAlpha = 1
	}
	rampTicks := cfg.Duration
	return r.stateTicks >= rampTicks+cfg.Delay
}

// enterState switches lifecycle state and resets per-state counters.
func (r *Room) enterState(s RoomState) {
	r.state = s
	r.stateTicks = 0
	r.fadeTween = nil
	switch s {
	case RoomLoading, RoomFadingIn:
		r.fadeAlpha = 1
	case RoomActive:
		r.fadeAlpha = 0
	}
	logger.Debug("room state", "room", r.name, "state", s)
}

// teardown destroys the room's entities and drops its pending callbacks.
func (r *Room) teardown(g *Game) {
	r.tornDown = true
	r.timers = nil
	r.members = nil
	g.registry.destroyRoom(r)
	logger.Debug("room torn down", "room", r.name)
}

// RoomManager drives the scene lifecycle state machine and the handoff
// from one room to its successor.
type RoomManager struct {
	current *Room
	next    RoomFactory
}

func newRoomManager() *RoomManager {
	return &RoomManager{}
}

// Current returns the room now holding the stage, or nil before Start.
func (m *RoomManager) Current() *Room {
	return m.current
}

// Start constructs the first room. Must be called once before the tick
// loop runs.
func (m *RoomManager) Start(g *Game, factory RoomFactory) {
	m.install(g, factory)
}

// ChangeRoom begins the transition to the room built by factory. The
// current room enters its fade-out; calls made while already fading out
// are ignored, so exactly one transition is ever in flight.
func (m *RoomManager) ChangeRoom(factory RoomFactory) {
	if m.current == nil || m.current.state == RoomFadingOut || m.current.state == RoomHandoff {
		return
	}
	m.next = factory
	m.current.enterState(RoomFadingOut)
}

// install constructs a room via factory and makes it current in the
// Loading state. Entities created inside the factory are adopted by the
// room it returns.
func (m *RoomManager) install(g *Game, factory RoomFactory) {
	g.registry.setRoom(nil)
	room := factory(g)
	m.current = room
	g.registry.setRoom(room)
	g.registry.adoptOrphans(room)
	room.enterState(RoomLoading)
}

// tickTimers runs the deferred-callback phase for the current room.
func (m *RoomManager) tickTimers() {
	if m.current != nil && m.current.state != RoomHandoff {
		m.current.tickTimers()
	}
}

// update advances the lifecycle state machine and runs the current room's
// logic for this tick.
func (m *RoomManager) update(g *Game) {
	room := m.current
	if room == nil {
		return
	}

	switch room.state {
	case RoomLoading:
		room.enterState(RoomFadingIn)
		if room.fadeIn.Duration <= 0 && room.fadeIn.Delay <= 0 {
			room.enterState(RoomActive)
		}
		room.runLogic(g)

	case RoomFadingIn:
		done := room.advanceFade()
		room.runLogic(g)
		if done && room.state == RoomFadingIn {
			room.enterState(RoomActive)
		}

	case RoomActive:
		room.runLogic(g)

	case RoomFadingOut:
		done := room.advanceFade()
		room.runLogic(g)
		if done && room.state == RoomFadingOut {
			room.enterState(RoomHandoff)
			room.teardown(g)
			if m.next != nil {
				factory := m.next
				m.next = nil
				m.install(g, factory)
			}
		}
	}
}
