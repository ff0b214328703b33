package mintcrate

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameConfig configures a Game.
type GameConfig struct {
	// Width, Height is the base (unscaled) resolution in pixels.
	Width, Height int

	// Library holds the entity and font definitions.
	Library *Library

	// Input optionally overrides the raw input source. Nil selects the
	// Ebiten-backed default; tests substitute a scripted source.
	Input InputSource

	// Saves optionally attaches a save-data store.
	Saves SaveStore
}

// Game is the framework context: the entity registry, collision queries,
// input tracker, and room manager, advanced together by one fixed-timestep
// tick. It implements [ebiten.Game], so it can be handed to ebiten.RunGame
// directly or via [Run].
//
// One tick is strictly sequenced: refresh input, run deferred room
// callbacks, run room logic, advance every live animation. Draw is a
// read-only traversal that always observes a fully settled tick.
type Game struct {
	width, height int

	lib      *Library
	registry *Registry
	input    *InputState
	rooms    *RoomManager
	saves    SaveStore

	ticks uint64
}

// NewGame creates a Game. The library may be empty but not nil-unfriendly:
// a nil Library is replaced by an empty one.
func NewGame(cfg GameConfig) *Game {
	lib := cfg.Library
	if lib == nil {
		lib = NewLibrary()
	}
	return &Game{
		width:    cfg.Width,
		height:   cfg.Height,
		lib:      lib,
		registry: NewRegistry(lib),
		input:    NewInputState(cfg.Input),
		rooms:    newRoomManager(),
		saves:    cfg.Saves,
	}
}

// Start constructs the first room. Call once before the tick loop runs.
func (g *Game) Start(factory RoomFactory) {
	g.rooms.Start(g, factory)
}

// ChangeRoom begins the fade-out transition to the room built by factory.
func (g *Game) ChangeRoom(factory RoomFactory) {
	g.rooms.ChangeRoom(factory)
}

// Entities returns the entity registry.
func (g *Game) Entities() *Registry {
	return g.registry
}

// Input returns the edge-triggered input tracker.
func (g *Game) Input() *InputState {
	return g.input
}

// Rooms returns the room manager.
func (g *Game) Rooms() *RoomManager {
	return g.rooms
}

// Room returns the current room, or nil before Start.
func (g *Game) Room() *Room {
	return g.rooms.Current()
}

// Library returns the definition library.
func (g *Game) Library() *Library {
	return g.lib
}

// Saves returns the attached save-data store, or nil.
func (g *Game) Saves() SaveStore {
	return g.saves
}

// Ticks returns the number of completed ticks since the game started.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Size returns the base resolution.
func (g *Game) Size() (w, h int) {
	return g.width, g.height
}

// CollideTilemap queries the current room's tilemap for the given entity
// and layer. No room or no tilemap yields an empty result.
func (g *Game) CollideTilemap(a *Active, layer int) []CollisionRecord {
	room := g.rooms.Current()
	if room == nil {
		return nil
	}
	return CollideTilemap(a, room.tilemap, layer)
}

// Update runs exactly one tick. Implements ebiten.Game; tests call it
// directly to drive deterministic scenarios.
func (g *Game) Update() error {
	g.input.refresh()
	g.rooms.tickTimers()
	g.rooms.update(g)
	g.registry.advanceAnimations()
	g.ticks++
	return nil
}

// Layout reports the base resolution; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string

	// Scale is the integer window scale applied to the base resolution.
	// Zero means 1.
	Scale int

	// TPS overrides the tick rate. Zero keeps Ebiten's default (60).
	TPS int

	Fullscreen bool
	Resizable  bool
}

// Run opens a window and drives the game loop until the window closes or
// an error is returned.
func Run(g *Game, cfg RunConfig) error {
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("mintcrate: run: %w", err)
	}
	return nil
}
