// Package mintcrate is a fixed-timestep 2D game framework for [Ebitengine].
//
// MintCrate provides the entity registry, sprite animation timing, collision
// queries, tile-grid semantics, bitmap text, edge-triggered input, and the
// room lifecycle that every small retro-style 2D game needs. Rendering,
// audio decoding, and device polling stay with the host engine; this package
// owns the deterministic runtime in between.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	lib := mintcrate.NewLibrary()
//	// ... register entity and font definitions ...
//	game := mintcrate.NewGame(mintcrate.GameConfig{
//		Width: 320, Height: 240, Library: lib,
//	})
//	game.Start(titleRoom)
//	mintcrate.Run(game, mintcrate.RunConfig{
//		Title: "My Game", Scale: 3,
//	})
//
// For full control, implement [ebiten.Game] yourself and call [Game.Update]
// and [Game.Draw] directly.
//
// # Entities
//
// Everything a room contains is one of three entity kinds, each with its own
// ordered collection in the [Registry]:
//
//   - [Active]: a moving or interactive object with a collider and animation
//     state. Created from an [ActiveDef] registered in the [Library].
//   - [Backdrop]: a static visual layer, optionally tiled ("mosaic").
//   - [Paragraph]: formatted bitmap text.
//
// Draw order is two-level and deterministic: backdrops first, then actives,
// then paragraphs; within a kind, insertion order unless reordered with
// [Active.BringToFront] and friends. There is no numeric z value.
//
// Entity lifetime is explicit. Destroy returns the nil sentinel so a holder
// can clear its own reference in one step:
//
//	enemy = enemy.Destroy()
//
// # Rooms
//
// A [Room] is a scene with its own entities, optional [Tilemap], fade
// transitions, and one-shot deferred callbacks. Rooms are built by a
// [RoomFactory] and move through a fixed lifecycle: loading, fade-in,
// active, fade-out, handoff to the next room. Tearing a room down destroys
// its entities and cancels its pending callbacks.
//
// # Ticks
//
// One tick runs: input refresh, deferred callbacks, room logic, animation
// advancement. The draw pass is a read-only traversal that always observes
// a fully settled tick. Everything is single-threaded; determinism follows
// from input alone.
//
// [Ebitengine]: https://ebitengine.org
package mintcrate
