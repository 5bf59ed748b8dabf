// Package rooms implements the room builders the default
// rooms-and-corridors profile dispatches to: seven procedural shapes
// (simple, overlap, crossed, circular, large, nest, pit) plus the vault
// stamper. Builders carve into a shared cave.Level and claim 11x11 dungeon
// blocks in a cave.State so later placement attempts skip occupied ground.
// The corridor tunneller does not read the block reservations.
//
// Profiles cannot carry a function pointer through YAML, so
// profiles.RoomKind is a closed enum and Build is the single switch that turns a kind into a
// concrete shape.
package rooms
