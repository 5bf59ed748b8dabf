// Package tunnel carves corridors between room centers and repairs level
// connectivity afterward. Tunnel implements the direction-biased,
// percentage-driven digger (the "Tunneller"); Repair flood-fills the level
// into connected regions, solidifies anything too small to matter, and
// bridges what remains so every floor cell ends up reachable from every
// other.
package tunnel
