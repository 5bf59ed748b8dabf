// Package cave defines the grid data model shared by every builder: the
// closed set of terrain features, the per-cell info flags, the Level
// (the produced dungeon grid and its scalar fields), and the scratch
// GenerationState that lives only for the duration of one generate call.
//
// Feature is a tagged variant rather than a bare integer constant, so
// predicates like IsWall and IsPassable are exhaustive switches instead of
// arithmetic on magic numbers.
package cave
