// Package grid provides bounded drawing primitives shared by every
// builder: rectangle fill/outline, circle fill, and an even-distribution
// helper. Every primitive clips to the level's bounds rather than trusting
// callers to pre-clamp coordinates, since a single off-by-one in a room
// builder must never corrupt a neighboring block.
package grid
