// Package labyrinth builds maze levels with a randomized-Kruskal spanning
// tree over a half-resolution grid of maze cells, then stamps the result
// into full-resolution dungeon cells. Walls left standing between
// unconnected cells are each independently rolled soft (diggable) or
// permanent, so some mazes hide tunneling shortcuts and others don't.
package labyrinth
