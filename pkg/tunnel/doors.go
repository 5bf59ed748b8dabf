package tunnel

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// PlaceDoors tests every door candidate Tunnel recorded in st.Doors and, for
// each that still qualifies, rolls profile.Jct% to actually place one. A
// candidate qualifies if it isn't a strong wall or in-room cell, has at
// least two adjacent corridor (non-room floor) cells, and is sandwiched
// between two strong walls either vertically or horizontally — the
// corridor-junction shape a door belongs on, not the middle of a room or a
// random tunnel bend. Returns the number of doors actually placed.
func PlaceDoors(l *cave.Level, st *cave.State, r *rng.RNG, profile profiles.TunnelProfile) int {
	placed := 0
	for _, d := range st.Doors {
		if !qualifiesForDoor(l, d.X, d.Y) {
			continue
		}
		if r.RandInt0(100) >= profile.Jct {
			continue
		}
		l.Set(d.X, d.Y, cave.Cell{Feature: doorFeature(r)})
		placed++
	}
	return placed
}

func qualifiesForDoor(l *cave.Level, x, y int) bool {
	c := l.At(x, y)
	if c.Feature.IsPermanent() || c.IsRoom() {
		return false
	}

	corridorNeighbors := 0
	for _, d := range cardinals {
		nx, ny := x+d.dx, y+d.dy
		if !l.InBounds(nx, ny) {
			continue
		}
		n := l.At(nx, ny)
		if n.IsFloor() && !n.IsRoom() {
			corridorNeighbors++
		}
	}
	if corridorNeighbors < 2 {
		return false
	}

	sandwichedVertically := l.InBounds(x, y-1) && l.InBounds(x, y+1) &&
		l.At(x, y-1).IsWall() && l.At(x, y+1).IsWall()
	sandwichedHorizontally := l.InBounds(x-1, y) && l.InBounds(x+1, y) &&
		l.At(x-1, y).IsWall() && l.At(x+1, y).IsWall()

	return sandwichedVertically || sandwichedHorizontally
}
