package tunnel

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

type direction struct{ dx, dy int }

var cardinals = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

const maxTunnelSteps = 2000

// Tunnel carves a corridor from `from` toward `to`, re-evaluating direction
// with profile.Chg% probability per step (profile.Rnd% of those
// re-evaluations pick a uniform cardinal instead of heading at the target).
// The candidate cell at each step is dispatched by feature:
//
//  1. permanent-* — skip, re-aim at the target.
//  2. wall-outer (room boundary) — look two cells further along the current
//     direction; if that cell is itself another outer/solid/permanent wall,
//     skip (no legal piercing there). Otherwise accept: record a piercing
//     and convert the 8 neighboring wall-outer cells to wall-solid, so no
//     wall-outer cell is ever left adjacent to another across a piercing.
//  3. an in-room cell — traverse through without recording anything.
//  4. wall-solid, wall-extra, magma, or quartz — ordinary diggable rock;
//     accept and record a plain tunnel cell (becomes floor once every room
//     pair has been connected); clears the one-door-per-corridor flag.
//  5. anything else (previously dug corridor or floor) — accept; if the
//     door flag isn't already set, record a door candidate and set it. With
//     probability 1-Con/100, once Chebyshev distance from the start exceeds
//     10, the walk gives up here rather than wandering indefinitely.
//
// Piercing cells become floor (or, with profile.Pen% probability, a door)
// as soon as they're accepted; a freshly accepted tunnel cell is finalized
// to floor later by the caller once every corridor in the level is dug.
//
// Tunnel returns ok=false (nil error) if it exhausts its step budget, or
// gives up early past the Chebyshev-10 boundary, without reaching `to` — a
// normal condition, not a programmer error: the default builder ignores it
// and leaves any resulting gap to Repair, which re-labels and bridges again.
func Tunnel(l *cave.Level, st *cave.State, r *rng.RNG, profile profiles.TunnelProfile, from, to cave.Point) (bool, error) {
	cur := from
	dir := mainDirection(cur, to)
	doorFlag := false

	for step := 0; step < maxTunnelSteps && cur != to; step++ {
		if r.RandInt0(100) < profile.Chg {
			if r.RandInt0(100) < profile.Rnd {
				dir = cardinals[r.RandInt0(len(cardinals))]
			} else {
				dir = mainDirection(cur, to)
			}
		}

		next := cave.Point{X: cur.X + dir.dx, Y: cur.Y + dir.dy}
		if !l.InBounds(next.X, next.Y) {
			dir = mainDirection(cur, to)
			continue
		}

		cell := l.At(next.X, next.Y)
		switch {
		case cell.Feature.IsPermanent(): // rule 1
			dir = mainDirection(cur, to)
			continue

		case cell.Feature.Kind == cave.WallOuter: // rule 2
			ahead := cave.Point{X: next.X + dir.dx, Y: next.Y + dir.dy}
			if !l.InBounds(ahead.X, ahead.Y) || blocksPiercing(l.At(ahead.X, ahead.Y)) {
				dir = mainDirection(cur, to)
				continue
			}
			st.AddPiercing(cave.Piercing{X: next.X, Y: next.Y})
			solidifyOuterNeighbors(l, next.X, next.Y)
			if r.RandInt0(100) < profile.Pen {
				l.Set(next.X, next.Y, cave.Cell{Feature: doorFeature(r)})
			} else {
				l.Set(next.X, next.Y, cave.Cell{Feature: cave.F(cave.Floor)})
			}
			doorFlag = false

		case cell.IsRoom(): // rule 3

		case cell.Feature.Kind == cave.WallSolid, cell.Feature.Kind == cave.WallExtra,
			cell.Feature.Kind == cave.Magma, cell.Feature.Kind == cave.Quartz: // rule 4
			st.AddTunnelCell(next)
			doorFlag = false

		default: // rule 5: previously dug corridor or floor
			if !doorFlag {
				st.AddDoor(cave.Door{X: next.X, Y: next.Y})
				doorFlag = true
			}
			if chebyshev(from, next) > 10 && r.RandInt0(100) >= profile.Con {
				return false, nil
			}
		}

		cur = next
	}

	return cur == to, nil
}

// blocksPiercing reports whether c is itself a wall too strong to pierce
// from the far side of a wall-outer crossing.
func blocksPiercing(c *cave.Cell) bool {
	return c.Feature.IsPermanent() || c.Feature.Kind == cave.WallSolid || c.Feature.Kind == cave.WallOuter
}

// solidifyOuterNeighbors converts every wall-outer cell 8-adjacent to
// (x, y) to wall-solid, so a second corridor can never pierce the same
// room boundary immediately next to an existing piercing.
func solidifyOuterNeighbors(l *cave.Level, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !l.InBounds(nx, ny) {
				continue
			}
			if n := l.At(nx, ny); n.Feature.Kind == cave.WallOuter {
				l.Set(nx, ny, cave.Cell{Feature: cave.F(cave.WallSolid)})
			}
		}
	}
}

// doorFeature rolls a door kind: open 30%, broken 10%, secret 20%, closed
// 40% (of the closed share: 300/400 unlocked, 99/400 locked at level 1-7,
// 1/400 jammed at level 8-15).
func doorFeature(r *rng.RNG) cave.Feature {
	roll := r.RandInt0(100)
	switch {
	case roll < 30:
		return cave.F(cave.OpenDoor)
	case roll < 40:
		return cave.F(cave.BrokenDoor)
	case roll < 60:
		return cave.F(cave.SecretDoor)
	default:
		sub := r.RandInt0(400)
		switch {
		case sub < 300:
			return cave.UnlockedDoor()
		case sub < 399:
			return cave.LockedDoor(1 + r.RandInt0(7))
		default:
			return cave.JammedDoor(8 + r.RandInt0(8))
		}
	}
}

func mainDirection(from, to cave.Point) direction {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	if dx != 0 && dy != 0 {
		// Prefer the axis with more distance left, so the walk doesn't
		// zig-zag diagonally forever.
		if abs(to.X-from.X) >= abs(to.Y-from.Y) {
			dy = 0
		} else {
			dx = 0
		}
	}
	if dx == 0 && dy == 0 {
		return direction{1, 0}
	}
	return direction{dx, dy}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func chebyshev(a, b cave.Point) int {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	if dx > dy {
		return dx
	}
	return dy
}
