package grid

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/rng"
)

// FillRect stamps feature f into every cell of [x0,x1] x [y0,y1] inclusive,
// clipped to the level's bounds.
func FillRect(l *cave.Level, x0, y0, x1, y1 int, f cave.Feature, info cave.InfoFlag) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !l.InBounds(x, y) {
				continue
			}
			l.Set(x, y, cave.Cell{Feature: f, Info: info})
		}
	}
}

// OutlineRect stamps feature f along the border of [x0,x1] x [y0,y1]
// inclusive, clipped to the level's bounds, leaving the interior untouched.
func OutlineRect(l *cave.Level, x0, y0, x1, y1 int, f cave.Feature, info cave.InfoFlag) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		setIfInBounds(l, x, y0, f, info)
		setIfInBounds(l, x, y1, f, info)
	}
	for y := y0; y <= y1; y++ {
		setIfInBounds(l, x0, y, f, info)
		setIfInBounds(l, x1, y, f, info)
	}
}

func setIfInBounds(l *cave.Level, x, y int, f cave.Feature, info cave.InfoFlag) {
	if l.InBounds(x, y) {
		l.Set(x, y, cave.Cell{Feature: f, Info: info})
	}
}

// FillCircle stamps feature f into every cell within radius r of (cx, cy)
// inclusive (distance-squared test, so the boundary is a true disk rather
// than a diamond or square), clipped to the level's bounds.
func FillCircle(l *cave.Level, cx, cy, r int, f cave.Feature, info cave.InfoFlag) {
	rr := r * r
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > rr {
				continue
			}
			if !l.InBounds(x, y) {
				continue
			}
			l.Set(x, y, cave.Cell{Feature: f, Info: info})
		}
	}
}

// Line walks the Bresenham line from (x0,y0) to (x1,y1) inclusive, calling
// visit for every cell in order.
func Line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// PlaceStairs scatters down and up stairs at random floor cells, each
// required to be adjacent to at least 3 wall cells (so a stair never sits
// in the open middle of a room or cavern). Returns the counts actually
// placed, which may fall short of downCount/upCount if the level runs out
// of qualifying cells within the attempt budget.
func PlaceStairs(l *cave.Level, r *rng.RNG, downCount, upCount int) (placedDown, placedUp int) {
	placedDown = scatterStairs(l, r, cave.MoreStair, downCount)
	placedUp = scatterStairs(l, r, cave.LessStair, upCount)
	return
}

func scatterStairs(l *cave.Level, r *rng.RNG, kind cave.FeatureKind, n int) int {
	placed := 0
	for attempts := 0; attempts < n*40 && placed < n; attempts++ {
		x := 1 + r.RandInt0(l.Width-2)
		y := 1 + r.RandInt0(l.Height-2)
		c := l.At(x, y)
		if !c.IsFloor() || c.HasMonster() || c.HasObject() {
			continue
		}
		if wallNeighborCount(l, x, y) < 3 {
			continue
		}
		l.Set(x, y, cave.Cell{Feature: cave.F(kind), Info: c.Info})
		placed++
	}
	return placed
}

func wallNeighborCount(l *cave.Level, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !l.InBounds(nx, ny) || l.At(nx, ny).IsWall() {
				n++
			}
		}
	}
	return n
}

// EvenSplit divides total into parts nearly-equal non-negative integers
// that sum to exactly total, differing from each other by at most one.
func EvenSplit(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	out := make([]int, parts)
	base := total / parts
	rem := total % parts
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}
