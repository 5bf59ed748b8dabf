package cavern

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/grid"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
	"github.com/dshills/cavegen/pkg/tunnel"
)

// initialDensity is the percent chance a freshly seeded interior cell
// starts as floor, before any smoothing passes run.
const initialDensity = 45

// maxSmoothPasses bounds how many birth/survive generations Build runs.
const maxSmoothPasses = 10

// minOpenDivisor: a cavern must open up at least h*w/minOpenDivisor floor
// cells to be considered usable.
const minOpenDivisor = 13

// Result reports the shape of the cavern actually produced.
type Result struct {
	OpenCount  int
	DownStairs int
	UpStairs   int
}

// maxDownStairs and maxUpStairs are the stair counts a full-area cavern
// would get; a cavern occupying a smaller fraction of the level scales
// both down by that same fraction.
const (
	maxDownStairs = 3
	maxUpStairs   = 2
)

// Build carves a cavern into the interior of l (the permanent border left
// by cave.NewLevel is untouched) and reports ok=false if the result opened
// up too little floor to be worth keeping — a normal, retryable condition.
func Build(l *cave.Level, st *cave.State, r *rng.RNG, profile profiles.CaveProfile) (Result, bool, error) {
	x0, y0 := 1, 1
	x1, y1 := l.Width-2, l.Height-2
	if x1 <= x0 || y1 <= y0 {
		return Result{}, false, nil
	}

	seed(l, r, x0, y0, x1, y1)
	for pass := 0; pass < maxSmoothPasses; pass++ {
		smooth(l, x0, y0, x1, y1)
	}

	connected, err := tunnel.Repair(l, st, r, profile.Tunnel)
	if err != nil {
		return Result{}, false, err
	}
	if !connected {
		return Result{}, false, nil
	}

	open := countOpen(l, x0, y0, x1, y1)
	w, h := x1-x0+1, y1-y0+1
	if open < (w*h)/minOpenDivisor {
		return Result{}, false, nil
	}

	fullArea := l.Width * l.Height
	downCount := scaledStairCount(maxDownStairs, w, h, fullArea)
	upCount := scaledStairCount(maxUpStairs, w, h, fullArea)
	placedDown, placedUp := grid.PlaceStairs(l, r, downCount, upCount)

	return Result{OpenCount: open, DownStairs: placedDown, UpStairs: placedUp}, true, nil
}

// scaledStairCount scales maxN by the cavern's share of the full level
// area, per the cavern builder's area-proportional stair/monster/object
// rule, and never rounds below 1.
func scaledStairCount(maxN, w, h, fullArea int) int {
	v := maxN * w * h / fullArea
	if v < 1 {
		v = 1
	}
	return v
}

func seed(l *cave.Level, r *rng.RNG, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.RandInt0(100) < initialDensity {
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.CaveFloor)})
			} else {
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.WallSolid)})
			}
		}
	}
}

// smooth applies one birth/survive generation: a wall cell with at most 3
// floor neighbors is born as floor; a floor cell with at least 4 floor
// neighbors survives as floor; everything else becomes (or stays) wall.
func smooth(l *cave.Level, x0, y0, x1, y1 int) {
	w, h := x1-x0+1, y1-y0+1
	next := make([]bool, w*h) // true = floor
	idx := func(x, y int) int { return (y-y0)*w + (x - x0) }

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			n := floorNeighborCount(l, x, y)
			wasFloor := l.At(x, y).IsFloor()
			switch {
			case !wasFloor && n <= 3:
				next[idx(x, y)] = true
			case wasFloor && n >= 4:
				next[idx(x, y)] = true
			default:
				next[idx(x, y)] = false
			}
		}
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if next[idx(x, y)] {
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.CaveFloor)})
			} else {
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.WallSolid)})
			}
		}
	}
}

func floorNeighborCount(l *cave.Level, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !l.InBounds(nx, ny) {
				continue // border counts as wall, not floor
			}
			if l.At(nx, ny).IsFloor() {
				n++
			}
		}
	}
	return n
}

func countOpen(l *cave.Level, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if l.At(x, y).IsFloor() {
				n++
			}
		}
	}
	return n
}
