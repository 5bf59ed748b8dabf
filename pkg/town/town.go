package town

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/grid"
	"github.com/dshills/cavegen/pkg/rng"
)

const (
	shopCount  = 8
	shopWidth  = 10
	shopHeight = 6
	shopGap    = 2
	plazaDepth = 10
)

// Result reports the fixed layout's entrance, stairs and resident count.
type Result struct {
	ShopOrder    [8]int // shop index at each of the 8 building slots, slot order: row-major
	StairDown    cave.Point
	ResidentSpots []cave.Point
}

// Dimensions returns the grid size (including the permanent border) that
// fits the fixed town layout exactly, for callers allocating the level.
func Dimensions() (width, height int) {
	totalW := shopCount/2*shopWidth + (shopCount/2-1)*shopGap
	totalH := 2*shopHeight + plazaDepth
	return totalW + 2, totalH + 2
}

// Build carves the fixed town layout: two rows of four shops facing a
// central plaza (lit by day), a single down staircase, and resident spawn
// spots scaled by time of day.
func Build(l *cave.Level, r *rng.RNG, isDay bool) (Result, bool, error) {
	totalW := shopCount/2*shopWidth + (shopCount/2-1)*shopGap
	totalH := 2*shopHeight + plazaDepth
	if totalW > l.Width-2 || totalH > l.Height-2 {
		return Result{}, false, nil
	}
	x0 := 1 + (l.Width-2-totalW)/2
	y0 := 1 + (l.Height-2-totalH)/2

	// Plaza: the whole footprint starts as open ground; shops carve walls
	// into it below.
	plazaGlow := cave.InfoFlag(0)
	if isDay {
		plazaGlow = cave.Glow
	}
	grid.FillRect(l, x0, y0, x0+totalW-1, y0+totalH-1, cave.F(cave.Floor), plazaGlow)

	// Shop numbering is shuffled by a "quick" draw that never perturbs the
	// RNG sequence the rest of generation depends on: save state, burn
	// draws on the shuffle, then restore so resident counts below see the
	// same sequence regardless of how the shuffle played out.
	saved := r.Save()
	order := [shopCount]int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	r.Restore(saved)

	for slot := 0; slot < shopCount; slot++ {
		row, col := slot/4, slot%4
		sx := x0 + col*(shopWidth+shopGap)
		var sy int
		var doorY int
		if row == 0 {
			sy = y0
			doorY = sy + shopHeight - 1
		} else {
			sy = y0 + shopHeight + plazaDepth
			doorY = sy
		}

		grid.FillRect(l, sx+1, sy+1, sx+shopWidth-2, sy+shopHeight-2, cave.F(cave.Floor), cave.InRoom)
		grid.OutlineRect(l, sx, sy, sx+shopWidth-1, sy+shopHeight-1, cave.F(cave.WallOuter), 0)
		l.Set(sx+shopWidth/2, doorY, cave.Cell{Feature: cave.Shop(order[slot]), Info: cave.InRoom})
	}

	stair := cave.Point{X: x0 + totalW/2, Y: y0 + totalH/2}
	l.Set(stair.X, stair.Y, cave.Cell{Feature: cave.F(cave.MoreStair), Info: plazaGlow})

	residentCount := 2 + r.RandInt0(4)
	if isDay {
		residentCount = 8 + r.RandInt0(8)
	}

	res := Result{ShopOrder: order, StairDown: stair}
	res.ResidentSpots = scatterPlaza(l, r, x0, y0, totalW, totalH, stair, residentCount)
	return res, true, nil
}

func scatterPlaza(l *cave.Level, r *rng.RNG, x0, y0, w, h int, avoid cave.Point, n int) []cave.Point {
	var out []cave.Point
	for attempts := 0; attempts < n*6 && len(out) < n; attempts++ {
		p := cave.Point{X: x0 + r.RandInt0(w), Y: y0 + r.RandInt0(h)}
		if p == avoid || !l.At(p.X, p.Y).IsFloor() {
			continue
		}
		out = append(out, p)
	}
	return out
}
