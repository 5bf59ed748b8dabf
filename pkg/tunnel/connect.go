package tunnel

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// minRegionSize is the smallest passable region Repair leaves standing;
// anything smaller is solidified rather than bridged, since a 1-8 cell
// pocket isn't worth a corridor.
const minRegionSize = 9

// maxBridgeAttempts bounds how many inter-region corridors Repair will try
// before giving up and reporting failure to the caller.
const maxBridgeAttempts = 64

// Repair flood-fills the level's passable cells into connected regions,
// solidifies any region smaller than minRegionSize, and digs bridging
// corridors between the remaining regions until exactly one is left.
// Returns ok=false (nil error) if it could not fully connect the level
// within its bridging budget — a retryable condition, not a bug.
func Repair(l *cave.Level, st *cave.State, r *rng.RNG, tun profiles.TunnelProfile) (bool, error) {
	for attempt := 0; attempt < maxBridgeAttempts; attempt++ {
		regions := labelRegions(l)
		solidifySmallRegions(l, regions)
		regions = labelRegions(l)

		if len(regions) <= 1 {
			return true, nil
		}

		a := regionRepresentative(regions[0])
		b := regionRepresentative(regions[1])
		before := len(st.TunnelCells)
		ok, err := Tunnel(l, st, r, tun, a, b)
		if err != nil {
			return false, err
		}
		_ = ok // whether or not Tunnel reached b exactly, re-label and retry
		// Finalize the rock this bridge dug through, then drop those records
		// so later bridges are not starved by the tunnel-cell cap.
		for _, p := range st.TunnelCells[before:] {
			l.Set(p.X, p.Y, cave.Cell{Feature: cave.F(cave.Floor)})
		}
		st.TunnelCells = st.TunnelCells[:before]
	}

	regions := labelRegions(l)
	return len(regions) <= 1, nil
}

func regionRepresentative(region []cave.Point) cave.Point {
	return region[len(region)/2]
}

// labelRegions flood-fills every passable cell into 4-connected components.
func labelRegions(l *cave.Level) [][]cave.Point {
	seen := make([]bool, l.Width*l.Height)
	idx := func(x, y int) int { return y*l.Width + x }

	var regions [][]cave.Point
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if seen[idx(x, y)] || !l.At(x, y).IsPassable() {
				continue
			}
			region := floodFill(l, x, y, seen, idx)
			regions = append(regions, region)
		}
	}
	return regions
}

func floodFill(l *cave.Level, sx, sy int, seen []bool, idx func(x, y int) int) []cave.Point {
	stack := []cave.Point{{X: sx, Y: sy}}
	seen[idx(sx, sy)] = true
	var region []cave.Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, d := range cardinals {
			nx, ny := p.X+d.dx, p.Y+d.dy
			if !l.InBounds(nx, ny) || seen[idx(nx, ny)] {
				continue
			}
			if !l.At(nx, ny).IsPassable() {
				continue
			}
			seen[idx(nx, ny)] = true
			stack = append(stack, cave.Point{X: nx, Y: ny})
		}
	}
	return region
}

func solidifySmallRegions(l *cave.Level, regions [][]cave.Point) {
	for _, region := range regions {
		if len(region) >= minRegionSize {
			continue
		}
		for _, p := range region {
			l.Set(p.X, p.Y, cave.Cell{Feature: cave.F(cave.WallSolid)})
		}
	}
}
