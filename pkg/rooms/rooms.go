package rooms

import (
	"fmt"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// Request describes one room the director wants placed.
type Request struct {
	Profile   profiles.RoomProfile
	Depth     int
	FirstRoom bool // only the first room of a level may become a greater vault
	Tables    *profiles.Tables
}

// Result reports what a builder actually placed, so later pipeline stages
// (connectivity repair, population, lighting) have enough to work with
// without re-deriving it from the raw grid.
type Result struct {
	Center        cave.Point
	Width, Height int
	Crowded       bool
	Vault         bool
	VaultName     string
	PitIndex      int
	PitKind       profiles.PitKind
	MonsterSpots  []cave.Point
	TrapSpots     []cave.Point
	TreasureSpots []cave.Point
}

// Build dispatches on req.Profile.Kind and carves the chosen shape into l,
// reserving its blocks in st. It returns ok=false (with a nil error) when no
// unused block region of the required footprint could be found — a normal,
// retryable condition, not a failure.
func Build(l *cave.Level, st *cave.State, r *rng.RNG, req Request) (Result, bool, error) {
	bh, bw := req.Profile.BlockHeight, req.Profile.BlockWidth
	if bh <= 0 || bw <= 0 {
		return Result{}, false, fmt.Errorf("room profile %q: block footprint must be positive, got %dx%d", req.Profile.Name, bh, bw)
	}

	by, bx, ok := findFreeBlock(st, r, bh, bw)
	if !ok {
		return Result{}, false, nil
	}
	st.MarkBlocks(bx*cave.BlockSize, by*cave.BlockSize, (bx+bw)*cave.BlockSize-1, (by+bh)*cave.BlockSize-1)

	area := blockArea{
		y0: by * cave.BlockSize,
		x0: bx * cave.BlockSize,
		h:  bh * cave.BlockSize,
		w:  bw * cave.BlockSize,
	}

	var (
		res Result
		err error
	)
	switch req.Profile.Kind {
	case profiles.RoomSimple:
		res, err = buildSimple(l, r, area)
	case profiles.RoomOverlap:
		res, err = buildOverlap(l, r, area)
	case profiles.RoomCrossed:
		res, err = buildCrossed(l, r, area)
	case profiles.RoomCircular:
		res, err = buildCircular(l, r, area)
	case profiles.RoomLarge:
		res, err = buildLarge(l, r, area)
	case profiles.RoomNest:
		res, err = buildPitOrNest(l, r, req, area, profiles.PitKindNest)
	case profiles.RoomPit:
		res, err = buildPitOrNest(l, r, req, area, profiles.PitKindPit)
	case profiles.RoomVaultLesser:
		res, err = buildVault(l, r, req, area, profiles.VaultLesser)
	case profiles.RoomVaultGreater:
		res, err = buildVault(l, r, req, area, profiles.VaultGreater)
	default:
		return Result{}, false, fmt.Errorf("room profile %q: unknown room kind %q", req.Profile.Name, req.Profile.Kind)
	}
	if err != nil {
		return Result{}, false, err
	}

	res.Crowded = req.Profile.Crowded
	if !st.AddCenter(res.Center) {
		// Centers table is full; the room is still carved and connectable,
		// just not a tunnel target. Not an error.
		return res, true, nil
	}
	return res, true, nil
}

type blockArea struct {
	y0, x0, h, w int
}

func (a blockArea) center() cave.Point {
	return cave.Point{X: a.x0 + a.w/2, Y: a.y0 + a.h/2}
}

// findFreeBlock scans the block grid at a random starting offset for a
// bh x bw region with every block unused, wrapping around once. Returns
// ok=false if nothing qualifies.
func findFreeBlock(st *cave.State, r *rng.RNG, bh, bw int) (by, bx int, ok bool) {
	if st.RowBlocks < bh || st.ColBlocks < bw {
		return 0, 0, false
	}
	rowSpan := st.RowBlocks - bh + 1
	colSpan := st.ColBlocks - bw + 1
	startRow := r.RandInt0(rowSpan)
	startCol := r.RandInt0(colSpan)

	for dr := 0; dr < rowSpan; dr++ {
		row := (startRow + dr) % rowSpan
		for dc := 0; dc < colSpan; dc++ {
			col := (startCol + dc) % colSpan
			if regionFree(st, row, col, bh, bw) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

func regionFree(st *cave.State, by, bx, bh, bw int) bool {
	for r := by; r < by+bh; r++ {
		for c := bx; c < bx+bw; c++ {
			if st.BlockUsed[r][c] {
				return false
			}
		}
	}
	return true
}
