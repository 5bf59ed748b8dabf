package labyrinth

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/rng"
)

// bumpMultiples lists depths-of-N at which the maze grows by one cell in
// each axis, so deeper labyrinths are reliably bigger without a continuous
// size curve.
var bumpMultiples = []int{3, 5, 7, 11, 13}

const (
	baseRows = 5
	baseCols = 11

	// permanentWallChance is the percent chance an unconnected wall between
	// two maze cells is left as permanent rock instead of diggable rock.
	permanentWallChance = 20

	knownRevealChance = 5 // percent chance the whole maze starts revealed
)

// Result reports the shape and bonuses a labyrinth build produced.
type Result struct {
	Rows, Cols int // maze-cell resolution, not grid cells
	Start, End cave.Point
	GoodItem   bool
	GreatItem  bool
	Known      bool

	TrapSpots    []cave.Point
	RubbleSpots  []cave.Point
	MonsterSpots []cave.Point
}

// Build carves a maze into the interior of l, offset so it's centered
// inside the level, and reports the entrance/exit cells for stair
// placement.
func Build(l *cave.Level, r *rng.RNG, depth int) (Result, bool, error) {
	rows, cols := dimensions(depth)
	h, w := 2*rows+1, 2*cols+1
	if h > l.Height-2 || w > l.Width-2 {
		return Result{}, false, nil
	}
	y0 := 1 + (l.Height-2-h)/2
	x0 := 1 + (l.Width-2-w)/2

	// Start from solid rock everywhere in the maze footprint.
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			kind := cave.WallSolid
			if r.RandInt0(100) < permanentWallChance {
				kind = cave.PermanentSolid
			}
			l.Set(x, y, cave.Cell{Feature: cave.F(kind)})
		}
	}

	cellAt := func(i, j int) cave.Point {
		return cave.Point{X: x0 + 2*j + 1, Y: y0 + 2*i + 1}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := cellAt(i, j)
			l.Set(p.X, p.Y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom})
		}
	}

	type edge struct{ a, b, wallX, wallY int }
	var edges []edge
	cellID := func(i, j int) int { return i*cols + j }
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j+1 < cols {
				p := cellAt(i, j)
				edges = append(edges, edge{cellID(i, j), cellID(i, j+1), p.X + 1, p.Y})
			}
			if i+1 < rows {
				p := cellAt(i, j)
				edges = append(edges, edge{cellID(i, j), cellID(i+1, j), p.X, p.Y + 1})
			}
		}
	}
	r.Shuffle(len(edges), func(a, b int) { edges[a], edges[b] = edges[b], edges[a] })

	uf := newUnionFind(rows * cols)
	for _, e := range edges {
		if uf.union(e.a, e.b) {
			l.Set(e.wallX, e.wallY, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom})
		}
	}

	start := cellAt(0, 0)
	end := cellAt(rows-1, cols-1)

	// Exactly one up stair (where the player lands) and one down stair,
	// per maze — a labyrinth never scales stair counts with its area the
	// way the cavern and room builders do.
	l.Set(start.X, start.Y, cave.Cell{Feature: cave.F(cave.LessStair), Info: l.At(start.X, start.Y).Info})
	l.Set(end.X, end.Y, cave.Cell{Feature: cave.F(cave.MoreStair), Info: l.At(end.X, end.Y).Info})

	res := Result{
		Rows:      rows,
		Cols:      cols,
		Start:     start,
		End:       end,
		GoodItem:  r.OneIn(goodItemOdds(depth)),
		GreatItem: depth >= 20 && r.OneIn(greatItemOdds(depth)),
		Known:     r.RandInt0(100) < knownRevealChance,
	}
	if res.Known {
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				c := l.At(x, y)
				c.Info |= cave.Known
				l.Set(x, y, *c)
			}
		}
	}

	scatterContent(l, r, &res, x0, y0, h, w)
	return res, true, nil
}

// scatterContent walks every dead end in the finished maze (a passable
// cell with exactly three solid neighbors): one with a hidden diagonal
// corner always becomes a trap spot, the others roll for a rubble pile or
// a monster spot, favoring dead ends since they're the
// spots a maze naturally funnels a wandering player into.
func scatterContent(l *cave.Level, r *rng.RNG, res *Result, x0, y0, h, w int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			cell := l.At(x, y)
			if !cell.IsPassable() {
				continue
			}
			if cell.Feature.Kind == cave.LessStair || cell.Feature.Kind == cave.MoreStair {
				continue
			}
			if !isDeadEnd(l, x, y) {
				continue
			}
			p := cave.Point{X: x, Y: y}
			switch {
			case deadEndHasHiddenCorner(l, x, y, 1, 1) || deadEndHasHiddenCorner(l, x, y, -1, -1) ||
				deadEndHasHiddenCorner(l, x, y, 1, -1) || deadEndHasHiddenCorner(l, x, y, -1, 1):
				res.TrapSpots = append(res.TrapSpots, p)
			case r.OneIn(4):
				res.RubbleSpots = append(res.RubbleSpots, p)
			case r.OneIn(3):
				res.MonsterSpots = append(res.MonsterSpots, p)
			}
		}
	}
}

func isDeadEnd(l *cave.Level, x, y int) bool {
	open := 0
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d[0], y+d[1]
		if l.InBounds(nx, ny) && l.At(nx, ny).IsPassable() {
			open++
		}
	}
	return open == 1
}

func dimensions(depth int) (rows, cols int) {
	rows, cols = baseRows, baseCols
	for _, m := range bumpMultiples {
		if m > 0 && depth%m == 0 {
			rows++
			cols++
		}
	}
	return rows, cols
}

func goodItemOdds(depth int) int {
	if depth < 10 {
		return 20
	}
	return 10
}

func greatItemOdds(depth int) int {
	if depth < 50 {
		return 40
	}
	return 15
}

// deadEndHasHiddenCorner reports whether a maze dead-end at (x,y) has a
// diagonal neighbor reachable through either of its two flanking
// orthogonal cells. Both candidate corners are checked with a logical OR:
// a single open flank is enough to call the corner "reachable", since a
// player standing in the dead end can slip past through whichever flank is
// clear (requiring both flanks open, via a logical AND, would under-count
// reachable corners and leave traps stacked on geometry players can avoid
// just by approaching from the other side).
func deadEndHasHiddenCorner(l *cave.Level, x, y, dx, dy int) bool {
	flankA := l.InBounds(x+dx, y) && l.At(x+dx, y).IsPassable()
	flankB := l.InBounds(x, y+dy) && l.At(x, y+dy).IsPassable()
	corner := l.InBounds(x+dx, y+dy) && l.At(x+dx, y+dy).IsPassable()
	return corner && (flankA || flankB)
}
