package rooms

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/grid"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// buildSimple carves a single rectangular room of modest, varied size.
func buildSimple(l *cave.Level, r *rng.RNG, a blockArea) (Result, error) {
	h := oddBetween(r, 3, a.h-2)
	w := oddBetween(r, 3, a.w-2)
	y0 := a.y0 + (a.h-h)/2
	x0 := a.x0 + (a.w-w)/2

	grid.FillRect(l, x0+1, y0+1, x0+w-2, y0+h-2, cave.F(cave.Floor), cave.InRoom)
	grid.OutlineRect(l, x0, y0, x0+w-1, y0+h-1, cave.F(cave.WallOuter), 0)

	return Result{Center: cave.Point{X: x0 + w/2, Y: y0 + h/2}, Width: w, Height: h}, nil
}

// buildOverlap carves two overlapping rectangles, an Angband staple that
// produces an L- or plus-shaped room without any special-case geometry: the
// union of two rects is already whatever shape their overlap implies.
func buildOverlap(l *cave.Level, r *rng.RNG, a blockArea) (Result, error) {
	h1 := oddBetween(r, 3, a.h-2)
	w1 := oddBetween(r, 3, a.w-2)
	h2 := oddBetween(r, 3, a.h-2)
	w2 := oddBetween(r, 3, a.w-2)

	cx, cy := a.x0+a.w/2, a.y0+a.h/2
	x1, y1 := cx-w1/2, cy-h1/2
	x2, y2 := cx-w2/2, cy-h2/2

	grid.FillRect(l, x1+1, y1+1, x1+w1-2, y1+h1-2, cave.F(cave.Floor), cave.InRoom)
	grid.FillRect(l, x2+1, y2+1, x2+w2-2, y2+h2-2, cave.F(cave.Floor), cave.InRoom)
	grid.OutlineRect(l, x1, y1, x1+w1-1, y1+h1-1, cave.F(cave.WallOuter), 0)
	grid.OutlineRect(l, x2, y2, x2+w2-1, y2+h2-1, cave.F(cave.WallOuter), 0)

	w, h := w1, h1
	if w2 > w {
		w = w2
	}
	if h2 > h {
		h = h2
	}
	return Result{Center: cave.Point{X: cx, Y: cy}, Width: w, Height: h}, nil
}

// buildCrossed is an overlap room of two rectangles sharing one center: a
// tall one three cells wide and a wide one three cells tall, giving the
// classic cross/plus silhouette.
func buildCrossed(l *cave.Level, r *rng.RNG, a blockArea) (Result, error) {
	h1 := oddBetween(r, 3, a.h-2)
	w1 := 3
	h2 := 3
	w2 := oddBetween(r, 3, a.w-2)

	cx, cy := a.x0+a.w/2, a.y0+a.h/2
	x1, y1 := cx-w1/2, cy-h1/2
	x2, y2 := cx-w2/2, cy-h2/2

	grid.FillRect(l, x1+1, y1+1, x1+w1-2, y1+h1-2, cave.F(cave.Floor), cave.InRoom)
	grid.FillRect(l, x2+1, y2+1, x2+w2-2, y2+h2-2, cave.F(cave.Floor), cave.InRoom)
	grid.OutlineRect(l, x1, y1, x1+w1-1, y1+h1-1, cave.F(cave.WallOuter), 0)
	grid.OutlineRect(l, x2, y2, x2+w2-1, y2+h2-1, cave.F(cave.WallOuter), 0)

	return Result{Center: cave.Point{X: cx, Y: cy}, Width: w2, Height: h1}, nil
}

// buildCircular carves a true disk, bounded by the block footprint.
func buildCircular(l *cave.Level, r *rng.RNG, a blockArea) (Result, error) {
	maxRadius := (min(a.h, a.w) - 2) / 2
	if maxRadius < 2 {
		maxRadius = 2
	}
	radius := 2 + r.RandInt0(maxRadius-1)
	c := a.center()

	grid.FillCircle(l, c.X, c.Y, radius, cave.F(cave.Floor), cave.InRoom|cave.Glow)
	grid.FillCircle(l, c.X, c.Y, radius+1, cave.F(cave.WallOuter), 0)
	grid.FillCircle(l, c.X, c.Y, radius, cave.F(cave.Floor), cave.InRoom|cave.Glow)

	return Result{Center: c, Width: radius*2 + 1, Height: radius*2 + 1}, nil
}

// buildLarge carves a big room with a walled inner room centered in it,
// the shape Angband calls an "inner room".
func buildLarge(l *cave.Level, r *rng.RNG, a blockArea) (Result, error) {
	h := a.h - 2
	w := a.w - 2
	x0, y0 := a.x0+1, a.y0+1

	grid.FillRect(l, x0, y0, x0+w-1, y0+h-1, cave.F(cave.Floor), cave.InRoom)
	grid.OutlineRect(l, x0-1, y0-1, x0+w, y0+h, cave.F(cave.WallOuter), 0)

	ih, iw := h/2, w/2
	if ih < 3 {
		ih = 3
	}
	if iw < 3 {
		iw = 3
	}
	ix := x0 + (w-iw)/2
	iy := y0 + (h-ih)/2
	grid.OutlineRect(l, ix, iy, ix+iw-1, iy+ih-1, cave.F(cave.WallInner), 0)

	// Pierce one doorway into the inner room so it isn't sealed off.
	doorY := iy + ih/2
	l.Set(ix, doorY, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom})

	_ = r
	return Result{Center: cave.Point{X: x0 + w/2, Y: y0 + h/2}, Width: w, Height: h}, nil
}

// buildPitOrNest carves a single rectangular chamber like buildSimple, then
// selects a monster template and records its index and kind on the Result.
// It does not place monster instances itself (that is pkg/populate's job
// against an ECS registry) — it only records where a populate pass should
// scatter them. The populate stage fills those spots with depth-eligible
// races; it does not consult the selected template.
func buildPitOrNest(l *cave.Level, r *rng.RNG, req Request, a blockArea, kind profiles.PitKind) (Result, error) {
	res, err := buildSimple(l, r, a)
	if err != nil {
		return Result{}, err
	}

	candidates := profiles.FilterPitsByKind(req.Tables.Pits, kind)
	if len(candidates) == 0 {
		candidates = req.Tables.Pits
	}
	pit, idx := profiles.SelectPit(r, candidates, req.Depth)
	res.PitIndex = idx
	res.PitKind = pit.Kind

	spotCount := 8
	if kind == profiles.PitKindNest {
		spotCount = 16
	}
	res.MonsterSpots = scatterSpots(l, r, res.Center, res.Width, res.Height, spotCount)
	return res, nil
}

// scatterSpots samples up to n distinct in-room floor cells around center,
// for the populate stage to assign monsters or treasure to later.
func scatterSpots(l *cave.Level, r *rng.RNG, center cave.Point, w, h, n int) []cave.Point {
	seen := make(map[cave.Point]bool, n)
	var out []cave.Point
	for attempts := 0; attempts < n*6 && len(out) < n; attempts++ {
		dx := r.RandInt0(w) - w/2
		dy := r.RandInt0(h) - h/2
		p := cave.Point{X: center.X + dx, Y: center.Y + dy}
		if seen[p] || !l.InBounds(p.X, p.Y) {
			continue
		}
		if !l.At(p.X, p.Y).IsFloor() {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// oddBetween returns a random odd value in [lo, hi], clamping hi up to lo if
// the footprint is too tight.
func oddBetween(r *rng.RNG, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	span := (hi - lo) / 2
	if span < 0 {
		span = 0
	}
	return lo + 2*r.RandInt0(span+1)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
