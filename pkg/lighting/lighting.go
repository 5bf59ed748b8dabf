package lighting

import (
	"github.com/norendren/go-fov/fov"

	"github.com/dshills/cavegen/pkg/cave"
)

// LightRoom marks every cell visible from center out to radius as Glow,
// using a field-of-view sweep so light doesn't leak through walls into an
// adjacent, unlit room. cave.Level already satisfies fov.Grid via its
// InBounds/IsOpaque methods.
func LightRoom(l *cave.Level, center cave.Point, radius int) {
	view := fov.New()
	view.Compute(l, center.X, center.Y, radius)

	minX, maxX := center.X-radius, center.X+radius
	minY, maxY := center.Y-radius, center.Y+radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !l.InBounds(x, y) {
				continue
			}
			if !view.IsVisible(x, y) {
				continue
			}
			c := l.At(x, y)
			c.Info |= cave.Glow
			l.Set(x, y, *c)
		}
	}
}

// LightArea marks every passable cell in [x0,y0]-[x1,y1] as Glow, for
// rectangular spaces (the director uses it on each placed room's
// footprint) where a single point-source sweep would leave corners dark.
func LightArea(l *cave.Level, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !l.InBounds(x, y) {
				continue
			}
			c := l.At(x, y)
			if !c.IsPassable() {
				continue
			}
			c.Info |= cave.Glow
			l.Set(x, y, *c)
		}
	}
}
