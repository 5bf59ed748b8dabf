package main

import (
	"strings"

	"github.com/dshills/cavegen/pkg/cave"
)

// RenderASCII dumps l as a plain-text grid, one rune per cell, for terminal
// inspection. It is not a player-facing renderer — no symbol legend is
// attempted beyond what a developer debugging generation output needs.
func RenderASCII(l *cave.Level) string {
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			b.WriteRune(glyph(l.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c *cave.Cell) rune {
	switch {
	case c.Info.Has(cave.IsStart):
		return '@'
	case c.HasMonster():
		return 'm'
	case c.HasObject():
		return '$'
	}

	switch c.Feature.Kind {
	case cave.PermanentSolid, cave.PermanentOuter, cave.PermanentInner, cave.PermanentExtra:
		return '#'
	case cave.WallSolid, cave.WallOuter, cave.WallInner, cave.WallExtra:
		return '%'
	case cave.Magma:
		return '*'
	case cave.Quartz:
		return '+'
	case cave.Rubble:
		return ':'
	case cave.Floor, cave.CaveFloor:
		return '.'
	case cave.SecretDoor:
		return '%'
	case cave.OpenDoor:
		return '\''
	case cave.BrokenDoor:
		return '\''
	case cave.ClosedDoor:
		return '+'
	case cave.LessStair:
		return '<'
	case cave.MoreStair:
		return '>'
	case cave.ShopEntrance:
		return '0' + rune(c.Feature.Shop)
	case cave.Trap:
		return '^'
	default:
		return '?'
	}
}
