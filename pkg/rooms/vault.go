package rooms

import (
	"fmt"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// buildVault stamps a hand-designed vault template into the level. A
// greater vault may only appear as a level's first room; a greater request
// for any other room is quietly downgraded to a lesser vault. The
// depth-scaled Bernoulli roll (profiles.TryGreaterVault) is made once, by
// the caller, before it asks for a greater vault.
func buildVault(l *cave.Level, r *rng.RNG, req Request, a blockArea, kind profiles.VaultKind) (Result, error) {
	if kind == profiles.VaultGreater && !req.FirstRoom {
		kind = profiles.VaultLesser
	}

	v, ok := profiles.SelectVault(r, req.Tables.Vaults, kind, a.w-2, a.h-2)
	if !ok {
		// Nothing in the table fits this footprint; fall back to an
		// ordinary room rather than failing the whole attempt.
		return buildSimple(l, r, a)
	}

	x0 := a.x0 + (a.w-v.Width)/2
	y0 := a.y0 + (a.h-v.Height)/2
	if x0 < 1 || y0 < 1 {
		return Result{}, fmt.Errorf("vault %q does not fit within its reserved block area", v.Name)
	}

	res := Result{
		Center:    cave.Point{X: x0 + v.Width/2, Y: y0 + v.Height/2},
		Width:     v.Width,
		Height:    v.Height,
		Vault:     true,
		VaultName: v.Name,
	}

	for dy, row := range v.Map {
		for dx, ch := range row {
			x, y := x0+dx, y0+dy
			if !l.InBounds(x, y) {
				continue
			}
			p := cave.Point{X: x, Y: y}
			switch ch {
			case '#':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.WallInner), Info: cave.Icky})
			case 'X':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.PermanentInner), Info: cave.Icky})
			case '%':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.WallOuter)})
			case ' ':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom | cave.Icky})
			case '+':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.SecretDoor), Info: cave.Icky})
			case '^':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom | cave.Icky})
				res.TrapSpots = append(res.TrapSpots, p)
			case '*':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom | cave.Icky})
				res.TreasureSpots = append(res.TreasureSpots, p)
			case '&', '@', '8', '9', ',':
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom | cave.Icky})
				res.MonsterSpots = append(res.MonsterSpots, p)
			default:
				l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom | cave.Icky})
			}
		}
	}

	return res, nil
}
