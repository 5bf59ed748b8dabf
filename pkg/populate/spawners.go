package populate

import (
	"github.com/bytearena/ecs"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// findEmptyFloor samples up to 200 random floor cells at least minDist
// (Chebyshev) from avoid that carry no monster or object yet.
func findEmptyFloor(l *cave.Level, r *rng.RNG, avoid cave.Point, minDist int) (cave.Point, bool) {
	for attempts := 0; attempts < 200; attempts++ {
		x := r.RandInt0(l.Width)
		y := r.RandInt0(l.Height)
		c := l.At(x, y)
		if !c.IsFloor() || c.HasMonster() || c.HasObject() {
			continue
		}
		if chebyshev(avoid, cave.Point{X: x, Y: y}) < minDist {
			continue
		}
		return cave.Point{X: x, Y: y}, true
	}
	return cave.Point{}, false
}

func chebyshev(a, b cave.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// PlaceNewMonster spawns one race-appropriate monster at p. Candidate races
// are filtered to Level <= depth+5 (out-of-depth monsters are the rest of
// the game's problem, not this generator's); if none qualify the full
// roster is used so a shallow level never fails purely for want of a weak
// enough monster.
func PlaceNewMonster(reg *Registry, l *cave.Level, r *rng.RNG, tables *profiles.Tables, p cave.Point, depth int, asleep bool) (ecs.EntityID, bool, error) {
	candidates := make([]profiles.RaceProfile, 0, len(tables.Races))
	for _, race := range tables.Races {
		if race.Level <= depth+5 {
			candidates = append(candidates, race)
		}
	}
	if len(candidates) == 0 {
		candidates = tables.Races
	}
	if len(candidates) == 0 {
		return 0, false, nil
	}
	race := candidates[r.RandInt0(len(candidates))]
	return reg.SpawnMonster(l, p, race, asleep), true, nil
}

// PickAndPlaceMonster finds any empty floor cell on the level and places a
// depth-appropriate monster there. Returns ok=false (nil error) if no empty
// floor could be found — a normal, retryable condition.
func PickAndPlaceMonster(reg *Registry, l *cave.Level, r *rng.RNG, tables *profiles.Tables, depth int, asleep bool) (bool, error) {
	p, found := findEmptyFloor(l, r, cave.Point{X: -1, Y: -1}, 0)
	if !found {
		return false, nil
	}
	_, ok, err := PlaceNewMonster(reg, l, r, tables, p, depth, asleep)
	return ok, err
}

// PickAndPlaceDistantMonster places a monster at least minDist away from
// from (typically the player's start), for monsters that shouldn't wake up
// standing next to the player.
func PickAndPlaceDistantMonster(reg *Registry, l *cave.Level, r *rng.RNG, tables *profiles.Tables, from cave.Point, minDist, depth int) (bool, error) {
	p, found := findEmptyFloor(l, r, from, minDist)
	if !found {
		return false, nil
	}
	_, ok, err := PlaceNewMonster(reg, l, r, tables, p, depth, true)
	return ok, err
}

// PlaceTrap stamps a trap of the given severity onto an existing floor
// cell. The caller is responsible for choosing a sensible cell (a vault's
// '^' spot, a labyrinth dead end); PlaceTrap itself only refuses to
// overwrite a non-floor cell.
func PlaceTrap(l *cave.Level, p cave.Point, level int) bool {
	c := l.At(p.X, p.Y)
	if !c.IsFloor() {
		return false
	}
	l.Set(p.X, p.Y, cave.Cell{Feature: cave.TrapAt(level), Info: c.Info})
	return true
}

// MakeGold spawns a gold pile worth value at p.
func MakeGold(reg *Registry, l *cave.Level, p cave.Point, value int) ecs.EntityID {
	return reg.SpawnObject(l, p, ObjectGold, value)
}

// MakeObject spawns a generic object placeholder at p. Full item
// generation (affixes, enchantments) belongs to the rest of the game; this
// generator only decides that *something* goes here.
func MakeObject(reg *Registry, l *cave.Level, p cave.Point) ecs.EntityID {
	return reg.SpawnObject(l, p, ObjectGeneric, 0)
}

// FloorCarry places an already-constructed object entity directly on the
// floor at p, for callers (like the vault stamper) that pre-selected an
// exact position rather than asking findEmptyFloor to pick one.
func FloorCarry(reg *Registry, l *cave.Level, p cave.Point, kind ObjectKind, goldValue int) (ecs.EntityID, bool) {
	c := l.At(p.X, p.Y)
	if !c.IsFloor() || c.HasObject() {
		return 0, false
	}
	return reg.SpawnObject(l, p, kind, goldValue), true
}

// PlayerPlace marks the level's single start cell. Exactly one cell per
// level should ever carry cave.IsStart.
func PlayerPlace(l *cave.Level, p cave.Point) {
	c := l.At(p.X, p.Y)
	c.Info |= cave.IsStart
	l.Set(p.X, p.Y, *c)
}
