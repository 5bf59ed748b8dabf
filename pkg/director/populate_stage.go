package director

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/populate"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

// feelingThreshold maps a rating ratio to the level-feeling integer
// players see; the tables below list them highest ratio first.
type feelingThreshold struct {
	minRatio float64
	feeling  int
}

var objectFeelingTable = []feelingThreshold{
	{6000, 20}, {3500, 30}, {2000, 40}, {1000, 50},
	{500, 60}, {300, 70}, {200, 80}, {100, 90},
}

var monsterFeelingTable = []feelingThreshold{
	{7000, 1}, {4500, 2}, {2500, 3}, {1500, 4},
	{800, 5}, {400, 6}, {150, 7}, {50, 8},
}

func lookupFeeling(table []feelingThreshold, ratio float64, floor int) int {
	for _, t := range table {
		if ratio >= t.minRatio {
			return t.feeling
		}
	}
	return floor
}

// Feeling is the pair of level-feeling integers reported back to the
// caller: how good the loot is and how dangerous the monsters are, plus
// the raw ratings they were derived from.
type Feeling struct {
	Object        int
	Monster       int
	ObjectRating  int
	MonsterRating int
}

// populateInput bundles everything the populate stage needs out of a
// finished build, independent of which builder produced it.
type populateInput struct {
	Start         cave.Point
	MonsterSpots  []cave.Point
	TrapSpots     []cave.Point
	TreasureSpots []cave.Point
	QuestRaces    []string

	// RoomCount reports how many rooms the rooms-and-corridors builder
	// placed; zero for every other builder kind.
	RoomCount int
}

// populateLevel scatters monsters, objects, gold and traps over a finished
// level, forces in any quest monsters, and computes the resulting level
// feeling. It never fails outright: every placement it can't make (no
// empty floor left, an empty race table) is simply skipped, since none of
// them are required for a level to be playable.
func populateLevel(l *cave.Level, reg *populate.Registry, r *rng.RNG, tables *profiles.Tables, depth int, in populateInput) Feeling {
	populate.PlayerPlace(l, in.Start)

	monsterCount := 3 + r.RandInt0(depth/2+1)
	for i := 0; i < monsterCount; i++ {
		_, _ = populate.PickAndPlaceDistantMonster(reg, l, r, tables, in.Start, 3, depth)
	}

	for _, p := range in.MonsterSpots {
		_, _, _ = populate.PlaceNewMonster(reg, l, r, tables, p, depth, true)
	}

	for _, name := range in.QuestRaces {
		spawnQuestRace(reg, l, r, tables, in.Start, depth, name)
	}

	for _, p := range in.TrapSpots {
		populate.PlaceTrap(l, p, depth)
	}

	for _, p := range in.TreasureSpots {
		if r.OneIn(3) {
			populate.MakeGold(reg, l, p, 10*(depth+1)+r.RandInt0(20*(depth+1)))
		} else {
			populate.MakeObject(reg, l, p)
		}
	}

	goldCount := 2 + r.RandInt0(depth/3+1)
	for i := 0; i < goldCount; i++ {
		p, found := findOpenFloor(l, r, in.Start)
		if !found {
			break
		}
		populate.MakeGold(reg, l, p, 10*(depth+1)+r.RandInt0(20*(depth+1)))
	}

	objectCount := 1 + r.RandInt0(depth/4+1)
	for i := 0; i < objectCount; i++ {
		p, found := findOpenFloor(l, r, in.Start)
		if !found {
			break
		}
		populate.MakeObject(reg, l, p)
	}

	return computeFeeling(reg, tables, depth)
}

// spawnQuestRace forces exactly one monster of the named race onto the
// level even if the race's normal depth-based eligibility would exclude
// it, since a quest requires that specific race to be present.
func spawnQuestRace(reg *populate.Registry, l *cave.Level, r *rng.RNG, tables *profiles.Tables, from cave.Point, depth int, name string) {
	var race profiles.RaceProfile
	found := false
	for _, rc := range tables.Races {
		if rc.Name == name {
			race, found = rc, true
			break
		}
	}
	if !found {
		return
	}
	p, ok := findOpenFloor(l, r, from)
	if !ok {
		return
	}
	reg.SpawnMonster(l, p, race, true)
}

func findOpenFloor(l *cave.Level, r *rng.RNG, avoid cave.Point) (cave.Point, bool) {
	for attempts := 0; attempts < 200; attempts++ {
		x := r.RandInt0(l.Width)
		y := r.RandInt0(l.Height)
		c := l.At(x, y)
		if !c.IsFloor() || c.HasMonster() || c.HasObject() {
			continue
		}
		if x == avoid.X && y == avoid.Y {
			continue
		}
		return cave.Point{X: x, Y: y}, true
	}
	return cave.Point{}, false
}

// computeFeeling sums a depth-derived rating over every monster and object
// actually placed on the level and converts it to the two feeling
// integers a player sees, via a ratio lookup (object rating / depth,
// monster rating / depth²).
func computeFeeling(reg *populate.Registry, tables *profiles.Tables, depth int) Feeling {
	if depth == 0 {
		return Feeling{}
	}

	monsterRating := 0
	for range reg.Monsters() {
		monsterRating++
	}
	// Approximate the aggregate monster rating with the placed count
	// weighted by depth, since this generator doesn't model individual
	// monster danger scores.
	monsterRating *= depth

	objectRating := 0
	for _, e := range reg.Objects() {
		raw, ok := e.GetComponentData(reg.Object)
		if !ok {
			continue
		}
		data, ok := raw.(*populate.ObjectData)
		if !ok {
			continue
		}
		if data.Kind == populate.ObjectGold {
			objectRating += data.GoldValue
		} else {
			objectRating += 10 * (depth + 1)
		}
	}

	objRatio := float64(objectRating) / float64(depth)
	monRatio := float64(monsterRating) / float64(depth*depth)

	return Feeling{
		Object:        lookupFeeling(objectFeelingTable, objRatio, 100),
		Monster:       lookupFeeling(monsterFeelingTable, monRatio, 9),
		ObjectRating:  objectRating,
		MonsterRating: monsterRating,
	}
}
