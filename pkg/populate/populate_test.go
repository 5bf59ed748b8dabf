package populate

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

func testRNG(t *testing.T, label string) *rng.RNG {
	t.Helper()
	h := sha256.Sum256([]byte("populate_test"))
	return rng.NewRNG(5, label, h[:])
}

func openLevel(t *testing.T) *cave.Level {
	t.Helper()
	l, err := cave.NewLevel(5, 40, 40)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	for y := 1; y < l.Height-1; y++ {
		for x := 1; x < l.Width-1; x++ {
			l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor), Info: cave.InRoom})
		}
	}
	return l
}

func TestSpawnMonster_LinksCellIndex(t *testing.T) {
	reg := NewRegistry()
	l := openLevel(t)
	p := cave.Point{X: 5, Y: 5}
	race := profiles.RaceProfile{Name: "giant rat", Level: 1}

	reg.SpawnMonster(l, p, race, false)

	if !l.At(p.X, p.Y).HasMonster() {
		t.Fatalf("expected the cell to report a monster after SpawnMonster")
	}
	if len(reg.Monsters()) != 1 {
		t.Fatalf("expected exactly one monster entity, got %d", len(reg.Monsters()))
	}
}

func TestPlaceNewMonster_FallsBackToFullRosterWhenNoneQualify(t *testing.T) {
	reg := NewRegistry()
	l := openLevel(t)
	tables := &profiles.Tables{Races: []profiles.RaceProfile{{Name: "ancient wyrm", Level: 500}}}

	_, ok, err := PlaceNewMonster(reg, l, testRNG(t, "place"), tables, cave.Point{X: 3, Y: 3}, 1, false)
	if err != nil {
		t.Fatalf("PlaceNewMonster: %v", err)
	}
	if !ok {
		t.Fatalf("expected a fallback placement even when no race is in-depth")
	}
}

func TestPickAndPlaceDistantMonster_RespectsMinDistance(t *testing.T) {
	reg := NewRegistry()
	l := openLevel(t)
	tables := &profiles.Tables{Races: []profiles.RaceProfile{{Name: "kobold", Level: 3}}}
	from := cave.Point{X: 20, Y: 20}

	ok, err := PickAndPlaceDistantMonster(reg, l, testRNG(t, "distant"), tables, from, 10, 5)
	if err != nil {
		t.Fatalf("PickAndPlaceDistantMonster: %v", err)
	}
	if !ok {
		t.Fatalf("expected a distant placement to succeed on an open level")
	}
	for _, e := range reg.Monsters() {
		posIface, _ := e.GetComponentData(reg.Position)
		pos := posIface.(*PositionData)
		if chebyshev(from, cave.Point{X: pos.X, Y: pos.Y}) < 10 {
			t.Fatalf("monster placed closer than the requested minimum distance")
		}
	}
}

func TestPlaceTrap_RefusesNonFloor(t *testing.T) {
	l := openLevel(t)
	l.Set(1, 0, cave.Cell{Feature: cave.F(cave.PermanentSolid)})
	if PlaceTrap(l, cave.Point{X: 1, Y: 0}, 3) {
		t.Fatalf("expected PlaceTrap to refuse a non-floor cell")
	}
	if !PlaceTrap(l, cave.Point{X: 5, Y: 5}, 3) {
		t.Fatalf("expected PlaceTrap to succeed on a floor cell")
	}
	if !l.At(5, 5).Feature.IsTrap() {
		t.Fatalf("expected the cell's feature to report as a trap")
	}
}

func TestPlayerPlace_SetsStartFlag(t *testing.T) {
	l := openLevel(t)
	PlayerPlace(l, cave.Point{X: 2, Y: 2})
	if !l.At(2, 2).Info.Has(cave.IsStart) {
		t.Fatalf("expected IsStart flag to be set")
	}
}
