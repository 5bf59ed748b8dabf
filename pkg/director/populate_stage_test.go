package director

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/populate"
	"github.com/dshills/cavegen/pkg/rng"
)

func populateTestRNG(t *testing.T, label string) *rng.RNG {
	t.Helper()
	h := sha256.Sum256([]byte("populate_stage_test"))
	return rng.NewRNG(3, label, h[:])
}

func openLevelForPopulate(t *testing.T) *cave.Level {
	t.Helper()
	l, err := cave.NewLevel(5, 40, 20)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	for y := 1; y < l.Height-1; y++ {
		for x := 1; x < l.Width-1; x++ {
			l.Set(x, y, cave.Cell{Feature: cave.F(cave.Floor)})
		}
	}
	return l
}

func TestPopulateLevel_SetsStartAndReturnsFeeling(t *testing.T) {
	l := openLevelForPopulate(t)
	tables := loadTables(t)
	reg := populate.NewRegistry()

	start := cave.Point{X: 5, Y: 5}
	feeling := populateLevel(l, reg, populateTestRNG(t, "base"), tables, 5, populateInput{Start: start})

	if !l.At(start.X, start.Y).Info.Has(cave.IsStart) {
		t.Fatalf("expected the start cell to carry IsStart")
	}
	if feeling.Object == 0 {
		t.Fatalf("expected a non-zero object feeling at depth 5 with objects placed")
	}
}

func TestPopulateLevel_QuestRaceIsForcedOntoTheLevel(t *testing.T) {
	l := openLevelForPopulate(t)
	tables := loadTables(t)
	if len(tables.Races) == 0 {
		t.Fatal("expected at least one race in the default table")
	}
	questRace := tables.Races[0].Name

	reg := populate.NewRegistry()
	populateLevel(l, reg, populateTestRNG(t, "quest"), tables, 5, populateInput{
		Start:      cave.Point{X: 2, Y: 2},
		QuestRaces: []string{questRace},
	})

	found := false
	for _, e := range reg.Monsters() {
		raw, ok := e.GetComponentData(reg.Monster)
		if !ok {
			continue
		}
		data, ok := raw.(*populate.MonsterData)
		if ok && data.Race.Name == questRace {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected quest race %q to be placed on the level", questRace)
	}
}

func TestComputeFeeling_TownDepthIsAlwaysZero(t *testing.T) {
	tables := loadTables(t)
	reg := populate.NewRegistry()
	feeling := computeFeeling(reg, tables, 0)
	if feeling != (Feeling{}) {
		t.Fatalf("expected a zero-value feeling at depth 0, got %+v", feeling)
	}
}
