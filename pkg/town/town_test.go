package town

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/rng"
)

func testRNG(t *testing.T, label string) *rng.RNG {
	t.Helper()
	h := sha256.Sum256([]byte("town_test"))
	return rng.NewRNG(1, label, h[:])
}

func TestBuild_PlacesEightDistinctShops(t *testing.T) {
	l, err := cave.NewLevel(0, cave.DungeonWid, cave.DungeonHgt)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	res, ok, err := Build(l, testRNG(t, "town"), true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ok {
		t.Fatalf("expected the town layout to fit in a full-size level")
	}

	seen := map[int]bool{}
	for _, idx := range res.ShopOrder {
		if seen[idx] {
			t.Fatalf("shop index %d placed more than once: %v", idx, res.ShopOrder)
		}
		seen[idx] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct shop indices, got %d", len(seen))
	}
	if !l.At(res.StairDown.X, res.StairDown.Y).Feature.IsStair() {
		t.Fatalf("expected a stair feature at the reported stair location")
	}
}

func TestBuild_DayHasMoreResidentsThanNight(t *testing.T) {
	lDay, _ := cave.NewLevel(0, cave.DungeonWid, cave.DungeonHgt)
	lNight, _ := cave.NewLevel(0, cave.DungeonWid, cave.DungeonHgt)

	day, _, err := Build(lDay, testRNG(t, "day"), true)
	if err != nil {
		t.Fatalf("Build day: %v", err)
	}
	night, _, err := Build(lNight, testRNG(t, "night"), false)
	if err != nil {
		t.Fatalf("Build night: %v", err)
	}
	if len(day.ResidentSpots) <= len(night.ResidentSpots) {
		t.Fatalf("expected daytime to have more resident spots than night: day=%d night=%d",
			len(day.ResidentSpots), len(night.ResidentSpots))
	}
}

func TestBuild_SameSeedReproducesShopOrderAndResidents(t *testing.T) {
	l1, _ := cave.NewLevel(0, cave.DungeonWid, cave.DungeonHgt)
	l2, _ := cave.NewLevel(0, cave.DungeonWid, cave.DungeonHgt)
	r1 := testRNG(t, "restore-parity")
	r2 := testRNG(t, "restore-parity")

	res1, _, err := Build(l1, r1, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res2, _, err := Build(l2, r2, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res1.ShopOrder != res2.ShopOrder {
		t.Fatalf("expected identical seeds to reproduce the same shop order")
	}
	if len(res1.ResidentSpots) != len(res2.ResidentSpots) {
		t.Fatalf("expected identical seeds to reproduce the same resident count")
	}
}
