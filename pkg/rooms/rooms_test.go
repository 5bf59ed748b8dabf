package rooms

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
)

func testLevel(t *testing.T) (*cave.Level, *cave.State) {
	t.Helper()
	l, err := cave.NewLevel(5, cave.DungeonWid, cave.DungeonHgt)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l, cave.NewState(l.Width, l.Height)
}

func testRNG(t *testing.T, label string) *rng.RNG {
	t.Helper()
	h := sha256.Sum256([]byte("rooms_test"))
	return rng.NewRNG(1, label, h[:])
}

func loadTables(t *testing.T) *profiles.Tables {
	t.Helper()
	tables, err := profiles.Default()
	if err != nil {
		t.Fatalf("profiles.Default: %v", err)
	}
	return tables
}

func TestBuild_SimpleRoomCarvesFloorAndCenter(t *testing.T) {
	l, st := testLevel(t)
	tables := loadTables(t)
	req := Request{Profile: tables.RoomTables["normal"][0], Depth: 5, Tables: tables}

	res, ok, err := Build(l, st, testRNG(t, "simple"), req)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ok {
		t.Fatalf("expected a free block region on a blank level")
	}
	if !l.At(res.Center.X, res.Center.Y).IsFloor() {
		t.Fatalf("expected the reported center to be floor")
	}
}

func TestBuild_RoomsDoNotOverlapBlocks(t *testing.T) {
	l, st := testLevel(t)
	tables := loadTables(t)
	profile := tables.RoomTables["normal"][0]
	r := testRNG(t, "no-overlap")

	var centers []cave.Point
	for i := 0; i < 6; i++ {
		req := Request{Profile: profile, Depth: 5, Tables: tables}
		res, ok, err := Build(l, st, r, req)
		if err != nil {
			t.Fatalf("Build iteration %d: %v", i, err)
		}
		if !ok {
			continue
		}
		centers = append(centers, res.Center)
	}
	if len(centers) < 2 {
		t.Fatalf("expected at least two rooms to be placed, got %d", len(centers))
	}
	for i := range centers {
		for j := range centers {
			if i == j {
				continue
			}
			if centers[i] == centers[j] {
				t.Fatalf("two rooms share a center: %v", centers[i])
			}
		}
	}
}

func TestBuild_UnknownKindErrors(t *testing.T) {
	l, st := testLevel(t)
	tables := loadTables(t)
	bad := profiles.RoomProfile{Name: "bogus", Kind: "nonsense", BlockHeight: 1, BlockWidth: 1}
	_, _, err := Build(l, st, testRNG(t, "bad-kind"), Request{Profile: bad, Tables: tables})
	if err == nil {
		t.Fatalf("expected an error for an unrecognized room kind")
	}
}

func TestBuild_PitRecordsMonsterSpots(t *testing.T) {
	l, st := testLevel(t)
	tables := loadTables(t)
	var pitProfile profiles.RoomProfile
	for _, p := range tables.RoomTables["normal"] {
		if p.Kind == profiles.RoomPit {
			pitProfile = p
		}
	}
	req := Request{Profile: pitProfile, Depth: 20, Tables: tables}
	res, ok, err := Build(l, st, testRNG(t, "pit"), req)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ok {
		t.Fatalf("expected the pit room to be placed")
	}
	if len(res.MonsterSpots) == 0 {
		t.Fatalf("expected the pit to record candidate monster spots")
	}
}

func TestBuild_GreaterVaultOnlyAsFirstRoom(t *testing.T) {
	l, st := testLevel(t)
	tables := loadTables(t)
	profile := profiles.RoomProfile{Name: "gv", Kind: profiles.RoomVaultGreater, BlockHeight: 2, BlockWidth: 3}

	req := Request{Profile: profile, Depth: 100, FirstRoom: false, Tables: tables}
	res, ok, err := Build(l, st, testRNG(t, "vault-not-first"), req)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ok {
		t.Fatalf("expected the room to be placed")
	}
	// Not the first room: must never stamp a greater vault.
	for _, v := range tables.Vaults {
		if v.Kind == profiles.VaultGreater && v.Name == res.VaultName {
			t.Fatalf("greater vault stamped outside the first room")
		}
	}
}

func TestFindFreeBlock_ReturnsFalseWhenFull(t *testing.T) {
	_, st := testLevel(t)
	for r := 0; r < st.RowBlocks; r++ {
		for c := 0; c < st.ColBlocks; c++ {
			st.BlockUsed[r][c] = true
		}
	}
	_, _, ok := findFreeBlock(st, testRNG(t, "full"), 1, 1)
	if ok {
		t.Fatalf("expected no free block on a fully reserved grid")
	}
}
