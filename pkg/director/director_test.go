package director

import (
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/profiles"
)

func loadTables(t *testing.T) *profiles.Tables {
	t.Helper()
	tables, err := profiles.Default()
	if err != nil {
		t.Fatalf("profiles.Default: %v", err)
	}
	return tables
}

func TestGenerate_TownDepthProducesFixedFootprint(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	out, err := d.Generate(Config{Seed: 1, Depth: 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Profile != "town" {
		t.Fatalf("expected town profile, got %q", out.Profile)
	}
	if !out.Level.VerifyOuterRing() {
		t.Fatalf("town level's outer ring is not permanent-solid")
	}
}

func TestGenerate_DefaultProfilePlacesMultipleRooms(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	out, err := d.Generate(Config{Seed: 1, Depth: 1, ForceProfile: "default"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.RoomCount < 2 {
		t.Fatalf("expected multiple rooms on a rooms-and-corridors level, got %d", out.RoomCount)
	}
	_, more := out.Level.CountStairs()
	if more == 0 {
		t.Fatalf("expected at least one down stair on a rooms-and-corridors level")
	}
}

func TestGenerate_LabyrinthProfileMatchesRequestedDepth(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	out, err := d.Generate(Config{Seed: 42, Depth: 13, ForceProfile: "labyrinth"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Profile != "labyrinth" {
		t.Fatalf("expected labyrinth profile, got %q", out.Profile)
	}
	if out.Level.Height < 15 || out.Level.Width < 51 {
		t.Fatalf("labyrinth level too small: %dx%d", out.Level.Width, out.Level.Height)
	}
}

func TestGenerate_CavernProfileOpensEnoughFloor(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	out, err := d.Generate(Config{Seed: 7, Depth: 15, ForceProfile: "cavern"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	open := 0
	out.Level.Each(func(_, _ int, c *cave.Cell) {
		if c.IsFloor() {
			open++
		}
	})
	minOpen := (out.Level.Width - 2) * (out.Level.Height - 2) / 13
	if open < minOpen {
		t.Fatalf("cavern opened %d floor cells, want at least %d", open, minOpen)
	}
}

func TestGenerate_IsDeterministicForSameSeed(t *testing.T) {
	tables := loadTables(t)
	d := New(tables, nil, nil)
	cfg := Config{Seed: 99, Depth: 5}

	a, err := d.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate (a): %v", err)
	}
	b, err := d.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate (b): %v", err)
	}
	if a.Profile != b.Profile {
		t.Fatalf("same seed picked different profiles: %q vs %q", a.Profile, b.Profile)
	}
	for y := 0; y < a.Level.Height; y++ {
		for x := 0; x < a.Level.Width; x++ {
			if a.Level.At(x, y).Feature.Kind != b.Level.At(x, y).Feature.Kind {
				t.Fatalf("same seed produced different terrain at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerate_RejectsNegativeDepth(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	if _, err := d.Generate(Config{Seed: 1, Depth: -1}); err == nil {
		t.Fatalf("expected an error for negative depth")
	}
}

func TestGenerate_UnknownForcedProfileIsAnError(t *testing.T) {
	d := New(loadTables(t), nil, nil)
	if _, err := d.Generate(Config{Seed: 1, Depth: 1, ForceProfile: "does-not-exist"}); err == nil {
		t.Fatalf("expected an error for an unknown forced profile")
	}
}
