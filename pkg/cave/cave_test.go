package cave

import "testing"

func TestNewLevel_OuterRingIsPermanentSolid(t *testing.T) {
	l, err := NewLevel(1, 40, 20)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	if !l.VerifyOuterRing() {
		t.Fatalf("outer ring is not all permanent-solid")
	}
}

func TestNewLevel_RejectsOutOfRangeDimensions(t *testing.T) {
	if _, err := NewLevel(1, 0, 20); err == nil {
		t.Fatalf("expected error for width 0")
	}
	if _, err := NewLevel(1, DungeonWid+1, 20); err == nil {
		t.Fatalf("expected error for width over DungeonWid")
	}
	if _, err := NewLevel(1, 20, DungeonHgt+1); err == nil {
		t.Fatalf("expected error for height over DungeonHgt")
	}
}

func TestLevel_AtSetRoundTrip(t *testing.T) {
	l, err := NewLevel(1, 10, 10)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	l.Set(5, 5, Cell{Feature: F(Floor), Info: InRoom})
	c := l.At(5, 5)
	if c.Feature.Kind != Floor || !c.IsRoom() {
		t.Fatalf("round-trip mismatch: %+v", c)
	}
}

func TestLevel_OutOfBoundsPanics(t *testing.T) {
	l, _ := NewLevel(1, 10, 10)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-bounds access")
		}
	}()
	l.At(100, 100)
}

func TestFeaturePredicates(t *testing.T) {
	cases := []struct {
		f                  Feature
		wall, floor, pass  bool
	}{
		{F(PermanentSolid), true, false, false},
		{F(WallExtra), true, false, false},
		{F(Floor), false, true, true},
		{F(CaveFloor), false, true, true},
		{F(Rubble), false, true, true},
		{F(OpenDoor), false, false, true},
		{F(BrokenDoor), false, false, true},
		{LockedDoor(3), false, false, false},
		{F(SecretDoor), false, false, false},
		{F(LessStair), false, false, true},
		{F(MoreStair), false, false, true},
		{Shop(2), false, false, true},
	}
	for _, c := range cases {
		if got := c.f.IsWall(); got != c.wall {
			t.Errorf("%+v.IsWall() = %v, want %v", c.f, got, c.wall)
		}
		if got := c.f.IsFloor(); got != c.floor {
			t.Errorf("%+v.IsFloor() = %v, want %v", c.f, got, c.floor)
		}
		if got := c.f.IsPassable(); got != c.pass {
			t.Errorf("%+v.IsPassable() = %v, want %v", c.f, got, c.pass)
		}
	}
}

func TestState_BlockUsedNoOverlap(t *testing.T) {
	s := NewState(100, 100)
	s.MarkBlocks(0, 0, 20, 20)
	if !s.BlockAt(5, 5) {
		t.Fatalf("expected block at (5,5) to be marked used")
	}
	if s.BlockAt(50, 50) {
		t.Fatalf("expected block at (50,50) to be unmarked")
	}
}

func TestState_CapsEnforced(t *testing.T) {
	s := NewState(2000, 2000)
	for i := 0; i < maxCenters; i++ {
		if !s.AddCenter(Point{X: i, Y: i}) {
			t.Fatalf("AddCenter returned false before reaching cap, at %d", i)
		}
	}
	if s.AddCenter(Point{}) {
		t.Fatalf("AddCenter should return false once cap of %d is reached", maxCenters)
	}
}
