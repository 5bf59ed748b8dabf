package labyrinth

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/rng"
)

func testRNG(t *testing.T, label string) *rng.RNG {
	t.Helper()
	h := sha256.Sum256([]byte("labyrinth_test"))
	return rng.NewRNG(13, label, h[:])
}

func TestBuild_StartAndEndAreConnected(t *testing.T) {
	l, err := cave.NewLevel(13, cave.DungeonWid, cave.DungeonHgt)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	res, ok, err := Build(l, testRNG(t, "maze"), 13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ok {
		t.Fatalf("expected the maze to fit within the level")
	}

	if !l.At(res.Start.X, res.Start.Y).IsPassable() || !l.At(res.End.X, res.End.Y).IsPassable() {
		t.Fatalf("expected start and end cells to be passable")
	}

	visited := map[cave.Point]bool{res.Start: true}
	stack := []cave.Point{res.Start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			np := cave.Point{X: p.X + d[0], Y: p.Y + d[1]}
			if visited[np] || !l.InBounds(np.X, np.Y) || !l.At(np.X, np.Y).IsPassable() {
				continue
			}
			visited[np] = true
			stack = append(stack, np)
		}
	}
	if !visited[res.End] {
		t.Fatalf("expected a path from the maze start to its end")
	}
}

func TestDimensions_BumpsAtMultiples(t *testing.T) {
	base, _ := dimensions(1)
	bumped, _ := dimensions(3 * 5 * 7 * 11 * 13)
	if bumped <= base {
		t.Fatalf("expected a depth hitting every bump multiple to grow the maze: base=%d bumped=%d", base, bumped)
	}
}

func TestIsDeadEnd(t *testing.T) {
	l, _ := cave.NewLevel(1, 10, 10)
	l.Set(5, 5, cave.Cell{Feature: cave.F(cave.Floor)})
	l.Set(5, 4, cave.Cell{Feature: cave.F(cave.Floor)})
	if !isDeadEnd(l, 5, 5) {
		t.Fatalf("expected a single-exit cell to be a dead end")
	}
	l.Set(5, 6, cave.Cell{Feature: cave.F(cave.Floor)})
	if isDeadEnd(l, 5, 5) {
		t.Fatalf("expected a two-exit cell not to be a dead end")
	}
}
