package cave

import "fmt"

// Maximum grid dimensions. Chosen to match the classic dungeon proportions
// this generator's algorithms (11x11 block placement, 9x23 inner rooms,
// 51-wide labyrinths) were tuned against.
const (
	DungeonWid = 198
	DungeonHgt = 66
)

// Level is the fully populated, two-dimensional produced dungeon grid plus
// the scalar fields the director computes once generation succeeds.
type Level struct {
	Width, Height int
	cells         []Cell // row-major, len == Width*Height

	Depth int // 0 == town

	MonRating int
	ObjRating int
	GoodItem  bool // true iff an artifact was placed

	ObjFeeling   int
	MonFeeling   int
	FeelingFound int // count of FeelingMark cells the player has visited

	CreatedTurn int
}

// NewLevel allocates a w x h grid filled with PermanentSolid and draws the
// permanent outer ring, matching the Level invariant "the outermost ring of
// cells is always permanent-solid". w and h must satisfy
// 1 <= w <= DungeonWid, 1 <= h <= DungeonHgt.
func NewLevel(depth, w, h int) (*Level, error) {
	if w < 1 || w > DungeonWid {
		return nil, fmt.Errorf("cave: width %d out of range [1,%d]", w, DungeonWid)
	}
	if h < 1 || h > DungeonHgt {
		return nil, fmt.Errorf("cave: height %d out of range [1,%d]", h, DungeonHgt)
	}

	l := &Level{
		Width:  w,
		Height: h,
		Depth:  depth,
		cells:  make([]Cell, w*h),
	}
	for i := range l.cells {
		l.cells[i].Feature = F(PermanentSolid)
	}
	return l, nil
}

// InBounds reports whether (x, y) is a valid grid position. Also satisfies
// the fov.Grid contract consumed by pkg/lighting.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// index panics on out-of-bounds access: any caller reaching this with a bad
// coordinate has a programmer error, not a recoverable condition.
func (l *Level) index(x, y int) int {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("cave: out of bounds access (%d,%d) on %dx%d level", x, y, l.Width, l.Height))
	}
	return y*l.Width + x
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (l *Level) At(x, y int) *Cell {
	return &l.cells[l.index(x, y)]
}

// Set overwrites the cell at (x, y). Panics if out of bounds.
func (l *Level) Set(x, y int, c Cell) {
	l.cells[l.index(x, y)] = c
}

// IsOpaque reports whether (x, y) blocks line of sight — satisfies the
// fov.Grid contract consumed by pkg/lighting.
func (l *Level) IsOpaque(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	return l.At(x, y).IsWall()
}

// Fill overwrites every cell in the grid with feature f, clearing all info
// flags and indices. The rooms-and-corridors builder uses it to start from
// solid rock. The director allocates a fresh Level for every attempt, so a
// failed attempt never leaves anything behind for the next one.
func (l *Level) Fill(f Feature) {
	for i := range l.cells {
		l.cells[i] = Cell{Feature: f}
	}
}

// DrawPermanentBorder stamps PermanentSolid around the outermost ring,
// restoring the Level invariant after a builder has filled the interior.
func (l *Level) DrawPermanentBorder() {
	for x := 0; x < l.Width; x++ {
		l.Set(x, 0, Cell{Feature: F(PermanentSolid)})
		l.Set(x, l.Height-1, Cell{Feature: F(PermanentSolid)})
	}
	for y := 0; y < l.Height; y++ {
		l.Set(0, y, Cell{Feature: F(PermanentSolid)})
		l.Set(l.Width-1, y, Cell{Feature: F(PermanentSolid)})
	}
}

// CountStairs returns the number of less-stairs and more-stairs currently
// on the level.
func (l *Level) CountStairs() (less, more int) {
	for i := range l.cells {
		switch l.cells[i].Feature.Kind {
		case LessStair:
			less++
		case MoreStair:
			more++
		}
	}
	return less, more
}

// Each calls fn for every (x, y, *Cell) in the grid, row-major.
func (l *Level) Each(fn func(x, y int, c *Cell)) {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			fn(x, y, &l.cells[y*l.Width+x])
		}
	}
}

// VerifyOuterRing reports whether every cell of the outermost ring is
// PermanentSolid, the Level invariant every builder must preserve.
func (l *Level) VerifyOuterRing() bool {
	ok := true
	for x := 0; x < l.Width; x++ {
		if l.At(x, 0).Feature.Kind != PermanentSolid {
			ok = false
		}
		if l.At(x, l.Height-1).Feature.Kind != PermanentSolid {
			ok = false
		}
	}
	for y := 0; y < l.Height; y++ {
		if l.At(0, y).Feature.Kind != PermanentSolid {
			ok = false
		}
		if l.At(l.Width-1, y).Feature.Kind != PermanentSolid {
			ok = false
		}
	}
	return ok
}
