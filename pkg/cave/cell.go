package cave

// InfoFlag is a bitset of per-cell state independent of terrain.
type InfoFlag uint16

const (
	// InRoom marks a cell as belonging to a room's footprint. A corridor
	// cell never carries this flag.
	InRoom InfoFlag = 1 << iota
	// Glow marks a permanently lit cell.
	Glow
	// FeelingMark flags a cell the director has chosen as a "feeling"
	// landmark, counted in Level.FeelingFound once the player visits it.
	FeelingMark
	// Icky marks a cell belonging to a vault template; also used elsewhere
	// to forbid teleport destinations.
	Icky
	// Known marks a cell already revealed to the player (e.g. a labyrinth
	// generated with "known" rolled true, or town daylight).
	Known
	// IsStart marks the one cell the player is placed on: a floor cell, or
	// the arrival staircase on town and labyrinth levels.
	IsStart
)

// Has reports whether all bits of want are set in f.
func (f InfoFlag) Has(want InfoFlag) bool { return f&want == want }

// Cell is a single grid position: terrain feature, info flags, and indices
// into the monster/object registries (0 meaning empty).
type Cell struct {
	Feature    Feature
	Info       InfoFlag
	Info2      InfoFlag
	MonsterIdx int
	ObjectIdx  int

	// Cost/flow/turn-stamp scratch fields for pathing. Cleared on
	// generation; never read by any builder in this module.
	Cost int
	When int
}

// IsFloor reports whether the cell's feature is walkable floor.
func (c *Cell) IsFloor() bool { return c.Feature.IsFloor() }

// IsWall reports whether the cell's feature is a wall.
func (c *Cell) IsWall() bool { return c.Feature.IsWall() }

// IsRoom reports whether the cell belongs to a room footprint.
func (c *Cell) IsRoom() bool { return c.Info.Has(InRoom) }

// IsPassable reports whether the cell can be walked through without
// digging.
func (c *Cell) IsPassable() bool { return c.Feature.IsPassable() }

// IsVault reports whether the cell belongs to a stamped vault.
func (c *Cell) IsVault() bool { return c.Info.Has(Icky) }

// HasMonster reports whether a monster occupies this cell.
func (c *Cell) HasMonster() bool { return c.MonsterIdx != 0 }

// HasObject reports whether an object occupies this cell.
func (c *Cell) HasObject() bool { return c.ObjectIdx != 0 }
