package profiles

// RoomKind is the closed set of room builder dispatch tags, replacing a
// function-pointer table with a variant the director/builder switches on.
type RoomKind string

const (
	RoomSimple        RoomKind = "simple"
	RoomOverlap       RoomKind = "overlap"
	RoomCrossed       RoomKind = "crossed"
	RoomCircular      RoomKind = "circular"
	RoomLarge         RoomKind = "large"
	RoomNest          RoomKind = "nest"
	RoomPit           RoomKind = "pit"
	RoomVaultLesser   RoomKind = "vault_lesser"
	RoomVaultGreater  RoomKind = "vault_greater"
)

// RoomProfile is a named, data-driven entry in a CaveProfile's room table.
type RoomProfile struct {
	Name        string   `yaml:"name"`
	Kind        RoomKind `yaml:"kind"`
	BlockHeight int      `yaml:"block_height"`
	BlockWidth  int      `yaml:"block_width"`
	MinDepth    int      `yaml:"min_depth"`
	Crowded     bool     `yaml:"crowded"`
	Rarity      int      `yaml:"rarity"`
	Cutoff      int      `yaml:"cutoff"`
}

// TunnelProfile bundles the Tunneller's percentage knobs.
type TunnelProfile struct {
	Rnd int `yaml:"rnd"` // % chance, once re-evaluating direction, to pick a uniform cardinal
	Chg int `yaml:"chg"` // % chance per step to re-evaluate direction
	Con int `yaml:"con"` // % chance to keep going past Chebyshev distance 10
	Pen int `yaml:"pen"` // % chance a wall piercing gets a random door
	Jct int `yaml:"jct"` // % chance a qualifying door candidate becomes a door
}

// StreamerProfile bundles the magma/quartz seam knobs.
type StreamerProfile struct {
	Density       int `yaml:"density"`
	Range         int `yaml:"range"`
	MagmaCount    int `yaml:"magma_count"`
	QuartzCount   int `yaml:"quartz_count"`
	TreasureChance int `yaml:"treasure_chance"` // % chance a streamer cell carries treasure
}

// CaveBuilderKind is the closed set of top-level builders the director can
// select.
type CaveBuilderKind string

const (
	BuilderRoomsAndCorridors CaveBuilderKind = "rooms_and_corridors"
	BuilderCavern            CaveBuilderKind = "cavern"
	BuilderLabyrinth         CaveBuilderKind = "labyrinth"
	BuilderTown              CaveBuilderKind = "town"
)

// CaveProfile is a named, data-driven entry in the director's profile table.
type CaveProfile struct {
	Name         string          `yaml:"name"`
	Builder      CaveBuilderKind `yaml:"builder"`
	RoomsMin     int             `yaml:"rooms_min"`
	RoomsMax     int             `yaml:"rooms_max"`
	Unusual      int             `yaml:"unusual"`
	MaxRarity    int             `yaml:"max_rarity"`
	Tunnel       TunnelProfile   `yaml:"tunnel"`
	Streamer     StreamerProfile `yaml:"streamer"`
	RoomTableRef string          `yaml:"room_table"` // name of a RoomTable in Tables.RoomTables
	Cutoff       int             `yaml:"cutoff"`

	// MinDepth gates eligibility before the cutoff scan even runs (e.g.
	// cavern from depth>=15, labyrinth from depth>=13).
	MinDepth int `yaml:"min_depth"`
	// ExcludeQuest excludes this profile on quest depths (labyrinth only).
	ExcludeQuest bool `yaml:"exclude_quest"`
	// BumpAtMultiples lists depths-of-N at which this profile's selection
	// odds are boosted (e.g. multiples of 3,5,7,11,13 for the labyrinth).
	BumpAtMultiples []int `yaml:"bump_at_multiples"`
	// Fallback marks the unconditional last-resort profile (the default
	// rooms-and-corridors builder); exactly one profile in the table should
	// set this.
	Fallback bool `yaml:"fallback"`
}

// RaceProfile is a minimal stand-in for the external "monster races" data
// table a full game would own. It carries just enough fields (depth, flags,
// base, color) for pit/nest selection and content placement to be fully
// exercised without a real bestiary.
type RaceProfile struct {
	Name        string   `yaml:"name"`
	Level       int      `yaml:"level"`
	Base        string   `yaml:"base"`
	Color       string   `yaml:"color"`
	Flags       []string `yaml:"flags"`
	SpellFlags  []string `yaml:"spell_flags"`
}

// PitKind distinguishes a monster pit from a monster nest.
type PitKind string

const (
	PitKindPit  PitKind = "pit"
	PitKindNest PitKind = "nest"
)

// PitProfile is a named monster-pit/nest template.
type PitProfile struct {
	Name              string   `yaml:"name"`
	Kind              PitKind  `yaml:"kind"`
	AveDepth          int      `yaml:"ave_depth"`
	Rarity            int      `yaml:"rarity"`
	ObjectRarity      int      `yaml:"object_rarity"`
	RequiredFlags     []string `yaml:"required_flags"`
	ForbiddenFlags    []string `yaml:"forbidden_flags"`
	RequiredSpellFlags []string `yaml:"required_spell_flags"`
	ForbiddenSpellFlags []string `yaml:"forbidden_spell_flags"`
	AllowedBases      []string `yaml:"allowed_bases"`
	AllowedColors     []string `yaml:"allowed_colors"`
	Forbidden         []string `yaml:"forbidden"`
}

// VaultKind distinguishes lesser from greater vaults for the first-room
// probability rule.
type VaultKind string

const (
	VaultLesser  VaultKind = "lesser"
	VaultGreater VaultKind = "greater"
)

// Vault is a hand-designed chamber template. Map rows
// use a closed alphabet: '#' inner wall, 'X' permanent
// inner wall, '%' outer-wall doorstep, '+' secret door, '^' trap, '*'
// treasure-or-trap, '&'/'@'/'8'/'9'/',' monster spawns of varying
// difficulty, ' ' plain floor.
type Vault struct {
	Name   string    `yaml:"name"`
	Kind   VaultKind `yaml:"kind"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Rating int       `yaml:"rating"`
	Map    []string  `yaml:"map"`
}
