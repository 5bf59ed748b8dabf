package director

import (
	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/grid"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
	"github.com/dshills/cavegen/pkg/rooms"
	"github.com/dshills/cavegen/pkg/tunnel"
)

// maxRoomAttemptsFactor bounds how many block slots the room-placement loop
// will try before giving up on reaching the target room count, relative to
// the number of blocks on the level.
const maxRoomAttemptsFactor = 3

// greaterVaultProfile is the synthetic room profile used for the one
// greater-vault attempt a level's first room may get. It has no entry in
// any room table (a greater vault is never offered by ordinary cutoff
// scanning) and is only ever requested directly, here.
var greaterVaultProfile = profiles.RoomProfile{
	Name:        "greater vault attempt",
	Kind:        profiles.RoomVaultGreater,
	BlockHeight: 3,
	BlockWidth:  4,
}

// buildDefault runs the rooms-and-corridors algorithm: fill with wall-extra,
// place rooms against the profile's room table (with a single greater-vault
// attempt first), shuffle and tunnel room centers into a ring, place doors,
// repair connectivity, then stamp streamers (the caller places stairs
// afterwards). Returns ok=false
// (nil error) if it couldn't place even one room, or if connectivity repair
// failed within its bridging budget — both retryable conditions.
func buildDefault(l *cave.Level, st *cave.State, r *rng.RNG, profile profiles.CaveProfile, depth int, tables *profiles.Tables) ([]rooms.Result, bool, error) {
	l.Fill(cave.F(cave.WallExtra))

	roomTable := tables.RoomTables[profile.RoomTableRef]

	sizePercent := 75 + r.RandInt0(26)
	target := profile.RoomsMin + (profile.RoomsMax-profile.RoomsMin)*sizePercent/100
	if target < profile.RoomsMin {
		target = profile.RoomsMin
	}

	var results []rooms.Result
	firstRoom := true

	if profiles.TryGreaterVault(r, depth) {
		req := rooms.Request{Profile: greaterVaultProfile, Depth: depth, FirstRoom: true, Tables: tables}
		res, ok, err := rooms.Build(l, st, r, req)
		if err != nil {
			return nil, false, err
		}
		if ok {
			firstRoom = false
			results = append(results, res)
		}
	}

	maxAttempts := st.RowBlocks * st.ColBlocks * maxRoomAttemptsFactor
	for attempts := 0; len(results) < target && attempts < maxAttempts; attempts++ {
		key := r.RandInt0(100)
		rarity := rollRarity(r, depth, profile.Unusual, profile.MaxRarity)
		chosen, found := pickRoomProfile(roomTable, rarity, key)
		if !found {
			continue
		}

		req := rooms.Request{Profile: chosen, Depth: depth, FirstRoom: firstRoom, Tables: tables}
		res, ok, err := rooms.Build(l, st, r, req)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		firstRoom = false
		results = append(results, res)
	}

	if len(results) == 0 {
		return nil, false, nil
	}

	l.DrawPermanentBorder()

	centers := append([]cave.Point(nil), st.Centers...)
	r.Shuffle(len(centers), func(i, j int) { centers[i], centers[j] = centers[j], centers[i] })
	if len(centers) >= 2 {
		for i := range centers {
			next := centers[(i+1)%len(centers)]
			if _, err := tunnel.Tunnel(l, st, r, profile.Tunnel, centers[i], next); err != nil {
				return nil, false, err
			}
		}
	}

	for _, p := range st.TunnelCells {
		l.Set(p.X, p.Y, cave.Cell{Feature: cave.F(cave.Floor)})
	}

	tunnel.PlaceDoors(l, st, r, profile.Tunnel)

	connected, err := tunnel.Repair(l, st, r, profile.Tunnel)
	if err != nil {
		return nil, false, err
	}
	if !connected {
		return nil, false, nil
	}

	placeStreamers(l, r, profile.Streamer)

	return results, true, nil
}

// rollRarity approximates "probability rarity >= r is (depth/unusual)^r" by
// repeated Bernoulli trials: each trial succeeds with probability
// depth/unusual, and r consecutive successes is exactly as likely as one
// draw from that geometric tail.
func rollRarity(r *rng.RNG, depth, unusual, maxRarity int) int {
	if unusual <= 0 {
		return 0
	}
	rarity := 0
	for rarity < maxRarity {
		if r.Float64() >= float64(depth)/float64(unusual) {
			break
		}
		rarity++
	}
	return rarity
}

// pickRoomProfile scans table in order for the first entry whose rarity
// tier fits within rarity and whose cutoff exceeds key.
func pickRoomProfile(table []profiles.RoomProfile, rarity, key int) (profiles.RoomProfile, bool) {
	for _, p := range table {
		if p.Rarity > rarity {
			continue
		}
		if p.Cutoff > key {
			return p, true
		}
	}
	return profiles.RoomProfile{}, false
}

func placeStreamers(l *cave.Level, r *rng.RNG, sp profiles.StreamerProfile) {
	placeStreamerVeins(l, r, cave.Magma, sp.MagmaCount, sp.Range, sp.TreasureChance)
	placeStreamerVeins(l, r, cave.Quartz, sp.QuartzCount, sp.Range, sp.TreasureChance)
}

// placeStreamerVeins scatters count short mineral veins, each starting at a
// random interior cell and running up to spread cells in one cardinal direction,
// converting wall-solid cells into the streamer feature and rolling
// treasureChance for each converted cell.
func placeStreamerVeins(l *cave.Level, r *rng.RNG, kind cave.FeatureKind, count, spread, treasureChance int) {
	for i := 0; i < count; i++ {
		x := 1 + r.RandInt0(l.Width-2)
		y := 1 + r.RandInt0(l.Height-2)
		dx, dy := cardinalStep(r)
		for step := 0; step < spread; step++ {
			if !l.InBounds(x, y) {
				break
			}
			c := l.At(x, y)
			if c.Feature.Kind == cave.WallSolid {
				l.Set(x, y, cave.Cell{Feature: cave.Feature{Kind: kind, Treasure: r.RandInt0(100) < treasureChance}})
			}
			x += dx
			y += dy
		}
	}
}

func cardinalStep(r *rng.RNG) (dx, dy int) {
	switch r.RandInt0(4) {
	case 0:
		return 1, 0
	case 1:
		return -1, 0
	case 2:
		return 0, 1
	default:
		return 0, -1
	}
}

// placeStairs scatters down and up stairs, each required to be adjacent to
// at least 3 wall cells (so a stair never sits in the open middle of a
// room). Returns the counts actually placed.
func placeStairs(l *cave.Level, r *rng.RNG, downCount, upCount int) (placedDown, placedUp int) {
	return grid.PlaceStairs(l, r, downCount, upCount)
}
