package director

import "github.com/dshills/cavegen/pkg/profiles"

// selectProfile picks the cave profile for depth. Town (depth 0) always
// gets the town profile, looked up by builder kind rather than by cutoff
// roll since it has no table entry of its own requirement. Otherwise every
// profile is scanned in table order: a profile below its MinDepth, or
// excluded on a quest depth, is skipped outright; bump multiples raise a
// profile's effective cutoff so it wins more often at favorable depths; the
// fallback profile always matches regardless of roll.
func selectProfile(tables *profiles.Tables, depth int, key int, isQuestDepth bool) (profiles.CaveProfile, error) {
	if depth == 0 {
		for _, cp := range tables.CaveProfiles {
			if cp.Builder == profiles.BuilderTown {
				return cp, nil
			}
		}
		return profiles.CaveProfile{Name: "town", Builder: profiles.BuilderTown}, nil
	}

	for _, cp := range tables.CaveProfiles {
		if cp.Fallback {
			continue
		}
		if depth < cp.MinDepth {
			continue
		}
		if cp.ExcludeQuest && isQuestDepth {
			continue
		}
		cutoff := cp.Cutoff
		if bumped(cp.BumpAtMultiples, depth) {
			cutoff *= 2
		}
		if cutoff > key {
			return cp, nil
		}
	}

	return tables.Fallback()
}

func bumped(multiples []int, depth int) bool {
	for _, m := range multiples {
		if m > 0 && depth%m == 0 {
			return true
		}
	}
	return false
}

// forceProfile looks a named profile up directly, bypassing the roll — for
// tests and debug overrides.
func forceProfile(tables *profiles.Tables, name string) (profiles.CaveProfile, bool) {
	for _, cp := range tables.CaveProfiles {
		if cp.Name == name {
			return cp, true
		}
	}
	return profiles.CaveProfile{}, false
}
