package profiles

import (
	"math"

	"github.com/dshills/cavegen/pkg/rng"
)

// SelectPit picks the monster pit/nest template to use at depth, given an
// RNG scoped to this decision. Each candidate draws offset ~ Normal(ave, 10)
// and scores itself by |offset-depth|; the winner is the smallest-distance
// candidate that also passes a 1/rarity Bernoulli filter. Ties keep
// whichever candidate was found first, and if every candidate fails its
// filter the first entry in the table is returned.
func SelectPit(r *rng.RNG, pits []PitProfile, depth int) (PitProfile, int) {
	if len(pits) == 0 {
		return PitProfile{}, -1
	}

	bestIdx := -1
	bestDist := math.MaxFloat64
	for i, p := range pits {
		offset := r.RandNormal(float64(p.AveDepth), 10)
		dist := math.Abs(offset - float64(depth))

		rarity := p.Rarity
		if rarity < 1 {
			rarity = 1
		}
		if !r.OneIn(rarity) {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return pits[0], 0
	}
	return pits[bestIdx], bestIdx
}

// FilterPitsByKind narrows a pit table to just pits or just nests.
func FilterPitsByKind(pits []PitProfile, kind PitKind) []PitProfile {
	out := make([]PitProfile, 0, len(pits))
	for _, p := range pits {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// FilterRaces returns the races in all that satisfy a pit/nest template's
// base, color and flag constraints. RequiredFlags must all be present;
// ForbiddenFlags must all be absent; AllowedBases/AllowedColors, when
// non-empty, restrict to that set.
func FilterRaces(all []RaceProfile, p PitProfile) []RaceProfile {
	out := make([]RaceProfile, 0, len(all))
	for _, race := range all {
		if !raceMatches(race, p) {
			continue
		}
		out = append(out, race)
	}
	return out
}

func raceMatches(race RaceProfile, p PitProfile) bool {
	if len(p.AllowedBases) > 0 && !containsStr(p.AllowedBases, race.Base) {
		return false
	}
	if len(p.AllowedColors) > 0 && !containsStr(p.AllowedColors, race.Color) {
		return false
	}
	if containsStr(p.Forbidden, race.Name) {
		return false
	}
	for _, want := range p.RequiredFlags {
		if !containsStr(race.Flags, want) {
			return false
		}
	}
	for _, bad := range p.ForbiddenFlags {
		if containsStr(race.Flags, bad) {
			return false
		}
	}
	for _, want := range p.RequiredSpellFlags {
		if !containsStr(race.SpellFlags, want) {
			return false
		}
	}
	for _, bad := range p.ForbiddenSpellFlags {
		if containsStr(race.SpellFlags, bad) {
			return false
		}
	}
	return true
}

func containsStr(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
