package profiles

import "github.com/dshills/cavegen/pkg/rng"

// GreaterVaultOdds returns the success ratio (numerator, denominator) for
// offering a greater vault as a level's first room. At depth 100 or deeper
// the ratio is 2/3; for every 10 levels shallower than 100 the numerator is
// multiplied by 2 and the denominator by 3, so the odds fall off quickly
// toward the surface.
func GreaterVaultOdds(depth int) (num, den int) {
	steps := 0
	if depth < 100 {
		steps = (100 - depth) / 10
	}
	num, den = 2, 3
	for i := 0; i < steps; i++ {
		num *= 2
		den *= 3
	}
	return num, den
}

// TryGreaterVault rolls against GreaterVaultOdds for depth.
func TryGreaterVault(r *rng.RNG, depth int) bool {
	num, den := GreaterVaultOdds(depth)
	return r.RandInt0(den) < num
}

// SelectVault picks a random vault of the given kind whose dimensions fit
// within maxW x maxH. Returns false if nothing qualifies.
func SelectVault(r *rng.RNG, vaults []Vault, kind VaultKind, maxW, maxH int) (Vault, bool) {
	candidates := make([]Vault, 0, len(vaults))
	for _, v := range vaults {
		if v.Kind != kind {
			continue
		}
		if v.Width > maxW || v.Height > maxH {
			continue
		}
		candidates = append(candidates, v)
	}
	if len(candidates) == 0 {
		return Vault{}, false
	}
	return candidates[r.RandInt0(len(candidates))], true
}
