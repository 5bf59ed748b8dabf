// Package rng provides deterministic random number generation for the dungeon generator.
//
// # Overview
//
// The RNG type ensures reproducible level generation by deriving stage-specific
// seeds from a master seed. This allows each generation stage (profile
// selection, build, populate, lighting) to have independent random sequences
// while maintaining overall determinism.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for entire generation
//   - stageName: Generation stage identifier (e.g., "build-0", "populate-0")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each generation stage:
//
//	configHash := hashConfig(cfg)
//	buildRNG := rng.NewRNG(masterSeed, "build-0", configHash)
//	populateRNG := rng.NewRNG(masterSeed, "populate-0", configHash)
//
// Use the RNG for all random decisions in that stage:
//
//	roomCount := buildRNG.RandRange(profile.RoomsMin, profile.RoomsMax)
//	if buildRNG.OneIn(4) {
//	    // widen the light radius
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
