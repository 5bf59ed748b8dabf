package rng_test

import (
	"crypto/sha256"
	"fmt"

	"github.com/dshills/cavegen/pkg/rng"
)

// ExampleNewRNG demonstrates deriving independent RNGs for two generation
// stages from a single master seed.
func ExampleNewRNG() {
	masterSeed := uint64(123456789)
	configHash := sha256.Sum256([]byte("cave_profile_v1"))

	buildRNG := rng.NewRNG(masterSeed, "build-0", configHash[:])
	populateRNG := rng.NewRNG(masterSeed, "populate-0", configHash[:])

	fmt.Printf("Build stage seed: %d\n", buildRNG.Seed())
	fmt.Printf("Populate stage seed: %d\n", populateRNG.Seed())

	// Re-deriving the same stage with the same inputs reproduces its seed.
	buildRNG2 := rng.NewRNG(masterSeed, "build-0", configHash[:])
	fmt.Printf("Build stage reproduced: %v\n", buildRNG2.Seed() == buildRNG.Seed())
}

// ExampleRNG_Shuffle demonstrates deterministically shuffling room order
// before tunneling them together.
func ExampleRNG_Shuffle() {
	masterSeed := uint64(42)
	configHash := sha256.Sum256([]byte("cave_profile_v1"))
	buildRNG := rng.NewRNG(masterSeed, "build-0", configHash[:])

	centers := []string{"room-0", "room-1", "room-2", "room-3", "room-4"}
	buildRNG.Shuffle(len(centers), func(i, j int) {
		centers[i], centers[j] = centers[j], centers[i]
	})

	fmt.Printf("Tunneling order: %v\n", centers)
}

// ExampleRNG_WeightedChoice demonstrates picking a room kind from a
// profile's weighted room table.
func ExampleRNG_WeightedChoice() {
	masterSeed := uint64(999)
	configHash := sha256.Sum256([]byte("cave_profile_v1"))
	buildRNG := rng.NewRNG(masterSeed, "build-0", configHash[:])

	kinds := []string{"simple", "overlap", "crossed", "circular", "large"}
	weights := []float64{50.0, 20.0, 15.0, 10.0, 5.0}

	for i := 0; i < 5; i++ {
		choice := buildRNG.WeightedChoice(weights)
		fmt.Printf("Room %d kind: %s\n", i+1, kinds[choice])
	}
}

// ExampleRNG_Float64Range demonstrates drawing a lighting radius jitter
// value for the lighting stage.
func ExampleRNG_Float64Range() {
	masterSeed := uint64(777)
	configHash := sha256.Sum256([]byte("cave_profile_v1"))
	lightingRNG := rng.NewRNG(masterSeed, "lighting-0", configHash[:])

	for i := 0; i < 5; i++ {
		radius := lightingRNG.Float64Range(0.3, 0.8)
		fmt.Printf("Passage %d radius jitter: %.2f\n", i+1, radius)
	}
}
