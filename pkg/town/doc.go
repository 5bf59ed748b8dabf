// Package town builds the one fixed-layout level: two rows of four shops
// around a central plaza, with a single down stair and day/night resident
// counts. The shop order is shuffled between an rng Save and Restore on the
// build RNG, so the draws after the shuffle restart from the beginning of
// that RNG's sequence no matter how many numbers the shuffle used — a
// stand-in for the quick/slow split the original game used to keep its
// town layout stable across characters that share a seed but differ in
// play style.
package town
