// Package rng provides the explicitly seeded random source used by every experiment.
//
// Nothing in numbench reads the process-wide generator. A harness owns one RNG seeded
// from its configuration and derives a fresh seed for each trial from it, so any trial
// can be replayed on its own:
//
//	master := rng.NewRNG(42)
//	seed := master.NextSeed()
//	xs := rng.UniformSequence(1_000_000, 0, 1, seed)
package rng
