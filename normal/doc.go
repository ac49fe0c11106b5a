// Package normal transforms uniform draws into standard-normal samples.
//
// Two interchangeable Samplers are provided:
//
//   - BoxMuller: trigonometric transform of uniform pairs
//   - Polar: Marsaglia's rejection method, free of trigonometric calls
//
// Both produce values in pairs and truncate the batch to exactly the requested
// count. The discarded tail value is not returned to the generator, so a batch of
// n values is not a prefix of a batch of n+1 values drawn from the same seed.
//
// Generate applies the mean/variance transform on top of a sampler:
//
//	xs, err := normal.Generate(normal.Polar{}, rng.NewRNG(42), 5, 10, 4)
package normal
