// Package perm post-processes trained ansatz parameters into discrete
// permutations.
//
// 🚀 What lives here?
//
//	The optimizer returns continuous angles, but a permutation is discrete:
//	every S4 angle must settle on 0 or π. This package closes that gap:
//	  • ThetasToProb   — how close each angle is to an odd multiple of π,
//	    as a probability in [0, 1]
//	  • SampleThetas   — Bernoulli-biased snapping of angles to exactly
//	    0 or π (slice in, slices out)
//	  • SampleThetasMap — the same for named parameter maps, e.g. the
//	    Binding produced by a circuit parameter tensor
//	  • ToTwoLine / FromTwoLine — convert a 0/1 permutation matrix to the
//	    two-line symbol (domain row, image row) and back
//
// ⚙️ Usage:
//
//	src := rand.NewSource(42) // golang.org/x/exp/rand
//	samples, err := perm.SampleThetas(trained, 16, src)
//	// each sample is an exact 0/π configuration, biased toward the
//	// trained values; evaluate each and keep the best
//
// Randomness is injected: pass an explicit rand.Source for reproducible
// draws, or nil for a time-seeded one. No package-global RNG state exists.
package perm
