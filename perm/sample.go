// Package perm: Bernoulli-biased discretization of trained angles.
//
// RNG policy (deterministic by construction):
//   - The random source is always injected by the caller; no global RNG
//     state is touched anywhere in this package.
//   - A nil source falls back to a time-derived seed, giving fresh draws
//     per call — pass an explicit source for reproducible sampling.

package perm

import (
	"math"
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ensureSource returns src, or a time-seeded source when src is nil.
func ensureSource(src rand.Source) rand.Source {
	if src != nil {
		return src
	}

	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// SampleThetas draws n independent discrete angle configurations from the
// continuous angles v. Element k of each sample is π with probability
// ThetasToProb(v)[k] and 0 otherwise, so each draw lands on one of the two
// stable ansatz configurations, biased toward the trained value.
//
// Two calls with equal inputs and sources seeded identically produce
// identical output.
//
// Errors: ErrSampleCount for n < 1.
// Complexity: O(n·len(v)).
func SampleThetas(v []float64, n int, src rand.Source) ([][]float64, error) {
	if n < 1 {
		return nil, ErrSampleCount
	}
	probs := ThetasToProb(v)
	u := distuv.Uniform{Min: 0, Max: 1, Src: ensureSource(src)}

	out := make([][]float64, n)
	for s := range out {
		row := make([]float64, len(v))
		for k, p := range probs {
			if u.Rand() < p {
				row[k] = math.Pi
			}
		}
		out[s] = row
	}

	return out, nil
}

// SampleThetasMap is the named-mapping twin of SampleThetas: it accepts a
// parameter-name → angle map (such as a circuit Binding) and returns n
// maps over the same keys. Keys are processed in sorted order so a given
// source yields reproducible draws.
//
// Errors: ErrSampleCount for n < 1.
func SampleThetasMap(v map[string]float64, n int, src rand.Source) ([]map[string]float64, error) {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = v[k]
	}

	rows, err := SampleThetas(vals, n, src)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]float64, n)
	for s, row := range rows {
		m := make(map[string]float64, len(keys))
		for i, k := range keys {
			m[k] = row[i]
		}
		out[s] = m
	}

	return out, nil
}
