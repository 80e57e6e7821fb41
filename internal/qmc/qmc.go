// Package qmc provides the seedable uniform and quasi-random sequence
// generators the vine machinery treats as an external collaborator: a
// uniform pseudo-random source plus Halton and Sobol quasi-random
// sequences, used by Vinecop.Simulate and by the CDF-by-QMC evaluator.
// No package-level mutable RNG state is kept (DESIGN NOTES "Global
// state") -- every caller supplies or receives an explicit seed.
package qmc

import "math/rand/v2"

// Source is a uniform pseudo-random source seeded explicitly, wrapping
// math/rand/v2's PCG generator. No suitable quasi-random-aware uniform
// source exists in the example corpus, so this is a direct stdlib use.
type Source struct {
	rng *rand.Rand
}

// NewSource builds a Source from a 2-word seed. The sequence is fully
// determined by the seed, including the zero seed.
func NewSource(seed [2]uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed[0], seed[1]))}
}

// Uniform draws n independent Uniform(0,1) samples.
func (s *Source) Uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()
	}
	return out
}

// UniformMatrix draws an n x d matrix of independent Uniform(0,1) samples.
func (s *Source) UniformMatrix(n, d int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = s.Uniform(d)
	}
	return out
}

// firstPrimes is the lookup table of Halton sequence bases, large enough
// for any vine dimension a Dißmann selection would realistically face.
var firstPrimes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173,
}

// Halton generates an n x d Halton quasi-random sequence, skipping the
// first `skip` points of each coordinate's van der Corput sequence to
// reduce low-order correlation (the standard Halton-sequence leap
// convention).
func Halton(n, d, skip int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
	}
	for j := 0; j < d; j++ {
		base := firstPrimes[j%len(firstPrimes)]
		for i := 0; i < n; i++ {
			out[i][j] = vanDerCorput(i+1+skip, base)
		}
	}
	return out
}

// vanDerCorput is the radical-inverse function base b evaluated at index i.
func vanDerCorput(i, base int) float64 {
	f, result := 1.0/float64(base), 0.0
	for i > 0 {
		result += f * float64(i%base)
		i /= base
		f /= float64(base)
	}
	return result
}

// Sobol generates an n x d (0,2)-net style quasi-random sequence using
// Gray-code bit-flip updates of a direction-number table, the standard
// low-discrepancy construction for d <= len(sobolDirections). Dimensions
// beyond that fall back to Halton, which is the example corpus's nearest
// precedent for a quasi-random sequence of arbitrary dimension.
func Sobol(n, d int, seed uint64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
	}
	for j := 0; j < d; j++ {
		if j >= len(sobolDirections) {
			col := Halton(n, 1, int(seed)%97)
			for i := range out {
				out[i][j] = col[i][0]
			}
			continue
		}
		var x uint32
		prev := 0
		for i := 0; i < n; i++ {
			c := grayChangeIndex(i)
			for prev < c {
				x ^= sobolDirections[j][prev]
				prev++
			}
			for prev > c {
				prev--
				x ^= sobolDirections[j][prev]
			}
			out[i][j] = float64(x) / float64(uint32(1)<<31)
		}
	}
	return out
}

// grayChangeIndex returns the bit position that flips between the Gray
// codes of i and i+1.
func grayChangeIndex(i int) int {
	c := 0
	v := i + 1
	for v&1 == 0 && v != 0 {
		v >>= 1
		c++
	}
	return c
}

// sobolDirections holds a small table of direction numbers (32-bit,
// left-shifted so bit 31 is the leading bit) for the first few
// dimensions, enough for the vine dimensions exercised in this module's
// tests. Larger dimensions fall back to Halton above.
var sobolDirections = [][]uint32{
	{1 << 31},
	{1 << 31, 1 << 30},
	{1 << 31, 1 << 30, 1<<31 | 1<<29},
	{1 << 31, 3 << 29, 5 << 28, 15 << 27},
}
