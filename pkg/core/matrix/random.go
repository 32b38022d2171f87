// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// Range of the values drawn by a Generator, inclusive.
const (
	MinRandomValue = 0
	MaxRandomValue = 4
)

// Generator draws the input matrices of a benchmark run.
//
// It is a 64-bit Mersenne Twister seeded with the configured seed, so the same seed always yields
// the same sequence of matrices. A single Generator is meant to be used for a whole run: the
// matrices of each size continue the sequence where the previous size stopped.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	source := prng.NewMT19937_64()
	source.Seed(seed)
	return &Generator{rng: rand.New(source)}
}

// Next returns the next value, uniform in [MinRandomValue, MaxRandomValue].
func (g *Generator) Next() int {
	return MinRandomValue + g.rng.IntN(MaxRandomValue-MinRandomValue+1)
}

// Random returns a new n×n matrix filled, in row-major order, with values from g.
func Random[T Scalar](g *Generator, n int) *Dense[T] {
	m := New[T](n)
	m.Fill(func() T { return T(g.Next()) })
	return m
}
