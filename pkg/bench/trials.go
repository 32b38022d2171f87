// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bench runs the loop-order benchmarks: repeated timed trials of the multiplication kernel
// over a sweep of sizes and orders, collected into a Results store.
package bench

import (
	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/gomlx/loopbench/pkg/kernel"
	"github.com/pkg/errors"
)

// ChecksumMax is the maximum number of elements of the accumulator summed by Checksum.
const ChecksumMax = 10000

// ErrInvalidTrials is returned, wrapped, when the number of trials is < 1.
var ErrInvalidTrials = errors.New("number of trials must be >= 1")

// Result of the trials of one (size, order) pair.
type Result[T matrix.Scalar] struct {
	// AvgMicros is the mean elapsed time of one trial, in microseconds.
	AvgMicros float64

	// Checksum of the accumulator after the last trial, see Checksum.
	Checksum T
}

// RunTrials runs fn trials times, zeroing c before each one.
//
// The returned average is the total elapsed microseconds divided by trials, and the checksum
// is taken from c after the last trial. trials < 1 is not a supported configuration and
// returns an error wrapping ErrInvalidTrials, without calling fn.
func RunTrials[T matrix.Scalar](fn kernel.Func[T], a, b, c *matrix.Dense[T], trials int) (Result[T], error) {
	if trials < 1 {
		return Result[T]{}, errors.Wrapf(ErrInvalidTrials, "got %d trials", trials)
	}
	var totalMicros int64
	for range trials {
		c.Zero()
		totalMicros += fn(a, b, c)
	}
	return Result[T]{
		AvgMicros: float64(totalMicros) / float64(trials),
		Checksum:  Checksum(c),
	}, nil
}

// Checksum returns the sum of the first min(ChecksumMax, N*N) elements of m, in row-major order.
// The sum is accumulated in T, so integer types wrap around on overflow.
func Checksum[T matrix.Scalar](m *matrix.Dense[T]) T {
	data := m.Data()
	if len(data) > ChecksumMax {
		data = data[:ChecksumMax]
	}
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}
