// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"testing"

	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/gomlx/loopbench/pkg/kernel"
	"github.com/gomlx/loopbench/pkg/looporder"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrialsAverage(t *testing.T) {
	times := []int64{3, 4, 8, 1}
	calls := 0
	fake := func(a, b, c *matrix.Dense[int32]) int64 {
		// c must have been zeroed before each trial.
		require.Equal(t, int32(0), c.At(0, 0))
		c.Set(0, 0, c.At(0, 0)+7)
		elapsed := times[calls]
		calls++
		return elapsed
	}
	a, b, c := matrix.New[int32](2), matrix.New[int32](2), matrix.New[int32](2)
	c.Set(0, 0, 100)
	result, err := RunTrials(fake, a, b, c, len(times))
	require.NoError(t, err)
	assert.Equal(t, len(times), calls)
	assert.InDelta(t, 4.0, result.AvgMicros, 1e-9)
	assert.Equal(t, int32(7), result.Checksum)

	result, err = RunTrials(fake, a, b, c, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTrials))
	assert.Equal(t, Result[int32]{}, result)
	assert.Equal(t, len(times), calls, "kernel must not be called for 0 trials")
}

func TestRunTrialsFractionalAverage(t *testing.T) {
	next := int64(0)
	fake := func(a, b, c *matrix.Dense[float64]) int64 {
		next++
		return next
	}
	m := matrix.New[float64](1)
	result, err := RunTrials(fake, m, m, matrix.New[float64](1), 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, result.AvgMicros)
}

func TestRunTrialsScenario(t *testing.T) {
	a := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]int32{{5, 6}, {7, 8}})
	c := matrix.New[int32](2)
	for _, order := range looporder.All() {
		result, err := RunTrials(kernel.For[int32](order), a, b, c, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(134), result.Checksum, "order %s", order)
		assert.GreaterOrEqual(t, result.AvgMicros, 0.0)
	}

	empty := matrix.New[int32](0)
	result, err := RunTrials(kernel.For[int32](looporder.MustParse("jki")), empty, empty, matrix.New[int32](0), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(0), result.Checksum)
}

func TestChecksum(t *testing.T) {
	m := matrix.FromRows([][]int64{{19, 22}, {43, 50}})
	assert.Equal(t, int64(134), Checksum(m))
	assert.Equal(t, int64(0), Checksum(matrix.New[int64](0)))

	// 101*101 > ChecksumMax: only the first ChecksumMax elements are summed.
	ones := matrix.New[int64](101)
	ones.Fill(func() int64 { return 1 })
	assert.Equal(t, int64(ChecksumMax), Checksum(ones))

	// The elements past the cap don't count.
	ones.Data()[ChecksumMax] = 1000
	assert.Equal(t, int64(ChecksumMax), Checksum(ones))
	ones.Data()[ChecksumMax-1] = 1000
	assert.Equal(t, int64(ChecksumMax+999), Checksum(ones))

	// Row-major order: with N=100 the cap covers the whole matrix.
	exact := matrix.New[int32](100)
	exact.Set(99, 99, 5)
	assert.Equal(t, int32(5), Checksum(exact))

	// Accumulation in the scalar type wraps around.
	small := matrix.New[int8](15)
	small.Fill(func() int8 { return 1 })
	assert.Equal(t, int8(225-256), Checksum(small))
}
