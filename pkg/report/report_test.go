// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	times := map[int]map[string]float64{
		10: {"kji": 1, "ijk": 12.26},
		2:  {"kji": 1234.5678, "ijk": 0},
	}
	var calls []string
	got := Render("TIMES (MICROSECONDS):", []string{"kji", "ijk"}, []int{10, 2},
		func(size int, order string) float64 {
			calls = append(calls, order)
			return times[size][order]
		})
	want := "\n\nTIMES (MICROSECONDS):\n\n" +
		"      N             kji             ijk \n" +
		"  =====      ==========      ========== \n" +
		"     10             1.0            12.3 \n" +
		"      2          1234.6             0.0 \n"
	assert.Equal(t, want, got)

	// Lists are walked in the given order, not sorted.
	assert.Equal(t, []string{"kji", "ijk", "kji", "ijk"}, calls)
}

func TestRenderIntegers(t *testing.T) {
	got := Render("SUMS:", []string{"ijk"}, []int{2}, func(int, string) int32 { return 134 })
	want := "\n\nSUMS:\n\n" +
		"      N             ijk \n" +
		"  =====      ========== \n" +
		"      2             134 \n"
	assert.Equal(t, want, got)
}

func TestRenderEmpty(t *testing.T) {
	got := Render("SUMS:", nil, nil, func(int, string) int64 {
		t.Fatal("accessor must not be called")
		return 0
	})
	assert.Equal(t, "\n\nSUMS:\n\n      N \n  ===== \n", got)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3.0", FormatValue(float32(3)))
	assert.Equal(t, "-0.5", FormatValue(-0.46))
	assert.Equal(t, "-7", FormatValue(int32(-7)))
	assert.Equal(t, "9223372036854775807", FormatValue(int64(1<<63-1)))
	assert.Equal(t, "255", FormatValue(uint8(255)))
}

func TestRenderStyled(t *testing.T) {
	got := RenderStyled("SUMS:", []string{"ijk", "kij"}, []int{100, 200}, func(size int, order string) int32 {
		return int32(size) + int32(len(order))
	})
	require.NotEmpty(t, got)
	for _, s := range []string{"SUMS:", "N", "ijk", "kij", "100", "103", "200", "203"} {
		assert.True(t, strings.Contains(got, s), "missing %q in:\n%s", s, got)
	}
}
