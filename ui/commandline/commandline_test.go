// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package commandline

import (
	"bytes"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/gomlx/loopbench/pkg/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var sizes IntList
	var orders StringList
	fs.Var(&sizes, "sizes", "")
	fs.Var(&orders, "traversals", "")
	assert.False(t, sizes.IsSet())

	require.NoError(t, fs.Parse([]string{"-sizes=100,200", "-sizes", "1_000 3", "-traversals=ijk, kji", "-traversals=xyz"}))
	assert.True(t, sizes.IsSet())
	assert.True(t, orders.IsSet())
	assert.Equal(t, []int{100, 200, 1000, 3}, sizes.Values)
	assert.Equal(t, []string{"ijk", "kji", "xyz"}, orders.Values)
	assert.Equal(t, "100,200,1000,3", sizes.String())
	assert.Equal(t, "ijk,kji,xyz", orders.String())

	var bad IntList
	require.Error(t, bad.Set("10,abc"))

	var nilList *IntList
	assert.Equal(t, "", nilList.String())
}

func TestConditional(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, io.Discard, Conditional(&buf, false))
	w := Conditional(&buf, true)
	_, _ = w.Write([]byte("hello"))
	assert.Equal(t, "hello", buf.String())
}

func TestReportPair(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ReportPair(&buf, 246.8, int32(134)))
	assert.Equal(t, "-- BEGIN OUTPUT --\nTime (us) = 246.8\nSum       = 134\n-- END OUTPUT --\n", buf.String())

	buf.Reset()
	require.NoError(t, ReportPair(&buf, 1234567.0/7.0, int64(5)))
	assert.Contains(t, buf.String(), "Time (us) = 176367\n")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.23ms", FormatDuration(1234567*time.Nanosecond))
	assert.Equal(t, "1m30s", FormatDuration(90*time.Second))
	assert.Equal(t, "2.50µs", FormatMicros(2.5))
}

func TestProgressPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress[int32](&buf, 2)
	p.Started(bench.Key{Size: 100, Order: "ijk"})
	p.Finished(bench.Key{Size: 100, Order: "ijk"}, bench.Result[int32]{})
	p.Started(bench.Key{Size: 100, Order: "kji"})
	p.Close()
	p.Close()
	assert.Equal(t, "Trials for 100 with order ijk    \rTrials for 100 with order kji    \r", buf.String())
}
