// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package commandline contains convenience UI tools for running the loop-order benchmarks on the command line:
// list flags, progress reporting and conditional output.
package commandline

import (
	"fmt"
	"io"
)

// Conditional returns w if enabled, otherwise a writer that discards everything.
//
// It is used to select the outputs of the interactive and the batch modes without branching at every print.
func Conditional(w io.Writer, enabled bool) io.Writer {
	if !enabled {
		return io.Discard
	}
	return w
}

// ReportPair prints the result of a single (size, order) pair, as done in interactive mode.
func ReportPair(w io.Writer, avgMicros float64, checksum any) error {
	_, err := fmt.Fprintf(w, "-- BEGIN OUTPUT --\nTime (us) = %.6g\nSum       = %v\n-- END OUTPUT --\n",
		avgMicros, checksum)
	return err
}
