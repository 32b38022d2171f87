// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package commandline

import (
	"fmt"
	"io"
	"os"

	"github.com/gomlx/loopbench/pkg/bench"
	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
)

// ProgressbarStyle to use. Defaults to the ASCII version.
// Consider "progressbar.ThemeUnicode" for a prettier version.
// But it requires some of the graphical symbols to be supported.
var ProgressbarStyle = progressbar.ThemeASCII

// Progress is a bench.Observer that reports the sweep progress.
//
// If the writer is a terminal it displays a progress bar over all (size, order) pairs. Otherwise,
// it writes one "Trials for ..." line per pair, terminated by a carriage return so that each
// overwrites the previous one.
//
// Updates happen synchronously in the Observer callbacks, between kernel invocations.
type Progress[T matrix.Scalar] struct {
	w        io.Writer
	numPairs int
	bar      *progressbar.ProgressBar
	termenv  *termenv.Output
}

var _ bench.Observer[int32] = (*Progress[int32])(nil)

// isTerminal returns whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewProgress creates a Progress writing to w, for a sweep of numPairs (size, order) pairs.
func NewProgress[T matrix.Scalar](w io.Writer, numPairs int) *Progress[T] {
	p := &Progress[T]{w: w, numPairs: numPairs}
	if isTerminal(w) {
		p.termenv = termenv.NewOutput(w)
		p.termenv.HideCursor()
		p.bar = progressbar.NewOptions(numPairs,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Trials"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("pairs"),
			progressbar.OptionSetTheme(ProgressbarStyle),
			progressbar.OptionClearOnFinish(),
		)
	}
	return p
}

// Started implements bench.Observer.
func (p *Progress[T]) Started(key bench.Key) {
	if p.bar != nil {
		p.bar.Describe(fmt.Sprintf("Trials for %d with order %s", key.Size, key.Order))
		return
	}
	_, _ = fmt.Fprintf(p.w, "Trials for %d with order %s    \r", key.Size, key.Order)
}

// Finished implements bench.Observer.
func (p *Progress[T]) Finished(_ bench.Key, _ bench.Result[T]) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Close finishes the progress display and restores the terminal cursor.
// It is safe to call it more than once.
func (p *Progress[T]) Close() {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
	if p.termenv != nil {
		p.termenv.ShowCursor()
		p.termenv = nil
	}
}
