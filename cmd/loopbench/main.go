// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// loopbench measures the time of a naive dense matrix multiplication under each of the six
// nestings of its i, j and k loops.
//
// With -sizes and -traversals (or -all) it sweeps every combination, printing the progress to
// stderr and two tables at the end: the average times in microseconds and the checksums.
// Without them, it reads a single size and loop order from the standard input and prints its
// result right away.
//
// Examples:
//
//	$ loopbench -all
//	$ loopbench -N=256,512 -t=ijk,ikj -iterations=3 -dtype=float64
//	$ echo "300 kij" | loopbench
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/loopbench/pkg/bench"
	"github.com/gomlx/loopbench/pkg/core/dtypes"
	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/gomlx/loopbench/pkg/looporder"
	"github.com/gomlx/loopbench/pkg/report"
	"github.com/gomlx/loopbench/ui/commandline"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	opts := registerFlags(flag.CommandLine)
	flag.Parse()
	opts.args = flag.Args()
	exitCode := run(opts, os.Stdin, os.Stdout, os.Stderr)
	klog.Flush()
	os.Exit(exitCode)
}

// fail writes the diagnostic to stderr, and the full error (with stack, if any) to the verbose log.
// It returns the failure exit code.
func fail(stderr io.Writer, err error, format string, args ...any) int {
	_, _ = fmt.Fprintf(stderr, format+"\n", args...)
	if err != nil {
		klog.V(1).Infof("%+v", err)
	}
	return 1
}

// run executes the benchmarks configured by opts and returns the process exit code.
// Diagnostics are written to stderr.
func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(opts.args) > 0 {
		return fail(stderr, nil, "unexpected arguments %q: separate list values with commas or quote them, "+
			"e.g. -N=100,200 -t=\"ijk ikj\"", opts.args)
	}
	dtype, err := dtypes.FromString(opts.dtype)
	if err != nil {
		return fail(stderr, err, "%v", err)
	}

	batch := opts.isBatch()
	cfg := bench.Config{
		Sizes:  opts.sizes.Values,
		Orders: opts.orders.Values,
		Trials: opts.trials,
		Seed:   opts.seed,
		Verify: opts.verify,
	}
	if opts.all {
		cfg.Sizes = bench.DefaultSizes()
		cfg.Orders = looporder.Labels()
	} else if !batch {
		size, order, err := readPair(stdin, stdout)
		if err != nil {
			return fail(stderr, err, "%v", err)
		}
		cfg.Sizes, cfg.Orders = []int{size}, []string{order}
	}
	if err := cfg.Validate(); err != nil {
		return fail(stderr, err, "invalid configuration: %v", err)
	}

	out := output{
		batch:  batch,
		pretty: opts.pretty,
		stdout: stdout,
		stderr: stderr,
	}
	switch dtype {
	case dtypes.Int32:
		err = runWith[int32](cfg, out)
	case dtypes.Int64:
		err = runWith[int64](cfg, out)
	case dtypes.Float32:
		err = runWith[float32](cfg, out)
	case dtypes.Float64:
		err = runWith[float64](cfg, out)
	default:
		err = errors.Errorf("dtype %s not supported", dtype)
	}
	if err != nil {
		if errors.Is(err, looporder.ErrInvalidOrder) {
			return fail(stderr, err, "invalid traversal provided: %s", firstInvalid(cfg.Orders))
		}
		return fail(stderr, err, "%v", err)
	}
	return 0
}

// firstInvalid returns the first label in orders that is not a valid loop order.
func firstInvalid(orders []string) string {
	for _, label := range orders {
		if !looporder.IsValid(label) {
			return label
		}
	}
	return ""
}

// output configures where and how results are printed.
type output struct {
	batch, pretty  bool
	stdout, stderr io.Writer
}

// pairPrinter prints each result as soon as it is computed.
type pairPrinter[T matrix.Scalar] struct {
	w io.Writer
}

func (p pairPrinter[T]) Started(bench.Key) {}

func (p pairPrinter[T]) Finished(_ bench.Key, result bench.Result[T]) {
	_ = commandline.ReportPair(p.w, result.AvgMicros, result.Checksum)
}

// pairLogger logs each result, with the human-readable average time, at verbosity level 1.
type pairLogger[T matrix.Scalar] struct{}

func (pairLogger[T]) Started(bench.Key) {}

func (pairLogger[T]) Finished(key bench.Key, result bench.Result[T]) {
	if klog.V(1).Enabled() {
		klog.Info(pairLogLine(key, result))
	}
}

// pairLogLine formats the log line of pairLogger.
func pairLogLine[T matrix.Scalar](key bench.Key, result bench.Result[T]) string {
	return fmt.Sprintf("%s N=%d (%s elements), order %s: %s per trial, checksum %v",
		dtypes.FromGenericsType[T](), key.Size, humanize.Comma(int64(key.Size)*int64(key.Size)), key.Order,
		commandline.FormatMicros(result.AvgMicros), result.Checksum)
}

// observers fans out notifications to several bench.Observer.
type observers[T matrix.Scalar] []bench.Observer[T]

func (obs observers[T]) Started(key bench.Key) {
	for _, o := range obs {
		o.Started(key)
	}
}

func (obs observers[T]) Finished(key bench.Key, result bench.Result[T]) {
	for _, o := range obs {
		o.Finished(key, result)
	}
}

// runWith runs the sweep with scalar type T and prints the results.
//
// In batch mode the progress goes to stderr and the tables are printed at the end; otherwise each
// pair's result is printed as soon as it is available.
func runWith[T matrix.Scalar](cfg bench.Config, out output) error {
	progress := commandline.NewProgress[T](commandline.Conditional(out.stderr, out.batch),
		len(cfg.Sizes)*len(cfg.Orders))
	results, err := bench.Run[T](cfg, observers[T]{
		progress,
		pairPrinter[T]{w: commandline.Conditional(out.stdout, !out.batch)},
		pairLogger[T]{},
	})
	progress.Close()
	if err != nil {
		return err
	}

	render := report.Render[float64]
	renderSums := report.Render[T]
	if out.pretty {
		render = report.RenderStyled[float64]
		renderSums = report.RenderStyled[T]
	}
	w := commandline.Conditional(out.stdout, out.batch)
	_, err = fmt.Fprintf(w, "Done!                                \n%s%s",
		render("TIMES (MICROSECONDS):", cfg.Orders, cfg.Sizes, results.Times()),
		renderSums("SUMS:", cfg.Orders, cfg.Sizes, results.Checksums()))
	return errors.WithStack(err)
}
