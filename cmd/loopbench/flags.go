// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/gomlx/loopbench/pkg/bench"
	"github.com/gomlx/loopbench/pkg/core/dtypes"
	"github.com/gomlx/loopbench/pkg/looporder"
	"github.com/gomlx/loopbench/ui/commandline"
)

// options hold the parsed command-line flags.
type options struct {
	all    bool
	trials int
	seed   uint64
	sizes  commandline.IntList
	orders commandline.StringList
	dtype  string
	pretty bool
	verify bool

	// args are the positional arguments left after the flags. None are accepted.
	args []string
}

// registerFlags defines the flags, with their short aliases, in fs.
func registerFlags(fs *flag.FlagSet) *options {
	opts := &options{}
	alias := func(long, short string) {
		fs.Var(fs.Lookup(long).Value, short, fmt.Sprintf("Alias to -%s.", long))
	}

	fs.BoolVar(&opts.all, "all", false,
		"Evaluate the default dataset: sizes 100 to 500 in steps of 100, with all ijk permutations.")
	alias("all", "a")
	fs.IntVar(&opts.trials, "iterations", bench.DefaultTrials,
		"Number of trials per (size, order) pair. It must be >= 1.")
	alias("iterations", "i")
	fs.Uint64Var(&opts.seed, "seed", bench.DefaultSeed, "RNG seed for matrix generation.")
	alias("seed", "s")
	fs.Var(&opts.sizes, "sizes", "Sizes to evaluate, separated by commas or spaces. It can be repeated.")
	alias("sizes", "N")
	fs.Var(&opts.orders, "traversals",
		fmt.Sprintf("Traversals (loop orders) to evaluate, separated by commas or spaces. It can be repeated. "+
			"Valid values: %q.", looporder.Labels()))
	alias("traversals", "t")
	fs.StringVar(&opts.dtype, "dtype", strings.ToLower(dtypes.Default.String()), fmt.Sprintf("Scalar type of the matrices, one of %v.", dtypes.Supported))
	fs.BoolVar(&opts.pretty, "pretty", false, "Render the final tables with borders and colors.")
	fs.BoolVar(&opts.verify, "verify", false, "Verify every product against a reference multiplication.")
	return opts
}

// isBatch returns whether the sizes and orders come from the flags, as opposed to being read interactively.
func (opts *options) isBatch() bool {
	return opts.all || (opts.sizes.IsSet() && opts.orders.IsSet())
}
