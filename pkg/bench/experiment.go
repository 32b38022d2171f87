// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/gomlx/loopbench/pkg/kernel"
	"github.com/gomlx/loopbench/pkg/looporder"
	"github.com/pkg/errors"
)

const (
	// DefaultTrials is the number of trials per (size, order) pair, if not configured.
	DefaultTrials = 5

	// DefaultSeed for the input matrices generator.
	DefaultSeed = 0
)

// ErrMismatch is returned, wrapped, if Config.Verify is set and a loop order computes a wrong product.
var ErrMismatch = errors.New("product differs from reference")

// DefaultSizes returns the sizes of the default sweep: 100 to 500 in steps of 100.
func DefaultSizes() []int {
	return []int{100, 200, 300, 400, 500}
}

// Config of a benchmark sweep.
type Config struct {
	// Sizes of the square matrices, evaluated in the given order.
	Sizes []int

	// Orders are the loop-order labels evaluated for each size, in the given order.
	// They are only resolved when dispatched, see Run.
	Orders []string

	// Trials per (size, order) pair. Must be >= 1.
	Trials int

	// Seed of the input matrices generator.
	Seed uint64

	// Verify each product against kernel.Reference.
	Verify bool
}

// DefaultConfig returns the default sweep over DefaultSizes and all loop orders.
func DefaultConfig() Config {
	return Config{
		Sizes:  DefaultSizes(),
		Orders: looporder.Labels(),
		Trials: DefaultTrials,
		Seed:   DefaultSeed,
	}
}

// Validate the configuration. Order labels are not checked here: an invalid label is only
// reported when the sweep reaches it.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no matrix sizes configured")
	}
	if len(c.Orders) == 0 {
		return errors.New("no loop orders configured")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Errorf("invalid matrix size %d, it must be >= 0", n)
		}
	}
	if c.Trials < 1 {
		return errors.Wrapf(ErrInvalidTrials, "got %d trials", c.Trials)
	}
	return nil
}

// Observer is notified around each (size, order) pair of a sweep.
type Observer[T matrix.Scalar] interface {
	// Started is called before the trials of key are run.
	Started(key Key)

	// Finished is called after the result of key is stored.
	Finished(key Key, result Result[T])
}

// NopObserver ignores all notifications.
type NopObserver[T matrix.Scalar] struct{}

// Started implements Observer.
func (NopObserver[T]) Started(Key) {}

// Finished implements Observer.
func (NopObserver[T]) Finished(Key, Result[T]) {}

// Run the sweep described by cfg, using T as the scalar type.
//
// For each size, the input matrices A and B are drawn once and shared by every order, so that
// checksums are comparable across orders. A single generator seeded with cfg.Seed is used for
// the whole sweep.
//
// The sweep stops at the first invalid order label with an error wrapping
// looporder.ErrInvalidOrder: no trial is run and no result is stored for that pair. The results
// gathered so far are returned along with any error, but they are not a complete sweep.
func Run[T matrix.Scalar](cfg Config, obs Observer[T]) (*Results[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = NopObserver[T]{}
	}
	results := NewResults[T]()
	gen := matrix.NewGenerator(cfg.Seed)
	for _, n := range cfg.Sizes {
		a := matrix.Random[T](gen, n)
		b := matrix.Random[T](gen, n)
		c := matrix.New[T](n)
		var reference *matrix.Dense[T]
		for _, label := range cfg.Orders {
			key := Key{Size: n, Order: label}
			obs.Started(key)
			order, err := looporder.Parse(label)
			if err != nil {
				return results, errors.WithMessagef(err, "dispatching %s", key)
			}
			result, err := RunTrials(kernel.For[T](order), a, b, c, cfg.Trials)
			if err != nil {
				return results, errors.WithMessagef(err, "running %s", key)
			}
			if cfg.Verify {
				if reference == nil {
					reference = kernel.Reference(a, b)
				}
				if !reference.Equal(c) {
					return results, errors.Wrapf(ErrMismatch, "loop order %q for N=%d", label, n)
				}
			}
			results.Insert(key, result)
			obs.Finished(key, result)
		}
	}
	return results, nil
}
