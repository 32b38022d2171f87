// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"

	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/pkg/errors"
)

// ErrNotFound is returned, wrapped, when looking up a pair that was never computed.
var ErrNotFound = errors.New("key not found")

// Key identifies one benchmarked (size, order) pair.
type Key struct {
	Size  int
	Order string
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return fmt.Sprintf("(N=%d, order=%s)", k.Size, k.Order)
}

// Results stores one Result per Key.
type Results[T matrix.Scalar] struct {
	entries map[Key]Result[T]
}

// NewResults returns an empty store.
func NewResults[T matrix.Scalar]() *Results[T] {
	return &Results[T]{entries: make(map[Key]Result[T])}
}

// Insert stores value for key. Inserting the same key again overwrites the previous value.
func (r *Results[T]) Insert(key Key, value Result[T]) {
	r.entries[key] = value
}

// Lookup returns the Result for key, or an error wrapping ErrNotFound.
func (r *Results[T]) Lookup(key Key) (Result[T], error) {
	value, found := r.entries[key]
	if !found {
		return Result[T]{}, errors.Wrapf(ErrNotFound, "no result for %s", key)
	}
	return value, nil
}

// MustLookup is like Lookup, but panics if key is not found.
func (r *Results[T]) MustLookup(key Key) Result[T] {
	value, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return value
}

// Len returns the number of stored results.
func (r *Results[T]) Len() int { return len(r.entries) }

// Times returns an accessor to the average times, in microseconds, to be used with report.Render.
func (r *Results[T]) Times() func(size int, order string) float64 {
	return func(size int, order string) float64 {
		return r.MustLookup(Key{Size: size, Order: order}).AvgMicros
	}
}

// Checksums returns an accessor to the checksums, to be used with report.Render.
func (r *Results[T]) Checksums() func(size int, order string) T {
	return func(size int, order string) T {
		return r.MustLookup(Key{Size: size, Order: order}).Checksum
	}
}
