// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix implements the dense square matrix used by the loop-order benchmarks.
//
// A Dense matrix stores its N×N elements in one contiguous slice, in row-major order.
// Dimension mismatches are bugs in the caller and panic with exceptions.Panicf.
package matrix

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Scalar is the constraint on the element type of a matrix.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dense is a square N×N matrix of T, row-major.
type Dense[T Scalar] struct {
	n    int
	data []T
}

// New returns a zeroed n×n matrix. n == 0 is valid and yields an empty matrix.
func New[T Scalar](n int) *Dense[T] {
	if n < 0 {
		exceptions.Panicf("matrix.New(%d): size must be >= 0", n)
	}
	return &Dense[T]{n: n, data: make([]T, n*n)}
}

// FromRows builds a matrix from a square list of rows. The values are copied.
func FromRows[T Scalar](rows [][]T) *Dense[T] {
	n := len(rows)
	m := New[T](n)
	for ii, row := range rows {
		if len(row) != n {
			exceptions.Panicf("matrix.FromRows: row %d has %d elements, wanted %d for a square matrix", ii, len(row), n)
		}
		copy(m.data[ii*n:(ii+1)*n], row)
	}
	return m
}

// Size returns N.
func (m *Dense[T]) Size() int { return m.n }

// NumElements returns N*N.
func (m *Dense[T]) NumElements() int { return len(m.data) }

// Data returns the underlying row-major storage. It is not a copy.
func (m *Dense[T]) Data() []T { return m.data }

// At returns the element at row, col.
func (m *Dense[T]) At(row, col int) T {
	m.checkIndex(row, col)
	return m.data[row*m.n+col]
}

// Set the element at row, col.
func (m *Dense[T]) Set(row, col int, value T) {
	m.checkIndex(row, col)
	m.data[row*m.n+col] = value
}

func (m *Dense[T]) checkIndex(row, col int) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		exceptions.Panicf("matrix index (%d, %d) out-of-bounds for size %d", row, col, m.n)
	}
}

// Zero resets every element to 0, keeping the allocated storage.
func (m *Dense[T]) Zero() {
	clear(m.data)
}

// Fill sets the elements, in row-major order, with successive values returned by gen.
func (m *Dense[T]) Fill(gen func() T) {
	for ii := range m.data {
		m.data[ii] = gen()
	}
}

// Rows returns a copy of the matrix as a list of rows.
func (m *Dense[T]) Rows() [][]T {
	rows := make([][]T, m.n)
	for ii := range rows {
		rows[ii] = make([]T, m.n)
		copy(rows[ii], m.data[ii*m.n:(ii+1)*m.n])
	}
	return rows
}

// Equal returns whether both matrices have the same size and elements.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m.n != other.n {
		return false
	}
	for ii, v := range m.data {
		if other.data[ii] != v {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer. Only meant for small matrices.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Dense[%dx%d]{", m.n, m.n)
	for ii := 0; ii < m.n; ii++ {
		if ii > 0 {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%v", m.data[ii*m.n:(ii+1)*m.n])
	}
	sb.WriteString("}")
	return sb.String()
}
