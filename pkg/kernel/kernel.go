// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package kernel implements the triple-nested matrix multiplication, for any loop order.
package kernel

import (
	"time"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/loopbench/pkg/core/matrix"
	"github.com/gomlx/loopbench/pkg/looporder"
)

// Func multiplies a and b, accumulating into c, and returns the elapsed time in microseconds.
type Func[T matrix.Scalar] func(a, b, c *matrix.Dense[T]) int64

// For returns a Func bound to the given loop order.
func For[T matrix.Scalar](order looporder.Order) Func[T] {
	if !order.IsValid() {
		exceptions.Panicf("kernel.For: invalid loop order")
	}
	return func(a, b, c *matrix.Dense[T]) int64 {
		return Multiply(a, b, c, order)
	}
}

// strides holds, for each loop depth, how much the flat offsets into A, B and C advance
// when the loop counter at that depth is incremented.
type strides struct {
	a, b, c [looporder.NumLoops]int
}

func newStrides(order looporder.Order, n int) (s strides) {
	row := order.Position(looporder.Row)
	s.a[row], s.c[row] = n, n
	col := order.Position(looporder.Col)
	s.b[col], s.c[col] = 1, 1
	red := order.Position(looporder.Reduction)
	s.a[red], s.b[red] = 1, n
	return
}

// Multiply accumulates C[row][col] += A[row][red] * B[red][col] over every (row, col, red),
// nesting the loops in the given order. c is expected to be zeroed by the caller.
//
// It returns the wall-clock time spent in the loops only, in microseconds, truncated.
// Accumulation uses T with no overflow protection.
func Multiply[T matrix.Scalar](a, b, c *matrix.Dense[T], order looporder.Order) int64 {
	n := a.Size()
	if b.Size() != n || c.Size() != n {
		exceptions.Panicf("kernel.Multiply: mismatched sizes A=%d, B=%d, C=%d", n, b.Size(), c.Size())
	}
	if !order.IsValid() {
		exceptions.Panicf("kernel.Multiply: invalid loop order")
	}
	s := newStrides(order, n)
	aData, bData, cData := a.Data(), b.Data(), c.Data()

	start := time.Now()
	var a0, b0, c0 int
	for x := 0; x < n; x++ {
		a1, b1, c1 := a0, b0, c0
		for y := 0; y < n; y++ {
			a2, b2, c2 := a1, b1, c1
			for z := 0; z < n; z++ {
				cData[c2] += aData[a2] * bData[b2]
				a2 += s.a[2]
				b2 += s.b[2]
				c2 += s.c[2]
			}
			a1 += s.a[1]
			b1 += s.b[1]
			c1 += s.c[1]
		}
		a0 += s.a[0]
		b0 += s.b[0]
		c0 += s.c[0]
	}
	return time.Since(start).Microseconds()
}

// Reference returns A×B computed with the textbook dot-product loop, into a new matrix.
// It is used to verify the results of Multiply.
func Reference[T matrix.Scalar](a, b *matrix.Dense[T]) *matrix.Dense[T] {
	n := a.Size()
	if b.Size() != n {
		exceptions.Panicf("kernel.Reference: mismatched sizes A=%d, B=%d", n, b.Size())
	}
	c := matrix.New[T](n)
	aData, bData, cData := a.Data(), b.Data(), c.Data()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var sum T
			for red := 0; red < n; red++ {
				sum += aData[row*n+red] * bData[red*n+col]
			}
			cData[row*n+col] = sum
		}
	}
	return c
}
