// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package report renders benchmark results as aligned text tables: one row per matrix size,
// one column per loop order.
package report

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gomlx/loopbench/pkg/core/matrix"
)

// Layout of the plain tables.
const (
	HeadingWidth = 7
	DataWidth    = 15
	Precision    = 1

	headingRule = "====="
	dataRule    = "=========="
)

// Accessor returns the value of the cell for the given size and order.
type Accessor[V matrix.Scalar] func(size int, order string) V

// Render returns a table titled title, with a header row listing orders and one row per size.
//
// Cells are filled by calling value for every (size, order) combination, following the order
// of the given lists. Floating point values are printed with Precision fractional digits, and
// integer values as integers.
func Render[V matrix.Scalar](title string, orders []string, sizes []int, value Accessor[V]) string {
	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(title)
	sb.WriteString("\n\n")

	_, _ = fmt.Fprintf(&sb, "%*s ", HeadingWidth, "N")
	for _, order := range orders {
		_, _ = fmt.Fprintf(&sb, "%*s ", DataWidth, order)
	}
	sb.WriteByte('\n')

	_, _ = fmt.Fprintf(&sb, "%*s ", HeadingWidth, headingRule)
	for range orders {
		_, _ = fmt.Fprintf(&sb, "%*s ", DataWidth, dataRule)
	}
	sb.WriteByte('\n')

	for _, size := range sizes {
		_, _ = fmt.Fprintf(&sb, "%*d ", HeadingWidth, size)
		for _, order := range orders {
			_, _ = fmt.Fprintf(&sb, "%*s ", DataWidth, FormatValue(value(size, order)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatValue formats one cell: fixed with Precision digits for floats, as an integer otherwise.
func FormatValue[V matrix.Scalar](v V) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', Precision, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}
