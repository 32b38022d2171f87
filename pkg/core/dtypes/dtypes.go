// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes enumerates the scalar types a benchmark run can be configured with.
//
// Only one scalar type is used per run: the matrices, the accumulation and the checksum
// all share it, so overflow follows that type's native Go semantics.
package dtypes

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DType is an enum of the supported matrix element types.
type DType int32

const (
	// InvalidDType is the zero value, and is never a valid run configuration.
	InvalidDType DType = iota

	// Int32 is the default: it matches a C `int`, including its wrap-around on overflow.
	Int32
	Int64
	Float32
	Float64
)

// Default scalar type used when none is configured.
const Default = Int32

// Supported lists every valid DType, in enum order.
var Supported = []DType{Int32, Int64, Float32, Float64}

var dtypeNames = map[DType]string{
	InvalidDType: "InvalidDType",
	Int32:        "Int32",
	Int64:        "Int64",
	Float32:      "Float32",
	Float64:      "Float64",
}

// MapOfNames maps the lower-case name and common aliases to the DType.
var MapOfNames = map[string]DType{
	"int32":   Int32,
	"i32":     Int32,
	"int":     Int32,
	"int64":   Int64,
	"i64":     Int64,
	"float32": Float32,
	"f32":     Float32,
	"float64": Float64,
	"f64":     Float64,
	"double":  Float64,
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if name, found := dtypeNames[dtype]; found {
		return name
	}
	return fmt.Sprintf("DType(%d)", int32(dtype))
}

// FromString parses a dtype name, case-insensitive. It accepts the names in MapOfNames.
func FromString(name string) (DType, error) {
	dtype, found := MapOfNames[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return InvalidDType, errors.Errorf("unknown dtype %q, valid values are int32, int64, float32 or float64", name)
	}
	return dtype, nil
}

// FromGenericsType returns the DType for the Go type T, or InvalidDType if it is not supported.
func FromGenericsType[T any]() DType {
	var t T
	switch any(t).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return InvalidDType
}
