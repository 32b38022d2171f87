// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package commandline

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// splitList splits a flag value on commas and white space, dropping empty entries.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// IntList is a flag.Value holding a list of integers.
//
// Values can be separated by commas or spaces, and the flag can be repeated: "-sizes=100,200 -sizes=300".
// Underscores are ignored, so "1_000" is accepted.
type IntList struct {
	Values []int
	isSet  bool
}

var _ flag.Value = (*IntList)(nil)

// String implements flag.Value.
func (l *IntList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(l.Values))
	for ii, v := range l.Values {
		parts[ii] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. It appends to the values already set.
func (l *IntList) Set(value string) error {
	for _, part := range splitList(value) {
		v, err := strconv.Atoi(strings.ReplaceAll(part, "_", ""))
		if err != nil {
			return errors.Wrapf(err, "failed to parse %q as an integer in list %q", part, value)
		}
		l.Values = append(l.Values, v)
	}
	l.isSet = true
	return nil
}

// IsSet returns whether the flag was given in the command line.
func (l *IntList) IsSet() bool { return l.isSet }

// StringList is a flag.Value holding a list of strings, with the same syntax as IntList.
type StringList struct {
	Values []string
	isSet  bool
}

var _ flag.Value = (*StringList)(nil)

// String implements flag.Value.
func (l *StringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.Values, ",")
}

// Set implements flag.Value. It appends to the values already set.
func (l *StringList) Set(value string) error {
	l.Values = append(l.Values, splitList(value)...)
	l.isSet = true
	return nil
}

// IsSet returns whether the flag was given in the command line.
func (l *StringList) IsSet() bool { return l.isSet }
