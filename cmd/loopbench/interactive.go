// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// readPair prompts on w and reads from r a single size and loop-order label.
func readPair(r io.Reader, w io.Writer) (size int, order string, err error) {
	in := bufio.NewReader(r)
	_, _ = fmt.Fprintln(w, "-- BEGIN INPUT --")
	_, _ = fmt.Fprint(w, "N     ==> ")
	if _, err = fmt.Fscan(in, &size); err != nil {
		err = errors.Wrap(err, "failed to read matrix size")
		return
	}
	_, _ = fmt.Fprint(w, "Order ==> ")
	if _, err = fmt.Fscan(in, &order); err != nil {
		err = errors.Wrap(err, "failed to read loop order")
		return
	}
	_, _ = fmt.Fprintln(w, "-- END INPUT --")
	return
}
