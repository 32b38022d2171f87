// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package looporder resolves the loop-order labels of a triple-nested matrix multiplication.
//
// A label is a permutation of the letters "i", "j" and "k". The letter at position p of the
// label names the logical index iterated by the loop at nesting depth p (0 is the outermost):
//
//   - "i" is the Row index into A and C.
//   - "j" is the Col index into B and C.
//   - "k" is the Reduction index, shared by A's columns and B's rows.
//
// So "ikj" iterates rows in the outer loop, the reduction in the middle and columns in the
// inner loop. Every one of the six labels computes the same product.
package looporder

import (
	"fmt"

	"github.com/pkg/errors"
)

// Role is the logical index a loop counter plays in C[row][col] += A[row][red] * B[red][col].
type Role int

const (
	Row Role = iota
	Col
	Reduction
	numRoles
)

// NumLoops is the depth of the multiplication loop nest.
const NumLoops = int(numRoles)

var roleNames = [numRoles]string{"Row", "Col", "Reduction"}

// roleLetters maps each Role to its letter in a label.
var roleLetters = [numRoles]byte{'i', 'j', 'k'}

// String implements fmt.Stringer.
func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Letter returns the letter that names the Role in a label, or '?' for an invalid Role.
func (r Role) Letter() byte {
	if r < 0 || r >= numRoles {
		return '?'
	}
	return roleLetters[r]
}

// ErrInvalidOrder is returned, wrapped, for labels that are not a permutation of "ijk".
var ErrInvalidOrder = errors.New("invalid loop order")

// Order is a resolved loop-order label: which Role each loop position plays, outer to inner.
//
// The zero value is not a valid Order; use Parse.
type Order struct {
	label string
	roles [NumLoops]Role
}

// Parse resolves a label into an Order.
// It fails with an error wrapping ErrInvalidOrder if label is not one of the six permutations of "ijk".
func Parse(label string) (Order, error) {
	if len(label) != NumLoops {
		return Order{}, errors.Wrapf(ErrInvalidOrder, "label %q must have exactly %d letters", label, NumLoops)
	}
	order := Order{label: label}
	var seen [numRoles]bool
	for pos := range NumLoops {
		role, found := roleForLetter(label[pos])
		if !found {
			return Order{}, errors.Wrapf(ErrInvalidOrder, "label %q has letter %q, only 'i', 'j' and 'k' are valid",
				label, label[pos])
		}
		if seen[role] {
			return Order{}, errors.Wrapf(ErrInvalidOrder, "label %q repeats letter %q", label, label[pos])
		}
		seen[role] = true
		order.roles[pos] = role
	}
	return order, nil
}

func roleForLetter(letter byte) (Role, bool) {
	for role := Row; role < numRoles; role++ {
		if role.Letter() == letter {
			return role, true
		}
	}
	return 0, false
}

// MustParse is like Parse, but panics on invalid labels.
func MustParse(label string) Order {
	order, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return order
}

// IsValid returns whether label is one of the six permutations of "ijk".
func IsValid(label string) bool {
	_, err := Parse(label)
	return err == nil
}

// labels in lexicographic order.
var labels = []string{"ijk", "ikj", "jik", "jki", "kij", "kji"}

// Labels returns the six valid labels in lexicographic order.
func Labels() []string {
	return append([]string(nil), labels...)
}

// All returns the six Orders, in the lexicographic order of their labels.
func All() []Order {
	orders := make([]Order, len(labels))
	for ii, label := range labels {
		orders[ii] = MustParse(label)
	}
	return orders
}

// Label returns the label the Order was parsed from.
func (o Order) Label() string { return o.label }

// String implements fmt.Stringer.
func (o Order) String() string {
	if o.label == "" {
		return "InvalidOrder"
	}
	return o.label
}

// IsValid returns false for the zero Order.
func (o Order) IsValid() bool { return o.label != "" }

// Roles returns the Role of each loop, from the outermost to the innermost.
func (o Order) Roles() [NumLoops]Role { return o.roles }

// Position returns the loop depth (0 is outermost) that iterates the given role.
func (o Order) Position(role Role) int {
	for pos, r := range o.roles {
		if r == role {
			return pos
		}
	}
	panic(errors.Errorf("Order(%q).Position(%s): role not bound", o.label, role))
}
