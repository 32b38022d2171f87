// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package looporder

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		label string
		roles [NumLoops]Role
	}{
		{"ijk", [NumLoops]Role{Row, Col, Reduction}},
		{"ikj", [NumLoops]Role{Row, Reduction, Col}},
		{"jik", [NumLoops]Role{Col, Row, Reduction}},
		{"jki", [NumLoops]Role{Col, Reduction, Row}},
		{"kij", [NumLoops]Role{Reduction, Row, Col}},
		{"kji", [NumLoops]Role{Reduction, Col, Row}},
	}
	for _, tc := range testCases {
		order := must.M1(Parse(tc.label))
		assert.Equal(t, tc.label, order.Label())
		assert.Equal(t, tc.label, order.String())
		assert.Equal(t, tc.roles, order.Roles(), "label %q", tc.label)
		assert.True(t, order.IsValid())
	}
}

func TestBijection(t *testing.T) {
	for _, order := range All() {
		var count [numRoles]int
		for pos, role := range order.Roles() {
			count[role]++
			assert.Equal(t, pos, order.Position(role))
			assert.Equal(t, order.Label()[pos], role.Letter())
		}
		assert.Equal(t, [numRoles]int{1, 1, 1}, count, "order %s", order)
	}
}

func TestInvalid(t *testing.T) {
	for _, label := range []string{"", "ij", "ijkk", "xyz", "iij", "kki", "IJK", "ij k", "jjj"} {
		_, err := Parse(label)
		require.Errorf(t, err, "label %q should be invalid", label)
		assert.Truef(t, errors.Is(err, ErrInvalidOrder), "label %q: %v", label, err)
		assert.Contains(t, err.Error(), label)
		assert.False(t, IsValid(label))
	}
	require.Panics(t, func() { MustParse("xyz") })
	assert.False(t, Order{}.IsValid())
	assert.Equal(t, "InvalidOrder", Order{}.String())
	require.Panics(t, func() { Order{}.Position(Col) })
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	got := make([]string, len(all))
	for ii, order := range all {
		got[ii] = order.Label()
	}
	assert.Equal(t, []string{"ijk", "ikj", "jik", "jki", "kij", "kji"}, got)
	assert.Equal(t, got, Labels())

	// Labels returns a copy.
	l := Labels()
	l[0] = "xyz"
	assert.Equal(t, "ijk", Labels()[0])
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "Row", Row.String())
	assert.Equal(t, "Reduction", Reduction.String())
	assert.Equal(t, "Role(7)", Role(7).String())
	assert.Equal(t, byte('k'), Reduction.Letter())
	assert.Equal(t, byte('?'), Role(7).Letter())
	assert.Equal(t, byte('?'), Role(-1).Letter())
}
