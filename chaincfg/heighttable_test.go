// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
)

// TestHeightTableLookup ensures lookups return the value of the entry with the
// largest activation height at or below the passed height.
func TestHeightTableLookup(t *testing.T) {
	t.Parallel()

	table := HeightTable{
		{Height: 100, Value: 1},
		{Height: 200, Value: 2},
		{Height: 300, Value: 3},
	}
	tests := []struct {
		name   string
		height int32
		want   int64
	}{
		{"genesis clamps to first", 0, 1},
		{"below first clamps to first", 99, 1},
		{"first activation", 100, 1},
		{"between first and second", 199, 1},
		{"second activation", 200, 2},
		{"between second and third", 250, 2},
		{"last activation", 300, 3},
		{"far above last", 1 << 30, 3},
		{"negative height", -1, 1},
	}
	for _, test := range tests {
		if got := table.Lookup(test.height); got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}

	single := HeightTable{{Height: 70000, Value: 42}}
	for _, height := range []int32{0, 69999, 70000, 80000} {
		if got := single.Lookup(height); got != 42 {
			t.Errorf("single entry at height %d: got %d, want 42", height,
				got)
		}
	}
}

// TestHeightTableValidate ensures malformed tables are rejected.
func TestHeightTableValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table HeightTable
		valid bool
	}{
		{"empty", nil, false},
		{"single", HeightTable{{Height: 0, Value: 1}}, true},
		{"increasing", HeightTable{{Height: 0}, {Height: 5}}, true},
		{"equal heights", HeightTable{{Height: 5}, {Height: 5}}, false},
		{"decreasing", HeightTable{{Height: 5}, {Height: 4}}, false},
	}
	for _, test := range tests {
		err := test.table.validate(test.name)
		if test.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
		}
		if !test.valid && !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%s: got %v, want %v", test.name, err,
				ErrInvalidParams)
		}
	}
}
