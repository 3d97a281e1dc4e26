// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"
)

// HeightValue pairs a value with the block height from which it applies.
type HeightValue struct {
	Height int32
	Value  int64
}

// HeightTable is a step function over block heights.  Each entry holds from
// its activation height until the next higher activation height supersedes
// it.  Entries must be ordered by strictly increasing height and the table
// must not be empty.
type HeightTable []HeightValue

// Lookup returns the value of the entry with the largest activation height
// that is less than or equal to the passed height.  Heights below the first
// entry are clamped to the first entry, so a valid table always yields a
// value.
func (t HeightTable) Lookup(height int32) int64 {
	// Find the first entry that activates after the passed height.  The
	// entry just before it is the one in effect.
	idx := sort.Search(len(t), func(i int) bool {
		return t[i].Height > height
	})
	if idx == 0 {
		return t[0].Value
	}
	return t[idx-1].Value
}

// validate ensures the table is non-empty with strictly increasing heights.
func (t HeightTable) validate(name string) error {
	if len(t) == 0 {
		str := fmt.Sprintf("height table %s is empty", name)
		return contextError(ErrInvalidParams, str)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Height <= t[i-1].Height {
			str := fmt.Sprintf("height table %s is not strictly increasing "+
				"at index %d (height %d follows %d)", name, i, t[i].Height,
				t[i-1].Height)
			return contextError(ErrInvalidParams, str)
		}
	}
	return nil
}
