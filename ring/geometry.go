// File: ring/geometry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Geometry validation: page-count exponent -> byte capacity, bounded
// by the cursor width.

package ring

import (
	"math/bits"

	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/internal/vmspan"
)

// cursorBits returns the bit width of cursor type C (16 or 32).
func cursorBits[C api.Cursor]() uint {
	return uint(bits.Len64(uint64(^C(0))))
}

// MaxLgPages returns the largest valid page-count exponent for cursor
// width C on this system, or -1 if no capacity fits at all. For 4 KiB
// pages this is 3 for the narrow family and 19 for the wide one.
func MaxLgPages[C api.Cursor]() int {
	m := int(cursorBits[C]()) - 1 - int(vmspan.LgPageSize())
	if m < 0 {
		return -1
	}
	return m
}

// capacityFor computes 2^(lgPages + log2(pagesize)) as a C, reserving
// the top bit so the power of two itself stays representable.
func capacityFor[C api.Cursor](lgPages uint8) (C, error) {
	lgPageSize := vmspan.LgPageSize()
	if uint(lgPages)+lgPageSize > cursorBits[C]()-1 {
		return 0, api.ErrCapacityRange
	}
	return C(1) << (uint(lgPages) + lgPageSize), nil
}
