// File: internal/vmspan/vmspan.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vmspan

import (
	"math/bits"
	"os"
	"unsafe"
)

// Span owns a doubled mapping: 2*size contiguous bytes of virtual
// address space whose two halves are views of the same size-byte
// backing object.
type Span struct {
	base unsafe.Pointer
	size int
}

// Size returns the capacity of one half.
func (s *Span) Size() int { return s.size }

// Bytes returns the full doubled view, length 2*Size. Offsets
// [0, Size) are the primary half; [Size, 2*Size) the shadow.
func (s *Span) Bytes() []byte {
	return unsafe.Slice((*byte)(s.base), 2*s.size)
}

// PageSize returns the system page size.
func PageSize() int { return os.Getpagesize() }

// LgPageSize returns the binary logarithm of the system page size.
// Page sizes are powers of two on every supported platform.
func LgPageSize() uint {
	return uint(bits.TrailingZeros(uint(os.Getpagesize())))
}
