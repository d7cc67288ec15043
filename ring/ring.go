// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core cursor arithmetic and window accessors. produced and consumed
// only ever grow; their difference, taken in the cursor's own width,
// is the live byte count, so counter wraparound is harmless.

package ring

import (
	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/internal/vmspan"
)

// Ring is a fixed-capacity mirror-mapped byte buffer. The zero value
// is the released sentinel; construct with Init or New.
type Ring[C api.Cursor] struct {
	capacity C
	mask     C
	produced C // total bytes ever written into the ring
	consumed C // total bytes ever drained from the ring
	span     *vmspan.Span
	view     []byte // doubled view, len == 2*capacity
}

// Ring16 is the narrow cursor family (capacities up to 32 KiB on 4 KiB
// pages). Ring32 is the wide one and the usual choice.
type (
	Ring16 = Ring[uint16]
	Ring32 = Ring[uint32]
)

var _ api.Ring[uint32] = (*Ring32)(nil)
var _ api.Ring[uint16] = (*Ring16)(nil)

// Init constructs a ring of 2^lgPages pages into rb. rb is left
// completely untouched on any failure; on success it is replaced
// wholesale with the fully-formed ring. A previously live rb is not
// released first — Close it before reinitializing.
func Init[C api.Cursor](rb *Ring[C], lgPages uint8) error {
	if rb == nil {
		return api.ErrInvalidArgument
	}
	capacity, err := capacityFor[C](lgPages)
	if err != nil {
		return err
	}
	span, err := vmspan.Map(int(capacity))
	if err != nil {
		return err
	}
	*rb = Ring[C]{
		capacity: capacity,
		mask:     capacity - 1,
		span:     span,
		view:     span.Bytes(),
	}
	return nil
}

// New allocates and constructs a ring of 2^lgPages pages.
func New[C api.Cursor](lgPages uint8) (*Ring[C], error) {
	rb := new(Ring[C])
	if err := Init(rb, lgPages); err != nil {
		return nil, err
	}
	return rb, nil
}

// Close unmaps both views and overwrites the ring with the released
// sentinel. Windows handed out earlier are invalid from here on.
// Closing a nil ring fails with ErrInvalidArgument, a released or
// never-constructed one with ErrRingReleased; neither touches any
// mapping.
func (r *Ring[C]) Close() error {
	if r == nil {
		return api.ErrInvalidArgument
	}
	if r.capacity == 0 {
		return api.ErrRingReleased
	}
	err := r.span.Unmap()
	*r = Ring[C]{}
	return err
}

// Capacity returns the fixed byte capacity.
func (r *Ring[C]) Capacity() C {
	r.sanity()
	return r.capacity
}

// Count returns the bytes currently held in the ring.
func (r *Ring[C]) Count() C {
	r.sanity()
	n := r.produced - r.consumed
	if debugChecks && n > r.capacity {
		panic("ring: count exceeds capacity")
	}
	return n
}

// Free returns the bytes of unused space.
func (r *Ring[C]) Free() C {
	return r.capacity - r.Count()
}

// IsFull reports whether no free space remains.
func (r *Ring[C]) IsFull() bool {
	return r.Count() == r.capacity
}

// IsEmpty reports whether the ring holds no data.
func (r *Ring[C]) IsEmpty() bool {
	r.sanity()
	return r.produced == r.consumed
}

// Writable returns the free-space window: the contiguous span to fill
// with newly produced bytes (the target of an inbound read/recv).
// Returns nil when the ring is full.
func (r *Ring[C]) Writable() []byte {
	free := r.Free()
	if free == 0 {
		return nil
	}
	i := int(r.produced & r.mask)
	return r.view[i : i+int(free)]
}

// Readable returns the data window: the contiguous span holding every
// byte awaiting drain (the source of an outbound write/send). Returns
// nil when the ring is empty.
func (r *Ring[C]) Readable() []byte {
	count := r.Count()
	if count == 0 {
		return nil
	}
	i := int(r.consumed & r.mask)
	return r.view[i : i+int(count)]
}

// CommitWrite records the outcome of filling the Writable window.
// IONone passes through untouched; any other n (zero included) is
// added to the produced cursor and handed back. n must not exceed the
// capacity — that is a programmer error, not a recoverable one.
func (r *Ring[C]) CommitWrite(n int64) int64 {
	r.sanity()
	if n == api.IONone {
		return n
	}
	if debugChecks && (n < 0 || n > int64(r.capacity)) {
		panic("ring: write commit exceeds capacity")
	}
	r.produced += C(n)
	return n
}

// CommitRead records the outcome of draining the Readable window,
// with the same convention as CommitWrite, on the consumed cursor.
func (r *Ring[C]) CommitRead(n int64) int64 {
	r.sanity()
	if n == api.IONone {
		return n
	}
	if debugChecks && (n < 0 || n > int64(r.capacity)) {
		panic("ring: read commit exceeds capacity")
	}
	r.consumed += C(n)
	return n
}

// Peek reads the byte at idx through the primary view.
//
// Peek and Poke deliberately go through the two different views to
// prove they alias the same storage. Homage to Beagle Bros.
func (r *Ring[C]) Peek(idx C) byte {
	r.sanity()
	if debugChecks && idx&r.mask != idx {
		panic("ring: peek index out of range")
	}
	return r.view[int(idx&r.mask)]
}

// Poke writes the byte at idx through the shadow view.
func (r *Ring[C]) Poke(idx C, v byte) {
	r.sanity()
	if debugChecks && idx&r.mask != idx {
		panic("ring: poke index out of range")
	}
	r.view[int(idx&r.mask)+int(r.capacity)] = v
}

// sanity is the debug-build validity check: non-nil, live, and a
// power-of-two geometry. Compiled out unless the ringdebug tag is set.
func (r *Ring[C]) sanity() {
	if !debugChecks {
		return
	}
	if r == nil {
		panic("ring: nil ring")
	}
	if r.capacity == 0 || r.mask == 0 || r.capacity&r.mask != 0 {
		panic("ring: corrupt or released ring")
	}
}
