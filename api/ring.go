// Package api
// Author: momentics <momentics@gmail.com>
//
// Mirror ring contract: a fixed-capacity circular byte buffer whose
// backing pages are mapped twice, back to back, so every window it
// hands out is contiguous regardless of wraparound.

package api

// Cursor is the set of unsigned widths a ring's counters may use.
// The width bounds the maximum capacity: the top bit is reserved so
// the power-of-two capacity itself stays representable.
type Cursor interface {
	~uint16 | ~uint32
}

// IONone is the "no bytes transferred" commit sentinel. It mirrors the
// -1 of a failed read(2)/write(2): committing it leaves the cursors
// untouched and passes the value back so the caller's error path can
// continue uninterrupted.
const IONone int64 = -1

// Ring is the single-owner mirror ring surface.
//
// Queries are pure and never fail on a live ring. Windows are slices
// of the primary mapping; a window stays valid until the next commit
// or Close. Commits follow the IONone-or-count convention and return
// their argument unchanged.
//
// No method is safe for concurrent use. Callers that need sharing must
// wrap the whole ring in external mutual exclusion.
type Ring[C Cursor] interface {
	// Capacity returns the fixed power-of-two byte capacity.
	Capacity() C
	// Count returns the bytes currently held.
	Count() C
	// Free returns the bytes of unused space.
	Free() C
	// IsFull reports Count == Capacity.
	IsFull() bool
	// IsEmpty reports Count == 0.
	IsEmpty() bool

	// Writable returns the contiguous free-space window to fill with
	// newly produced bytes, or nil when the ring is full.
	Writable() []byte
	// Readable returns the contiguous data window to drain, or nil
	// when the ring is empty.
	Readable() []byte

	// CommitWrite records n bytes as produced; IONone is a no-op.
	CommitWrite(n int64) int64
	// CommitRead records n bytes as consumed; IONone is a no-op.
	CommitRead(n int64) int64

	// Close unmaps both views and releases the ring.
	Close() error
}
