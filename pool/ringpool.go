// File: pool/ringpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Free-list pool of constructed rings. The pool itself is thread-safe;
// each ring handed out remains single-owner while it is out.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/ring"
)

// Stats is a snapshot of pool activity.
type Stats struct {
	Gets  int64 // rings handed out
	Puts  int64 // rings accepted back into the free list
	News  int64 // rings constructed because the free list was empty
	Drops int64 // rings closed instead of pooled (non-empty or pool closed)
}

// RingPool recycles rings of one fixed geometry.
type RingPool[C api.Cursor] struct {
	mu      sync.Mutex
	free    *queue.Queue
	lgPages uint8
	closed  bool
	stats   Stats
}

// NewRingPool builds a pool of rings with 2^lgPages pages each,
// preconstructing prealloc of them. Geometry errors and construction
// failures surface immediately; nothing is leaked on failure.
func NewRingPool[C api.Cursor](lgPages uint8, prealloc int) (*RingPool[C], error) {
	if ring.MaxLgPages[C]() < int(lgPages) {
		return nil, api.ErrCapacityRange
	}
	p := &RingPool[C]{
		free:    queue.New(),
		lgPages: lgPages,
	}
	for i := 0; i < prealloc; i++ {
		rb, err := ring.New[C](lgPages)
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		p.free.Add(rb)
	}
	return p, nil
}

// Get returns a live, empty ring: a recycled one when available,
// freshly constructed otherwise.
func (p *RingPool[C]) Get() (*ring.Ring[C], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, api.ErrPoolClosed
	}
	if p.free.Length() > 0 {
		rb := p.free.Remove().(*ring.Ring[C])
		p.stats.Gets++
		return rb, nil
	}
	rb, err := ring.New[C](p.lgPages)
	if err != nil {
		return nil, err
	}
	p.stats.News++
	p.stats.Gets++
	return rb, nil
}

// Put returns a ring to the pool. Cursors are monotonic, so a drained
// ring is reusable as-is; a ring that still holds data cannot be
// rewound and is closed instead.
func (p *RingPool[C]) Put(rb *ring.Ring[C]) {
	if rb == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || !rb.IsEmpty() {
		_ = rb.Close()
		p.stats.Drops++
		return
	}
	p.free.Add(rb)
	p.stats.Puts++
}

// Stats returns a snapshot of pool counters.
func (p *RingPool[C]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Close releases every pooled ring. Rings currently handed out stay
// live; returning them after Close closes them. The first unmap error
// is reported, the teardown still runs to completion.
func (p *RingPool[C]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var first error
	for p.free.Length() > 0 {
		rb := p.free.Remove().(*ring.Ring[C])
		if err := rb.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
