// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error kinds for the mmring library.

package api

import "fmt"

// Error kinds returned by ring construction and destruction. Resource
// errors from the OS mapping steps are not listed here: they propagate
// wrapped, with the originating errno reachable via errors.Is.
var (
	// ErrInvalidArgument reports a nil destination ring.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrCapacityRange reports a page-count exponent whose capacity
	// exceeds what the cursor width can represent.
	ErrCapacityRange = fmt.Errorf("capacity exceeds cursor range")
	// ErrRingReleased reports a destroy of a ring that is already
	// released or was never constructed.
	ErrRingReleased = fmt.Errorf("ring already released")
	// ErrNotSupported reports a platform without a double-map primitive.
	ErrNotSupported = fmt.Errorf("operation not supported")
	// ErrPoolClosed reports use of a closed ring pool.
	ErrPoolClosed = fmt.Errorf("ring pool is closed")
)
