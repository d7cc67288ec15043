//go:build unix

// File: internal/vmspan/vmspan_mmap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-map construction for unix platforms. The backing object comes
// from the platform-specific backingFD (memfd on Linux, an unlinked
// temp file elsewhere); the mapping protocol is shared.

package vmspan

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map builds a doubled mapping of capacity bytes. Capacity must be a
// positive multiple of the page size. On any mid-step failure every
// completed step is unwound in reverse and the originating error is
// returned wrapped.
func Map(capacity int) (*Span, error) {
	if capacity <= 0 || capacity%PageSize() != 0 {
		return nil, fmt.Errorf("capacity %d is not a positive page multiple", capacity)
	}
	total := 2 * capacity
	if total < capacity {
		return nil, fmt.Errorf("capacity %d overflows the doubled mapping", capacity)
	}

	// Reserve the full doubled range first so both fixed maps land at
	// known, adjacent addresses. The reservation carries no access
	// rights; the fixed maps below replace it.
	base, err := unix.MmapPtr(-1, 0, nil, uintptr(total),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("reserve doubled range: %w", err)
	}

	fd, err := backingFD(capacity)
	if err != nil {
		_ = unix.MunmapPtr(base, uintptr(total))
		return nil, err
	}

	if _, err = unix.MmapPtr(fd, 0, base, uintptr(capacity),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		_ = unix.MunmapPtr(base, uintptr(total))
		_ = unix.Close(fd)
		return nil, fmt.Errorf("map primary view: %w", err)
	}

	// Same object again, at the address immediately past the primary.
	if _, err = unix.MmapPtr(fd, 0, unsafe.Add(base, capacity), uintptr(capacity),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED); err != nil {
		_ = unix.MunmapPtr(base, uintptr(total))
		_ = unix.Close(fd)
		return nil, fmt.Errorf("map shadow view: %w", err)
	}

	// The mappings keep the backing object alive from here on.
	_ = unix.Close(fd)

	return &Span{base: base, size: capacity}, nil
}

// Unmap tears down both views in one munmap of the doubled range.
func (s *Span) Unmap() error {
	if s.base == nil {
		return nil
	}
	err := unix.MunmapPtr(s.base, uintptr(2*s.size))
	s.base = nil
	s.size = 0
	return err
}
