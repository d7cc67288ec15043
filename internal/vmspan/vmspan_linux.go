//go:build linux

// File: internal/vmspan/vmspan_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vmspan

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// backingFD allocates the anonymous shared backing object via memfd.
// The name is only a debugging aid; it appears in /proc/pid/fd.
func backingFD(capacity int) (int, error) {
	fd, err := unix.MemfdCreate("mmring", unix.MFD_CLOEXEC)
	if err != nil {
		return -1, fmt.Errorf("memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(capacity)); err != nil {
		_ = unix.Close(fd)
		return -1, fmt.Errorf("ftruncate backing object: %w", err)
	}
	return fd, nil
}
