//go:build unix && !linux

// File: internal/vmspan/vmspan_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vmspan

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// backingFD allocates the shared backing object as an unlinked temp
// file. Nothing as convenient as memfd exists portably across the
// BSDs and darwin; an unlinked file is equivalent once both mappings
// hold it.
func backingFD(capacity int) (int, error) {
	f, err := os.CreateTemp("", "mmring-*")
	if err != nil {
		return -1, fmt.Errorf("create backing file: %w", err)
	}
	name := f.Name()
	_ = os.Remove(name)
	if err := f.Truncate(int64(capacity)); err != nil {
		_ = f.Close()
		return -1, fmt.Errorf("truncate backing file: %w", err)
	}
	// Dup out of the *os.File so its finalizer cannot close the fd
	// behind our back.
	fd, err := unix.Dup(int(f.Fd()))
	_ = f.Close()
	if err != nil {
		return -1, fmt.Errorf("dup backing fd: %w", err)
	}
	return fd, nil
}
