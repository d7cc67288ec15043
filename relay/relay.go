// File: relay/relay.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package relay

import (
	"io"

	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/ring"
)

// Outcome maps a syscall-style (n, err) result onto the ring commit
// convention: a positive count commits as-is (even alongside an error
// such as io.EOF), a failed transfer becomes the IONone no-op
// sentinel, and a clean zero commits as zero. Compose directly:
//
//	rb.CommitWrite(relay.Outcome(conn.Read(rb.Writable())))
func Outcome(n int, err error) int64 {
	if n > 0 {
		return int64(n)
	}
	if err != nil {
		return api.IONone
	}
	return 0
}

// Copy bridges src to dst through rb until src is exhausted and the
// ring is drained. It returns the bytes delivered to dst and the first
// hard error, after committing whatever did land. The ring must be
// live and owned by the caller; it is left empty on success.
func Copy[C api.Cursor](dst io.Writer, src io.Reader, rb *ring.Ring[C]) (int64, error) {
	var written int64
	var readErr error
	eof := false
	for {
		if !eof {
			if w := rb.Writable(); w != nil {
				n, err := src.Read(w)
				rb.CommitWrite(Outcome(n, err))
				switch {
				case err == io.EOF:
					eof = true
				case err != nil:
					readErr = err
					eof = true
				}
			}
		}
		d := rb.Readable()
		if d == nil {
			if eof {
				return written, readErr
			}
			continue
		}
		n, err := dst.Write(d)
		rb.CommitRead(Outcome(n, err))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
}
