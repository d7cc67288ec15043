//go:build !unix

// File: internal/vmspan/vmspan_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without a usable double-map primitive.

package vmspan

import "github.com/momentics/mmring/api"

// Map is unavailable: the doubled fixed-address mapping has no clean
// equivalent through the APIs x/sys exposes here.
func Map(capacity int) (*Span, error) {
	return nil, api.ErrNotSupported
}

// Unmap matches the unix signature so callers compile everywhere.
func (s *Span) Unmap() error {
	return api.ErrNotSupported
}
