//go:build !ringdebug

// File: ring/debug_off.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// debugChecks gates the invariant assertions. Release builds compile
// them out entirely; build with -tags ringdebug to enable.
const debugChecks = false
