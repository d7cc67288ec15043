//go:build ringdebug

// File: ring/debug_on.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

const debugChecks = true
