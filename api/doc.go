// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the mmring library: the cursor width constraint,
// the mirror ring interface, commit conventions and error kinds.
// Implementations live in the ring package; this package holds only
// types shared across the module.
package api
