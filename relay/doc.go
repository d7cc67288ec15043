// Package relay
// Author: momentics <momentics@gmail.com>
//
// The caller-side I/O loop the ring core deliberately does not own.
// relay bridges a byte stream through a mirror ring with the
// acquire -> external I/O -> commit cycle, built strictly on the
// public ring surface. The core never blocks; all waiting happens in
// the reader and writer passed in here.
package relay
