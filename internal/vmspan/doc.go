// Package vmspan
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// vmspan is the one place in the module that manipulates the address
// space directly. It reserves a contiguous range of twice the requested
// capacity, maps one shared backing object into the first half, then
// maps the same object again into the second half at the fixed,
// adjoining address. Byte i and byte i+capacity of the resulting span
// alias the same storage.
//
// Everything above this package is safe Go over the []byte view the
// span exposes.
package vmspan
