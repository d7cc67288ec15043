// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mirror-mapped circular byte buffer. The backing pages are mapped
// twice, adjacent in virtual address space, so a logically wrapped
// region is always one contiguous span:
//
//	+---+---+---+---+---+---+---+---+
//	| A | B | C | D | A | B | C | D |
//	+---+---+---+---+---+---+---+---+
//	  primary         shadow
//
// Reading three bytes starting at C works because the walk past the
// physical end of the primary half lands in the shadow half, which
// aliases the same storage. Callers therefore never need readv/writev
// or any multi-segment I/O when bridging a byte stream through the
// buffer.
//
// Capacities are a power of two and a whole number of pages. Two
// cursor widths exist: Ring16 (narrow) and Ring32 (wide), identical in
// everything but the range of capacities they can represent.
//
// Rings are single-owner. See the api package for the full contract.
package ring
