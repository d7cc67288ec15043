// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse of constructed mirror rings. Building a ring costs a backing
// object and two mmaps; a pool keeps drained rings alive and hands
// them back out instead of paying the construction again.
package pool
