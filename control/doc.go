// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration and runtime metrics for tools built on the ring:
// YAML-backed settings validated against the ring geometry rules, and
// a thread-safe counter registry.
package control
