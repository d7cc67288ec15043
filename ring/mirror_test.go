// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// mirror_test.go — proof that the two views alias one storage.
package ring

import "testing"

// TestMirror_PokeThenPeek writes every offset through the shadow view
// and observes it through the primary view.
func TestMirror_PokeThenPeek(t *testing.T) {
	rb, err := New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	capacity := rb.Capacity()
	for i := uint16(0); i < capacity; i++ {
		rb.Poke(i, byte(i*31+7))
	}
	for i := uint16(0); i < capacity; i++ {
		if got, want := rb.Peek(i), byte(i*31+7); got != want {
			t.Fatalf("offset %d: shadow wrote %#x, primary read %#x", i, want, got)
		}
	}
}

// TestMirror_WrappedWindow precesses the cursors so the write window
// physically crosses the end of the primary mapping, then proves the
// window is still one contiguous, correct span of full capacity.
func TestMirror_WrappedWindow(t *testing.T) {
	rb, err := New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	capacity := int(rb.Capacity())
	shift := capacity / 2

	// Move both cursors to mid-buffer.
	rb.CommitWrite(int64(shift))
	rb.CommitRead(int64(shift))

	w := rb.Writable()
	if len(w) != capacity {
		t.Fatalf("write window %d, want full capacity %d", len(w), capacity)
	}
	for i := range w {
		w[i] = byte(255 - i%251)
	}
	rb.CommitWrite(int64(capacity))

	d := rb.Readable()
	if len(d) != capacity {
		t.Fatalf("read window %d, want %d", len(d), capacity)
	}
	for i := range d {
		if d[i] != byte(255-i%251) {
			t.Fatalf("wrapped byte %d corrupted: got %#x", i, d[i])
		}
	}
	rb.CommitRead(int64(capacity))
}
