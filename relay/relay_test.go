// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// relay_test.go — acquire/commit I/O loop over real rings.
package relay

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"syscall"
	"testing"
	"testing/iotest"

	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/ring"
)

// TestOutcome maps (n, err) results onto the commit convention.
func TestOutcome(t *testing.T) {
	cases := []struct {
		n    int
		err  error
		want int64
	}{
		{128, nil, 128},
		{5, io.EOF, 5},          // partial transfer with trailing EOF still commits
		{0, io.EOF, api.IONone}, // nothing moved
		{0, syscall.EAGAIN, api.IONone},
		{0, nil, 0}, // clean zero is a commit, not an error
	}
	for _, c := range cases {
		if got := Outcome(c.n, c.err); got != c.want {
			t.Errorf("Outcome(%d, %v) = %d, want %d", c.n, c.err, got, c.want)
		}
	}
}

// TestCopy_RoundTrip pushes several capacities worth of data through
// a narrow ring and checks it arrives intact and in order.
func TestCopy_RoundTrip(t *testing.T) {
	rb, err := ring.New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	src := make([]byte, 7*int(rb.Capacity())+13)
	rand.New(rand.NewSource(2)).Read(src)

	var dst bytes.Buffer
	n, err := Copy(&dst, bytes.NewReader(src), rb)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(src)) {
		t.Fatalf("Copy moved %d bytes, want %d", n, len(src))
	}
	if !bytes.Equal(dst.Bytes(), src) {
		t.Fatal("relayed data differs from source")
	}
	if !rb.IsEmpty() {
		t.Fatal("ring not drained after Copy")
	}
}

// TestCopy_DribblingReader: one-byte reads force maximal wraparound
// churn; the mirror mapping keeps every window contiguous regardless.
func TestCopy_DribblingReader(t *testing.T) {
	rb, err := ring.New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	src := make([]byte, 2*int(rb.Capacity())+1)
	for i := range src {
		src[i] = byte(i % 251)
	}

	var dst bytes.Buffer
	n, err := Copy(&dst, iotest.OneByteReader(bytes.NewReader(src)), rb)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(src)) || !bytes.Equal(dst.Bytes(), src) {
		t.Fatalf("dribbled relay corrupt: moved %d of %d", n, len(src))
	}
}

// failWriter fails after accepting a prefix.
type failWriter struct {
	accept int
	err    error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) <= w.accept {
		w.accept -= len(p)
		return len(p), nil
	}
	n := w.accept
	w.accept = 0
	return n, w.err
}

// TestCopy_WriterError: the partial write is committed and counted,
// then the writer's error surfaces.
func TestCopy_WriterError(t *testing.T) {
	rb, err := ring.New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	sinkErr := errors.New("sink full")
	src := make([]byte, int(rb.Capacity()))
	n, err := Copy(&failWriter{accept: 100, err: sinkErr}, bytes.NewReader(src), rb)
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if n != 100 {
		t.Fatalf("counted %d bytes, want the 100 that landed", n)
	}
}

// TestCopy_ReaderError: bytes already buffered still drain before the
// read error is reported.
func TestCopy_ReaderError(t *testing.T) {
	rb, err := ring.New[uint16](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	srcErr := errors.New("source torn down")
	payload := []byte("still makes it through")
	src := io.MultiReader(bytes.NewReader(payload), iotest.ErrReader(srcErr))

	var dst bytes.Buffer
	n, err := Copy(&dst, src, rb)
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected source error, got %v", err)
	}
	if n != int64(len(payload)) || !bytes.Equal(dst.Bytes(), payload) {
		t.Fatalf("buffered payload lost: moved %d", n)
	}
}
