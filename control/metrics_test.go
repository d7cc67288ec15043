// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// metrics_test.go — counter registry behavior.
package control

import (
	"sync"
	"testing"
)

// TestMetricsRegistry_Counters exercises Add/Set/Snapshot.
func TestMetricsRegistry_Counters(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Add("relay.bytes", 100)
	mr.Add("relay.bytes", 28)
	mr.Set("ring.capacity", 4096)

	snap := mr.Snapshot()
	if snap["relay.bytes"] != 128 || snap["ring.capacity"] != 4096 {
		t.Errorf("snapshot %v", snap)
	}
	if mr.Updated().IsZero() {
		t.Error("updated timestamp never set")
	}

	// Snapshot is a copy, not a view.
	snap["relay.bytes"] = 0
	if mr.Snapshot()["relay.bytes"] != 128 {
		t.Error("snapshot aliases registry storage")
	}
}

// TestMetricsRegistry_Concurrent hammers the registry from several
// goroutines; the race detector is the real assertion here.
func TestMetricsRegistry_Concurrent(t *testing.T) {
	mr := NewMetricsRegistry()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				mr.Add("hits", 1)
			}
		}()
	}
	wg.Wait()
	if got := mr.Snapshot()["hits"]; got != 8000 {
		t.Errorf("hits = %d, want 8000", got)
	}
}
