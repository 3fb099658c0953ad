// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// default_test.go — Process-wide provider shortcuts.
package pool_test

import (
	"sync"
	"testing"

	"github.com/momentics/disposepool/pool"
)

// TestDefault_SingleInstance checks that concurrent first callers all
// observe the same provider.
func TestDefault_SingleInstance(t *testing.T) {
	const callers = 16
	providers := make([]*pool.DisposedBytesProvider, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			providers[i] = pool.Default()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if providers[i] != providers[0] {
			t.Fatalf("caller %d observed a different provider", i)
		}
	}
}

// TestDefault_PackageShortcuts exercises the package-level round trip
// against the shared provider.
func TestDefault_PackageShortcuts(t *testing.T) {
	h, err := pool.Acquire(96, true)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if h.IsDisposed() {
		t.Fatal("fresh handle reported disposed")
	}
	buf, err := h.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("zeroed acquisition dirty at %d", i)
		}
	}
	h.Dispose()

	wrapped := pool.Wrap(make([]byte, 96))
	if wrapped.Capacity() != 96 {
		t.Errorf("wrapped capacity %d, want 96", wrapped.Capacity())
	}
	pool.DisposeBytes(make([]byte, 96))
}
