//go:build linux

// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// alloc_linux_test.go — mmap allocator specifics.
package pool_test

import (
	"testing"

	"github.com/momentics/disposepool/pool"
)

// TestMmapAllocator_LargeRegionRoundTrip maps, writes and unmaps a
// page-backed region.
func TestMmapAllocator_LargeRegionRoundTrip(t *testing.T) {
	a := pool.NewSystemAllocator(4096)

	buf, err := a.Alloc(1 << 20)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if len(buf) != 1<<20 {
		t.Fatalf("length %d, want %d", len(buf), 1<<20)
	}
	buf[0] = 0xAA
	buf[len(buf)-1] = 0xBB

	a.Free(buf)
	// Second Free of the same region must be ignored, not crash.
	a.Free(buf)
}

// TestMmapAllocator_ForeignMemoryIgnored makes sure eviction of wrapped
// external memory never unmaps pages the allocator does not own.
func TestMmapAllocator_ForeignMemoryIgnored(t *testing.T) {
	a := pool.NewSystemAllocator(4096)

	foreign := make([]byte, 8192)
	a.Free(foreign)
	if foreign[0] != 0 {
		t.Error("foreign memory touched by Free")
	}
}
