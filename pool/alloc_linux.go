//go:build linux

// File: pool/alloc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux page-backed allocator using anonymous private mappings.

package pool

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/disposepool/api"
)

// mmapAllocator maps large regions outside the Go heap so eviction
// returns their pages to the OS immediately instead of waiting on the
// garbage collector. It remembers its own mappings, keyed by the first
// byte, so Free on foreign memory (heap-served or externally wrapped)
// falls through harmlessly.
type mmapAllocator struct {
	threshold int
	mu        sync.Mutex
	regions   map[*byte][]byte
}

func newSystemAllocator(threshold int) api.Allocator {
	return &mmapAllocator{
		threshold: threshold,
		regions:   make(map[*byte][]byte),
	}
}

func (a *mmapAllocator) Alloc(size int) ([]byte, error) {
	if size < 1 {
		return nil, errInvalidSize(size)
	}
	if size < a.threshold {
		return make([]byte, size), nil
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailure, "mmap failed").
			WithContext("size", size).
			WithContext("cause", err.Error())
	}
	a.mu.Lock()
	a.regions[&buf[0]] = buf
	a.mu.Unlock()
	return buf, nil
}

func (a *mmapAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	a.mu.Lock()
	region, ok := a.regions[&buf[0]]
	if ok {
		delete(a.regions, &buf[0])
	}
	a.mu.Unlock()
	if ok {
		// Unmap the original mapping, not the possibly re-sliced view.
		_ = unix.Munmap(region)
	}
}
