//go:build windows

// File: pool/alloc_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows page-backed allocator using VirtualAlloc/VirtualFree.

package pool

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/disposepool/api"
)

// virtualAllocator mirrors the Linux mmap allocator: large regions come
// from committed pages and are released on eviction, smaller regions
// from the heap. Only addresses it allocated itself are ever freed.
type virtualAllocator struct {
	threshold int
	mu        sync.Mutex
	regions   map[uintptr]struct{}
}

func newSystemAllocator(threshold int) api.Allocator {
	return &virtualAllocator{
		threshold: threshold,
		regions:   make(map[uintptr]struct{}),
	}
}

func (a *virtualAllocator) Alloc(size int) ([]byte, error) {
	if size < 1 {
		return nil, errInvalidSize(size)
	}
	if size < a.threshold {
		return make([]byte, size), nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailure, "VirtualAlloc failed").
			WithContext("size", size).
			WithContext("cause", err.Error())
	}
	a.mu.Lock()
	a.regions[addr] = struct{}{}
	a.mu.Unlock()
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (a *virtualAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	a.mu.Lock()
	_, ok := a.regions[addr]
	if ok {
		delete(a.regions, addr)
	}
	a.mu.Unlock()
	if ok {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}
}
