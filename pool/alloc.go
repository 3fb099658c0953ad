// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral allocator entry points. Concrete page-backed
// allocators are selected through platform-specific factories in
// alloc_linux.go, alloc_windows.go and alloc_stub.go.

package pool

import "github.com/momentics/disposepool/api"

// heapAllocator serves regions from the Go heap. Freshly made slices are
// already zeroed; Free is a no-op because the garbage collector reclaims
// evicted regions once no bucket references them.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 1 {
		return nil, errInvalidSize(size)
	}
	return make([]byte, size), nil
}

func errInvalidSize(size int) error {
	return api.NewError(api.ErrCodeInvalidArgument,
		"allocation size must be positive").WithContext("size", size)
}

func (heapAllocator) Free([]byte) {}

// NewHeapAllocator returns the default garbage-collected allocator.
func NewHeapAllocator() api.Allocator { return heapAllocator{} }

// DefaultSystemThreshold is the region size from which the system
// allocator switches from the heap to page-backed mappings.
const DefaultSystemThreshold = 64 * 1024

// NewSystemAllocator returns an allocator that serves regions of at
// least threshold bytes from OS pages (mmap on Linux, VirtualAlloc on
// Windows) and smaller regions from the heap. Page-backed regions are
// unmapped when the sweeper evicts them; Free on memory the allocator
// does not recognize is a no-op. A non-positive threshold selects
// DefaultSystemThreshold. On platforms without a page-backed
// implementation the heap allocator is returned.
func NewSystemAllocator(threshold int) api.Allocator {
	if threshold <= 0 {
		threshold = DefaultSystemThreshold
	}
	return newSystemAllocator(threshold)
}
