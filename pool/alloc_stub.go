//go:build !linux && !windows

// File: pool/alloc_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a page-backed allocator.

package pool

import "github.com/momentics/disposepool/api"

func newSystemAllocator(_ int) api.Allocator {
	return NewHeapAllocator()
}
