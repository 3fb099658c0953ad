// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw memory allocator contract. Concrete allocators are selected per
// platform in the pool package.

package api

// Allocator abstracts raw region allocation for the bytes provider.
type Allocator interface {
	// Alloc returns a zeroed region of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Free releases a region previously returned by Alloc. Regions the
	// allocator does not recognize must be ignored, so evicting
	// externally wrapped memory through Free is always safe.
	Free(buf []byte)
}
