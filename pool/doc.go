// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-bucketed memory reuse for fixed-capacity binary buffers.
//
// A DisposableBuffer tracks whether its region is active (owned by the
// caller) or disposed (owned by the provider). The DisposedBytesProvider
// buckets disposed handles by exact capacity in LIFO order, serves
// acquisitions from the matching bucket when possible, and runs a
// background sweeper that evicts handles older than the TTL.
//
// Intended for short-lived buffers repeatedly requested at the same
// sizes, such as frame payloads in a high-frequency protocol. A bucket
// miss never blocks; it falls through to a fresh allocation.
// See disposable.go, provider.go, alloc.go for implementation details.
package pool
