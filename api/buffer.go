// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
//
// Disposal-aware buffer handle and disposed-bytes provider contracts.
//
// A Handle owns one fixed-capacity region while it is active. Dispose
// transfers ownership of the region to the provider, which keeps it in a
// capacity-keyed bucket until it is reused or the sweeper evicts it.

package api

// Handle is a disposal-aware wrapper around one raw buffer region.
type Handle interface {
	// Capacity returns the size in bytes of the wrapped region.
	Capacity() int

	// DisposedAt returns the unix-nano disposal instant, 0 while active.
	DisposedAt() int64

	// IsDisposed reports whether Dispose has been called.
	IsDisposed() bool

	// Bytes returns the region, or ErrUseAfterDispose once disposed.
	Bytes() ([]byte, error)

	// BytesUnsafe returns the region without the disposal check.
	// Callers must have verified liveness through other means.
	BytesUnsafe() []byte

	// Dispose stamps the handle and files it back into its provider.
	// After Dispose the caller must not touch the region again.
	Dispose()
}

// BytesProvider is the capacity-bucketed registry of disposed buffers.
type BytesProvider interface {
	// AcquireBytes returns a region of exactly capacity bytes, reusing a
	// disposed region of the same capacity when one is pooled. When
	// zeroed is true the first capacity bytes are guaranteed all-zero.
	AcquireBytes(capacity int, zeroed bool) ([]byte, error)

	// DisposeBytes admits externally obtained memory into the reuse
	// path. A buffer shorter than one byte is silently ignored.
	DisposeBytes(buf []byte)

	// Sweep evicts every pooled handle older than the TTL and reports
	// how many were removed.
	Sweep() int

	// Stats returns a snapshot of allocation and reuse counters.
	Stats() ProviderStats

	// Close stops the background sweeper. Idempotent.
	Close() error
}

// ProviderStats aggregates provider accounting for observability.
type ProviderStats struct {
	// TotalAlloc counts fresh allocations (bucket misses).
	TotalAlloc int64
	// TotalReuse counts acquisitions served from a bucket.
	TotalReuse int64
	// TotalDisposed counts handles filed into buckets.
	TotalDisposed int64
	// TotalEvicted counts handles removed by the sweeper.
	TotalEvicted int64
	// Pooled is the number of handles currently sitting in buckets.
	Pooled int64
	// Buckets is the number of distinct capacity keys ever seen.
	Buckets int64
}
