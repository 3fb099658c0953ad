// File: pool/disposable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Disposal-aware wrapper around one fixed-capacity buffer region.

package pool

import (
	"sync/atomic"

	"github.com/momentics/disposepool/api"
)

// DisposableBuffer wraps one raw region and tracks its disposal state.
// The zero disposedAt means active; any positive value is the unix-nano
// instant of disposal. While disposed, ownership of the region belongs
// to the provider's bucket and the checked accessor refuses access.
type DisposableBuffer struct {
	data       []byte
	disposedAt atomic.Int64
	provider   *DisposedBytesProvider
}

var _ api.Handle = (*DisposableBuffer)(nil)

// Capacity returns the size in bytes of the wrapped region.
func (h *DisposableBuffer) Capacity() int { return len(h.data) }

// DisposedAt returns the unix-nano disposal instant, 0 while active.
func (h *DisposableBuffer) DisposedAt() int64 { return h.disposedAt.Load() }

// IsDisposed reports whether the handle has been disposed.
func (h *DisposableBuffer) IsDisposed() bool { return h.disposedAt.Load() > 0 }

// Bytes returns the wrapped region for the caller to read and write.
// Once the handle is disposed it returns api.ErrUseAfterDispose: the
// region may already back another caller's acquisition.
func (h *DisposableBuffer) Bytes() ([]byte, error) {
	if disposedAt := h.DisposedAt(); disposedAt > 0 {
		return nil, api.NewError(api.ErrCodeDisposedAccess,
			"operating on a disposed buffer: unsafe").
			WithContext("capacity", h.Capacity()).
			WithContext("disposed_at", disposedAt)
	}
	return h.BytesUnsafe(), nil
}

// BytesUnsafe returns the wrapped region without the disposal check.
// The provider's reuse path relies on it; external callers take over
// the liveness responsibility the check would otherwise carry.
func (h *DisposableBuffer) BytesUnsafe() []byte { return h.data }

// Dispose stamps the handle with the current instant and files it into
// the provider under its capacity. Only the first call per handle has
// an effect; the region must not be touched afterwards.
func (h *DisposableBuffer) Dispose() {
	if len(h.data) < 1 {
		return
	}
	if !h.stamp(h.provider.clock().UnixNano()) {
		return
	}
	h.provider.fileDisposed(h)
}

// stamp transitions active -> disposed exactly once.
func (h *DisposableBuffer) stamp(now int64) bool {
	return h.disposedAt.CompareAndSwap(0, now)
}
