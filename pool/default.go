// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

var (
	defaultOnce     sync.Once
	defaultProvider *DisposedBytesProvider
)

// Default returns a process-wide DisposedBytesProvider so all components
// share one reuse registry instead of fragmenting disposals. The first
// caller constructs it and starts its sweeper exactly once; it lives for
// the process lifetime and is never closed.
func Default() *DisposedBytesProvider {
	defaultOnce.Do(func() {
		defaultProvider = NewDisposedBytesProvider()
	})
	return defaultProvider
}

// Acquire is a shortcut for Default().Acquire.
func Acquire(capacity int, zeroed bool) (*DisposableBuffer, error) {
	return Default().Acquire(capacity, zeroed)
}

// AcquireBytes is a shortcut for Default().AcquireBytes.
func AcquireBytes(capacity int, zeroed bool) ([]byte, error) {
	return Default().AcquireBytes(capacity, zeroed)
}

// Wrap is a shortcut for Default().Wrap.
func Wrap(buf []byte) *DisposableBuffer {
	return Default().Wrap(buf)
}

// DisposeBytes is a shortcut for Default().DisposeBytes.
func DisposeBytes(buf []byte) {
	Default().DisposeBytes(buf)
}
