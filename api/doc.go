// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the disposepool library: the disposal-aware buffer
// handle, the disposed-bytes provider, the raw memory allocator, and the
// shared error taxonomy.
//
// Implementations live in the pool package; fake implementations for
// consumer tests live in the fake package.
package api
