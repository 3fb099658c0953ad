// File: pool/options.go
// Package pool defines functional options for provider construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"time"

	"go.uber.org/zap"

	"github.com/momentics/disposepool/api"
	"github.com/momentics/disposepool/control"
)

// Option customizes provider initialization.
type Option func(*DisposedBytesProvider)

// WithTTL overrides the reference 1000 ms time-to-live for disposed
// handles.
func WithTTL(ttl time.Duration) Option {
	return func(p *DisposedBytesProvider) {
		if ttl > 0 {
			p.ttl.Store(int64(ttl))
		}
	}
}

// WithSweepInterval overrides how often the background sweeper wakes.
func WithSweepInterval(interval time.Duration) Option {
	return func(p *DisposedBytesProvider) {
		if interval > 0 {
			p.sweepTick = interval
		}
	}
}

// WithAllocator selects the raw memory allocator backing bucket misses
// and receiving evicted regions.
func WithAllocator(alloc api.Allocator) Option {
	return func(p *DisposedBytesProvider) {
		if alloc != nil {
			p.alloc = alloc
		}
	}
}

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *DisposedBytesProvider) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock injects the time source used for disposal stamps and sweep
// decisions. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *DisposedBytesProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// WithMetricsRegistry publishes a stats snapshot into the registry after
// every sweep pass.
func WithMetricsRegistry(mr *control.MetricsRegistry) Option {
	return func(p *DisposedBytesProvider) {
		if mr != nil {
			p.metrics = mr
		}
	}
}

// WithConfigStore subscribes the provider to dynamic retuning: updating
// control.KeyTTLMillis in the store adjusts the eviction window of a
// running provider.
func WithConfigStore(cs *control.ConfigStore) Option {
	return func(p *DisposedBytesProvider) {
		if cs == nil {
			return
		}
		cs.OnReload(func() {
			if ms, ok := cs.Int64(control.KeyTTLMillis); ok && ms > 0 {
				p.SetTTL(time.Duration(ms) * time.Millisecond)
			}
		})
	}
}
