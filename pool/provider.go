// File: pool/provider.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity-bucketed registry of disposed buffers with TTL-based sweeping.
//
// All bucket state is guarded by one coarse mutex: acquisitions, disposals
// and sweep passes serialize against each other, which keeps a sweep from
// racing a concurrent pop or push on the same bucket.

package pool

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/momentics/disposepool/api"
)

// Default timing of the reuse window. The sweeper wakes once per TTL,
// so a disposed buffer stays reusable for at most two intervals.
const (
	DefaultTTL           = 1000 * time.Millisecond
	DefaultSweepInterval = DefaultTTL
)

// DisposedBytesProvider buckets disposed handles by exact capacity and
// serves acquisitions from the most recently disposed handle (LIFO, to
// favor warm memory). Buckets are created lazily on first disposal of a
// capacity and never removed, even when empty.
type DisposedBytesProvider struct {
	mu      sync.Mutex
	buckets map[int]*deque.Deque[*DisposableBuffer]
	pooled  int64 // handles currently sitting in buckets

	ttl       atomic.Int64 // nanoseconds
	sweepTick time.Duration
	alloc     api.Allocator
	log       *zap.Logger
	now       func() time.Time
	metrics   statsSink

	backlog disposeBacklog

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	closed   atomic.Bool

	totalAlloc    atomic.Int64
	totalReuse    atomic.Int64
	totalDisposed atomic.Int64
	totalEvicted  atomic.Int64
}

var _ api.BytesProvider = (*DisposedBytesProvider)(nil)

// statsSink receives a stats snapshot after every sweep pass.
type statsSink interface {
	PublishProviderStats(stats api.ProviderStats)
}

// NewDisposedBytesProvider constructs a provider and starts its sweeper.
// Without options it uses the heap allocator, the 1000 ms reference TTL
// and a nop logger. Callers embedding the provider should Close it when
// torn down; the process-wide Default() instance never is.
func NewDisposedBytesProvider(opts ...Option) *DisposedBytesProvider {
	p := &DisposedBytesProvider{
		buckets:   make(map[int]*deque.Deque[*DisposableBuffer]),
		sweepTick: DefaultSweepInterval,
		alloc:     NewHeapAllocator(),
		log:       zap.NewNop(),
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	p.ttl.Store(int64(DefaultTTL))
	for _, opt := range opts {
		opt(p)
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// AcquireBytes returns a region of exactly capacity bytes. A bucket hit
// pops the most recently disposed handle of that capacity, re-slices it
// to span the full capacity and detaches the raw region from its old
// handle; a miss allocates fresh memory. Reused memory may carry stale
// content, so zeroed requests pay an O(capacity) clear on the hit path.
func (p *DisposedBytesProvider) AcquireBytes(capacity int, zeroed bool) ([]byte, error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"acquire capacity must be positive").WithContext("capacity", capacity)
	}
	if p.closed.Load() {
		return nil, api.NewError(api.ErrCodeClosed, "bytes provider is closed")
	}

	p.mu.Lock()
	if d := p.buckets[capacity]; d != nil && d.Len() > 0 {
		h := d.PopBack()
		p.pooled--
		p.mu.Unlock()
		p.totalReuse.Add(1)

		buf := h.BytesUnsafe()
		buf = buf[:capacity]
		if zeroed {
			clear(buf)
		}
		return buf, nil
	}
	p.mu.Unlock()

	// Bucket miss: fresh allocation, never waiting on a disposal.
	buf, err := p.alloc.Alloc(capacity)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailure,
			"fresh allocation failed").
			WithContext("capacity", capacity).
			WithContext("cause", err.Error())
	}
	p.totalAlloc.Add(1)
	return buf, nil
}

// Acquire obtains a region through AcquireBytes and wraps it in a fresh
// active handle. Reused memory never resurrects its old handle, so a
// handle with a stale disposal stamp is not observable outside a bucket.
func (p *DisposedBytesProvider) Acquire(capacity int, zeroed bool) (*DisposableBuffer, error) {
	buf, err := p.AcquireBytes(capacity, zeroed)
	if err != nil {
		return nil, err
	}
	return &DisposableBuffer{data: buf, provider: p}, nil
}

// Wrap admits externally owned memory into the disposal path without
// going through AcquireBytes. Capacity is the length of buf.
func (p *DisposedBytesProvider) Wrap(buf []byte) *DisposableBuffer {
	return &DisposableBuffer{data: buf, provider: p}
}

// DisposeBytes wraps raw memory and disposes it in one step. Degenerate
// buffers of less than one byte are ignored: no bucket is created and no
// handle persists.
func (p *DisposedBytesProvider) DisposeBytes(buf []byte) {
	if len(buf) < 1 {
		return
	}
	p.Wrap(buf).Dispose()
}

// fileDisposed pushes an already stamped handle onto its capacity
// bucket, creating the bucket on first use for that capacity.
func (p *DisposedBytesProvider) fileDisposed(h *DisposableBuffer) {
	capacity := h.Capacity()

	p.mu.Lock()
	d := p.buckets[capacity]
	if d == nil {
		d = deque.New[*DisposableBuffer]()
		p.buckets[capacity] = d
	}
	d.PushBack(h)
	p.pooled++
	p.mu.Unlock()

	p.totalDisposed.Add(1)
}

// Sweep drains the async backlog, then removes every pooled handle whose
// disposal instant is older than the TTL. The pass holds the bucket lock
// for its full duration; evicted regions are handed back to the
// allocator afterwards. Returns the number of evicted handles.
func (p *DisposedBytesProvider) Sweep() int {
	p.backlog.drainInto(p)

	now := p.now().UnixNano()
	ttl := p.ttl.Load()
	var stale []*DisposableBuffer

	p.mu.Lock()
	for _, d := range p.buckets {
		// One full rotation keeps survivors in LIFO order. Handles are
		// pushed back in disposal order, so the front is the oldest.
		for i, n := 0, d.Len(); i < n; i++ {
			h := d.PopFront()
			if now-h.DisposedAt() > ttl {
				stale = append(stale, h)
			} else {
				d.PushBack(h)
			}
		}
	}
	p.pooled -= int64(len(stale))
	p.mu.Unlock()

	for _, h := range stale {
		p.alloc.Free(h.BytesUnsafe())
	}
	evicted := len(stale)
	p.totalEvicted.Add(int64(evicted))

	if evicted > 0 {
		p.log.Debug("evicted stale disposed buffers", zap.Int("evicted", evicted))
	}
	if p.metrics != nil {
		p.metrics.PublishProviderStats(p.Stats())
	}
	return evicted
}

// Stats returns a snapshot of provider accounting.
func (p *DisposedBytesProvider) Stats() api.ProviderStats {
	p.mu.Lock()
	pooled := p.pooled
	buckets := int64(len(p.buckets))
	p.mu.Unlock()

	return api.ProviderStats{
		TotalAlloc:    p.totalAlloc.Load(),
		TotalReuse:    p.totalReuse.Load(),
		TotalDisposed: p.totalDisposed.Load(),
		TotalEvicted:  p.totalEvicted.Load(),
		Pooled:        pooled,
		Buckets:       buckets,
	}
}

// TTL returns the current time-to-live for disposed handles.
func (p *DisposedBytesProvider) TTL() time.Duration {
	return time.Duration(p.ttl.Load())
}

// SetTTL retunes the eviction window. Takes effect on the next sweep
// pass; a sweep already in flight finishes on the old value.
func (p *DisposedBytesProvider) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	p.ttl.Store(int64(ttl))
}

// Close stops the background sweeper and files any backlogged async
// disposals so a final manual Sweep can still evict them. Idempotent.
func (p *DisposedBytesProvider) Close() error {
	p.stopOnce.Do(func() {
		p.closed.Store(true)
		close(p.stop)
		p.wg.Wait()
		p.backlog.drainInto(p)
		p.log.Info("disposed bytes provider closed")
	})
	return nil
}

// run is the sweeper loop: wake, sweep, sleep, repeat, until Close.
func (p *DisposedBytesProvider) run() {
	defer p.wg.Done()
	p.log.Info("sweeper started",
		zap.Duration("ttl", p.TTL()),
		zap.Duration("interval", p.sweepTick))

	ticker := time.NewTicker(p.sweepTick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.Sweep()
		case <-p.stop:
			return
		}
	}
}

func (p *DisposedBytesProvider) clock() time.Time { return p.now() }
