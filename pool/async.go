// File: pool/async.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Asynchronous disposal path. Hot producers stamp the handle and park it
// on a small backlog instead of taking the bucket lock; the sweeper
// drains the backlog into buckets on every wake.

package pool

import (
	"sync"

	"github.com/eapache/queue"
)

// disposeBacklog is a FIFO of stamped handles awaiting bucket filing.
// Its mutex is independent of the provider's bucket lock.
type disposeBacklog struct {
	mu sync.Mutex
	q  *queue.Queue
}

func (b *disposeBacklog) add(h *DisposableBuffer) {
	b.mu.Lock()
	if b.q == nil {
		b.q = queue.New()
	}
	b.q.Add(h)
	b.mu.Unlock()
}

// drainInto files every backlogged handle into the provider's buckets.
func (b *disposeBacklog) drainInto(p *DisposedBytesProvider) {
	b.mu.Lock()
	var pending []*DisposableBuffer
	for b.q != nil && b.q.Length() > 0 {
		pending = append(pending, b.q.Remove().(*DisposableBuffer))
	}
	b.mu.Unlock()

	for _, h := range pending {
		p.fileDisposed(h)
	}
}

// DisposeAsync stamps the handle immediately but defers bucket filing to
// the next sweep wake (or Close). The handle is unavailable for reuse
// until then; use Dispose when immediate reuse matters more than keeping
// the disposer off the bucket lock.
func (p *DisposedBytesProvider) DisposeAsync(h *DisposableBuffer) {
	if h == nil || len(h.data) < 1 {
		return
	}
	if !h.stamp(p.now().UnixNano()) {
		return
	}
	p.backlog.add(h)
}
