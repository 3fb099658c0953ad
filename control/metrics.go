// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pool monitoring. The provider publishes
// a counter snapshot here after every sweep pass when attached via
// pool.WithMetricsRegistry.

package control

import (
	"sync"
	"time"

	"github.com/momentics/disposepool/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishProviderStats records one provider stats snapshot under the
// pool.* key family.
func (mr *MetricsRegistry) PublishProviderStats(stats api.ProviderStats) {
	mr.mu.Lock()
	mr.metrics["pool.alloc_total"] = stats.TotalAlloc
	mr.metrics["pool.reuse_total"] = stats.TotalReuse
	mr.metrics["pool.disposed_total"] = stats.TotalDisposed
	mr.metrics["pool.evicted_total"] = stats.TotalEvicted
	mr.metrics["pool.pooled"] = stats.Pooled
	mr.metrics["pool.buckets"] = stats.Buckets
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// UpdatedAt reports when the registry last changed.
func (mr *MetricsRegistry) UpdatedAt() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
