// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_test.go — Config store and metrics registry behavior.
package control_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/disposepool/api"
	"github.com/momentics/disposepool/control"
)

func TestConfigStore_SnapshotAndInt64(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfig(map[string]any{
		control.KeyTTLMillis: 250,
		"label":              "payloads",
	})

	snap := cs.GetSnapshot()
	assert.Equal(t, 250, snap[control.KeyTTLMillis])
	assert.Equal(t, "payloads", snap["label"])

	ms, ok := cs.Int64(control.KeyTTLMillis)
	require.True(t, ok)
	assert.EqualValues(t, 250, ms)

	// JSON-shaped configs carry float64; still readable.
	cs.SetConfig(map[string]any{control.KeyTTLMillis: float64(500)})
	ms, ok = cs.Int64(control.KeyTTLMillis)
	require.True(t, ok)
	assert.EqualValues(t, 500, ms)

	_, ok = cs.Int64("label")
	assert.False(t, ok)
	_, ok = cs.Int64("missing")
	assert.False(t, ok)
}

func TestConfigStore_ReloadListeners(t *testing.T) {
	cs := control.NewConfigStore()

	var fired atomic.Int32
	cs.OnReload(func() { fired.Add(1) })
	cs.OnReload(func() { fired.Add(1) })

	cs.SetConfig(map[string]any{"x": 1})

	// Listeners run on their own goroutines.
	require.Eventually(t, func() bool {
		return fired.Load() == 2
	}, time.Second, time.Millisecond)
}

func TestMetricsRegistry_PublishProviderStats(t *testing.T) {
	mr := control.NewMetricsRegistry()

	mr.PublishProviderStats(api.ProviderStats{
		TotalAlloc:    10,
		TotalReuse:    7,
		TotalDisposed: 9,
		TotalEvicted:  2,
		Pooled:        3,
		Buckets:       4,
	})

	snap := mr.GetSnapshot()
	assert.EqualValues(t, 10, snap["pool.alloc_total"])
	assert.EqualValues(t, 7, snap["pool.reuse_total"])
	assert.EqualValues(t, 9, snap["pool.disposed_total"])
	assert.EqualValues(t, 2, snap["pool.evicted_total"])
	assert.EqualValues(t, 3, snap["pool.pooled"])
	assert.EqualValues(t, 4, snap["pool.buckets"])
	assert.False(t, mr.UpdatedAt().IsZero())

	mr.Set("pool.note", "manual")
	assert.Equal(t, "manual", mr.GetSnapshot()["pool.note"])
}
