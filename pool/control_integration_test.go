// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_integration_test.go — Dynamic retuning and metrics publication
// of a running provider.
package pool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/disposepool/control"
	"github.com/momentics/disposepool/pool"
)

func TestProvider_ConfigStoreRetunesTTL(t *testing.T) {
	cs := control.NewConfigStore()
	p := quietProvider(t, pool.WithConfigStore(cs))
	require.Equal(t, time.Hour, p.TTL())

	cs.SetConfig(map[string]any{control.KeyTTLMillis: 250})

	require.Eventually(t, func() bool {
		return p.TTL() == 250*time.Millisecond
	}, time.Second, time.Millisecond, "reload listener never retuned the TTL")

	// Non-positive values are rejected and leave the window untouched.
	cs.SetConfig(map[string]any{control.KeyTTLMillis: 0})
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, p.TTL())
}

func TestProvider_PublishesStatsOnSweep(t *testing.T) {
	mr := control.NewMetricsRegistry()
	p := quietProvider(t, pool.WithMetricsRegistry(mr))

	buf, err := p.AcquireBytes(64, false)
	require.NoError(t, err)
	p.DisposeBytes(buf)
	p.Sweep()

	snap := mr.GetSnapshot()
	assert.EqualValues(t, 1, snap["pool.alloc_total"])
	assert.EqualValues(t, 1, snap["pool.disposed_total"])
	assert.EqualValues(t, 1, snap["pool.pooled"])
	assert.EqualValues(t, 1, snap["pool.buckets"])
}
