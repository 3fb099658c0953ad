// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload
// propagation. A provider built with pool.WithConfigStore retunes its
// eviction window whenever KeyTTLMillis changes.

package control

import "sync"

// Well-known configuration keys understood by the pool.
const (
	// KeyTTLMillis retunes the disposed-handle time-to-live, in
	// milliseconds, of every provider subscribed to the store.
	KeyTTLMillis = "ttl_ms"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and
// listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// Int64 reads a numeric config value, converting the common numeric
// shapes a deserialized config carries.
func (cs *ConfigStore) Int64(key string) (int64, bool) {
	cs.mu.RLock()
	v, ok := cs.config[key]
	cs.mu.RUnlock()
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// SetConfig merges new values and dispatches reload if needed.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()
	dispatchReload(listeners)
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func dispatchReload(listeners []func()) {
	for _, fn := range listeners {
		go fn()
	}
}
