package registry

import (
	"sync"
)

// Registry is a process-wide key-value store for extension points
// (cmd, cron, api, graphql). Keys can be locked after startup so
// init()-time registration cannot race with request handling.
type Registry struct {
	m      sync.Map
	locked sync.Map // key -> struct{}
}

// GlobalRegistry is the shared instance used by all extension registries.
var GlobalRegistry = &Registry{}

// GetGlobal returns the value stored for key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	return r.m.Load(key)
}

// SetGlobal stores a value for key. Callers must check IsLocked first.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.m.Store(key, value)
}

// Lock marks a key immutable. Registration panics afterwards.
func (r *Registry) Lock(key string) {
	r.locked.Store(key, struct{}{})
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	_, ok := r.locked.Load(key)
	return ok
}

// UnlockForTesting re-opens a locked key so tests can re-register.
func (r *Registry) UnlockForTesting(key string) {
	r.locked.Delete(key)
}
