// Package script dispatches object event scripts.
package script

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/logger"
)

// Runner executes a named script for a caller. Calls are fire-and-forget.
type Runner interface {
	Run(name string, caller, triggerer uint32)
}

// Routine is a script implemented in Go.
type Routine func(caller, triggerer uint32)

// Registry runs registered routines and logs unknown script names.
type Registry struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{routines: make(map[string]Routine)}
}

// Register binds a routine to a script name.
func (r *Registry) Register(name string, fn Routine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routines[name] = fn
}

// Run executes the routine bound to name.
func (r *Registry) Run(name string, caller, triggerer uint32) {
	if name == "" {
		return
	}
	r.mu.RLock()
	fn, ok := r.routines[name]
	r.mu.RUnlock()

	if !ok {
		logger.Debug("script not registered",
			zap.String("script", name),
			zap.Uint32("caller", caller),
			zap.Uint32("triggerer", triggerer))
		return
	}
	fn(caller, triggerer)
}
