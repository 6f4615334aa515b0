package interp

import (
	"maps"
	"slices"
)

// Env is the flat global variable table. Reads of unbound names yield zero.
type Env struct {
	vars map[string]int32
}

// NewEnv returns an empty variable table.
func NewEnv() *Env {
	return &Env{vars: make(map[string]int32)}
}

// Get returns the value bound to name, or 0 when name is unbound.
func (e *Env) Get(name string) int32 {
	return e.vars[name]
}

// Set binds name to v, creating the entry on first assignment.
func (e *Env) Set(name string, v int32) {
	e.vars[name] = v
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Reset drops every binding.
func (e *Env) Reset() {
	clear(e.vars)
}
