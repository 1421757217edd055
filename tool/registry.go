package tool

import (
	"fmt"
	"sync"

	"github.com/minatoya/callagent/chat"
)

// Registry owns registered capabilities keyed by name, each with an
// enabled flag. It implements chat.ToolRegistry. Registration order is
// preserved so definition snapshots are deterministic.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string
}

type entry struct {
	tool    Tool
	enabled bool
}

// Info describes one registered tool for listings.
type Info struct {
	Name        string
	Description string
	Enabled     bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds a tool, enabled, overwriting any tool with the same
// name. An overwritten tool keeps its original position in the order.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := t.Name()
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = &entry{tool: t, enabled: true}
}

// Switch enables or disables a tool. Reports whether the tool exists.
func (r *Registry) Switch(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return false
	}
	e.enabled = enabled
	return true
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		infos = append(infos, Info{
			Name:        name,
			Description: e.tool.Description(),
			Enabled:     e.enabled,
		})
	}
	return infos
}

// Lookup implements chat.ToolRegistry.
func (r *Registry) Lookup(name string) (enabled bool, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return false, false
	}
	return e.enabled, true
}

// EnabledDefinitions implements chat.ToolRegistry. The result is a
// snapshot in registration order; later registry changes do not affect
// it.
func (r *Registry) EnabledDefinitions() []chat.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]chat.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		if !e.enabled {
			continue
		}
		defs = append(defs, chat.ToolDefinition{
			Name:        name,
			Description: e.tool.Description(),
			Parameters:  e.tool.Parameters(),
		})
	}
	return defs
}

// Invoke implements chat.ToolRegistry: it runs the named tool
// synchronously and returns its output or invocation failure.
func (r *Registry) Invoke(name string, args any) (string, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok || !e.enabled {
		return "", fmt.Errorf("tool %q is not available", name)
	}
	return e.tool.Run(args)
}

var _ chat.ToolRegistry = (*Registry)(nil)
