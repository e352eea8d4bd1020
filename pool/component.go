package pool

import (
	"fmt"

	"github.com/katalvlaran/hwir/graph"
)

// ComponentPool interns named top-level Components, mirroring LiteralPool
// and TypePool's Add/Get/Clear shape.
type ComponentPool struct {
	byName map[string]*graph.Component
}

// NewComponentPool builds an empty, private pool.
func NewComponentPool() *ComponentPool {
	return &ComponentPool{byName: make(map[string]*graph.Component)}
}

var defaultComponentPool = NewComponentPool()

// DefaultComponentPool returns the process-default instance.
func DefaultComponentPool() *ComponentPool { return defaultComponentPool }

// Add registers c under its own name. A second Add under an already-taken
// name fails even when the component is structurally identical, matching
// spec.md's "a named component once added cannot be shadowed".
func (p *ComponentPool) Add(c *graph.Component) error {
	if existing, ok := p.byName[c.Name()]; ok && existing != c {
		return fmt.Errorf("ComponentPool.Add(%q): %w", c.Name(), ErrDuplicateName)
	}
	p.byName[c.Name()] = c
	return nil
}

// Get looks up a component by its registered name.
func (p *ComponentPool) Get(name string) (*graph.Component, bool) {
	c, ok := p.byName[name]
	return c, ok
}

// Clear empties the pool.
func (p *ComponentPool) Clear() {
	p.byName = make(map[string]*graph.Component)
}
