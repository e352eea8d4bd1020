package pool

import (
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
)

// TypePool interns named hwtype.Type values. Once a name is registered it
// cannot be shadowed by a different type, per spec.md §3's lifecycle note.
type TypePool struct {
	byName map[string]hwtype.Type
}

// NewTypePool builds an empty, private pool.
func NewTypePool() *TypePool {
	return &TypePool{byName: make(map[string]hwtype.Type)}
}

var defaultTypePool = NewTypePool()

// DefaultTypePool returns the process-default instance.
func DefaultTypePool() *TypePool { return defaultTypePool }

// Add registers t under name, stamping name onto it via Type.WithName. A
// second Add under the same name fails even if the shapes are structurally
// equal — spec.md's "fails hard" applies uniformly across all three pools.
func (p *TypePool) Add(name string, t hwtype.Type) (hwtype.Type, error) {
	if _, ok := p.byName[name]; ok {
		return hwtype.Type{}, fmt.Errorf("TypePool.Add(%q): %w", name, ErrDuplicateName)
	}
	named := t.WithName(name)
	p.byName[name] = named
	return named, nil
}

// Get looks up a named type.
func (p *TypePool) Get(name string) (hwtype.Type, bool) {
	t, ok := p.byName[name]
	return t, ok
}

// Clear empties the pool.
func (p *TypePool) Clear() {
	p.byName = make(map[string]hwtype.Type)
}
