// Package pool implements spec.md §4.A's three process-scoped interning
// registries: literals, named types, and top-level components. Each is a
// concrete (non-generic) type with the same Add/Get/Clear shape, matching
// the teacher's preference for concrete per-concern registries over a
// generic container — the teacher targets go1.23 but never reaches for type
// parameters across its whole tree.
//
// Like package node and package graph, pool carries no internal locking:
// spec.md §5 is explicit that pools are process-global mutable state the
// client must serialize externally.
package pool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hwir/node"
)

// ErrDuplicateName indicates Add was called with a name already registered
// to a different object.
var ErrDuplicateName = errors.New("pool: name already registered")

// LiteralPool interns Literal nodes both by name (Add/Get, like the other
// two pools) and by (kind, value) so that Intl(3) always returns the same
// *node.Literal on repeat calls, per spec.md §4.A.
type LiteralPool struct {
	byName  map[string]*node.Literal
	byValue map[string]*node.Literal
}

// NewLiteralPool builds an empty, private pool.
func NewLiteralPool() *LiteralPool {
	return &LiteralPool{byName: make(map[string]*node.Literal), byValue: make(map[string]*node.Literal)}
}

var defaultLiteralPool = NewLiteralPool()

// DefaultLiteralPool returns the process-default instance. (Package hwir's
// Intl builds unpooled literals with node.NewIntLiteral and does not use it.)
func DefaultLiteralPool() *LiteralPool { return defaultLiteralPool }

// Add registers l under its own name. Re-adding the identical *node.Literal
// is a no-op; adding a different literal under a name already taken fails.
func (p *LiteralPool) Add(l *node.Literal) error {
	if existing, ok := p.byName[l.Name()]; ok && existing != l {
		return fmt.Errorf("LiteralPool.Add(%q): %w", l.Name(), ErrDuplicateName)
	}
	p.byName[l.Name()] = l
	return nil
}

// Get looks up a literal by its registered name.
func (p *LiteralPool) Get(name string) (*node.Literal, bool) {
	l, ok := p.byName[name]
	return l, ok
}

// Clear empties the pool.
func (p *LiteralPool) Clear() {
	p.byName = make(map[string]*node.Literal)
	p.byValue = make(map[string]*node.Literal)
}

func valueKey(kind node.LitKind, repr string) string {
	return fmt.Sprintf("%s:%s", kind, repr)
}

// Intl interns an int literal by value: the first call for a given v
// allocates and registers a fresh Literal named "int_<v>" (or "int_neg_<v>"
// for negatives, names cannot contain '-'); every later call with the same v
// returns that same node.
func (p *LiteralPool) Intl(v int64) *node.Literal {
	key := valueKey(node.LitInt, fmt.Sprintf("%d", v))
	if existing, ok := p.byValue[key]; ok {
		return existing
	}
	name := fmt.Sprintf("int_%d", v)
	if v < 0 {
		name = fmt.Sprintf("int_neg_%d", -v)
	}
	lit := node.NewIntLiteral(name, v)
	p.byValue[key] = lit
	p.byName[name] = lit
	return lit
}

// Strl interns a string literal by value.
func (p *LiteralPool) Strl(v string) *node.Literal {
	key := valueKey(node.LitString, v)
	if existing, ok := p.byValue[key]; ok {
		return existing
	}
	name := "str_" + sanitize(v)
	lit := node.NewStringLiteral(name, v)
	p.byValue[key] = lit
	p.byName[name] = lit
	return lit
}

// Booll interns a boolean literal by value.
func (p *LiteralPool) Booll(v bool) *node.Literal {
	key := valueKey(node.LitBool, fmt.Sprintf("%v", v))
	if existing, ok := p.byValue[key]; ok {
		return existing
	}
	name := fmt.Sprintf("bool_%v", v)
	lit := node.NewBoolLiteral(name, v)
	p.byValue[key] = lit
	p.byName[name] = lit
	return lit
}

// sanitize replaces characters that would be ambiguous in a generated
// identifier, matching spec.md §3's "the emitter sanitizes names by
// replacing :, -, " with _".
func sanitize(s string) string {
	r := strings.NewReplacer(":", "_", "-", "_", `"`, "_", " ", "_")
	return r.Replace(s)
}

// package-level convenience wrappers over DefaultLiteralPool().
func Intl(v int64) *node.Literal  { return defaultLiteralPool.Intl(v) }
func Strl(v string) *node.Literal { return defaultLiteralPool.Strl(v) }
func Booll(v bool) *node.Literal  { return defaultLiteralPool.Booll(v) }
