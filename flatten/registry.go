package flatten

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/matrix"
)

// ErrNoMapper indicates neither an explicit mapper nor an implicit
// (structural-equality) one could be found for a type pair.
var ErrNoMapper = errors.New("flatten: no mapper registered for this type pair, and the types are not structurally equal")

// MapperRegistry stores every hwtype.Mapper ever constructed, keyed by the
// structural hwtype.MapperKey of both its sides. Like the pool package, it
// is process-scoped mutable state with a default instance plus private
// constructors for tests; per spec.md §5 it is not internally locked —
// callers serialize access themselves.
type MapperRegistry struct {
	byKey map[string]map[string]*hwtype.Mapper
}

// NewMapperRegistry builds an empty, private registry.
func NewMapperRegistry() *MapperRegistry {
	return &MapperRegistry{byKey: make(map[string]map[string]*hwtype.Mapper)}
}

var defaultRegistry = NewMapperRegistry()

// DefaultRegistry returns the process-scoped registry graph.Connect and
// package vhdl use.
func DefaultRegistry() *MapperRegistry { return defaultRegistry }

// Find returns the mapper registered for a→b, if any.
func (r *MapperRegistry) Find(a, b hwtype.Type) (*hwtype.Mapper, bool) {
	inner, ok := r.byKey[hwtype.MapperKey(a)]
	if !ok {
		return nil, false
	}
	m, ok := inner[hwtype.MapperKey(b)]
	return m, ok
}

func (r *MapperRegistry) attach(a, b hwtype.Type, m *hwtype.Mapper) {
	ak := hwtype.MapperKey(a)
	if r.byKey[ak] == nil {
		r.byKey[ak] = make(map[string]*hwtype.Mapper)
	}
	r.byKey[ak][hwtype.MapperKey(b)] = m
}

// MakeMapper starts an empty a→b mapper sized by both sides' flat-leaf
// counts, registers it (and its inverse, on b→a), and returns it for the
// caller to populate via Mapper.Add. Matches spec.md §4.E's "make(a, b)
// starts empty".
func (r *MapperRegistry) MakeMapper(a, b hwtype.Type) (*hwtype.Mapper, error) {
	fa, fb := Flatten(a), Flatten(b)
	mat, err := matrix.NewMappingMatrix(len(fa), len(fb))
	if err != nil {
		return nil, fmt.Errorf("flatten.MakeMapper: %w", err)
	}
	m := &hwtype.Mapper{A: a, B: b, Matrix: mat}
	r.attach(a, b, m)
	r.attach(b, a, m.Inverse())
	return m, nil
}

// MakeImplicitMapper is make_implicit(a, a): the identity mapper over a's
// own flattening. A convenience alias for MakeImplicit(a, a).
func (r *MapperRegistry) MakeImplicitMapper(a hwtype.Type) (*hwtype.Mapper, error) {
	return r.MakeImplicit(a, a)
}

// MakeImplicit builds and registers the diagonal (identity) mapper between
// a and b, which requires a.IsEqual(b). Matches spec.md §4.E's
// "make_implicit(a, b) requires a.equals(b) and sets the diagonal".
func (r *MapperRegistry) MakeImplicit(a, b hwtype.Type) (*hwtype.Mapper, error) {
	if !a.IsEqual(b) {
		return nil, fmt.Errorf("flatten.MakeImplicit: %w", ErrNoMapper)
	}
	fa := Flatten(a)
	mat, err := matrix.NewMappingMatrix(len(fa), len(fa))
	if err != nil {
		return nil, fmt.Errorf("flatten.MakeImplicit: %w", err)
	}
	if err := mat.Identity(); err != nil {
		return nil, fmt.Errorf("flatten.MakeImplicit: %w", err)
	}
	m := &hwtype.Mapper{A: a, B: b, Matrix: mat}
	r.attach(a, b, m)
	r.attach(b, a, m.Inverse())
	return m, nil
}

// GetOrMakeMapper implements spec.md §4.G step 3's "requires
// src.type.get_mapper(dst.type).is_some() (may generate an implicit mapper
// when equal)": it returns any already-registered a→b mapper, otherwise
// builds and registers the implicit identity mapper when a.IsEqual(b), and
// otherwise fails — connecting two non-equal, unmapped types requires the
// caller to have registered an explicit mapper first via MakeMapper+Add.
func (r *MapperRegistry) GetOrMakeMapper(a, b hwtype.Type) (*hwtype.Mapper, error) {
	if m, ok := r.Find(a, b); ok {
		return m, nil
	}
	if a.IsEqual(b) {
		return r.MakeImplicit(a, b)
	}
	return nil, ErrNoMapper
}

// package-level convenience wrappers over DefaultRegistry(), used by
// graph.Connect and package vhdl.

func MakeMapper(a, b hwtype.Type) (*hwtype.Mapper, error) { return defaultRegistry.MakeMapper(a, b) }
func MakeImplicitMapper(a hwtype.Type) (*hwtype.Mapper, error) {
	return defaultRegistry.MakeImplicitMapper(a)
}
func GetOrMakeMapper(a, b hwtype.Type) (*hwtype.Mapper, error) {
	return defaultRegistry.GetOrMakeMapper(a, b)
}
