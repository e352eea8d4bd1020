package hwtype

import (
	"fmt"

	"github.com/katalvlaran/hwir/matrix"
)

// Mapper records a bit-slice correspondence between two types' flattened
// leaves: cell (y, x) of Matrix is nonzero iff flatten(A)[y] and flatten(B)[x]
// belong to the same mapping pair. Construction and storage (which types
// carry which mappers) live in package flatten's MapperRegistry — Type itself
// stores no mapper state, avoiding the aliasing hazards of a mutable map
// living inside a value type that is copied by assignment throughout this
// package (see DESIGN.md).
type Mapper struct {
	A, B   Type
	Matrix *matrix.MappingMatrix
	// inverse is the B→A mapper last handed out by Inverse, kept in step by Add.
	inverse *Mapper
}

// Add records that flatten(A)[y] and flatten(B)[x] are part of the same
// mapping group, delegating ordinal assignment to MappingMatrix.SetNext, and
// mirrors the cell into the inverse mapper if one was handed out.
func (m *Mapper) Add(y, x int) error {
	if err := m.Matrix.SetNext(y, x); err != nil {
		return err
	}
	if m.inverse == nil {
		return nil
	}
	k, err := m.Matrix.At(y, x)
	if err != nil {
		return err
	}
	return m.inverse.Matrix.Set(x, y, k)
}

// Inverse returns the B→A mapper implied by m: transpose the matrix and swap
// sides. Used to satisfy the invariant that every mapper a→b on a implies the
// registered inverse b→a on b; later m.Add calls are mirrored into it.
func (m *Mapper) Inverse() *Mapper {
	inv := &Mapper{A: m.B, B: m.A, Matrix: m.Matrix.Transpose()}
	m.inverse = inv
	return inv
}

// MapperKey computes the stable registry key a Type is looked up under: its
// registered Name if present, otherwise a structural fallback so two
// anonymous-but-shaped-alike types (e.g. two independently built Vector(8))
// still resolve to the same mapper-table slot.
func MapperKey(t Type) string {
	if t.name != "" {
		return "named:" + t.name
	}
	return "anon:" + structuralKey(t)
}

func structuralKey(t Type) string {
	switch t.kind {
	case KindRecord:
		s := "Record{"
		for _, f := range t.fields {
			s += f.Name + ":" + structuralKey(f.Type) + ","
		}
		return s + "}"
	case KindVector:
		if t.width != nil {
			if lit, ok := t.width.Literal(); ok {
				return fmt.Sprintf("Vector(%d)", lit)
			}
			return "Vector(id:" + t.width.ID() + ")"
		}
		return "Vector(?)"
	default:
		return t.kind.String()
	}
}
