// Package flatten implements the pre-order type-flattening and mapping-pair
// construction subsystem: turning a nested hwtype.Type into an ordered list
// of physical leaves, and turning two such leaf lists plus a mapping matrix
// into the ordered MappingPair list the VHDL back-end consumes to build port
// maps and concurrent signal assignments.
//
// Mapper storage lives here, not in package hwtype, because sizing a new
// mapper's matrix requires flattening both sides — see DESIGN.md's
// package-dependency note for why that forces the split.
package flatten

import "github.com/katalvlaran/hwir/hwtype"

// NamePart is one segment of a flat leaf's accumulated dotted name, used by
// the VHDL back-end to build "field_subfield_leaf"-shaped identifiers.
type NamePart struct {
	Name string
	Sep  bool
}

// FlatType is one entry of a type's pre-order flattening.
type FlatType struct {
	// Type is the leaf (or, for the record's own entry, the record) type.
	Type hwtype.Type
	// Level is the nesting depth; the root type is level 0.
	Level int
	// NameParts accumulates every enclosing field's (name, sep) pair from
	// the root down to this entry.
	NameParts []NamePart
	// Reversed is the XOR of every enclosing Field.Reversed bit on the path
	// from the root to this entry.
	Reversed bool
}

// Flatten performs a depth-first pre-order traversal of t: non-record types
// yield a single leaf; a Record yields one entry for itself followed by the
// recursive flattening of each field, in declaration order.
// Complexity: O(n) in the total field count reachable from t.
func Flatten(t hwtype.Type) []FlatType {
	var out []FlatType
	flattenInto(t, 0, nil, false, &out)
	return out
}

func flattenInto(t hwtype.Type, level int, parts []NamePart, reversed bool, out *[]FlatType) {
	*out = append(*out, FlatType{Type: t, Level: level, NameParts: copyParts(parts), Reversed: reversed})
	if t.Kind() != hwtype.KindRecord {
		return
	}
	for _, f := range t.Fields() {
		childParts := append(copyParts(parts), NamePart{Name: f.Name, Sep: f.Sep})
		flattenInto(f.Type, level+1, childParts, reversed != f.Reversed, out)
	}
}

func copyParts(parts []NamePart) []NamePart {
	cp := make([]NamePart, len(parts))
	copy(cp, parts)
	return cp
}

// FlatName joins a FlatType's NameParts into the dotted identifier the VHDL
// back-end uses for a signalized leaf, e.g. "data_valid".
func (ft FlatType) FlatName() string {
	var s string
	for i, p := range ft.NameParts {
		if i > 0 && ft.NameParts[i-1].Sep {
			s += "_"
		}
		s += p.Name
	}
	return s
}
