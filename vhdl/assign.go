package vhdl

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hwir/flatten"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// typed is satisfied by every physically-typed node kind (Port, Signal).
type typed interface {
	node.Node
	Type() hwtype.Type
}

// mappingPairs resolves the already-registered (or structurally-implicit)
// mapper between dst's and src's types and returns its unique mapping pairs,
// ordinal-ordered, with A resolved against dst's flattening and B against
// src's — matching original_source's GenerateAssignmentPair(pairs, dst, src)
// convention, so a pair's Reversed flag flips the assignment the same way.
func mappingPairs(dst, src typed) ([]flatten.MappingPair, error) {
	mapper, err := flatten.GetOrMakeMapper(dst.Type(), src.Type())
	if err != nil {
		return nil, fmt.Errorf("vhdl: no mapper for %q <- %q: %w", dst.Name(), src.Name(), err)
	}
	fa := flatten.Flatten(mapper.A)
	fb := flatten.Flatten(mapper.B)
	return flatten.UniquePairs(mapper.Matrix, fa, fb)
}

// assignmentLines renders every physical-leaf concurrent assignment between
// dst and src as "lhs <= rhs;" text, skipping a pair whose dst leaf is the
// record's own (non-physical) entry, and flipping lhs/rhs for a pair whose
// dst leaf carries the Reversed bit (the valid/ready handshake case).
func assignmentLines(dst, src typed) ([]string, error) {
	pairs, err := mappingPairs(dst, src)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, p := range pairs {
		if p.A[0].FlatType.Type.Kind() == hwtype.KindRecord {
			continue
		}
		lhs := sideExpr(dst.Name(), p.A)
		rhs := sideExpr(src.Name(), p.B)
		if p.A[0].FlatType.Reversed {
			lines = append(lines, fmt.Sprintf("%s <= %s;", rhs, lhs))
		} else {
			lines = append(lines, fmt.Sprintf("%s <= %s;", lhs, rhs))
		}
	}
	return lines, nil
}

// portMapLines renders the "=>" associativity pairs for a single instance
// port against its signalized companion signal, in the same pair-skipping
// and ordering convention as assignmentLines.
func portMapLines(port, companion typed) ([]string, error) {
	pairs, err := mappingPairs(port, companion)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, p := range pairs {
		if p.A[0].FlatType.Type.Kind() == hwtype.KindRecord {
			continue
		}
		lhs := sideExpr(port.Name(), p.A)
		rhs := sideExpr(companion.Name(), p.B)
		lines = append(lines, fmt.Sprintf("%s => %s", lhs, rhs))
	}
	return lines, nil
}

// sideExpr renders one side of a mapping pair: a single flat leaf is just
// its own identifier; a multi-leaf side (the many-to-one shapes of spec.md
// §4.H's "mapping emission") concatenates every leaf's identifier with "&",
// in ascending flat-index order (already guaranteed by UniquePairs).
func sideExpr(nodeName string, refs []flatten.LeafRef) string {
	if len(refs) == 1 {
		return leafIdent(nodeName, refs[0].FlatType)
	}
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = leafIdent(nodeName, r.FlatType)
	}
	return strings.Join(parts, " & ")
}

// leafIdent builds a flat leaf's VHDL identifier: the bare node name at
// level 0 (non-record types, or a record's own entry), or
// "<node>_<field>_<...>" for a nested field, matching
// flatten.FlatType.FlatName's dotted-to-underscore convention.
func leafIdent(nodeName string, ft flatten.FlatType) string {
	if ft.Level == 0 {
		return sanitize(nodeName)
	}
	return sanitize(nodeName) + "_" + ft.FlatName()
}
