package node

import (
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
)

// typed is satisfied by every node kind that carries an hwtype.Type: Port,
// Signal, Parameter and Literal (Expression does not — its "type" is
// whatever arithmetic context interprets it, always integer-shaped).
type typed interface {
	Node
	Type() hwtype.Type
}

// CopyOnto implements spec.md §4.D's copy_onto(dst, name, rebinding)
// algorithm:
//  1. Deep-copy n without touching its type's generics.
//  2. For each generic the type references, reuse an existing node of the
//     same name already on dst, or recursively CopyOnto it.
//  3. If the type was generic, rebind it and set the rebound copy on the
//     new node.
//  4. Record n → new in rebinding (when n is itself a generic — a Literal,
//     Parameter or Expression) and add the new node to dst.
//
// rebinding is keyed by node name (spec.md's NodeId) and is mutated in
// place across the whole call tree so that sibling copies — e.g. two ports
// sharing the same width parameter — converge on the same rebound node
// instead of each making their own copy.
func CopyOnto(n Node, dst Owner, name string, rebinding map[string]hwtype.Generic) (Node, error) {
	if existing, ok := dst.GetNode(name); ok {
		return existing, nil
	}

	var clone Node
	switch v := n.(type) {
	case *Expression:
		lhs, err := copyOperand(v.lhs, dst, rebinding)
		if err != nil {
			return nil, fmt.Errorf("node.CopyOnto: lhs operand: %w", err)
		}
		rhs, err := copyOperand(v.rhs, dst, rebinding)
		if err != nil {
			return nil, fmt.Errorf("node.CopyOnto: rhs operand: %w", err)
		}
		clone = Make(v.op, lhs, rhs)
		renameNode(clone, name)
	case *Parameter:
		def := v.def
		if mapped, ok := rebinding[v.def.ID()]; ok {
			if lit, ok := mapped.(*Literal); ok {
				def = lit
			}
		}
		clone = NewParameter(name, v.typ, def)
	default:
		clone = n.Clone()
		renameNode(clone, name)
	}

	if t, ok := n.(typed); ok {
		typ := t.Type()
		for _, g := range typ.Generics() {
			if _, already := rebinding[g.ID()]; already {
				continue
			}
			if existing, ok := dst.GetNode(g.ID()); ok {
				if gen, ok := existing.(hwtype.Generic); ok {
					rebinding[g.ID()] = gen
				}
				continue
			}
			src, ok := g.(Node)
			if !ok {
				continue
			}
			copied, err := CopyOnto(src, dst, g.ID(), rebinding)
			if err != nil {
				return nil, fmt.Errorf("node.CopyOnto: rebinding generic %q: %w", g.ID(), err)
			}
			if gen, ok := copied.(hwtype.Generic); ok {
				rebinding[g.ID()] = gen
			}
		}
		if typ.IsGeneric() {
			setType(clone, typ.Copy(rebinding))
		}
	}

	if gen, ok := n.(hwtype.Generic); ok {
		if newGen, ok := clone.(hwtype.Generic); ok {
			rebinding[gen.ID()] = newGen
		}
	}

	clone.SetParent(dst)
	if err := dst.AddObject(clone); err != nil {
		return nil, fmt.Errorf("node.CopyOnto: %w", err)
	}
	return clone, nil
}

// CopyArrayOnto builds dst's own copy of arr's base template and size node,
// for an owner type (graph.Component/graph.Instance) to register under its
// own array bookkeeping (Component.AddArray / Instance.AddArray) — it never
// calls dst.AddObject itself, since a NodeArray's base is a clone template,
// never a standalone declared port or signal (original_source's
// array.cc: NodeArray::Copy()/PortArray::Copy() likewise rebuild the base
// and size nodes before the caller "Add"s the resulting array onto the
// graph).
//
// The returned array always starts with zero children, regardless of arr's
// current length or size: array.cc's NodeArray::Copy() resets size to
// intl(0) unconditionally, and rebindArraySize only rebinds that reset size back to
// a already-copied size parameter when the original size was itself a
// Parameter. A copied array is a template the caller grows after
// instantiation via NodeArray.Append — it is never pre-populated with the
// blueprint's existing elements.
func CopyArrayOnto(arr *NodeArray, name string, dst Owner, rebinding map[string]hwtype.Generic) (*NodeArray, error) {
	baseClone := arr.base.Clone()
	renameNode(baseClone, name)

	if t, ok := baseClone.(typed); ok {
		typ := t.Type()
		for _, g := range typ.Generics() {
			if _, already := rebinding[g.ID()]; already {
				continue
			}
			if existing, ok := dst.GetNode(g.ID()); ok {
				if gen, ok := existing.(hwtype.Generic); ok {
					rebinding[g.ID()] = gen
				}
				continue
			}
			src, ok := g.(Node)
			if !ok {
				continue
			}
			copied, err := CopyOnto(src, dst, g.ID(), rebinding)
			if err != nil {
				return nil, fmt.Errorf("node.CopyArrayOnto(%q): rebinding base generic %q: %w", name, g.ID(), err)
			}
			if gen, ok := copied.(hwtype.Generic); ok {
				rebinding[g.ID()] = gen
			}
		}
		if typ.IsGeneric() {
			setType(baseClone, typ.Copy(rebinding))
		}
	}

	size, err := rebindArraySize(arr, name, rebinding)
	if err != nil {
		return nil, err
	}

	return NewNodeArray(name, baseClone, size), nil
}

// rebindArraySize resolves the size node for a copied array: a Parameter
// size must already have its own rebound copy in rebinding (sibling ports
// and this array share the same width parameter, copied before arrays are
// ever reached in Component.Instantiate); anything else — Literal or
// Expression — resets to a fresh zero literal, since a copied array always
// starts empty.
func rebindArraySize(arr *NodeArray, name string, rebinding map[string]hwtype.Generic) (Node, error) {
	p, ok := arr.size.(*Parameter)
	if !ok {
		return NewIntLiteral(name+"_size", 0), nil
	}
	mapped, ok := rebinding[p.name]
	if !ok {
		return nil, fmt.Errorf("node.CopyArrayOnto(%q): size parameter %q must be rebound before the array is copied", name, p.name)
	}
	sizeNode, ok := mapped.(Node)
	if !ok {
		return nil, fmt.Errorf("node.CopyArrayOnto(%q): size parameter %q did not rebind to a node", name, p.name)
	}
	return sizeNode, nil
}

// copyOperand resolves an Expression operand during a copy: reuse a node of
// the same name already on dst, reuse an already-rebound generic, or
// recursively copy it.
func copyOperand(n Node, dst Owner, rebinding map[string]hwtype.Generic) (Node, error) {
	if existing, ok := dst.GetNode(n.Name()); ok {
		return existing, nil
	}
	if gen, ok := n.(hwtype.Generic); ok {
		if mapped, ok := rebinding[gen.ID()]; ok {
			if nd, ok := mapped.(Node); ok {
				return nd, nil
			}
		}
	}
	return CopyOnto(n, dst, n.Name(), rebinding)
}

// setType overwrites a node's stored hwtype.Type after generic rebinding.
// Literal has no settable type (its Type() is derived from its LitKind, not
// stored), so it is silently skipped — Literal never carries a generic
// width in the first place.
func setType(n Node, t hwtype.Type) {
	switch v := n.(type) {
	case *Port:
		v.typ = t
	case *Signal:
		v.typ = t
	case *Parameter:
		v.typ = t
	}
}
