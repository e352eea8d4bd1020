package node

import (
	"fmt"

	"github.com/katalvlaran/hwir/hwtype"
)

// Parameter is a single-input, multi-output node whose current value is
// whatever node presently drives it (InEdge().Src). Its default is driven at
// construction time, so a fresh Parameter is never left undriven.
type Parameter struct {
	base
	typ hwtype.Type
	def *Literal
}

// NewParameter builds a Parameter of typ with def wired as its initial
// driver. def's kind must agree with typ (Integer/String/Boolean), matching
// spec's "default: Literal".
func NewParameter(name string, typ hwtype.Type, def *Literal) *Parameter {
	p := &Parameter{base: base{name: name, allowsInput: true}, typ: typ, def: def}
	e := NewEdge(name+"_default", def, p)
	_ = def.AddEdge(e)
	_ = p.AddEdge(e)
	return p
}

func (p *Parameter) Kind() Kind          { return KindParameter }
func (p *Parameter) Type() hwtype.Type   { return p.typ }
func (p *Parameter) Default() *Literal   { return p.def }

// Value returns the node currently driving this parameter — its InEdge's
// source — which is a Literal at construction but may become an Expression
// once connected to one.
func (p *Parameter) Value() Node {
	if in := p.InEdge(); in != nil {
		return in.Src
	}
	return nil
}

// SetValue rewires the parameter's single input directly onto v, bypassing
// graph.Connect's port/direction checks (a Parameter has neither), matching
// spec.md §9's decision to keep a mutating, explicit rebind path distinct
// from the non-mutating Copy.
func (p *Parameter) SetValue(v Node) error {
	e := NewEdge(fmt.Sprintf("%s_value", p.name), v, p)
	if err := v.AddEdge(e); err != nil {
		return fmt.Errorf("Parameter.SetValue: %w", err)
	}
	return p.AddEdge(e)
}

// Copy returns a non-mutating rebind of p: a fresh Parameter of the same
// name and type (rebound against generics) whose default is p's default
// literal, also passed through rebinding if present there. p itself is
// never mutated. (CopyOnto does not call Copy; it builds its Parameter copies
// with NewParameter directly.)
func (p *Parameter) Copy(rebinding map[string]hwtype.Generic) *Parameter {
	typ := p.typ.Copy(rebinding)
	def := p.def
	if mapped, ok := rebinding[p.def.ID()]; ok {
		if lit, ok := mapped.(*Literal); ok {
			def = lit
		}
	}
	return NewParameter(p.name, typ, def)
}

func (p *Parameter) AddEdge(e *Edge) error    { return p.base.addEdge(e, p) }
func (p *Parameter) RemoveEdge(e *Edge) error { return p.base.removeEdge(e, p) }
func (p *Parameter) Replace(r Node) error     { return replace(p, r) }

func (p *Parameter) Clone() Node {
	return NewParameter(p.name, p.typ.Copy(nil), p.def)
}

// ID implements hwtype.Generic so a Parameter can stand in for a Vector
// width directly.
func (p *Parameter) ID() string { return p.name }

// Literal implements hwtype.Generic. A Parameter is never itself a literal
// node — spec.md classifies genericness by node kind ("generic iff width is
// not a literal"), not by whether the parameter's current value happens to
// resolve to a constant — so this always reports unresolved. A Vector width
// only stops being generic once it is rebound directly onto a Literal node
// (hwtype.Type.Copy/Rebind), not merely driven by one.
func (p *Parameter) Literal() (int64, bool) {
	return 0, false
}
