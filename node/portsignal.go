package node

import "github.com/katalvlaran/hwir/hwtype"

// Port is a single-input, multi-output terminator that must be attached to a
// parent graph (a Component's external interface, or its mirror on an
// Instance).
type Port struct {
	base
	typ    hwtype.Type
	dir    Direction
	domain *ClockDomain
}

// NewPort builds an unparented, undriven Port. Attaching it to a graph is
// the caller's responsibility (graph.Component.Add).
func NewPort(name string, typ hwtype.Type, dir Direction, domain *ClockDomain) *Port {
	return &Port{base: base{name: name, allowsInput: true}, typ: typ, dir: dir, domain: domain}
}

func (p *Port) Kind() Kind              { return KindPort }
func (p *Port) Type() hwtype.Type       { return p.typ }
func (p *Port) Direction() Direction    { return p.dir }
func (p *Port) Domain() *ClockDomain    { return p.domain }

func (p *Port) AddEdge(e *Edge) error    { return p.base.addEdge(e, p) }
func (p *Port) RemoveEdge(e *Edge) error { return p.base.removeEdge(e, p) }
func (p *Port) Replace(r Node) error     { return replace(p, r) }

func (p *Port) Clone() Node {
	return NewPort(p.name, p.typ.Copy(nil), p.dir, p.domain)
}

// Signal is a single-input, multi-output wire internal to a component: same
// shape as Port minus direction, and never attached to an Instance (Signals
// are added to a Component directly, or by the VHDL signalization pass).
type Signal struct {
	base
	typ    hwtype.Type
	domain *ClockDomain
}

func NewSignal(name string, typ hwtype.Type, domain *ClockDomain) *Signal {
	return &Signal{base: base{name: name, allowsInput: true}, typ: typ, domain: domain}
}

func (s *Signal) Kind() Kind           { return KindSignal }
func (s *Signal) Type() hwtype.Type    { return s.typ }
func (s *Signal) Domain() *ClockDomain { return s.domain }

func (s *Signal) AddEdge(e *Edge) error    { return s.base.addEdge(e, s) }
func (s *Signal) RemoveEdge(e *Edge) error { return s.base.removeEdge(e, s) }
func (s *Signal) Replace(r Node) error     { return replace(s, r) }

func (s *Signal) Clone() Node {
	return NewSignal(s.name, s.typ.Copy(nil), s.domain)
}
