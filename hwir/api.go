package hwir

import (
	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// Types re-exported from package hwtype (spec.md §6's type constructors).
type (
	Type      = hwtype.Type
	Kind      = hwtype.Kind
	Field     = hwtype.Field
	Generic   = hwtype.Generic
	Mapper    = hwtype.Mapper
)

// Bit is hwtype.Bit.
func Bit() Type { return hwtype.Bit() }

// Vector is hwtype.Vector.
func Vector(width Generic) Type { return hwtype.Vector(width) }

// Integer is hwtype.Integer.
func Integer() Type { return hwtype.Integer() }

// String is hwtype.String.
func String() Type { return hwtype.String() }

// Boolean is hwtype.Boolean.
func Boolean() Type { return hwtype.Boolean() }

// Record is hwtype.Record.
func Record(name string, fields []Field) (Type, error) { return hwtype.Record(name, fields) }

// Node-level types re-exported from package node.
type (
	Node        = node.Node
	Owner       = node.Owner
	Direction   = node.Direction
	Port        = node.Port
	Signal      = node.Signal
	Parameter   = node.Parameter
	Literal     = node.Literal
	Expression  = node.Expression
	NodeArray   = node.NodeArray
	Edge        = node.Edge
	ClockDomain = node.ClockDomain
)

// Direction constants re-exported from package node.
const (
	In  = node.In
	Out = node.Out
)

// NewPort is node.NewPort.
func NewPort(name string, typ Type, dir Direction, domain *ClockDomain) *Port {
	return node.NewPort(name, typ, dir, domain)
}

// NewSignal is node.NewSignal.
func NewSignal(name string, typ Type, domain *ClockDomain) *Signal {
	return node.NewSignal(name, typ, domain)
}

// NewParameter is node.NewParameter.
func NewParameter(name string, typ Type, def *Literal) *Parameter {
	return node.NewParameter(name, typ, def)
}

// Intl builds an integer literal (node.NewIntLiteral), named to match
// spec.md §6's short constructor names for the three literal kinds.
func Intl(name string, v int64) *Literal { return node.NewIntLiteral(name, v) }

// Strl builds a string literal (node.NewStringLiteral).
func Strl(name, v string) *Literal { return node.NewStringLiteral(name, v) }

// Booll builds a boolean literal (node.NewBoolLiteral).
func Booll(name string, v bool) *Literal { return node.NewBoolLiteral(name, v) }

// NewClockDomain is node.NewClockDomain.
func NewClockDomain(name string) *ClockDomain { return node.NewClockDomain(name) }

// Graph-level types re-exported from package graph.
type (
	Component = graph.Component
	Instance  = graph.Instance
	Warning   = graph.Warning
)

// NewComponent is graph.NewComponent.
func NewComponent(name string) *Component { return graph.NewComponent(name) }

// Connect is graph.Connect.
func Connect(dst, src Node) (*Edge, *Warning, error) { return graph.Connect(dst, src) }
